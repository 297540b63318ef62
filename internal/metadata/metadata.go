package metadata

import (
	"path/filepath"
	"time"
)

// RunMetadata contains information about the count execution
type RunMetadata struct {
	Timestamp  string `json:"timestamp" yaml:"timestamp"`
	RootPath   string `json:"root_path" yaml:"root_path"`
	DurationMs int64  `json:"duration_ms,omitempty" yaml:"duration_ms,omitempty"`
	FileCount  int    `json:"file_count,omitempty" yaml:"file_count,omitempty"`
	Languages  int    `json:"language_count,omitempty" yaml:"language_count,omitempty"`
}

// NewRunMetadata creates a new run metadata instance
func NewRunMetadata(rootPath string) *RunMetadata {
	absPath, _ := filepath.Abs(rootPath)

	return &RunMetadata{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RootPath:  absPath,
	}
}

// SetDuration sets the run duration in milliseconds
func (m *RunMetadata) SetDuration(duration time.Duration) {
	m.DurationMs = duration.Milliseconds()
}

// SetCounts sets the discovered file count and distinct language count
func (m *RunMetadata) SetCounts(fileCount, languageCount int) {
	m.FileCount = fileCount
	m.Languages = languageCount
}
