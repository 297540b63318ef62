// Package counter implements the line classification and per-language
// aggregation engine.
package counter

import (
	"fmt"
	"strings"

	"log/slog"

	"github.com/petrarca/cloc-analyzer/internal/lang"
	"github.com/petrarca/cloc-analyzer/internal/provider"
)

// Kind is the classification of a single line.
type Kind int

const (
	KindBlank Kind = iota
	KindComment
	KindCode
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindComment:
		return "comment"
	default:
		return "code"
	}
}

// Classify decides blank / comment / code for a single trimmed line.
//
// The check is line-local: a line inside an unterminated block comment counts
// as code unless it happens to start with a line-comment prefix. Block
// delimiters recorded in the registry are intentionally not consulted here;
// downstream consumers depend on these counts staying stable.
func Classify(trimmed string, language lang.Language) Kind {
	if trimmed == "" {
		return KindBlank
	}
	for _, prefix := range language.LinePrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return KindComment
		}
	}
	return KindCode
}

// AnalysisInfo holds the running counters for one language.
type AnalysisInfo struct {
	Files   int   `json:"files"`
	Blank   int64 `json:"blank"`
	Comment int64 `json:"comment"`
	Code    int64 `json:"code"`
}

// Analysis is the aggregation result of a single run: per-language counters
// keyed by language name, with first-encounter order retained so that report
// ties stay deterministic for a given discovery order.
type Analysis struct {
	order      []string
	byLanguage map[string]*AnalysisInfo
}

func newAnalysis() *Analysis {
	return &Analysis{byLanguage: make(map[string]*AnalysisInfo)}
}

// Languages returns language names in first-encounter order.
func (a *Analysis) Languages() []string {
	return a.order
}

// Info returns the counters for a language, or nil if the language was never
// encountered.
func (a *Analysis) Info(name string) *AnalysisInfo {
	return a.byLanguage[name]
}

// Len returns the number of languages encountered.
func (a *Analysis) Len() int {
	return len(a.order)
}

func (a *Analysis) get(name string) *AnalysisInfo {
	info, ok := a.byLanguage[name]
	if !ok {
		info = &AnalysisInfo{}
		a.byLanguage[name] = info
		a.order = append(a.order, name)
	}
	return info
}

// FileReadError reports a discovered file that could not be read.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

// Runner aggregates line counts over a sequence of file paths.
type Runner struct {
	provider        provider.Provider
	logger          *slog.Logger
	continueOnError bool
}

// NewRunner creates a runner reading through the given provider. With
// continueOnError set, unreadable files are logged and skipped instead of
// halting the run.
func NewRunner(p provider.Provider, logger *slog.Logger, continueOnError bool) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{provider: p, logger: logger, continueOnError: continueOnError}
}

// Run classifies every path's language and every line of each recognized
// file, accumulating per-language counters. Files with an unrecognized
// extension are skipped and contribute to no counters. A read failure
// returns a *FileReadError and discards the partial aggregation unless the
// runner was configured to continue on error.
func (r *Runner) Run(paths []string) (*Analysis, error) {
	analysis := newAnalysis()

	for _, path := range paths {
		language, ok := lang.Resolve(path)
		if !ok {
			r.logger.Debug("Skipping unrecognized file", "path", path)
			continue
		}

		content, err := r.provider.ReadFile(path)
		if err != nil {
			readErr := &FileReadError{Path: path, Err: err}
			if r.continueOnError {
				r.logger.Warn("Skipping unreadable file", "path", path, "error", err)
				continue
			}
			return nil, readErr
		}

		info := analysis.get(language.Name)
		info.Files++
		countLines(info, content, language)

		r.logger.Debug("Counted file", "path", path, "language", language.Name)
	}

	return analysis, nil
}

// countLines splits content into lines, trims each, and increments the
// counter matching its classification.
func countLines(info *AnalysisInfo, content []byte, language lang.Language) {
	for _, line := range splitLines(content) {
		switch Classify(strings.TrimSpace(line), language) {
		case KindBlank:
			info.Blank++
		case KindComment:
			info.Comment++
		case KindCode:
			info.Code++
		}
	}
}

// splitLines splits on newlines without manufacturing a trailing empty line
// for content that ends in a newline. An empty file has zero lines.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.Split(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
