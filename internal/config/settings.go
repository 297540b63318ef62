package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"log/slog"
)

// Settings holds all counter configuration
type Settings struct {
	// Output settings
	OutputFile string
	Format     string // "text", "json" or "yaml"

	// Count behavior
	ExcludePatterns []string
	Sorted          bool // Lexicographic discovery order for reproducible output
	ContinueOnError bool // Skip unreadable files instead of halting
	Verbose         bool

	// Logging
	LogLevel  slog.Level
	LogFormat string // "text" or "json"
	LogFile   string // Optional: write logs to file instead of stderr
}

// DefaultSettings returns default configuration
func DefaultSettings() *Settings {
	return &Settings{
		OutputFile:      "",
		Format:          "text",
		ExcludePatterns: []string{},
		Sorted:          false,
		ContinueOnError: false,
		Verbose:         false,
		LogLevel:        slog.LevelError, // only errors by default
		LogFormat:       "text",
		LogFile:         "", // Empty = stderr
	}
}

// LoadSettings creates settings from defaults and applies environment variable overrides
func LoadSettings() *Settings {
	settings := DefaultSettings()

	if outputFile := os.Getenv("CLOC_ANALYZER_OUTPUT"); outputFile != "" {
		settings.OutputFile = outputFile
	}

	if format := os.Getenv("CLOC_ANALYZER_FORMAT"); format != "" {
		settings.Format = strings.ToLower(format)
	}

	if excludePatterns := os.Getenv("CLOC_ANALYZER_EXCLUDE"); excludePatterns != "" {
		settings.ExcludePatterns = strings.Split(excludePatterns, ",")
		for i, pattern := range settings.ExcludePatterns {
			settings.ExcludePatterns[i] = strings.TrimSpace(pattern)
		}
	}

	if sorted := os.Getenv("CLOC_ANALYZER_SORTED"); sorted != "" {
		settings.Sorted = strings.ToLower(sorted) == "true"
	}

	if continueOnError := os.Getenv("CLOC_ANALYZER_CONTINUE_ON_ERROR"); continueOnError != "" {
		settings.ContinueOnError = strings.ToLower(continueOnError) == "true"
	}

	if verbose := os.Getenv("CLOC_ANALYZER_VERBOSE"); verbose != "" {
		settings.Verbose = strings.ToLower(verbose) == "true"
	}

	if logLevel := os.Getenv("CLOC_ANALYZER_LOG_LEVEL"); logLevel != "" {
		if level, err := ParseLogLevel(logLevel); err == nil {
			settings.LogLevel = level
		}
	}

	if logFormat := os.Getenv("CLOC_ANALYZER_LOG_FORMAT"); logFormat != "" {
		settings.LogFormat = logFormat
	}

	if logFile := os.Getenv("CLOC_ANALYZER_LOG_FILE"); logFile != "" {
		settings.LogFile = logFile
	}

	return settings
}

// ParseLogLevel converts string log level to slog.Level
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", level)
	}
}

// ConfigureLogger sets up the logger based on settings
func (s *Settings) ConfigureLogger() *slog.Logger {
	var handler slog.Handler

	// Set output destination
	var output io.Writer = os.Stderr
	if s.LogFile != "" {
		file, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			// Fallback to stderr if file can't be opened
			fmt.Fprintf(os.Stderr, "Warning: Cannot open log file %s: %v\n", s.LogFile, err)
			output = os.Stderr
		} else {
			output = file
		}
	}

	level := s.LogLevel
	if s.Verbose && level > slog.LevelInfo {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	if s.LogFormat == "json" {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler)
}

// Validate checks if settings are valid
func (s *Settings) Validate() error {
	switch s.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid format: %s. Valid formats are: text, json, yaml", s.Format)
	}

	switch s.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s. Valid formats are: text, json", s.LogFormat)
	}

	return nil
}
