package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"log/slog"

	"github.com/spf13/cobra"

	"github.com/petrarca/cloc-analyzer/internal/config"
	"github.com/petrarca/cloc-analyzer/internal/counter"
	"github.com/petrarca/cloc-analyzer/internal/metadata"
	"github.com/petrarca/cloc-analyzer/internal/provider"
	"github.com/petrarca/cloc-analyzer/internal/report"
	"github.com/petrarca/cloc-analyzer/internal/walker"
)

var settings *config.Settings

var countCmd = &cobra.Command{
	Use:   "count [path]",
	Short: "Count blank, comment and code lines under a path",
	Long: `Count recursively discovers source files under a directory (or takes a
single file), classifies each by language, and reports blank, comment and
code line counts per language with a SUM row.

Examples:
  cloc-analyzer count
  cloc-analyzer count /path/to/project
  cloc-analyzer count --exclude vendor --exclude "**/testdata/**" .
  cloc-analyzer count --sorted --format json -o loc.json /path/to/project`,
	Args: cobra.MaximumNArgs(1),
	Run:  runCount,
}

func init() {
	rootCmd.AddCommand(countCmd)

	// Initialize settings with defaults and environment variables
	settings = config.LoadSettings()

	setupFormatFlag(countCmd, &settings.Format)
	countCmd.Flags().StringVarP(&settings.OutputFile, "output", "o", settings.OutputFile, "Output file path (default: stdout)")
	countCmd.Flags().StringSliceVar(&settings.ExcludePatterns, "exclude", settings.ExcludePatterns, "Patterns to exclude (supports glob patterns, can be specified multiple times)")
	countCmd.Flags().BoolVar(&settings.Sorted, "sorted", settings.Sorted, "Visit files in lexicographic order for reproducible output")
	countCmd.Flags().BoolVar(&settings.ContinueOnError, "continue-on-error", settings.ContinueOnError, "Skip unreadable files instead of halting the run")
	countCmd.Flags().BoolVarP(&settings.Verbose, "verbose", "v", settings.Verbose, "Log progress at info level")

	// Logging flags - use defaults from environment variables
	countCmd.Flags().String("log-level", settings.LogLevel.String(), "Log level: debug, info, warn, error")
	countCmd.Flags().String("log-format", settings.LogFormat, "Log format: text or json")
	countCmd.Flags().String("log-file", settings.LogFile, "Log file path (default: stderr)")
}

// configureLogging sets up logging based on command flags
func configureLogging(cmd *cobra.Command) *slog.Logger {
	logLevel, _ := cmd.Flags().GetString("log-level")
	logFormat, _ := cmd.Flags().GetString("log-format")
	logFile, _ := cmd.Flags().GetString("log-file")

	if level, err := config.ParseLogLevel(logLevel); err == nil {
		settings.LogLevel = level
	}
	settings.LogFormat = strings.ToLower(logFormat)
	settings.LogFile = logFile

	return settings.ConfigureLogger()
}

// CountResult is the output of the count command
type CountResult struct {
	Metadata *metadata.RunMetadata `json:"metadata" yaml:"metadata"`
	Rows     []report.Row          `json:"rows" yaml:"rows"`
	Total    report.Row            `json:"total" yaml:"total"`

	title string
}

func (r *CountResult) ToJSON() interface{} {
	return r
}

func (r *CountResult) ToText(w io.Writer) {
	report.Render(w, r.title, report.Report{Rows: r.Rows, Total: r.Total})
}

func runCount(cmd *cobra.Command, args []string) {
	logger := configureLogging(cmd)

	if err := settings.Validate(); err != nil {
		logger.Error("Invalid settings", "error", err)
		os.Exit(1)
	}

	root := "."
	if len(args) > 0 {
		root = strings.TrimSpace(args[0])
	}

	start := time.Now()

	w := walker.New(settings.ExcludePatterns, settings.Sorted, logger)
	files, err := w.Walk(root)
	if err != nil {
		logger.Error("Invalid root path", "path", root, "error", err)
		os.Exit(1)
	}

	if settings.Verbose {
		fmt.Fprintf(os.Stderr, "Counting: %s (%d files)\n", root, len(files))
	}
	logger.Debug("Discovery complete", "root", root, "files", len(files))

	runner := counter.NewRunner(provider.NewFSProvider(), logger, settings.ContinueOnError)
	analysis, err := runner.Run(files)
	if err != nil {
		logger.Error("Count failed", "error", err)
		os.Exit(1)
	}

	rep := report.Build(analysis)

	meta := metadata.NewRunMetadata(root)
	meta.SetDuration(time.Since(start))
	meta.SetCounts(len(files), analysis.Len())

	result := &CountResult{
		Metadata: meta,
		Rows:     rep.Rows,
		Total:    rep.Total,
		title:    fmt.Sprintf("Line count: %s", meta.RootPath),
	}
	OutputToFile(result, settings.Format, settings.OutputFile)
}
