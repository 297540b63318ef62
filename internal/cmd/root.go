package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cloc-analyzer",
	Short: "Source code line counter",
	Long: `cloc-analyzer counts lines of source code. Given a root file or
directory it recursively discovers source files, classifies each by
programming language, counts blank, comment and code lines, and prints a
per-language summary table sorted by code lines.`,
	Version: "1.0.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
