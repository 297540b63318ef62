package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/petrarca/cloc-analyzer/internal/lang"
)

var languagesFormat = "text"
var languagesOutput string

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the built-in language registry",
	Long:  `List all recognized languages with their file extensions and comment markers.`,
	Run:   runLanguages,
}

func init() {
	rootCmd.AddCommand(languagesCmd)
	setupFormatFlag(languagesCmd, &languagesFormat)
	languagesCmd.Flags().StringVarP(&languagesOutput, "output", "o", "", "Output file path (default: stdout)")
}

// LanguagesResult is the output for the languages command
type LanguagesResult struct {
	Languages []lang.Language `json:"languages" yaml:"languages"`
	Total     int             `json:"total" yaml:"total"`
}

func (r *LanguagesResult) ToJSON() interface{} {
	return r
}

func (r *LanguagesResult) ToText(w io.Writer) {
	for _, l := range r.Languages {
		markers := strings.Join(l.LinePrefixes, " ")
		for _, d := range l.BlockDelims {
			markers += fmt.Sprintf(" %s..%s", d.Start, d.End)
		}
		fmt.Fprintf(w, "%-12s %-14s %s\n", l.Name, strings.Join(l.Extensions, ","), markers)
	}
	fmt.Fprintf(w, "\nTotal: %d languages\n", r.Total)
}

func runLanguages(cmd *cobra.Command, args []string) {
	languages := lang.All()
	result := &LanguagesResult{Languages: languages, Total: len(languages)}
	OutputToFile(result, languagesFormat, languagesOutput)
}
