package report

import (
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"
)

// Render writes the report as a table. Output to a terminal gets the light
// box-drawing style; anything else (pipes, files) gets the plain default so
// the table stays grep-friendly.
func Render(w io.Writer, title string, rep Report) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)
	if isTerminal(w) {
		t.SetStyle(table.StyleLight)
	}

	header := make(table.Row, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	t.AppendHeader(header)

	for _, row := range rep.Rows {
		t.AppendRow(table.Row{
			row.Language,
			humanize.Comma(int64(row.Files)),
			humanize.Comma(row.Blank),
			humanize.Comma(row.Comment),
			humanize.Comma(row.Code),
		})
	}

	t.AppendFooter(table.Row{
		rep.Total.Language,
		humanize.Comma(int64(rep.Total.Files)),
		humanize.Comma(rep.Total.Blank),
		humanize.Comma(rep.Total.Comment),
		humanize.Comma(rep.Total.Code),
	})

	t.Render()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
