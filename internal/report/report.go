// Package report turns aggregated counters into ordered rows and renders
// them.
package report

import (
	"sort"

	"github.com/petrarca/cloc-analyzer/internal/counter"
)

// Headers are the report column headers, in column order.
var Headers = []string{"Language", "Files", "Blank", "Comment", "Code"}

// Row is one language's aggregate counters.
type Row struct {
	Language string `json:"language"`
	Files    int    `json:"files"`
	Blank    int64  `json:"blank"`
	Comment  int64  `json:"comment"`
	Code     int64  `json:"code"`
}

// Report holds per-language rows sorted by code lines descending plus the
// SUM row with element-wise totals.
type Report struct {
	Rows  []Row `json:"rows"`
	Total Row   `json:"total"`
}

// Build sorts the analysis by code lines descending and computes totals.
// The sort is stable, so ties keep first-encounter order, which follows
// discovery order.
func Build(analysis *counter.Analysis) Report {
	rows := make([]Row, 0, analysis.Len())
	total := Row{Language: "SUM"}

	for _, name := range analysis.Languages() {
		info := analysis.Info(name)
		rows = append(rows, Row{
			Language: name,
			Files:    info.Files,
			Blank:    info.Blank,
			Comment:  info.Comment,
			Code:     info.Code,
		})
		total.Files += info.Files
		total.Blank += info.Blank
		total.Comment += info.Comment
		total.Code += info.Code
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Code > rows[j].Code })

	return Report{Rows: rows, Total: total}
}
