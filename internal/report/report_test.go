package report

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"log/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrarca/cloc-analyzer/internal/counter"
	"github.com/petrarca/cloc-analyzer/internal/provider"
)

func runAnalysis(t *testing.T, files map[string]string, paths []string) *counter.Analysis {
	t.Helper()
	p := provider.NewFakeProvider()
	for path, content := range files {
		p.AddFile(path, content)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	analysis, err := counter.NewRunner(p, logger, false).Run(paths)
	require.NoError(t, err)
	return analysis
}

func TestBuildSortsByCodeDescending(t *testing.T) {
	analysis := runAnalysis(t, map[string]string{
		"app.js":  "var x = 1\n",
		"main.go": "package main\nfunc main() {\n}\n",
	}, []string{"app.js", "main.go"})

	rep := Build(analysis)

	require.Len(t, rep.Rows, 2)
	assert.Equal(t, "Golang", rep.Rows[0].Language)
	assert.Equal(t, "Javascript", rep.Rows[1].Language)
	assert.Equal(t, 2, rep.Total.Files)
	assert.Equal(t, int64(4), rep.Total.Code)
	assert.Equal(t, "SUM", rep.Total.Language)
}

func TestBuildRowsNonIncreasingInCode(t *testing.T) {
	analysis := runAnalysis(t, map[string]string{
		"a.c":    "int a;\nint b;\nint c;\n",
		"b.py":   "x = 1\n",
		"c.java": "class C {\n}\n",
	}, []string{"b.py", "a.c", "c.java"})

	rep := Build(analysis)

	for i := 1; i < len(rep.Rows); i++ {
		assert.GreaterOrEqual(t, rep.Rows[i-1].Code, rep.Rows[i].Code)
	}
}

func TestBuildTotalsAreElementWiseSums(t *testing.T) {
	analysis := runAnalysis(t, map[string]string{
		"a.go": "package a\n\n// doc\nvar x = 1\n",
		"b.js": "// header\n\nlet y = 2\n",
	}, []string{"a.go", "b.js"})

	rep := Build(analysis)

	var files int
	var blank, comment, code int64
	for _, row := range rep.Rows {
		files += row.Files
		blank += row.Blank
		comment += row.Comment
		code += row.Code
	}
	assert.Equal(t, files, rep.Total.Files)
	assert.Equal(t, blank, rep.Total.Blank)
	assert.Equal(t, comment, rep.Total.Comment)
	assert.Equal(t, code, rep.Total.Code)
}

func TestBuildTiesKeepEncounterOrder(t *testing.T) {
	// both languages end up with 1 code line; encounter order breaks the tie
	analysis := runAnalysis(t, map[string]string{
		"one.cs": "class One {}\n",
		"two.c":  "int main() {}\n",
	}, []string{"one.cs", "two.c"})

	rep := Build(analysis)

	require.Len(t, rep.Rows, 2)
	assert.Equal(t, "C#", rep.Rows[0].Language)
	assert.Equal(t, "C", rep.Rows[1].Language)
}

func TestBuildEmptyAnalysis(t *testing.T) {
	analysis := runAnalysis(t, nil, nil)
	rep := Build(analysis)

	assert.Empty(t, rep.Rows)
	assert.Equal(t, Row{Language: "SUM"}, rep.Total)
}

func TestRenderContainsRowsAndSum(t *testing.T) {
	analysis := runAnalysis(t, map[string]string{
		"main.go": "package main\n",
	}, []string{"main.go"})

	var buf bytes.Buffer
	Render(&buf, "loc analysis", Build(analysis))

	out := buf.String()
	assert.Contains(t, out, "loc analysis")
	assert.Contains(t, out, "Golang")
	assert.Contains(t, out, "SUM")
	for _, h := range Headers {
		assert.True(t, strings.Contains(strings.ToUpper(out), strings.ToUpper(h)), "missing header %s", h)
	}
}

func TestRenderHumanizesLargeCounts(t *testing.T) {
	var content strings.Builder
	for i := 0; i < 1500; i++ {
		content.WriteString("var x = 1\n")
	}
	analysis := runAnalysis(t, map[string]string{"big.js": content.String()}, []string{"big.js"})

	var buf bytes.Buffer
	Render(&buf, "loc analysis", Build(analysis))

	assert.Contains(t, buf.String(), "1,500")
}
