package walker

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"log/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("content\n"), 0o644))
}

func TestWalkRootIsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "main.go")
	writeFile(t, file)

	files, err := New(nil, false, discardLogger()).Walk(file)
	require.NoError(t, err)
	assert.Equal(t, []string{file}, files)
}

func TestWalkRootDoesNotExist(t *testing.T) {
	w := New(nil, false, discardLogger())
	files, err := w.Walk(filepath.Join(t.TempDir(), "missing"))

	require.Error(t, err)
	var invalidErr *InvalidRootError
	require.ErrorAs(t, err, &invalidErr)
	assert.Nil(t, files)
}

func TestWalkRecursesIntoSubdirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.go"))
	writeFile(t, filepath.Join(dir, "sub", "b.go"))
	writeFile(t, filepath.Join(dir, "sub", "deep", "c.py"))

	files, err := New(nil, true, discardLogger()).Walk(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.go"),
		filepath.Join(dir, "sub", "b.go"),
		filepath.Join(dir, "sub", "deep", "c.py"),
	}, files)
}

func TestWalkSortedIsLexicographic(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "zz.go"))
	writeFile(t, filepath.Join(dir, "aa.go"))
	writeFile(t, filepath.Join(dir, "mm.go"))

	files, err := New(nil, true, discardLogger()).Walk(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "aa.go"),
		filepath.Join(dir, "mm.go"),
		filepath.Join(dir, "zz.go"),
	}, files)
}

func TestWalkFollowsSymlinkedDirectories(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevation on windows")
	}

	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	writeFile(t, filepath.Join(target, "inside.go"))
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "link")))

	files, err := New(nil, true, discardLogger()).Walk(dir)
	require.NoError(t, err)

	// the target is reached once directly; the link resolves to the same
	// directory and the cycle guard keeps it from being walked twice
	assert.Len(t, files, 1)
}

func TestWalkBreaksSymlinkCycles(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevation on windows")
	}

	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	writeFile(t, filepath.Join(sub, "a.go"))
	require.NoError(t, os.Symlink(dir, filepath.Join(sub, "loop")))

	files, err := New(nil, true, discardLogger()).Walk(dir)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestWalkExcludePatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "keep.go"))
	writeFile(t, filepath.Join(dir, "vendor", "dep.go"))
	writeFile(t, filepath.Join(dir, "src", "gen.log"))

	tests := []struct {
		name     string
		excludes []string
		expected []string
	}{
		{
			"directory by name",
			[]string{"vendor"},
			[]string{filepath.Join(dir, "keep.go"), filepath.Join(dir, "src", "gen.log")},
		},
		{
			"glob on extension",
			[]string{"*.log"},
			[]string{filepath.Join(dir, "keep.go"), filepath.Join(dir, "vendor", "dep.go")},
		},
		{
			"doublestar path",
			[]string{"**/dep.go"},
			[]string{filepath.Join(dir, "keep.go"), filepath.Join(dir, "src", "gen.log")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := New(tt.excludes, true, discardLogger()).Walk(dir)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, files)
		})
	}
}
