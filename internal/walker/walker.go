// Package walker discovers files beneath a root path, following symbolic
// links.
package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"log/slog"

	"github.com/bmatcuk/doublestar/v4"
)

// InvalidRootError reports a root path that is neither an existing file nor
// an existing directory.
type InvalidRootError struct {
	Path string
}

func (e *InvalidRootError) Error() string {
	return fmt.Sprintf("%q is not a file or a directory", e.Path)
}

// Walker produces the list of files reachable from a root.
type Walker struct {
	excludes []string
	sorted   bool
	logger   *slog.Logger
}

// New creates a walker. Exclude patterns are doublestar globs matched against
// both the slash-relative path and the base name; excluded directories are
// pruned with their whole subtree. With sorted set, directory entries are
// visited in lexicographic order so output is reproducible across
// filesystems.
func New(excludes []string, sorted bool, logger *slog.Logger) *Walker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Walker{excludes: excludes, sorted: sorted, logger: logger}
}

// Walk returns all file paths reachable from root. A root that is a regular
// file is the sole result. A root that is neither a file nor a directory
// fails with *InvalidRootError before anything is read.
func (w *Walker) Walk(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil || (!info.IsDir() && !info.Mode().IsRegular()) {
		return nil, &InvalidRootError{Path: root}
	}

	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string
	visited := make(map[string]bool)
	w.walkDir(root, root, visited, &files)
	return files, nil
}

// walkDir recurses into dir, following symlinked directories. The visited set
// holds resolved directory paths and breaks symlink cycles.
func (w *Walker) walkDir(root, dir string, visited map[string]bool, files *[]string) {
	if real, err := filepath.EvalSymlinks(dir); err == nil {
		if visited[real] {
			w.logger.Debug("Skipping already visited directory", "path", dir)
			return
		}
		visited[real] = true
	}

	entries, err := readDirEntries(dir, w.sorted)
	if err != nil {
		w.logger.Warn("Cannot read directory", "path", dir, "error", err)
		return
	}

	for _, entry := range entries {
		full := filepath.Join(dir, entry)
		if w.excluded(root, full) {
			w.logger.Debug("Excluded by pattern", "path", full)
			continue
		}

		// Stat follows symlinks, so a link to a directory recurses and a
		// link to a file is listed.
		info, err := os.Stat(full)
		if err != nil {
			w.logger.Warn("Cannot stat entry", "path", full, "error", err)
			continue
		}

		switch {
		case info.IsDir():
			w.walkDir(root, full, visited, files)
		case info.Mode().IsRegular():
			*files = append(*files, full)
		}
	}
}

// excluded reports whether path matches any exclude pattern.
func (w *Walker) excluded(root, path string) bool {
	if len(w.excludes) == 0 {
		return false
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	base := filepath.Base(path)

	for _, pattern := range w.excludes {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}

// readDirEntries returns entry names in raw OS order, or lexicographically
// sorted when requested.
func readDirEntries(dir string, sorted bool) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := f.Readdirnames(-1)
	if err != nil {
		return nil, err
	}
	if sorted {
		sort.Strings(entries)
	}
	return entries, nil
}
