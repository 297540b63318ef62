// Package lang defines the built-in language registry and file classification
// by extension.
package lang

import (
	"path/filepath"
)

// BlockDelim is a (start, end) pair delimiting a multi-line comment region.
// Delimiters are recorded per language but not consulted by the line
// classifier, which works line by line without cross-line state.
type BlockDelim struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Language describes one recognized source language: its display name, the
// file extensions attributed to it, and its comment syntax.
type Language struct {
	Name         string       `json:"name"`
	Extensions   []string     `json:"extensions"`
	LinePrefixes []string     `json:"line_comment_prefixes"`
	BlockDelims  []BlockDelim `json:"block_comment_delimiters,omitempty"`
}

// clike builds a language with C-style comment syntax (// line comments,
// /* */ block comments).
func clike(name string, extensions ...string) Language {
	return Language{
		Name:         name,
		Extensions:   extensions,
		LinePrefixes: []string{"//"},
		BlockDelims:  []BlockDelim{{Start: "/*", End: "*/"}},
	}
}

// registry holds the supported languages in declaration order. Order matters
// for resolution: the first entry whose extensions contain the file's
// extension wins. Names are unique; the aggregator keys counters on them.
var registry = []Language{
	clike("C", ".c"),
	clike("C++", ".c++", ".cpp"),
	clike("Javascript", ".js"),
	clike("C#", ".cs", ".csx"),
	clike("Java", ".java"),
	clike("Golang", ".go"),
	{
		Name:         "Python",
		Extensions:   []string{".py", ".pyw"},
		LinePrefixes: []string{"#"},
		BlockDelims:  []BlockDelim{{Start: `"""`, End: `"""`}},
	},
}

// All returns the registry in declaration order. The returned slice is
// shared; callers must not mutate it.
func All() []Language {
	return registry
}

// Resolve returns the language attributed to path, matching the path's
// trailing extension exactly against each registry entry in order. A file
// with an unregistered extension resolves to nothing; that is not an error,
// such files are simply not counted.
func Resolve(path string) (Language, bool) {
	ext := filepath.Ext(path)
	if ext == "" {
		return Language{}, false
	}
	for _, lang := range registry {
		for _, registered := range lang.Extensions {
			if ext == registered {
				return lang, true
			}
		}
	}
	return Language{}, false
}
