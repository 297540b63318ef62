package provider

import (
	"fmt"
	"io/fs"
)

// FakeProvider implements the Provider interface for testing.
type FakeProvider struct {
	content    map[string]string
	unreadable map[string]bool
	reads      map[string]int
}

// NewFakeProvider creates a new fake provider.
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{
		content:    make(map[string]string),
		unreadable: make(map[string]bool),
		reads:      make(map[string]int),
	}
}

// AddFile adds a file with the given content.
func (p *FakeProvider) AddFile(path, content string) {
	p.content[path] = content
}

// AddUnreadable adds a file whose reads fail with a permission error.
func (p *FakeProvider) AddUnreadable(path string) {
	p.unreadable[path] = true
}

// Reads returns how many times a path has been read.
func (p *FakeProvider) Reads(path string) int {
	return p.reads[path]
}

// ReadFile returns the content registered for path.
func (p *FakeProvider) ReadFile(path string) ([]byte, error) {
	p.reads[path]++
	if p.unreadable[path] {
		return nil, fmt.Errorf("open %s: %w", path, fs.ErrPermission)
	}
	content, exists := p.content[path]
	if !exists {
		return nil, fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
	}
	return []byte(content), nil
}
