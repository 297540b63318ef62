// Package provider abstracts filesystem access so the counting pipeline can
// run against the OS or an in-memory fake in tests.
package provider

import (
	"os"
)

// Provider is the filesystem surface the counter depends on.
type Provider interface {
	// ReadFile reads the full content of a file.
	ReadFile(path string) ([]byte, error)
}

// FSProvider implements Provider for the local filesystem.
type FSProvider struct{}

// NewFSProvider creates a new file system provider.
func NewFSProvider() *FSProvider {
	return &FSProvider{}
}

// ReadFile reads file content as bytes.
func (p *FSProvider) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
