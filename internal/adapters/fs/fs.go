// Package fs implements the filesystem adapter backed by the OS.
package fs

import (
	"os"

	"go.trai.ch/xpersist/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Filesystem = (*Filesystem)(nil)

// Filesystem implements ports.Filesystem using the os package.
type Filesystem struct{}

// New creates a new Filesystem.
func New() *Filesystem {
	return &Filesystem{}
}

// Exists reports whether a file exists at the given path.
func (f *Filesystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Remove deletes the file at the given path. Removing a nonexistent path
// returns an error, matching os.Remove semantics.
func (f *Filesystem) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove cache file"), "path", path)
	}
	return nil
}

// MakeDirs creates the directory and any missing parents. An existing
// directory is not an error.
func (f *Filesystem) MakeDirs(path string) error {
	if err := os.MkdirAll(path, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create cache directory"), "path", path)
	}
	return nil
}
