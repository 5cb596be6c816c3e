package domain

import (
	"path/filepath"
	"strings"
)

// CacheEntry describes where one cached result lives on disk. The resolved
// path is the cache-file identity used by the token registry.
type CacheEntry struct {
	// Dir is the directory holding the cache file.
	Dir string
	// Name is the logical name of the cache file. It may or may not already
	// carry the format suffix.
	Name string
	// Format is the on-disk encoding.
	Format Format
}

// Filename returns the base name of the cache file. If Name already carries
// the format suffix it is used verbatim, otherwise the suffix is appended.
func (e CacheEntry) Filename() string {
	if strings.HasSuffix(e.Name, e.Format.Suffix()) {
		return e.Name
	}
	return e.Name + e.Format.Suffix()
}

// Path returns the cache-file identity: the full path of the cache file.
func (e CacheEntry) Path() string {
	return filepath.Join(e.Dir, e.Filename())
}
