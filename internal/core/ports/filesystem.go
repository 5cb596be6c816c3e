package ports

// Filesystem defines the filesystem operations the gatekeeper needs.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type Filesystem interface {
	// Exists reports whether a file exists at the given path.
	Exists(path string) bool

	// Remove deletes the file at the given path. Removing a nonexistent
	// path is an error.
	Remove(path string) error

	// MakeDirs creates the directory and any missing parents. It is
	// idempotent: an existing directory is not an error.
	MakeDirs(path string) error
}
