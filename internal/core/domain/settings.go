package domain

// Settings holds the process-wide defaults for cache placement and encoding.
// Per-call values override these; the gatekeeper never reads settings itself.
type Settings struct {
	// CacheDir is the default directory for cache files.
	CacheDir string
	// Format is the default on-disk encoding.
	Format Format
}
