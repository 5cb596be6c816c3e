package domain

// Action is the outcome of a single cache decision.
type Action string

const (
	// ActionCreateCache means no cache file existed; the caller must compute
	// and persist the result.
	ActionCreateCache Action = "create_cache"

	// ActionOverwriteCache means the existing file was stale and has been
	// removed; the caller must recompute and persist.
	ActionOverwriteCache Action = "overwrite_cache"

	// ActionReadCacheTrusted means an existing file was accepted without
	// fingerprint verification; the caller must read it.
	ActionReadCacheTrusted Action = "read_cache_trusted"

	// ActionReadCacheVerified means the fingerprint matched the registered
	// value; the caller must read the existing file.
	ActionReadCacheVerified Action = "read_cache_verified"
)

// Valid reports whether a is one of the four known actions.
func (a Action) Valid() bool {
	switch a {
	case ActionCreateCache, ActionOverwriteCache, ActionReadCacheTrusted, ActionReadCacheVerified:
		return true
	}
	return false
}

// IsRead reports whether the action instructs the caller to read the existing
// cache file rather than recompute.
func (a Action) IsRead() bool {
	return a == ActionReadCacheTrusted || a == ActionReadCacheVerified
}
