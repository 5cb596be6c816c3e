package domain

import "sync"

// TokenRegistry is the process-wide bookkeeping for cache decisions: for each
// cache-file identity, the last-accepted fingerprint and the most recent
// action. Entries are created lazily and live for the process lifetime.
//
// The mutex protects map integrity only. Callers that run concurrent
// decide/execute sequences against the same identity must serialize them
// externally; the registry does not make those sequences atomic.
type TokenRegistry struct {
	mu      sync.RWMutex
	tokens  map[string]Fingerprint
	actions map[string]Action
}

// NewTokenRegistry creates an empty registry.
func NewTokenRegistry() *TokenRegistry {
	return &TokenRegistry{
		tokens:  make(map[string]Fingerprint),
		actions: make(map[string]Action),
	}
}

// Lookup returns the last-accepted fingerprint for the identity, if any.
func (r *TokenRegistry) Lookup(identity string) (Fingerprint, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fp, ok := r.tokens[identity]
	return fp, ok
}

// Record stores the fingerprint for the identity, overwriting any previous
// value. It always succeeds.
func (r *TokenRegistry) Record(identity string, fp Fingerprint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[identity] = fp
}

// LastAction returns the most recent action decided for the identity, if any.
// This exists for observability and testing, not for decision logic.
func (r *TokenRegistry) LastAction(identity string) (Action, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.actions[identity]
	return a, ok
}

// RecordAction stores the action for the identity, overwriting any previous
// value.
func (r *TokenRegistry) RecordAction(identity string, a Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions[identity] = a
}
