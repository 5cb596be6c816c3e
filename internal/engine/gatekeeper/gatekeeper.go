// Package gatekeeper implements the cache-validity decision engine.
package gatekeeper

import (
	"fmt"
	"path/filepath"

	"go.trai.ch/xpersist/internal/core/domain"
	"go.trai.ch/xpersist/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options are caller-supplied policy flags that short-circuit the decision
// table before the fingerprint comparison step.
type Options struct {
	// Trust treats any existing file as valid, skipping fingerprint
	// verification.
	Trust bool
	// ForceOverwrite treats any existing file as stale. It takes precedence
	// over Trust.
	ForceOverwrite bool
}

// Gatekeeper decides, for one invocation of a cached computation, whether the
// cache file is trustworthy, must be verified, must be overwritten, or must be
// created fresh. Side effects (registry mutation, stale-file deletion,
// directory creation) are bundled into the decision call.
//
// Decisions are re-evaluated fresh on every call: existence first, then
// registry membership, then fingerprint equality.
type Gatekeeper struct {
	fs       ports.Filesystem
	registry *domain.TokenRegistry
	logger   ports.Logger
}

// New creates a new Gatekeeper.
func New(fs ports.Filesystem, registry *domain.TokenRegistry, logger ports.Logger) *Gatekeeper {
	return &Gatekeeper{
		fs:       fs,
		registry: registry,
		logger:   logger,
	}
}

// Decide evaluates the decision table for the given cache-file identity and
// fingerprint and returns the action the caller must execute:
//
//   - a read action guarantees the file is present at the identity's path
//   - a write action guarantees no file exists there and its directory does
//
// On a filesystem failure the registry is left unmodified for the identity so
// a subsequent call re-evaluates from scratch.
func (g *Gatekeeper) Decide(identity string, fp domain.Fingerprint, opts Options) (domain.Action, error) {
	action, err := g.evaluate(identity, fp, opts)
	if err != nil {
		return "", err
	}

	g.registry.RecordAction(identity, action)
	return action, nil
}

func (g *Gatekeeper) evaluate(identity string, fp domain.Fingerprint, opts Options) (domain.Action, error) {
	if !g.fs.Exists(identity) {
		if dir := filepath.Dir(identity); dir != "" && dir != "." {
			if err := g.fs.MakeDirs(dir); err != nil {
				return "", zerr.Wrap(err, "failed to create cache directory")
			}
		}
		g.registry.Record(identity, fp)
		return domain.ActionCreateCache, nil
	}

	if opts.ForceOverwrite {
		return g.overwrite(identity, fp)
	}

	if opts.Trust {
		g.registry.Record(identity, fp)
		return domain.ActionReadCacheTrusted, nil
	}

	known, ok := g.registry.Lookup(identity)
	if !ok {
		// First time this process sees the file: assume a file surviving
		// from a previous process is correct.
		g.logger.Info(fmt.Sprintf("assuming cache file is correct: %s", identity))
		g.registry.Record(identity, fp)
		return domain.ActionReadCacheTrusted, nil
	}

	if known == fp {
		return domain.ActionReadCacheVerified, nil
	}

	g.logger.Warn(fmt.Sprintf("fingerprint mismatch, removing stale cache: %s", identity))
	return g.overwrite(identity, fp)
}

func (g *Gatekeeper) overwrite(identity string, fp domain.Fingerprint) (domain.Action, error) {
	if err := g.fs.Remove(identity); err != nil {
		// Registry must not be advanced past a failed deletion.
		return "", zerr.Wrap(err, "failed to remove stale cache file")
	}
	g.registry.Record(identity, fp)
	return domain.ActionOverwriteCache, nil
}
