// Package app implements the application layer for xpersist.
package app

import (
	"go.trai.ch/xpersist/internal/core/domain"
	"go.trai.ch/xpersist/internal/core/ports"
	"go.trai.ch/xpersist/internal/engine/gatekeeper"
)

// App wires the gatekeeper and its collaborators into the persister factory
// the CLI (and tests) use.
type App struct {
	settings  *domain.Settings
	gate      *gatekeeper.Gatekeeper
	registry  *domain.TokenRegistry
	tokenizer ports.Tokenizer
	codecs    ports.CodecResolver
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	settings *domain.Settings,
	gate *gatekeeper.Gatekeeper,
	registry *domain.TokenRegistry,
	tokenizer ports.Tokenizer,
	codecs ports.CodecResolver,
	logger ports.Logger,
) *App {
	return &App{
		settings:  settings,
		gate:      gate,
		registry:  registry,
		tokenizer: tokenizer,
		codecs:    codecs,
		logger:    logger,
	}
}

// Persist binds a computation to a cache file, filling unset options from the
// process-wide settings.
func (a *App) Persist(compute ComputeFunc, opts PersistOptions) (*Persister, error) {
	if opts.Dir == "" {
		opts.Dir = a.settings.CacheDir
	}
	if opts.Format == "" {
		opts.Format = a.settings.Format
	}
	return NewPersister(compute, a.gate, a.tokenizer, a.codecs, a.logger, opts)
}

// LastAction returns the most recent action decided for a cache-file
// identity in this process.
func (a *App) LastAction(identity string) (domain.Action, bool) {
	return a.registry.LastAction(identity)
}

// Open reads a cached dataset by name without going through a decision,
// for inspection commands.
func (a *App) Open(name string, format domain.Format, opts domain.ReadOptions) (*domain.Dataset, error) {
	if format == "" {
		format = a.settings.Format
	}
	codec, err := a.codecs.For(format)
	if err != nil {
		return nil, err
	}
	entry := domain.CacheEntry{Dir: a.settings.CacheDir, Name: name, Format: format}
	return codec.Read(entry.Path(), opts)
}

// Settings returns the process-wide settings the app was built with.
func (a *App) Settings() *domain.Settings {
	return a.settings
}
