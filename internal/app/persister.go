package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.trai.ch/xpersist/internal/core/domain"
	"go.trai.ch/xpersist/internal/core/ports"
	"go.trai.ch/xpersist/internal/engine/gatekeeper"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// ComputeFunc is the opaque deterministic computation whose result is
// memoized. It is invoked only when the gatekeeper decides create_cache or
// overwrite_cache.
type ComputeFunc func(ctx context.Context, args []any, kwargs map[string]any) (*domain.Dataset, error)

// PersistOptions configure one Persister. Zero values fall back to
// process-wide settings (Dir, Format) or generated values (Name).
type PersistOptions struct {
	// Name is the logical cache-file name. When empty, a unique identifier
	// is generated per construction so repeated unnamed constructions never
	// collide and always create a fresh cache.
	Name string
	// Dir overrides the default cache directory.
	Dir string
	// Format is the on-disk encoding.
	Format domain.Format
	// Key is the computation identity folded into the fingerprint. Defaults
	// to the resolved name. Callers that change the computation behind a
	// name should change the key (or an argument) to invalidate the cache.
	Key string
	// Trust accepts any existing cache file without fingerprint
	// verification.
	Trust bool
	// ForceOverwrite always treats an existing cache file as stale.
	ForceOverwrite bool
	// ReadOptions are passed to the codec when reading a cached dataset.
	ReadOptions domain.ReadOptions
}

// Persister binds a computation to a cache file and exposes the single
// decide-then-execute entry point. Construct it through App.Persist.
//
// Concurrent identical calls (same identity and fingerprint) are collapsed
// into one execution. Concurrent calls with differing fingerprints against
// the same identity are a race; callers must serialize them.
type Persister struct {
	compute   ComputeFunc
	entry     domain.CacheEntry
	key       string
	gate      *gatekeeper.Gatekeeper
	gateOpts  gatekeeper.Options
	tokenizer ports.Tokenizer
	codec     ports.DatasetCodec
	logger    ports.Logger
	readOpts  domain.ReadOptions
	group     singleflight.Group
}

// NewPersister validates the configuration and binds the computation to its
// cache file. It fails fast on a nil compute function or an unknown format,
// before any filesystem access.
func NewPersister(
	compute ComputeFunc,
	gate *gatekeeper.Gatekeeper,
	tokenizer ports.Tokenizer,
	codecs ports.CodecResolver,
	logger ports.Logger,
	opts PersistOptions,
) (*Persister, error) {
	if compute == nil {
		return nil, domain.ErrNilCompute
	}

	format := opts.Format
	if format == "" {
		format = domain.FormatJSON
	}
	codec, err := codecs.For(format)
	if err != nil {
		return nil, err
	}

	name := opts.Name
	if name == "" {
		name = uuid.NewString()
	}

	key := opts.Key
	if key == "" {
		key = name
	}

	return &Persister{
		compute: compute,
		entry: domain.CacheEntry{
			Dir:    opts.Dir,
			Name:   name,
			Format: format,
		},
		key:       key,
		gate:      gate,
		gateOpts:  gatekeeper.Options{Trust: opts.Trust, ForceOverwrite: opts.ForceOverwrite},
		tokenizer: tokenizer,
		codec:     codec,
		logger:    logger,
		readOpts:  opts.ReadOptions,
	}, nil
}

// Identity returns the cache-file identity this persister resolves to.
func (p *Persister) Identity() string {
	return p.entry.Path()
}

// Call runs the cached computation with positional arguments only.
func (p *Persister) Call(ctx context.Context, args ...any) (*domain.Dataset, error) {
	return p.CallKW(ctx, args, nil)
}

// CallKW runs the cached computation: it fingerprints the call, asks the
// gatekeeper for a decision, and either reads the existing cache file or
// invokes the computation and persists its result.
func (p *Persister) CallKW(ctx context.Context, args []any, kwargs map[string]any) (*domain.Dataset, error) {
	fp, err := p.tokenizer.Tokenize(p.key, args, kwargs)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to fingerprint call")
	}

	identity := p.entry.Path()
	v, err, _ := p.group.Do(identity+"\x00"+string(fp), func() (any, error) {
		return p.execute(ctx, identity, fp, args, kwargs)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Dataset), nil
}

func (p *Persister) execute(ctx context.Context, identity string, fp domain.Fingerprint, args []any, kwargs map[string]any) (*domain.Dataset, error) {
	action, err := p.gate.Decide(identity, fp, p.gateOpts)
	if err != nil {
		return nil, err
	}

	if action.IsRead() {
		p.logger.Info(fmt.Sprintf("reading cached file: %s", identity))
		return p.codec.Read(identity, p.readOpts)
	}

	ds, err := p.compute(ctx, args, kwargs)
	if err != nil {
		return nil, zerr.Wrap(err, "computation failed")
	}

	p.logger.Info(fmt.Sprintf("writing cache file: %s", identity))
	if err := p.codec.Write(ds, identity); err != nil {
		return nil, err
	}
	return ds, nil
}
