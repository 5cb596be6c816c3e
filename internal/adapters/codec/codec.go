// Package codec implements the on-disk dataset encodings.
package codec

import (
	"go.trai.ch/xpersist/internal/core/domain"
	"go.trai.ch/xpersist/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CodecResolver = (*Resolver)(nil)

// Resolver maps formats to codecs. The format set is closed.
type Resolver struct {
	codecs map[domain.Format]ports.DatasetCodec
}

// NewResolver creates a resolver over all supported codecs.
func NewResolver() *Resolver {
	r := &Resolver{codecs: make(map[domain.Format]ports.DatasetCodec)}
	for _, c := range []ports.DatasetCodec{NewJSON(), NewYAML()} {
		r.codecs[c.Format()] = c
	}
	return r
}

// For returns the codec for the given format.
func (r *Resolver) For(format domain.Format) (ports.DatasetCodec, error) {
	c, ok := r.codecs[format]
	if !ok {
		return nil, zerr.With(domain.ErrUnknownFormat, "format", string(format))
	}
	return c, nil
}
