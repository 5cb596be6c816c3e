// Package token implements fingerprint derivation using xxhash.
package token

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/xpersist/internal/core/domain"
	"go.trai.ch/xpersist/internal/core/ports"
)

var _ ports.Tokenizer = (*Tokenizer)(nil)

// Tokenizer derives fingerprints from a computation identity and its call
// arguments. Positional arguments are hashed in order; keyword arguments are
// hashed in sorted key order so that map iteration order never leaks into the
// fingerprint.
type Tokenizer struct{}

// New creates a new Tokenizer.
func New() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize computes the fingerprint for one invocation.
func (t *Tokenizer) Tokenize(identity string, args []any, kwargs map[string]any) (domain.Fingerprint, error) {
	hasher := xxhash.New()

	_, _ = hasher.WriteString(identity)
	_, _ = hasher.Write([]byte{0}) // Separator

	// Positional arguments
	for _, arg := range args {
		writeValue(hasher, arg)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	// Keyword arguments, sorted for determinism
	keys := make([]string, 0, len(kwargs))
	for k := range kwargs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		_, _ = hasher.WriteString(k)
		_, _ = hasher.Write([]byte{'='})
		writeValue(hasher, kwargs[k])
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})

	return domain.Fingerprint(fmt.Sprintf("%016x", hasher.Sum64())), nil
}

// writeValue renders one argument into the digest. The rendering includes the
// dynamic type so that e.g. int(1) and float64(1) fingerprint differently.
func writeValue(hasher *xxhash.Digest, v any) {
	_, _ = fmt.Fprintf(hasher, "%T:%v", v, v)
}
