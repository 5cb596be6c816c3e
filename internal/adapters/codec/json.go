package codec

import (
	"encoding/json"
	"os"

	"go.trai.ch/xpersist/internal/core/domain"
	"go.trai.ch/xpersist/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DatasetCodec = (*JSON)(nil)

// JSON encodes datasets as indented JSON.
type JSON struct{}

// NewJSON creates a new JSON codec.
func NewJSON() *JSON {
	return &JSON{}
}

// Format returns domain.FormatJSON.
func (c *JSON) Format() domain.Format {
	return domain.FormatJSON
}

// Write serializes the dataset to the given path.
func (c *JSON) Write(ds *domain.Dataset, path string) error {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal dataset")
	}

	//nolint:gosec // Path is resolved by the gatekeeper from trusted settings
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write cache file"), "path", path)
	}
	return nil
}

// Read deserializes the dataset at the given path.
func (c *JSON) Read(path string, opts domain.ReadOptions) (*domain.Dataset, error) {
	//nolint:gosec // Path is resolved by the gatekeeper from trusted settings
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read cache file"), "path", path)
	}

	var ds domain.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal cache file"), "path", path)
	}

	return ds.Select(opts.Variables), nil
}
