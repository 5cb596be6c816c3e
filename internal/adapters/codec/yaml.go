package codec

import (
	"os"

	"go.trai.ch/xpersist/internal/core/domain"
	"go.trai.ch/xpersist/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.DatasetCodec = (*YAML)(nil)

// YAML encodes datasets as YAML documents.
type YAML struct{}

// NewYAML creates a new YAML codec.
func NewYAML() *YAML {
	return &YAML{}
}

// Format returns domain.FormatYAML.
func (c *YAML) Format() domain.Format {
	return domain.FormatYAML
}

// Write serializes the dataset to the given path.
func (c *YAML) Write(ds *domain.Dataset, path string) error {
	data, err := yaml.Marshal(ds)
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
func (c *YAML) Read(path string, opts domain.ReadOptions) (*domain.Dataset, error) {
	//nolint:gosec // Path is resolved by the gatekeeper from trusted settings
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read cache file"), "path", path)
	}

	var ds domain.Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal cache file"), "path", path)
	}

	return ds.Select(opts.Variables), nil
}
