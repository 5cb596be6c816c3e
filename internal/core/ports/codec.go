package ports

import "go.trai.ch/xpersist/internal/core/domain"

// DatasetCodec reads and writes datasets in one on-disk format.
type DatasetCodec interface {
	// Format returns the encoding this codec handles.
	Format() domain.Format

	// Write serializes the dataset to the given path.
	Write(ds *domain.Dataset, path string) error

	// Read deserializes the dataset at the given path.
	Read(path string, opts domain.ReadOptions) (*domain.Dataset, error)
}

// CodecResolver maps a format to its codec.
type CodecResolver interface {
	// For returns the codec for the format, or domain.ErrUnknownFormat.
	For(format domain.Format) (DatasetCodec, error)
}
