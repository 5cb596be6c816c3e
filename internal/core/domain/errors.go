package domain

import "go.trai.ch/zerr"

var (
	// ErrNilCompute is returned when a persister is constructed without a
	// compute function.
	ErrNilCompute = zerr.New("compute function must not be nil")

	// ErrUnknownFormat is returned when an unsupported storage format is
	// requested.
	ErrUnknownFormat = zerr.New("unknown format")

	// ErrUnknownGenerator is returned when the CLI is asked for a dataset
	// generator that does not exist.
	ErrUnknownGenerator = zerr.New("unknown generator")
)
