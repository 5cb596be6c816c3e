package domain

// Format identifies an on-disk dataset encoding. The set of formats is closed.
type Format string

const (
	// FormatJSON is the default on-disk encoding.
	FormatJSON Format = "json"
	// FormatYAML is an alternative human-readable encoding.
	FormatYAML Format = "yaml"
)

// KnownFormat reports whether f is a supported encoding.
func KnownFormat(f Format) bool {
	return f == FormatJSON || f == FormatYAML
}

// Suffix returns the file name suffix for the format, including the dot.
func (f Format) Suffix() string {
	return "." + string(f)
}
