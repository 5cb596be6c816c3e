package domain

// Variable is a single named array in a Dataset.
type Variable struct {
	Dims   []string  `json:"dims,omitempty" yaml:"dims,omitempty"`
	Values []float64 `json:"values" yaml:"values"`
}

// Dataset is the structured array result of a cached computation.
type Dataset struct {
	Attrs     map[string]string   `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Variables map[string]Variable `json:"variables" yaml:"variables"`
}

// ReadOptions carries format-specific options for reading a cached dataset.
type ReadOptions struct {
	// Variables restricts the read to the named variables. Empty means all.
	Variables []string
}

// Select returns a copy of the dataset restricted to the named variables.
// An empty selection returns ds unchanged. Unknown names are ignored.
func (ds *Dataset) Select(names []string) *Dataset {
	if len(names) == 0 {
		return ds
	}
	out := &Dataset{
		Attrs:     ds.Attrs,
		Variables: make(map[string]Variable, len(names)),
	}
	for _, name := range names {
		if v, ok := ds.Variables[name]; ok {
			out.Variables[name] = v
		}
	}
	return out
}
