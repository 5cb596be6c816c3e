package app

import (
	"context"
	"math"

	"go.trai.ch/xpersist/internal/core/domain"
	"go.trai.ch/zerr"
)

// generatorSize is the length of every generated variable.
const generatorSize = 50

// Generators are the built-in deterministic dataset producers exposed by the
// CLI. Each takes a "scale" keyword argument.
var generatorNames = []string{"ones", "range", "sine"}

// GeneratorNames lists the available generators.
func GeneratorNames() []string {
	names := make([]string, len(generatorNames))
	copy(names, generatorNames)
	return names
}

// GeneratorFor returns the named generator as a ComputeFunc.
func GeneratorFor(name string) (ComputeFunc, error) {
	switch name {
	case "ones":
		return generate(func(i int, scale float64) float64 { return scale }), nil
	case "range":
		return generate(func(i int, scale float64) float64 { return float64(i) * scale }), nil
	case "sine":
		return generate(func(i int, scale float64) float64 {
			return scale * math.Sin(float64(i)/generatorSize*2*math.Pi)
		}), nil
	}
	return nil, zerr.With(domain.ErrUnknownGenerator, "generator", name)
}

func generate(fn func(i int, scale float64) float64) ComputeFunc {
	return func(ctx context.Context, args []any, kwargs map[string]any) (*domain.Dataset, error) {
		scale := 1.0
		if v, ok := kwargs["scale"]; ok {
			f, ok := v.(float64)
			if !ok {
				return nil, zerr.With(zerr.New("scale must be a float"), "scale", v)
			}
			scale = f
		}

		values := make([]float64, generatorSize)
		for i := range values {
			values[i] = fn(i, scale)
		}

		return &domain.Dataset{
			Variables: map[string]domain.Variable{
				"x": {Dims: []string{"dim_0"}, Values: values},
			},
		}, nil
	}
}
