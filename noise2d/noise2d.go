// Package noise2d implements the coherent 2D noise primitives sampled by the
// fractal terrain generator and the seeded random source used to place octaves.
package noise2d

import (
	"errors"
	"fmt"
	"strings"
)

// Sampler evaluates a 2D coherent noise function. Sample2D returns values
// nominally in [0,1] and must be deterministic for a given Sampler.
type Sampler interface {
	Sample2D(x, y float64) float64
}

// Kind selects the noise primitive used by [New].
type Kind uint8

const (
	KindPerlin Kind = iota
	KindOpenSimplex
)

var errUnknownKind = errors.New("unknown noise kind")

// New returns a seeded Sampler of the given kind.
func New(kind Kind, seed int64) (Sampler, error) {
	switch kind {
	case KindPerlin:
		return NewPerlin(seed), nil
	case KindOpenSimplex:
		return NewOpenSimplex(seed), nil
	}
	return nil, fmt.Errorf("%w %d", errUnknownKind, kind)
}

func (k Kind) String() string {
	switch k {
	case KindPerlin:
		return "perlin"
	case KindOpenSimplex:
		return "opensimplex"
	}
	return "Kind(" + fmt.Sprint(uint8(k)) + ")"
}

// Set implements [flag.Value].
func (k *Kind) Set(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "perlin":
		*k = KindPerlin
	case "opensimplex", "simplex":
		*k = KindOpenSimplex
	default:
		return fmt.Errorf("%w %q", errUnknownKind, s)
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	} else if v > 1 {
		return 1
	}
	return v
}
