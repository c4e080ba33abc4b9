package noise2d

import (
	"github.com/aquilax/go-perlin"
)

// Gradient noise tuning. A single internal octave is sampled so alpha and beta
// are inert; the fractal layering is done by the caller.
const (
	perlinAlpha   = 2
	perlinBeta    = 2
	perlinOctaves = 1
)

// Perlin is classic gradient noise rescaled to [0,1].
type Perlin struct {
	p *perlin.Perlin
}

var _ Sampler = (*Perlin)(nil)

// NewPerlin returns gradient noise whose permutation table is seeded with seed.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)}
}

// Sample2D implements [Sampler].
func (p *Perlin) Sample2D(x, y float64) float64 {
	return clamp01(p.p.Noise2D(x, y)*0.5 + 0.5)
}
