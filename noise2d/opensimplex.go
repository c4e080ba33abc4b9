package noise2d

import (
	"github.com/ojrac/opensimplex-go"
)

// OpenSimplex is OpenSimplex noise normalized to [0,1].
type OpenSimplex struct {
	n opensimplex.Noise
}

var _ Sampler = (*OpenSimplex)(nil)

func NewOpenSimplex(seed int64) *OpenSimplex {
	return &OpenSimplex{n: opensimplex.NewNormalized(seed)}
}

// Sample2D implements [Sampler].
func (s *OpenSimplex) Sample2D(x, y float64) float64 {
	return clamp01(s.n.Eval2(x, y))
}
