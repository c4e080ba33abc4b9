package gterrain_test

import (
	"testing"

	"github.com/soypat/geometry/ms2"
	"github.com/soypat/gterrain"
	"github.com/soypat/gterrain/noise2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioParams() gterrain.NoiseParameters {
	return gterrain.NoiseParameters{
		MapWidth:    4,
		MapHeight:   4,
		Seed:        12,
		Scale:       27,
		Octaves:     4,
		Persistence: 0.5,
		Lacunarity:  2,
		Offset:      ms2.Vec{X: 0.12, Y: 0.4},
	}
}

// requireNormalized checks every value is in [0,1] and both extrema are hit,
// or that the field took the flat fill path.
func requireNormalized(t *testing.T, field gterrain.NoiseField) {
	t.Helper()
	var hasZero, hasOne, allHalf = false, false, true
	for x := range field.Data {
		for z, v := range field.Data[x] {
			if v < 0 || v > 1 {
				t.Fatalf("value at (%d,%d) out of [0,1]: %g", x, z, v)
			}
			hasZero = hasZero || v == 0
			hasOne = hasOne || v == 1
			allHalf = allHalf && v == 0.5
		}
	}
	if allHalf {
		assert.Equal(t, float32(0.5), field.Min)
		assert.Equal(t, float32(0.5), field.Max)
		return
	}
	assert.True(t, hasZero, "no value equals 0")
	assert.True(t, hasOne, "no value equals 1")
	assert.Equal(t, float32(0), field.Min)
	assert.Equal(t, float32(1), field.Max)
}

func TestGenerateDeterministic(t *testing.T) {
	for _, kind := range []noise2d.Kind{noise2d.KindPerlin, noise2d.KindOpenSimplex} {
		params := gterrain.DefaultParameters()
		params.MapWidth, params.MapHeight = 48, 31
		params.Kind = kind
		a := gterrain.Generate(params)
		b := gterrain.Generate(params)
		require.Equal(t, a.Data, b.Data, kind.String())

		params.Seed++
		c := gterrain.Generate(params)
		assert.NotEqual(t, a.Data, c.Data, "seed change did not change field")
	}
}

func TestGenerateNormalized(t *testing.T) {
	params := gterrain.DefaultParameters()
	for _, mod := range []func(p *gterrain.NoiseParameters){
		func(p *gterrain.NoiseParameters) {},
		func(p *gterrain.NoiseParameters) { p.Octaves = 1 },
		func(p *gterrain.NoiseParameters) { p.Octaves = 12; p.Persistence = 2; p.Lacunarity = 0.5 },
		func(p *gterrain.NoiseParameters) { p.MapWidth, p.MapHeight = 256, 3 },
		func(p *gterrain.NoiseParameters) { p.Scale = 0.01 },
		func(p *gterrain.NoiseParameters) { p.Kind = noise2d.KindOpenSimplex },
	} {
		p := params
		p.MapWidth, p.MapHeight = 64, 64
		mod(&p)
		field := gterrain.Generate(p)
		require.Equal(t, p.MapWidth, field.Width())
		require.Equal(t, p.MapHeight, field.Height())
		requireNormalized(t, field)
	}
}

func TestGenerateScaleGuard(t *testing.T) {
	for _, scale := range []float32{0, -3} {
		params := gterrain.DefaultParameters()
		params.MapWidth, params.MapHeight = 16, 16
		params.Scale = scale
		var field gterrain.NoiseField
		require.NotPanics(t, func() { field = gterrain.Generate(params) })
		requireNormalized(t, field)
	}
}

func TestGenerateFlatField(t *testing.T) {
	params := scenarioParams()
	params.MapWidth, params.MapHeight = 1, 1
	field := gterrain.Generate(params)
	require.Equal(t, [][]float32{{0.5}}, field.Data)
	assert.Equal(t, float32(0.5), field.Min)
	assert.Equal(t, float32(0.5), field.Max)

	// Constant sampler always yields a flat field.
	field = gterrain.GenerateWith(noise2d.NewOffsetRand(1), constSampler(0.3), scenarioParams())
	for _, col := range field.Data {
		for _, v := range col {
			assert.Equal(t, float32(0.5), v)
		}
	}
}

func TestGenerateLenientDimensions(t *testing.T) {
	params := scenarioParams()
	params.MapWidth, params.MapHeight, params.Octaves = 0, -2, 0
	require.Error(t, params.Validate())
	field := gterrain.Generate(params)
	assert.Equal(t, 1, field.Width())
	assert.Equal(t, 1, field.Height())
	require.NoError(t, scenarioParams().Validate())
}

func TestOctaveOffsets(t *testing.T) {
	offset := ms2.Vec{X: 0.12, Y: 0.4}
	a := gterrain.OctaveOffsets(noise2d.NewOffsetRand(12), 8, offset)
	b := gterrain.OctaveOffsets(noise2d.NewOffsetRand(12), 8, offset)
	require.Len(t, a, 8)
	assert.Equal(t, a, b)
	for _, off := range a {
		rel := ms2.Sub(off, offset)
		assert.True(t, rel.X >= 0 && rel.X < 100000, "x offset out of range: %v", rel.X)
		assert.True(t, rel.Y >= 0 && rel.Y < 100000, "y offset out of range: %v", rel.Y)
	}
	// Fewer octaves yields a prefix of the same sequence.
	c := gterrain.OctaveOffsets(noise2d.NewOffsetRand(12), 3, offset)
	assert.Equal(t, a[:3], c)
}

type constSampler float64

func (c constSampler) Sample2D(x, y float64) float64 { return float64(c) }
