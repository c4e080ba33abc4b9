package panel_test

import (
	"image"
	"testing"

	"github.com/soypat/gterrain"
	"github.com/soypat/gterrain/panel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frame runs one immediate mode frame over params.
func frame(p *panel.Panel, params *gterrain.NoiseParameters) panel.Result {
	p.Begin()
	params.RenderControls(p)
	return p.End()
}

func TestPanelSliders(t *testing.T) {
	p := panel.New("Terrain")
	params := gterrain.DefaultParameters()
	res := frame(p, &params)
	assert.Equal(t, panel.Result{}, res)

	// Width is the first focusable control.
	p.Input(panel.Increment, false)
	res = frame(p, &params)
	assert.True(t, res.Changed)
	assert.False(t, res.Generate)
	assert.Equal(t, 129, params.MapWidth)

	p.Input(panel.Increment, true)
	frame(p, &params)
	assert.Equal(t, 139, params.MapWidth)

	// Pending actions are consumed by a single frame.
	res = frame(p, &params)
	assert.False(t, res.Changed)
	assert.Equal(t, 139, params.MapWidth)

	// Clamped at the top of the range.
	params.MapWidth = gterrain.MaxMapSize
	p.Input(panel.Increment, true)
	res = frame(p, &params)
	assert.False(t, res.Changed)
	assert.Equal(t, gterrain.MaxMapSize, params.MapWidth)

	// Float slider: Persistence is the fifth focusable control.
	for i := 0; i < 4; i++ {
		p.Input(panel.FocusNext, false)
	}
	assert.Equal(t, 4, p.Focus())
	p.Input(panel.Decrement, true)
	frame(p, &params)
	wantStep := float32(gterrain.MaxPersistence-gterrain.MinPersistence) / 20
	assert.InDelta(t, 0.5-wantStep, params.Persistence, 1e-6)
	for i := 0; i < 10; i++ {
		p.Input(panel.Decrement, true)
		frame(p, &params)
	}
	assert.Equal(t, float32(gterrain.MinPersistence), params.Persistence)
}

func TestPanelOutOfRangeValueUntouched(t *testing.T) {
	p := panel.New("Terrain")
	params := gterrain.DefaultParameters()
	frame(p, &params)
	for i := 0; i < 7; i++ {
		p.Input(panel.FocusNext, false) // Offset X.
	}
	frame(p, &params)
	assert.Equal(t, float32(0.12), params.Offset.X, "declaring a control must not clamp")
	p.Input(panel.Decrement, false)
	res := frame(p, &params)
	assert.True(t, res.Changed)
	assert.Equal(t, float32(gterrain.MinOffset), params.Offset.X, "edits clamp into range")
}

func TestPanelIntSliderClamp(t *testing.T) {
	p := panel.New("Terrain")
	params := gterrain.DefaultParameters()
	frame(p, &params)
	for i := 0; i < 6; i++ {
		p.Input(panel.FocusNext, false) // Seed.
	}
	params.Seed = gterrain.MaxSeed - 3
	p.Input(panel.Increment, true)
	res := frame(p, &params)
	assert.True(t, res.Changed)
	assert.Equal(t, gterrain.MaxSeed, params.Seed)

	params.Seed = 5 * gterrain.MaxSeed
	p.Input(panel.Decrement, false)
	frame(p, &params)
	assert.Equal(t, gterrain.MaxSeed, params.Seed)

	params.Seed = gterrain.MinSeed + 1
	p.Input(panel.Decrement, true)
	frame(p, &params)
	assert.Equal(t, gterrain.MinSeed, params.Seed)
}

func TestPanelFocusWrapsAndButton(t *testing.T) {
	p := panel.New("Terrain")
	params := gterrain.DefaultParameters()
	frame(p, &params)
	p.Input(panel.FocusPrev, false)
	assert.Equal(t, 9, p.Focus(), "focus wraps to Generate button")
	p.Input(panel.Activate, false)
	res := frame(p, &params)
	assert.True(t, res.Generate)
	assert.False(t, res.Changed)
	p.Input(panel.FocusNext, false)
	assert.Equal(t, 0, p.Focus())
}

func TestPanelDraw(t *testing.T) {
	p := panel.New("Terrain")
	params := gterrain.DefaultParameters()
	params.MapWidth, params.MapHeight = 16, 16
	frame(p, &params)
	field := gterrain.Generate(params)
	p.SetField(field)

	const width = 260
	height := p.Size(width)
	require.Greater(t, height, 11*22)
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	require.NoError(t, p.Draw(dst))

	// Previews occupy the bottom of the panel: the color map must show biome colors.
	found := false
	biomes := map[[3]uint8]bool{}
	for _, b := range []gterrain.Biome{gterrain.BiomeWater, gterrain.BiomeShore, gterrain.BiomeLowland, gterrain.BiomeHighland, gterrain.BiomePeak} {
		r, g, bl := b.RGB()
		biomes[[3]uint8{r, g, bl}] = true
	}
	for y := height / 2; y < height && !found; y++ {
		for x := width / 2; x < width; x++ {
			c := dst.RGBAAt(x, y)
			if biomes[[3]uint8{c.R, c.G, c.B}] {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "color map preview not drawn")
}
