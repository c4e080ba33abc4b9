package gterrain

import (
	"image/color"

	"github.com/soypat/geometry/ms3"
)

// Height band edges over normalized height. Heights at or below SeaLevel are
// also flattened to SeaLevel when meshed.
const (
	SeaLevel      = 0.50
	ShoreLevel    = 0.55
	LowlandLevel  = 0.80
	HighlandLevel = 0.90
)

// Biome is the height band a terrain vertex belongs to.
type Biome uint8

const (
	BiomeWater Biome = iota
	BiomeShore
	BiomeLowland
	BiomeHighland
	BiomePeak
)

var biomeColors = [...][3]uint8{
	BiomeWater:    {5, 67, 166},
	BiomeShore:    {174, 184, 83},
	BiomeLowland:  {26, 145, 38},
	BiomeHighland: {74, 43, 27},
	BiomePeak:     {255, 255, 255},
}

// ClassifyHeight returns the biome of normalized height h.
func ClassifyHeight(h float32) Biome {
	switch {
	case h < SeaLevel:
		return BiomeWater
	case h < ShoreLevel:
		return BiomeShore
	case h < LowlandLevel:
		return BiomeLowland
	case h <= HighlandLevel:
		return BiomeHighland
	}
	return BiomePeak
}

// HeightColor returns the biome color of h with components in [0,1].
func HeightColor(h float32) ms3.Vec {
	return ClassifyHeight(h).Color()
}

// DisplayHeight returns the vertex height used for h, pinning everything at
// or under sea level to a flat plane.
func DisplayHeight(h float32) float32 {
	if h <= SeaLevel {
		return SeaLevel
	}
	return h
}

// RGB returns the 8 bit color components of the biome.
func (b Biome) RGB() (r, g, bl uint8) {
	c := biomeColors[b]
	return c[0], c[1], c[2]
}

// RGBA returns the opaque color of the biome.
func (b Biome) RGBA() color.RGBA {
	r, g, bl := b.RGB()
	return color.RGBA{R: r, G: g, B: bl, A: 255}
}

// Color returns the biome color with components in [0,1].
func (b Biome) Color() ms3.Vec {
	r, g, bl := b.RGB()
	return ms3.Scale(1./255, ms3.Vec{X: float32(r), Y: float32(g), Z: float32(bl)})
}

func (b Biome) String() string {
	switch b {
	case BiomeWater:
		return "water"
	case BiomeShore:
		return "shore"
	case BiomeLowland:
		return "lowland"
	case BiomeHighland:
		return "highland"
	case BiomePeak:
		return "peak"
	}
	return "unknown"
}
