package gterrain

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"
	"github.com/soypat/gterrain/noise2d"
)

const (
	minGenerateScale = 1e-4
	// octave offsets are drawn from [0, octaveOffsetRange).
	octaveOffsetRange = 100_000
	flatFieldValue    = 0.5
)

// NoiseField is a normalized 2D height field indexed Data[x][z].
// After generation every value lies in [0,1] with Min==0 and Max==1,
// or all values equal 0.5 for a flat field.
type NoiseField struct {
	Data     [][]float32
	Min, Max float32
}

// Width returns the number of columns (x extent) of the field.
func (f NoiseField) Width() int { return len(f.Data) }

// Height returns the number of rows (z extent) of the field.
func (f NoiseField) Height() int {
	if len(f.Data) == 0 {
		return 0
	}
	return len(f.Data[0])
}

// At returns the height at column x and row z.
func (f NoiseField) At(x, z int) float32 { return f.Data[x][z] }

// Generate synthesizes a new normalized NoiseField from params. It is deterministic:
// the same parameters always produce bit-identical data.
func Generate(params NoiseParameters) NoiseField {
	seed := int64(params.Seed)
	sampler, err := noise2d.New(params.Kind, seed)
	if err != nil {
		sampler = noise2d.NewPerlin(seed)
	}
	return GenerateWith(noise2d.NewOffsetRand(seed), sampler, params)
}

// GenerateWith is like [Generate] but draws octave offsets from rng and samples
// the given noise primitive. rng is advanced params.Octaves times.
func GenerateWith(rng *rand.Rand, sampler noise2d.Sampler, params NoiseParameters) NoiseField {
	params = params.sanitized()
	width, height := params.MapWidth, params.MapHeight
	offsets := OctaveOffsets(rng, params.Octaves, params.Offset)

	var (
		scale       = float64(params.Scale)
		persistence = float64(params.Persistence)
		lacunarity  = float64(params.Lacunarity)
		halfWidth   = float64(width) / 2
		halfHeight  = float64(height) / 2
		minHeight   = float32(math32.MaxFloat32)
		maxHeight   = float32(-math32.MaxFloat32)
	)
	backing := make([]float32, width*height)
	data := make([][]float32, width)
	for x := 0; x < width; x++ {
		col := backing[x*height : (x+1)*height : (x+1)*height]
		data[x] = col
		for z := 0; z < height; z++ {
			amplitude, frequency := 1.0, 1.0
			var noiseHeight float64
			for _, off := range offsets {
				sx := (float64(x)-halfWidth)/scale*frequency + float64(off.X)
				sy := (float64(z)-halfHeight)/scale*frequency + float64(off.Y)
				n := sampler.Sample2D(sx, sy)*2 - 1
				noiseHeight += n * amplitude
				amplitude *= persistence
				frequency *= lacunarity
			}
			h := float32(noiseHeight)
			col[z] = h
			minHeight = math32.Min(minHeight, h)
			maxHeight = math32.Max(maxHeight, h)
		}
	}
	field := NoiseField{Data: data, Min: minHeight, Max: maxHeight}
	field.normalize()
	return field
}

// OctaveOffsets draws one sampling offset per octave from rng, each shifted by offset.
func OctaveOffsets(rng *rand.Rand, octaves int, offset ms2.Vec) []ms2.Vec {
	offsets := make([]ms2.Vec, max(octaves, 0))
	for i := range offsets {
		offsets[i] = ms2.Add(offset, ms2.Vec{
			X: float32(rng.IntN(octaveOffsetRange)),
			Y: float32(rng.IntN(octaveOffsetRange)),
		})
	}
	return offsets
}

// normalize rescales data from [Min,Max] to [0,1] by inverse interpolation.
func (f *NoiseField) normalize() {
	if !(f.Max > f.Min) {
		for _, col := range f.Data {
			for z := range col {
				col[z] = flatFieldValue
			}
		}
		f.Min, f.Max = flatFieldValue, flatFieldValue
		return
	}
	lo, span := f.Min, f.Max-f.Min
	for _, col := range f.Data {
		for z, v := range col {
			// Division keeps the extrema exact: (Max-Min)/(Max-Min) == 1.
			col[z] = (v - lo) / span
		}
	}
	f.Min, f.Max = 0, 1
}
