package gterrain

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"github.com/soypat/geometry/ms2"
	"github.com/soypat/gterrain/noise2d"
)

// Ranges of the parameter editors.
const (
	MinMapSize, MaxMapSize         = 1, 256
	MinScale, MaxScale             = 0.01, 50
	MinOctaves, MaxOctaves         = 1, 50
	MinPersistence, MaxPersistence = 0.1, 5
	MinLacunarity, MaxLacunarity   = 0.1, 5
	MinSeed, MaxSeed               = 1, 1_000_000
	MinOffset, MaxOffset           = 1, 100_000
)

// NoiseParameters is the input of a generation run. The zero value is not
// useful, start from [DefaultParameters].
type NoiseParameters struct {
	MapWidth  int
	MapHeight int
	Seed      int
	// Scale divides grid coordinates before sampling. Values <= 0 are
	// replaced by a small positive constant during generation.
	Scale       float32
	Octaves     int
	Persistence float32 // Amplitude multiplier per octave.
	Lacunarity  float32 // Frequency multiplier per octave.
	Offset      ms2.Vec
	Kind        noise2d.Kind
}

// DefaultParameters returns the parameter set the viewer starts with.
func DefaultParameters() NoiseParameters {
	return NoiseParameters{
		MapWidth:    128,
		MapHeight:   128,
		Seed:        12,
		Scale:       27,
		Octaves:     4,
		Persistence: 0.5,
		Lacunarity:  2,
		Offset:      ms2.Vec{X: 0.12, Y: 0.4},
	}
}

// Validate reports parameters that [Generate] would silently adjust.
func (p NoiseParameters) Validate() error {
	var errs []error
	if p.MapWidth < 1 || p.MapHeight < 1 {
		errs = append(errs, fmt.Errorf("map dimensions must be positive, got %dx%d", p.MapWidth, p.MapHeight))
	}
	if p.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %g", p.Scale))
	}
	if p.Octaves < 1 {
		errs = append(errs, fmt.Errorf("octaves must be positive, got %d", p.Octaves))
	}
	return errors.Join(errs...)
}

// RegisterFlags binds the parameters to command line flags of fs. Current
// values of p are the flag defaults.
func (p *NoiseParameters) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&p.MapWidth, "width", p.MapWidth, "noise map width in vertices")
	fs.IntVar(&p.MapHeight, "height", p.MapHeight, "noise map height in vertices")
	fs.IntVar(&p.Seed, "seed", p.Seed, "noise seed")
	fs.Var((*float32Value)(&p.Scale), "scale", "noise scale, larger values zoom in")
	fs.IntVar(&p.Octaves, "octaves", p.Octaves, "number of fractal noise layers")
	fs.Var((*float32Value)(&p.Persistence), "persistence", "amplitude multiplier per octave")
	fs.Var((*float32Value)(&p.Lacunarity), "lacunarity", "frequency multiplier per octave")
	fs.Var((*float32Value)(&p.Offset.X), "offx", "sampling offset along x")
	fs.Var((*float32Value)(&p.Offset.Y), "offy", "sampling offset along y")
	fs.Var(&p.Kind, "noise", "noise primitive: perlin or opensimplex")
}

type float32Value float32

func (f *float32Value) Set(s string) error {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return err
	}
	*f = float32Value(v)
	return nil
}

func (f *float32Value) String() string {
	return strconv.FormatFloat(float64(*f), 'g', -1, 32)
}

// sanitized applies the generation leniency rules.
func (p NoiseParameters) sanitized() NoiseParameters {
	if p.Scale <= 0 {
		p.Scale = minGenerateScale
	}
	p.MapWidth = max(p.MapWidth, 1)
	p.MapHeight = max(p.MapHeight, 1)
	p.Octaves = max(p.Octaves, 1)
	return p
}

// ParameterSink receives parameter editors. Slider methods edit the value in
// place and return true when it changed. Button returns true when activated.
type ParameterSink interface {
	Label(text string)
	IntSlider(label string, v *int, min, max int) bool
	FloatSlider(label string, v *float32, min, max float32) bool
	Button(label string) bool
}

// Inspectable is implemented by values that describe their own editors.
type Inspectable interface {
	RenderControls(sink ParameterSink)
}

var _ Inspectable = (*NoiseParameters)(nil)

// RenderControls implements [Inspectable].
func (p *NoiseParameters) RenderControls(sink ParameterSink) {
	sink.Label("Noise params")
	sink.IntSlider("Width", &p.MapWidth, MinMapSize, MaxMapSize)
	sink.IntSlider("Height", &p.MapHeight, MinMapSize, MaxMapSize)
	sink.FloatSlider("Scale", &p.Scale, MinScale, MaxScale)
	sink.IntSlider("Octaves", &p.Octaves, MinOctaves, MaxOctaves)
	sink.FloatSlider("Persistence", &p.Persistence, MinPersistence, MaxPersistence)
	sink.FloatSlider("Lacunarity", &p.Lacunarity, MinLacunarity, MaxLacunarity)
	sink.IntSlider("Seed", &p.Seed, MinSeed, MaxSeed)
	sink.FloatSlider("Offset X", &p.Offset.X, MinOffset, MaxOffset)
	sink.FloatSlider("Offset Y", &p.Offset.Y, MinOffset, MaxOffset)
	sink.Button("Generate")
}
