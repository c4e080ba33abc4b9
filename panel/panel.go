// Package panel implements an immediate mode parameter panel. Controls are
// declared every frame through the [gterrain.ParameterSink] methods, edited
// with keyboard input and rasterized to an RGBA image for display as an overlay.
package panel

import (
	"fmt"
	"strconv"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms1"
	"github.com/soypat/gterrain"
)

// Action is a keyboard driven panel command.
type Action uint8

const (
	ActionNone Action = iota
	FocusNext
	FocusPrev
	Increment
	Decrement
	Activate
)

// Slider step sizes. Float sliders step a fraction of their range.
const (
	intStep         = 1
	intCoarseStep   = 10
	floatSteps      = 500
	floatCoarseDivs = 20
)

type controlKind uint8

const (
	kindLabel controlKind = iota
	kindInt
	kindFloat
	kindButton
)

type control struct {
	kind  controlKind
	label string
	value string
	frac  float32 // Slider position in [0,1].
}

// Result summarizes the controls of one Begin/End frame.
type Result struct {
	// Changed is set when any slider value was edited.
	Changed bool
	// Generate is set when a button was activated.
	Generate bool
}

// Panel is an immediate mode [gterrain.ParameterSink].
//
// Usage per frame:
//
//	p.Begin()
//	params.RenderControls(p)
//	res := p.End()
type Panel struct {
	// Title is drawn above the controls.
	Title string

	controls  []control
	focus     int
	nfocus    int // Focusable controls declared so far this frame.
	pending   Action
	coarse    bool
	result    Result
	inFrame   bool
	lastCount int

	field  gterrain.NoiseField
	drawer *drawer
}

var _ gterrain.ParameterSink = (*Panel)(nil)

// New returns an empty panel with the given title.
func New(title string) *Panel {
	return &Panel{Title: title}
}

// Input queues a keyboard action applied to the focused control during the
// next frame. Coarse selects larger slider steps.
func (p *Panel) Input(a Action, coarse bool) {
	switch a {
	case FocusNext:
		p.moveFocus(1)
	case FocusPrev:
		p.moveFocus(-1)
	default:
		p.pending = a
		p.coarse = coarse
	}
}

// Focus returns the index of the focused control among focusable controls.
func (p *Panel) Focus() int { return p.focus }

// Begin starts a new frame of control declarations.
func (p *Panel) Begin() {
	p.controls = p.controls[:0]
	p.nfocus = 0
	p.result = Result{}
	p.inFrame = true
}

// End finishes the frame, consuming the pending action.
func (p *Panel) End() Result {
	p.pending = ActionNone
	p.coarse = false
	p.inFrame = false
	p.lastCount = p.nfocus
	if p.nfocus > 0 && p.focus >= p.nfocus {
		p.focus = p.nfocus - 1
	}
	return p.result
}

// SetField sets the field shown in the heightmap and color map previews.
func (p *Panel) SetField(field gterrain.NoiseField) { p.field = field }

// Label implements [gterrain.ParameterSink].
func (p *Panel) Label(text string) {
	p.controls = append(p.controls, control{kind: kindLabel, label: text})
}

// IntSlider implements [gterrain.ParameterSink]. Edited values are clamped to [min,max].
func (p *Panel) IntSlider(label string, v *int, min, max int) bool {
	changed := false
	if p.claimFocus() {
		step := intStep
		if p.coarse {
			step = intCoarseStep
		}
		switch p.pending {
		case Increment:
			changed = p.setInt(v, *v+step, min, max)
		case Decrement:
			changed = p.setInt(v, *v-step, min, max)
		}
	}
	p.controls = append(p.controls, control{
		kind:  kindInt,
		label: label,
		value: strconv.Itoa(*v),
		frac:  fraction(float32(*v), float32(min), float32(max)),
	})
	return changed
}

// FloatSlider implements [gterrain.ParameterSink]. Edited values are clamped to [min,max].
func (p *Panel) FloatSlider(label string, v *float32, min, max float32) bool {
	changed := false
	if p.claimFocus() {
		step := (max - min) / floatSteps
		if p.coarse {
			step = (max - min) / floatCoarseDivs
		}
		switch p.pending {
		case Increment:
			changed = p.setFloat(v, *v+step, min, max)
		case Decrement:
			changed = p.setFloat(v, *v-step, min, max)
		}
	}
	p.controls = append(p.controls, control{
		kind:  kindFloat,
		label: label,
		value: strconv.FormatFloat(float64(*v), 'g', 4, 32),
		frac:  fraction(*v, min, max),
	})
	return changed
}

// Button implements [gterrain.ParameterSink].
func (p *Panel) Button(label string) bool {
	pressed := p.claimFocus() && p.pending == Activate
	if pressed {
		p.result.Generate = true
	}
	p.controls = append(p.controls, control{kind: kindButton, label: label})
	return pressed
}

func (p *Panel) String() string {
	return fmt.Sprintf("panel %q: %d controls, focus %d", p.Title, len(p.controls), p.focus)
}

// claimFocus registers a focusable control and reports whether it has focus.
func (p *Panel) claimFocus() bool {
	idx := p.nfocus
	p.nfocus++
	return idx == p.focus
}

func (p *Panel) moveFocus(delta int) {
	n := p.lastCount
	if p.inFrame && p.nfocus > n {
		n = p.nfocus
	}
	if n == 0 {
		return
	}
	p.focus = ((p.focus+delta)%n + n) % n
}

func (p *Panel) setInt(v *int, nv, min, max int) bool {
	// Slider ranges fit in float32's exact integer range.
	nv = int(ms1.Clamp(float32(nv), float32(min), float32(max)))
	if nv == *v {
		return false
	}
	*v = nv
	p.result.Changed = true
	return true
}

func (p *Panel) setFloat(v *float32, nv, min, max float32) bool {
	nv = ms1.Clamp(nv, min, max)
	if nv == *v {
		return false
	}
	*v = nv
	p.result.Changed = true
	return true
}

func fraction(v, min, max float32) float32 {
	if max <= min || math32.IsNaN(v) {
		return 0
	}
	return ms1.Clamp((v-min)/(max-min), 0, 1)
}
