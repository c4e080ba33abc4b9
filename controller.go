package gterrain

import (
	"log"
	"time"
)

// Controller regenerates a [Terrain] when its parameters change. Changes are
// recorded with a dirty flag and applied on the next call to Frame, so at most
// one generate/update pair runs per frame.
type Controller struct {
	// Logger receives regeneration timings. Nil disables logging.
	Logger *log.Logger

	params  NoiseParameters
	field   NoiseField
	terrain *Terrain
	dirty   bool
}

// NewController returns a Controller that will generate terrain from params on its first Frame.
func NewController(params NoiseParameters, terrain *Terrain) *Controller {
	return &Controller{params: params, terrain: terrain, dirty: true}
}

// Parameters returns the current parameter set.
func (c *Controller) Parameters() NoiseParameters { return c.params }

// Field returns the most recently generated field.
func (c *Controller) Field() NoiseField { return c.field }

// Dirty reports whether the next Frame will regenerate the terrain.
func (c *Controller) Dirty() bool { return c.dirty }

// SetParameters replaces the parameter set and schedules regeneration if it changed.
func (c *Controller) SetParameters(p NoiseParameters) {
	if p != c.params {
		c.params = p
		c.dirty = true
	}
}

// RequestGenerate schedules regeneration with the current parameters.
func (c *Controller) RequestGenerate() { c.dirty = true }

// Frame regenerates the field and updates the terrain if a change is pending.
// On error the dirty flag is kept so the caller may retry after changing parameters.
func (c *Controller) Frame() (regenerated bool, err error) {
	if !c.dirty {
		return false, nil
	}
	start := time.Now()
	field := Generate(c.params)
	genElapsed := time.Since(start)
	err = c.terrain.Update(field)
	if err != nil {
		return false, err
	}
	c.field = field
	c.dirty = false
	if c.Logger != nil {
		c.Logger.Printf("generated %dx%d field in %s, meshed %d triangles in %s",
			field.Width(), field.Height(), genElapsed, c.terrain.Mesh().TriangleCount(), time.Since(start)-genElapsed)
	}
	return true, nil
}
