// Package viewer is the interactive terrain application: a GLFW window showing
// the terrain mesh through a fly camera, with the parameter panel drawn as an
// overlay. Parameter edits regenerate the terrain on the next frame.
//
// Keys: W,S,A,D,Space,C fly the camera. Esc closes the window, K releases the
// cursor to edit the panel and H captures it again for mouse look. P cycles
// fill, line and point rasterization. With the cursor released Tab and
// Shift+Tab move the panel focus, arrow keys edit the focused slider (Shift
// for coarse steps) and Enter activates buttons.
package viewer

import (
	"context"
	"image"
	"log"

	"github.com/soypat/gterrain"
	"github.com/soypat/gterrain/camera"
	"github.com/soypat/gterrain/glterrain"
	"github.com/soypat/gterrain/panel"
)

// Config configures Run.
type Config struct {
	Window glterrain.WindowConfig
	// Params is the noise parameter set of the first generation.
	Params gterrain.NoiseParameters
	// CameraSpeed in world units per second and CameraSensitivity in degrees per pixel.
	CameraSpeed       float32
	CameraSensitivity float32
	// FrameTerrain places the camera over the terrain after each regeneration
	// instead of keeping the default camera position.
	FrameTerrain bool
	// PanelWidth is the overlay width in pixels. Zero hides the panel.
	PanelWidth int
	ClearColor [4]float32
	// Logger receives regeneration timings and non fatal errors. Nil disables logging.
	Logger *log.Logger
	// Context cancels the render loop when done. May be nil.
	Context context.Context
}

// DefaultConfig returns a 1280x720 viewer starting from [gterrain.DefaultParameters].
func DefaultConfig() Config {
	return Config{
		Window:            glterrain.DefaultWindowConfig(),
		Params:            gterrain.DefaultParameters(),
		CameraSpeed:       camera.DefaultSpeed,
		CameraSensitivity: camera.DefaultSensitivity,
		PanelWidth:        280,
		ClearColor:        [4]float32{0.7, 0.7, 1.0, 1.0},
	}
}

// Command is a discrete viewer action bound to a key.
type Command uint8

const (
	CmdNone Command = iota
	CmdClose
	CmdShowCursor
	CmdHideCursor
	CmdCyclePolygonMode
)

const panelMargin = 10

// session holds the application state that does not depend on a window so
// that the frame logic can run against any [gterrain.RenderTarget].
type session struct {
	cfg     Config
	terrain *gterrain.Terrain
	ctl     *gterrain.Controller
	cam     *camera.Camera
	panel   *panel.Panel
	params  gterrain.NoiseParameters

	moving     [camera.Down + 1]bool
	mode       glterrain.PolygonMode
	cursorFree bool
	closing    bool
	// panelDirty is set when the panel image must be redrawn and uploaded.
	panelDirty bool
	panelRect  image.Rectangle
}

func newSession(cfg Config, target gterrain.RenderTarget) *session {
	terrain := gterrain.NewTerrain(target)
	ctl := gterrain.NewController(cfg.Params, terrain)
	ctl.Logger = cfg.Logger
	cam := camera.New()
	if cfg.CameraSpeed > 0 {
		cam.Speed = cfg.CameraSpeed
	}
	if cfg.CameraSensitivity > 0 {
		cam.Sensitivity = cfg.CameraSensitivity
	}
	return &session{
		cfg:        cfg,
		terrain:    terrain,
		ctl:        ctl,
		cam:        cam,
		panel:      panel.New("Terrain"),
		params:     cfg.Params,
		panelDirty: true,
	}
}

func (s *session) command(c Command) {
	switch c {
	case CmdClose:
		s.closing = true
	case CmdShowCursor:
		s.cursorFree = true
		s.clearMovement()
	case CmdHideCursor:
		s.cursorFree = false
		s.cam.ResetLook()
	case CmdCyclePolygonMode:
		s.mode = s.mode.Next()
	}
}

func (s *session) setMoving(m camera.Movement, pressed bool) {
	if int(m) < len(s.moving) {
		s.moving[m] = pressed
	}
}

func (s *session) clearMovement() {
	s.moving = [camera.Down + 1]bool{}
}

func (s *session) panelInput(a panel.Action, coarse bool) {
	if !s.cursorFree {
		return
	}
	s.panel.Input(a, coarse)
	s.panelDirty = true
}

// look rotates the camera while the cursor is captured.
func (s *session) look(x, y float64) {
	if !s.cursorFree {
		s.cam.Look(float32(x), float32(y))
	}
}

// update advances the session by dt seconds: camera movement, panel edits
// and terrain regeneration when parameters changed.
func (s *session) update(dt float32) (regenerated bool, err error) {
	for m, on := range s.moving {
		if on {
			s.cam.Move(camera.Movement(m), dt)
		}
	}
	s.panel.Begin()
	s.params.RenderControls(s.panel)
	res := s.panel.End()
	if res.Changed {
		s.ctl.SetParameters(s.params)
	}
	if res.Generate {
		s.ctl.RequestGenerate()
	}
	regenerated, err = s.ctl.Frame()
	if err != nil {
		return false, err
	}
	if regenerated {
		s.panel.SetField(s.ctl.Field())
		s.panelDirty = true
		if s.cfg.FrameTerrain {
			mesh := s.terrain.Mesh()
			s.cam.FrameMesh(mesh.Bounds())
		}
	}
	return regenerated, nil
}

func (s *session) render(aspect float32) error {
	return s.terrain.Render(s.cam.View(), s.cam.Projection(aspect))
}

// panelImage redraws the panel if needed and returns it with its window
// rectangle. A nil image means the panel is unchanged or hidden.
func (s *session) panelImage() (*image.RGBA, image.Rectangle, error) {
	w := s.cfg.PanelWidth
	if w <= 0 || !s.panelDirty {
		return nil, image.Rectangle{}, nil
	}
	h := s.panel.Size(w)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	err := s.panel.Draw(img)
	if err != nil {
		return nil, image.Rectangle{}, err
	}
	s.panelDirty = false
	return img, img.Bounds().Add(image.Pt(panelMargin, panelMargin)), nil
}
