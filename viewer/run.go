//go:build !tinygo && cgo

package viewer

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/soypat/gterrain/camera"
	"github.com/soypat/gterrain/glterrain"
	"github.com/soypat/gterrain/panel"
	"go.uber.org/multierr"
)

var movementKeys = map[glfw.Key]camera.Movement{
	glfw.KeyW:     camera.Forward,
	glfw.KeyS:     camera.Backward,
	glfw.KeyA:     camera.Left,
	glfw.KeyD:     camera.Right,
	glfw.KeySpace: camera.Up,
	glfw.KeyC:     camera.Down,
}

var commandKeys = map[glfw.Key]Command{
	glfw.KeyEscape: CmdClose,
	glfw.KeyK:      CmdShowCursor,
	glfw.KeyH:      CmdHideCursor,
	glfw.KeyP:      CmdCyclePolygonMode,
}

var panelKeys = map[glfw.Key]panel.Action{
	glfw.KeyTab:   panel.FocusNext,
	glfw.KeyUp:    panel.Increment,
	glfw.KeyRight: panel.Increment,
	glfw.KeyDown:  panel.Decrement,
	glfw.KeyLeft:  panel.Decrement,
	glfw.KeyEnter: panel.Activate,
}

// Run opens the viewer window and blocks until it is closed or cfg.Context is done.
// It must be called from the main OS thread.
func Run(cfg Config) (err error) {
	window, term, err := glterrain.StartGLFW(cfg.Window)
	if err != nil {
		return err
	}
	defer term()
	renderer, err := glterrain.NewMeshRenderer()
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, renderer.Delete()) }()
	overlay, err := glterrain.NewOverlay()
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, overlay.Delete()) }()

	s := newSession(cfg, renderer)
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if m, ok := movementKeys[key]; ok && !s.cursorFree {
			if action != glfw.Repeat {
				s.setMoving(m, action == glfw.Press)
			}
			return
		}
		if action == glfw.Release {
			return
		}
		if cmd, ok := commandKeys[key]; ok && action == glfw.Press {
			s.command(cmd)
			switch cmd {
			case CmdClose:
				w.SetShouldClose(true)
			case CmdShowCursor:
				w.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
			case CmdHideCursor:
				w.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
			case CmdCyclePolygonMode:
				logf(cfg, "polygon mode %s", s.mode)
			}
			return
		}
		if a, ok := panelKeys[key]; ok {
			coarse := mods&glfw.ModShift != 0
			if a == panel.FocusNext && coarse {
				a = panel.FocusPrev
			}
			s.panelInput(a, coarse)
		}
	})
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		s.look(xpos, ypos)
	})
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		s.cam.Zoom(float32(yoff))
	})
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})

	ctx := cfg.Context
	c := cfg.ClearColor
	previousTime := glfw.GetTime()
	for !window.ShouldClose() && !s.closing {
		if ctx != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
		currentTime := glfw.GetTime()
		dt := float32(currentTime - previousTime)
		previousTime = currentTime

		_, err = s.update(dt)
		if err != nil {
			return fmt.Errorf("updating terrain: %w", err)
		}
		width, height := window.GetFramebufferSize()
		gl.ClearColor(c[0], c[1], c[2], c[3])
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		err = glterrain.SetPolygonMode(s.mode)
		if err != nil {
			return err
		}
		aspect := float32(1)
		if height > 0 {
			aspect = float32(width) / float32(height)
		}
		err = s.render(aspect)
		if err != nil {
			return fmt.Errorf("rendering terrain: %w", err)
		}
		err = glterrain.SetPolygonMode(glterrain.PolygonFill)
		if err != nil {
			return err
		}
		err = drawPanel(s, overlay, width, height)
		if err != nil {
			return err
		}
		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// drawPanel uploads the panel image when it changed and draws the overlay.
func drawPanel(s *session, overlay *glterrain.Overlay, width, height int) error {
	if s.cfg.PanelWidth <= 0 {
		return nil
	}
	img, rect, err := s.panelImage()
	if err != nil {
		return fmt.Errorf("drawing panel: %w", err)
	}
	if img != nil {
		err = overlay.Upload(img)
		if err != nil {
			return err
		}
		s.panelRect = rect
	}
	if s.panelRect == (image.Rectangle{}) {
		return nil
	}
	return overlay.Draw(s.panelRect, width, height)
}

func logf(cfg Config, format string, args ...any) {
	if cfg.Logger != nil {
		cfg.Logger.Printf(format, args...)
	}
}
