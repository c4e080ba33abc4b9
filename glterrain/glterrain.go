// Package glterrain renders terrain meshes with OpenGL 4.6. It implements
// [gterrain.RenderTarget] and provides the panel overlay quad, polygon mode
// switching and GLFW window startup used by the viewer.
//
// All functions that touch OpenGL must be called from the thread that owns
// the GL context. They require cgo; without it they return an error.
package glterrain

import (
	"image"
)

// WindowConfig configures the window created by StartGLFW.
type WindowConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	// SwapInterval is the number of screen refreshes between buffer swaps. 1 enables vsync.
	SwapInterval int
}

// DefaultWindowConfig returns the window configuration of the terrain viewer.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Title:        "gterrain",
		Width:        1280,
		Height:       720,
		Resizable:    true,
		SwapInterval: 1,
	}
}

// PolygonMode selects how mesh triangles are rasterized.
type PolygonMode uint8

const (
	PolygonFill PolygonMode = iota
	PolygonLine
	PolygonPoint
	numPolygonModes
)

// Next returns the mode after m, cycling Fill, Line, Point.
func (m PolygonMode) Next() PolygonMode {
	return (m + 1) % numPolygonModes
}

func (m PolygonMode) String() string {
	switch m {
	case PolygonFill:
		return "fill"
	case PolygonLine:
		return "line"
	case PolygonPoint:
		return "point"
	}
	return "PolygonMode(?)"
}

// RectNDC converts a pixel rectangle in a window of the given size, origin at
// the top left, to normalized device coordinates (x0, y0, x1, y1) where
// (x0,y0) is the bottom left corner.
func RectNDC(r image.Rectangle, width, height int) [4]float32 {
	if width <= 0 || height <= 0 {
		return [4]float32{}
	}
	w, h := float32(width), float32(height)
	return [4]float32{
		2*float32(r.Min.X)/w - 1,
		1 - 2*float32(r.Max.Y)/h,
		2*float32(r.Max.X)/w - 1,
		1 - 2*float32(r.Min.Y)/h,
	}
}

// Attribute locations shared by the mesh shader and the vertex layout.
const (
	attribPos   = 0
	attribColor = 1
)

const meshVertexShader = `#version 460
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;
uniform mat4 uView;
uniform mat4 uProjection;
out vec3 vColor;
void main() {
	vColor = aColor;
	gl_Position = uProjection * uView * vec4(aPos, 1.0);
}
` + "\x00"

const meshFragmentShader = `#version 460
in vec3 vColor;
out vec4 fragColor;
void main() {
	fragColor = vec4(vColor, 1.0);
}
` + "\x00"

const overlayVertexShader = `#version 460
uniform vec4 uRect; // NDC x0,y0,x1,y1.
out vec2 vTexCoord;
void main() {
	vec2 corner = vec2(gl_VertexID & 1, (gl_VertexID >> 1) & 1);
	vTexCoord = vec2(corner.x, 1.0 - corner.y);
	gl_Position = vec4(mix(uRect.xy, uRect.zw, corner), 0.0, 1.0);
}
` + "\x00"

const overlayFragmentShader = `#version 460
in vec2 vTexCoord;
uniform sampler2D uTex;
out vec4 fragColor;
void main() {
	fragColor = texture(uTex, vTexCoord);
}
` + "\x00"
