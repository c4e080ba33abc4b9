// Package gterrain generates procedural terrain: a fractal noise heightmap
// normalized to [0,1] and the colored, indexed triangle mesh built from it.
//
// The package performs no I/O and does not depend on a graphics API. Meshes are
// handed to a [RenderTarget] which is implemented by package glterrain for OpenGL.
package gterrain

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrEmptyField is returned when meshing a field with no rows or columns.
	ErrEmptyField = errors.New("empty noise field")
	// ErrUninitialized is returned by [Terrain.Render] before the first successful [Terrain.Update].
	ErrUninitialized = errors.New("terrain has no mesh")

	errRaggedField   = errors.New("noise field columns differ in length")
	errIndexOverflow = errors.New("mesh vertex count exceeds 32 bit index range")
	errNoTarget      = errors.New("terrain has no render target")
)

// RenderTarget is the rendering boundary a [Terrain] submits its mesh to.
// Calls are synchronous from the caller's perspective.
type RenderTarget interface {
	// UploadMesh replaces the GPU resident vertex and index data.
	UploadMesh(vertices []Vertex, triangles []uint32) error
	// Draw submits an indexed draw call of indexCount indices.
	Draw(indexCount int) error
	SetView(view mgl32.Mat4) error
	SetProjection(projection mgl32.Mat4) error
}
