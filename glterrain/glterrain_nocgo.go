//go:build tinygo || !cgo

package glterrain

import (
	"errors"
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/gterrain"
)

var errNoCgo = errors.New("glterrain requires cgo for OpenGL rendering")

// MeshRenderer is unavailable without cgo.
type MeshRenderer struct{}

var _ gterrain.RenderTarget = (*MeshRenderer)(nil)

func NewMeshRenderer() (*MeshRenderer, error) { return nil, errNoCgo }

func (r *MeshRenderer) UploadMesh([]gterrain.Vertex, []uint32) error { return errNoCgo }
func (r *MeshRenderer) Draw(int) error                              { return errNoCgo }
func (r *MeshRenderer) SetView(mgl32.Mat4) error                    { return errNoCgo }
func (r *MeshRenderer) SetProjection(mgl32.Mat4) error              { return errNoCgo }
func (r *MeshRenderer) Delete() error                               { return nil }

// Overlay is unavailable without cgo.
type Overlay struct{}

func NewOverlay() (*Overlay, error) { return nil, errNoCgo }

func (o *Overlay) Upload(*image.RGBA) error              { return errNoCgo }
func (o *Overlay) Draw(image.Rectangle, int, int) error { return errNoCgo }
func (o *Overlay) Delete() error                        { return nil }

func SetPolygonMode(PolygonMode) error { return errNoCgo }
