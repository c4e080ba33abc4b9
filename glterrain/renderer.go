//go:build !tinygo && cgo

package glterrain

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/glgl/v4.6-core/glgl"
	"github.com/soypat/gterrain"
	"go.uber.org/multierr"
)

// MeshRenderer draws an indexed, vertex colored triangle mesh.
type MeshRenderer struct {
	prog     glgl.Program
	vao      uint32
	vbo      uint32
	ebo      uint32
	viewLoc  int32
	projLoc  int32
	nindices int
}

var _ gterrain.RenderTarget = (*MeshRenderer)(nil)

// NewMeshRenderer compiles the mesh shaders and allocates the vertex array.
func NewMeshRenderer() (*MeshRenderer, error) {
	prog, err := glgl.CompileProgram(glgl.ShaderSource{
		Vertex:   meshVertexShader,
		Fragment: meshFragmentShader,
	})
	if err != nil {
		return nil, fmt.Errorf("compiling mesh shader: %w", err)
	}
	r := &MeshRenderer{prog: prog}
	r.viewLoc, err = prog.UniformLocation("uView\x00")
	if err != nil {
		prog.Delete()
		return nil, err
	}
	r.projLoc, err = prog.UniformLocation("uProjection\x00")
	if err != nil {
		prog.Delete()
		return nil, err
	}
	gl.GenVertexArrays(1, &r.vao)
	if r.vao == 0 {
		prog.Delete()
		return nil, glErrOrMessage("generating mesh vertex array")
	}
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	const stride = int32(unsafe.Sizeof(gterrain.Vertex{}))
	gl.EnableVertexAttribArray(attribPos)
	gl.VertexAttribPointerWithOffset(attribPos, 3, gl.FLOAT, false, stride, unsafe.Offsetof(gterrain.Vertex{}.Pos))
	gl.EnableVertexAttribArray(attribColor)
	gl.VertexAttribPointerWithOffset(attribColor, 3, gl.FLOAT, false, stride, unsafe.Offsetof(gterrain.Vertex{}.Color))
	gl.BindVertexArray(0)
	err = glgl.Err()
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("configuring mesh vertex array: %w", err), r.Delete())
	}
	return r, nil
}

// UploadMesh implements [gterrain.RenderTarget].
func (r *MeshRenderer) UploadMesh(vertices []gterrain.Vertex, triangles []uint32) error {
	if r.vao == 0 {
		return errors.New("mesh renderer not initialized")
	}
	gl.BindVertexArray(r.vao)
	defer gl.BindVertexArray(0)
	bufferData(gl.ARRAY_BUFFER, r.vbo, vertices, gl.STATIC_DRAW)
	bufferData(gl.ELEMENT_ARRAY_BUFFER, r.ebo, triangles, gl.STATIC_DRAW)
	r.nindices = len(triangles)
	return glgl.Err()
}

// Draw implements [gterrain.RenderTarget].
func (r *MeshRenderer) Draw(indexCount int) error {
	if indexCount > r.nindices {
		return fmt.Errorf("draw of %d indices exceeds %d uploaded", indexCount, r.nindices)
	} else if indexCount == 0 {
		return nil
	}
	r.prog.Bind()
	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, int32(indexCount), gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
	return glgl.Err()
}

// SetView implements [gterrain.RenderTarget].
func (r *MeshRenderer) SetView(view mgl32.Mat4) error {
	r.prog.Bind()
	gl.UniformMatrix4fv(r.viewLoc, 1, false, &view[0])
	return glgl.Err()
}

// SetProjection implements [gterrain.RenderTarget].
func (r *MeshRenderer) SetProjection(projection mgl32.Mat4) error {
	r.prog.Bind()
	gl.UniformMatrix4fv(r.projLoc, 1, false, &projection[0])
	return glgl.Err()
}

// Delete releases the GPU resources of the renderer.
func (r *MeshRenderer) Delete() error {
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	r.prog.Delete()
	*r = MeshRenderer{}
	return glgl.Err()
}

// Overlay draws an RGBA image as a screen aligned quad.
type Overlay struct {
	prog    glgl.Program
	vao     uint32
	tex     uint32
	rectLoc int32
	size    image.Point
}

// NewOverlay compiles the overlay shaders and allocates its texture.
func NewOverlay() (*Overlay, error) {
	prog, err := glgl.CompileProgram(glgl.ShaderSource{
		Vertex:   overlayVertexShader,
		Fragment: overlayFragmentShader,
	})
	if err != nil {
		return nil, fmt.Errorf("compiling overlay shader: %w", err)
	}
	o := &Overlay{prog: prog}
	o.rectLoc, err = prog.UniformLocation("uRect\x00")
	if err != nil {
		prog.Delete()
		return nil, err
	}
	gl.GenVertexArrays(1, &o.vao)
	gl.GenTextures(1, &o.tex)
	gl.BindTexture(gl.TEXTURE_2D, o.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	err = glgl.Err()
	if err != nil {
		return nil, multierr.Append(err, o.Delete())
	}
	return o, nil
}

// Upload replaces the overlay texture with img.
func (o *Overlay) Upload(img *image.RGBA) error {
	bb := img.Bounds()
	if bb.Empty() {
		return errors.New("empty overlay image")
	}
	pix := img.Pix
	if img.Stride != 4*bb.Dx() || bb.Min != (image.Point{}) {
		tight := image.NewRGBA(image.Rect(0, 0, bb.Dx(), bb.Dy()))
		for y := 0; y < bb.Dy(); y++ {
			copy(tight.Pix[y*tight.Stride:(y+1)*tight.Stride], img.Pix[img.PixOffset(bb.Min.X, bb.Min.Y+y):])
		}
		pix = tight.Pix
	}
	gl.BindTexture(gl.TEXTURE_2D, o.tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(bb.Dx()), int32(bb.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	o.size = bb.Size()
	return glgl.Err()
}

// Draw draws the last uploaded image at pixel rectangle dst of a window of
// the given framebuffer size. Depth testing is disabled while drawing.
func (o *Overlay) Draw(dst image.Rectangle, width, height int) error {
	if o.size == (image.Point{}) {
		return nil
	}
	ndc := RectNDC(dst, width, height)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	o.prog.Bind()
	gl.Uniform4f(o.rectLoc, ndc[0], ndc[1], ndc[2], ndc[3])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, o.tex)
	gl.BindVertexArray(o.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	return glgl.Err()
}

// Delete releases the GPU resources of the overlay.
func (o *Overlay) Delete() error {
	if o.tex != 0 {
		gl.DeleteTextures(1, &o.tex)
	}
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
	}
	o.prog.Delete()
	*o = Overlay{}
	return glgl.Err()
}

// SetPolygonMode sets the rasterization mode of subsequent mesh draws.
func SetPolygonMode(m PolygonMode) error {
	switch m {
	case PolygonFill:
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	case PolygonLine:
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	case PolygonPoint:
		gl.PointSize(3)
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.POINT)
	default:
		return fmt.Errorf("invalid polygon mode %d", m)
	}
	return glgl.Err()
}

func bufferData[T any](target, buf uint32, slice []T, usage uint32) {
	gl.BindBuffer(target, buf)
	if len(slice) == 0 {
		gl.BufferData(target, 0, nil, usage)
		return
	}
	size := len(slice) * int(unsafe.Sizeof(slice[0]))
	gl.BufferData(target, size, unsafe.Pointer(&slice[0]), usage)
}

func glErrOrMessage(defaultMsg string) (err error) {
	err = glgl.Err()
	if err == nil {
		err = errors.New(defaultMsg)
	} else {
		err = fmt.Errorf("%s: %w", defaultMsg, err)
	}
	return err
}
