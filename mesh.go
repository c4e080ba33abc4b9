package gterrain

import (
	"fmt"
	"math"

	"github.com/soypat/geometry/ms3"
)

// Vertex is a mesh vertex. Its memory layout is six consecutive float32 so a
// []Vertex can be uploaded to a vertex buffer without conversion.
type Vertex struct {
	Pos   ms3.Vec
	Color ms3.Vec
}

// MeshData is an indexed triangle mesh. Triangles holds three vertex indices
// per triangle with consistent winding across the grid.
type MeshData struct {
	Vertices  []Vertex
	Triangles []uint32
}

// Mesh builds the terrain mesh of field. The grid is centered on the origin
// in the XZ plane with height along Y. The returned mesh shares no memory with field.
func Mesh(field NoiseField) (MeshData, error) {
	width, height := field.Width(), field.Height()
	if width == 0 || height == 0 {
		return MeshData{}, ErrEmptyField
	}
	for x, col := range field.Data {
		if len(col) != height {
			return MeshData{}, fmt.Errorf("%w: column %d has %d rows, want %d", errRaggedField, x, len(col), height)
		}
	}
	if uint64(width)*uint64(height) > math.MaxUint32 {
		return MeshData{}, errIndexOverflow
	}
	topLeftX := float32(width-1) / -2
	topLeftZ := float32(height-1) / 2
	mesh := MeshData{
		Vertices:  make([]Vertex, 0, width*height),
		Triangles: make([]uint32, 0, 6*(width-1)*(height-1)),
	}
	stride := uint32(height)
	var v uint32
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			h := field.Data[x][y]
			mesh.Vertices = append(mesh.Vertices, Vertex{
				Pos:   ms3.Vec{X: float32(x) + topLeftX, Y: DisplayHeight(h), Z: topLeftZ - float32(y)},
				Color: HeightColor(h),
			})
			if x < width-1 && y < height-1 {
				mesh.addTriangle(v, v+stride+1, v+stride)
				mesh.addTriangle(v+stride+1, v, v+1)
			}
			v++
		}
	}
	return mesh, nil
}

func (m *MeshData) addTriangle(a, b, c uint32) {
	m.Triangles = append(m.Triangles, a, b, c)
}

// TriangleCount returns the number of triangles in the mesh.
func (m MeshData) TriangleCount() int { return len(m.Triangles) / 3 }

// Bounds returns the axis aligned bounding box of the mesh vertices.
func (m MeshData) Bounds() ms3.Box {
	if len(m.Vertices) == 0 {
		return ms3.Box{}
	}
	bb := ms3.Box{Min: m.Vertices[0].Pos, Max: m.Vertices[0].Pos}
	for _, vert := range m.Vertices[1:] {
		bb.Min = ms3.MinElem(bb.Min, vert.Pos)
		bb.Max = ms3.MaxElem(bb.Max, vert.Pos)
	}
	return bb
}

// AppendTriangles resolves the index list into positional triangles and appends them to dst.
func (m MeshData) AppendTriangles(dst []ms3.Triangle) []ms3.Triangle {
	for i := 0; i+2 < len(m.Triangles); i += 3 {
		dst = append(dst, ms3.Triangle{
			m.Vertices[m.Triangles[i]].Pos,
			m.Vertices[m.Triangles[i+1]].Pos,
			m.Vertices[m.Triangles[i+2]].Pos,
		})
	}
	return dst
}
