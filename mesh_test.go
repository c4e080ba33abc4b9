package gterrain_test

import (
	"testing"

	"github.com/soypat/geometry/ms3"
	"github.com/soypat/gterrain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldFrom(data [][]float32) gterrain.NoiseField {
	return gterrain.NoiseField{Data: data, Min: 0, Max: 1}
}

func requireValidIndices(t *testing.T, mesh gterrain.MeshData) {
	t.Helper()
	for i, idx := range mesh.Triangles {
		if int(idx) >= len(mesh.Vertices) {
			t.Fatalf("triangle index %d = %d out of range [0,%d)", i, idx, len(mesh.Vertices))
		}
	}
}

func TestMeshEndToEnd(t *testing.T) {
	field := gterrain.Generate(scenarioParams())
	mesh, err := gterrain.Mesh(field)
	require.NoError(t, err)
	assert.Len(t, mesh.Vertices, 16)
	assert.Len(t, mesh.Triangles, 54)
	assert.Equal(t, 18, mesh.TriangleCount())
	requireValidIndices(t, mesh)
}

func TestMeshSizeInvariants(t *testing.T) {
	params := gterrain.DefaultParameters()
	for _, dims := range [][2]int{{1, 1}, {1, 7}, {7, 1}, {2, 2}, {5, 9}, {32, 17}} {
		params.MapWidth, params.MapHeight = dims[0], dims[1]
		mesh, err := gterrain.Mesh(gterrain.Generate(params))
		require.NoError(t, err)
		W, H := dims[0], dims[1]
		assert.Len(t, mesh.Vertices, W*H, dims)
		assert.Len(t, mesh.Triangles, 6*(W-1)*(H-1), dims)
		requireValidIndices(t, mesh)
	}
}

func TestMeshLayout(t *testing.T) {
	// 3 columns (x) by 2 rows (z).
	field := fieldFrom([][]float32{
		{0.2, 0.6},
		{0.7, 1},
		{0.5, 0.95},
	})
	mesh, err := gterrain.Mesh(field)
	require.NoError(t, err)
	wantPos := []ms3.Vec{
		{X: -1, Y: 0.5, Z: 0.5},
		{X: -1, Y: 0.6, Z: -0.5},
		{X: 0, Y: 0.7, Z: 0.5},
		{X: 0, Y: 1, Z: -0.5},
		{X: 1, Y: 0.5, Z: 0.5},
		{X: 1, Y: 0.95, Z: -0.5},
	}
	for i, want := range wantPos {
		assert.Equal(t, want, mesh.Vertices[i].Pos, "vertex %d", i)
	}
	// Cells at x=0 and x=1, each split in two triangles with H=2.
	assert.Equal(t, []uint32{
		0, 3, 2, 3, 0, 1,
		2, 5, 4, 5, 2, 3,
	}, mesh.Triangles)

	bb := mesh.Bounds()
	assert.Equal(t, ms3.Vec{X: -1, Y: 0.5, Z: -0.5}, bb.Min)
	assert.Equal(t, ms3.Vec{X: 1, Y: 1, Z: 0.5}, bb.Max)
}

func TestMeshWindingConsistent(t *testing.T) {
	params := gterrain.DefaultParameters()
	params.MapWidth, params.MapHeight = 9, 6
	mesh, err := gterrain.Mesh(gterrain.Generate(params))
	require.NoError(t, err)
	// Project onto XZ: every triangle must have the same orientation.
	for i, tri := range mesh.AppendTriangles(nil) {
		e1 := ms3.Sub(tri[1], tri[0])
		e2 := ms3.Sub(tri[2], tri[0])
		cross := e1.X*e2.Z - e1.Z*e2.X
		if cross <= 0 {
			t.Fatalf("triangle %d has inconsistent winding: %v", i, tri)
		}
	}
}

func TestSeaLevelFlattening(t *testing.T) {
	heights := []float32{0, 0.1, 0.3, 0.49, 0.5}
	field := fieldFrom([][]float32{heights})
	mesh, err := gterrain.Mesh(field)
	require.NoError(t, err)
	for i, v := range mesh.Vertices {
		assert.Equal(t, float32(0.5), v.Pos.Y, "height %g", heights[i])
	}
	assert.Equal(t, float32(0.51), gterrain.DisplayHeight(0.51))
}

func TestColorBanding(t *testing.T) {
	tests := []struct {
		h     float32
		biome gterrain.Biome
		rgb   [3]uint8
	}{
		{0.3, gterrain.BiomeWater, [3]uint8{5, 67, 166}},
		{0.52, gterrain.BiomeShore, [3]uint8{174, 184, 83}},
		{0.6, gterrain.BiomeLowland, [3]uint8{26, 145, 38}},
		{0.85, gterrain.BiomeHighland, [3]uint8{74, 43, 27}},
		{0.95, gterrain.BiomePeak, [3]uint8{255, 255, 255}},
		// Band edges.
		{0.5, gterrain.BiomeShore, [3]uint8{174, 184, 83}},
		{0.55, gterrain.BiomeLowland, [3]uint8{26, 145, 38}},
		{0.9, gterrain.BiomeHighland, [3]uint8{74, 43, 27}},
		{1, gterrain.BiomePeak, [3]uint8{255, 255, 255}},
	}
	heights := make([]float32, len(tests))
	for i, test := range tests {
		heights[i] = test.h
		biome := gterrain.ClassifyHeight(test.h)
		assert.Equal(t, test.biome, biome, "h=%g got %s", test.h, biome)
		r, g, b := biome.RGB()
		assert.Equal(t, test.rgb, [3]uint8{r, g, b})
	}
	mesh, err := gterrain.Mesh(fieldFrom([][]float32{heights}))
	require.NoError(t, err)
	for i, test := range tests {
		want := ms3.Vec{X: float32(test.rgb[0]) / 255, Y: float32(test.rgb[1]) / 255, Z: float32(test.rgb[2]) / 255}
		got := mesh.Vertices[i].Color
		assert.InDelta(t, want.X, got.X, 1e-6)
		assert.InDelta(t, want.Y, got.Y, 1e-6)
		assert.InDelta(t, want.Z, got.Z, 1e-6)
	}
}

func TestMeshErrors(t *testing.T) {
	_, err := gterrain.Mesh(gterrain.NoiseField{})
	assert.ErrorIs(t, err, gterrain.ErrEmptyField)
	_, err = gterrain.Mesh(fieldFrom([][]float32{{}, {}}))
	assert.ErrorIs(t, err, gterrain.ErrEmptyField)
	_, err = gterrain.Mesh(fieldFrom([][]float32{{0.1, 0.2}, {0.3}}))
	assert.Error(t, err)
}

func TestMeshDecoupledFromField(t *testing.T) {
	field := fieldFrom([][]float32{{0.7, 0.8}, {0.9, 0.6}})
	mesh, err := gterrain.Mesh(field)
	require.NoError(t, err)
	field.Data[0][0] = 0
	assert.Equal(t, float32(0.7), mesh.Vertices[0].Pos.Y)
}
