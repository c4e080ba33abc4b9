package gterrain

import (
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// State is the lifecycle state of a [Terrain].
type State uint8

const (
	StateUninitialized State = iota
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	}
	return "State(" + fmt.Sprint(uint8(s)) + ")"
}

// Terrain owns the current terrain mesh and submits it to a [RenderTarget].
// Update and Render may be called from different goroutines; the mesh handoff
// is guarded so readers never observe a partially replaced mesh.
type Terrain struct {
	target RenderTarget

	mu         sync.Mutex
	mesh       MeshData
	state      State
	generation uint64
	uploaded   uint64 // generation last uploaded to target.
}

// NewTerrain returns an uninitialized Terrain that renders to target.
// A nil target is valid for headless use; Render then returns an error.
func NewTerrain(target RenderTarget) *Terrain {
	return &Terrain{target: target}
}

// Update meshes field and replaces the current mesh, marking it for upload on
// the next Render. On error the previous mesh and state are kept.
func (t *Terrain) Update(field NoiseField) error {
	mesh, err := Mesh(field)
	if err != nil {
		return fmt.Errorf("terrain update: %w", err)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.mesh = mesh
	t.state = StateReady
	t.generation++
	return nil
}

// Render uploads a pending mesh if there is one and draws the terrain with
// the given camera transforms.
func (t *Terrain) Render(view, projection mgl32.Mat4) error {
	if t.target == nil {
		return errNoTarget
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == StateUninitialized {
		return ErrUninitialized
	}
	if t.uploaded != t.generation {
		err := t.target.UploadMesh(t.mesh.Vertices, t.mesh.Triangles)
		if err != nil {
			return fmt.Errorf("uploading terrain mesh: %w", err)
		}
		t.uploaded = t.generation
	}
	err := t.target.SetView(view)
	if err != nil {
		return err
	}
	err = t.target.SetProjection(projection)
	if err != nil {
		return err
	}
	return t.target.Draw(len(t.mesh.Triangles))
}

// Mesh returns the current mesh. The returned slices must not be modified.
func (t *Terrain) Mesh() MeshData {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mesh
}

// State returns the lifecycle state of the terrain.
func (t *Terrain) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Generation returns the number of successful updates.
func (t *Terrain) Generation() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.generation
}
