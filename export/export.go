// Package export writes generated terrain to files: grayscale and biome
// colored PNG images of the noise field and a binary STL of the mesh.
package export

import (
	"errors"
	"fmt"
	"image"
	"log"
	"path"
	"time"

	"github.com/soypat/geometry/ms3"
	"github.com/soypat/gsdf/glrender"
	"github.com/soypat/gterrain"
	"go.uber.org/multierr"
	billy "gopkg.in/src-d/go-billy.v4"
)

// Exporter writes terrain artifacts to a filesystem.
type Exporter struct {
	// FS is the filesystem files are created in.
	FS billy.Filesystem
	// Dir is the directory within FS to write to. Empty means the FS root.
	Dir string
	// Logger receives one line per written file. Nil disables logging.
	Logger *log.Logger
}

// Filenames returns the names of the files Export writes for name.
func Filenames(name string) (heightmap, colormap, stl string) {
	return name + ".png", name + "_color.png", name + ".stl"
}

// Export writes name.png, name_color.png and name.stl. All files are attempted
// and the errors of failed writes are combined.
func (e *Exporter) Export(name string, field gterrain.NoiseField, mesh gterrain.MeshData) error {
	if e.FS == nil {
		return errors.New("exporter has no filesystem")
	}
	if name == "" {
		return errors.New("empty export name")
	}
	if e.Dir != "" {
		err := e.FS.MkdirAll(e.Dir, 0755)
		if err != nil {
			return err
		}
	}
	hname, cname, sname := Filenames(name)
	var err error
	multierr.AppendInto(&err, e.writePNG(hname, HeightmapImage(field)))
	multierr.AppendInto(&err, e.writePNG(cname, ColorMapImage(field)))
	multierr.AppendInto(&err, e.writeSTL(sname, mesh.AppendTriangles(make([]ms3.Triangle, 0, mesh.TriangleCount()))))
	return err
}

func (e *Exporter) writePNG(name string, img image.Image) error {
	return e.create(name, func(f billy.File) error {
		return WritePNG(f, img)
	})
}

func (e *Exporter) writeSTL(name string, triangles []ms3.Triangle) error {
	return e.create(name, func(f billy.File) error {
		_, err := glrender.WriteBinarySTL(f, triangles)
		return err
	})
}

func (e *Exporter) create(name string, write func(billy.File) error) (err error) {
	watch := stopwatch()
	filename := path.Join(e.Dir, name)
	fp, err := e.FS.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, fp.Close())
		if err == nil && e.Logger != nil {
			e.Logger.Println("wrote", filename, "in", watch())
		}
	}()
	err = write(fp)
	if err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return nil
}

func stopwatch() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}
