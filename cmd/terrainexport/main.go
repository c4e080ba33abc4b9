package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/soypat/gterrain"
	"github.com/soypat/gterrain/export"
	"gopkg.in/src-d/go-billy.v4/osfs"
)

func main() {
	err := run()
	if err != nil {
		log.Fatal(err)
	}
}

func run() error {
	params := gterrain.DefaultParameters()
	var (
		outDir = "."
		name   = "terrain"
		silent = false
	)
	params.RegisterFlags(flag.CommandLine)
	flag.StringVar(&outDir, "o", outDir, "output directory")
	flag.StringVar(&name, "name", name, "base name of the output files")
	flag.BoolVar(&silent, "silent", silent, "disable logging")
	flag.Parse()
	err := params.Validate()
	if err != nil {
		return err
	}
	var logger *log.Logger
	if !silent {
		logger = log.New(os.Stdout, "", 0)
	}

	start := time.Now()
	field := gterrain.Generate(params)
	mesh, err := gterrain.Mesh(field)
	if err != nil {
		return fmt.Errorf("meshing terrain: %w", err)
	}
	if logger != nil {
		logger.Printf("generated %dx%d terrain with %d triangles in %s", field.Width(), field.Height(), mesh.TriangleCount(), time.Since(start))
	}
	exp := export.Exporter{FS: osfs.New(outDir), Logger: logger}
	return exp.Export(name, field, mesh)
}
