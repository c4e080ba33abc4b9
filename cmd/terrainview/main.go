package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/soypat/gterrain/viewer"
)

func init() {
	// GLFW and OpenGL calls must be made from the main thread.
	runtime.LockOSThread()
}

func main() {
	err := run()
	if err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := viewer.DefaultConfig()
	var silent bool
	cfg.Params.RegisterFlags(flag.CommandLine)
	flag.IntVar(&cfg.Window.Width, "winw", cfg.Window.Width, "window width in pixels")
	flag.IntVar(&cfg.Window.Height, "winh", cfg.Window.Height, "window height in pixels")
	flag.IntVar(&cfg.PanelWidth, "panel", cfg.PanelWidth, "parameter panel width in pixels, 0 hides the panel")
	flag.BoolVar(&cfg.FrameTerrain, "frame", cfg.FrameTerrain, "move the camera over the terrain after each regeneration")
	flag.BoolVar(&silent, "silent", silent, "disable logging")
	flag.Parse()
	err := cfg.Params.Validate()
	if err != nil {
		return err
	}
	if !silent {
		cfg.Logger = log.New(os.Stderr, "terrainview: ", log.Ltime)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cfg.Context = ctx
	return viewer.Run(cfg)
}
