//go:build tinygo || !cgo

package viewer

import "errors"

// Run requires cgo for the window and OpenGL context.
func Run(cfg Config) error {
	return errors.New("viewer requires cgo for windowing and OpenGL")
}
