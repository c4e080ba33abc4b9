package glterrain_test

import (
	"image"
	"strings"
	"testing"

	"github.com/soypat/gterrain/glterrain"
	"github.com/stretchr/testify/assert"
)

func TestPolygonModeCycle(t *testing.T) {
	m := glterrain.PolygonFill
	var got []string
	for i := 0; i < 4; i++ {
		got = append(got, m.String())
		m = m.Next()
	}
	assert.Equal(t, []string{"fill", "line", "point", "fill"}, got)
}

func TestRectNDC(t *testing.T) {
	full := glterrain.RectNDC(image.Rect(0, 0, 800, 600), 800, 600)
	assert.Equal(t, [4]float32{-1, -1, 1, 1}, full)

	// Top left quarter of the window.
	quarter := glterrain.RectNDC(image.Rect(0, 0, 400, 300), 800, 600)
	assert.Equal(t, [4]float32{-1, 0, 0, 1}, quarter)

	assert.Equal(t, [4]float32{}, glterrain.RectNDC(image.Rect(0, 0, 1, 1), 0, 600))
}

func TestDefaultWindowConfig(t *testing.T) {
	cfg := glterrain.DefaultWindowConfig()
	assert.Positive(t, cfg.Width)
	assert.Positive(t, cfg.Height)
	assert.True(t, strings.HasPrefix(cfg.Title, "gterrain"))
}
