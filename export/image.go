package export

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/soypat/gterrain"
)

// HeightmapImage renders field as a grayscale image where black is height 0
// and white is height 1. Pixel (x,y) is field cell (x,y).
func HeightmapImage(field gterrain.NoiseField) *image.Gray {
	w, h := field.Width(), field.Height()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for x, col := range field.Data {
		for y, v := range col {
			img.SetGray(x, y, color.Gray{Y: grayLevel(v)})
		}
	}
	return img
}

// ColorMapImage renders field with the biome colors used by the mesher.
func ColorMapImage(field gterrain.NoiseField) *image.RGBA {
	w, h := field.Width(), field.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x, col := range field.Data {
		for y, v := range col {
			img.SetRGBA(x, y, gterrain.ClassifyHeight(v).RGBA())
		}
	}
	return img
}

// WritePNG encodes img to w as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func grayLevel(v float32) uint8 {
	switch {
	case v <= 0 || v != v:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
