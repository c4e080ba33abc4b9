package panel

import (
	"image"
	"image/color"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/soypat/gterrain/export"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Layout in pixels.
const (
	fontSize   = 13
	dpi        = 72
	margin     = 8
	rowHeight  = 22
	barHeight  = 3
	previewGap = 6
)

var (
	bgColor      = color.RGBA{R: 20, G: 22, B: 28, A: 220}
	focusColor   = color.RGBA{R: 60, G: 66, B: 84, A: 255}
	barBgColor   = color.RGBA{R: 48, G: 52, B: 60, A: 255}
	barColor     = color.RGBA{R: 110, G: 160, B: 230, A: 255}
	buttonColor  = color.RGBA{R: 70, G: 110, B: 70, A: 255}
	textColor    = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	titleColor   = color.RGBA{R: 255, G: 210, B: 120, A: 255}
	previewFrame = color.RGBA{R: 90, G: 90, B: 90, A: 255}
)

type drawer struct {
	ctx  *freetype.Context
	face font.Face
}

func newDrawer() (*drawer, error) {
	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	ctx := freetype.NewContext()
	ctx.SetDPI(dpi)
	ctx.SetFont(ttf)
	ctx.SetFontSize(fontSize)
	face := truetype.NewFace(ttf, &truetype.Options{Size: fontSize, DPI: dpi})
	return &drawer{ctx: ctx, face: face}, nil
}

func (d *drawer) text(dst *image.RGBA, s string, x, baseline int, c color.Color) error {
	d.ctx.SetDst(dst)
	d.ctx.SetClip(dst.Bounds())
	d.ctx.SetSrc(image.NewUniform(c))
	_, err := d.ctx.DrawString(s, freetype.Pt(x, baseline))
	return err
}

func (d *drawer) textWidth(s string) int {
	return font.MeasureString(d.face, s).Ceil()
}

// Size returns the pixel height needed to draw the panel at the given width,
// using the controls declared in the last frame.
func (p *Panel) Size(width int) (height int) {
	height = margin + rowHeight*(1+len(p.controls))
	if p.field.Width() > 0 {
		height += previewGap + previewSize(width)
	}
	return height + margin
}

// Draw rasterizes the panel controls of the last frame and the field previews onto dst.
func (p *Panel) Draw(dst *image.RGBA) error {
	if p.drawer == nil {
		d, err := newDrawer()
		if err != nil {
			return err
		}
		p.drawer = d
	}
	d := p.drawer
	bb := dst.Bounds()
	fill(dst, bb, bgColor)
	left, right := bb.Min.X+margin, bb.Max.X-margin
	y := bb.Min.Y + margin
	baseline := func(y int) int { return y + rowHeight - 7 }

	err := d.text(dst, p.Title, left, baseline(y), titleColor)
	if err != nil {
		return err
	}
	y += rowHeight
	focusable := 0
	for _, c := range p.controls {
		row := image.Rect(bb.Min.X, y, bb.Max.X, y+rowHeight)
		if c.kind != kindLabel {
			if focusable == p.focus {
				fill(dst, row, focusColor)
			}
			focusable++
		}
		switch c.kind {
		case kindLabel:
			err = d.text(dst, c.label, left, baseline(y), titleColor)
		case kindInt, kindFloat:
			err = d.text(dst, c.label, left, baseline(y), textColor)
			if err == nil {
				err = d.text(dst, c.value, right-d.textWidth(c.value), baseline(y), textColor)
			}
			bar := image.Rect(left, y+rowHeight-barHeight, right, y+rowHeight)
			fill(dst, bar, barBgColor)
			bar.Max.X = bar.Min.X + int(c.frac*float32(bar.Dx()))
			fill(dst, bar, barColor)
		case kindButton:
			fill(dst, image.Rect(left, y+2, right, y+rowHeight-2), buttonColor)
			err = d.text(dst, c.label, (left+right-d.textWidth(c.label))/2, baseline(y), textColor)
		}
		if err != nil {
			return err
		}
		y += rowHeight
	}
	if p.field.Width() == 0 {
		return nil
	}
	y += previewGap
	size := previewSize(bb.Dx())
	hm := image.Rect(left, y, left+size, y+size)
	cm := hm.Add(image.Pt(size+margin, 0))
	fill(dst, hm.Inset(-1), previewFrame)
	fill(dst, cm.Inset(-1), previewFrame)
	draw.NearestNeighbor.Scale(dst, hm, export.HeightmapImage(p.field), image.Rect(0, 0, p.field.Width(), p.field.Height()), draw.Src, nil)
	draw.NearestNeighbor.Scale(dst, cm, export.ColorMapImage(p.field), image.Rect(0, 0, p.field.Width(), p.field.Height()), draw.Src, nil)
	return nil
}

func previewSize(width int) int {
	sz := (width - 3*margin) / 2
	if sz < 0 {
		return 0
	}
	return sz
}

func fill(dst *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}
