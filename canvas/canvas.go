// Package canvas is the fixed 2D watch canvas the faces draw on: integer
// pixel coordinates, stroked lines, filled shapes, and centered text over
// ebiten's vector and text packages.
package canvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
)

// Faces used across the watchfaces. The time display scales TimeFace up in
// DrawOptions rather than shipping a larger font.
var (
	TimeFace  ebtext.Face = ebtext.NewGoXFace(inconsolata.Bold8x16)
	SmallFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
)

// Canvas wraps the offscreen watch image.
type Canvas struct {
	dst *ebiten.Image
}

// New wraps dst. The image is owned by the caller.
func New(dst *ebiten.Image) *Canvas {
	return &Canvas{dst: dst}
}

// Image returns the underlying image.
func (c *Canvas) Image() *ebiten.Image {
	return c.dst
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (int, int) {
	b := c.dst.Bounds()
	return b.Dx(), b.Dy()
}

// Fill floods the whole canvas.
func (c *Canvas) Fill(clr color.Color) {
	c.dst.Fill(clr)
}

// FillRect fills an axis-aligned rectangle.
func (c *Canvas) FillRect(x, y, w, h int, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.FillRect(c.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// StrokeRect outlines an axis-aligned rectangle.
func (c *Canvas) StrokeRect(x, y, w, h, width int, clr color.Color) {
	vector.StrokeRect(c.dst, float32(x), float32(y), float32(w), float32(h), float32(width), clr, false)
}

// Line draws a stroked segment.
func (c *Canvas) Line(x1, y1, x2, y2, width int, clr color.Color) {
	vector.StrokeLine(c.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), clr, true)
}

// FillCircle fills a circle centered at (x, y).
func (c *Canvas) FillCircle(x, y, r int, clr color.Color) {
	if r <= 0 {
		return
	}
	vector.FillCircle(c.dst, float32(x), float32(y), float32(r), clr, true)
}

// StrokeCircle outlines a circle centered at (x, y).
func (c *Canvas) StrokeCircle(x, y, r, width int, clr color.Color) {
	vector.StrokeCircle(c.dst, float32(x), float32(y), float32(r), float32(width), clr, true)
}

// FillTrapezoid fills a horizontally symmetric trapezoid between two edges:
// (topLeft..topRight) at topY down to (bottomLeft..bottomRight) at bottomY.
// Drawn as one-pixel slices; the shapes on a 144-wide canvas are small
// enough that this stays cheap.
func (c *Canvas) FillTrapezoid(topLeft, topRight, topY, bottomLeft, bottomRight, bottomY int, clr color.Color) {
	if bottomY <= topY {
		return
	}
	steps := bottomY - topY
	for i := 0; i <= steps; i++ {
		l := topLeft + (bottomLeft-topLeft)*i/steps
		r := topRight + (bottomRight-topRight)*i/steps
		c.FillRect(l, topY+i, r-l, 1, clr)
	}
}

// Align mirrors text/v2 horizontal alignment for Text.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Text draws a string at (x, y) with the given alignment and scale. y is
// the top of the line box.
func (c *Canvas) Text(s string, x, y int, face ebtext.Face, clr color.Color, align Align, scale float64) {
	if s == "" {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	switch align {
	case AlignCenter:
		op.PrimaryAlign = ebtext.AlignCenter
	case AlignRight:
		op.PrimaryAlign = ebtext.AlignEnd
	}
	ebtext.Draw(c.dst, s, face, op)
}
