package render

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Font is the HUD and overlay font.
var Font tinyfont.Fonter = &proggy.TinySZ8pt7b

var _ drivers.Displayer = (*Displayer)(nil)

// Displayer adapts a Surface to tinyfont, blending each glyph pixel.
type Displayer struct {
	s *Surface
}

func (s *Surface) Displayer() *Displayer { return &Displayer{s: s} }

func (d *Displayer) Size() (x, y int16) {
	return int16(d.s.w), int16(d.s.h)
}

func (d *Displayer) SetPixel(x, y int16, c color.RGBA) {
	d.s.blend(int(x), int(y), c.R, c.G, c.B, 0xFF)
}

func (d *Displayer) Display() error { return nil }

// LineHeight is the vertical advance of one text line.
func LineHeight() int {
	h := int(Font.GetYAdvance())
	if h <= 0 {
		h = 12
	}
	return h
}

// TextWidth returns the rendered width of s in pixels.
func TextWidth(s string) int {
	_, outbox := tinyfont.LineWidth(Font, s)
	return int(outbox)
}

// DrawText writes s with its top-left corner at device (x, y).
func (s *Surface) DrawText(x, y int, text string, c color.RGBA) {
	// tinyfont positions glyphs on the baseline.
	base := y + LineHeight()*3/4
	tinyfont.WriteLine(s.Displayer(), Font, int16(x), int16(base), text, c)
}
