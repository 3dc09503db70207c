// Package render rasterizes scenes into an RGB565 framebuffer.
package render

import (
	"image"
	"image/color"
	"math"
	"math/rand/v2"

	"orrery/hal"
)

// Surface draws world-space primitives into a framebuffer.
type Surface struct {
	fb     hal.Framebuffer
	buf    []byte
	w, h   int
	stride int

	bg  []byte
	rng *rand.Rand

	scale  float64
	tx, ty float64
}

// NewSurface wraps fb. Clear restores a star field generated from rng; a nil
// rng clears to black.
func NewSurface(fb hal.Framebuffer, rng *rand.Rand) (*Surface, error) {
	if fb == nil {
		return nil, hal.ErrNoFramebuffer
	}
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, errUnsupportedFormat
	}
	s := &Surface{fb: fb, rng: rng, scale: 1}
	s.resize()
	return s, nil
}

func (s *Surface) Framebuffer() hal.Framebuffer { return s.fb }

func (s *Surface) Size() (w, h int) { return s.w, s.h }

// resize re-reads the framebuffer geometry, regenerating the background when
// it changed.
func (s *Surface) resize() {
	w, h, stride := s.fb.Width(), s.fb.Height(), s.fb.StrideBytes()
	buf := s.fb.Buffer()
	if s.bg != nil && w == s.w && h == s.h && stride == s.stride && len(buf) == len(s.buf) {
		s.buf = buf
		return
	}
	s.w, s.h, s.stride, s.buf = w, h, stride, buf
	s.bg = make([]byte, len(buf))
	if s.rng != nil {
		Starfield(s.bg, w, h, stride, s.rng)
	}
}

// Clear copies the background layer over the framebuffer.
func (s *Surface) Clear() {
	s.resize()
	copy(s.buf, s.bg)
}

func (s *Surface) SetTransform(scale, tx, ty float64) {
	s.scale, s.tx, s.ty = scale, tx, ty
}

func (s *Surface) ResetTransform() {
	s.scale, s.tx, s.ty = 1, 0, 0
}

func (s *Surface) toDevice(x, y float64) (float64, float64) {
	return (x + s.tx) * s.scale, (y + s.ty) * s.scale
}

// StrokeCircle draws a one pixel wide circle outline.
func (s *Surface) StrokeCircle(x, y, r float64, c color.RGBA) {
	cx, cy := s.toDevice(x, y)
	strokeCircle(s, cx, cy, r*s.scale, hal.RGB565(c.R, c.G, c.B))
}

// FillCircle draws a filled disc.
func (s *Surface) FillCircle(x, y, r float64, c color.RGBA) {
	cx, cy := s.toDevice(x, y)
	fillCircle(s, cx, cy, r*s.scale, hal.RGB565(c.R, c.G, c.B))
}

// DrawImage scales img into the world-space rect (x, y, w, h) with
// nearest-neighbor sampling, blending by source alpha.
func (s *Surface) DrawImage(img image.Image, x, y, w, h float64) {
	if img == nil {
		return
	}
	x0, y0 := s.toDevice(x, y)
	x1, y1 := s.toDevice(x+w, y+h)
	drawImageScaled(s, img, x0, y0, x1, y1)
}

// FillRect fills a device-space rectangle, ignoring the transform.
func (s *Surface) FillRect(x, y, w, h int, c color.RGBA) {
	x0 := clampInt(x, 0, s.w)
	y0 := clampInt(y, 0, s.h)
	x1 := clampInt(x+w, 0, s.w)
	y1 := clampInt(y+h, 0, s.h)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			s.blend(px, py, c.R, c.G, c.B, c.A)
		}
	}
}

// StrokeRect outlines a device-space rectangle, ignoring the transform.
func (s *Surface) StrokeRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	s.FillRect(x, y, w, 1, c)
	s.FillRect(x, y+h-1, w, 1, c)
	s.FillRect(x, y, 1, h, c)
	s.FillRect(x+w-1, y, 1, h, c)
}

// At returns the framebuffer pixel at device (x, y) as 8-bit channels.
func (s *Surface) At(x, y int) color.RGBA {
	off, ok := s.offset(x, y)
	if !ok {
		return color.RGBA{}
	}
	r, g, b := hal.RGB888From565(uint16(s.buf[off]) | uint16(s.buf[off+1])<<8)
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

func (s *Surface) offset(x, y int) (int, bool) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return 0, false
	}
	off := y*s.stride + x*2
	if off < 0 || off+1 >= len(s.buf) {
		return 0, false
	}
	return off, true
}

func (s *Surface) set(x, y int, pixel uint16) {
	off, ok := s.offset(x, y)
	if !ok {
		return
	}
	s.buf[off] = byte(pixel)
	s.buf[off+1] = byte(pixel >> 8)
}

func (s *Surface) blend(x, y int, r, g, b, a uint8) {
	if a == 0 {
		return
	}
	if a == 0xFF {
		s.set(x, y, hal.RGB565(r, g, b))
		return
	}
	off, ok := s.offset(x, y)
	if !ok {
		return
	}
	dr, dg, db := hal.RGB888From565(uint16(s.buf[off]) | uint16(s.buf[off+1])<<8)
	mix := func(src, dst uint8) uint8 {
		return uint8((uint16(src)*uint16(a) + uint16(dst)*uint16(255-a)) / 255)
	}
	pixel := hal.RGB565(mix(r, dr), mix(g, dg), mix(b, db))
	s.buf[off] = byte(pixel)
	s.buf[off+1] = byte(pixel >> 8)
}

// spanRows returns the device rows a circle at cy with radius r touches,
// clipped to the surface.
func (s *Surface) spanRows(cy, r float64) (int, int) {
	lo := int(math.Ceil(cy - r))
	hi := int(math.Floor(cy + r))
	return clampInt(lo, 0, s.h-1), clampInt(hi, 0, s.h-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
