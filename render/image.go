package render

import (
	"errors"
	"image"
	"image/color"
	"math"
)

var errUnsupportedFormat = errors.New("render: unsupported framebuffer format")

// drawImageScaled maps img onto the device rect [x0,x1)×[y0,y1).
func drawImageScaled(s *Surface, img image.Image, x0, y0, x1, y1 float64) {
	if !finite(x0, y0, x1, y1) {
		return
	}
	dw := x1 - x0
	dh := y1 - y0
	if dw <= 0 || dh <= 0 {
		return
	}
	b := img.Bounds()
	srcW := b.Dx()
	srcH := b.Dy()
	if srcW <= 0 || srcH <= 0 {
		return
	}
	if x1 < 0 || y1 < 0 || x0 > float64(s.w) || y0 > float64(s.h) {
		return
	}

	px0 := clampInt(int(math.Floor(x0)), 0, s.w)
	px1 := clampInt(int(math.Ceil(x1)), 0, s.w)
	py0 := clampInt(int(math.Floor(y0)), 0, s.h)
	py1 := clampInt(int(math.Ceil(y1)), 0, s.h)

	for py := py0; py < py1; py++ {
		v := (float64(py) + 0.5 - y0) / dh
		if v < 0 || v >= 1 {
			continue
		}
		sy := b.Min.Y + int(v*float64(srcH))
		for px := px0; px < px1; px++ {
			u := (float64(px) + 0.5 - x0) / dw
			if u < 0 || u >= 1 {
				continue
			}
			sx := b.Min.X + int(u*float64(srcW))
			r, g, bl, a := sample(img, sx, sy)
			s.blend(px, py, r, g, bl, a)
		}
	}
}

// sample returns the non-premultiplied color at (x, y).
func sample(img image.Image, x, y int) (r, g, b, a uint8) {
	switch src := img.(type) {
	case *image.NRGBA:
		i := src.PixOffset(x, y)
		return src.Pix[i+0], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3]
	case *image.RGBA:
		i := src.PixOffset(x, y)
		a = src.Pix[i+3]
		if a == 0 {
			return 0, 0, 0, 0
		}
		if a == 0xFF {
			return src.Pix[i+0], src.Pix[i+1], src.Pix[i+2], a
		}
		un := func(v uint8) uint8 { return uint8(uint16(v) * 255 / uint16(a)) }
		return un(src.Pix[i+0]), un(src.Pix[i+1]), un(src.Pix[i+2]), a
	}
	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return c.R, c.G, c.B, c.A
}
