package hal

import "image"

// RGB565 packs an 8-bit-per-channel color into rrrrrggggggbbbbb.
func RGB565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

// RGB888From565 expands a packed pixel back to 8 bits per channel.
func RGB888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// Snapshot converts an RGB565 framebuffer into an opaque RGBA image.
func Snapshot(fb Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	if fb.Format() != PixelFormatRGB565 {
		return img
	}
	src := fb.Buffer()
	if f, ok := fb.(*hostFramebuffer); ok {
		src = make([]byte, len(f.buf))
		f.snapshotRGB565(src)
	}
	expandRGB565(img.Pix, src, fb.Width(), fb.Height(), fb.StrideBytes())
	return img
}

func expandRGB565(dst, src []byte, w, h, stride int) {
	for y := 0; y < h; y++ {
		row := y * stride
		for x := 0; x < w; x++ {
			i := row + x*2
			if i+1 >= len(src) {
				return
			}
			r, g, b := RGB888From565(uint16(src[i]) | uint16(src[i+1])<<8)
			j := (y*w + x) * 4
			if j+3 >= len(dst) {
				return
			}
			dst[j+0] = r
			dst[j+1] = g
			dst[j+2] = b
			dst[j+3] = 0xFF
		}
	}
}
