package render

import (
	"math/rand/v2"

	"orrery/hal"
)

const (
	starCount   = 2000
	starMinChan = 140
	starSpan    = 115
)

// Starfield paints a black RGB565 buffer sprinkled with single-pixel stars
// whose channels are each drawn from [140, 255).
func Starfield(buf []byte, w, h, stride int, rng *rand.Rand) {
	for i := range buf {
		buf[i] = 0
	}
	if w <= 0 || h <= 0 {
		return
	}
	for i := 0; i < starCount; i++ {
		r := uint8(rng.IntN(starSpan) + starMinChan)
		g := uint8(rng.IntN(starSpan) + starMinChan)
		b := uint8(rng.IntN(starSpan) + starMinChan)
		x := rng.IntN(w)
		y := rng.IntN(h)

		off := y*stride + x*2
		if off+1 >= len(buf) {
			continue
		}
		pixel := hal.RGB565(r, g, b)
		buf[off] = byte(pixel)
		buf[off+1] = byte(pixel >> 8)
	}
}
