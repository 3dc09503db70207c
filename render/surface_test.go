package render

import (
	"errors"
	"image"
	"image/color"
	"io"
	"math/rand/v2"
	"testing"

	"orrery/hal"
)

var (
	white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	red   = color.RGBA{R: 0xFF, A: 0xFF}
	black = color.RGBA{A: 0xFF}
)

func newTestSurface(t *testing.T, w, h int, rng *rand.Rand) *Surface {
	t.Helper()
	fb := hal.New(hal.Config{Width: w, Height: h, Log: io.Discard}).Display().Framebuffer()
	s, err := NewSurface(fb, rng)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	s.Clear()
	return s
}

func lit(s *Surface) int {
	n := 0
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			if s.At(x, y) != black {
				n++
			}
		}
	}
	return n
}

func TestNewSurfaceRequiresFramebuffer(t *testing.T) {
	if _, err := NewSurface(nil, nil); !errors.Is(err, hal.ErrNoFramebuffer) {
		t.Fatalf("err=%v", err)
	}
}

func TestClearRestoresStarfield(t *testing.T) {
	s := newTestSurface(t, 200, 100, rand.New(rand.NewPCG(7, 7)))
	stars := lit(s)
	if stars == 0 || stars > starCount {
		t.Fatalf("stars=%d", stars)
	}
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			c := s.At(x, y)
			if c == black {
				continue
			}
			// RGB565 quantization can shave a few steps off the lower bound.
			if c.R < starMinChan-8 || c.G < starMinChan-8 || c.B < starMinChan-8 {
				t.Fatalf("star at %d,%d too dim: %v", x, y, c)
			}
		}
	}

	s.FillRect(0, 0, 200, 100, red)
	s.Clear()
	if got := lit(s); got != stars {
		t.Fatalf("after clear stars=%d want %d", got, stars)
	}
}

func TestClearWithoutStarsIsBlack(t *testing.T) {
	s := newTestSurface(t, 16, 16, nil)
	s.FillRect(0, 0, 16, 16, white)
	s.Clear()
	if got := lit(s); got != 0 {
		t.Fatalf("lit=%d", got)
	}
}

func TestFillCircleIdentity(t *testing.T) {
	s := newTestSurface(t, 32, 32, nil)
	s.FillCircle(10, 10, 3, red)
	if s.At(10, 10) != red || s.At(13, 10) != red || s.At(10, 7) != red {
		t.Fatal("disc not filled")
	}
	if s.At(10, 14) != black || s.At(0, 0) != black {
		t.Fatal("fill leaked outside radius")
	}
}

func TestTransformScalesAndTranslates(t *testing.T) {
	s := newTestSurface(t, 32, 32, nil)
	s.SetTransform(2, 5, 3)
	s.FillCircle(0, 0, 1, red)
	// (0+5)*2, (0+3)*2 with radius 2.
	if s.At(10, 6) != red || s.At(12, 6) != red {
		t.Fatal("transformed disc missing")
	}
	if s.At(13, 6) != black {
		t.Fatal("radius not scaled")
	}

	s.ResetTransform()
	s.FillCircle(1, 1, 0.2, white)
	if s.At(1, 1) != white {
		t.Fatal("reset transform not identity")
	}
}

func TestStrokeCircleOutline(t *testing.T) {
	s := newTestSurface(t, 64, 64, nil)
	s.StrokeCircle(20, 20, 5, white)
	for _, p := range [][2]int{{25, 20}, {15, 20}, {20, 15}, {20, 25}} {
		if s.At(p[0], p[1]) != white {
			t.Fatalf("outline missing at %v", p)
		}
	}
	if s.At(20, 20) != black {
		t.Fatal("stroke filled the center")
	}
}

func TestStrokeCullsEnclosingCircle(t *testing.T) {
	s := newTestSurface(t, 40, 40, nil)
	s.StrokeCircle(20, 20, 1e9, white)
	if got := lit(s); got != 0 {
		t.Fatalf("lit=%d", got)
	}
}

func TestStrokeHugeCircleCrossingSurface(t *testing.T) {
	s := newTestSurface(t, 40, 40, nil)
	s.StrokeCircle(20, 1e6, 1e6-20, white)
	if s.At(20, 20) != white {
		t.Fatal("arc through the middle missing")
	}
	if s.At(20, 5) != black || s.At(20, 35) != black {
		t.Fatal("unexpected pixels away from the arc")
	}
}

func TestDrawImageScalesNearest(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 0xFF, A: 0xFF})
	img.SetNRGBA(1, 0, color.NRGBA{G: 0xFF, A: 0xFF})
	img.SetNRGBA(0, 1, color.NRGBA{B: 0xFF, A: 0xFF})
	img.SetNRGBA(1, 1, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})

	s := newTestSurface(t, 8, 8, nil)
	s.DrawImage(img, 0, 0, 4, 4)

	want := map[[2]int]color.RGBA{
		{0, 0}: red,
		{3, 0}: {G: 0xFF, A: 0xFF},
		{0, 3}: {B: 0xFF, A: 0xFF},
		{3, 3}: white,
		{4, 4}: black,
	}
	for p, c := range want {
		if got := s.At(p[0], p[1]); got != c {
			t.Fatalf("pixel %v=%v want %v", p, got, c)
		}
	}
}

func TestDrawImageSkipsTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	s := newTestSurface(t, 4, 4, nil)
	s.FillRect(0, 0, 4, 4, red)
	s.DrawImage(img, 0, 0, 4, 4)
	if s.At(2, 2) != red {
		t.Fatal("transparent image overwrote pixels")
	}
}

func TestFillRectBlends(t *testing.T) {
	s := newTestSurface(t, 4, 4, nil)
	s.FillRect(0, 0, 4, 4, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x80})
	c := s.At(1, 1)
	if c.R < 0x70 || c.R > 0x90 {
		t.Fatalf("blend=%v", c)
	}
}

func TestStrokeRect(t *testing.T) {
	s := newTestSurface(t, 10, 10, nil)
	s.StrokeRect(1, 1, 5, 5, white)
	if s.At(1, 1) != white || s.At(5, 5) != white || s.At(3, 1) != white {
		t.Fatal("outline missing")
	}
	if s.At(3, 3) != black {
		t.Fatal("outline filled")
	}
}

func TestDrawTextPaints(t *testing.T) {
	s := newTestSurface(t, 120, 24, nil)
	s.DrawText(2, 2, "Orrery", white)
	if lit(s) == 0 {
		t.Fatal("text drew nothing")
	}
	if TextWidth("Orrery") <= TextWidth("O") {
		t.Fatal("text width not increasing")
	}
	if LineHeight() <= 0 {
		t.Fatal("line height")
	}
}
