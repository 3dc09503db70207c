package orrery

import (
	"image/color"
	"math"
	"math/rand/v2"
)

// speedFactor scales the inverse-log period mapping. Larger periods give
// visibly slower bodies without being proportional to 1/period.
const speedFactor = 0.02

// Body represents a star, planet or moon and owns its satellites.
type Body struct {
	Name   string
	Radius float64
	Orbit  float64
	Angle  float64
	Speed  float64
	Image  string
	Color  color.RGBA

	satellites []*Body
}

// AngularSpeed maps an orbital period to radians per tick. A zero period is a
// fixed body. Periods must otherwise be greater than 1.
func AngularSpeed(period float64) float64 {
	if period == 0 {
		return 0
	}
	return 1 / math.Log(period) * speedFactor
}

// NewBody builds a body with a random starting phase in [0, 2π).
func NewBody(name string, radius, orbit, period float64, image string, c color.RGBA, rng *rand.Rand) *Body {
	var phase float64
	if rng != nil {
		phase = rng.Float64() * 2 * math.Pi
	} else {
		phase = rand.Float64() * 2 * math.Pi
	}
	return &Body{
		Name:   name,
		Radius: radius,
		Orbit:  orbit,
		Angle:  phase,
		Speed:  AngularSpeed(period),
		Image:  image,
		Color:  c,
	}
}

// Add appends satellites in display order.
func (b *Body) Add(bodies ...*Body) {
	b.satellites = append(b.satellites, bodies...)
}

func (b *Body) Satellites() []*Body { return b.satellites }

// Position returns where this body sits relative to anchor (ax, ay) at its
// current angle.
func (b *Body) Position(ax, ay float64) (x, y float64) {
	return math.Cos(b.Angle)*b.Orbit + ax, math.Sin(b.Angle)*b.Orbit + ay
}

// Draw strokes the orbit around the anchor, advances the angle unless the
// frame is paused, paints the body and recurses into satellites anchored at
// the new position.
func (b *Body) Draw(f *Frame, ax, ay float64) {
	s := f.Surface
	s.StrokeCircle(ax, ay, b.Orbit, OrbitColor)

	if !f.Paused {
		b.Angle += b.Speed
	}

	x, y := b.Position(ax, ay)

	if img := f.image(b.Image); img != nil {
		s.DrawImage(img, x-b.Radius, y-b.Radius, b.Radius*2, b.Radius*2)
	} else {
		s.FillCircle(x, y, b.Radius, b.Color)
	}

	for _, sat := range b.satellites {
		sat.Draw(f, x, y)
	}
}

// Walk visits b and its descendants depth-first in display order.
func (b *Body) Walk(fn func(body *Body, depth int)) {
	b.walk(fn, 0)
}

func (b *Body) walk(fn func(*Body, int), depth int) {
	fn(b, depth)
	for _, sat := range b.satellites {
		sat.walk(fn, depth+1)
	}
}

// Count returns the number of bodies in the subtree rooted at b.
func (b *Body) Count() int {
	n := 0
	b.Walk(func(*Body, int) { n++ })
	return n
}
