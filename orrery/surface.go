// Package orrery models a solar system as a fixed tree of orbiting bodies and
// draws it through a pannable, zoomable viewport once per tick.
package orrery

import (
	"image"
	"image/color"
)

// Surface is the 2D drawing surface a Scene renders into.
//
// Coordinates passed to the circle and image calls are world units; the
// surface maps them to device pixels as (p + t) * scale using the last
// SetTransform. ResetTransform returns to the identity mapping.
type Surface interface {
	Size() (w, h int)
	Clear()
	SetTransform(scale, tx, ty float64)
	ResetTransform()
	StrokeCircle(x, y, r float64, c color.RGBA)
	FillCircle(x, y, r float64, c color.RGBA)
	DrawImage(img image.Image, x, y, w, h float64)
}

// ImageSource resolves a body's image key to a drawable image.
// Lookup returns nil while the image is unavailable.
type ImageSource interface {
	Lookup(name string) image.Image
}

// Frame carries the per-pass state every Body reads while drawing.
type Frame struct {
	Surface Surface
	Images  ImageSource
	Paused  bool
}

func (f *Frame) image(name string) image.Image {
	if f.Images == nil || name == "" {
		return nil
	}
	return f.Images.Lookup(name)
}

// OrbitColor is the stroke color of every orbit path.
var OrbitColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
