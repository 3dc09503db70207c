package orrery

// Control names a viewport input, either applied once (key press) or held
// and applied every tick (on-screen button).
type Control uint8

const (
	ControlNone Control = iota
	ControlRight
	ControlLeft
	ControlUp
	ControlDown
	ControlZoomIn
	ControlZoomOut
)

func (c Control) String() string {
	switch c {
	case ControlRight:
		return "right"
	case ControlLeft:
		return "left"
	case ControlUp:
		return "up"
	case ControlDown:
		return "down"
	case ControlZoomIn:
		return "in"
	case ControlZoomOut:
		return "out"
	}
	return "none"
}

const (
	// ZoomFactor is the multiplicative zoom step for keys and held buttons.
	ZoomFactor = 1.01
	// PanStep is the world-unit shift of one key press.
	PanStep = 100
	// HoldPanStep is the world-unit shift per tick while a button is held.
	HoldPanStep = 10
	// ScrollFactor converts a wheel delta into a zoom multiplier.
	ScrollFactor = 5.0 / 10000

	DefaultScale = 0.075
)

// View is the mutable viewport state shared by input handlers and Tick.
type View struct {
	CenterX float64
	CenterY float64
	Scale   float64
	Paused  bool
	Held    Control
}

// Apply performs the discrete step for c.
func (v *View) Apply(c Control) {
	v.step(c, PanStep)
}

// Hold makes c active until Release.
func (v *View) Hold(c Control) { v.Held = c }

// Release clears any held control.
func (v *View) Release() { v.Held = ControlNone }

// Advance applies the held control once. It is called at the start of every
// tick.
func (v *View) Advance() {
	if v.Held == ControlNone {
		return
	}
	v.step(v.Held, HoldPanStep)
}

func (v *View) step(c Control, pan float64) {
	switch c {
	case ControlRight:
		v.CenterX -= pan
	case ControlLeft:
		v.CenterX += pan
	case ControlUp:
		v.CenterY += pan
	case ControlDown:
		v.CenterY -= pan
	case ControlZoomIn:
		v.Scale *= ZoomFactor
	case ControlZoomOut:
		v.Scale /= ZoomFactor
	}
}

// Scroll zooms by 1 + delta*ScrollFactor. Factors that would make the scale
// non-positive are dropped.
func (v *View) Scroll(delta float64) {
	f := 1 + delta*ScrollFactor
	if f <= 0 {
		return
	}
	v.Scale *= f
}

func (v *View) TogglePause() { v.Paused = !v.Paused }

// Transform returns the surface transform placing the view center in the
// middle of a w×h device area.
func (v *View) Transform(w, h int) (scale, tx, ty float64) {
	scale = v.Scale
	tx = -(v.CenterX - float64(w)/2/scale)
	ty = -(v.CenterY - float64(h)/2/scale)
	return scale, tx, ty
}

// ToWorld maps a device pixel back to world coordinates.
func (v *View) ToWorld(w, h int, px, py float64) (x, y float64) {
	scale, tx, ty := v.Transform(w, h)
	return px/scale - tx, py/scale - ty
}
