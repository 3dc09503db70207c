package app

import (
	"image"

	"orrery/hal"
	"orrery/orrery"
)

// pointerState tracks one press from down to up.
type pointerState struct {
	x, y int

	pressed  button
	onButton bool
	onCanvas bool
	onPanel  bool
}

func (a *App) handleKey(ev hal.KeyEvent) {
	if !ev.Press {
		return
	}
	a.metrics.RecordInput("key")

	switch ev.Code {
	case hal.KeyRight:
		a.scene.Apply(orrery.ControlRight)
		return
	case hal.KeyLeft:
		a.scene.Apply(orrery.ControlLeft)
		return
	case hal.KeyUp:
		a.scene.Apply(orrery.ControlUp)
		return
	case hal.KeyDown:
		a.scene.Apply(orrery.ControlDown)
		return
	case hal.KeyEnter:
		if a.quiz.Visible() {
			a.quiz.Reveal()
		}
		return
	case hal.KeyEscape:
		if a.quiz.Visible() {
			a.quiz.Toggle()
		}
		return
	}

	switch ev.Rune {
	case '+':
		a.scene.Apply(orrery.ControlZoomIn)
	case '-':
		a.scene.Apply(orrery.ControlZoomOut)
	case ' ':
		a.scene.TogglePause()
	case 'q':
		a.quiz.Toggle()
	case 'n':
		if a.quiz.Visible() {
			a.quiz.Next()
		}
	case 'h':
		a.showHUD = !a.showHUD
	}
}

func (a *App) handlePointer(ev hal.PointerEvent) {
	p := &a.ptr
	p.x, p.y = ev.X, ev.Y

	switch ev.Kind {
	case hal.PointerWheel:
		a.metrics.RecordInput("wheel")
		a.scene.Scroll(ev.WheelY)

	case hal.PointerDown:
		a.metrics.RecordInput("pointer")
		*p = pointerState{x: ev.X, y: ev.Y}
		if b, ok := a.hitButton(ev.X, ev.Y); ok {
			p.pressed, p.onButton = b, true
			if b.control != orrery.ControlNone {
				a.scene.Hold(b.control)
			}
			return
		}
		if a.quiz.Visible() && image.Pt(ev.X, ev.Y).In(a.hud.panel()) {
			p.onPanel = true
			return
		}
		p.onCanvas = true

	case hal.PointerMove:
		if p.onButton && !image.Pt(ev.X, ev.Y).In(p.pressed.rect) {
			// Leaving the control ends the hold and cancels the click.
			a.scene.Release()
			p.onButton = false
		}

	case hal.PointerUp:
		a.scene.Release()
		pt := image.Pt(ev.X, ev.Y)
		switch {
		case p.onButton && pt.In(p.pressed.rect):
			a.clickButton(p.pressed)
		case p.onPanel && a.quiz.Visible() && pt.In(a.hud.panel()):
			a.quiz.Reveal()
		case p.onCanvas:
			if _, ok := a.hitButton(ev.X, ev.Y); !ok {
				a.scene.TogglePause()
			}
		}
		a.ptr = pointerState{x: ev.X, y: ev.Y}
	}
}

// hitButton hit-tests only the controls that are currently drawn.
func (a *App) hitButton(x, y int) (button, bool) {
	b, ok := a.hud.hit(x, y, a.quiz.Visible())
	if !ok {
		return button{}, false
	}
	if !a.showHUD && b.id != buttonNext {
		return button{}, false
	}
	return b, true
}

func (a *App) clickButton(b button) {
	switch b.id {
	case buttonQuiz:
		a.quiz.Toggle()
	case buttonNext:
		a.quiz.Next()
	}
}
