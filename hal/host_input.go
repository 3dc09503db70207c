//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var codeKeys = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyEnter, KeyEnter},
	{ebiten.KeyEscape, KeyEscape},
}

func (k *hostKeyboard) poll() {
	// Printable keys already carry OS key repeat.
	for _, r := range ebiten.AppendInputChars(nil) {
		k.emit(KeyEvent{Press: true, Rune: r})
	}

	for _, a := range codeKeys {
		if d := inpututil.KeyPressDuration(a.key); d > 0 && repeatDue(d) {
			k.emit(KeyEvent{Code: a.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(a.key) {
			k.emit(KeyEvent{Code: a.code, Press: false})
		}
	}
}

func (p *hostPointer) poll() {
	x, y := ebiten.CursorPosition()

	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 && !p.down {
		p.touch = int(ids[0])
		p.touching = true
		x, y = ebiten.TouchPosition(ids[0])
		p.down = true
		p.lastX, p.lastY = x, y
		p.emit(PointerEvent{Kind: PointerDown, X: x, Y: y})
		return
	}
	if p.touching {
		id := ebiten.TouchID(p.touch)
		if inpututil.IsTouchJustReleased(id) {
			x, y = inpututil.TouchPositionInPreviousTick(id)
			p.down = false
			p.touching = false
			p.emit(PointerEvent{Kind: PointerUp, X: x, Y: y})
			return
		}
		x, y = ebiten.TouchPosition(id)
	}

	if x != p.lastX || y != p.lastY {
		p.lastX, p.lastY = x, y
		p.emit(PointerEvent{Kind: PointerMove, X: x, Y: y})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.down = true
		p.emit(PointerEvent{Kind: PointerDown, X: x, Y: y})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		p.down = false
		p.emit(PointerEvent{Kind: PointerUp, X: x, Y: y})
	}
	if _, yoff := ebiten.Wheel(); yoff != 0 {
		p.emit(PointerEvent{Kind: PointerWheel, X: x, Y: y, WheelY: wheelDelta(yoff)})
	}
}
