package app

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"orrery/orrery"
	"orrery/render"
)

type buttonID uint8

const (
	buttonNone buttonID = iota
	buttonUp
	buttonDown
	buttonLeft
	buttonRight
	buttonZoomIn
	buttonZoomOut
	buttonQuiz
	buttonNext
)

type button struct {
	id      buttonID
	label   string
	rect    image.Rectangle
	control orrery.Control
}

const (
	hudPad    = 8
	hudGap    = 4
	hudButton = 28
	quizWidth = 360
)

var (
	hudFill      = color.RGBA{R: 0x30, G: 0x30, B: 0x40, A: 0xB0}
	hudFillHeld  = color.RGBA{R: 0x60, G: 0x70, B: 0xA0, A: 0xD0}
	hudEdge      = color.RGBA{R: 0xDD, G: 0xDD, B: 0xDD, A: 0xFF}
	hudText      = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	hudPaused    = color.RGBA{R: 0xFF, G: 0xD1, B: 0x4A, A: 0xFF}
	quizPanelBg  = color.RGBA{R: 0x10, G: 0x10, B: 0x20, A: 0xD8}
	quizAnswerFg = color.RGBA{R: 0x7C, G: 0xE0, B: 0x7C, A: 0xFF}
)

// hud lays out the on-screen controls for a w×h framebuffer.
type hud struct {
	w, h    int
	buttons []button
	next    button
}

func newHUD(w, h int) *hud {
	b := hudButton
	step := b + hudGap
	x0 := w - hudPad - 3*b - 2*hudGap
	y0 := h - hudPad - b

	rect := func(x, y, rw, rh int) image.Rectangle { return image.Rect(x, y, x+rw, y+rh) }
	quizW := render.TextWidth("Quiz") + 16

	return &hud{
		w: w,
		h: h,
		buttons: []button{
			{id: buttonUp, label: "^", rect: rect(x0+step, y0-step, b, b), control: orrery.ControlUp},
			{id: buttonLeft, label: "<", rect: rect(x0, y0, b, b), control: orrery.ControlLeft},
			{id: buttonDown, label: "v", rect: rect(x0+step, y0, b, b), control: orrery.ControlDown},
			{id: buttonRight, label: ">", rect: rect(x0+2*step, y0, b, b), control: orrery.ControlRight},
			{id: buttonZoomIn, label: "+", rect: rect(hudPad, y0, b, b), control: orrery.ControlZoomIn},
			{id: buttonZoomOut, label: "-", rect: rect(hudPad+step, y0, b, b), control: orrery.ControlZoomOut},
			{id: buttonQuiz, label: "Quiz", rect: rect(w-hudPad-quizW, hudPad, quizW, 20)},
		},
		next: button{id: buttonNext, label: "Next"},
	}
}

// panel is the quiz overlay rectangle.
func (h *hud) panel() image.Rectangle {
	pw := quizWidth
	if maxW := h.w - 2*hudPad; pw > maxW {
		pw = maxW
	}
	ph := h.h / 2
	return image.Rect(hudPad, hudPad+lineHeight()+hudGap, hudPad+pw, hudPad+lineHeight()+hudGap+ph)
}

func (h *hud) nextRect() image.Rectangle {
	p := h.panel()
	nw := render.TextWidth(h.next.label) + 16
	return image.Rect(p.Max.X-hudPad-nw, p.Max.Y-hudPad-20, p.Max.X-hudPad, p.Max.Y-hudPad)
}

// hit returns the button under (x, y). The Next button only exists while the
// quiz panel is open.
func (h *hud) hit(x, y int, quizOpen bool) (button, bool) {
	pt := image.Pt(x, y)
	if quizOpen && pt.In(h.nextRect()) {
		b := h.next
		b.rect = h.nextRect()
		return b, true
	}
	for _, b := range h.buttons {
		if pt.In(b.rect) {
			return b, true
		}
	}
	return button{}, false
}

func lineHeight() int { return render.LineHeight() }

// wrap splits s into lines no wider than maxW pixels. Words wider than a line
// are split by rune.
func wrap(s string, maxW int) []string {
	if maxW <= 0 || render.TextWidth(s) <= maxW {
		return []string{s}
	}
	var lines []string
	cur := ""
	for _, word := range strings.Fields(s) {
		cand := word
		if cur != "" {
			cand = cur + " " + word
		}
		if render.TextWidth(cand) <= maxW {
			cur = cand
			continue
		}
		if cur != "" {
			lines = append(lines, cur)
		}
		for render.TextWidth(word) > maxW {
			n := fitRunes(word, maxW)
			lines = append(lines, word[:n])
			word = word[n:]
		}
		cur = word
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// fitRunes returns the byte length of the longest prefix of s fitting maxW,
// never less than one rune.
func fitRunes(s string, maxW int) int {
	end := 0
	for i := range s {
		if i > 0 && render.TextWidth(s[:i]) > maxW {
			break
		}
		end = i
	}
	if end == 0 {
		for i := range s {
			if i > 0 {
				return i
			}
		}
		return len(s)
	}
	return end
}

func (a *App) drawOverlay() {
	if a.showHUD {
		held := a.scene.Held
		for _, b := range a.hud.buttons {
			a.drawButton(b, b.control != orrery.ControlNone && b.control == held)
		}
		a.drawStatus()
	}
	if a.quiz.Visible() {
		a.drawQuiz()
	}
}

func (a *App) drawButton(b button, active bool) {
	s := a.surface
	fill := hudFill
	if active {
		fill = hudFillHeld
	}
	r := b.rect
	s.FillRect(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), fill)
	s.StrokeRect(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), hudEdge)
	tx := r.Min.X + (r.Dx()-render.TextWidth(b.label))/2
	ty := r.Min.Y + (r.Dy()-lineHeight())/2
	s.DrawText(tx, ty, b.label, hudText)
}

func (a *App) drawStatus() {
	s := a.surface
	w, h := s.Size()
	x, y := a.scene.ToWorld(w, h, float64(a.ptr.x), float64(a.ptr.y))
	line := fmt.Sprintf("%d bodies  scale %.4f  x=%.0f y=%.0f", a.scene.Root().Count(), a.scene.Scale, x, y)
	s.DrawText(hudPad, hudPad, line, hudText)
	if a.scene.Paused {
		s.DrawText(hudPad+render.TextWidth(line)+12, hudPad, "PAUSED", hudPaused)
	}
}

func (a *App) drawQuiz() {
	s := a.surface
	p := a.hud.panel()
	s.FillRect(p.Min.X, p.Min.Y, p.Dx(), p.Dy(), quizPanelBg)
	s.StrokeRect(p.Min.X, p.Min.Y, p.Dx(), p.Dy(), hudEdge)

	lh := lineHeight()
	maxW := p.Dx() - 2*hudPad
	x := p.Min.X + hudPad
	y := p.Min.Y + hudPad
	bottom := a.hud.nextRect().Min.Y - hudGap

	put := func(text string, c color.RGBA) {
		for _, line := range wrap(text, maxW) {
			if y+lh > bottom {
				return
			}
			s.DrawText(x, y, line, c)
			y += lh
		}
	}

	q := a.quiz.Current()
	put(a.quiz.Header(), hudPaused)
	y += hudGap
	put(q.Prompt, hudText)
	y += hudGap
	for i, c := range q.Choices {
		put(fmt.Sprintf("%c) %s", 'A'+i, c), hudText)
	}
	if a.quiz.Revealed() {
		y += hudGap
		put(fmt.Sprintf("Answer: %c", 'A'+q.Answer), quizAnswerFg)
	} else {
		y += hudGap
		put("Enter or click to reveal", hudEdge)
	}

	n := a.hud.next
	n.rect = a.hud.nextRect()
	a.drawButton(n, false)
}
