package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
)

// recoverPanic turns a panic inside Step into a logged stack, a panic screen
// and a sticky error so the runner stops on the next step.
func (a *App) recoverPanic(err *error) {
	r := recover()
	if r == nil {
		return
	}
	stack := debug.Stack()

	a.logf("orrery panic: %v", r)
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		a.logf("%s", line)
	}

	a.drawPanic(r, stack)
	a.failed = fmt.Errorf("app: panic: %v", r)
	*err = a.failed
}

func (a *App) drawPanic(v any, stack []byte) {
	if a.surface == nil || a.fb == nil {
		return
	}
	a.fb.ClearRGB(255, 255, 255)

	lines := []string{"Orrery panic:", fmt.Sprintf("panic: %v", v)}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	fg := color.RGBA{A: 255}
	lh := lineHeight()
	maxW, maxH := a.surface.Size()

	y := 0
	for _, line := range lines {
		for _, chunk := range wrap(line, maxW-4) {
			if y+lh > maxH {
				_ = a.fb.Present()
				return
			}
			a.surface.DrawText(2, y, chunk, fg)
			y += lh
		}
	}
	_ = a.fb.Present()
}
