package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"sync"
	"testing"
	"testing/fstest"
)

type lineLog struct {
	mu    sync.Mutex
	lines []string
}

func (l *lineLog) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

func (l *lineLog) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestLookupResolvesAfterLoad(t *testing.T) {
	fsys := fstest.MapFS{"earth.png": {Data: pngBytes(t)}}
	l := NewLoader(fsys, nil)

	if img := l.Lookup("earth.png"); img != nil {
		t.Fatal("first lookup should not block on decode")
	}
	l.Wait()

	img := l.Lookup("earth.png")
	if img == nil {
		t.Fatal("expected decoded image")
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("bounds=%v", b)
	}
}

func TestFailedLoadsAreLoggedOnce(t *testing.T) {
	fsys := fstest.MapFS{"bad.png": {Data: []byte("not a png")}}
	log := &lineLog{}
	l := NewLoader(fsys, log)
	var mu sync.Mutex
	failed := map[string]bool{}
	l.OnError = func(name string, err error) {
		mu.Lock()
		defer mu.Unlock()
		failed[name] = true
	}

	l.Preload("bad.png", "missing.png")
	l.Wait()
	for i := 0; i < 3; i++ {
		if l.Lookup("bad.png") != nil || l.Lookup("missing.png") != nil {
			t.Fatal("failed image resolved")
		}
	}
	l.Wait()

	if !l.Failed("bad.png") || !l.Failed("missing.png") {
		t.Fatal("expected both to be marked failed")
	}
	if !failed["bad.png"] || !failed["missing.png"] {
		t.Fatalf("OnError calls=%v", failed)
	}
	if len(log.lines) != 2 {
		t.Fatalf("log lines=%q", log.lines)
	}
	for _, line := range log.lines {
		if !strings.HasPrefix(line, "assets: ") {
			t.Fatalf("unprefixed log line %q", line)
		}
	}
}

func TestNilFSResolvesNothing(t *testing.T) {
	l := NewLoader(nil, nil)
	if l.Lookup("sun.png") != nil {
		t.Fatal("expected nil")
	}
	l.Wait()
	if l.Failed("sun.png") {
		t.Fatal("nothing should have been requested")
	}
}
