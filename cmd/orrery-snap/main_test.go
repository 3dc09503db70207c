package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"orrery/app"
	"orrery/hal"
)

func TestRunWritesFrame(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	if err := run(out, 2, hal.Config{Width: 120, Height: 80}, app.Config{Seed: 3}, ""); err != nil {
		t.Fatalf("run: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 80 {
		t.Fatalf("bounds=%v", b)
	}
}

func TestRunReportsBadSystem(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	err := run(out, 1, hal.Config{Width: 32, Height: 32}, app.Config{SystemPath: filepath.Join(t.TempDir(), "none.json")}, "")
	if err == nil {
		t.Fatal("expected error")
	}
	if _, statErr := os.Stat(out); statErr == nil {
		t.Fatal("no image should be written on failure")
	}
}
