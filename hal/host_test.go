package hal

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRepeatDue(t *testing.T) {
	if !repeatDue(1) {
		t.Fatal("expected fire on first tick")
	}
	for d := 2; d <= keyRepeatDelay; d++ {
		if repeatDue(d) {
			t.Fatalf("unexpected fire during delay at d=%d", d)
		}
	}
	if !repeatDue(keyRepeatDelay + keyRepeatInterval) {
		t.Fatal("expected repeat after delay")
	}
	if repeatDue(keyRepeatDelay + keyRepeatInterval + 1) {
		t.Fatal("unexpected repeat between intervals")
	}
}

func TestWheelDeltaUsesBrowserSign(t *testing.T) {
	if got := wheelDelta(1); got != -100 {
		t.Fatalf("wheelDelta(1)=%v", got)
	}
	if got := wheelDelta(-0.5); got != 50 {
		t.Fatalf("wheelDelta(-0.5)=%v", got)
	}
}

func TestNewDefaultsFramebufferSize(t *testing.T) {
	h := New(Config{Log: &bytes.Buffer{}})
	fb := h.Display().Framebuffer()
	if fb.Width() != defaultWidth || fb.Height() != defaultHeight {
		t.Fatalf("size=%dx%d", fb.Width(), fb.Height())
	}
	if fb.StrideBytes() != defaultWidth*2 || len(fb.Buffer()) != defaultWidth*2*defaultHeight {
		t.Fatalf("stride=%d len=%d", fb.StrideBytes(), len(fb.Buffer()))
	}
}

func TestLoggerWritesLines(t *testing.T) {
	var buf bytes.Buffer
	h := New(Config{Width: 2, Height: 2, Log: &buf})
	h.Logger().WriteLineString("hello")
	h.Logger().WriteLineBytes([]byte("world"))
	if got := buf.String(); got != "hello\nworld\n" {
		t.Fatalf("log=%q", got)
	}
}

func TestRunStepsPresentsEachStep(t *testing.T) {
	cfg := Config{Width: 8, Height: 8, Log: &bytes.Buffer{}}
	calls := 0
	h, err := RunSteps(cfg, func(h HAL) func() error {
		fb := h.Display().Framebuffer()
		return func() error {
			calls++
			return fb.Present()
		}
	}, 5)
	if err != nil {
		t.Fatalf("RunSteps: %v", err)
	}
	if calls != 5 {
		t.Fatalf("calls=%d", calls)
	}
	if got := h.(*hostHAL).fb.presented(); got != 5 {
		t.Fatalf("presented=%d", got)
	}
}

func TestRunStepsStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	_, err := RunSteps(Config{Width: 1, Height: 1, Log: &bytes.Buffer{}}, func(HAL) func() error {
		return func() error { return boom }
	}, 3)
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v", err)
	}
	if !strings.Contains(err.Error(), "step 0") {
		t.Fatalf("err=%v", err)
	}
}

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	calls := 0
	err := RunHeadless(context.Background(), Config{Width: 1, Height: 1, Log: &bytes.Buffer{}}, func(HAL) func() error {
		return func() error {
			calls++
			return nil
		}
	}, HeadlessConfig{Enabled: true, Hz: 1000, Ticks: 3})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if calls != 3 {
		t.Fatalf("calls=%d", calls)
	}
}

func TestRunHeadlessHonorsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunHeadless(ctx, Config{Width: 1, Height: 1, Log: &bytes.Buffer{}}, func(HAL) func() error {
		return nil
	}, HeadlessConfig{Enabled: true, Hz: 10})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v", err)
	}
}
