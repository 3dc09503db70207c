package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
}

// RunHeadless runs the app without opening a window.
func RunHeadless(ctx context.Context, cfg Config, newApp func(HAL) func() error, hc HeadlessConfig) error {
	if hc.Hz <= 0 {
		hc.Hz = 60
	}

	h := newHost(cfg)
	step := newApp(h)

	d := time.Second / time.Duration(hc.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", hc.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if hc.Ticks > 0 && tick >= hc.Ticks {
				return nil
			}
		}
	}
}

// RunSteps drives step n times back to back against a fresh host HAL and
// returns the HAL so callers can inspect the final frame.
func RunSteps(cfg Config, newApp func(HAL) func() error, n uint64) (HAL, error) {
	h := newHost(cfg)
	step := newApp(h)
	for i := uint64(0); i < n; i++ {
		if step == nil {
			break
		}
		if err := step(); err != nil {
			return h, fmt.Errorf("step %d: %w", i, err)
		}
	}
	return h, nil
}
