// Command orrery-snap runs the scene for a fixed number of ticks without a
// window and writes the last frame as a PNG.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"

	"orrery/app"
	"orrery/hal"
)

const defaultOutPath = "orrery.png"

func main() {
	var outPath string
	var ticks uint64
	var hcfg hal.Config
	var cfg app.Config
	var assetDir string
	flag.StringVar(&outPath, "o", defaultOutPath, "Output PNG path.")
	flag.Uint64Var(&ticks, "ticks", 1, "Ticks to run before the snapshot.")
	flag.Uint64Var(&cfg.Seed, "seed", 1, "Seed for starting phases and stars.")
	flag.IntVar(&hcfg.Width, "width", 960, "Framebuffer width in pixels.")
	flag.IntVar(&hcfg.Height, "height", 640, "Framebuffer height in pixels.")
	flag.StringVar(&cfg.SystemPath, "system", "", "JSON body tree (default: built-in solar system).")
	flag.StringVar(&assetDir, "assets", os.Getenv("ORRERY_ASSETS"), "Directory holding body images (env ORRERY_ASSETS).")
	flag.Parse()

	if outPath == "" {
		fmt.Fprintln(os.Stderr, "error: -o is required")
		os.Exit(2)
	}
	if ticks == 0 {
		fmt.Fprintln(os.Stderr, "error: -ticks must be at least 1")
		os.Exit(2)
	}

	if err := run(outPath, ticks, hcfg, cfg, assetDir); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(outPath string, ticks uint64, hcfg hal.Config, cfg app.Config, assetDir string) error {
	hcfg.Log = os.Stderr
	if assetDir != "" {
		cfg.Assets = os.DirFS(assetDir)
	}

	// Images decode in the background; wait for them before the first step
	// so the snapshot shows them.
	newApp := func(h hal.HAL) func() error {
		a, err := app.New(h, cfg)
		if err != nil {
			return func() error { return err }
		}
		a.Images().Wait()
		return a.Step
	}

	h, err := hal.RunSteps(hcfg, newApp, ticks)
	if err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %q: %w", outPath, err)
	}
	if err := writePNG(f, h.Display().Framebuffer()); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %q: %w", outPath, err)
	}
	return f.Close()
}

func writePNG(w io.Writer, fb hal.Framebuffer) error {
	return png.Encode(w, hal.Snapshot(fb))
}
