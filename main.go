package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"

	"orrery/app"
	"orrery/hal"
	"orrery/internal/buildinfo"
	"orrery/internal/metrics"
)

func main() {
	var hc hal.HeadlessConfig
	var hcfg hal.Config
	var cfg app.Config
	var assetDir string
	var metricsAddr string
	var version bool
	flag.BoolVar(&hc.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hc.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hc.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&hcfg.Width, "width", 960, "Framebuffer width in pixels.")
	flag.IntVar(&hcfg.Height, "height", 640, "Framebuffer height in pixels.")
	flag.StringVar(&cfg.SystemPath, "system", "", "JSON body tree (default: built-in solar system).")
	flag.StringVar(&assetDir, "assets", os.Getenv("ORRERY_ASSETS"), "Directory holding body images (env ORRERY_ASSETS).")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "Seed for starting phases and stars (0 = random).")
	flag.StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090.")
	flag.BoolVar(&cfg.HUD, "hud", true, "Show on-screen controls and the status line.")
	flag.BoolVar(&version, "version", false, "Print version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.Line())
		return
	}

	if assetDir != "" {
		cfg.Assets = os.DirFS(assetDir)
		if _, err := fs.Stat(cfg.Assets, "."); err != nil {
			fmt.Fprintln(os.Stderr, "error: assets:", err)
			os.Exit(2)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if metricsAddr != "" {
		cfg.Metrics = metrics.NewCollector()
		go func() {
			if err := cfg.Metrics.Serve(ctx, metricsAddr); err != nil {
				fmt.Fprintln(os.Stderr, "metrics:", err)
			}
		}()
	}

	if hc.Enabled {
		if err := hal.RunHeadless(ctx, hcfg, app.Stepper(cfg), hc); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(hcfg, app.Stepper(cfg)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
