package app

import (
	"fmt"
	"io/fs"
	"math/rand/v2"
	"time"

	"orrery/assets"
	"orrery/hal"
	"orrery/internal/buildinfo"
	"orrery/internal/metrics"
	"orrery/orrery"
	"orrery/quiz"
	"orrery/render"
)

type Config struct {
	// SystemPath is a JSON body tree; empty uses the built-in solar system.
	SystemPath string
	// Assets holds body images by file name; nil draws fallback colors.
	Assets fs.FS
	// Seed fixes starting phases and the star field; 0 picks a random seed.
	Seed uint64
	// HUD shows on-screen controls and the status line.
	HUD bool

	Metrics *metrics.Collector
}

// App ties the scene, overlay and input devices to one host step.
type App struct {
	log     hal.Logger
	fb      hal.Framebuffer
	surface *render.Surface
	scene   *orrery.Scene
	images  *assets.Loader
	quiz    *quiz.Quiz
	hud     *hud
	metrics *metrics.Collector

	keys    <-chan hal.KeyEvent
	pointer <-chan hal.PointerEvent
	ptr     pointerState

	showHUD bool
	failed  error
}

// New builds the body tree and binds it to h.
func New(h hal.HAL, cfg Config) (*App, error) {
	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return nil, fmt.Errorf("app: %w", hal.ErrNoFramebuffer)
	}
	fb := disp.Framebuffer()

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	sys := orrery.DefaultSystem()
	if cfg.SystemPath != "" {
		var err error
		if sys, err = orrery.LoadSystem(cfg.SystemPath); err != nil {
			return nil, err
		}
	}
	root, err := orrery.Build(sys, rng)
	if err != nil {
		return nil, err
	}

	surface, err := render.NewSurface(fb, rng)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	q, err := quiz.Default()
	if err != nil {
		return nil, err
	}

	a := &App{
		log:     h.Logger(),
		fb:      fb,
		surface: surface,
		scene:   orrery.NewScene(root),
		images:  assets.NewLoader(cfg.Assets, h.Logger()),
		quiz:    q,
		hud:     newHUD(fb.Width(), fb.Height()),
		metrics: cfg.Metrics,
		showHUD: cfg.HUD,
	}
	a.images.OnError = func(string, error) { cfg.Metrics.RecordAssetFailure() }
	a.scene.SetImages(a.images)
	root.Walk(func(b *orrery.Body, _ int) { a.images.Preload(b.Image) })

	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			a.keys = kbd.Events()
		}
		if p := in.Pointer(); p != nil {
			a.pointer = p.Events()
		}
	}

	a.logf("%s", buildinfo.Line())
	a.logf("orrery: %d bodies, %dx%d framebuffer, seed %d", root.Count(), fb.Width(), fb.Height(), seed)
	return a, nil
}

// Stepper adapts New to the host runners. A build failure is returned from
// the first step so the runner stops with it.
func Stepper(cfg Config) func(hal.HAL) func() error {
	return func(h hal.HAL) func() error {
		a, err := New(h, cfg)
		if err != nil {
			return func() error { return err }
		}
		return a.Step
	}
}

func (a *App) Scene() *orrery.Scene   { return a.scene }
func (a *App) Quiz() *quiz.Quiz       { return a.quiz }
func (a *App) Images() *assets.Loader { return a.images }

// Step handles pending input, advances and draws one frame, then presents it.
func (a *App) Step() (err error) {
	if a.failed != nil {
		return a.failed
	}
	defer a.recoverPanic(&err)

	start := time.Now()
	a.drainInput()
	a.scene.Tick(a.surface)
	a.drawOverlay()
	a.metrics.RecordFrame(time.Since(start), a.scene.Scale, a.scene.Paused)
	return a.fb.Present()
}

func (a *App) drainInput() {
	for {
		select {
		case ev := <-a.keys:
			a.handleKey(ev)
			continue
		case ev := <-a.pointer:
			a.handlePointer(ev)
			continue
		default:
		}
		return
	}
}

func (a *App) logf(format string, args ...any) {
	if a.log == nil {
		return
	}
	a.log.WriteLineString(fmt.Sprintf(format, args...))
}
