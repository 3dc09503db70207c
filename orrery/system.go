package orrery

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"math/rand/v2"
	"os"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	ErrInvalidPeriod = errors.New("invalid orbital period")
	ErrInvalidBody   = errors.New("invalid body")
)

// BodyConfig describes one body and its satellites.
type BodyConfig struct {
	Name       string       `json:"name"`
	Radius     float64      `json:"radius"`
	Orbit      float64      `json:"orbit"`
	Period     float64      `json:"period"`
	Image      string       `json:"image,omitempty"`
	Color      string       `json:"color"`
	Satellites []BodyConfig `json:"satellites,omitempty"`
}

// DefaultSystem is the Sun with its planets, Earth's Moon and Pluto.
func DefaultSystem() BodyConfig {
	return BodyConfig{
		Name: "Sun", Radius: 750, Orbit: 0, Period: 0, Image: "sun.png", Color: "#FFEE00",
		Satellites: []BodyConfig{
			{Name: "Mercury", Radius: 150, Orbit: 1000, Period: 88, Image: "mercury.png", Color: "#999999"},
			{Name: "Venus", Radius: 250, Orbit: 1500, Period: 225, Image: "venus.png", Color: "#BB9999"},
			{
				Name: "Earth", Radius: 250, Orbit: 2300, Period: 365.2, Image: "earth.png", Color: "#7788AA",
				Satellites: []BodyConfig{
					{Name: "Moon", Radius: 100, Orbit: 450, Period: 27, Image: "moon.png", Color: "#CCCCCC"},
				},
			},
			{Name: "Mars", Radius: 200, Orbit: 3300, Period: 687, Image: "mars.png", Color: "#EE7777"},
			{Name: "Jupiter", Radius: 450, Orbit: 4500, Period: 4331, Image: "jupiter.png", Color: "#886666"},
			{Name: "Saturn", Radius: 700, Orbit: 6000, Period: 10747, Image: "saturn.png", Color: "#887777"},
			{Name: "Uranus", Radius: 300, Orbit: 7500, Period: 30589, Image: "uranus.png", Color: "#4455EE"},
			{Name: "Neptune", Radius: 315, Orbit: 8500, Period: 59800, Image: "neptune.png", Color: "#5555FF"},
			{Name: "Pluto", Radius: 50, Orbit: 9500, Period: 90560, Image: "pluto.png", Color: "#BBBBBB"},
		},
	}
}

// LoadSystem reads a BodyConfig tree from a JSON file.
func LoadSystem(path string) (BodyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BodyConfig{}, fmt.Errorf("orrery: read system %s: %w", path, err)
	}
	var cfg BodyConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return BodyConfig{}, fmt.Errorf("orrery: parse system %s: %w", path, err)
	}
	return cfg, nil
}

// Build validates cfg and constructs the body tree. Starting phases are drawn
// from rng in depth-first order.
func Build(cfg BodyConfig, rng *rand.Rand) (*Body, error) {
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("orrery: %q: %w", cfg.Name, err)
	}
	c, err := parseColor(cfg.Color)
	if err != nil {
		return nil, fmt.Errorf("orrery: %q: %w", cfg.Name, err)
	}

	b := NewBody(cfg.Name, cfg.Radius, cfg.Orbit, cfg.Period, cfg.Image, c, rng)
	for _, sc := range cfg.Satellites {
		sat, err := Build(sc, rng)
		if err != nil {
			return nil, err
		}
		b.Add(sat)
	}
	return b, nil
}

func validate(cfg BodyConfig) error {
	if cfg.Radius <= 0 {
		return fmt.Errorf("%w: radius %v", ErrInvalidBody, cfg.Radius)
	}
	if cfg.Orbit < 0 {
		return fmt.Errorf("%w: orbit %v", ErrInvalidBody, cfg.Orbit)
	}
	// ln(period) must be positive for a forward, finite speed.
	if cfg.Period != 0 && cfg.Period <= 1 {
		return fmt.Errorf("%w: %v", ErrInvalidPeriod, cfg.Period)
	}
	return nil
}

func parseColor(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: color %q: %v", ErrInvalidBody, s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}
