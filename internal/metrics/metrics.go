// Package metrics exposes frame loop counters in Prometheus format.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	reg *prometheus.Registry

	frames       prometheus.Counter
	tickDuration prometheus.Histogram
	inputs       *prometheus.CounterVec
	scale        prometheus.Gauge
	paused       prometheus.Gauge
	assetsFailed prometheus.Counter
}

func NewCollector() *Collector {
	m := &Collector{
		reg: prometheus.NewRegistry(),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orrery_frames_total",
			Help: "Frames drawn",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "orrery_tick_duration_seconds",
			Help:    "Time spent in one update and draw step",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 10),
		}),
		inputs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orrery_inputs_total",
			Help: "Input events handled",
		}, []string{"kind"}),
		scale: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orrery_view_scale",
			Help: "Current zoom scale",
		}),
		paused: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orrery_paused",
			Help: "1 while the orbits are paused",
		}),
		assetsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orrery_asset_failures_total",
			Help: "Images that could not be decoded",
		}),
	}

	m.reg.MustRegister(m.frames, m.tickDuration, m.inputs, m.scale, m.paused, m.assetsFailed)
	return m
}

// RecordFrame records one finished step and the view state it ended with.
func (m *Collector) RecordFrame(d time.Duration, scale float64, paused bool) {
	if m == nil {
		return
	}
	m.frames.Inc()
	m.tickDuration.Observe(d.Seconds())
	m.scale.Set(scale)
	if paused {
		m.paused.Set(1)
	} else {
		m.paused.Set(0)
	}
}

func (m *Collector) RecordInput(kind string) {
	if m == nil {
		return
	}
	m.inputs.WithLabelValues(kind).Inc()
}

func (m *Collector) RecordAssetFailure() {
	if m == nil {
		return
	}
	m.assetsFailed.Inc()
}

func (m *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done.
func (m *Collector) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
