// Package metrics exposes simulation counters to Prometheus.
package metrics

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/opd-ai/go-hitscan/pkg/event"
)

// Collector bundles the hitscan Prometheus metrics. Counters are driven by
// the event bus; frame timing and population are pushed by the host loop.
type Collector struct {
	gatherer prometheus.Gatherer

	ShotsFired     prometheus.Counter
	EnemyHits      prometheus.Counter
	EnemyKills     prometheus.Counter
	EnemySpawns    prometheus.Counter
	RejectedFrames *prometheus.CounterVec
	LiveEnemies    prometheus.Gauge
	FrameSeconds   prometheus.Histogram

	subscriptions []*event.Subscription
}

// NewCollector registers the metrics against reg, defaulting to the global
// registry when nil. Metrics already registered under the same name are
// reused.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &Collector{gatherer: gatherer}
	var err error

	if c.ShotsFired, err = register(reg, newCounter("hitscan_shots_fired_total", "Total number of shots fired.")); err != nil {
		return nil, err
	}
	if c.EnemyHits, err = register(reg, newCounter("hitscan_enemy_hits_total", "Total number of shots that hit an enemy.")); err != nil {
		return nil, err
	}
	if c.EnemyKills, err = register(reg, newCounter("hitscan_enemy_kills_total", "Total number of enemies destroyed.")); err != nil {
		return nil, err
	}
	if c.EnemySpawns, err = register(reg, newCounter("hitscan_enemy_spawns_total", "Total number of enemies spawned.")); err != nil {
		return nil, err
	}
	if c.RejectedFrames, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hitscan_rejected_frames_total",
		Help: "Frames skipped by host validation, labeled by reason.",
	}, []string{"reason"})); err != nil {
		return nil, err
	}
	if c.LiveEnemies, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "hitscan_live_enemies",
		Help: "Current number of live enemies.",
	})); err != nil {
		return nil, err
	}
	if c.FrameSeconds, err = register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "hitscan_frame_seconds",
		Help:    "Simulation frame delta time in seconds.",
		Buckets: []float64{0.001, 0.004, 0.008, 0.016, 0.033, 0.05, 0.1, 0.25, 1},
	})); err != nil {
		return nil, err
	}

	return c, nil
}

func newCounter(name, help string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{Name: name, Help: help})
}

// register adds col to reg. If an equivalent collector is already registered
// the existing one is returned instead.
func register[T prometheus.Collector](reg prometheus.Registerer, col T) (T, error) {
	if err := reg.Register(col); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			return col, fmt.Errorf("metric already registered with incompatible type: %w", err)
		}
		return col, fmt.Errorf("failed to register metric: %w", err)
	}
	return col, nil
}

// Attach subscribes the counters to simulation events on bus.
func (c *Collector) Attach(bus *event.Bus) {
	c.subscriptions = append(c.subscriptions,
		bus.Subscribe(event.ShotFired, func(event.Event) { c.ShotsFired.Inc() }),
		bus.Subscribe(event.EnemyHit, func(event.Event) { c.EnemyHits.Inc() }),
		bus.Subscribe(event.EnemyDestroyed, func(event.Event) { c.EnemyKills.Inc() }),
		bus.Subscribe(event.EnemySpawned, func(event.Event) { c.EnemySpawns.Inc() }),
	)
}

// Detach cancels every subscription made by Attach.
func (c *Collector) Detach() {
	for _, sub := range c.subscriptions {
		sub.Cancel()
	}
	c.subscriptions = nil
}

// ObserveFrame records one frame's dt and the live enemy count after it.
func (c *Collector) ObserveFrame(dt float64, liveEnemies int) {
	if c == nil {
		return
	}
	c.FrameSeconds.Observe(dt)
	c.LiveEnemies.Set(float64(liveEnemies))
}

// RejectFrame counts a frame skipped by validation.
func (c *Collector) RejectFrame(reason string) {
	if c == nil {
		return
	}
	c.RejectedFrames.WithLabelValues(reason).Inc()
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// FrameObserver receives per-frame measurements from the host loop.
type FrameObserver interface {
	ObserveFrame(dt float64, liveEnemies int)
	RejectFrame(reason string)
}

// Observers fans frame measurements out to each observer in order.
type Observers []FrameObserver

// ObserveFrame implements FrameObserver.
func (o Observers) ObserveFrame(dt float64, liveEnemies int) {
	for _, obs := range o {
		obs.ObserveFrame(dt, liveEnemies)
	}
}

// RejectFrame implements FrameObserver.
func (o Observers) RejectFrame(reason string) {
	for _, obs := range o {
		obs.RejectFrame(reason)
	}
}
