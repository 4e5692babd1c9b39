package metrics

import (
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/opd-ai/go-hitscan/pkg/config"
	"github.com/opd-ai/go-hitscan/pkg/engine"
	"github.com/opd-ai/go-hitscan/pkg/entity"
	"github.com/opd-ai/go-hitscan/pkg/event"
	"github.com/opd-ai/go-hitscan/pkg/physics"
)

func newTestCollector(t *testing.T) (*Collector, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}
	return c, reg
}

func TestCollector_AttachCountsEvents(t *testing.T) {
	c, _ := newTestCollector(t)
	bus := event.NewEventBus()
	c.Attach(bus)

	bus.Publish(event.NewShotEvent(nil, physics.Vector2D{}, physics.Vector2D{X: 1}, true))
	bus.Publish(event.NewShotEvent(nil, physics.Vector2D{}, physics.Vector2D{X: 1}, false))
	bus.Publish(event.NewEnemyEvent(event.EnemyHit, nil, 1))
	bus.Publish(event.NewEnemyEvent(event.EnemyDestroyed, nil, 1))
	bus.Publish(event.NewEnemyEvent(event.EnemySpawned, nil, 2))
	bus.Publish(event.NewEnemyEvent(event.EnemySpawned, nil, 3))

	tests := []struct {
		name     string
		counter  prometheus.Counter
		expected float64
	}{
		{"shots", c.ShotsFired, 2},
		{"hits", c.EnemyHits, 1},
		{"kills", c.EnemyKills, 1},
		{"spawns", c.EnemySpawns, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := testutil.ToFloat64(tt.counter); got != tt.expected {
				t.Errorf("%s = %v, want %v", tt.name, got, tt.expected)
			}
		})
	}

	c.Detach()
	bus.Publish(event.NewShotEvent(nil, physics.Vector2D{}, physics.Vector2D{X: 1}, false))
	if got := testutil.ToFloat64(c.ShotsFired); got != 2 {
		t.Errorf("shots after Detach = %v, want 2", got)
	}
}

func TestCollector_TracksGameSession(t *testing.T) {
	c, _ := newTestCollector(t)
	bus := event.NewEventBus()
	c.Attach(bus)

	cfg := config.DefaultConfig()
	cfg.Spawn.ChancePercent = 0
	game := engine.NewGame(cfg, rand.New(rand.NewPCG(5, 5)), bus)
	game.Enemies = []*entity.Enemy{
		entity.NewEnemy(physics.Vector2D{X: 400, Y: 200}, entity.EnemyRadius, entity.EnemyHealth),
	}

	game.Step(1.0/60, engine.Input{Aim: physics.Vector2D{X: 400, Y: 0}, Fire: true})
	c.ObserveFrame(1.0/60, len(game.Enemies))

	if got := testutil.ToFloat64(c.EnemySpawns); got != 6 {
		t.Errorf("spawns = %v, want 6 from the opening wave", got)
	}
	if got := testutil.ToFloat64(c.EnemyKills); got != 1 {
		t.Errorf("kills = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.LiveEnemies); got != 0 {
		t.Errorf("live enemies = %v, want 0", got)
	}
}

func TestCollector_ObserveAndReject(t *testing.T) {
	c, reg := newTestCollector(t)

	c.ObserveFrame(0.016, 4)
	c.ObserveFrame(0.02, 5)
	c.RejectFrame("negative_delta")
	c.RejectFrame("negative_delta")

	if got := testutil.ToFloat64(c.LiveEnemies); got != 5 {
		t.Errorf("live enemies = %v, want 5", got)
	}
	if got := testutil.ToFloat64(c.RejectedFrames.WithLabelValues("negative_delta")); got != 2 {
		t.Errorf("rejected frames = %v, want 2", got)
	}
	if n := testutil.CollectAndCount(c.FrameSeconds); n != 1 {
		t.Errorf("frame histogram series = %d, want 1", n)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() == "hitscan_frame_seconds" {
			if count := mf.GetMetric()[0].GetHistogram().GetSampleCount(); count != 2 {
				t.Errorf("hitscan_frame_seconds sample_count = %d, want 2", count)
			}
			return
		}
	}
	t.Error("hitscan_frame_seconds not gathered")
}

func TestCollector_NilSafe(t *testing.T) {
	var c *Collector
	c.ObserveFrame(0.016, 3)
	c.RejectFrame("non_finite_aim")
}

type countingObserver struct {
	frames   int
	rejected []string
}

func (o *countingObserver) ObserveFrame(dt float64, liveEnemies int) { o.frames++ }

func (o *countingObserver) RejectFrame(reason string) { o.rejected = append(o.rejected, reason) }

func TestObservers_FanOut(t *testing.T) {
	c, _ := newTestCollector(t)
	extra := &countingObserver{}
	obs := Observers{c, extra}

	obs.ObserveFrame(0.016, 7)
	obs.RejectFrame("non_finite_delta")

	if got := testutil.ToFloat64(c.LiveEnemies); got != 7 {
		t.Errorf("live enemies = %v, want 7", got)
	}
	if got := testutil.ToFloat64(c.RejectedFrames.WithLabelValues("non_finite_delta")); got != 1 {
		t.Errorf("rejected frames = %v, want 1", got)
	}
	if extra.frames != 1 || len(extra.rejected) != 1 {
		t.Errorf("second observer saw frames=%d rejected=%v", extra.frames, extra.rejected)
	}
}

func TestNewCollector_ReusesRegisteredMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("first NewCollector: %v", err)
	}
	second, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("second NewCollector: %v", err)
	}

	first.ShotsFired.Inc()
	if got := testutil.ToFloat64(second.ShotsFired); got != 1 {
		t.Errorf("second collector did not share the registered counter, got %v", got)
	}
}

func TestCollector_Handler(t *testing.T) {
	c, _ := newTestCollector(t)
	c.ShotsFired.Add(3)
	c.ObserveFrame(0.016, 6)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	c.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	for _, want := range []string{
		"hitscan_shots_fired_total 3",
		"hitscan_live_enemies 6",
		"hitscan_frame_seconds_count 1",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}
