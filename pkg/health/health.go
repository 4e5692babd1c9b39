// Package health provides liveness and readiness probes for the hitscan
// game loop. The loop reports into a Heartbeat; HTTP handlers read it from
// another goroutine.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// HealthCheck defines the interface for individual health checks.
type HealthCheck interface {
	// Name returns the unique name of this health check
	Name() string
	// Check performs the health check and returns an error if unhealthy
	Check(ctx context.Context) error
}

// HealthStatus represents the overall health status of the application.
type HealthStatus struct {
	Status string                     `json:"status"`
	Checks map[string]ComponentHealth `json:"checks"`
}

// ComponentHealth represents the health status of an individual component.
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthChecker manages and executes health checks for the application.
type HealthChecker struct {
	checks map[string]HealthCheck
	mu     sync.RWMutex
}

// NewHealthChecker creates a new health checker instance.
func NewHealthChecker() *HealthChecker {
	return &HealthChecker{
		checks: make(map[string]HealthCheck),
	}
}

// AddCheck registers a health check, replacing any check with the same name.
func (hc *HealthChecker) AddCheck(check HealthCheck) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	hc.checks[check.Name()] = check
}

// CheckHealth runs every registered check. The overall status is "healthy"
// only if all of them pass.
func (hc *HealthChecker) CheckHealth(ctx context.Context) HealthStatus {
	hc.mu.RLock()
	defer hc.mu.RUnlock()

	status := HealthStatus{
		Status: "healthy",
		Checks: make(map[string]ComponentHealth),
	}

	for name, check := range hc.checks {
		if err := check.Check(ctx); err != nil {
			status.Status = "unhealthy"
			status.Checks[name] = ComponentHealth{
				Status:  "unhealthy",
				Message: err.Error(),
			}
			continue
		}
		status.Checks[name] = ComponentHealth{Status: "healthy"}
	}

	return status
}

// LivenessHandler answers 200 as long as the process can serve HTTP.
func (hc *HealthChecker) LivenessHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "alive"})
}

// ReadinessHandler runs all checks and answers 200 when they pass, 503
// otherwise.
func (hc *HealthChecker) ReadinessHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	health := hc.CheckHealth(ctx)

	w.Header().Set("Content-Type", "application/json")
	if health.Status == "healthy" {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(health)
}

// Heartbeat is written by the game loop once per frame and read by the
// probes. All fields are atomic.
type Heartbeat struct {
	now func() time.Time

	running  atomic.Bool
	frames   atomic.Uint64
	rejected atomic.Uint64
	live     atomic.Int64
	lastBeat atomic.Int64 // unix nanos, 0 before the first frame
}

// NewHeartbeat creates a heartbeat using the wall clock.
func NewHeartbeat() *Heartbeat {
	return &Heartbeat{now: time.Now}
}

// SetRunning records whether the game loop is running.
func (h *Heartbeat) SetRunning(running bool) {
	h.running.Store(running)
}

// ObserveFrame records a completed frame.
func (h *Heartbeat) ObserveFrame(dt float64, liveEnemies int) {
	h.frames.Add(1)
	h.live.Store(int64(liveEnemies))
	h.lastBeat.Store(h.now().UnixNano())
}

// RejectFrame records a frame the loop skipped. It still counts as a sign of
// life.
func (h *Heartbeat) RejectFrame(reason string) {
	h.rejected.Add(1)
	h.lastBeat.Store(h.now().UnixNano())
}

// Frames returns the number of completed frames.
func (h *Heartbeat) Frames() uint64 { return h.frames.Load() }

// Rejected returns the number of skipped frames.
func (h *Heartbeat) Rejected() uint64 { return h.rejected.Load() }

// LiveEnemies returns the live enemy count after the last frame.
func (h *Heartbeat) LiveEnemies() int { return int(h.live.Load()) }

// SinceLastBeat returns the time since the loop last reported, and false if
// it never has.
func (h *Heartbeat) SinceLastBeat() (time.Duration, bool) {
	last := h.lastBeat.Load()
	if last == 0 {
		return 0, false
	}
	return h.now().Sub(time.Unix(0, last)), true
}

// GameLoopHealthCheck fails when the loop is stopped or has not produced a
// frame within MaxSilence.
type GameLoopHealthCheck struct {
	heartbeat  *Heartbeat
	MaxSilence time.Duration
}

// NewGameLoopHealthCheck creates a loop check over heartbeat.
func NewGameLoopHealthCheck(heartbeat *Heartbeat, maxSilence time.Duration) *GameLoopHealthCheck {
	return &GameLoopHealthCheck{
		heartbeat:  heartbeat,
		MaxSilence: maxSilence,
	}
}

// Name returns the name of this health check.
func (g *GameLoopHealthCheck) Name() string {
	return "game_loop"
}

// Check verifies that the game loop is running and still producing frames.
func (g *GameLoopHealthCheck) Check(ctx context.Context) error {
	if !g.heartbeat.running.Load() {
		return fmt.Errorf("game loop is not running")
	}
	since, ok := g.heartbeat.SinceLastBeat()
	if !ok {
		return fmt.Errorf("game loop has not completed a frame")
	}
	if g.MaxSilence > 0 && since > g.MaxSilence {
		return fmt.Errorf("no frame for %s (limit %s)", since.Round(time.Millisecond), g.MaxSilence)
	}
	return nil
}

// MemoryHealthCheck implements HealthCheck for memory usage monitoring.
type MemoryHealthCheck struct {
	maxMemoryMB    int64
	getMemoryUsage func() int64
}

// NewMemoryHealthCheck creates a health check for memory usage.
func NewMemoryHealthCheck(maxMemoryMB int64, getMemoryUsage func() int64) *MemoryHealthCheck {
	return &MemoryHealthCheck{
		maxMemoryMB:    maxMemoryMB,
		getMemoryUsage: getMemoryUsage,
	}
}

// Name returns the name of this health check.
func (m *MemoryHealthCheck) Name() string {
	return "memory"
}

// Check verifies that memory usage is within acceptable limits.
func (m *MemoryHealthCheck) Check(ctx context.Context) error {
	currentMB := m.getMemoryUsage()
	if currentMB > m.maxMemoryMB {
		return fmt.Errorf("memory usage %dMB exceeds limit %dMB", currentMB, m.maxMemoryMB)
	}
	return nil
}
