package observability

import (
	"log/slog"
	"sync"
	"time"
)

// Gate thresholds: a worker enters degraded mode when its error rate over
// the trailing window exceeds EnterErrorRate, and exits once the rate falls
// below ExitErrorRate over a full window.
const (
	EnterErrorRate = 0.20
	ExitErrorRate  = 0.05
	GateWindow     = 60 * time.Second
)

type outcome struct {
	at     time.Time
	failed bool
}

// Gate is a worker's degraded-mode latch. While degraded, the worker keeps
// draining its streams but pauses non-critical external calls.
type Gate struct {
	mu       sync.Mutex
	window   []outcome
	degraded bool
	logger   *slog.Logger
	now      func() time.Time
}

// NewGate constructs a Gate logging transitions with the given logger.
func NewGate(logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{logger: logger, now: time.Now}
}

// SetNowFunc replaces the clock, for tests.
func (g *Gate) SetNowFunc(now func() time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.now = now
}

// Record feeds one handling outcome into the trailing window and
// re-evaluates the latch.
func (g *Gate) Record(failed bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	g.window = append(g.window, outcome{at: now, failed: failed})
	g.prune(now)

	rate := g.errorRate()
	switch {
	case !g.degraded && rate > EnterErrorRate:
		g.degraded = true
		g.logger.Warn("entering degraded mode: pausing non-critical external calls", "error_rate", rate)
	case g.degraded && rate < ExitErrorRate:
		g.degraded = false
		g.logger.Info("exiting degraded mode", "error_rate", rate)
	}
}

// Degraded reports whether the latch is currently set.
func (g *Gate) Degraded() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prune(g.now())
	return g.degraded
}

func (g *Gate) prune(now time.Time) {
	cutoff := now.Add(-GateWindow)
	i := 0
	for i < len(g.window) && g.window[i].at.Before(cutoff) {
		i++
	}
	g.window = g.window[i:]
}

func (g *Gate) errorRate() float64 {
	if len(g.window) == 0 {
		return 0
	}
	failed := 0
	for _, o := range g.window {
		if o.failed {
			failed++
		}
	}
	return float64(failed) / float64(len(g.window))
}
