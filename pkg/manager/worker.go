package manager

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/thegaltinator/alfred-fabric/pkg/normalize"
	"github.com/thegaltinator/alfred-fabric/pkg/observability"
	"github.com/thegaltinator/alfred-fabric/pkg/whiteboard"
)

// Backoff and call-ceiling constants for the runtime worker.
const (
	GraphErrorBackoff   = 350 * time.Millisecond
	ExternalCallCeiling = 75 * time.Second
)

// Tailer is the whiteboard read contract the worker needs.
type Tailer interface {
	Tail(ctx context.Context, userID, afterID string) ([]whiteboard.Event, string, error)
}

// Graph is the Manager Graph contract the worker drives.
type Graph interface {
	Run(ctx context.Context, evt NormalizedEvent) error
}

// Worker runs the per-user runtime tail loop: tail → normalize
// → should_skip → graph.run → advance checkpoint.
type Worker struct {
	userID      string
	startAfter  string
	bus         Tailer
	graph       Graph
	checkpoints CheckpointStore
	metrics     *observability.Metrics
	logger      *slog.Logger
}

// NewWorker constructs a runtime worker for one user. startAfterID is the
// configured starting tail id; the default "" means "$", only events
// appended after startup.
func NewWorker(userID, startAfterID string, bus Tailer, graph Graph, checkpoints CheckpointStore, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{
		userID:      userID,
		startAfter:  startAfterID,
		bus:         bus,
		graph:       graph,
		checkpoints: checkpoints,
		metrics:     observability.NewMetrics(),
		logger:      logger.With("component", "runtime_worker", "user_id", userID),
	}
}

// Metrics exposes the worker's counters for the health endpoint.
func (w *Worker) Metrics() *observability.Metrics {
	return w.metrics
}

// Run loops until ctx is cancelled, tailing the user's whiteboard and
// driving each event through the graph. It never returns a non-nil error
// except ctx.Err() on cancellation: per-event failures are logged and
// retried on the next tail, not propagated.
func (w *Worker) Run(ctx context.Context) error {
	lastID := w.startAfter
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		events, _, err := w.bus.Tail(ctx, w.userID, lastID)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return ctx.Err()
			}
			w.logger.Error("tail failed", "error", err)
			time.Sleep(GraphErrorBackoff)
			continue
		}

		for _, evt := range events {
			if err := w.processOne(ctx, evt); err != nil {
				w.metrics.RecordError()
				w.logger.Error("graph run failed, checkpoint not advanced", "wb_id", evt.ID, "error", err)
				time.Sleep(GraphErrorBackoff)
				break
			}
			w.metrics.RecordProcessed()
			lastID = evt.ID
		}
	}
}

// processOne runs a single whiteboard event through normalize → should_skip
// → graph.run → advance-and-save-checkpoint.
func (w *Worker) processOne(ctx context.Context, raw whiteboard.Event) error {
	typed, err := normalize.Normalize(raw)
	if err != nil {
		if errors.Is(err, normalize.ErrUnknownType) {
			w.logger.Debug("dropped unrecognized whiteboard type", "wb_id", raw.ID, "error", err)
			return nil
		}
		return err
	}
	if typed.ThreadID == "" {
		w.logger.Debug("dropped event with empty thread_id", "wb_id", raw.ID)
		return nil
	}

	cp, err := w.checkpoints.Get(ctx, typed.UserID, typed.ThreadID)
	if err != nil {
		return err
	}
	if ShouldSkip(typed.WBID, cp) {
		w.logger.Debug("should_skip", "wb_id", typed.WBID, "last_wb_id_processed", cp.LastWBID)
		return nil
	}

	callCtx, cancel := context.WithTimeout(ctx, ExternalCallCeiling)
	defer cancel()

	if err := w.graph.Run(callCtx, NormalizedEvent{
		WBID:     typed.WBID,
		UserID:   typed.UserID,
		ThreadID: typed.ThreadID,
		Event: Event{
			Source:  string(typed.Source),
			Kind:    typed.Kind,
			Payload: typed.Payload,
		},
	}); err != nil {
		return err
	}

	// The graph saves through the same store while it runs (side-effect
	// keys, pending prompt, plan ids), so the copy loaded before the run is
	// stale by now. Reload before advancing, or this save would wipe those
	// writes.
	cp, err = w.checkpoints.Get(ctx, typed.UserID, typed.ThreadID)
	if err != nil {
		return err
	}
	cp.LastWBID = typed.WBID
	cp = Compact(cp)
	return w.checkpoints.Save(ctx, cp)
}
