// Package mailer implements the Mailer worker: a consumer of each user's
// internal mail control channel that delivers user-confirmed drafts through
// an external mail API, at most once per confirmed draft.
package mailer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/thegaltinator/alfred-fabric/pkg/observability"
	"github.com/thegaltinator/alfred-fabric/pkg/ratelimit"
	"github.com/thegaltinator/alfred-fabric/pkg/streams"
	"github.com/thegaltinator/alfred-fabric/pkg/whiteboard"
)

// GroupName is the consumer-group name Mailer workers share.
const GroupName = "mailer"

// sentTTL bounds how long a sent-claim is held. A confirmation replayed
// months later is stale enough that a duplicate send is the lesser risk
// versus unbounded key growth.
const sentTTL = 30 * 24 * time.Hour

// Config wires one user's Mailer worker.
type Config struct {
	UserID       string
	ConsumerName string
	Streams      *streams.Client
	Sender       Sender
	Caps         *ratelimit.Caps
	Metrics      *observability.Metrics
	Logger       *slog.Logger
	// AutoClaimMinIdle is how long a pending entry may sit with a dead
	// consumer before another claims it. Zero means one minute.
	AutoClaimMinIdle time.Duration
}

// Worker is one user's Mailer worker.
type Worker struct {
	cfg    Config
	logger *slog.Logger
}

// New constructs a Worker from cfg, defaulting Caps, Metrics and Logger if
// absent.
func New(cfg Config) *Worker {
	if cfg.Caps == nil {
		cfg.Caps = ratelimit.New(0, 0)
	}
	if cfg.Metrics == nil {
		cfg.Metrics = observability.NewMetrics()
	}
	if cfg.AutoClaimMinIdle <= 0 {
		cfg.AutoClaimMinIdle = time.Minute
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{cfg: cfg, logger: logger.With("component", "mailer", "user_id", cfg.UserID)}
}

func (w *Worker) controlKey() string {
	return whiteboard.ControlKey(w.cfg.UserID, whiteboard.ControlMail)
}

// Metrics exposes the worker's counters for the health endpoint.
func (w *Worker) Metrics() *observability.Metrics {
	return w.cfg.Metrics
}

// Run loops reading email.send.confirmed entries via a consumer group until
// ctx is cancelled. Failed sends are left unacked for redelivery.
func (w *Worker) Run(ctx context.Context) error {
	key := w.controlKey()
	if err := w.cfg.Streams.EnsureGroup(ctx, key, GroupName); err != nil {
		return err
	}

	backoff := 250 * time.Millisecond
	const maxBackoff = 4 * time.Second

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		reclaimed, err := w.cfg.Streams.AutoClaimStuck(ctx, key, GroupName, w.cfg.ConsumerName, w.cfg.AutoClaimMinIdle, 10)
		if err != nil {
			w.logger.Warn("autoclaim failed", "error", err)
		}
		events, err := w.cfg.Streams.ReadGroup(ctx, key, GroupName, w.cfg.ConsumerName, 10, 5*time.Second)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return ctx.Err()
			}
			w.logger.Error("read group failed", "error", err)
			time.Sleep(backoff)
			backoff = minDuration(backoff*2, maxBackoff)
			continue
		}
		backoff = 250 * time.Millisecond

		for _, ev := range append(reclaimed, events...) {
			if err := w.handleConfirmation(ctx, ev); err != nil {
				w.cfg.Metrics.RecordError()
				w.logger.Error("send failed, leaving unacked for retry", "stream_id", ev.ID, "error", err)
				time.Sleep(backoff)
				backoff = minDuration(backoff*2, maxBackoff)
				continue
			}
			w.cfg.Metrics.RecordProcessed()
			if err := w.cfg.Streams.Ack(ctx, key, GroupName, ev.ID); err != nil {
				w.logger.Error("ack failed", "stream_id", ev.ID, "error", err)
			}
		}
	}
}

// handleConfirmation sends one confirmed draft at most once. The
// (message_id, draft_hash) claim is taken before the send and released if
// the send fails, so a redelivered confirmation retries while a replayed
// one after success is a no-op.
func (w *Worker) handleConfirmation(ctx context.Context, ev streams.Event) error {
	messageID, _ := ev.Values["message_id"].(string)
	draftHash, _ := ev.Values["draft_hash"].(string)
	if messageID == "" || draftHash == "" {
		w.logger.Warn("dropped malformed confirmation", "stream_id", ev.ID)
		return nil
	}

	claim := "mailer:sent:" + w.cfg.UserID + ":" + messageID + ":" + draftHash
	fresh, err := w.cfg.Streams.ClaimOnce(ctx, claim, sentTTL)
	if err != nil {
		return err
	}
	if !fresh {
		w.logger.Debug("already sent, skipping", "message_id", messageID)
		return nil
	}

	if err := w.cfg.Caps.Wait(ctx); err != nil {
		_ = w.cfg.Streams.ReleaseClaim(ctx, claim)
		return err
	}

	err = w.cfg.Sender.Send(ctx, SendRequest{
		UserID:    w.cfg.UserID,
		MessageID: messageID,
		DraftHash: draftHash,
	})
	w.cfg.Metrics.RecordExternalCall(err != nil)
	if err != nil {
		if releaseErr := w.cfg.Streams.ReleaseClaim(ctx, claim); releaseErr != nil {
			w.logger.Error("release claim failed after send error", "claim", claim, "error", releaseErr)
		}
		return err
	}
	return nil
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
