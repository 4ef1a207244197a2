// Package emailtriage implements the Email-Triage subagent: a consumer of
// each user's inbound email stream that de-dupes, filters bulk mail,
// classifies via an external model and emits email.reply_needed whiteboard
// events for messages worth a reply.
package emailtriage

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/thegaltinator/alfred-fabric/pkg/observability"
	"github.com/thegaltinator/alfred-fabric/pkg/ratelimit"
	"github.com/thegaltinator/alfred-fabric/pkg/streams"
	"github.com/thegaltinator/alfred-fabric/pkg/whiteboard"
)

// GroupName is the consumer-group name Email-Triage workers share, so a
// crashed worker's pending entries can be auto-claimed by a surviving one.
const GroupName = "email_triage"

// dedupeTTL bounds how long a (message_id, internal_date) claim is held.
// Pollers re-deliver within minutes, not weeks.
const dedupeTTL = 7 * 24 * time.Hour

// Config wires one user's Email-Triage worker.
type Config struct {
	UserID       string
	ConsumerName string
	Streams      *streams.Client
	Bus          *whiteboard.Bus
	Classifier   Classifier
	Caps         *ratelimit.Caps
	Metrics      *observability.Metrics
	Gate         *observability.Gate
	Logger       *slog.Logger
}

// Subagent is one user's Email-Triage worker.
type Subagent struct {
	cfg    Config
	logger *slog.Logger
}

// New constructs a Subagent from cfg, defaulting Caps, Metrics, Gate and
// Logger if absent.
func New(cfg Config) *Subagent {
	if cfg.Caps == nil {
		cfg.Caps = ratelimit.New(0, 0)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "email_triage", "user_id", cfg.UserID)
	if cfg.Metrics == nil {
		cfg.Metrics = observability.NewMetrics()
	}
	if cfg.Gate == nil {
		cfg.Gate = observability.NewGate(logger)
	}
	return &Subagent{cfg: cfg, logger: logger}
}

func (s *Subagent) inputKey() string {
	return whiteboard.InputKey(s.cfg.UserID, whiteboard.InputEmail)
}

// Metrics exposes the worker's counters for the health endpoint.
func (s *Subagent) Metrics() *observability.Metrics {
	return s.cfg.Metrics
}

// Run loops reading messages via a consumer group until ctx is cancelled.
// Failed messages are left unacked for redelivery; while degraded the loop
// keeps draining the stream but skips classification calls.
func (s *Subagent) Run(ctx context.Context) error {
	key := s.inputKey()
	if err := s.cfg.Streams.EnsureGroup(ctx, key, GroupName); err != nil {
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

		reclaimed, err := s.cfg.Streams.AutoClaimStuck(ctx, key, GroupName, s.cfg.ConsumerName, time.Minute, 10)
		if err != nil {
			s.logger.Warn("autoclaim failed", "error", err)
		}
		events, err := s.cfg.Streams.ReadGroup(ctx, key, GroupName, s.cfg.ConsumerName, 10, 5*time.Second)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return ctx.Err()
			}
			s.logger.Error("read group failed", "error", err)
			time.Sleep(backoff)
			backoff = minDuration(backoff*2, maxBackoff)
			continue
		}
		backoff = 250 * time.Millisecond

		for _, ev := range append(reclaimed, events...) {
			if err := s.handleMessage(ctx, ev); err != nil {
				s.cfg.Metrics.RecordError()
				s.cfg.Gate.Record(true)
				s.logger.Error("triage failed, leaving unacked for retry", "stream_id", ev.ID, "error", err)
				continue
			}
			s.cfg.Metrics.RecordProcessed()
			s.cfg.Gate.Record(false)
			if err := s.cfg.Streams.Ack(ctx, key, GroupName, ev.ID); err != nil {
				s.logger.Error("ack failed", "stream_id", ev.ID, "error", err)
			}
		}
	}
}

// handleMessage runs one message through dedupe → bulk filter → classify →
// emit. Dedupe and filter outcomes ack without any whiteboard write.
func (s *Subagent) handleMessage(ctx context.Context, ev streams.Event) error {
	msg := messageFrom(ev, s.cfg.UserID)
	if msg.MessageID == "" {
		s.logger.Debug("dropped email entry without message_id", "stream_id", ev.ID)
		return nil
	}

	claim := "triage:seen:" + s.cfg.UserID + ":" + msg.MessageID + ":" + msg.InternalDate
	fresh, err := s.cfg.Streams.ClaimOnce(ctx, claim, dedupeTTL)
	if err != nil {
		return err
	}
	if !fresh {
		s.logger.Debug("duplicate message, skipping", "message_id", msg.MessageID)
		return nil
	}

	if isBulk(msg) {
		s.logger.Debug("bulk message, skipping", "message_id", msg.MessageID, "sender", msg.Sender)
		return nil
	}

	if s.cfg.Gate.Degraded() {
		s.logger.Warn("degraded: skipping classification", "message_id", msg.MessageID)
		return nil
	}
	if err := s.cfg.Caps.Wait(ctx); err != nil {
		_ = s.cfg.Streams.ReleaseClaim(ctx, claim)
		return err
	}

	verdict, err := s.cfg.Classifier.Classify(ctx, msg)
	s.cfg.Metrics.RecordExternalCall(err != nil)
	if err != nil {
		// Release so the redelivered entry is not mistaken for a duplicate.
		_ = s.cfg.Streams.ReleaseClaim(ctx, claim)
		return err
	}
	if !verdict.ReplyNeeded {
		return nil
	}

	_, err = s.cfg.Bus.AppendWithThread(ctx, s.cfg.UserID, msg.ThreadID, map[string]any{
		"type":       "email.reply_needed",
		"message_id": msg.MessageID,
		"sender":     msg.Sender,
		"summary":    verdict.Summary,
		"draft":      verdict.Draft,
	})
	return err
}

func messageFrom(ev streams.Event, userID string) Message {
	str := func(k string) string {
		v, _ := ev.Values[k].(string)
		return v
	}
	threadID := str("thread_id")
	if threadID == "" {
		threadID = userID + ":email"
	}
	return Message{
		MessageID:    str("message_id"),
		Sender:       str("sender"),
		Subject:      str("subject"),
		Snippet:      str("snippet"),
		InternalDate: str("internal_date"),
		ThreadID:     threadID,
		ListHeaders:  str("list_headers"),
	}
}

// isBulk applies the automated-mail heuristic: no-reply sender domains,
// list-unsubscribe headers and receipt-style subjects never warrant a
// drafted reply, so they are filtered before the classifier spends a call.
func isBulk(msg Message) bool {
	sender := strings.ToLower(msg.Sender)
	if strings.Contains(sender, "no-reply@") || strings.Contains(sender, "noreply@") || strings.Contains(sender, "donotreply@") {
		return true
	}
	if strings.Contains(strings.ToLower(msg.ListHeaders), "unsubscribe") {
		return true
	}
	subject := strings.ToLower(msg.Subject)
	for _, marker := range []string{"unsubscribe", "receipt", "order confirmation", "your invoice"} {
		if strings.Contains(subject, marker) {
			return true
		}
	}
	return false
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
