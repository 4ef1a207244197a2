// Package productivity implements the Productivity subagent: a
// per-user mismatch timer over activity heartbeats that emits prod.overrun/
// prod.underrun/prod.nudge whiteboard events, but never the expected-apps
// heuristic or raw heartbeats themselves.
package productivity

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"github.com/thegaltinator/alfred-fabric/pkg/streams"
	"github.com/thegaltinator/alfred-fabric/pkg/whiteboard"
)

// GroupName is the consumer-group name Productivity workers share.
const GroupName = "productivity"

// MismatchThreshold and DefaultCooldown are the default timer constants.
const (
	MismatchThreshold = 120 * time.Second
	DefaultCooldown   = 60 * time.Second
	// jitterMax avoids synchronized emission bursts across users.
	jitterMax = 5 * time.Second
)

// DayPlan is the current block context driving expected-apps recomputation.
// EndsAt is the block's scheduled end; a zero value means the schedule is
// unknown and decisions default to overrun.
type DayPlan struct {
	BlockID       string
	ActivityLabel string
	Priority      string
	EndsAt        time.Time
}

// ExpectedAppsSource supplies the heuristic inputs for rebuilding
// expected_apps on a recompute trigger: local preferences, the historical
// allowlist and time-of-day bias. It is never persisted to the whiteboard.
type ExpectedAppsSource interface {
	ExpectedApps(ctx context.Context, userID string, plan DayPlan, now time.Time) ([]string, error)
}

// blockState is the subagent's private per-user timer state. None of this
// is written to the whiteboard.
type blockState struct {
	plan            DayPlan
	expectedApps    map[string]struct{}
	mismatchElapsed time.Duration
	lastHeartbeat   time.Time
	cooldownUntil   time.Time
}

// Config wires one user's Productivity worker.
type Config struct {
	UserID       string
	ConsumerName string
	Streams      *streams.Client
	Bus          *whiteboard.Bus
	Apps         ExpectedAppsSource
	Logger       *slog.Logger
	// Threshold and Cooldown override the default mismatch timer
	// constants; zero values keep the defaults.
	Threshold time.Duration
	Cooldown  time.Duration
	// Now, if set, replaces time.Now for deterministic tests.
	Now func() time.Time
}

// Subagent is one user's Productivity worker.
type Subagent struct {
	cfg    Config
	logger *slog.Logger
	state  blockState
	now    func() time.Time
}

// New constructs a Subagent from cfg.
func New(cfg Config) *Subagent {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	if cfg.Threshold <= 0 {
		cfg.Threshold = MismatchThreshold
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = DefaultCooldown
	}
	return &Subagent{cfg: cfg, logger: logger.With("component", "productivity", "user_id", cfg.UserID), now: now}
}

func (s *Subagent) inputKey() string {
	return whiteboard.InputKey(s.cfg.UserID, whiteboard.InputProd)
}

// Run loops reading heartbeats via a consumer group until ctx is cancelled.
func (s *Subagent) Run(ctx context.Context) error {
	key := s.inputKey()
	if err := s.cfg.Streams.EnsureGroup(ctx, key, GroupName); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		events, err := s.cfg.Streams.ReadGroup(ctx, key, GroupName, s.cfg.ConsumerName, 10, 5*time.Second)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return ctx.Err()
			}
			s.logger.Error("read group failed", "error", err)
			time.Sleep(250 * time.Millisecond)
			continue
		}
		for _, ev := range events {
			if err := s.handleHeartbeat(ctx, ev); err != nil {
				s.logger.Error("handle heartbeat failed", "stream_id", ev.ID, "error", err)
				continue
			}
			if err := s.cfg.Streams.Ack(ctx, key, GroupName, ev.ID); err != nil {
				s.logger.Error("ack failed", "stream_id", ev.ID, "error", err)
			}
		}
	}
}

// handleHeartbeat advances or resets the mismatch timer and emits
// at most one prod event when the threshold is crossed outside cooldown.
func (s *Subagent) handleHeartbeat(ctx context.Context, ev streams.Event) error {
	now := s.now()
	foreground, _ := ev.Values["foreground"].(string)
	threadID, _ := ev.Values["thread_id"].(string)
	if threadID == "" {
		threadID = s.cfg.UserID + ":productivity"
	}
	if blockID, _ := ev.Values["block_id"].(string); blockID != "" && blockID != s.state.plan.BlockID {
		label, _ := ev.Values["activity_label"].(string)
		priority, _ := ev.Values["priority"].(string)
		endStr, _ := ev.Values["block_end"].(string)
		end, _ := time.Parse(time.RFC3339, endStr)
		if err := s.recompute(ctx, DayPlan{BlockID: blockID, ActivityLabel: label, Priority: priority, EndsAt: end}, now); err != nil {
			return err
		}
	}

	if s.state.lastHeartbeat.IsZero() {
		s.state.lastHeartbeat = now
	}
	delta := now.Sub(s.state.lastHeartbeat)
	s.state.lastHeartbeat = now

	_, expected := s.state.expectedApps[foreground]
	if expected {
		s.state.mismatchElapsed = 0
		return nil
	}
	// The timer stays frozen for the whole cooldown, so consecutive
	// decisions are at least threshold+cooldown apart.
	if now.Before(s.state.cooldownUntil) {
		s.state.mismatchElapsed = 0
		return nil
	}
	s.state.mismatchElapsed += delta

	jittered := s.cfg.Threshold + time.Duration(rand.Int63n(int64(jitterMax)))
	if s.state.mismatchElapsed < jittered {
		return nil
	}

	kind := s.decide(now)
	_, err := s.cfg.Bus.AppendWithThread(ctx, s.cfg.UserID, threadID, map[string]any{
		"type":           kind,
		"block_id":       s.state.plan.BlockID,
		"activity_label": s.state.plan.ActivityLabel,
	})
	if err != nil {
		return err
	}
	s.state.cooldownUntil = now.Add(s.cfg.Cooldown)
	s.state.mismatchElapsed = 0
	return nil
}

// decide picks which decision event a threshold crossing emits. Low
// priority blocks only ever warrant a nudge. Otherwise: off-task inside the
// block means the mismatch overran the threshold (prod.overrun); off-task
// past the block's scheduled end means the block's on-task time under-ran
// its schedule (prod.underrun). An unknown schedule defaults to overrun.
func (s *Subagent) decide(now time.Time) string {
	if s.state.plan.Priority == "low" {
		return "prod.nudge"
	}
	if !s.state.plan.EndsAt.IsZero() && now.After(s.state.plan.EndsAt) {
		return "prod.underrun"
	}
	return "prod.overrun"
}

// recompute rebuilds expected_apps on any of the three triggers: a block
// boundary, a control-channel prod.recompute message, or a calendar delta
// affecting the current block.
func (s *Subagent) recompute(ctx context.Context, plan DayPlan, now time.Time) error {
	s.state.plan = plan
	s.state.mismatchElapsed = 0
	if s.cfg.Apps == nil {
		s.state.expectedApps = nil
		return nil
	}
	apps, err := s.cfg.Apps.ExpectedApps(ctx, s.cfg.UserID, plan, now)
	if err != nil {
		return err
	}
	set := make(map[string]struct{}, len(apps))
	for _, a := range apps {
		set[a] = struct{}{}
	}
	s.state.expectedApps = set
	return nil
}

// OnControlSignal handles a prod.recompute {plan_id, version, block_id}
// message from the Manager's internal control channel.
func (s *Subagent) OnControlSignal(ctx context.Context, blockID string) error {
	return s.recompute(ctx, DayPlan{BlockID: blockID, ActivityLabel: s.state.plan.ActivityLabel}, s.now())
}

// OnCalendarDelta handles a calendar delta affecting the current block
// observed via the whiteboard.
func (s *Subagent) OnCalendarDelta(ctx context.Context, plan DayPlan) error {
	return s.recompute(ctx, plan, s.now())
}

// RunControlListener tails user:{U}:control:prod and applies each
// prod.recompute {plan_id, version, block_id} signal.
// It runs alongside Run as a second loop on the same Subagent instance.
func (s *Subagent) RunControlListener(ctx context.Context) error {
	key := whiteboard.ControlKey(s.cfg.UserID, whiteboard.ControlProd)
	lastID := ""
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		events, next, err := s.cfg.Streams.Tail(ctx, key, lastID, 10, 5*time.Second)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return ctx.Err()
			}
			s.logger.Error("control listener tail failed", "error", err)
			time.Sleep(250 * time.Millisecond)
			continue
		}
		for _, ev := range events {
			blockID, _ := ev.Values["block_id"].(string)
			if err := s.OnControlSignal(ctx, blockID); err != nil {
				s.logger.Error("apply control signal failed", "error", err)
			}
		}
		lastID = next
	}
}

// Rollover triggers a recompute for the first block of the day. Callers
// (e.g. a scheduler in cmd/) invoke this at local midnight and on DST
// changes; the mismatch timer restarts from zero.
func (s *Subagent) Rollover(ctx context.Context, firstBlock DayPlan) error {
	return s.recompute(ctx, firstBlock, s.now())
}
