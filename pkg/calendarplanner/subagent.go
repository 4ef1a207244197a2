// Package calendarplanner implements the Calendar-Planner subagent: it
// mirrors an external calendar into the shadow calendar, proposes plan
// changes via the Planner collaborator, and re-checks drift before a
// confirmed proposal is applied.
package calendarplanner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/thegaltinator/alfred-fabric/pkg/observability"
	"github.com/thegaltinator/alfred-fabric/pkg/planner"
	"github.com/thegaltinator/alfred-fabric/pkg/ratelimit"
	"github.com/thegaltinator/alfred-fabric/pkg/streams"
	"github.com/thegaltinator/alfred-fabric/pkg/whiteboard"
)

// GroupName is the consumer-group name every Calendar-Planner worker shares
// for a given user's input stream, so crashed workers' pending entries can
// be auto-claimed by a surviving one.
const GroupName = "calendar_planner"

// Config wires one user's Calendar-Planner worker.
type Config struct {
	UserID       string
	CalendarID   string
	ConsumerName string
	Streams      *streams.Client
	Bus          *whiteboard.Bus
	Shadow       *ShadowStore
	Sync         *SyncStore
	Proposals    *ProposalStore
	Collaborator Collaborator
	Planner      *planner.Client
	Caps         *ratelimit.Caps
	Metrics      *observability.Metrics
	Gate         *observability.Gate
	Logger       *slog.Logger
}

// Subagent is one user's Calendar-Planner worker.
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
	logger = logger.With("component", "calendar_planner", "user_id", cfg.UserID)
	if cfg.Metrics == nil {
		cfg.Metrics = observability.NewMetrics()
	}
	if cfg.Gate == nil {
		cfg.Gate = observability.NewGate(logger)
	}
	return &Subagent{cfg: cfg, logger: logger}
}

// Metrics exposes the worker's counters for the health endpoint.
func (s *Subagent) Metrics() *observability.Metrics {
	return s.cfg.Metrics
}

func (s *Subagent) inputKey() string {
	return whiteboard.InputKey(s.cfg.UserID, whiteboard.InputCalendar)
}

// Run loops reading deltas via a consumer group until ctx is cancelled.
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
		for _, ev := range reclaimed {
			s.handleWithBackoff(ctx, ev, &backoff, maxBackoff, key)
		}

		events, err := s.cfg.Streams.ReadGroup(ctx, key, GroupName, s.cfg.ConsumerName, 10, 5*time.Second)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return ctx.Err()
			}
			s.logger.Error("read group failed", "error", err)
			time.Sleep(backoff)
			continue
		}
		for _, ev := range events {
			s.handleWithBackoff(ctx, ev, &backoff, maxBackoff, key)
		}
	}
}

func (s *Subagent) handleWithBackoff(ctx context.Context, ev streams.Event, backoff *time.Duration, maxBackoff time.Duration, key string) {
	if err := s.handleDelta(ctx, ev); err != nil {
		s.cfg.Metrics.RecordError()
		s.cfg.Gate.Record(true)
		s.logger.Error("handle delta failed, leaving unacked for retry", "stream_id", ev.ID, "error", err)
		time.Sleep(*backoff)
		*backoff = minDuration(*backoff*2, maxBackoff)
		return
	}
	s.cfg.Metrics.RecordProcessed()
	s.cfg.Gate.Record(false)
	*backoff = 250 * time.Millisecond
	if err := s.cfg.Streams.Ack(ctx, key, GroupName, ev.ID); err != nil {
		s.logger.Error("ack failed", "stream_id", ev.ID, "error", err)
	}
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}

// handleDelta applies the external delta to the shadow calendar, advancing
// sync_token, then computes a candidate plan and emits exactly one
// calendar.plan.proposed/plan.new_version if one results.
func (s *Subagent) handleDelta(ctx context.Context, ev streams.Event) error {
	deltaID, _ := ev.Values["delta_id"].(string)
	threadID, _ := ev.Values["thread_id"].(string)
	if threadID == "" {
		threadID = s.cfg.UserID + ":calendar"
	}

	if existing, found, err := s.cfg.Proposals.FindByDelta(ctx, s.cfg.UserID, deltaID); err != nil {
		return err
	} else if found && deltaID != "" {
		s.logger.Debug("delta already proposed, skipping", "delta_id", deltaID, "proposal_id", existing.ID)
		return nil
	}

	eventID, _ := ev.Values["event_id"].(string)
	summary, _ := ev.Values["summary"].(string)
	startStr, _ := ev.Values["start_time"].(string)
	endStr, _ := ev.Values["end_time"].(string)
	start, _ := time.Parse(time.RFC3339, startStr)
	end, _ := time.Parse(time.RFC3339, endStr)

	ext := ExternalEvent{EventID: eventID, Summary: summary, StartTime: start, EndTime: end}
	if err := s.cfg.Shadow.ApplyDelta(ctx, s.cfg.UserID, s.cfg.CalendarID, ext); err != nil {
		return fmt.Errorf("calendarplanner: apply delta: %w", err)
	}

	syncState, err := s.cfg.Sync.Get(ctx, s.cfg.UserID, s.cfg.CalendarID)
	if err != nil {
		return err
	}
	syncState.LastDeltaID = deltaID
	if err := s.cfg.Sync.Save(ctx, syncState); err != nil {
		return err
	}

	// While degraded the stream keeps draining (the shadow stays current)
	// but proposal generation pauses.
	if s.cfg.Gate.Degraded() {
		s.logger.Warn("degraded: skipping proposal generation", "delta_id", deltaID)
		return nil
	}
	if err := s.cfg.Caps.Wait(ctx); err != nil {
		return fmt.Errorf("calendarplanner: rate limit wait: %w", err)
	}
	resp, err := s.cfg.Planner.Run(ctx, planner.RunRequest{
		UserID:    s.cfg.UserID,
		ThreadID:  threadID,
		PlanDate:  start.Format("2006-01-02"),
		TimeBlock: eventID,
	})
	s.cfg.Metrics.RecordExternalCall(err != nil)
	if err != nil {
		return fmt.Errorf("calendarplanner: planner call: %w", err)
	}
	if resp.PlanID == "" {
		return nil
	}

	planJSON := fmt.Sprintf(`{"plan_id":%q,"version":%q,"rationale":%q}`, resp.PlanID, resp.Version, resp.Rationale)
	proposalType := "calendar.plan.proposed"
	if _, exists, err := s.cfg.Proposals.FindPendingByEvent(ctx, s.cfg.UserID, eventID); err != nil {
		return err
	} else if exists {
		proposalType = "calendar.plan.new_version"
	}

	if _, err := s.cfg.Proposals.Create(ctx, Proposal{
		UserID:         s.cfg.UserID,
		ThreadID:       threadID,
		PrimaryEventID: eventID,
		PlanJSON:       planJSON,
		DeltaID:        deltaID,
	}); err != nil {
		return err
	}

	if _, err := s.cfg.Bus.AppendWithThread(ctx, s.cfg.UserID, threadID, map[string]any{
		"type":     proposalType,
		"delta_id": deltaID,
		"plan_id":  resp.PlanID,
		"version":  resp.Version,
		"summary":  summary,
		"impact":   impactOf(ext),
	}); err != nil {
		return fmt.Errorf("calendarplanner: emit %s: %w", proposalType, err)
	}
	return nil
}

// impactOf classifies a delta as "today"-impacting so the Manager Graph's
// calendar_branch knows whether to prompt immediately.
func impactOf(ev ExternalEvent) string {
	if ev.StartTime.IsZero() {
		return "later"
	}
	if ev.StartTime.Truncate(24 * time.Hour).Equal(time.Now().Truncate(24 * time.Hour)) {
		return "today"
	}
	return "later"
}

// SyncWindow pulls the current window from the external calendar with the
// stored sync token, re-bootstrapping with a full pull when the store
// reports the token expired, applies every delta to the shadow calendar
// and persists the fresh token. Called at startup and on day rollover.
func (s *Subagent) SyncWindow(ctx context.Context) error {
	st, err := s.cfg.Sync.Get(ctx, s.cfg.UserID, s.cfg.CalendarID)
	if err != nil {
		return err
	}

	res, err := s.cfg.Collaborator.Pull(ctx, s.cfg.UserID, s.cfg.CalendarID, st.SyncToken)
	if err != nil {
		return fmt.Errorf("calendarplanner: sync pull: %w", err)
	}
	if res.Expired {
		s.logger.Warn("sync token expired, re-bootstrapping", "calendar_id", s.cfg.CalendarID)
		res, err = s.cfg.Collaborator.Pull(ctx, s.cfg.UserID, s.cfg.CalendarID, "")
		if err != nil {
			return fmt.Errorf("calendarplanner: bootstrap pull: %w", err)
		}
	}

	for _, d := range res.Deltas {
		if d.Deleted {
			if err := s.cfg.Shadow.Remove(ctx, s.cfg.UserID, s.cfg.CalendarID, d.Event.EventID); err != nil {
				return err
			}
			continue
		}
		if err := s.cfg.Shadow.ApplyDelta(ctx, s.cfg.UserID, s.cfg.CalendarID, d.Event); err != nil {
			return err
		}
	}

	st.SyncToken = res.NextSyncToken
	return s.cfg.Sync.Save(ctx, st)
}

// Confirm implements the confirm path: re-fetch the external event and compare
// with the shadow copy before applying a confirmed proposal. Drifted
// proposals are marked stale and a fresh plan.proposed with a conflict
// explanation is emitted instead of applying.
func (s *Subagent) Confirm(ctx context.Context, proposalID, threadID string) error {
	prop, err := s.cfg.Proposals.FindByID(ctx, proposalID)
	if err != nil {
		return err
	}

	// The proposal carries its own user identity, so a single confirmer
	// instance can serve every user the runtime watches.
	shadow, err := s.cfg.Shadow.Get(ctx, prop.UserID, s.cfg.CalendarID, prop.PrimaryEventID)
	if err != nil {
		return fmt.Errorf("calendarplanner: load shadow event: %w", err)
	}
	current, err := s.cfg.Collaborator.FetchEvent(ctx, prop.UserID, s.cfg.CalendarID, prop.PrimaryEventID)
	if err != nil {
		return fmt.Errorf("calendarplanner: fetch current event: %w", err)
	}

	if Drifted(shadow, current) {
		if err := s.cfg.Proposals.MarkStale(ctx, prop.ID); err != nil {
			return err
		}
		_, err := s.cfg.Bus.AppendWithThread(ctx, prop.UserID, threadID, map[string]any{
			"type":    "calendar.plan.proposed",
			"summary": "Plan is stale: the calendar changed since this proposal was made.",
			"impact":  "today",
		})
		return err
	}

	return s.cfg.Proposals.MarkApplied(ctx, prop.ID)
}
