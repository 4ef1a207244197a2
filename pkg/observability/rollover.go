package observability

import (
	"context"
	"log/slog"
	"time"
)

// RolloverScheduler fires a callback at each local midnight. Because the
// next boundary is recomputed in the configured location after every
// firing, a DST transition that shortens or lengthens the day moves the
// boundary with it rather than drifting by an hour.
type RolloverScheduler struct {
	loc      *time.Location
	onDay    func(ctx context.Context)
	logger   *slog.Logger
	now      func() time.Time
	newTimer func(d time.Duration) *time.Timer
}

// NewRolloverScheduler constructs a scheduler in loc (nil means time.Local)
// calling onDay at each day boundary.
func NewRolloverScheduler(loc *time.Location, onDay func(ctx context.Context), logger *slog.Logger) *RolloverScheduler {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RolloverScheduler{
		loc:      loc,
		onDay:    onDay,
		logger:   logger.With("component", "rollover"),
		now:      time.Now,
		newTimer: time.NewTimer,
	}
}

// NextBoundary returns the first local midnight strictly after t in the
// scheduler's location.
func (s *RolloverScheduler) NextBoundary(t time.Time) time.Time {
	local := t.In(s.loc)
	next := time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, s.loc)
	if !next.After(t) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Run blocks until ctx is cancelled, invoking onDay at each boundary.
func (s *RolloverScheduler) Run(ctx context.Context) error {
	for {
		next := s.NextBoundary(s.now())
		timer := s.newTimer(next.Sub(s.now()))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
			s.logger.Info("day rollover", "boundary", next)
			s.onDay(ctx)
		}
	}
}
