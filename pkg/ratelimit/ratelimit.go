// Package ratelimit provides the per-minute/per-hour external-call caps
// subagents apply to collaborator calls.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Caps enforces independent per-minute and per-hour ceilings on a single
// kind of external call (e.g. Planner calls, triage classifications).
type Caps struct {
	perMinute *rate.Limiter
	perHour   *rate.Limiter
}

// New constructs Caps. A zero perMinute or perHour disables that ceiling.
func New(perMinute, perHour int) *Caps {
	c := &Caps{}
	if perMinute > 0 {
		c.perMinute = rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute)
	}
	if perHour > 0 {
		c.perHour = rate.NewLimiter(rate.Limit(float64(perHour)/3600.0), perHour)
	}
	return c
}

// Wait blocks until both the per-minute and per-hour budgets allow one more
// call, or ctx is cancelled.
func (c *Caps) Wait(ctx context.Context) error {
	if c.perMinute != nil {
		if err := c.perMinute.Wait(ctx); err != nil {
			return err
		}
	}
	if c.perHour != nil {
		if err := c.perHour.Wait(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Allow reports whether a call may proceed right now without blocking,
// consuming from both budgets if so. A per-minute token may be spent even
// when the per-hour budget then denies: acceptable slop for a cap meant to
// bound worst-case load, not account exactly.
func (c *Caps) Allow() bool {
	if c.perMinute != nil && !c.perMinute.Allow() {
		return false
	}
	if c.perHour != nil && !c.perHour.Allow() {
		return false
	}
	return true
}
