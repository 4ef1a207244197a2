package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGateEntersAboveTwentyPercent(t *testing.T) {
	g := NewGate(nil)
	base := time.Now()
	g.SetNowFunc(func() time.Time { return base })

	for i := 0; i < 7; i++ {
		g.Record(false)
	}
	require.False(t, g.Degraded())

	// 3 failures out of 10 → 30% > 20%.
	for i := 0; i < 3; i++ {
		g.Record(true)
	}
	require.True(t, g.Degraded())
}

func TestGateExitsBelowFivePercent(t *testing.T) {
	g := NewGate(nil)
	now := time.Now()
	g.SetNowFunc(func() time.Time { return now })

	g.Record(true)
	g.Record(true)
	g.Record(false)
	require.True(t, g.Degraded())

	// The failures age out of the window; a run of successes drops the
	// rate to 0% and releases the latch.
	now = now.Add(GateWindow + time.Second)
	for i := 0; i < 5; i++ {
		g.Record(false)
	}
	require.False(t, g.Degraded())
}

func TestGateStaysDegradedBetweenThresholds(t *testing.T) {
	g := NewGate(nil)
	base := time.Now()
	g.SetNowFunc(func() time.Time { return base })

	g.Record(true)
	g.Record(true)
	require.True(t, g.Degraded())

	// 2 failures in 20 outcomes = 10%: below the enter threshold but above
	// the exit threshold, so the latch holds.
	for i := 0; i < 18; i++ {
		g.Record(false)
	}
	require.True(t, g.Degraded())
}

func TestNextBoundary(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	s := NewRolloverScheduler(loc, nil, nil)

	// Ordinary day.
	at := time.Date(2026, 7, 15, 13, 30, 0, 0, loc)
	require.Equal(t, time.Date(2026, 7, 16, 0, 0, 0, 0, loc), s.NextBoundary(at))

	// Spring-forward night (March 8 2026, 02:00 → 03:00): the boundary is
	// still the next calendar midnight even though the day is 23h long.
	at = time.Date(2026, 3, 7, 22, 0, 0, 0, loc)
	next := s.NextBoundary(at)
	require.Equal(t, time.Date(2026, 3, 8, 0, 0, 0, 0, loc), next)
	require.Equal(t, 2*time.Hour, next.Sub(at))
}
