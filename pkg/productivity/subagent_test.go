package productivity

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/thegaltinator/alfred-fabric/pkg/streams"
	"github.com/thegaltinator/alfred-fabric/pkg/whiteboard"
)

type staticApps struct {
	apps []string
}

func (s staticApps) ExpectedApps(ctx context.Context, userID string, plan DayPlan, now time.Time) ([]string, error) {
	return s.apps, nil
}

type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time { return c.t }

func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestSubagent(t *testing.T, apps []string) (*Subagent, *whiteboard.Bus, *testClock) {
	t.Helper()
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	sc := streams.New(rdb)
	bus := whiteboard.New(sc, 0)
	clock := &testClock{t: time.Date(2026, 7, 15, 9, 0, 0, 0, time.UTC)}
	sub := New(Config{
		UserID:       "u1",
		ConsumerName: "worker-1",
		Streams:      sc,
		Bus:          bus,
		Apps:         staticApps{apps: apps},
		Now:          clock.now,
	})
	return sub, bus, clock
}

func heartbeat(foreground string) streams.Event {
	return streams.Event{Values: map[string]any{
		"foreground":     foreground,
		"block_id":       "b1",
		"activity_label": "coding",
		"thread_id":      "t1",
	}}
}

func wbEvents(t *testing.T, bus *whiteboard.Bus) []whiteboard.Event {
	t.Helper()
	events, err := bus.ReadRange(context.Background(), "u1", "", 50)
	require.NoError(t, err)
	return events
}

func TestMismatchPastThresholdEmitsOneOverrun(t *testing.T) {
	sub, bus, clock := newTestSubagent(t, []string{"com.microsoft.VSCode"})
	ctx := context.Background()

	// 0s, 63s, 126s off-task: elapsed crosses the jittered threshold on
	// the third heartbeat.
	require.NoError(t, sub.handleHeartbeat(ctx, heartbeat("com.example.twitter")))
	clock.advance(63 * time.Second)
	require.NoError(t, sub.handleHeartbeat(ctx, heartbeat("com.example.twitter")))
	clock.advance(63 * time.Second)
	require.NoError(t, sub.handleHeartbeat(ctx, heartbeat("com.example.twitter")))

	events := wbEvents(t, bus)
	require.Len(t, events, 1)
	require.Equal(t, "prod.overrun", events[0].Values["type"])
	require.Equal(t, "b1", events[0].Values["block_id"])
	require.Equal(t, "coding", events[0].Values["activity_label"])
	require.Equal(t, "t1", events[0].ThreadID)
}

func TestExpectedAppResetsMismatchTimer(t *testing.T) {
	sub, bus, clock := newTestSubagent(t, []string{"com.microsoft.VSCode"})
	ctx := context.Background()

	require.NoError(t, sub.handleHeartbeat(ctx, heartbeat("com.example.twitter")))
	clock.advance(100 * time.Second)
	require.NoError(t, sub.handleHeartbeat(ctx, heartbeat("com.example.twitter")))

	// On-task heartbeat zeroes the timer before the threshold is reached.
	clock.advance(10 * time.Second)
	require.NoError(t, sub.handleHeartbeat(ctx, heartbeat("com.microsoft.VSCode")))

	clock.advance(100 * time.Second)
	require.NoError(t, sub.handleHeartbeat(ctx, heartbeat("com.example.twitter")))

	require.Empty(t, wbEvents(t, bus))
}

func TestCooldownSuppressesFurtherDecisions(t *testing.T) {
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	sc := streams.New(rdb)
	bus := whiteboard.New(sc, 0)
	clock := &testClock{t: time.Date(2026, 7, 15, 9, 0, 0, 0, time.UTC)}
	sub := New(Config{
		UserID:       "u1",
		ConsumerName: "worker-1",
		Streams:      sc,
		Bus:          bus,
		Apps:         staticApps{apps: []string{"com.microsoft.VSCode"}},
		Cooldown:     5 * time.Minute,
		Now:          clock.now,
	})
	ctx := context.Background()

	require.NoError(t, sub.handleHeartbeat(ctx, heartbeat("com.example.twitter")))
	clock.advance(130 * time.Second)
	require.NoError(t, sub.handleHeartbeat(ctx, heartbeat("com.example.twitter")))
	require.Len(t, wbEvents(t, bus), 1)

	// A fresh threshold-sized mismatch inside the cooldown stays quiet.
	clock.advance(130 * time.Second)
	require.NoError(t, sub.handleHeartbeat(ctx, heartbeat("com.example.twitter")))
	clock.advance(130 * time.Second)
	require.NoError(t, sub.handleHeartbeat(ctx, heartbeat("com.example.twitter")))
	require.Len(t, wbEvents(t, bus), 1)

	// Once the cooldown lapses the timer runs again.
	clock.advance(130 * time.Second)
	require.NoError(t, sub.handleHeartbeat(ctx, heartbeat("com.example.twitter")))
	clock.advance(130 * time.Second)
	require.NoError(t, sub.handleHeartbeat(ctx, heartbeat("com.example.twitter")))
	require.Len(t, wbEvents(t, bus), 2)
}

func TestDecisionsPerBlockAreBounded(t *testing.T) {
	sub, bus, clock := newTestSubagent(t, []string{"com.microsoft.VSCode"})
	ctx := context.Background()

	// One hour of off-task heartbeats every 30s: at most
	// ceil(3600 / (120 + 60)) = 20 decisions.
	for i := 0; i < 120; i++ {
		require.NoError(t, sub.handleHeartbeat(ctx, heartbeat("com.example.twitter")))
		clock.advance(30 * time.Second)
	}
	require.LessOrEqual(t, len(wbEvents(t, bus)), 20)
	require.NotEmpty(t, wbEvents(t, bus))
}

func TestLowPriorityBlockEmitsNudge(t *testing.T) {
	sub, bus, clock := newTestSubagent(t, []string{"com.apple.mail"})
	ctx := context.Background()

	hb := streams.Event{Values: map[string]any{
		"foreground":     "com.example.twitter",
		"block_id":       "b2",
		"activity_label": "inbox sweep",
		"priority":       "low",
		"thread_id":      "t1",
	}}
	require.NoError(t, sub.handleHeartbeat(ctx, hb))
	clock.advance(130 * time.Second)
	require.NoError(t, sub.handleHeartbeat(ctx, hb))

	events := wbEvents(t, bus)
	require.Len(t, events, 1)
	require.Equal(t, "prod.nudge", events[0].Values["type"])
}

func TestRolloverResetsTimer(t *testing.T) {
	sub, bus, clock := newTestSubagent(t, []string{"com.microsoft.VSCode"})
	ctx := context.Background()

	require.NoError(t, sub.handleHeartbeat(ctx, heartbeat("com.example.twitter")))
	clock.advance(100 * time.Second)
	require.NoError(t, sub.handleHeartbeat(ctx, heartbeat("com.example.twitter")))

	require.NoError(t, sub.Rollover(ctx, DayPlan{BlockID: "b1", ActivityLabel: "coding"}))

	// The accumulated 100s were discarded at the boundary; another 100s of
	// mismatch still sits below the threshold.
	clock.advance(100 * time.Second)
	require.NoError(t, sub.handleHeartbeat(ctx, heartbeat("com.example.twitter")))

	require.Empty(t, wbEvents(t, bus))
}

func TestControlSignalRebuildsExpectedApps(t *testing.T) {
	sub, bus, clock := newTestSubagent(t, []string{"com.example.twitter"})
	ctx := context.Background()

	// After the recompute, twitter is expected: no mismatch accumulates.
	require.NoError(t, sub.OnControlSignal(ctx, "b1"))
	require.NoError(t, sub.handleHeartbeat(ctx, heartbeat("com.example.twitter")))
	clock.advance(300 * time.Second)
	require.NoError(t, sub.handleHeartbeat(ctx, heartbeat("com.example.twitter")))

	require.Empty(t, wbEvents(t, bus))
}

func TestMismatchPastBlockEndEmitsUnderrun(t *testing.T) {
	sub, bus, clock := newTestSubagent(t, []string{"com.microsoft.VSCode"})
	ctx := context.Background()

	// The block was scheduled to end one minute after the first heartbeat.
	blockEnd := clock.t.Add(time.Minute)
	hb := func() streams.Event {
		return streams.Event{Values: map[string]any{
			"foreground":     "com.example.twitter",
			"block_id":       "b1",
			"activity_label": "coding",
			"block_end":      blockEnd.Format(time.RFC3339),
			"thread_id":      "t1",
		}}
	}

	require.NoError(t, sub.handleHeartbeat(ctx, hb()))
	clock.advance(63 * time.Second)
	require.NoError(t, sub.handleHeartbeat(ctx, hb()))
	clock.advance(63 * time.Second)
	require.NoError(t, sub.handleHeartbeat(ctx, hb()))

	// The threshold crossing lands past the block's scheduled end, so the
	// on-task time under-ran the schedule.
	events := wbEvents(t, bus)
	require.Len(t, events, 1)
	require.Equal(t, "prod.underrun", events[0].Values["type"])
	require.Equal(t, "b1", events[0].Values["block_id"])
	require.Equal(t, "coding", events[0].Values["activity_label"])
}
