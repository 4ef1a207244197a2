package whiteboard_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thegaltinator/alfred-fabric/pkg/streams"
	"github.com/thegaltinator/alfred-fabric/pkg/whiteboard"
	testredis "github.com/thegaltinator/alfred-fabric/test/redis"
)

// TestTrimDropsOldestButKeepsRecent exercises the approximate retention cap
// against a real Redis: after appending well past maxlen, tailing from the
// oldest dropped entry returns nothing of the dropped range, while tailing
// from a recent id still returns the newer events.
func TestTrimDropsOldestButKeepsRecent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	rdb := testredis.NewTestClient(t)
	bus := whiteboard.New(streams.New(rdb), 100)
	ctx := context.Background()

	ids := make([]string, 0, 500)
	for i := 0; i < 500; i++ {
		id, err := bus.Append(ctx, "u1", "t1", map[string]any{
			"type":           "prod.nudge",
			"block_id":       fmt.Sprintf("b%d", i),
			"activity_label": "coding",
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	remaining, err := bus.ReadRange(ctx, "u1", "", 1000)
	require.NoError(t, err)
	require.Less(t, len(remaining), 500, "approximate trim must have dropped the oldest entries")
	require.GreaterOrEqual(t, len(remaining), 100)

	// The oldest entry was dropped; reading from it yields only survivors,
	// none older than the trim horizon.
	fromOldest, err := bus.ReadRange(ctx, "u1", ids[0], 1000)
	require.NoError(t, err)
	require.Equal(t, len(remaining), len(fromOldest))

	// A recent cursor still sees everything after it.
	fromRecent, err := bus.ReadRange(ctx, "u1", ids[497], 1000)
	require.NoError(t, err)
	require.Len(t, fromRecent, 2)
	require.Equal(t, ids[498], fromRecent[0].ID)
	require.Equal(t, ids[499], fromRecent[1].ID)
}

// TestTwoReadersObserveSameOrder checks that independent readers starting
// from the same cursor see the same sequence.
func TestTwoReadersObserveSameOrder(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	rdb := testredis.NewTestClient(t)
	bus := whiteboard.New(streams.New(rdb), 0)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		_, err := bus.Append(ctx, "u1", "t1", map[string]any{
			"type":           "prod.nudge",
			"block_id":       fmt.Sprintf("b%d", i),
			"activity_label": "coding",
		})
		require.NoError(t, err)
	}

	a, err := bus.ReadRange(ctx, "u1", "", 100)
	require.NoError(t, err)
	b, err := bus.ReadRange(ctx, "u1", "", 100)
	require.NoError(t, err)
	require.Equal(t, len(a), len(b))
	for i := range a {
		require.Equal(t, a[i].ID, b[i].ID)
		require.Equal(t, a[i].Values["block_id"], b[i].Values["block_id"])
	}
}
