package whiteboard

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/thegaltinator/alfred-fabric/pkg/streams"
)

func newTestBus(t *testing.T) *Bus {
	t.Helper()
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return New(streams.New(rdb), 0)
}

func TestAppendRejectsEmptyThreadID(t *testing.T) {
	b := newTestBus(t)
	_, err := b.Append(context.Background(), "u1", "", map[string]any{"type": "x"})
	require.ErrorIs(t, err, ErrEmptyThreadID)
}

func TestAppendStampsTsAndThreadID(t *testing.T) {
	b := newTestBus(t)
	ctx := context.Background()

	id, err := b.Append(ctx, "u1", "t1", map[string]any{"type": "prod.overrun"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	events, err := b.ReadRange(ctx, "u1", "", 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "t1", events[0].ThreadID)
	require.NotEmpty(t, events[0].Values["ts"])
	require.Equal(t, "u1", events[0].Values["user_id"])
}

func TestAppendPreservesExplicitThreadID(t *testing.T) {
	b := newTestBus(t)
	ctx := context.Background()

	_, err := b.Append(ctx, "u1", "t1", map[string]any{"type": "x", "thread_id": "override"})
	require.NoError(t, err)

	events, err := b.ReadRange(ctx, "u1", "", 10)
	require.NoError(t, err)
	require.Equal(t, "override", events[0].ThreadID)
}

func TestTwoReadersFromSameAfterIDSeeSameOrder(t *testing.T) {
	b := newTestBus(t)
	ctx := context.Background()

	_, err := b.Append(ctx, "u1", "t1", map[string]any{"type": "a"})
	require.NoError(t, err)
	_, err = b.Append(ctx, "u1", "t1", map[string]any{"type": "b"})
	require.NoError(t, err)

	r1, err := b.ReadRange(ctx, "u1", "", 10)
	require.NoError(t, err)
	r2, err := b.ReadRange(ctx, "u1", "", 10)
	require.NoError(t, err)

	require.Equal(t, len(r1), len(r2))
	for i := range r1 {
		require.Equal(t, r1[i].ID, r2[i].ID)
		require.Equal(t, r1[i].Values["type"], r2[i].Values["type"])
	}
}

func TestTailBeyondRecentIDStillSeesNewerEvents(t *testing.T) {
	b := newTestBus(t)
	ctx := context.Background()

	id1, err := b.Append(ctx, "u1", "t1", map[string]any{"type": "a"})
	require.NoError(t, err)
	id2, err := b.Append(ctx, "u1", "t1", map[string]any{"type": "b"})
	require.NoError(t, err)

	events, next, err := b.Tail(ctx, "u1", id1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, id2, events[0].ID)
	require.Equal(t, id2, next)
}

func TestKeyDerivationDefaultsWhitespaceUser(t *testing.T) {
	require.Equal(t, "user:test-user:wb", Key("  "))
	require.Equal(t, "user:alice:wb", Key("alice"))
}
