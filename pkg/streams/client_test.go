package streams

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return New(rdb)
}

func TestAppendAndReadRange(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	id1, err := c.Append(ctx, "k", map[string]any{"type": "a"}, 0)
	require.NoError(t, err)
	id2, err := c.Append(ctx, "k", map[string]any{"type": "b"}, 0)
	require.NoError(t, err)
	require.NotEqual(t, id1, id2)

	events, err := c.ReadRange(ctx, "k", "", 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "a", events[0].Values["type"])
	require.Equal(t, "b", events[1].Values["type"])

	// range strictly after id1 only returns id2's event.
	events, err = c.ReadRange(ctx, "k", id1, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, id2, events[0].ID)
}

func TestTailTimeoutReturnsNoError(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	events, next, err := c.Tail(ctx, "empty-stream", "$", 10, 50*time.Millisecond)
	require.NoError(t, err)
	require.Nil(t, events)
	require.Equal(t, "$", next)
}

func TestTailReturnsNewEntries(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	id1, err := c.Append(ctx, "k", map[string]any{"type": "a"}, 0)
	require.NoError(t, err)

	events, next, err := c.Tail(ctx, "k", id1, 10, 200*time.Millisecond)
	require.NoError(t, err)
	require.Empty(t, events)
	require.Equal(t, id1, next)

	id2, err := c.Append(ctx, "k", map[string]any{"type": "b"}, 0)
	require.NoError(t, err)

	events, next, err = c.Tail(ctx, "k", id1, 10, 2*time.Second)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, id2, events[0].ID)
	require.Equal(t, id2, next)
}

func TestLen(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	n, err := c.Len(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, int64(0), n)

	_, err = c.Append(ctx, "k", map[string]any{"type": "a"}, 0)
	require.NoError(t, err)

	n, err = c.Len(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}
