package streams

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestClientForGroups(t *testing.T) *Client {
	t.Helper()
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return New(rdb)
}

func TestEnsureGroupIsIdempotent(t *testing.T) {
	c := newTestClientForGroups(t)
	ctx := context.Background()
	require.NoError(t, c.EnsureGroup(ctx, "k1", "g1"))
	require.NoError(t, c.EnsureGroup(ctx, "k1", "g1"))
}

func TestReadGroupDeliversOncePerConsumerUntilAcked(t *testing.T) {
	c := newTestClientForGroups(t)
	ctx := context.Background()
	require.NoError(t, c.EnsureGroup(ctx, "k1", "g1"))

	id, err := c.Append(ctx, "k1", map[string]any{"type": "x"}, 0)
	require.NoError(t, err)

	events, err := c.ReadGroup(ctx, "k1", "g1", "consumer-a", 10, 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, id, events[0].ID)

	// A second read for the same consumer with ">" sees nothing new.
	events, err = c.ReadGroup(ctx, "k1", "g1", "consumer-a", 10, 0)
	require.NoError(t, err)
	require.Empty(t, events)

	require.NoError(t, c.Ack(ctx, "k1", "g1", id))
}

func TestAutoClaimStuckReassignsUnackedEntries(t *testing.T) {
	c := newTestClientForGroups(t)
	ctx := context.Background()
	require.NoError(t, c.EnsureGroup(ctx, "k1", "g1"))

	id, err := c.Append(ctx, "k1", map[string]any{"type": "x"}, 0)
	require.NoError(t, err)

	_, err = c.ReadGroup(ctx, "k1", "g1", "consumer-a", 10, 0)
	require.NoError(t, err)

	claimed, err := c.AutoClaimStuck(ctx, "k1", "g1", "consumer-b", 0, 10)
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	require.Equal(t, id, claimed[0].ID)
}
