// Package streams wraps Redis Streams (XADD/XREAD/XTRIM) behind the
// append/tail shape the whiteboard and its satellite streams need: a single
// place that knows how to persist an event durably and hand it back out in
// order.
package streams

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Event is one entry read back from a stream.
type Event struct {
	ID     string
	Values map[string]any
}

// Client is a thin wrapper over a *redis.Client scoped to stream operations.
// A single Client is shared by every stream (whiteboard, input, control);
// streams are distinguished purely by key.
type Client struct {
	rdb *redis.Client
}

// New wraps an existing Redis client.
func New(rdb *redis.Client) *Client {
	return &Client{rdb: rdb}
}

// Append writes values to the stream at key, trimming approximately to
// maxLenApprox entries (0 disables trimming). Returns the assigned stream ID.
//
// Redis guarantees XADD is durable once acknowledged and that IDs are
// monotonically increasing per key: the whiteboard's ordering and
// durability guarantees rest on this.
func (c *Client) Append(ctx context.Context, key string, values map[string]any, maxLenApprox int64) (string, error) {
	args := &redis.XAddArgs{
		Stream: key,
		Values: values,
	}
	if maxLenApprox > 0 {
		args.MaxLen = maxLenApprox
		args.Approx = true
	}
	id, err := c.rdb.XAdd(ctx, args).Result()
	if err != nil {
		return "", fmt.Errorf("streams: append to %s: %w", key, err)
	}
	return id, nil
}

// Tail blocks up to block waiting for entries strictly after afterID,
// returning at most count of them and the highest ID observed. An empty
// afterID means "$" semantics: only entries appended after the call began.
//
// On timeout (no new entries), Tail returns a nil slice, the same afterID,
// and a nil error: this is not an error condition, it's the normal "nothing
// new yet" outcome a tailing worker loops on.
func (c *Client) Tail(ctx context.Context, key, afterID string, count int64, block time.Duration) ([]Event, string, error) {
	startID := afterID
	if startID == "" {
		startID = "$"
	}

	res, err := c.rdb.XRead(ctx, &redis.XReadArgs{
		Streams: []string{key, startID},
		Count:   count,
		Block:   block,
	}).Result()
	if err == redis.Nil {
		return nil, afterID, nil
	}
	if err != nil {
		return nil, afterID, fmt.Errorf("streams: tail %s: %w", key, err)
	}
	if len(res) == 0 {
		return nil, afterID, nil
	}

	msgs := res[0].Messages
	events := make([]Event, len(msgs))
	next := afterID
	for i, m := range msgs {
		events[i] = Event{ID: m.ID, Values: m.Values}
		next = m.ID
	}
	return events, next, nil
}

// ReadRange reads entries in (afterID, +inf] up to count, without blocking.
// Used for catch-up reads (e.g. SSE reconnect with ?after=) where the caller
// wants whatever already exists, not a live wait.
func (c *Client) ReadRange(ctx context.Context, key, afterID string, count int64) ([]Event, error) {
	start := "-"
	if afterID != "" {
		start = "(" + afterID
	}
	res, err := c.rdb.XRangeN(ctx, key, start, "+", count).Result()
	if err != nil {
		return nil, fmt.Errorf("streams: range %s: %w", key, err)
	}
	events := make([]Event, len(res))
	for i, m := range res {
		events[i] = Event{ID: m.ID, Values: m.Values}
	}
	return events, nil
}

// Len reports the approximate number of entries currently in the stream.
func (c *Client) Len(ctx context.Context, key string) (int64, error) {
	n, err := c.rdb.XLen(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("streams: len %s: %w", key, err)
	}
	return n, nil
}
