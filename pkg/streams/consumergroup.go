package streams

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// EnsureGroup creates group on key starting from the beginning of the
// stream, creating the stream itself if it doesn't exist yet. It is a no-op
// if the group already exists (BUSYGROUP is swallowed).
func (c *Client) EnsureGroup(ctx context.Context, key, group string) error {
	err := c.rdb.XGroupCreateMkStream(ctx, key, group, "0").Err()
	if err != nil && !isBusyGroup(err) {
		return fmt.Errorf("streams: create group %s on %s: %w", group, key, err)
	}
	return nil
}

func isBusyGroup(err error) bool {
	return err != nil && err.Error() == "BUSYGROUP Consumer Group name already exists"
}

// ReadGroup reads up to count new (never-delivered) entries for consumer
// within group, blocking up to block; a block of zero or less returns at
// once. Subagents use this instead
// of Tail so unacked entries survive a crash and can be auto-claimed by a
// surviving consumer.
func (c *Client) ReadGroup(ctx context.Context, key, group, consumer string, count int64, block time.Duration) ([]Event, error) {
	if block <= 0 {
		// go-redis sends BLOCK for any non-negative value, and BLOCK 0
		// waits forever; a negative value omits BLOCK.
		block = -1
	}
	res, err := c.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    group,
		Consumer: consumer,
		Streams:  []string{key, ">"},
		Count:    count,
		Block:    block,
	}).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("streams: read group %s on %s: %w", group, key, err)
	}
	if len(res) == 0 {
		return nil, nil
	}
	msgs := res[0].Messages
	events := make([]Event, len(msgs))
	for i, m := range msgs {
		events[i] = Event{ID: m.ID, Values: m.Values}
	}
	return events, nil
}

// Ack acknowledges id within group, removing it from the pending-entries
// list so it will not be auto-claimed after a timeout.
func (c *Client) Ack(ctx context.Context, key, group, id string) error {
	if err := c.rdb.XAck(ctx, key, group, id).Err(); err != nil {
		return fmt.Errorf("streams: ack %s on %s: %w", id, key, err)
	}
	return nil
}

// AutoClaimStuck reclaims entries pending for longer than minIdle to
// consumer, so entries stuck with a dead consumer are reassigned after a
// timeout.
func (c *Client) AutoClaimStuck(ctx context.Context, key, group, consumer string, minIdle time.Duration, count int64) ([]Event, error) {
	msgs, _, err := c.rdb.XAutoClaim(ctx, &redis.XAutoClaimArgs{
		Stream:   key,
		Group:    group,
		Consumer: consumer,
		MinIdle:  minIdle,
		Start:    "0-0",
		Count:    count,
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("streams: autoclaim on %s/%s: %w", key, group, err)
	}
	events := make([]Event, len(msgs))
	for i, m := range msgs {
		events[i] = Event{ID: m.ID, Values: m.Values}
	}
	return events, nil
}
