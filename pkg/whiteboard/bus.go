// Package whiteboard implements the per-user append-only event log on top
// of Redis Streams via pkg/streams. It owns stream-key derivation, trimming
// and the tail/append contract the runtime worker and subscriber endpoints
// depend on.
package whiteboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/thegaltinator/alfred-fabric/pkg/streams"
)

// ErrEmptyThreadID is returned by Append when thread_id is missing; it is
// required at append time. Callers without one must synthesize a
// deterministic per-source thread rather than appending empty.
var ErrEmptyThreadID = errors.New("whiteboard: thread_id is required at append")

const (
	// DefaultMaxLenApprox is the approximate retention cap applied on append.
	DefaultMaxLenApprox int64 = 1000
	// DefaultBatchCount bounds how many events Tail returns per call.
	DefaultBatchCount int64 = 50
	// DefaultTailBlock bounds how long Tail blocks waiting for new entries.
	DefaultTailBlock = 5 * time.Second
)

// Event is one entry read back from the whiteboard, with stream identity
// projected out of Values for convenience.
type Event struct {
	ID       string
	Stream   string
	UserID   string
	ThreadID string
	Values   map[string]any
	AppendTS string
}

// Bus is the per-user append-only whiteboard, backed by Redis Streams.
type Bus struct {
	streams      *streams.Client
	maxLenApprox int64
}

// New constructs a Bus. maxLenApprox <= 0 uses DefaultMaxLenApprox.
func New(sc *streams.Client, maxLenApprox int64) *Bus {
	if maxLenApprox <= 0 {
		maxLenApprox = DefaultMaxLenApprox
	}
	return &Bus{streams: sc, maxLenApprox: maxLenApprox}
}

// Append stamps ts and thread_id into values if absent and writes the entry
// to the user's whiteboard stream, returning the assigned ordered ID.
func (b *Bus) Append(ctx context.Context, userID, threadID string, values map[string]any) (string, error) {
	if threadID == "" {
		return "", ErrEmptyThreadID
	}

	stamped := make(map[string]any, len(values)+2)
	for k, v := range values {
		stamped[k] = v
	}
	if _, ok := stamped["ts"]; !ok {
		stamped["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	}
	if _, ok := stamped["thread_id"]; !ok {
		stamped["thread_id"] = threadID
	}
	stamped["user_id"] = userID

	key := Key(userID)
	id, err := b.streams.Append(ctx, key, stamped, b.maxLenApprox)
	if err != nil {
		return "", fmt.Errorf("whiteboard: append for %s: %w", userID, err)
	}
	return id, nil
}

// AppendWithThread is Append under the name the Manager Graph's nodes call
// it by: every node that writes to the whiteboard: including
// emit_prompt minting a manager.prompt: must supply the thread_id it is
// replying within.
func (b *Bus) AppendWithThread(ctx context.Context, userID, threadID string, values map[string]any) (string, error) {
	return b.Append(ctx, userID, threadID, values)
}

// Tail blocks up to DefaultTailBlock for entries strictly after afterID,
// returning at most DefaultBatchCount of them and the highest ID observed.
// An empty afterID gives "$" semantics: only events appended after the
// call begins.
func (b *Bus) Tail(ctx context.Context, userID, afterID string) ([]Event, string, error) {
	key := Key(userID)
	raw, next, err := b.streams.Tail(ctx, key, afterID, DefaultBatchCount, DefaultTailBlock)
	if err != nil {
		return nil, afterID, fmt.Errorf("whiteboard: tail for %s: %w", userID, err)
	}
	return toEvents(userID, key, raw), next, nil
}

// ReadRange performs a non-blocking catch-up read, used by Subscriber
// endpoints replaying from ?after=<wb_id> on reconnect.
func (b *Bus) ReadRange(ctx context.Context, userID, afterID string, count int64) ([]Event, error) {
	key := Key(userID)
	raw, err := b.streams.ReadRange(ctx, key, afterID, count)
	if err != nil {
		return nil, fmt.Errorf("whiteboard: range for %s: %w", userID, err)
	}
	return toEvents(userID, key, raw), nil
}

func toEvents(userID, key string, raw []streams.Event) []Event {
	if len(raw) == 0 {
		return nil
	}
	events := make([]Event, len(raw))
	for i, m := range raw {
		thread, _ := m.Values["thread_id"].(string)
		ts, _ := m.Values["ts"].(string)
		events[i] = Event{
			ID:       m.ID,
			Stream:   key,
			UserID:   userID,
			ThreadID: thread,
			Values:   m.Values,
			AppendTS: ts,
		}
	}
	return events
}
