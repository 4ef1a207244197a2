package emailtriage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/thegaltinator/alfred-fabric/pkg/emailtriage"
	"github.com/thegaltinator/alfred-fabric/pkg/streams"
	"github.com/thegaltinator/alfred-fabric/pkg/whiteboard"
)

type fakeClassifier struct {
	calls   int
	verdict emailtriage.Classification
	err     error
}

func (f *fakeClassifier) Classify(ctx context.Context, msg emailtriage.Message) (emailtriage.Classification, error) {
	f.calls++
	return f.verdict, f.err
}

func newTestBusAndStreams(t *testing.T) (*whiteboard.Bus, *streams.Client) {
	t.Helper()
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	sc := streams.New(rdb)
	return whiteboard.New(sc, 0), sc
}

func appendMessage(t *testing.T, sc *streams.Client, values map[string]any) {
	t.Helper()
	key := whiteboard.InputKey("u1", whiteboard.InputEmail)
	_, err := sc.Append(context.Background(), key, values, 0)
	require.NoError(t, err)
}

func runBriefly(t *testing.T, sub *emailtriage.Subagent) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 1500*time.Millisecond)
	defer cancel()
	err := sub.Run(ctx)
	require.True(t, errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled))
}

func TestReplyNeededEmitsWhiteboardEvent(t *testing.T) {
	bus, sc := newTestBusAndStreams(t)
	classifier := &fakeClassifier{verdict: emailtriage.Classification{
		ReplyNeeded: true, Summary: "confirm 3pm", Draft: "Yes, 3pm works.",
	}}
	sub := emailtriage.New(emailtriage.Config{
		UserID: "u1", ConsumerName: "worker-1",
		Streams: sc, Bus: bus, Classifier: classifier,
	})

	appendMessage(t, sc, map[string]any{
		"message_id":    "m1",
		"sender":        "sam@example.com",
		"subject":       "Can you confirm 3pm?",
		"snippet":       "Can you confirm 3pm?",
		"internal_date": "1722500000",
		"thread_id":     "t1",
	})
	runBriefly(t, sub)

	require.Equal(t, 1, classifier.calls)
	events, err := bus.ReadRange(context.Background(), "u1", "", 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "email.reply_needed", events[0].Values["type"])
	require.Equal(t, "m1", events[0].Values["message_id"])
	require.Equal(t, "confirm 3pm", events[0].Values["summary"])
	require.Equal(t, "Yes, 3pm works.", events[0].Values["draft"])
}

func TestDuplicateMessageClassifiedOnce(t *testing.T) {
	bus, sc := newTestBusAndStreams(t)
	classifier := &fakeClassifier{verdict: emailtriage.Classification{ReplyNeeded: true, Summary: "s", Draft: "d"}}
	sub := emailtriage.New(emailtriage.Config{
		UserID: "u1", ConsumerName: "worker-1",
		Streams: sc, Bus: bus, Classifier: classifier,
	})

	msg := map[string]any{
		"message_id":    "m-dup",
		"sender":        "sam@example.com",
		"subject":       "hello",
		"internal_date": "1722500000",
		"thread_id":     "t1",
	}
	appendMessage(t, sc, msg)
	appendMessage(t, sc, msg)
	runBriefly(t, sub)

	require.Equal(t, 1, classifier.calls)
	events, err := bus.ReadRange(context.Background(), "u1", "", 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
}

func TestBulkMailNeverReachesClassifier(t *testing.T) {
	bus, sc := newTestBusAndStreams(t)
	classifier := &fakeClassifier{verdict: emailtriage.Classification{ReplyNeeded: true}}
	sub := emailtriage.New(emailtriage.Config{
		UserID: "u1", ConsumerName: "worker-1",
		Streams: sc, Bus: bus, Classifier: classifier,
	})

	appendMessage(t, sc, map[string]any{
		"message_id":    "m-bulk-1",
		"sender":        "no-reply@shop.example.com",
		"subject":       "Your order shipped",
		"internal_date": "1",
		"thread_id":     "t1",
	})
	appendMessage(t, sc, map[string]any{
		"message_id":    "m-bulk-2",
		"sender":        "news@example.com",
		"subject":       "Weekly digest",
		"list_headers":  "List-Unsubscribe: <mailto:leave@example.com>",
		"internal_date": "2",
		"thread_id":     "t1",
	})
	runBriefly(t, sub)

	require.Zero(t, classifier.calls)
	events, err := bus.ReadRange(context.Background(), "u1", "", 10)
	require.NoError(t, err)
	require.Empty(t, events)
}

func TestNoReplyNeededEmitsNothing(t *testing.T) {
	bus, sc := newTestBusAndStreams(t)
	classifier := &fakeClassifier{verdict: emailtriage.Classification{ReplyNeeded: false}}
	sub := emailtriage.New(emailtriage.Config{
		UserID: "u1", ConsumerName: "worker-1",
		Streams: sc, Bus: bus, Classifier: classifier,
	})

	appendMessage(t, sc, map[string]any{
		"message_id":    "m2",
		"sender":        "sam@example.com",
		"subject":       "fyi",
		"internal_date": "3",
		"thread_id":     "t1",
	})
	runBriefly(t, sub)

	require.Equal(t, 1, classifier.calls)
	events, err := bus.ReadRange(context.Background(), "u1", "", 10)
	require.NoError(t, err)
	require.Empty(t, events)
}
