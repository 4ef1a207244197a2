package mailer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/thegaltinator/alfred-fabric/pkg/mailer"
	"github.com/thegaltinator/alfred-fabric/pkg/streams"
	"github.com/thegaltinator/alfred-fabric/pkg/whiteboard"
)

type fakeSender struct {
	sends []mailer.SendRequest
	err   error
}

func (f *fakeSender) Send(ctx context.Context, req mailer.SendRequest) error {
	if f.err != nil {
		return f.err
	}
	f.sends = append(f.sends, req)
	return nil
}

func newTestStreams(t *testing.T) *streams.Client {
	t.Helper()
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return streams.New(rdb)
}

func appendConfirmation(t *testing.T, sc *streams.Client, messageID, draftHash string) {
	t.Helper()
	key := whiteboard.ControlKey("u1", whiteboard.ControlMail)
	_, err := sc.Append(context.Background(), key, map[string]any{
		"type":       "email.send.confirmed",
		"message_id": messageID,
		"draft_hash": draftHash,
	}, 0)
	require.NoError(t, err)
}

func runBriefly(t *testing.T, w *mailer.Worker) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 1500*time.Millisecond)
	defer cancel()
	err := w.Run(ctx)
	require.True(t, errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled))
}

func TestConfirmedDraftSentOnce(t *testing.T) {
	sc := newTestStreams(t)
	sender := &fakeSender{}
	w := mailer.New(mailer.Config{
		UserID: "u1", ConsumerName: "worker-1",
		Streams: sc, Sender: sender,
	})

	appendConfirmation(t, sc, "m1", "h1")
	runBriefly(t, w)

	require.Len(t, sender.sends, 1)
	require.Equal(t, "m1", sender.sends[0].MessageID)
	require.Equal(t, "h1", sender.sends[0].DraftHash)
}

func TestReinjectedConfirmationSendsNothing(t *testing.T) {
	sc := newTestStreams(t)
	sender := &fakeSender{}
	w := mailer.New(mailer.Config{
		UserID: "u1", ConsumerName: "worker-1",
		Streams: sc, Sender: sender,
	})

	appendConfirmation(t, sc, "m1", "h1")
	runBriefly(t, w)
	require.Len(t, sender.sends, 1)

	appendConfirmation(t, sc, "m1", "h1")
	runBriefly(t, w)
	require.Len(t, sender.sends, 1, "a replayed confirmation must not send again")
}

func TestRevisedDraftHashSendsAgain(t *testing.T) {
	sc := newTestStreams(t)
	sender := &fakeSender{}
	w := mailer.New(mailer.Config{
		UserID: "u1", ConsumerName: "worker-1",
		Streams: sc, Sender: sender,
	})

	appendConfirmation(t, sc, "m1", "h1")
	appendConfirmation(t, sc, "m1", "h2")
	runBriefly(t, w)

	require.Len(t, sender.sends, 2, "a re-confirmed revised draft is a distinct send")
}

func TestFailedSendRetriesOnRedelivery(t *testing.T) {
	sc := newTestStreams(t)
	sender := &fakeSender{err: errors.New("gateway down")}
	w := mailer.New(mailer.Config{
		UserID: "u1", ConsumerName: "worker-1",
		Streams: sc, Sender: sender,
	})

	appendConfirmation(t, sc, "m1", "h1")
	runBriefly(t, w)
	require.Empty(t, sender.sends)

	// Gateway recovers; the unacked entry is reclaimed and the released
	// claim lets the retry through.
	sender.err = nil
	w2 := mailer.New(mailer.Config{
		UserID: "u1", ConsumerName: "worker-2",
		Streams: sc, Sender: sender,
		AutoClaimMinIdle: time.Millisecond,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_ = w2.Run(ctx)

	require.Len(t, sender.sends, 1)
}
