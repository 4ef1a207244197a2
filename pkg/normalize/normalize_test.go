package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/thegaltinator/alfred-fabric/pkg/whiteboard"
)

func TestNormalizeProdOverrun(t *testing.T) {
	evt := whiteboard.Event{
		ID:       "1-0",
		UserID:   "u1",
		ThreadID: "t1",
		Values: map[string]any{
			"type":           "prod.overrun",
			"block_id":       "B1",
			"activity_label": "coding",
			"ts":             "2026-07-29T00:00:00Z",
			"thread_id":      "t1",
		},
	}

	typed, err := Normalize(evt)
	require.NoError(t, err)
	require.Equal(t, SourceProd, typed.Source)
	require.Equal(t, "overrun", typed.Kind)
	require.Equal(t, "B1", typed.Payload["block_id"])
	require.Equal(t, "coding", typed.Payload["activity_label"])
	require.Empty(t, typed.MissingKeys)
	require.NotContains(t, typed.Payload, "type")
	require.NotContains(t, typed.Payload, "ts")
}

func TestNormalizeUnknownTypeRejected(t *testing.T) {
	evt := whiteboard.Event{ID: "1-0", Values: map[string]any{"type": "unknown.event"}}
	_, err := Normalize(evt)
	require.ErrorIs(t, err, ErrUnknownType)
}

func TestNormalizeFallsBackToKindField(t *testing.T) {
	evt := whiteboard.Event{ID: "1-0", Values: map[string]any{"kind": "email.reply_needed"}}
	typed, err := Normalize(evt)
	require.NoError(t, err)
	require.Equal(t, SourceEmail, typed.Source)
	require.Equal(t, "reply_needed", typed.Kind)
}

func TestNormalizeReportsMissingRequiredKeys(t *testing.T) {
	evt := whiteboard.Event{ID: "1-0", Values: map[string]any{"type": "email.reply_needed", "message_id": "m1"}}
	typed, err := Normalize(evt)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"sender", "summary", "draft"}, typed.MissingKeys)
}

func TestNormalizePrefersTopLevelThreadAndUser(t *testing.T) {
	evt := whiteboard.Event{
		ID:       "1-0",
		UserID:   "top-user",
		ThreadID: "top-thread",
		Values: map[string]any{
			"type":      "manager.user_action",
			"user_id":   "values-user",
			"thread_id": "values-thread",
			"action_id": "a1",
			"choice":    "refocus",
		},
	}
	typed, err := Normalize(evt)
	require.NoError(t, err)
	require.Equal(t, "top-user", typed.UserID)
	require.Equal(t, "top-thread", typed.ThreadID)
}

func TestNormalizeFallsBackToValuesWhenTopLevelEmpty(t *testing.T) {
	evt := whiteboard.Event{
		ID: "1-0",
		Values: map[string]any{
			"type":      "manager.user_action",
			"user_id":   "values-user",
			"thread_id": "values-thread",
			"action_id": "a1",
			"choice":    "refocus",
		},
	}
	typed, err := Normalize(evt)
	require.NoError(t, err)
	require.Equal(t, "values-user", typed.UserID)
	require.Equal(t, "values-thread", typed.ThreadID)
}

func TestCoerceHandlesBytesAndStringer(t *testing.T) {
	require.Equal(t, "hi", coerce([]byte("hi")))
	require.Equal(t, "1s", coerce(time.Second))
	require.Equal(t, 5, coerce(5))
}
