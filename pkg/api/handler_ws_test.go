package api_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/require"
)

func TestWSReplaysFrames(t *testing.T) {
	srv, bus := newTestServer(t)
	ctx := context.Background()

	id1, err := bus.Append(ctx, "u1", "t1", map[string]any{
		"type": "prod.overrun", "block_id": "b1", "activity_label": "coding",
	})
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	wsURL := strings.Replace(ts.URL, "http://", "ws://", 1) + "/wb/ws?user_id=u1&after=0"
	dialCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(dialCtx, wsURL, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	var f struct {
		ID       string         `json:"id"`
		UserID   string         `json:"user_id"`
		ThreadID string         `json:"thread_id"`
		Values   map[string]any `json:"values"`
	}
	require.NoError(t, wsjson.Read(dialCtx, conn, &f))
	require.Equal(t, id1, f.ID)
	require.Equal(t, "u1", f.UserID)
	require.Equal(t, "t1", f.ThreadID)
	require.Equal(t, "prod.overrun", f.Values["type"])
}
