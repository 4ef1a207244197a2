package api_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/thegaltinator/alfred-fabric/pkg/api"
	"github.com/thegaltinator/alfred-fabric/pkg/streams"
	"github.com/thegaltinator/alfred-fabric/pkg/whiteboard"
)

func newTestServer(t *testing.T) (*api.Server, *whiteboard.Bus) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	bus := whiteboard.New(streams.New(rdb), 0)
	return api.NewServer(bus, nil), bus
}

func TestUserActionAppendsToWhiteboard(t *testing.T) {
	srv, bus := newTestServer(t)

	body, _ := json.Marshal(map[string]any{
		"user_id":   "u1",
		"thread_id": "t1",
		"action_id": "a1",
		"choice":    "update_plan",
		"metadata":  map[string]string{"proposal_id": "p1"},
	})
	req := httptest.NewRequest(http.MethodPost, "/wb/user_action", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusAccepted, rec.Code)

	events, err := bus.ReadRange(context.Background(), "u1", "", 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "manager.user_action", events[0].Values["type"])
	require.Equal(t, "a1", events[0].Values["action_id"])
	require.Equal(t, "update_plan", events[0].Values["choice"])
	require.Equal(t, "p1", events[0].Values["proposal_id"])
	require.Equal(t, "t1", events[0].ThreadID)
}

func TestUserActionRejectsMissingFields(t *testing.T) {
	srv, bus := newTestServer(t)

	body, _ := json.Marshal(map[string]any{"user_id": "u1", "choice": "dismiss"})
	req := httptest.NewRequest(http.MethodPost, "/wb/user_action", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	events, err := bus.ReadRange(context.Background(), "u1", "", 10)
	require.NoError(t, err)
	require.Empty(t, events)
}

func TestStreamReplaysInAppendOrder(t *testing.T) {
	srv, bus := newTestServer(t)
	ctx := context.Background()

	var ids []string
	for _, label := range []string{"first", "second", "third"} {
		id, err := bus.Append(ctx, "u1", "t1", map[string]any{
			"type": "prod.nudge", "block_id": "b1", "activity_label": label,
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	reqCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, ts.URL+"/wb/stream?user_id=u1&after=0", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	var gotIDs []string
	var labels []string
	for len(gotIDs) < 3 {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "id: "):
			gotIDs = append(gotIDs, strings.TrimPrefix(line, "id: "))
		case strings.HasPrefix(line, "data: "):
			var f struct {
				Values map[string]any `json:"values"`
			}
			require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &f))
			labels = append(labels, f.Values["activity_label"].(string))
		}
	}
	cancel()

	require.Equal(t, ids, gotIDs)
	require.Equal(t, []string{"first", "second", "third"}, labels)
}

func TestStreamFiltersByThread(t *testing.T) {
	srv, bus := newTestServer(t)
	ctx := context.Background()

	_, err := bus.Append(ctx, "u1", "t1", map[string]any{"type": "prod.nudge", "block_id": "b1", "activity_label": "a"})
	require.NoError(t, err)
	wantID, err := bus.Append(ctx, "u1", "t2", map[string]any{"type": "prod.nudge", "block_id": "b1", "activity_label": "b"})
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	reqCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, ts.URL+"/wb/stream?user_id=u1&after=0&thread_id=t2", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	reader := bufio.NewReader(resp.Body)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	require.Equal(t, "id: "+wantID, strings.TrimSpace(line))
}

func TestStreamRequiresUserID(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/wb/stream", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthReportsDependencies(t *testing.T) {
	srv, _ := newTestServer(t)
	srv.AddHealthCheck("redis", func(ctx context.Context) error { return nil })

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "healthy", body["status"])
}
