package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thegaltinator/alfred-fabric/pkg/whiteboard"
)

// keepaliveInterval is how often a comment line is written to an idle
// event-stream connection so intermediaries don't reap it.
const keepaliveInterval = 25 * time.Second

// replayBatch bounds one catch-up read during reconnect replay.
const replayBatch int64 = 200

// frame is the JSON body sent for one whiteboard event, on both the
// event-stream and socket surfaces.
type frame struct {
	ID       string         `json:"id"`
	UserID   string         `json:"user_id"`
	ThreadID string         `json:"thread_id"`
	Values   map[string]any `json:"values"`
}

func frameOf(ev whiteboard.Event) frame {
	return frame{ID: ev.ID, UserID: ev.UserID, ThreadID: ev.ThreadID, Values: ev.Values}
}

// handleStream serves GET /wb/stream?user_id=&after=&thread_id= as an
// event-stream: replayed events first (when after is given), then live
// tailing, with a keepalive comment on idle. Events are written in append
// order and never reordered; on an internal error the response simply
// ends, with no partial frame emitted.
func (s *Server) handleStream(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	afterID := c.Query("after")
	threadID := c.Query("thread_id")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	flusher.Flush()

	ctx := c.Request.Context()
	lastKeepalive := time.Now()

	writeEvent := func(ev whiteboard.Event) bool {
		if threadID != "" && ev.ThreadID != threadID {
			return true
		}
		data, err := json.Marshal(frameOf(ev))
		if err != nil {
			s.logger.Error("stream: encode event failed", "wb_id", ev.ID, "error", err)
			return false
		}
		fmt.Fprintf(c.Writer, "id: %s\ndata: %s\n\n", ev.ID, data)
		flusher.Flush()
		lastKeepalive = time.Now()
		return true
	}

	lastID, ok := s.replay(ctx, userID, afterID, writeEvent)
	if !ok {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		events, next, err := s.bus.Tail(ctx, userID, lastID)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			s.logger.Error("stream: tail failed", "user_id", userID, "error", err)
			return
		}
		for _, ev := range events {
			if !writeEvent(ev) {
				return
			}
		}
		lastID = next

		if time.Since(lastKeepalive) >= keepaliveInterval {
			fmt.Fprint(c.Writer, ": keepalive\n\n")
			flusher.Flush()
			lastKeepalive = time.Now()
		}
	}
}

// replay performs the catch-up read for a reconnecting subscriber. It
// returns the id to resume live tailing from and whether to continue.
func (s *Server) replay(ctx context.Context, userID, afterID string, writeEvent func(whiteboard.Event) bool) (string, bool) {
	if afterID == "" {
		return "", true
	}
	lastID := afterID
	for {
		events, err := s.bus.ReadRange(ctx, userID, lastID, replayBatch)
		if err != nil {
			s.logger.Error("stream: replay failed", "user_id", userID, "error", err)
			return lastID, false
		}
		if len(events) == 0 {
			return lastID, true
		}
		for _, ev := range events {
			if !writeEvent(ev) {
				return lastID, false
			}
			lastID = ev.ID
		}
	}
}
