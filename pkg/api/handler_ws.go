package api

import (
	"context"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"

	"github.com/thegaltinator/alfred-fabric/pkg/whiteboard"
)

// wsWriteTimeout bounds one frame write to a socket subscriber.
const wsWriteTimeout = 10 * time.Second

// handleWS serves GET /wb/ws?user_id=&after=&thread_id= as a full-duplex
// socket carrying the same JSON frames and replay semantics as the
// event-stream surface. The socket is read-only for the client: inbound
// frames are drained solely to detect disconnects.
func (s *Server) handleWS(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	afterID := c.Query("after")
	threadID := c.Query("thread_id")

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		s.logger.Error("ws: accept failed", "error", err)
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// Drain inbound frames; a read error means the client went away.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				return
			}
		}
	}()

	writeEvent := func(ev whiteboard.Event) bool {
		if threadID != "" && ev.ThreadID != threadID {
			return true
		}
		writeCtx, writeCancel := context.WithTimeout(ctx, wsWriteTimeout)
		defer writeCancel()
		if err := wsjson.Write(writeCtx, conn, frameOf(ev)); err != nil {
			return false
		}
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
			s.logger.Error("ws: tail failed", "user_id", userID, "error", err)
			return
		}
		for _, ev := range events {
			if !writeEvent(ev) {
				return
			}
		}
		lastID = next
	}
}
