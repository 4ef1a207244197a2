package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thegaltinator/alfred-fabric/pkg/whiteboard"
)

// userActionRequest is the body of POST /wb/user_action: a user's answer to
// a previously emitted prompt.
type userActionRequest struct {
	UserID   string            `json:"user_id" binding:"required"`
	ThreadID string            `json:"thread_id" binding:"required"`
	ActionID string            `json:"action_id" binding:"required"`
	Choice   string            `json:"choice" binding:"required"`
	Metadata map[string]string `json:"metadata"`
}

// handleUserAction validates the request and appends a manager.user_action
// whiteboard entry. The append is the endpoint's only side-effect: the
// runtime worker picks the entry up from the whiteboard like any other.
func (s *Server) handleUserAction(c *gin.Context) {
	var req userActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	values := map[string]any{
		"type":      "manager.user_action",
		"action_id": req.ActionID,
		"choice":    req.Choice,
	}
	for k, v := range req.Metadata {
		values[k] = v
	}

	wbID, err := s.bus.Append(c.Request.Context(), req.UserID, req.ThreadID, values)
	if err != nil {
		if errors.Is(err, whiteboard.ErrEmptyThreadID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s.logger.Error("user_action append failed", "user_id", req.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "append failed"})
		return
	}

	s.logger.Info("user action recorded", "user_id", req.UserID, "thread_id", req.ThreadID,
		"action_id", req.ActionID, "choice", req.Choice, "wb_id", wbID, "author", extractAuthor(c))
	c.JSON(http.StatusAccepted, gin.H{"wb_id": wbID})
}
