// README: Session handler (inspect and delete chat sessions).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wealthlens/internal/modules/session"
)

type SessionHandler struct {
	sessions *session.Service
}

func NewSessionHandler(svc *session.Service) *SessionHandler {
	return &SessionHandler{sessions: svc}
}

// Get handles GET /sessions/:id.
func (h *SessionHandler) Get(c *gin.Context) {
	id := c.Param("id")
	s, err := h.sessions.Get(c.Request.Context(), id)
	if err != nil {
		writeSessionError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"session_id": id, "data": s})
}

// Delete handles DELETE /sessions/:id.
func (h *SessionHandler) Delete(c *gin.Context) {
	if err := h.sessions.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeSessionError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"message": "Session deleted successfully"})
}
