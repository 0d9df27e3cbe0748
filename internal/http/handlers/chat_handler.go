// README: Chat handler (message routing, intent analysis, source attribution).
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wealthlens/internal/modules/chat"
)

type ChatHandler struct {
	chat    *chat.Service
	timeout time.Duration
}

func NewChatHandler(svc *chat.Service, timeout time.Duration) *ChatHandler {
	return &ChatHandler{chat: svc, timeout: timeout}
}

// Chat handles POST /chat. An empty message is routed to the fallback
// responder; only an unreadable body is rejected.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chat.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := withTimeout(c, h.timeout)
	defer cancel()

	writeJSON(c, http.StatusOK, h.chat.Chat(ctx, req))
}

// IntentAnalysis handles POST /intent-analysis.
func (h *ChatHandler) IntentAnalysis(c *gin.Context) {
	var req chat.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	writeJSON(c, http.StatusOK, h.chat.AnalyzeIntent(req.Message))
}

// Sources handles POST /sources.
func (h *ChatHandler) Sources(c *gin.Context) {
	var req chat.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	writeJSON(c, http.StatusOK, h.chat.Sources(req.Message))
}

// AgentsStatus handles GET /agents/status.
func (h *ChatHandler) AgentsStatus(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{
		"agents":        h.chat.Agents(),
		"system_status": "running",
		"timestamp":     now(),
	})
}

// AgentsList handles GET /agents/list.
func (h *ChatHandler) AgentsList(c *gin.Context) {
	names := h.chat.AgentNames()
	writeJSON(c, http.StatusOK, gin.H{
		"agents":       names,
		"total_agents": len(names),
		"timestamp":    now(),
	})
}

// Health handles GET /health.
func (h *ChatHandler) Health(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": now(),
		"agents":    len(h.chat.AgentNames()),
	})
}
