// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wealthlens/internal/modules/portfolio"
	"wealthlens/internal/modules/session"
)

const defaultTimeout = 10 * time.Second

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writePortfolioError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, portfolio.ErrBadAnalysis):
		writeError(c, http.StatusBadRequest, "invalid analysis type")
	case errors.Is(err, portfolio.ErrNoHoldings), errors.Is(err, portfolio.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeSessionError(c *gin.Context, err error) {
	if errors.Is(err, session.ErrNotFound) {
		writeError(c, http.StatusNotFound, "session not found")
		return
	}
	writeError(c, http.StatusInternalServerError, "internal error")
}

func withTimeout(c *gin.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = defaultTimeout
	}
	return context.WithTimeout(c.Request.Context(), d)
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
