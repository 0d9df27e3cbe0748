// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"wealthlens/internal/http/handlers"
	"wealthlens/internal/http/middleware"
	"wealthlens/internal/modules/chat"
	"wealthlens/internal/modules/portfolio"
	"wealthlens/internal/modules/pricing"
	"wealthlens/internal/modules/session"
)

type ServerDeps struct {
	Chat           *chat.Service
	Portfolio      *portfolio.Service
	Pricing        *pricing.Service
	Sessions       *session.Service
	RequestTimeout time.Duration
}

type Server struct {
	chat      *handlers.ChatHandler
	portfolio *handlers.PortfolioHandler
	sessions  *handlers.SessionHandler
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		chat:      handlers.NewChatHandler(deps.Chat, deps.RequestTimeout),
		portfolio: handlers.NewPortfolioHandler(deps.Portfolio, deps.Pricing, deps.RequestTimeout),
		sessions:  handlers.NewSessionHandler(deps.Sessions),
	}
}

func (s *Server) Routes() *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	r.GET("/", handlers.Root)
	r.GET("/health", s.chat.Health)
	r.GET("/examples", handlers.Examples)

	r.POST("/chat", s.chat.Chat)
	r.POST("/intent-analysis", s.chat.IntentAnalysis)
	r.POST("/sources", s.chat.Sources)
	r.GET("/agents/status", s.chat.AgentsStatus)
	r.GET("/agents/list", s.chat.AgentsList)

	r.GET("/portfolio", s.portfolio.Analysis)
	r.GET("/portfolio/penny-stocks", s.portfolio.PennyStocks)
	r.GET("/data/live-prices", s.portfolio.LivePrices)

	r.GET("/sessions/:id", s.sessions.Get)
	r.DELETE("/sessions/:id", s.sessions.Delete)
	return r
}
