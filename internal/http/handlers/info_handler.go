// README: Static API info and example queries.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

var exampleQueries = map[string][]string{
	"portfolio_queries": {
		"Show me my portfolio summary",
		"What are my penny stocks?",
		"Analyze my portfolio performance",
		"Show my sector breakdown",
		"What's my portfolio value?",
	},
	"investment_queries": {
		"What should I buy?",
		"Give me investment recommendations",
		"Where should I invest?",
		"What stocks should I sell?",
		"Hold recommendations",
	},
	"news_queries": {
		"How does news affect my portfolio?",
		"Market news analysis",
		"Traffic issues impact on stocks",
		"Sector news",
	},
	"risk_queries": {
		"Analyze my portfolio risk",
		"What's my risk level?",
		"Risk assessment",
		"Portfolio volatility",
	},
	"technical_queries": {
		"Technical analysis of my stocks",
		"Chart patterns",
		"RSI analysis",
		"Support and resistance levels",
	},
	"sentiment_queries": {
		"Market sentiment analysis",
		"Social media sentiment",
		"Investor mood",
		"Sentiment trends",
	},
	"market_research_queries": {
		"Market research on my sectors",
		"Industry analysis",
		"Market trends",
		"Sector outlook",
	},
	"personal_queries": {
		"Who is Ganesh Divekar?",
		"What's Ganesh's contact number?",
		"Tell me about Ganesh's work",
		"What's Ganesh's expertise?",
	},
	"language_options": {"normal", "genz"},
}

// Root handles GET /.
func Root(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{
		"message": "WealthLens - Financial Portfolio Analysis API",
		"version": "1.0.0",
		"status":  "running",
		"endpoints": gin.H{
			"chat":      "/chat",
			"portfolio": "/portfolio",
			"agents":    "/agents/status",
			"health":    "/health",
		},
	})
}

// Examples handles GET /examples.
func Examples(c *gin.Context) {
	writeJSON(c, http.StatusOK, exampleQueries)
}
