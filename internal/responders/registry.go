// README: Builds the static intent to responder registry used at startup.
package responders

import (
	"wealthlens/internal/intent"
	"wealthlens/internal/routing"
)

// Fallback answers when routing selects nothing.
const Fallback = intent.PersonalInfo

// NewRegistry wires one responder per intent over the given holdings view.
func NewRegistry(src Holdings) (*routing.Registry, error) {
	reg := routing.NewRegistry(Fallback)
	entries := []routing.Entry{
		{Intent: intent.PortfolioAnalysis, Name: "portfolio_analyzer", DisplayName: "Portfolio Analyzer", Description: "Analyzes portfolio performance, calculates returns, and provides investment insights", Responder: NewPortfolioAnalyzer(src)},
		{Intent: intent.NewsAnalysis, Name: "news_analyzer", DisplayName: "News Analyzer", Description: "Analyzes market news and provides insights on portfolio impact", Responder: NewNewsAnalyzer()},
		{Intent: intent.InvestmentAdvice, Name: "investment_advisor", DisplayName: "Investment Advisor", Description: "Provides buy/sell/hold recommendations and investment advice", Responder: NewInvestmentAdvisor(src)},
		{Intent: intent.PersonalInfo, Name: "rag_agent", DisplayName: "RAG Agent", Description: "Answers general questions about the user from a fixed knowledge base", Responder: NewRAGAgent(DefaultProfile(), DefaultKnowledge())},
		{Intent: intent.RiskAssessment, Name: "risk_analyzer", DisplayName: "Risk Analyzer", Description: "Analyzes portfolio risk and provides risk management recommendations", Responder: NewRiskAnalyzer(src)},
		{Intent: intent.MarketResearch, Name: "market_research", DisplayName: "Market Research", Description: "Conducts market research and provides industry insights", Responder: NewMarketResearch(src)},
		{Intent: intent.TechnicalAnalysis, Name: "technical_analyzer", DisplayName: "Technical Analyzer", Description: "Provides technical analysis and chart pattern insights", Responder: NewTechnicalAnalyzer(src)},
		{Intent: intent.SentimentAnalysis, Name: "sentiment_analyzer", DisplayName: "Sentiment Analyzer", Description: "Analyzes market sentiment and investor psychology", Responder: NewSentimentAnalyzer(src)},
	}
	for _, e := range entries {
		if err := reg.Register(e); err != nil {
			return nil, err
		}
	}
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return reg, nil
}
