// README: Chat request/response shapes and agent listings exposed over HTTP.
package chat

import (
	"time"

	"wealthlens/internal/intent"
	"wealthlens/internal/routing"
)

type Request struct {
	Message   string `json:"message"`
	Language  string `json:"language"`
	SessionID string `json:"session_id"`
}

type Response struct {
	Text           string           `json:"response"`
	SessionID      string           `json:"session_id"`
	Timestamp      time.Time        `json:"timestamp"`
	Success        bool             `json:"success"`
	AgentResponses []routing.Output `json:"agent_responses"`
	Sources        []string         `json:"sources"`
	Intent         intent.Intent    `json:"intent"`
	Confidence     float64          `json:"confidence"`
}

type IntentAnalysis struct {
	Query            string                   `json:"query"`
	Analysis         intent.Result            `json:"intent_analysis"`
	Routing          routing.Decision         `json:"routing"`
	AvailableIntents []intent.Intent          `json:"available_intents"`
	AgentMapping     map[intent.Intent]string `json:"agent_mapping"`
	Timestamp        time.Time                `json:"timestamp"`
}

type Sources struct {
	Query         string                   `json:"query"`
	PrimaryIntent intent.Intent            `json:"primary_intent"`
	PrimaryAgent  string                   `json:"primary_agent"`
	Confidence    float64                  `json:"confidence"`
	AllIntents    intent.ScoreVector       `json:"all_intents"`
	Responders    []string                 `json:"responders"`
	AgentMapping  map[intent.Intent]string `json:"agent_mapping"`
	Timestamp     time.Time                `json:"timestamp"`
}

type AgentStatus struct {
	Name        string        `json:"name"`
	DisplayName string        `json:"display_name"`
	Description string        `json:"description"`
	Intent      intent.Intent `json:"intent"`
	Status      string        `json:"status"`
	Fallback    bool          `json:"fallback,omitempty"`
}
