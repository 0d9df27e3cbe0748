// README: Chat service; runs a message through the routing engine and records the session.
package chat

import (
	"context"
	"log"
	"time"

	"wealthlens/internal/intent"
	"wealthlens/internal/modules/session"
	"wealthlens/internal/routing"
)

type Service struct {
	engine   *routing.Engine
	sessions *session.Service
	now      func() time.Time
}

func NewService(engine *routing.Engine, sessions *session.Service) *Service {
	return &Service{engine: engine, sessions: sessions, now: time.Now}
}

// Chat always yields a well-formed response. Session bookkeeping failures
// are logged and do not fail the request.
func (s *Service) Chat(ctx context.Context, req Request) Response {
	lang := routing.ParseLanguage(req.Language)
	res := s.engine.Process(ctx, routing.Query{Text: req.Message, Language: lang})

	id := req.SessionID
	if s.sessions != nil {
		id = s.sessions.Resolve(req.SessionID)
		if _, err := s.sessions.Record(ctx, id, req.Message, res.Text, string(lang)); err != nil {
			log.Printf("chat: record session %s: %v", id, err)
		}
	}

	return Response{
		Text:           res.Text,
		SessionID:      id,
		Timestamp:      s.now().UTC(),
		Success:        len(res.Outputs) > 0,
		AgentResponses: res.Outputs,
		Sources:        res.RespondersUsed,
		Intent:         res.Primary,
		Confidence:     res.Confidence,
	}
}

func (s *Service) AnalyzeIntent(message string) IntentAnalysis {
	res, dec := s.engine.Route(message)
	return IntentAnalysis{
		Query:            message,
		Analysis:         res,
		Routing:          dec,
		AvailableIntents: intent.All(),
		AgentMapping:     s.mapping(),
		Timestamp:        s.now().UTC(),
	}
}

// Sources reports which responders a message would be dispatched to.
func (s *Service) Sources(message string) Sources {
	res, dec := s.engine.Route(message)
	reg := s.engine.Registry()
	names := make([]string, 0, len(dec.Selected))
	for _, in := range dec.Selected {
		names = append(names, reg.NameOf(in))
	}
	primary := "Unknown"
	if e, ok := reg.Lookup(res.Primary); ok {
		primary = e.DisplayName
	}
	return Sources{
		Query:         message,
		PrimaryIntent: res.Primary,
		PrimaryAgent:  primary,
		Confidence:    res.Confidence,
		AllIntents:    res.Scores,
		Responders:    names,
		AgentMapping:  s.mapping(),
		Timestamp:     s.now().UTC(),
	}
}

func (s *Service) Agents() []AgentStatus {
	reg := s.engine.Registry()
	entries := reg.Entries()
	out := make([]AgentStatus, len(entries))
	for i, e := range entries {
		out[i] = AgentStatus{
			Name:        e.Name,
			DisplayName: e.DisplayName,
			Description: e.Description,
			Intent:      e.Intent,
			Status:      "active",
			Fallback:    e.Intent == reg.Fallback(),
		}
	}
	return out
}

func (s *Service) AgentNames() []string {
	return s.engine.Registry().Names()
}

func (s *Service) mapping() map[intent.Intent]string {
	out := map[intent.Intent]string{}
	for _, e := range s.engine.Registry().Entries() {
		out[e.Intent] = e.DisplayName
	}
	return out
}
