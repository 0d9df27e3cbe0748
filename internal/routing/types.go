// README: Responder contract shared by the dispatcher and the response generators.
package routing

import (
	"context"
	"strings"

	"wealthlens/internal/intent"
)

type Language string

const (
	Normal Language = "normal"
	GenZ   Language = "genz"
)

// ParseLanguage maps anything other than "genz" to Normal.
func ParseLanguage(v string) Language {
	if strings.EqualFold(strings.TrimSpace(v), string(GenZ)) {
		return GenZ
	}
	return Normal
}

type Query struct {
	Text     string   `json:"query"`
	Language Language `json:"language"`
}

type Output struct {
	Intent      intent.Intent `json:"intent"`
	Responder   string        `json:"agent"`
	DisplayName string        `json:"display_name"`
	Text        string        `json:"response"`
	Category    string        `json:"type"`
	Payload     any           `json:"data,omitempty"`
}

// CategoryError marks a substituted payload for a failed responder.
const CategoryError = "error"

// Responder turns a query into formatted output for one intent.
type Responder interface {
	Respond(ctx context.Context, q Query) (Output, error)
}

type ResponderFunc func(ctx context.Context, q Query) (Output, error)

func (f ResponderFunc) Respond(ctx context.Context, q Query) (Output, error) {
	return f(ctx, q)
}
