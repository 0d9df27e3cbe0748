// README: Engine runs classify, route, dispatch and merge for one query.
package routing

import (
	"context"
	"log"

	"wealthlens/internal/intent"
)

// Response is the result handed back to the request layer.
type Response struct {
	Text           string        `json:"response"`
	Primary        intent.Intent `json:"primary_intent"`
	Confidence     float64       `json:"confidence"`
	RespondersUsed []string      `json:"responders_used"`
	Outputs        []Output      `json:"agent_responses"`
	Classification intent.Result `json:"intent_analysis"`
	Decision       Decision      `json:"routing"`
}

type Engine struct {
	classifier *intent.Classifier
	registry   *Registry
	dispatcher *Dispatcher
	cfg        Config
}

func NewEngine(c *intent.Classifier, reg *Registry, cfg Config) *Engine {
	return &Engine{
		classifier: c,
		registry:   reg,
		dispatcher: NewDispatcher(reg),
		cfg:        cfg,
	}
}

func (e *Engine) Registry() *Registry { return e.registry }

func (e *Engine) Classify(text string) intent.Result {
	return e.classifier.Classify(text)
}

// Route classifies text and applies the routing policy without dispatching.
func (e *Engine) Route(text string) (intent.Result, Decision) {
	res := e.classifier.Classify(text)
	return res, Route(res, e.cfg, e.registry.Fallback())
}

func (e *Engine) Process(ctx context.Context, q Query) Response {
	res, dec := e.Route(q.Text)
	if dec.Fallback {
		log.Printf("routing: no responder selected (primary=%s conf=%.2f), using fallback", res.Primary, res.Confidence)
	}
	out := e.dispatcher.Dispatch(ctx, dec, q)
	return Response{
		Text:           Merge(out.Outputs, q.Language),
		Primary:        res.Primary,
		Confidence:     res.Confidence,
		RespondersUsed: out.Used,
		Outputs:        out.Outputs,
		Classification: res,
		Decision:       dec,
	}
}
