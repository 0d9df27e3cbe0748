// README: Dispatcher; invokes the selected responders in order with per-call fault isolation.
package routing

import (
	"context"
	"fmt"
	"log"

	"wealthlens/internal/intent"
)

// ErrorText is the fixed payload text substituted for a failed responder.
const ErrorText = "Sorry, I couldn't process this request."

// Outcome lists the responders that were invoked and what they produced,
// both in dispatch order.
type Outcome struct {
	Used    []string `json:"responders_used"`
	Outputs []Output `json:"agent_responses"`
}

type Dispatcher struct {
	reg *Registry
}

func NewDispatcher(reg *Registry) *Dispatcher {
	return &Dispatcher{reg: reg}
}

// Dispatch never aborts on a responder failure. A failed responder yields an
// error payload; a failed fallback yields no output at all.
func (d *Dispatcher) Dispatch(ctx context.Context, dec Decision, q Query) Outcome {
	out := Outcome{Used: []string{}, Outputs: []Output{}}
	for _, in := range dec.Selected {
		entry, ok := d.reg.Lookup(in)
		if !ok {
			log.Printf("routing: %v", fmt.Errorf("%w: %s", ErrMissingResponder, in))
			if !dec.Fallback {
				out.Outputs = append(out.Outputs, errorOutput(in, ""))
			}
			continue
		}
		out.Used = append(out.Used, entry.Name)

		res, err := invoke(ctx, entry, q)
		if err != nil {
			log.Printf("routing: responder %s (%s) failed: %v", entry.Name, in, err)
			if dec.Fallback {
				continue
			}
			res = errorOutput(in, entry.Name)
		}
		out.Outputs = append(out.Outputs, res)
	}
	return out
}

func invoke(ctx context.Context, e Entry, q Query) (out Output, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	out, err = e.Responder.Respond(ctx, q)
	if err != nil {
		return Output{}, err
	}
	if out.Text == "" {
		return Output{}, fmt.Errorf("empty response")
	}
	out.Intent = e.Intent
	out.Responder = e.Name
	if out.DisplayName == "" {
		out.DisplayName = e.DisplayName
	}
	if out.DisplayName == "" {
		out.DisplayName = intent.TitleCase(e.Name)
	}
	if out.Category == "" {
		out.Category = string(e.Intent)
	}
	return out, nil
}

func errorOutput(in intent.Intent, name string) Output {
	return Output{
		Intent:      in,
		Responder:   name,
		DisplayName: in.Title(),
		Text:        ErrorText,
		Category:    CategoryError,
	}
}
