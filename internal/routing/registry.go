// README: Static intent to responder registry built once at startup.
package routing

import (
	"errors"
	"fmt"

	"wealthlens/internal/intent"
)

var (
	ErrDuplicate        = errors.New("responder already registered")
	ErrUnknownIntent    = errors.New("unknown intent")
	ErrMissingResponder = errors.New("no responder registered")
)

type Entry struct {
	Intent      intent.Intent
	Name        string
	DisplayName string
	Description string
	Responder   Responder
}

type Registry struct {
	entries  map[intent.Intent]Entry
	fallback intent.Intent
}

func NewRegistry(fallback intent.Intent) *Registry {
	return &Registry{entries: map[intent.Intent]Entry{}, fallback: fallback}
}

func (r *Registry) Register(e Entry) error {
	if !e.Intent.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownIntent, e.Intent)
	}
	if _, ok := r.entries[e.Intent]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, e.Intent)
	}
	r.entries[e.Intent] = e
	return nil
}

// Validate checks that every intent and the fallback have a responder.
func (r *Registry) Validate() error {
	for _, in := range intent.All() {
		if _, ok := r.entries[in]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingResponder, in)
		}
	}
	return nil
}

func (r *Registry) Lookup(in intent.Intent) (Entry, bool) {
	e, ok := r.entries[in]
	return e, ok
}

func (r *Registry) Fallback() intent.Intent { return r.fallback }

// Entries lists registered responders in intent declaration order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.entries))
	for _, in := range intent.All() {
		if e, ok := r.entries[in]; ok {
			out = append(out, e)
		}
	}
	return out
}

func (r *Registry) Names() []string {
	entries := r.Entries()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

// NameOf returns the responder name for in, or "" when none is registered.
func (r *Registry) NameOf(in intent.Intent) string {
	return r.entries[in].Name
}
