// README: Immutable intent lexicon loaded once from the embedded YAML pattern file.
package intent

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var defaultLexicon []byte

var (
	ErrUnknownIntent = errors.New("lexicon: unknown intent")
	ErrMissingIntent = errors.New("lexicon: missing intent")
	ErrEmptyPatterns = errors.New("lexicon: empty pattern set")
)

// Lexicon maps every intent to its ordered pattern set. It is never mutated
// after Parse returns, so one value can be shared across requests.
type Lexicon struct {
	sets map[Intent][]string
}

// DefaultLexicon parses the embedded pattern file.
func DefaultLexicon() (*Lexicon, error) {
	return ParseLexicon(defaultLexicon)
}

// MustDefaultLexicon panics if the embedded pattern file is invalid.
func MustDefaultLexicon() *Lexicon {
	lex, err := DefaultLexicon()
	if err != nil {
		panic(err)
	}
	return lex
}

func ParseLexicon(data []byte) (*Lexicon, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("lexicon: decode: %w", err)
	}
	return NewLexicon(raw)
}

// NewLexicon case-folds and trims each pattern and drops duplicates, keeping
// the first occurrence. Every known intent must have a non-empty set.
func NewLexicon(raw map[string][]string) (*Lexicon, error) {
	lower := cases.Lower(language.Und)
	sets := make(map[Intent][]string, len(order))
	for name, patterns := range raw {
		in := Intent(name)
		if !in.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownIntent, name)
		}
		seen := make(map[string]struct{}, len(patterns))
		out := make([]string, 0, len(patterns))
		for _, p := range patterns {
			p = strings.TrimSpace(lower.String(p))
			if p == "" {
				continue
			}
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
		sets[in] = out
	}
	for _, in := range order {
		set, ok := sets[in]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingIntent, in)
		}
		if len(set) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyPatterns, in)
		}
	}
	return &Lexicon{sets: sets}, nil
}

// Patterns returns a copy of the pattern set for in. Unknown intents are a
// programming error and yield nil.
func (l *Lexicon) Patterns(in Intent) []string {
	set := l.sets[in]
	out := make([]string, len(set))
	copy(out, set)
	return out
}

func (l *Lexicon) Size(in Intent) int {
	return len(l.sets[in])
}

func (l *Lexicon) patterns(in Intent) []string {
	return l.sets[in]
}
