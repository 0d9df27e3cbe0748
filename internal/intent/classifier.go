// README: Intent classifier; special cases first, then lexicon scoring, argmax and confidence.
package intent

import "log"

const (
	DefaultSecondaryFloor = 0.2

	dominanceRatio   = 1.5
	dominanceBoost   = 1.2
	ambiguityFloor   = 0.3
	ambiguityCount   = 2
	ambiguityPenalty = 0.8
)

// ScoreVector holds one score per known intent.
type ScoreVector map[Intent]float64

type Result struct {
	Primary     Intent      `json:"primary"`
	Confidence  float64     `json:"confidence"`
	Secondary   []Intent    `json:"secondary"`
	Scores      ScoreVector `json:"all_scores"`
	SpecialCase string      `json:"special_case,omitempty"`
	TokenCount  int         `json:"token_count"`
}

type Classifier struct {
	lex            *Lexicon
	special        []SpecialCase
	secondaryFloor float64
}

type Option func(*Classifier)

func WithSecondaryFloor(v float64) Option {
	return func(c *Classifier) { c.secondaryFloor = v }
}

func WithSpecialCases(cases []SpecialCase) Option {
	return func(c *Classifier) { c.special = cases }
}

func NewClassifier(lex *Lexicon, opts ...Option) *Classifier {
	c := &Classifier{
		lex:            lex,
		special:        DefaultSpecialCases(),
		secondaryFloor: DefaultSecondaryFloor,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify is a pure function of the query text. It never fails; an empty
// query scores zero everywhere and falls to the first declared intent.
func (c *Classifier) Classify(query string) Result {
	q := Normalize(query)

	for _, sc := range c.special {
		if sc.Match(q.Lower) {
			log.Printf("intent: special case %s -> %s", sc.Name, sc.Intent)
			return specialResult(sc, len(q.Tokens))
		}
	}

	scores := make(ScoreVector, len(order))
	for _, in := range order {
		scores[in] = Score(q, in, c.lex.patterns(in))
	}

	primary := order[0]
	for _, in := range order[1:] {
		if scores[in] > scores[primary] {
			primary = in
		}
	}

	secondary := make([]Intent, 0, len(order)-1)
	for _, in := range order {
		if in != primary && scores[in] > c.secondaryFloor {
			secondary = append(secondary, in)
		}
	}

	return Result{
		Primary:    primary,
		Confidence: confidence(scores, primary),
		Secondary:  secondary,
		Scores:     scores,
		TokenCount: len(q.Tokens),
	}
}

func specialResult(sc SpecialCase, tokens int) Result {
	scores := make(ScoreVector, len(order))
	for _, in := range order {
		scores[in] = 0
	}
	scores[sc.Intent] = sc.Confidence
	return Result{
		Primary:     sc.Intent,
		Confidence:  sc.Confidence,
		Secondary:   []Intent{},
		Scores:      scores,
		SpecialCase: sc.Name,
		TokenCount:  tokens,
	}
}

func confidence(scores ScoreVector, primary Intent) float64 {
	top := scores[primary]
	var next float64
	ambiguous := 0
	for _, in := range order {
		if scores[in] > ambiguityFloor {
			ambiguous++
		}
		if in != primary && scores[in] > next {
			next = scores[in]
		}
	}

	conf := min(top, 1.0)
	if top > 0 && top > next*dominanceRatio {
		conf = min(conf*dominanceBoost, 1.0)
	}
	if ambiguous > ambiguityCount {
		conf *= ambiguityPenalty
	}
	return max(0, min(conf, 1.0))
}
