// README: Per-intent scoring of a normalized query against one pattern set.
package intent

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	weightExact     = 3.0
	weightSubstring = 2.0
	weightToken     = 1.5
	weightFuzzy     = 1.0

	bonusInterrogative = 0.5
	bonusAction        = 0.3
	bonusIntentCue     = 0.4
)

var punctuation = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)

var (
	interrogatives = wordSet("what", "whats", "how", "why", "when", "where", "who", "which")
	actionVerbs    = wordSet("help", "analyze", "analyse", "check", "review", "show", "tell", "explain")
	intentCues     = map[Intent]map[string]struct{}{
		PortfolioAnalysis: wordSet("my"),
		PersonalInfo:      wordSet("who", "about"),
		InvestmentAdvice:  wordSet("should", "recommend", "recommendation", "recommendations"),
	}
)

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Normalized is a query prepared for scoring.
type Normalized struct {
	Lower   string
	Trimmed string
	Joined  string
	Tokens  []string
	set     map[string]struct{}
}

// Normalize lowercases the query, turns punctuation into spaces and splits on whitespace.
func Normalize(query string) Normalized {
	lower := cases.Lower(language.Und).String(query)
	tokens := strings.Fields(punctuation.ReplaceAllString(lower, " "))
	return Normalized{
		Lower:   lower,
		Trimmed: strings.TrimSpace(lower),
		Joined:  strings.Join(tokens, " "),
		Tokens:  tokens,
		set:     wordSet(tokens...),
	}
}

func (n Normalized) has(set map[string]struct{}) bool {
	for w := range set {
		if _, ok := n.set[w]; ok {
			return true
		}
	}
	return false
}

// Score returns the normalized pattern score of q for in plus its context bonus.
func Score(q Normalized, in Intent, patterns []string) float64 {
	if len(patterns) == 0 {
		return 0
	}
	var sum float64
	for _, p := range patterns {
		sum += scorePattern(q, p)
	}
	return sum/float64(len(patterns)) + contextBonus(q, in)
}

// scorePattern applies the first matching rule only.
func scorePattern(q Normalized, p string) float64 {
	switch {
	case p == q.Trimmed || (q.Joined != "" && p == q.Joined):
		return weightExact
	case strings.Contains(q.Lower, p) || (q.Joined != "" && strings.Contains(q.Joined, p)):
		return weightSubstring
	case tokenOverlap(q.Tokens, p):
		return weightToken
	case fuzzyOverlap(q.Tokens, p):
		return weightFuzzy
	}
	return 0
}

func tokenOverlap(tokens []string, p string) bool {
	for _, t := range tokens {
		if strings.Contains(p, t) || strings.Contains(t, p) {
			return true
		}
	}
	return false
}

func fuzzyOverlap(tokens []string, p string) bool {
	words := strings.Fields(p)
	for _, t := range tokens {
		for _, w := range words {
			if similar(t, w) {
				return true
			}
		}
	}
	return false
}

func contextBonus(q Normalized, in Intent) float64 {
	var bonus float64
	if q.has(interrogatives) {
		bonus += bonusInterrogative
	}
	if q.has(actionVerbs) {
		bonus += bonusAction
	}
	if cues, ok := intentCues[in]; ok && q.has(cues) {
		bonus += bonusIntentCue
	}
	return bonus
}
