// README: Ordered regex shortcut table evaluated before general scoring.
package intent

import "regexp"

// SpecialCase maps query shapes straight to an intent. Every expression in
// All must match; the first matching case in the table wins.
type SpecialCase struct {
	Name       string
	All        []*regexp.Regexp
	Intent     Intent
	Confidence float64
}

func (s SpecialCase) Match(lower string) bool {
	for _, re := range s.All {
		if !re.MatchString(lower) {
			return false
		}
	}
	return len(s.All) > 0
}

// DefaultSpecialCases returns the built-in shortcut table. Expressions run
// against the lowercased query.
func DefaultSpecialCases() []SpecialCase {
	return []SpecialCase{
		{
			Name:       "self_identity",
			All:        []*regexp.Regexp{regexp.MustCompile(`^\s*(who\s*am\s*i|whoami)\s*[?.!]*\s*$`)},
			Intent:     PersonalInfo,
			Confidence: 1.0,
		},
		{
			Name: "current_price",
			All: []*regexp.Regexp{
				regexp.MustCompile(`\b(price|prices|pricing|cost|worth)\b`),
				regexp.MustCompile(`(current|what is|what's|how much)`),
			},
			Intent:     PortfolioAnalysis,
			Confidence: 1.0,
		},
		{
			// Anchored to the whole query so compound questions still go through scoring.
			Name: "portfolio_action",
			All: []*regexp.Regexp{
				regexp.MustCompile(`^\s*(please\s+)?(show|analy[sz]e|check|review|display|give)\s+(me\s+)?(my\s+)?(portfolio|stocks|investments|holdings)(\s+(summary|overview|performance|details|status|value|breakdown))?\s*[?.!]*\s*$`),
			},
			Intent:     PortfolioAnalysis,
			Confidence: 1.0,
		},
		{
			Name: "list_holdings",
			All: []*regexp.Regexp{
				regexp.MustCompile(`^\s*(please\s+)?(list|enlist|show)\s+(me\s+)?(all\s+)?(my\s+)?(the\s+)?(stocks|sectors|countries)\b`),
			},
			Intent:     PortfolioAnalysis,
			Confidence: 1.0,
		},
	}
}
