// README: Personal-info answers; keyword lookup over a fixed Q&A set, then profile fields, then a help menu.
package responders

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"wealthlens/internal/routing"
)

const ragSource = "RAG Agent (Personal Info)"

type Profile struct {
	Name           string   `json:"name"`
	Company        string   `json:"company"`
	Role           string   `json:"role"`
	Contact        string   `json:"contact"`
	Location       string   `json:"location"`
	Experience     int      `json:"experience_years"`
	Specialization string   `json:"specialization"`
	Philosophy     []string `json:"investment_philosophy"`
	Preferences    []string `json:"portfolio_preferences"`
	Expertise      []string `json:"expertise_areas"`
}

type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func DefaultProfile() Profile {
	return Profile{
		Name:           "Ganesh Divekar",
		Company:        "Bajaj Technology",
		Role:           "Leading India USA Mideast AI Team",
		Contact:        "8459684546",
		Location:       "India",
		Experience:     8,
		Specialization: "AI/ML, Financial Technology, Team Leadership",
		Philosophy: []string{
			"Long-term value investing approach",
			"Diversification across sectors and geographies",
			"Focus on both large-cap stability and small-cap growth opportunities",
			"Technology sector expertise with emphasis on AI and digital transformation",
			"Balanced portfolio with Indian and US exposure",
		},
		Preferences: []string{
			"Prefers technology and banking sectors",
			"Invests in both Indian and US markets",
			"Includes penny stocks for high growth potential",
			"Maintains mutual fund investments for diversification",
			"Portfolio value around 80 lacs INR",
		},
		Expertise: []string{
			"Artificial Intelligence and Machine Learning",
			"Financial Technology and Algorithmic Trading",
			"Team Leadership and Cross-cultural Management",
			"Portfolio Analysis and Risk Management",
			"Market Research and Investment Strategy",
		},
	}
}

func DefaultKnowledge() []QA {
	return []QA{
		{"Who is Ganesh Divekar?", "Ganesh Divekar is a technology leader working at Bajaj Technology, leading AI teams across India, USA, and Middle East regions. He has 8+ years of experience in AI/ML and financial technology."},
		{"What is Ganesh's role?", "Ganesh is leading the India USA Mideast AI Team at Bajaj Technology, focusing on AI/ML applications and team leadership across multiple regions."},
		{"How can I contact Ganesh?", "You can contact Ganesh Divekar at 8459684546. He is based in India and works with Bajaj Technology."},
		{"What is Ganesh's investment strategy?", "Ganesh follows a long-term value investing approach with diversification across sectors and geographies. His portfolio includes both Indian and US stocks, with focus on technology and banking sectors."},
		{"What is Ganesh's portfolio value?", "Ganesh's portfolio is valued at approximately 80 lacs INR, including stocks from both Indian and US markets, along with mutual fund investments."},
		{"What sectors does Ganesh invest in?", "Ganesh primarily invests in technology and banking sectors, with exposure to both large-cap stability stocks and small-cap growth opportunities including penny stocks."},
		{"What is Ganesh's expertise?", "Ganesh specializes in AI/ML, financial technology, team leadership, portfolio analysis, and risk management. He has strong expertise in cross-cultural team management."},
		{"Where does Ganesh work?", "Ganesh works at Bajaj Technology, leading AI teams across India, USA, and Middle East regions."},
		{"What is Ganesh's experience level?", "Ganesh has over 8 years of experience in AI/ML and financial technology, with expertise in leading cross-border teams."},
		{"What are Ganesh's interests?", "Ganesh is interested in AI and emerging technologies, financial markets, investment strategies, team building, and innovation in fintech solutions."},
	}
}

// stopwords never count as a match on their own; the subject's name is
// included so that every question does not match every query about them.
var stopwords = map[string]struct{}{
	"who": {}, "is": {}, "what": {}, "how": {}, "can": {}, "i": {}, "does": {},
	"are": {}, "the": {}, "where": {}, "in": {}, "a": {}, "of": {}, "an": {},
	"ganesh": {}, "divekar": {}, "level": {},
}

var wordRe = regexp.MustCompile(`[a-z0-9]+`)

type entry struct {
	qa       QA
	keywords []string
}

type RAGAgent struct {
	profile Profile
	kb      []entry
}

func NewRAGAgent(profile Profile, kb []QA) *RAGAgent {
	a := &RAGAgent{profile: profile}
	for _, qa := range kb {
		q := strings.ReplaceAll(strings.ToLower(qa.Question), "'s", "")
		var kws []string
		for _, w := range wordRe.FindAllString(q, -1) {
			if _, skip := stopwords[w]; !skip {
				kws = append(kws, w)
			}
		}
		a.kb = append(a.kb, entry{qa: qa, keywords: kws})
	}
	return a
}

func (a *RAGAgent) Respond(_ context.Context, q routing.Query) (routing.Output, error) {
	text := strings.ToLower(q.Text)
	method := "keyword_search"
	answer, ok := a.search(text)
	if ok {
		answer = pick(q, answer, "💡 "+answer)
	} else {
		method = "profile"
		answer = a.profileAnswer(text, q)
	}
	var b strings.Builder
	b.WriteString(answer + "\n")
	source(&b, "👤", ragSource)
	return routing.Output{
		DisplayName: "RAG Agent",
		Text:        b.String(),
		Category:    "rag_response",
		Payload:     map[string]any{"query": q.Text, "method": method},
	}, nil
}

// search returns the answer whose question shares the most keywords with
// the query; ties keep the earlier entry.
func (a *RAGAgent) search(text string) (string, bool) {
	words := map[string]struct{}{}
	for _, w := range wordRe.FindAllString(strings.ReplaceAll(text, "'s", ""), -1) {
		words[w] = struct{}{}
	}
	best, bestHits := -1, 0
	for i, e := range a.kb {
		hits := 0
		for _, k := range e.keywords {
			if _, ok := words[k]; ok {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = i, hits
		}
	}
	if best < 0 {
		return "", false
	}
	return a.kb[best].qa.Answer, true
}

func (a *RAGAgent) profileAnswer(text string, q routing.Query) string {
	p := a.profile
	var b strings.Builder
	switch {
	case strings.Contains(text, "who am i") || strings.Contains(text, "about me") ||
		(strings.Contains(text, "who") && strings.Contains(text, "ganesh")):
		b.WriteString(pick(q, "About "+p.Name+":\n\n", "👨‍💼 About "+p.Name+" 👨‍💼\n\n"))
		fmt.Fprintf(&b, "%sWorks at: %s\n", pick(q, "", "🏢 "), p.Company)
		fmt.Fprintf(&b, "%sRole: %s\n", pick(q, "", "💼 "), p.Role)
		fmt.Fprintf(&b, "%sContact: %s\n", pick(q, "", "📞 "), p.Contact)
		fmt.Fprintf(&b, "%sExperience: %d years\n", pick(q, "", "⏰ "), p.Experience)
		fmt.Fprintf(&b, "%sSpecialization: %s", pick(q, "", "🎯 "), p.Specialization)
	case containsAny(text, "contact", "phone", "number"):
		b.WriteString(pick(q, "You can contact "+firstName(p)+" at: "+p.Contact, "📞 Contact "+firstName(p)+" at: "+p.Contact))
	case containsAny(text, "work", "company"):
		fmt.Fprintf(&b, "%s%s works at %s as %s", pick(q, "", "🏢 "), firstName(p), p.Company, p.Role)
	case containsAny(text, "experience", "years"):
		fmt.Fprintf(&b, "%s%s has %d years of experience in %s", pick(q, "", "⏰ "), firstName(p), p.Experience, p.Specialization)
	case containsAny(text, "portfolio", "investment"):
		b.WriteString(pick(q, "Investment Philosophy:\n", "💰 Investment Philosophy 💰\n"))
		b.WriteString(strings.Join(p.Philosophy, ", ") + "\n\n")
		b.WriteString(pick(q, "Portfolio Preferences:\n", "📊 Portfolio Preferences:\n"))
		b.WriteString(strings.Join(p.Preferences, ", "))
	case containsAny(text, "expertise", "skills"):
		b.WriteString(pick(q, "Expertise Areas:\n", "🎯 Expertise Areas 🎯\n"))
		b.WriteString(strings.Join(p.Expertise, ", "))
	default:
		b.WriteString(pick(q, "", "🤖 ") + "I'm here to help with questions about " + p.Name + "!\n\n")
		b.WriteString(pick(q, "You can ask about:\n", "💡 You can ask about:\n"))
		bullets(&b, []string{
			"Who is " + firstName(p) + "?",
			"Contact information",
			"Work and experience",
			"Portfolio and investments",
			"Expertise and skills",
			"Professional background",
		})
		return strings.TrimRight(b.String(), "\n")
	}
	return b.String()
}

func firstName(p Profile) string {
	if f := strings.Fields(p.Name); len(f) > 0 {
		return f[0]
	}
	return p.Name
}
