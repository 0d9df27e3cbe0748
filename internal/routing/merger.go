// README: Response merger; one output passes through, several get a banner and attribution headers.
package routing

import (
	"strings"

	"wealthlens/internal/intent"
)

// Apology is returned when no responder produced output.
const Apology = "I'm sorry, I couldn't process your request. Please try again."

const separatorWidth = 50

var categoryEmoji = map[string]string{
	"portfolio_summary":    "📊",
	"portfolio_analysis":   "📈",
	"risk_analysis":        "⚠️",
	"news_analysis":        "📰",
	"investment_advice":    "💡",
	"buy_recommendations":  "🛒",
	"sell_recommendations": "📉",
	"hold_recommendations": "⏸️",
	"rag_response":         "👤",
	"market_research":      "🔍",
	"technical_analysis":   "📈",
	"sentiment_analysis":   "😎",
	CategoryError:          "❌",
}

func emojiFor(category string) string {
	if e, ok := categoryEmoji[category]; ok {
		return e
	}
	return "📊"
}

// Merge combines outputs in dispatch order.
func Merge(outputs []Output, lang Language) string {
	switch len(outputs) {
	case 0:
		return Apology
	case 1:
		return outputs[0].Text
	}

	var b strings.Builder
	sep := strings.Repeat("-", separatorWidth)
	if lang == GenZ {
		b.WriteString("🤖 Multi-Agent Analysis Complete! 🤖\n\n")
		sep = strings.Repeat("─", separatorWidth)
	} else {
		b.WriteString("Multi-Agent Analysis Complete!\n\n")
	}

	for i, o := range outputs {
		category := intent.TitleCase(o.Category)
		if lang == GenZ {
			b.WriteString(emojiFor(o.Category) + " " + o.DisplayName + " (" + category + "):\n")
		} else {
			b.WriteString("[" + o.DisplayName + " - " + category + "]\n")
		}
		b.WriteString(o.Text)
		b.WriteString("\n")
		if i < len(outputs)-1 {
			b.WriteString(sep + "\n")
		}
	}
	return b.String()
}
