// README: Template responders behind routing.Responder; shared formatting helpers live here.
package responders

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"

	"wealthlens/internal/modules/portfolio"
	"wealthlens/internal/routing"
	"wealthlens/internal/types"
)

// Holdings is the portfolio view the responders read from.
type Holdings interface {
	Holdings(ctx context.Context) (portfolio.Holdings, error)
}

func genz(q routing.Query) bool { return q.Language == routing.GenZ }

func pick(q routing.Query, normal, alt string) string {
	if genz(q) {
		return alt
	}
	return normal
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func inr(v float64) string { return types.NewMoney(v, types.INR).Format() }

func money(v float64, currency string) string { return types.NewMoney(v, currency).Format() }

func pct(v float64) string { return fmt.Sprintf("%.2f%%", v) }

func signedPct(v float64) string { return fmt.Sprintf("%+.2f%%", v) }

func bullets(b *strings.Builder, items []string) {
	for _, it := range items {
		b.WriteString("• " + it + "\n")
	}
}

func source(b *strings.Builder, emoji, name string) {
	b.WriteString("\n" + emoji + " Source: " + name + "\n")
}

// unit maps (key, salt) to a stable value in [0, 1).
func unit(key, salt string) float64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(salt + ":" + key))
	return float64(h.Sum32()) / (1 << 32)
}

// between scales unit(key, salt) into [lo, hi).
func between(key, salt string, lo, hi float64) float64 {
	return lo + unit(key, salt)*(hi-lo)
}

func choose(key, salt string, options []string) string {
	return options[int(unit(key, salt)*float64(len(options)))%len(options)]
}

func flag(country string) string {
	switch country {
	case "India":
		return "🇮🇳"
	case "USA":
		return "🇺🇸"
	}
	return "🌍"
}

func upDown(q routing.Query, v float64) string {
	if genz(q) {
		if v >= 0 {
			return "🟢"
		}
		return "🔴"
	}
	if v >= 0 {
		return "▲"
	}
	return "▼"
}

func headOf(names []string, n int, more string) string {
	if len(names) <= n {
		return strings.Join(names, ", ")
	}
	return strings.Join(names[:n], ", ") + fmt.Sprintf(more, len(names)-n)
}
