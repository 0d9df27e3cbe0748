// README: Typo-tolerant word comparison (close spelling, transposition, known misspellings, phonetic folding).
package intent

import "strings"

// minFuzzyLen is the shortest word the edit-distance style rules look at.
const minFuzzyLen = 3

// misspellings lists frequent typos for vocabulary words. Lookup is bidirectional.
var misspellings = map[string][]string{
	"portfolio":      {"portfolo", "portfollio", "portfoli"},
	"performance":    {"perfomance", "perfrmance"},
	"summary":        {"summry", "sumary"},
	"news":           {"nws", "newz"},
	"market":         {"mrket", "markt"},
	"traffic":        {"trffic", "trafik"},
	"impact":         {"impct", "impackt"},
	"analysis":       {"anlysis", "analisis"},
	"research":       {"reserch", "recherch"},
	"technical":      {"techncal", "techical"},
	"sentiment":      {"sentimnt", "sentimant"},
	"investment":     {"investmnt", "invesment"},
	"recommendation": {"recomendatn", "recomendation"},
	"ganesh":         {"ganes"},
	"contact":        {"contct", "contakt"},
	"risk":           {"rsk", "risc"},
	"volatility":     {"volatilty", "volatality"},
	"safety":         {"saftey", "safte"},
	"trends":         {"trnds", "trendz"},
	"industry":       {"indstry", "industy"},
}

var misspellingPairs = buildMisspellingPairs()

func buildMisspellingPairs() map[[2]string]struct{} {
	pairs := make(map[[2]string]struct{})
	for word, typos := range misspellings {
		for _, typo := range typos {
			pairs[[2]string{word, typo}] = struct{}{}
			pairs[[2]string{typo, word}] = struct{}{}
		}
	}
	return pairs
}

// phonetic folds sound-alike spellings to one form. Order matters: "ph" and
// "ck" are folded before the single letter "c".
var phonetic = strings.NewReplacer("ph", "f", "ck", "k", "c", "k", "z", "s", "y", "i")

func similar(a, b string) bool {
	if a == b {
		return true
	}
	if len(a) >= 2 && len(b) >= 2 && (strings.Contains(a, b) || strings.Contains(b, a)) {
		return true
	}
	if len(a) < minFuzzyLen || len(b) < minFuzzyLen {
		return false
	}
	if closeSpelling(a, b) || transposed(a, b) {
		return true
	}
	if _, ok := misspellingPairs[[2]string{a, b}]; ok {
		return true
	}
	return phonetic.Replace(a) == phonetic.Replace(b)
}

// closeSpelling allows roughly one differing character per three letters,
// counting both the length gap and per-position mismatches.
func closeSpelling(a, b string) bool {
	tol := max(1, min(len(a), len(b))/3)
	diff := len(a) - len(b)
	if diff < 0 {
		diff = -diff
	}
	if diff > tol {
		return false
	}
	mismatches := 0
	for i := 0; i < min(len(a), len(b)); i++ {
		if a[i] != b[i] {
			mismatches++
		}
	}
	return mismatches <= tol
}

// transposed reports whether b is a with exactly one pair of adjacent bytes swapped.
func transposed(a, b string) bool {
	if len(a) != len(b) || a == b {
		return false
	}
	first := -1
	for i := 0; i < len(a); i++ {
		if a[i] == b[i] {
			continue
		}
		if first >= 0 {
			return i == first+1 && a[first] == b[i] && a[i] == b[first] && a[i+1:] == b[i+1:]
		}
		first = i
	}
	return false
}
