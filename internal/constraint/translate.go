// Package constraint translates free-text client preferences into numeric
// thresholds for the risk scorer.
package constraint

import (
	"strings"

	"github.com/agext/levenshtein"
	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/model"
)

// fuzzyThreshold is the minimum levenshtein similarity for a word window to
// count as a phrase match when no exact substring is found.
const fuzzyThreshold = 0.85

// rule maps a recognized preference phrasing to a threshold assignment.
// When several rules target the same threshold, the highest-specificity
// match wins.
type rule struct {
	name        string
	phrases     []string // any one must match
	requires    []string // all of these must also match
	specificity int
	apply       func(*model.ConstraintSet)
}

// The recognized phrase table. A direct statement about a metric is more
// specific than a general risk-tolerance remark, and the qualified ESG
// phrasing is more specific than the plain one.
var rules = []rule{
	{
		name:        "moderate risk tolerance",
		phrases:     []string{"moderate risk"},
		specificity: 1,
		apply:       func(c *model.ConstraintSet) { c.MaxVolatility = model.Bound(25) },
	},
	{
		name:        "avoid high volatility",
		phrases:     []string{"avoid high volatility", "low volatility"},
		specificity: 2,
		apply:       func(c *model.ConstraintSet) { c.MaxVolatility = model.Bound(20) },
	},
	{
		name:        "sensitive to leverage",
		phrases:     []string{"sensitive to excessive leverage", "sensitive to leverage", "avoid leverage"},
		specificity: 1,
		apply:       func(c *model.ConstraintSet) { c.MaxDebtToEquity = model.Bound(1.5) },
	},
	{
		name:        "esg important",
		phrases:     []string{"esg is important", "esg important"},
		specificity: 1,
		apply:       func(c *model.ConstraintSet) { c.MinESG = model.Bound(75) },
	},
	{
		name:        "esg important, qualified",
		phrases:     []string{"not at the expense"},
		requires:    []string{"esg"},
		specificity: 2,
		apply:       func(c *model.ConstraintSet) { c.MinESG = model.Bound(65) },
	},
}

// fold lowercases text with full Unicode case folding. Casers are stateful,
// so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Translate scans the client memo for recognized phrases and builds the
// resulting constraint set. Unmatched text contributes no threshold; an
// empty or unrecognized memo yields an unconstrained set.
func Translate(memo string) model.ConstraintSet {
	var cs model.ConstraintSet

	folded := fold(memo)
	words := strings.Fields(folded)

	// Rules are applied in ascending specificity so a more specific match
	// overwrites a more general one on the same threshold.
	for _, r := range sortedBySpecificity() {
		if !matchAny(folded, words, r.phrases) {
			continue
		}
		if !matchAll(folded, words, r.requires) {
			continue
		}
		r.apply(&cs)
		zap.L().Debug("constraint: phrase matched", zap.String("rule", r.name))
	}

	zap.L().Info("constraint: memo translated", zap.String("constraints", cs.String()))
	return cs
}

func sortedBySpecificity() []rule {
	out := make([]rule, len(rules))
	copy(out, rules)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].specificity < out[j-1].specificity; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func matchAll(folded string, words []string, phrases []string) bool {
	for _, p := range phrases {
		if !matchPhrase(folded, words, fold(p)) {
			return false
		}
	}
	return true
}

func matchAny(folded string, words []string, phrases []string) bool {
	for _, p := range phrases {
		if matchPhrase(folded, words, fold(p)) {
			return true
		}
	}
	return false
}

// matchPhrase reports whether the phrase appears in the folded text, first
// as an exact substring, then fuzzily: every window of the same word length
// is compared with levenshtein similarity to tolerate typos.
func matchPhrase(folded string, words []string, phrase string) bool {
	if strings.Contains(folded, phrase) {
		return true
	}

	n := len(strings.Fields(phrase))
	if n == 0 || len(words) < n {
		return false
	}
	params := levenshtein.NewParams()
	for i := 0; i+n <= len(words); i++ {
		window := strings.Join(words[i:i+n], " ")
		if levenshtein.Similarity(window, phrase, params) >= fuzzyThreshold {
			return true
		}
	}
	return false
}
