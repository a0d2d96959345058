// Package sentiment scores per-company news tone against a keyword lexicon.
package sentiment

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/lexicon"
	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/model"
)

const (
	// NeutralScore is the sentiment assigned when no keywords match or a
	// company has no associated news text.
	NeutralScore = 0.5

	// uncertaintyStep is the per-hit reduction of the polarity multiplier;
	// minDiscount is its floor.
	uncertaintyStep = 0.15
	minDiscount     = 0.3
)

// fold lowercases text with full Unicode case folding. Casers are stateful,
// so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Extractor scans news text for keyword hits and produces one sentiment
// score per company. The lexicon is read-only after construction.
type Extractor struct {
	lex lexicon.Lexicon
}

// NewExtractor creates an Extractor over the given lexicon.
func NewExtractor(lex lexicon.Lexicon) *Extractor {
	return &Extractor{lex: lex}
}

// counts accumulates keyword hits for one company across its news blocks.
type counts struct {
	positive    int
	negative    int
	uncertainty int
}

// Extract segments the news text into blank-line paragraphs, associates
// each paragraph with every company whose name appears in it, and computes
// a discounted sentiment score per company. Companies without news are
// absent from the result; callers default them to NeutralScore.
func (e *Extractor) Extract(newsText string, names []string) map[string]model.SentimentResult {
	hits := make(map[string]*counts)

	for _, para := range splitParagraphs(newsText) {
		folded := fold(para)
		tokens := tokenize(folded)

		c := counts{
			positive:    countHits(folded, tokens, e.lex.Positive),
			negative:    countHits(folded, tokens, e.lex.Negative),
			uncertainty: countHits(folded, tokens, e.lex.Uncertainty),
		}

		for _, name := range names {
			if !strings.Contains(folded, fold(name)) {
				continue
			}
			h, ok := hits[name]
			if !ok {
				h = &counts{}
				hits[name] = h
			}
			h.positive += c.positive
			h.negative += c.negative
			h.uncertainty += c.uncertainty
		}
	}

	results := make(map[string]model.SentimentResult, len(hits))
	for name, h := range hits {
		results[name] = score(h)
	}

	zap.L().Info("sentiment: extraction complete",
		zap.Int("companies_with_news", len(results)),
		zap.Int("companies_total", len(names)),
	)

	return results
}

// score turns keyword counts into a [0,1] sentiment. Polarity is the signed
// share of positive hits among polarity hits; uncertainty hits discount the
// polarity toward zero before it is mapped onto [0,1], pulling the final
// score toward neutral.
func score(h *counts) model.SentimentResult {
	matched := h.positive + h.negative

	var polarity float64
	if matched > 0 {
		polarity = float64(h.positive-h.negative) / float64(matched)
	}

	discount := 1.0 - uncertaintyStep*float64(h.uncertainty)
	if discount < minDiscount {
		discount = minDiscount
	}

	s := (polarity*discount + 1) / 2
	if s < 0 {
		s = 0
	} else if s > 1 {
		s = 1
	}

	return model.SentimentResult{
		Score:    s,
		Discount: discount,
		Matched:  matched,
	}
}

// splitParagraphs returns the non-empty blank-line-separated blocks.
func splitParagraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// tokenize splits folded text into lowercase word tokens, trimming
// surrounding punctuation.
func tokenize(folded string) []string {
	fields := strings.Fields(folded)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		t := strings.Trim(f, ".,;:!?\"'()[]")
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// countHits counts keyword occurrences. Single-word keywords are matched
// per token; multi-word keywords fall back to substring counting.
func countHits(folded string, tokens []string, keywords []string) int {
	total := 0
	for _, kw := range keywords {
		if strings.ContainsRune(kw, ' ') {
			total += strings.Count(folded, kw)
			continue
		}
		for _, t := range tokens {
			if t == kw {
				total++
			}
		}
	}
	return total
}
