// Package lexicon loads the keyword sets used by sentiment extraction.
package lexicon

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Lexicon holds the three keyword sets supplied as external configuration.
// An empty lexicon is legal: sentiment degrades to neutral for all companies.
type Lexicon struct {
	Positive    []string `yaml:"positive" json:"positive"`
	Negative    []string `yaml:"negative" json:"negative"`
	Uncertainty []string `yaml:"uncertainty" json:"uncertainty"`
}

// Load reads a lexicon from a YAML (or JSON, which yaml.v3 also accepts)
// file. Keywords are lowercased and trimmed on load so matching is uniform.
func Load(path string) (Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Lexicon{}, eris.Wrap(err, "lexicon: read file")
	}

	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return Lexicon{}, eris.Wrap(err, "lexicon: unmarshal")
	}

	lex.Positive = normalizeAll(lex.Positive)
	lex.Negative = normalizeAll(lex.Negative)
	lex.Uncertainty = normalizeAll(lex.Uncertainty)

	return lex, nil
}

// Empty reports whether no polarity keywords are configured.
func (l Lexicon) Empty() bool {
	return len(l.Positive) == 0 && len(l.Negative) == 0
}

func normalizeAll(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}
