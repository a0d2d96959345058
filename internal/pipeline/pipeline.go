// Package pipeline orchestrates the allocation run: cleaning, constraint
// translation, sentiment extraction, the three-scorer ensemble, ranking,
// and confidence calibration.
package pipeline

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/constraint"
	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/lexicon"
	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/loader"
	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/model"
	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/scorer"
	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/sentiment"
)

// Inputs holds the three fully-materialized run inputs plus the lexicon.
type Inputs struct {
	Rows    []loader.Row
	News    string
	Memo    string
	Lexicon lexicon.Lexicon
}

// Result is everything the run produced, immutable once returned.
type Result struct {
	Ranked      model.RankedResult
	Constraints model.ConstraintSet
	Sentiment   map[string]model.SentimentResult
	Quality     model.DataQuality
}

// Run executes the pipeline over the given inputs. Every stage is a pure
// function over the previous stage's output; identical inputs produce an
// identical Result.
func Run(in Inputs, p scorer.Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	cleaned, err := loader.Clean(in.Rows)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: clean records")
	}

	cs := constraint.Translate(in.Memo)

	sentiments := sentiment.NewExtractor(in.Lexicon).Extract(in.News, cleaned.Names())

	fin := scorer.ScoreFinancial(cleaned.Records, p)
	risk := scorer.ScoreRisk(cleaned.Records, cs, p)
	news := scorer.ScoreNews(cleaned.Records, sentiments, p)

	breakdowns := scorer.Combine(cleaned.Records, fin, risk, news, p)
	ranking := scorer.Rank(breakdowns)
	confidence := scorer.Confidence(ranking, cleaned.Quality, p)

	res := &Result{
		Ranked: model.RankedResult{
			Ranking:     ranking,
			Recommended: ranking[0].Name,
			Confidence:  confidence,
		},
		Constraints: cs,
		Sentiment:   sentiments,
		Quality:     cleaned.Quality,
	}

	zap.L().Info("pipeline: run complete",
		zap.String("recommended", res.Ranked.Recommended),
		zap.Float64("confidence", res.Ranked.Confidence),
		zap.Int("companies", len(ranking)),
	)

	return res, nil
}
