// Package report serializes a pipeline result into the output report.
package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/model"
	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/pipeline"
	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/scorer"
)

// Report is the structured run output. Field content mirrors the pipeline
// result; run ID and timestamps are report-level metadata.
type Report struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`

	RecommendedCompany string                `json:"recommended_company"`
	ConfidenceScore    float64               `json:"confidence_score"`
	FinalRanking       []model.RankedCompany `json:"final_ranking"`

	Constraints model.ConstraintSet              `json:"constraints"`
	Sentiment   map[string]model.SentimentResult `json:"sentiment,omitempty"`
	DataQuality model.DataQuality                `json:"data_quality"`

	UncertaintyFactors []string `json:"uncertainty_factors"`
	Methodology        string   `json:"methodology"`
	RuntimeSeconds     float64  `json:"runtime_seconds"`
}

// Build assembles the report for a completed run.
func Build(res *pipeline.Result, p scorer.Params, elapsed time.Duration) *Report {
	return &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),

		RecommendedCompany: res.Ranked.Recommended,
		ConfidenceScore:    res.Ranked.Confidence,
		FinalRanking:       res.Ranked.Ranking,

		Constraints: res.Constraints,
		Sentiment:   res.Sentiment,
		DataQuality: res.Quality,

		UncertaintyFactors: uncertaintyFactors(res, p),
		Methodology:        methodology(p),
		RuntimeSeconds:     elapsed.Seconds(),
	}
}

// uncertaintyFactors names the signals that reduced confidence.
func uncertaintyFactors(res *pipeline.Result, p scorer.Params) []string {
	var factors []string

	if len(res.Ranked.Ranking) >= 2 {
		gap := scorer.TopGap(res.Ranked.Ranking)
		if gap <= p.CloseGapThreshold {
			factors = append(factors, fmt.Sprintf("top two final scores very close (gap=%.3f)", gap))
		}
	}
	if res.Quality.CorruptedRows > 0 {
		factors = append(factors, fmt.Sprintf("%d corrupted record(s) present", res.Quality.CorruptedRows))
	}
	if res.Quality.ImputedFields > 0 {
		factors = append(factors, fmt.Sprintf("%d field(s) imputed", res.Quality.ImputedFields))
	}
	if res.Quality.SkippedRows > 0 {
		factors = append(factors, fmt.Sprintf("%d row(s) excluded during cleaning", res.Quality.SkippedRows))
	}

	return factors
}

func methodology(p scorer.Params) string {
	return fmt.Sprintf(
		"Three-scorer ensemble: financial strength (%.0f%% growth + %.0f%% margin), "+
			"risk quality (%.0f%% volatility + %.0f%% leverage + %.0f%% operational, "+
			"x%.2f per constraint breach), and news sentiment. "+
			"Combined %.0f%% financial + %.0f%% risk + %.0f%% news.",
		p.GrowthWeight*100, p.MarginWeight*100,
		p.VolatilityWeight*100, p.LeverageWeight*100, p.OperationalWeight*100,
		p.BreachPenaltyFactor,
		p.FinancialWeight*100, p.RiskWeight*100, p.NewsWeight*100,
	)
}
