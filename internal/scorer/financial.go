package scorer

import (
	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/model"
)

// ScoreFinancial computes the financial-strength score for every record.
// Revenue growth and EBITDA margin are min-max normalized across the
// candidate set so relative ranking is consistent within a run, then mixed
// with the fixed growth/margin weights.
func ScoreFinancial(records []model.CompanyRecord, p Params) map[string]float64 {
	if len(records) == 0 {
		return map[string]float64{}
	}

	growths := make([]float64, len(records))
	margins := make([]float64, len(records))
	for i, r := range records {
		growths[i] = r.RevenueGrowth
		margins[i] = r.EBITDAMargin
	}
	gLo, gHi := minMax(growths)
	mLo, mHi := minMax(margins)

	scores := make(map[string]float64, len(records))
	for _, r := range records {
		g := normalize(r.RevenueGrowth, gLo, gHi, false)
		m := normalize(r.EBITDAMargin, mLo, mHi, false)
		scores[r.Name] = clamp01(p.GrowthWeight*g + p.MarginWeight*m)
	}
	return scores
}
