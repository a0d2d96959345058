package scorer

import (
	"sort"

	"go.uber.org/zap"

	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/model"
)

// Combine merges the three component score maps into per-company breakdowns
// using the fixed ensemble weights.
func Combine(records []model.CompanyRecord, fin, risk, news map[string]float64, p Params) map[string]model.ScoreBreakdown {
	breakdowns := make(map[string]model.ScoreBreakdown, len(records))
	for _, r := range records {
		b := model.ScoreBreakdown{
			Financial: fin[r.Name],
			Risk:      risk[r.Name],
			News:      news[r.Name],
		}
		b.Final = clamp01(p.FinancialWeight*b.Financial + p.RiskWeight*b.Risk + p.NewsWeight*b.News)
		breakdowns[r.Name] = b
	}
	return breakdowns
}

// Rank orders companies by final score descending. Ties break by risk score
// descending, then company name ascending, so identical inputs always
// produce an identical ordering regardless of input order.
func Rank(breakdowns map[string]model.ScoreBreakdown) []model.RankedCompany {
	ranked := make([]model.RankedCompany, 0, len(breakdowns))
	for name, b := range breakdowns {
		ranked = append(ranked, model.RankedCompany{Name: name, Scores: b})
	}

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Scores.Final != b.Scores.Final {
			return a.Scores.Final > b.Scores.Final
		}
		if a.Scores.Risk != b.Scores.Risk {
			return a.Scores.Risk > b.Scores.Risk
		}
		return a.Name < b.Name
	})

	if len(ranked) > 0 {
		zap.L().Info("scorer: ranking complete",
			zap.Int("companies", len(ranked)),
			zap.String("top", ranked[0].Name),
			zap.Float64("top_score", ranked[0].Scores.Final),
		)
	}

	return ranked
}
