package scorer

import (
	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/model"
)

// Confidence derives the calibrated confidence for a ranking. It starts at
// the base value, deducts once when the top-two gap is within the close-gap
// threshold (only when a second company exists), deducts per corrupted row
// and per imputed field across all companies, and clamps to [0,1]. This is
// a heuristic meta-signal, not a statistical probability.
func Confidence(ranking []model.RankedCompany, q model.DataQuality, p Params) float64 {
	c := p.ConfidenceBase

	if len(ranking) >= 2 {
		gap := ranking[0].Scores.Final - ranking[1].Scores.Final
		if gap <= p.CloseGapThreshold {
			c -= p.CloseGapDeduction
		}
	}

	c -= p.CorruptedDeduction * float64(q.CorruptedRows)
	c -= p.ImputedDeduction * float64(q.ImputedFields)

	return clamp01(c)
}

// TopGap returns the margin between the two best final scores, or 0 when
// fewer than two companies ranked.
func TopGap(ranking []model.RankedCompany) float64 {
	if len(ranking) < 2 {
		return 0
	}
	return ranking[0].Scores.Final - ranking[1].Scores.Final
}
