package scorer

import (
	"go.uber.org/zap"

	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/model"
)

// ScoreRisk computes the risk-quality score for every record. Volatility,
// leverage, and operational risk are normalized across the candidate set and
// inverted (lower risk scores higher), then mixed with the fixed risk
// weights. Each breached client constraint multiplies the score by the
// breach penalty factor; simultaneous breaches compound.
func ScoreRisk(records []model.CompanyRecord, cs model.ConstraintSet, p Params) map[string]float64 {
	if len(records) == 0 {
		return map[string]float64{}
	}

	vols := make([]float64, len(records))
	dtes := make([]float64, len(records))
	ops := make([]float64, len(records))
	for i, r := range records {
		vols[i] = r.Volatility
		dtes[i] = r.DebtToEquity
		ops[i] = r.OperationalRisk
	}
	vLo, vHi := minMax(vols)
	dLo, dHi := minMax(dtes)
	oLo, oHi := minMax(ops)

	scores := make(map[string]float64, len(records))
	for _, r := range records {
		vol := normalize(r.Volatility, vLo, vHi, true)
		dte := normalize(r.DebtToEquity, dLo, dHi, true)
		op := normalize(r.OperationalRisk, oLo, oHi, true)

		score := p.VolatilityWeight*vol + p.LeverageWeight*dte + p.OperationalWeight*op

		breaches := countBreaches(r, cs)
		for i := 0; i < breaches; i++ {
			score *= p.BreachPenaltyFactor
		}
		if breaches > 0 {
			zap.L().Debug("scorer: constraint breach penalty applied",
				zap.String("company", r.Name),
				zap.Int("breaches", breaches),
			)
		}

		scores[r.Name] = clamp01(score)
	}
	return scores
}

// countBreaches counts the client bounds the record violates. Unset bounds
// never breach.
func countBreaches(r model.CompanyRecord, cs model.ConstraintSet) int {
	n := 0
	if cs.MaxVolatility != nil && r.Volatility > *cs.MaxVolatility {
		n++
	}
	if cs.MaxDebtToEquity != nil && r.DebtToEquity > *cs.MaxDebtToEquity {
		n++
	}
	if cs.MinESG != nil && r.ESGScore < *cs.MinESG {
		n++
	}
	return n
}
