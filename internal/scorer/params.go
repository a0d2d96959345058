// Package scorer implements the three-scorer ensemble that ranks candidate
// companies and calibrates a confidence value for the result.
package scorer

import (
	"fmt"
	"math"
	"strings"

	"github.com/rotisserie/eris"
)

// Params groups every fixed weight, penalty factor, and calibration constant
// used by the scorers. The values are compile-time constants exposed through
// DefaultParams so tests can assert on them directly; they are not runtime
// configurable.
type Params struct {
	// Ensemble weights (sum = 1).
	FinancialWeight float64
	RiskWeight      float64
	NewsWeight      float64

	// Financial scorer mix (sum = 1).
	GrowthWeight float64
	MarginWeight float64

	// Risk scorer mix (sum = 1).
	VolatilityWeight  float64
	LeverageWeight    float64
	OperationalWeight float64

	// BreachPenaltyFactor multiplies the risk score once per breached
	// constraint; breaches compound.
	BreachPenaltyFactor float64

	// Confidence calibration.
	ConfidenceBase     float64
	CloseGapThreshold  float64
	CloseGapDeduction  float64
	CorruptedDeduction float64 // per corrupted row
	ImputedDeduction   float64 // per imputed field
}

// DefaultParams returns the fixed scoring constants.
func DefaultParams() Params {
	return Params{
		FinancialWeight: 0.30,
		RiskWeight:      0.45,
		NewsWeight:      0.25,

		GrowthWeight: 0.40,
		MarginWeight: 0.60,

		VolatilityWeight:  0.35,
		LeverageWeight:    0.35,
		OperationalWeight: 0.30,

		BreachPenaltyFactor: 0.5,

		ConfidenceBase:     0.80,
		CloseGapThreshold:  0.05,
		CloseGapDeduction:  0.15,
		CorruptedDeduction: 0.07,
		ImputedDeduction:   0.05,
	}
}

// Validate checks that a Params is internally consistent.
func (p Params) Validate() error {
	var errs []string

	sums := map[string]float64{
		"ensemble weights":  p.FinancialWeight + p.RiskWeight + p.NewsWeight,
		"financial weights": p.GrowthWeight + p.MarginWeight,
		"risk weights":      p.VolatilityWeight + p.LeverageWeight + p.OperationalWeight,
	}
	for name, sum := range sums {
		if math.Abs(sum-1) > 1e-9 {
			errs = append(errs, fmt.Sprintf("%s should sum to 1, got %.4f", name, sum))
		}
	}

	weights := map[string]float64{
		"financial_weight":   p.FinancialWeight,
		"risk_weight":        p.RiskWeight,
		"news_weight":        p.NewsWeight,
		"growth_weight":      p.GrowthWeight,
		"margin_weight":      p.MarginWeight,
		"volatility_weight":  p.VolatilityWeight,
		"leverage_weight":    p.LeverageWeight,
		"operational_weight": p.OperationalWeight,
	}
	for name, w := range weights {
		if w < 0 {
			errs = append(errs, fmt.Sprintf("%s must be >= 0", name))
		}
	}

	if p.BreachPenaltyFactor <= 0 || p.BreachPenaltyFactor >= 1 {
		errs = append(errs, "breach penalty factor must be in (0, 1)")
	}
	if p.ConfidenceBase < 0 || p.ConfidenceBase > 1 {
		errs = append(errs, "confidence base must be in [0, 1]")
	}
	for name, d := range map[string]float64{
		"close_gap_deduction": p.CloseGapDeduction,
		"corrupted_deduction": p.CorruptedDeduction,
		"imputed_deduction":   p.ImputedDeduction,
	} {
		if d < 0 {
			errs = append(errs, fmt.Sprintf("%s must be >= 0", name))
		}
	}

	if len(errs) > 0 {
		return eris.Errorf("scorer: params validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
