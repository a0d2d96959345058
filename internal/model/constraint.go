package model

import "fmt"

// ConstraintSet holds the numeric thresholds translated from the client
// memo. A nil bound means the client expressed no preference for that
// dimension. The set is built once per run and never mutated afterwards.
type ConstraintSet struct {
	MaxVolatility   *float64 `json:"max_volatility,omitempty"`
	MaxDebtToEquity *float64 `json:"max_debt_to_equity,omitempty"`
	MinESG          *float64 `json:"min_esg,omitempty"`
}

// Empty reports whether no bound is set.
func (c ConstraintSet) Empty() bool {
	return c.MaxVolatility == nil && c.MaxDebtToEquity == nil && c.MinESG == nil
}

// String renders the set for logs and the translate command.
func (c ConstraintSet) String() string {
	fmtBound := func(label string, v *float64) string {
		if v == nil {
			return label + "=unconstrained"
		}
		return fmt.Sprintf("%s=%.2f", label, *v)
	}
	return fmt.Sprintf("%s %s %s",
		fmtBound("max_volatility", c.MaxVolatility),
		fmtBound("max_debt_to_equity", c.MaxDebtToEquity),
		fmtBound("min_esg", c.MinESG),
	)
}

// Bound returns a pointer to v, for building constraint sets in place.
func Bound(v float64) *float64 { return &v }
