// Package model defines the data types shared by the allocation pipeline.
package model

// CompanyRecord is one cleaned row of the candidate-company table. Every
// numeric field is populated after cleaning, either observed or imputed;
// ESGScore is the only field eligible for imputation.
type CompanyRecord struct {
	Name            string   `json:"name"`
	RevenueGrowth   float64  `json:"revenue_growth"`
	EBITDAMargin    float64  `json:"ebitda_margin"`
	Volatility      float64  `json:"volatility"`
	DebtToEquity    float64  `json:"debt_to_equity"`
	OperationalRisk float64  `json:"operational_risk"`
	ESGScore        float64  `json:"esg_score"`
	Corrupted       bool     `json:"corrupted"`
	ImputedFields   []string `json:"imputed_fields,omitempty"`
}

// Imputed reports whether the named field was filled in rather than observed.
func (r *CompanyRecord) Imputed(field string) bool {
	for _, f := range r.ImputedFields {
		if f == field {
			return true
		}
	}
	return false
}

// DataQuality aggregates cleaning outcomes across all rows. The confidence
// calibrator consumes these counts.
type DataQuality struct {
	CorruptedRows int `json:"corrupted_rows"`
	ImputedFields int `json:"imputed_fields"`
	SkippedRows   int `json:"skipped_rows"`
}
