package loader

import (
	"sort"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/model"
)

// Column names expected in the candidate table.
const (
	colCompany         = "Company"
	colRevenueGrowth   = "Revenue_Growth_3Y"
	colEBITDAMargin    = "EBITDA_Margin"
	colDebtToEquity    = "Debt_to_Equity"
	colVolatility      = "Volatility_1Y"
	colESGScore        = "ESG_Score"
	colOperationalRisk = "Operational_Risk"
	colDataQuality     = "Data_Quality_Flag"
)

// FieldESGScore is the record field name stored in ImputedFields when the
// ESG score was filled in rather than observed.
const FieldESGScore = "esg_score"

// corruptedPenalty discounts the median when imputing into a row whose
// quality flag marks it corrupted.
const corruptedPenalty = 0.9

// sentinels are the tokens that mark a missing value in the raw table.
var sentinels = map[string]bool{
	"":     true,
	"?":    true,
	"N/A":  true,
	"NA":   true,
	"None": true,
	"-":    true,
}

// CleanResult is the loader's output: records in input order, a name index,
// and the aggregate data-quality counts the calibrator needs.
type CleanResult struct {
	Records []model.CompanyRecord
	Quality model.DataQuality
}

// Names returns the company names in input order.
func (c *CleanResult) Names() []string {
	names := make([]string, len(c.Records))
	for i, r := range c.Records {
		names[i] = r.Name
	}
	return names
}

// Clean classifies each row's numeric fields against the sentinel tokens,
// drops rows whose mandatory fields cannot be determined, and imputes
// missing ESG scores with the penalised median of the observed values.
// Rows survive in input order.
func Clean(rows []Row) (*CleanResult, error) {
	if len(rows) == 0 {
		return nil, eris.New("loader: no rows to clean")
	}

	type pending struct {
		rec        model.CompanyRecord
		esgMissing bool
	}

	res := &CleanResult{}
	var kept []pending
	seen := make(map[string]bool)

	for i, row := range rows {
		name := row[colCompany]
		if name == "" || seen[name] {
			res.Quality.SkippedRows++
			zap.L().Warn("loader: skipping row with missing or duplicate company name", zap.Int("row", i))
			continue
		}

		rec := model.CompanyRecord{Name: name}
		rec.Corrupted = strings.EqualFold(row[colDataQuality], "CORRUPTED")

		mandatory := []struct {
			col string
			dst *float64
		}{
			{colRevenueGrowth, &rec.RevenueGrowth},
			{colEBITDAMargin, &rec.EBITDAMargin},
			{colVolatility, &rec.Volatility},
			{colDebtToEquity, &rec.DebtToEquity},
			{colOperationalRisk, &rec.OperationalRisk},
		}

		var badCols []string
		for _, m := range mandatory {
			v, ok := parseNumeric(row[m.col])
			if !ok {
				badCols = append(badCols, m.col)
				continue
			}
			*m.dst = v
		}
		// Mandatory fields are never defaulted: a row we cannot determine is
		// excluded rather than allowed to bias the scores.
		if len(badCols) > 0 {
			res.Quality.SkippedRows++
			zap.L().Warn("loader: skipping row with undeterminable mandatory fields",
				zap.String("company", name),
				zap.Strings("columns", badCols),
			)
			continue
		}

		esg, esgOK := parseNumeric(row[colESGScore])
		if esgOK {
			rec.ESGScore = esg
		}

		seen[name] = true
		kept = append(kept, pending{rec: rec, esgMissing: !esgOK})
	}

	if len(kept) == 0 {
		return nil, eris.New("loader: no rows survived cleaning")
	}

	// Penalised-median imputation for missing ESG scores.
	var observed []float64
	for _, p := range kept {
		if !p.esgMissing {
			observed = append(observed, p.rec.ESGScore)
		}
	}

	for _, p := range kept {
		if p.esgMissing {
			if len(observed) == 0 {
				res.Quality.SkippedRows++
				zap.L().Warn("loader: skipping row, no observed ESG values to impute from",
					zap.String("company", p.rec.Name))
				continue
			}
			p.rec.ESGScore = median(observed)
			if p.rec.Corrupted {
				p.rec.ESGScore *= corruptedPenalty
			}
			p.rec.ImputedFields = append(p.rec.ImputedFields, FieldESGScore)
			res.Quality.ImputedFields++
		}
		if p.rec.Corrupted {
			res.Quality.CorruptedRows++
		}
		res.Records = append(res.Records, p.rec)
	}

	if len(res.Records) == 0 {
		return nil, eris.New("loader: no rows survived cleaning")
	}

	zap.L().Info("loader: cleaning complete",
		zap.Int("records", len(res.Records)),
		zap.Int("corrupted", res.Quality.CorruptedRows),
		zap.Int("imputed", res.Quality.ImputedFields),
		zap.Int("skipped", res.Quality.SkippedRows),
	)

	return res, nil
}

// parseNumeric classifies a cell as present or missing and parses it.
func parseNumeric(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if sentinels[raw] {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// median returns the statistical median of values. Even-length inputs
// average the two middle values.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
