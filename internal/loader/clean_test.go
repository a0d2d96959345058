package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(name, growth, margin, dte, vol, esg, op, flag string) Row {
	return Row{
		colCompany:         name,
		colRevenueGrowth:   growth,
		colEBITDAMargin:    margin,
		colDebtToEquity:    dte,
		colVolatility:      vol,
		colESGScore:        esg,
		colOperationalRisk: op,
		colDataQuality:     flag,
	}
}

func TestClean_ParsesCleanRows(t *testing.T) {
	rows := []Row{
		row("Acme Corp", "12.5", "18.0", "0.8", "15.0", "72", "20", "CLEAN"),
		row("Beta Industries", "8.0", "22.0", "1.2", "18.0", "65", "35", "CLEAN"),
	}

	res, err := Clean(rows)
	require.NoError(t, err)
	require.Len(t, res.Records, 2)

	acme := res.Records[0]
	assert.Equal(t, "Acme Corp", acme.Name)
	assert.Equal(t, 12.5, acme.RevenueGrowth)
	assert.Equal(t, 18.0, acme.EBITDAMargin)
	assert.Equal(t, 0.8, acme.DebtToEquity)
	assert.Equal(t, 15.0, acme.Volatility)
	assert.Equal(t, 72.0, acme.ESGScore)
	assert.Equal(t, 20.0, acme.OperationalRisk)
	assert.False(t, acme.Corrupted)
	assert.Empty(t, acme.ImputedFields)

	assert.Equal(t, 0, res.Quality.CorruptedRows)
	assert.Equal(t, 0, res.Quality.ImputedFields)
	assert.Equal(t, 0, res.Quality.SkippedRows)
}

func TestClean_PenalisedMedianImputation(t *testing.T) {
	rows := []Row{
		row("A", "10", "10", "1", "10", "60", "10", "CLEAN"),
		row("B", "10", "10", "1", "10", "70", "10", "CLEAN"),
		row("C", "10", "10", "1", "10", "80", "10", "CLEAN"),
		row("D", "10", "10", "1", "10", "?", "10", "CORRUPTED"),
	}

	res, err := Clean(rows)
	require.NoError(t, err)
	require.Len(t, res.Records, 4)

	d := res.Records[3]
	assert.Equal(t, "D", d.Name)
	assert.True(t, d.Corrupted)
	// median(60,70,80) = 70, corrupted penalty 0.9 -> 63
	assert.InDelta(t, 63.0, d.ESGScore, 1e-9)
	assert.True(t, d.Imputed(FieldESGScore))

	assert.Equal(t, 1, res.Quality.CorruptedRows)
	assert.Equal(t, 1, res.Quality.ImputedFields)
}

func TestClean_ImputationWithoutPenaltyForCleanRow(t *testing.T) {
	rows := []Row{
		row("A", "10", "10", "1", "10", "60", "10", "CLEAN"),
		row("B", "10", "10", "1", "10", "80", "10", "CLEAN"),
		row("C", "10", "10", "1", "10", "N/A", "10", "CLEAN"),
	}

	res, err := Clean(rows)
	require.NoError(t, err)
	require.Len(t, res.Records, 3)

	c := res.Records[2]
	// even count: median(60,80) = 70, no penalty for a clean row
	assert.InDelta(t, 70.0, c.ESGScore, 1e-9)
	assert.True(t, c.Imputed(FieldESGScore))
	assert.Equal(t, 0, res.Quality.CorruptedRows)
}

func TestClean_SkipsRowsWithMissingMandatoryFields(t *testing.T) {
	rows := []Row{
		row("Good Co", "10", "10", "1", "10", "60", "10", "CLEAN"),
		row("No Volatility", "10", "10", "1", "?", "60", "10", "CLEAN"),
		row("Garbage Growth", "n/m", "10", "1", "10", "60", "10", "CLEAN"),
	}

	res, err := Clean(rows)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "Good Co", res.Records[0].Name)
	assert.Equal(t, 2, res.Quality.SkippedRows)
}

func TestClean_SentinelTokens(t *testing.T) {
	for _, sentinel := range []string{"", "?", "N/A", "NA", "None", "-"} {
		_, ok := parseNumeric(sentinel)
		assert.False(t, ok, "sentinel %q should be classified missing", sentinel)
	}

	v, ok := parseNumeric(" 42.5 ")
	assert.True(t, ok)
	assert.Equal(t, 42.5, v)
}

func TestClean_SkipsDuplicateAndUnnamedRows(t *testing.T) {
	rows := []Row{
		row("Acme", "10", "10", "1", "10", "60", "10", "CLEAN"),
		row("Acme", "11", "11", "1", "11", "61", "11", "CLEAN"),
		row("", "12", "12", "1", "12", "62", "12", "CLEAN"),
	}

	res, err := Clean(rows)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, 2, res.Quality.SkippedRows)
}

func TestClean_PreservesInputOrder(t *testing.T) {
	rows := []Row{
		row("Zeta", "10", "10", "1", "10", "60", "10", "CLEAN"),
		row("Alpha", "10", "10", "1", "10", "60", "10", "CLEAN"),
		row("Mid", "10", "10", "1", "10", "60", "10", "CLEAN"),
	}

	res, err := Clean(rows)
	require.NoError(t, err)
	assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, res.Names())
}

func TestClean_EmptyInput(t *testing.T) {
	_, err := Clean(nil)
	require.Error(t, err)

	_, err = Clean([]Row{row("Only", "?", "?", "?", "?", "?", "?", "CLEAN")})
	require.Error(t, err)
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 70.0, median([]float64{80, 60, 70}))
	assert.Equal(t, 65.0, median([]float64{60, 70, 80, 50}))
	assert.Equal(t, 42.0, median([]float64{42}))
}
