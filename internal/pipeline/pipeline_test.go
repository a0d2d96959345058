package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/lexicon"
	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/loader"
	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/scorer"
)

func sampleRow(name, growth, margin, dte, vol, esg, op, flag string) loader.Row {
	return loader.Row{
		"Company":           name,
		"Revenue_Growth_3Y": growth,
		"EBITDA_Margin":     margin,
		"Debt_to_Equity":    dte,
		"Volatility_1Y":     vol,
		"ESG_Score":         esg,
		"Operational_Risk":  op,
		"Data_Quality_Flag": flag,
	}
}

func sampleInputs() Inputs {
	return Inputs{
		Rows: []loader.Row{
			sampleRow("Alpha Systems", "14.0", "21.0", "0.7", "14.0", "78", "15", "CLEAN"),
			sampleRow("Borealis Group", "9.5", "17.5", "1.1", "19.0", "?", "25", "CLEAN"),
			sampleRow("Cinder Works", "22.0", "12.0", "2.4", "31.0", "58", "45", "CORRUPTED"),
			sampleRow("Dunmore Ltd", "6.0", "24.0", "0.9", "16.0", "?", "20", "CLEAN"),
			sampleRow("Everline Corp", "11.0", "19.0", "1.6", "22.0", "70", "30", "CLEAN"),
		},
		News: `Alpha Systems reported strong growth and a surge in new contracts.

Cinder Works faces a lawsuit; analysts expect a decline in margins.

Everline Corp results may improve, with a major approval still pending.`,
		Memo: `The client has a moderate risk tolerance and is sensitive to
excessive leverage. ESG is important, but not at the expense of
financial health.`,
		Lexicon: lexicon.Lexicon{
			Positive:    []string{"surge", "growth", "strong"},
			Negative:    []string{"decline", "lawsuit"},
			Uncertainty: []string{"may", "pending"},
		},
	}
}

func TestRun_EndToEnd(t *testing.T) {
	res, err := Run(sampleInputs(), scorer.DefaultParams())
	require.NoError(t, err)

	require.Len(t, res.Ranked.Ranking, 5)
	assert.Equal(t, res.Ranked.Ranking[0].Name, res.Ranked.Recommended)

	// All component and final scores lie in [0,1].
	for _, rc := range res.Ranked.Ranking {
		for label, s := range map[string]float64{
			"financial": rc.Scores.Financial,
			"risk":      rc.Scores.Risk,
			"news":      rc.Scores.News,
			"final":     rc.Scores.Final,
		} {
			assert.GreaterOrEqual(t, s, 0.0, "%s/%s", rc.Name, label)
			assert.LessOrEqual(t, s, 1.0, "%s/%s", rc.Name, label)
		}
	}

	// Data quality: one corrupted row, two imputed ESG values.
	assert.Equal(t, 1, res.Quality.CorruptedRows)
	assert.Equal(t, 2, res.Quality.ImputedFields)

	// Translated constraints from the memo.
	require.NotNil(t, res.Constraints.MaxVolatility)
	require.NotNil(t, res.Constraints.MaxDebtToEquity)
	require.NotNil(t, res.Constraints.MinESG)
	assert.Equal(t, 25.0, *res.Constraints.MaxVolatility)
	assert.Equal(t, 1.5, *res.Constraints.MaxDebtToEquity)
	assert.Equal(t, 65.0, *res.Constraints.MinESG)

	// Confidence reproducible from the margin and the quality counts.
	p := scorer.DefaultParams()
	expected := p.ConfidenceBase
	if scorer.TopGap(res.Ranked.Ranking) <= p.CloseGapThreshold {
		expected -= p.CloseGapDeduction
	}
	expected -= p.CorruptedDeduction * float64(res.Quality.CorruptedRows)
	expected -= p.ImputedDeduction * float64(res.Quality.ImputedFields)
	if expected < 0 {
		expected = 0
	}
	assert.InDelta(t, expected, res.Ranked.Confidence, 1e-9)
}

func TestRun_Deterministic(t *testing.T) {
	first, err := Run(sampleInputs(), scorer.DefaultParams())
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := Run(sampleInputs(), scorer.DefaultParams())
		require.NoError(t, err)
		assert.Equal(t, first.Ranked, again.Ranked)
		assert.Equal(t, first.Quality, again.Quality)
	}
}

func TestRun_SingleCompanyDegenerateCase(t *testing.T) {
	in := sampleInputs()
	in.Rows = in.Rows[:1]

	res, err := Run(in, scorer.DefaultParams())
	require.NoError(t, err)
	require.Len(t, res.Ranked.Ranking, 1)
	assert.Equal(t, "Alpha Systems", res.Ranked.Recommended)

	// No second company: the close-gap deduction does not apply.
	assert.InDelta(t, 0.80, res.Ranked.Confidence, 1e-9)
}

func TestRun_EmptyMemoAndLexicon(t *testing.T) {
	in := sampleInputs()
	in.Memo = ""
	in.Lexicon = lexicon.Lexicon{}

	res, err := Run(in, scorer.DefaultParams())
	require.NoError(t, err)
	assert.True(t, res.Constraints.Empty())

	// With no polarity keywords every news score is neutral.
	for _, rc := range res.Ranked.Ranking {
		assert.InDelta(t, 0.5, rc.Scores.News, 1e-9)
	}
}

func TestRun_NoSurvivingRowsFails(t *testing.T) {
	in := sampleInputs()
	in.Rows = []loader.Row{
		sampleRow("Broken", "?", "10", "1", "10", "60", "10", "CLEAN"),
	}

	_, err := Run(in, scorer.DefaultParams())
	require.Error(t, err)
}

func TestRun_InvalidParamsRejected(t *testing.T) {
	p := scorer.DefaultParams()
	p.RiskWeight = 0.99

	_, err := Run(sampleInputs(), p)
	require.Error(t, err)
}
