package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

const sampleCSV = `Company,Revenue_Growth_3Y,EBITDA_Margin,Debt_to_Equity,Volatility_1Y,ESG_Score,Operational_Risk,Data_Quality_Flag
Acme Corp,12.5,18.0,0.8,15.0,72,20,CLEAN
Beta Industries,8.0,22.0,1.2,18.0,?,35,CORRUPTED
`

func TestReadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "companies.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	rows, err := ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Acme Corp", rows[0]["Company"])
	assert.Equal(t, "12.5", rows[0]["Revenue_Growth_3Y"])
	assert.Equal(t, "?", rows[1]["ESG_Score"])
	assert.Equal(t, "CORRUPTED", rows[1]["Data_Quality_Flag"])
}

func TestReadCSV_MissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}

func TestReadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "companies.xlsx")

	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Sheet1")
	require.NoError(t, err)

	header := sheet.AddRow()
	for _, col := range []string{"Company", "Revenue_Growth_3Y", "EBITDA_Margin", "Debt_to_Equity", "Volatility_1Y", "ESG_Score", "Operational_Risk", "Data_Quality_Flag"} {
		header.AddCell().SetString(col)
	}
	data := sheet.AddRow()
	for _, cell := range []string{"Acme Corp", "12.5", "18.0", "0.8", "15.0", "72", "20", "CLEAN"} {
		data.AddCell().SetString(cell)
	}
	require.NoError(t, f.Save(path))

	rows, err := ReadRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Acme Corp", rows[0]["Company"])
	assert.Equal(t, "72", rows[0]["ESG_Score"])
}

func TestReadRows_DispatchesByExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "companies.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	rows, err := ReadRows(path)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
