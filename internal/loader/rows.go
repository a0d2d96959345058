// Package loader parses the candidate-company table and cleans it into
// CompanyRecords ready for scoring.
package loader

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// Row is a single raw table row, keyed by header column name.
type Row map[string]string

// ReadRows dispatches on file extension: .xlsx goes through the XLSX
// reader, everything else is treated as CSV.
func ReadRows(path string) ([]Row, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ReadXLSX(path)
	}
	return ReadCSV(path)
}

// ReadCSV reads a header-led CSV file into raw rows.
func ReadCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "loader: open csv")
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "loader: read csv")
	}
	if len(records) == 0 {
		return nil, eris.New("loader: csv has no header row")
	}

	return mapRows(records[0], records[1:]), nil
}

// ReadXLSX reads the first sheet of an XLSX workbook into raw rows,
// using the first row as the header.
func ReadXLSX(path string) ([]Row, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "loader: open xlsx")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.New("loader: xlsx has no sheets")
	}

	sheet := f.Sheets[0]
	if len(sheet.Rows) == 0 {
		return nil, eris.New("loader: xlsx sheet is empty")
	}

	header := rowToStrings(sheet.Rows[0])
	var data [][]string
	for _, row := range sheet.Rows[1:] {
		data = append(data, rowToStrings(row))
	}

	return mapRows(header, data), nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for i, c := range row.Cells {
		cells[i] = c.String()
	}
	return cells
}

func mapRows(header []string, data [][]string) []Row {
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	rows := make([]Row, 0, len(data))
	for _, rec := range data {
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = strings.TrimSpace(rec[i])
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}
