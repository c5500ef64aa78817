package dataset

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/arbolab/allom/pkg/errors"
)

// Columns names the spreadsheet headers holding the species label, the
// diameter measurement and the biomass measurement.
type Columns struct {
	Species  string
	Diameter string
	Biomass  string
}

// Loader reads raw observations from a CSV or XLSX file. Missing or
// non-numeric cells become NaN so the Filter stage can drop them explicitly.
type Loader struct {
	path string
	kind string // "csv" or "xlsx"
}

// NewLoader creates a loader for the given file, choosing the format from
// the file extension.
func NewLoader(path string) *Loader {
	kind := "xlsx"
	if strings.ToLower(filepath.Ext(path)) == ".csv" {
		kind = "csv"
	}
	return &Loader{path: path, kind: kind}
}

// Load reads the file and maps the named columns onto observations. The
// first row is the header; header matching is case-insensitive after
// trimming whitespace.
func (l *Loader) Load(cols Columns) ([]Observation, error) {
	var rows [][]string
	var err error

	switch l.kind {
	case "csv":
		rows, err = l.readCSV()
	default:
		rows, err = l.readXLSX()
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, errors.Newf("dataset: %s must have a header row and at least one data row", l.path)
	}

	speciesIdx, err := columnIndex(rows[0], cols.Species)
	if err != nil {
		return nil, err
	}
	diameterIdx, err := columnIndex(rows[0], cols.Diameter)
	if err != nil {
		return nil, err
	}
	biomassIdx, err := columnIndex(rows[0], cols.Biomass)
	if err != nil {
		return nil, err
	}

	obs := make([]Observation, 0, len(rows)-1)
	for _, row := range rows[1:] {
		obs = append(obs, Observation{
			Species:  cell(row, speciesIdx),
			Diameter: parseCell(row, diameterIdx),
			Biomass:  parseCell(row, biomassIdx),
		})
	}
	return obs, nil
}

func (l *Loader) readCSV() ([][]string, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: open CSV %s", l.path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: read CSV %s", l.path)
	}
	return rows, nil
}

func (l *Loader) readXLSX() ([][]string, error) {
	f, err := excelize.OpenFile(l.path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: open XLSX %s", l.path)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: read sheet %q of %s", sheet, l.path)
	}
	return rows, nil
}

func columnIndex(header []string, name string) (int, error) {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), strings.TrimSpace(name)) {
			return i, nil
		}
	}
	return 0, errors.Newf("dataset: column %q not found in header %v", name, header)
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseCell parses a numeric cell, returning the missing marker for empty
// or unparseable values.
func parseCell(row []string, idx int) float64 {
	raw := cell(row, idx)
	if raw == "" {
		return Missing()
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Missing()
	}
	return v
}
