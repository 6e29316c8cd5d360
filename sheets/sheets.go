// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheets

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/quickly-score/models"
)

// ErrParse is returned for any payload that cannot be read as a sheet.
var ErrParse = errors.New("failed to parse sheet")

// Column order of header-less import sheets
const (
	rubricColSet = iota
	rubricColItem
	rubricColDescription
	rubricColMaxScore
)

const (
	contestantColName = iota
	contestantColInfo
)

// ReadRubricRows reads setName, itemName, description, maxScore rows.
func ReadRubricRows(filename string, r io.Reader) ([]models.RubricRow, error) {
	records, err := readRecords(filename, r)
	if err != nil {
		return nil, err
	}

	rows := make([]models.RubricRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, models.RubricRow{
			SetName:     cell(rec, rubricColSet),
			ItemName:    cell(rec, rubricColItem),
			Description: cell(rec, rubricColDescription),
			MaxScore:    parseScore(cell(rec, rubricColMaxScore)),
		})
	}
	return rows, nil
}

// ReadContestantRows reads name, info rows.
func ReadContestantRows(filename string, r io.Reader) ([]models.ContestantRow, error) {
	records, err := readRecords(filename, r)
	if err != nil {
		return nil, err
	}

	rows := make([]models.ContestantRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, models.ContestantRow{
			Name: cell(rec, contestantColName),
			Info: cell(rec, contestantColInfo),
		})
	}
	return rows, nil
}

// readRecords picks a reader by file extension and drops blank rows.
func readRecords(filename string, r io.Reader) ([][]string, error) {
	var (
		records [][]string
		err     error
	)

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv":
		records, err = readCSV(r)
	case ".xlsx", ".xlsm":
		records, err = readXLSX(r)
	default:
		return nil, fmt.Errorf("%w: unsupported file type %q", ErrParse, ext)
	}
	if err != nil {
		return nil, err
	}

	out := records[:0]
	for _, rec := range records {
		if !isBlank(rec) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return records, nil
}

// readXLSX reads the first worksheet.
func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	defer f.Close()

	sheetNames := f.GetSheetList()
	if len(sheetNames) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrParse)
	}

	records, err := f.GetRows(sheetNames[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return records, nil
}

func cell(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func isBlank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseScore accepts integers and whole-number floats such as "10.0".
// Anything else reads as 0.
func parseScore(s string) int {
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(math.Round(f))
}
