package parser

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/nh-ronald-wang/sheetrecon/pkg/sheetrecon/models"
)

// ErrSheetNotFound indicates the addressed sheet is absent from the
// workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// RowSource produces a lazy, strictly row-index-increasing sequence of raw
// rows for one sheet. A row may be entirely absent for any index (gaps
// represent omitted rows). Next returns ok=false once the source is
// exhausted. Sources are not restartable.
type RowSource interface {
	Next() (row models.RawRow, ok bool, err error)
}

// sliceSource replays a fixed slice of raw rows.
type sliceSource struct {
	rows []models.RawRow
	pos  int
}

// NewSliceSource returns a RowSource backed by an in-memory slice. The
// rows are replayed as given; callers are responsible for index ordering.
func NewSliceSource(rows []models.RawRow) RowSource {
	return &sliceSource{rows: rows}
}

func (s *sliceSource) Next() (models.RawRow, bool, error) {
	if s.pos >= len(s.rows) {
		return models.RawRow{}, false, nil
	}
	row := s.rows[s.pos]
	s.pos++
	return row, true, nil
}

// sheetSource adapts one excelize sheet to the RowSource contract.
type sheetSource struct {
	rows []models.RawRow
	pos  int
}

// NewSheetSource opens the named sheet of an already-open workbook as a
// RowSource. Rows with no stored content decode as absent: the source
// skips them so gaps in the returned index sequence represent them. A
// stored cell holding the empty string is indistinguishable from an absent
// cell at this boundary and is treated as absent.
func NewSheetSource(f *excelize.File, sheetName string) (RowSource, error) {
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	var rows []models.RawRow
	for rowIdx, cols := range raw {
		var cells []models.Cell
		for colIdx, cellValue := range cols {
			if cellValue == "" {
				continue
			}
			cells = append(cells, models.Cell{
				Column: colIdx + 1,
				Value:  parseValue(cellValue),
			})
		}
		if len(cells) > 0 {
			rows = append(rows, models.RawRow{Index: rowIdx + 1, Cells: cells})
		}
	}

	return &sheetSource{rows: rows}, nil
}

func (s *sheetSource) Next() (models.RawRow, bool, error) {
	if s.pos >= len(s.rows) {
		return models.RawRow{}, false, nil
	}
	row := s.rows[s.pos]
	s.pos++
	return row, true, nil
}

// errorLiterals are the spreadsheet error codes a raw cell can carry.
var errorLiterals = map[string]bool{
	"#NULL!":  true,
	"#DIV/0!": true,
	"#VALUE!": true,
	"#REF!":   true,
	"#NAME?":  true,
	"#NUM!":   true,
	"#N/A":    true,
	"#SPILL!": true,
	"#CALC!":  true,
}

// parseValue converts a raw cell string to a typed cell value: decimal
// numbers become Numeric, exact TRUE/FALSE become Boolean, known error
// literals become Error, everything else stays Text.
func parseValue(s string) models.CellValue {
	if d, err := decimal.NewFromString(s); err == nil {
		return models.Numeric(d)
	}
	switch s {
	case "TRUE":
		return models.Boolean(true)
	case "FALSE":
		return models.Boolean(false)
	}
	if errorLiterals[s] {
		return models.ErrorCode(s)
	}
	return models.Text(s)
}
