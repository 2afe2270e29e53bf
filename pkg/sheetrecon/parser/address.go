// Package parser implements the sparse-row reconciliation pipeline:
// address ranges, blank classification, row sources and the reconciler.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Unbounded marks an address range with no last row or last column.
const Unbounded = -1

// AddressRange is the rectangular sheet region one read operation is
// scoped to. Row and column indices are 1-based; LastRow and LastCol may
// be Unbounded. Immutable once parsed.
type AddressRange struct {
	Sheet    string
	FirstRow int
	LastRow  int
	FirstCol int
	LastCol  int
}

// ErrMalformedAddress indicates an address string that cannot be parsed.
var ErrMalformedAddress = errors.New("malformed address")

// ParseAddress parses an address of the form 'Sheet'!A1 or 'Sheet'!A1:C10.
// The single-anchor form produces a range unbounded to the right and down.
// Quotes around the sheet name and $ anchors in cell references are
// accepted and stripped.
func ParseAddress(address string) (AddressRange, error) {
	idx := strings.LastIndex(address, "!")
	if idx < 0 {
		return AddressRange{}, fmt.Errorf("%w: missing sheet name in %q", ErrMalformedAddress, address)
	}

	sheet := strings.Trim(strings.TrimSpace(address[:idx]), "'")
	if sheet == "" {
		return AddressRange{}, fmt.Errorf("%w: missing sheet name in %q", ErrMalformedAddress, address)
	}

	ref := strings.ReplaceAll(address[idx+1:], "$", "")
	parts := strings.Split(ref, ":")

	switch len(parts) {
	case 1:
		col, row, err := excelize.CellNameToCoordinates(parts[0])
		if err != nil {
			return AddressRange{}, fmt.Errorf("%w: bad cell reference %q: %v", ErrMalformedAddress, parts[0], err)
		}
		return AddressRange{
			Sheet:    sheet,
			FirstRow: row,
			LastRow:  Unbounded,
			FirstCol: col,
			LastCol:  Unbounded,
		}, nil
	case 2:
		firstCol, firstRow, err := excelize.CellNameToCoordinates(parts[0])
		if err != nil {
			return AddressRange{}, fmt.Errorf("%w: bad cell reference %q: %v", ErrMalformedAddress, parts[0], err)
		}
		lastCol, lastRow, err := excelize.CellNameToCoordinates(parts[1])
		if err != nil {
			return AddressRange{}, fmt.Errorf("%w: bad cell reference %q: %v", ErrMalformedAddress, parts[1], err)
		}
		if firstRow > lastRow || firstCol > lastCol {
			return AddressRange{}, fmt.Errorf("%w: first cell after last cell in %q", ErrMalformedAddress, address)
		}
		return AddressRange{
			Sheet:    sheet,
			FirstRow: firstRow,
			LastRow:  lastRow,
			FirstCol: firstCol,
			LastCol:  lastCol,
		}, nil
	default:
		return AddressRange{}, fmt.Errorf("%w: bad range %q", ErrMalformedAddress, ref)
	}
}

// RowBounded reports whether the range has a last row.
func (r AddressRange) RowBounded() bool {
	return r.LastRow != Unbounded
}

// ContainsRow reports whether the 1-based row index lies within the range.
func (r AddressRange) ContainsRow(row int) bool {
	return row >= r.FirstRow && (r.LastRow == Unbounded || row <= r.LastRow)
}

// ContainsColumn reports whether the 1-based column index lies within the
// range.
func (r AddressRange) ContainsColumn(col int) bool {
	return col >= r.FirstCol && (r.LastCol == Unbounded || col <= r.LastCol)
}

// Contains reports whether the cell position lies within the range.
func (r AddressRange) Contains(row, col int) bool {
	return r.ContainsRow(row) && r.ContainsColumn(col)
}

// ColumnCount returns the number of columns in the range and whether the
// column bound is defined. When the last column is unbounded the count is
// meaningless and bounded is false.
func (r AddressRange) ColumnCount() (count int, bounded bool) {
	if r.LastCol == Unbounded {
		return 0, false
	}
	return r.LastCol - r.FirstCol + 1, true
}

// String renders the range back to address notation.
func (r AddressRange) String() string {
	first, _ := excelize.CoordinatesToCellName(r.FirstCol, r.FirstRow)
	if !r.RowBounded() && r.LastCol == Unbounded {
		return fmt.Sprintf("'%s'!%s", r.Sheet, first)
	}
	lastRow := r.LastRow
	if lastRow == Unbounded {
		lastRow = r.FirstRow
	}
	lastCol := r.LastCol
	if lastCol == Unbounded {
		lastCol = r.FirstCol
	}
	last, _ := excelize.CoordinatesToCellName(lastCol, lastRow)
	return fmt.Sprintf("'%s'!%s:%s", r.Sheet, first, last)
}
