package parser

import "github.com/nh-ronald-wang/sheetrecon/pkg/sheetrecon/models"

// Project maps a raw row's stored cells into fixed-width output slots
// ordered by column position within the range. Slot i holds the cell at
// column rng.FirstCol+i; slots without a stored cell stay Null. Cells
// outside the range's column bounds are ignored. Projection is pure: the
// same row and range always yield the same output.
func Project(row models.RawRow, rng AddressRange, width int) models.OutputRow {
	values := make([]models.CellValue, width)
	for i := range values {
		values[i] = models.Null()
	}
	for _, c := range row.Cells {
		if !rng.ContainsColumn(c.Column) {
			continue
		}
		slot := c.Column - rng.FirstCol
		if slot >= 0 && slot < width {
			values[slot] = c.Value
		}
	}
	return models.OutputRow{Index: row.Index, Values: values}
}

// SyntheticRow builds the all-null record emitted for an undefined row
// position.
func SyntheticRow(index, width int) models.OutputRow {
	values := make([]models.CellValue, width)
	for i := range values {
		values[i] = models.Null()
	}
	return models.OutputRow{Index: index, Values: values}
}

// rowWidth is the number of slots needed to hold the row's in-range
// cells, measured from the range's first column.
func rowWidth(row models.RawRow, rng AddressRange) int {
	width := 0
	for _, c := range row.Cells {
		if !rng.ContainsColumn(c.Column) {
			continue
		}
		if w := c.Column - rng.FirstCol + 1; w > width {
			width = w
		}
	}
	return width
}
