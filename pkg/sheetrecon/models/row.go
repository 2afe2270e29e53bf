package models

// Cell is one stored cell of a raw row.
type Cell struct {
	// Column is the 1-based column index within the sheet.
	Column int `json:"column"`
	// Value is the stored cell value.
	Value CellValue `json:"value"`
}

// RawRow is a row as produced by the underlying decoder: sparse, keyed by
// its original 1-based position. Column indices are unique within a row.
// A row may be entirely absent from a source; absence carries the same
// meaning as an all-blank row during reconciliation.
type RawRow struct {
	// Index is the 1-based row position within the sheet.
	Index int `json:"index"`
	// Cells holds the stored cells in ascending column order.
	Cells []Cell `json:"cells"`
}

// OutputRow is one reconciled record. Values has a fixed length for all
// rows of one read operation, sized to the address range's column count.
type OutputRow struct {
	// Index is the sheet row position this record represents. For a
	// synthetic gap-filled row it is the position filled, not an index
	// taken from any raw row.
	Index int `json:"index"`
	// Values holds one CellValue per column slot; absent columns are Null.
	Values []CellValue `json:"values"`
}

// Synthetic reports whether every value of the row is null, which is the
// shape of gap-filled and blank-row records.
func (r OutputRow) Synthetic() bool {
	for _, v := range r.Values {
		if !v.IsNull() {
			return false
		}
	}
	return true
}
