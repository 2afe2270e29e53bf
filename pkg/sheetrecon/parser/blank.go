package parser

import "github.com/nh-ronald-wang/sheetrecon/pkg/sheetrecon/models"

// IsBlank reports whether a cell holds no stored value. Text content is
// never blank, even when it consists solely of whitespace: whitespace text
// is stored content and must stay distinguishable from "no content at all".
func IsBlank(v models.CellValue) bool {
	return v.IsNull()
}

// IsBlankRow reports whether every cell of the row is blank, or the row
// has no cells. A row entirely absent from the raw source is equivalent to
// an all-blank row for reconciliation purposes; both are undefined at that
// position.
func IsBlankRow(row models.RawRow) bool {
	for _, c := range row.Cells {
		if !IsBlank(c.Value) {
			return false
		}
	}
	return true
}
