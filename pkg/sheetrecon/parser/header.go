package parser

import (
	"strconv"

	"github.com/nh-ronald-wang/sheetrecon/pkg/sheetrecon/models"
)

// ExtractNames derives column names from a header row. Each of the width
// slots takes the textual rendering of its stored cell; slots whose cell
// is blank or absent fall back to the slot's 1-based offset within the
// range, rendered as text. Names are not deduplicated; uniqueness, if
// needed, belongs to the schema-binding consumer.
func ExtractNames(row models.RawRow, rng AddressRange, width int) []string {
	names := make([]string, width)
	for i := range names {
		names[i] = strconv.Itoa(i + 1)
	}
	for _, c := range row.Cells {
		if !rng.ContainsColumn(c.Column) || IsBlank(c.Value) {
			continue
		}
		slot := c.Column - rng.FirstCol
		if slot >= 0 && slot < width {
			names[slot] = c.Value.String()
		}
	}
	return names
}
