// Package sheetrecon reconciles the sparse rows of a spreadsheet sheet
// into a dense, schema-aligned sequence of records.
package sheetrecon

import "github.com/nh-ronald-wang/sheetrecon/pkg/sheetrecon/parser"

// WidthSource selects which row fixes the output width when the address
// range's column bound is unbounded.
type WidthSource = parser.WidthSource

const (
	// WidthFromHeader sizes output rows to the header row's shape.
	WidthFromHeader = parser.WidthFromHeader
	// WidthFromFirstDataRow sizes output rows to the first data row's shape.
	WidthFromFirstDataRow = parser.WidthFromFirstDataRow
)

// Options configures one read operation.
type Options struct {
	// KeepUndefinedRows retains undefined/blank row positions as all-null
	// records instead of compacting them away.
	// If nil, defaults to false.
	KeepUndefinedRows *bool
	// Header treats the first in-range row as column names, excluded from
	// data output.
	// If nil, defaults to false.
	Header *bool
	// WidthFrom fixes the output width for column-unbounded ranges.
	// If nil, defaults to WidthFromHeader when Header resolves to true,
	// WidthFromFirstDataRow otherwise.
	WidthFrom *WidthSource
}

// DefaultOptions returns default read options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldKeepUndefinedRows returns whether undefined row positions are
// materialized as all-null records.
func (o Options) ShouldKeepUndefinedRows() bool {
	if o.KeepUndefinedRows != nil {
		return *o.KeepUndefinedRows
	}
	return false
}

// ShouldUseHeader returns whether the first in-range row is consumed as
// column names.
func (o Options) ShouldUseHeader() bool {
	if o.Header != nil {
		return *o.Header
	}
	return false
}

// EffectiveWidthFrom returns the width-inference source to use.
func (o Options) EffectiveWidthFrom() WidthSource {
	if o.WidthFrom != nil {
		return *o.WidthFrom
	}
	if o.ShouldUseHeader() {
		return WidthFromHeader
	}
	return WidthFromFirstDataRow
}

// Bool returns a pointer to b, for filling the tri-state option fields.
func Bool(b bool) *bool {
	return &b
}
