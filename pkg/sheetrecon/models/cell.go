// Package models defines data structures for sheet reconciliation.
package models

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind discriminates the value stored in a CellValue.
type Kind int

const (
	// KindNull is a cell with no stored value at all.
	KindNull Kind = iota
	// KindText is stored textual content, including whitespace-only text.
	KindText
	// KindNumeric is a numeric value.
	KindNumeric
	// KindBoolean is a boolean value.
	KindBoolean
	// KindError is a spreadsheet error literal such as "#DIV/0!".
	KindError
)

// CellValue is the tagged value held by one cell. The zero value is Null.
type CellValue struct {
	Kind    Kind
	Text    string
	Number  decimal.Decimal
	Boolean bool
	ErrCode string
}

// Null returns the null cell value.
func Null() CellValue {
	return CellValue{Kind: KindNull}
}

// Text returns a textual cell value. Whitespace-only text is stored
// content, distinct from Null.
func Text(s string) CellValue {
	return CellValue{Kind: KindText, Text: s}
}

// Numeric returns a numeric cell value.
func Numeric(d decimal.Decimal) CellValue {
	return CellValue{Kind: KindNumeric, Number: d}
}

// Boolean returns a boolean cell value.
func Boolean(b bool) CellValue {
	return CellValue{Kind: KindBoolean, Boolean: b}
}

// ErrorCode returns an error-literal cell value.
func ErrorCode(code string) CellValue {
	return CellValue{Kind: KindError, ErrCode: code}
}

// IsNull reports whether the cell holds no stored value.
func (v CellValue) IsNull() bool {
	return v.Kind == KindNull
}

// String renders the cell value for display.
func (v CellValue) String() string {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumeric:
		return v.Number.String()
	case KindBoolean:
		if v.Boolean {
			return "TRUE"
		}
		return "FALSE"
	case KindError:
		return v.ErrCode
	default:
		return ""
	}
}

// MarshalJSON encodes Null as JSON null, Text as a string, Numeric as a
// number, Boolean as a bool and Error as {"error": code}.
func (v CellValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNull:
		return []byte("null"), nil
	case KindText:
		return json.Marshal(v.Text)
	case KindNumeric:
		return []byte(v.Number.String()), nil
	case KindBoolean:
		return json.Marshal(v.Boolean)
	case KindError:
		return json.Marshal(map[string]string{"error": v.ErrCode})
	default:
		return nil, fmt.Errorf("unknown cell value kind %d", v.Kind)
	}
}
