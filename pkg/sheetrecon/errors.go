package sheetrecon

import (
	"errors"
	"fmt"

	"github.com/nh-ronald-wang/sheetrecon/pkg/sheetrecon/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrSheetNotFound indicates the addressed sheet is absent from the
// workbook. Surfaced immediately, before any row is read.
var ErrSheetNotFound = parser.ErrSheetNotFound

// ErrMalformedAddress indicates an address string that cannot be parsed.
// Surfaced before any row is read.
var ErrMalformedAddress = parser.ErrMalformedAddress

// ErrMissingHeaderRow indicates a header was requested but no in-range row
// exists. Surfaced on the first pull.
var ErrMissingHeaderRow = parser.ErrMissingHeaderRow

// ErrSourceOrdering indicates the row source broke its strictly-increasing
// index contract mid-stream. It aborts the remaining output sequence.
var ErrSourceOrdering = parser.ErrSourceOrdering

// ReadError wraps a failure of one read operation with its context.
type ReadError struct {
	Sheet string
	Stage string // "address", "open", "header", "rows"
	Err   error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read error in sheet %q (%s): %v", e.Sheet, e.Stage, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// NewReadError creates a new ReadError.
func NewReadError(sheet, stage string, err error) *ReadError {
	return &ReadError{
		Sheet: sheet,
		Stage: stage,
		Err:   err,
	}
}
