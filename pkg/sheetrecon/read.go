package sheetrecon

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/nh-ronald-wang/sheetrecon/pkg/sheetrecon/models"
	"github.com/nh-ronald-wang/sheetrecon/pkg/sheetrecon/parser"
)

// Rows is the lazy, finite, non-restartable output sequence of one read
// operation. Restarting requires a fresh Read call, which opens a fresh
// row source.
type Rows struct {
	rc    *parser.Reconciler
	sheet string
}

// Next returns the next reconciled row. ok is false once the sequence is
// complete. Errors are sticky: once Next fails, every later call fails the
// same way.
func (r *Rows) Next() (row models.OutputRow, ok bool, err error) {
	row, ok, err = r.rc.Next()
	if err != nil {
		return models.OutputRow{}, false, NewReadError(r.sheet, "rows", err)
	}
	return row, ok, nil
}

// Names returns the column names extracted from the header row. It is
// only available when the read was configured with a header.
func (r *Rows) Names() ([]string, error) {
	names, err := r.rc.Names()
	if err != nil {
		return nil, NewReadError(r.sheet, "header", err)
	}
	return names, nil
}

// Collect drains the sequence into a slice.
func (r *Rows) Collect() ([]models.OutputRow, error) {
	var out []models.OutputRow
	for {
		row, ok, err := r.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, row)
	}
}

// Read scopes a read operation to the addressed region of an already-open
// workbook and returns its lazy output sequence. The address takes the
// form 'Sheet'!A1 (unbounded right and down) or 'Sheet'!A1:C10.
func Read(f *excelize.File, address string, opts Options) (*Rows, error) {
	rng, err := parser.ParseAddress(address)
	if err != nil {
		return nil, NewReadError("", "address", err)
	}

	src, err := parser.NewSheetSource(f, rng.Sheet)
	if err != nil {
		return nil, NewReadError(rng.Sheet, "open", err)
	}

	return ReadFrom(src, rng, opts), nil
}

// ReadFrom runs a read operation against any RowSource, for callers that
// decode rows themselves.
func ReadFrom(src parser.RowSource, rng parser.AddressRange, opts Options) *Rows {
	cfg := parser.Config{
		KeepUndefinedRows: opts.ShouldKeepUndefinedRows(),
		Header:            opts.ShouldUseHeader(),
		WidthFrom:         opts.EffectiveWidthFrom(),
	}
	return &Rows{
		rc:    parser.NewReconciler(src, rng, cfg),
		sheet: rng.Sheet,
	}
}

// ReadFile opens a workbook file and runs a read operation against it.
// The workbook is fully decoded before Rows is returned, so the file
// handle does not outlive this call.
func ReadFile(path, address string, opts Options) (*Rows, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f, address, opts)
}
