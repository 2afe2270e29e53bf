package parser

import (
	"errors"
	"fmt"

	"github.com/nh-ronald-wang/sheetrecon/pkg/sheetrecon/models"
)

// ErrMissingHeaderRow indicates header mode was requested but the source
// has no row inside the address range.
var ErrMissingHeaderRow = errors.New("missing header row")

// ErrSourceOrdering indicates the row source broke its strictly-increasing
// index contract. The breach is fatal to the read operation in progress.
var ErrSourceOrdering = errors.New("row source ordering violation")

// WidthSource selects which row fixes the output width when the address
// range's column bound is unbounded.
type WidthSource int

const (
	// WidthFromHeader sizes output rows to the header row's shape, falling
	// back to the first data row when no header is consumed.
	WidthFromHeader WidthSource = iota
	// WidthFromFirstDataRow sizes output rows to the first data row's
	// shape, ignoring the header row's shape.
	WidthFromFirstDataRow
)

// Config carries the reconciliation policy for one read operation.
type Config struct {
	// KeepUndefinedRows retains undefined row positions as all-null
	// records instead of compacting them away.
	KeepUndefinedRows bool
	// Header consumes the first in-range row as column names, excluded
	// from data output.
	Header bool
	// WidthFrom fixes the output width when the column bound is
	// unbounded; ignored for column-bounded ranges.
	WidthFrom WidthSource
}

type state int

const (
	stateBeforeHeader state = iota
	stateAwaitingRow
	stateDraining
	stateDone
)

// Reconciler consumes a RowSource filtered to an AddressRange, classifies
// each row position as defined or undefined, and emits the output sequence
// under the configured policy. One Reconciler serves exactly one traversal;
// it owns its cursor for the duration and is not safe for concurrent use.
type Reconciler struct {
	src RowSource
	rng AddressRange
	cfg Config

	state     state
	nextIndex int  // next row position the cursor expects
	lastSeen  int  // last index the source yielded, for ordering checks
	exhausted bool // source returned ok=false (or left the range)

	width    int
	widthSet bool
	names    []string

	hold *models.RawRow // at most one row of lookahead
	err  error
}

// NewReconciler builds the state machine for one traversal of src scoped
// to rng.
func NewReconciler(src RowSource, rng AddressRange, cfg Config) *Reconciler {
	rc := &Reconciler{
		src:       src,
		rng:       rng,
		cfg:       cfg,
		nextIndex: rng.FirstRow,
	}
	if count, bounded := rng.ColumnCount(); bounded {
		rc.width = count
		rc.widthSet = true
	}
	if cfg.Header {
		rc.state = stateBeforeHeader
	} else {
		rc.state = stateAwaitingRow
	}
	return rc
}

// Names returns the column names extracted from the header row, consuming
// it if data emission has not started yet. It fails when the reconciler
// was not configured with a header.
func (rc *Reconciler) Names() ([]string, error) {
	if !rc.cfg.Header {
		return nil, errors.New("reconciler has no header row configured")
	}
	if rc.state == stateBeforeHeader {
		if err := rc.consumeHeader(); err != nil {
			rc.fail(err)
			return nil, err
		}
	}
	if rc.err != nil {
		return nil, rc.err
	}
	return rc.names, nil
}

// Next emits the next output row. ok is false once the sequence is
// complete. After an error every subsequent call returns the same error.
func (rc *Reconciler) Next() (models.OutputRow, bool, error) {
	if rc.err != nil {
		return models.OutputRow{}, false, rc.err
	}

	for {
		switch rc.state {
		case stateBeforeHeader:
			if err := rc.consumeHeader(); err != nil {
				rc.fail(err)
				return models.OutputRow{}, false, err
			}

		case stateAwaitingRow:
			if rc.hold != nil {
				if rc.nextIndex < rc.hold.Index {
					// Gap before the held row.
					if !rc.cfg.KeepUndefinedRows {
						rc.nextIndex = rc.hold.Index
						continue
					}
					out := SyntheticRow(rc.nextIndex, rc.width)
					rc.nextIndex++
					return out, true, nil
				}
				row := *rc.hold
				rc.hold = nil
				rc.nextIndex = row.Index + 1
				if IsBlankRow(row) {
					if rc.cfg.KeepUndefinedRows {
						return SyntheticRow(row.Index, rc.width), true, nil
					}
					continue
				}
				return Project(row, rc.rng, rc.width), true, nil
			}

			row, ok, err := rc.pull()
			if err != nil {
				rc.fail(err)
				return models.OutputRow{}, false, err
			}
			if !ok {
				rc.state = stateDraining
				continue
			}
			rc.hold = &row
			rc.resolveWidth(row)

		case stateDraining:
			if rc.cfg.KeepUndefinedRows && rc.rng.RowBounded() && rc.nextIndex <= rc.rng.LastRow {
				out := SyntheticRow(rc.nextIndex, rc.width)
				rc.nextIndex++
				return out, true, nil
			}
			rc.state = stateDone

		case stateDone:
			return models.OutputRow{}, false, nil
		}
	}
}

// consumeHeader takes the first in-range row as column names and moves the
// cursor past it.
func (rc *Reconciler) consumeHeader() error {
	row, ok, err := rc.pull()
	if err != nil {
		return err
	}
	if !ok {
		return ErrMissingHeaderRow
	}

	if !rc.widthSet && rc.cfg.WidthFrom == WidthFromHeader {
		rc.width = rowWidth(row, rc.rng)
		rc.widthSet = true
	}
	nameWidth := rc.width
	if !rc.widthSet {
		nameWidth = rowWidth(row, rc.rng)
	}
	rc.names = ExtractNames(row, rc.rng, nameWidth)
	rc.nextIndex = row.Index + 1
	rc.state = stateAwaitingRow
	return nil
}

// pull reads the next raw row inside the range, enforcing the source's
// strictly-increasing index contract. Rows before the range are skipped;
// the first row past a bounded range ends the traversal, since indices
// only grow from there.
func (rc *Reconciler) pull() (models.RawRow, bool, error) {
	if rc.exhausted {
		return models.RawRow{}, false, nil
	}
	for {
		row, ok, err := rc.src.Next()
		if err != nil {
			return models.RawRow{}, false, err
		}
		if !ok {
			rc.exhausted = true
			return models.RawRow{}, false, nil
		}
		if row.Index <= rc.lastSeen {
			return models.RawRow{}, false, fmt.Errorf("%w: row %d after row %d", ErrSourceOrdering, row.Index, rc.lastSeen)
		}
		rc.lastSeen = row.Index
		if row.Index < rc.rng.FirstRow {
			continue
		}
		if !rc.rng.ContainsRow(row.Index) {
			rc.exhausted = true
			return models.RawRow{}, false, nil
		}
		return row, true, nil
	}
}

// resolveWidth fixes the output width at the first data row's shape when
// the range's column bound did not fix it already.
func (rc *Reconciler) resolveWidth(row models.RawRow) {
	if rc.widthSet {
		return
	}
	rc.width = rowWidth(row, rc.rng)
	rc.widthSet = true
}

func (rc *Reconciler) fail(err error) {
	rc.err = err
	rc.state = stateDone
}
