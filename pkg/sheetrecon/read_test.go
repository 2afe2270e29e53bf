package sheetrecon

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/nh-ronald-wang/sheetrecon/pkg/sheetrecon/models"
	"github.com/nh-ronald-wang/sheetrecon/pkg/sheetrecon/parser"
)

// writeFixture builds a workbook with a header row, a numeric data row, a
// whitespace-only row, a gap at row 4 and a final data row at row 5.
func writeFixture(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	f.SetCellValue(sheet, "A1", "id")
	f.SetCellValue(sheet, "B1", "name")
	f.SetCellValue(sheet, "C1", "qty")
	f.SetCellValue(sheet, "A2", 1)
	f.SetCellValue(sheet, "B2", "ada")
	f.SetCellValue(sheet, "C2", 10)
	f.SetCellValue(sheet, "B3", " ")
	f.SetCellValue(sheet, "A5", 2)
	f.SetCellValue(sheet, "B5", "bob")

	path := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save fixture: %v", err)
	}
	return path
}

func openFixture(t *testing.T) *excelize.File {
	t.Helper()
	f, err := excelize.OpenFile(writeFixture(t))
	if err != nil {
		t.Fatalf("failed to open fixture: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestReadCompacting(t *testing.T) {
	f := openFixture(t)

	rows, err := Read(f, "'Sheet1'!A1:C6", DefaultOptions())
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	out, err := rows.Collect()
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	// Rows 4 and 6 have no content; row 3 survives on whitespace alone.
	want := []int{1, 2, 3, 5}
	var got []int
	for _, r := range out {
		got = append(got, r.Index)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("indices = %v, want %v", got, want)
	}

	if out[1].Values[0].Kind != models.KindNumeric {
		t.Errorf("A2 decoded as %v, want numeric", out[1].Values[0].Kind)
	}
	if v := out[2].Values[1]; v.Kind != models.KindText || v.Text != " " {
		t.Errorf("B3 = %+v, want whitespace text", v)
	}
}

func TestReadKeepUndefinedRows(t *testing.T) {
	f := openFixture(t)

	rows, err := Read(f, "'Sheet1'!A1:C6", Options{KeepUndefinedRows: Bool(true)})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	out, err := rows.Collect()
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if len(out) != 6 {
		t.Fatalf("len(out) = %d, want 6", len(out))
	}
	for i, r := range out {
		if r.Index != i+1 {
			t.Errorf("out[%d].Index = %d, want %d", i, r.Index, i+1)
		}
		if len(r.Values) != 3 {
			t.Errorf("row %d: width = %d, want 3", r.Index, len(r.Values))
		}
	}
	for _, idx := range []int{4, 6} {
		if !out[idx-1].Synthetic() {
			t.Errorf("row %d should be all-null", idx)
		}
	}
	if out[2].Synthetic() {
		t.Error("whitespace-only row 3 should not be all-null")
	}
}

func TestReadWithHeader(t *testing.T) {
	f := openFixture(t)

	rows, err := Read(f, "'Sheet1'!A1:C6", Options{Header: Bool(true), KeepUndefinedRows: Bool(true)})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	names, err := rows.Names()
	if err != nil {
		t.Fatalf("Names failed: %v", err)
	}
	if want := []string{"id", "name", "qty"}; !reflect.DeepEqual(names, want) {
		t.Errorf("Names() = %v, want %v", names, want)
	}

	out, err := rows.Collect()
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(out) == 0 || out[0].Index != 2 {
		t.Fatalf("data should start at row 2, got %+v", out)
	}
	if len(out) != 5 {
		t.Errorf("len(out) = %d, want 5 (rows 2-6)", len(out))
	}
}

func TestReadMalformedAddress(t *testing.T) {
	f := openFixture(t)

	_, err := Read(f, "A1:C10", DefaultOptions())
	if !errors.Is(err, ErrMalformedAddress) {
		t.Errorf("Read error = %v, want ErrMalformedAddress", err)
	}

	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("Read error = %T, want *ReadError", err)
	}
	if readErr.Stage != "address" {
		t.Errorf("Stage = %q, want %q", readErr.Stage, "address")
	}
}

func TestReadSheetNotFound(t *testing.T) {
	f := openFixture(t)

	_, err := Read(f, "'NoSuchSheet'!A1", DefaultOptions())
	if !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("Read error = %v, want ErrSheetNotFound", err)
	}
}

func TestReadFile(t *testing.T) {
	path := writeFixture(t)

	rows, err := ReadFile(path, "'Sheet1'!A1", DefaultOptions())
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	out, err := rows.Collect()
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(out) != 4 {
		t.Errorf("len(out) = %d, want 4", len(out))
	}
}

func TestReadFileNotFound(t *testing.T) {
	_, err := ReadFile("no-such-file.xlsx", "'Sheet1'!A1", DefaultOptions())
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("ReadFile error = %v, want ErrFileNotFound", err)
	}
}

func mustParse(t *testing.T, address string) parser.AddressRange {
	t.Helper()
	rng, err := parser.ParseAddress(address)
	if err != nil {
		t.Fatalf("ParseAddress(%q) failed: %v", address, err)
	}
	return rng
}

// descendingSource breaks the strictly-increasing index contract on its
// second pull.
type descendingSource struct {
	calls int
}

func (s *descendingSource) Next() (models.RawRow, bool, error) {
	s.calls++
	switch s.calls {
	case 1:
		return models.RawRow{Index: 5, Cells: []models.Cell{{Column: 1, Value: models.Text("a")}}}, true, nil
	case 2:
		return models.RawRow{Index: 4, Cells: []models.Cell{{Column: 1, Value: models.Text("b")}}}, true, nil
	default:
		return models.RawRow{}, false, nil
	}
}

func TestReadFromFakeSourceOrderingViolation(t *testing.T) {
	rng := mustParse(t, "'S'!A1:B10")
	src := &descendingSource{}

	rows := ReadFrom(src, rng, DefaultOptions())
	if _, _, err := rows.Next(); err != nil {
		t.Fatalf("first Next() failed: %v", err)
	}
	_, _, err := rows.Next()
	if !errors.Is(err, ErrSourceOrdering) {
		t.Fatalf("Next() error = %v, want ErrSourceOrdering", err)
	}
	var readErr *ReadError
	if !errors.As(err, &readErr) || readErr.Stage != "rows" {
		t.Errorf("error = %v, want *ReadError at stage rows", err)
	}
}
