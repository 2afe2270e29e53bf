package parser

import "github.com/xuri/excelize/v2"

// DetectUsedRange finds the bounding box of non-empty cells in a sheet and
// returns it as a fully bounded AddressRange. ok is false when the sheet
// holds no content at all.
func DetectUsedRange(f *excelize.File, sheetName string) (rng AddressRange, ok bool, err error) {
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return AddressRange{}, false, nil
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return AddressRange{}, false, err
	}

	minRow, maxRow, minCol, maxCol := -1, -1, -1, -1
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}
	if minRow < 0 {
		return AddressRange{}, false, nil
	}

	return AddressRange{
		Sheet:    sheetName,
		FirstRow: minRow + 1,
		LastRow:  maxRow + 1,
		FirstCol: minCol + 1,
		LastCol:  maxCol + 1,
	}, true, nil
}
