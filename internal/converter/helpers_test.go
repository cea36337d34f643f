package converter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves a workbook whose only sheet is named sheet. Each remark
// lands in column G starting at row 3, below two header rows.
func writeWorkbook(t *testing.T, dir, name, sheet string, remarks ...string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	require.NoError(t, f.SetCellValue(sheet, "A1", "Open Items"))
	require.NoError(t, f.SetCellValue(sheet, "A2", "No."))
	require.NoError(t, f.SetCellValue(sheet, "G2", "Remarks"))

	for i, r := range remarks {
		row := i + 3
		cell, err := excelize.CoordinatesToCellName(1, row)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, i+1))
		if r == "" {
			continue
		}
		cell, err = excelize.CoordinatesToCellName(RemarkColumn+1, row)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, r))
	}

	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	return path
}
