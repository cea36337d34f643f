package converter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nconklindev/exclar/internal/types"

	"github.com/xuri/excelize/v2"
)

const (
	SheetName = "Open Items List"

	// RemarkColumn is the zero-based index of the remarks column (G).
	RemarkColumn = 6

	// HeaderRows is the number of leading rows that never carry remarks.
	HeaderRows = 2
)

// ValidateFileName checks the input name. The extension check is case-sensitive.
func ValidateFileName(path string) error {
	if !strings.HasSuffix(filepath.Base(path), ".xlsx") {
		return ErrInvalidFileType
	}
	return nil
}

// LoadRows opens the workbook and returns every row of the "Open Items List"
// sheet.
func LoadRows(path string) ([]types.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if !hasSheet(f, SheetName) {
		return nil, &SheetNotFoundError{Sheet: SheetName}
	}

	rows, err := f.GetRows(SheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", SheetName, err)
	}

	out := make([]types.Row, len(rows))
	for i, row := range rows {
		out[i] = types.Row(row)
	}
	return out, nil
}

// hasSheet matches the sheet name exactly; excelize lookups ignore case.
func hasSheet(f *excelize.File, name string) bool {
	for _, s := range f.GetSheetList() {
		if s == name {
			return true
		}
	}
	return false
}

// ExtractTexts returns the non-empty remark cells after the header rows, in
// row order.
func ExtractTexts(rows []types.Row) []string {
	if len(rows) <= HeaderRows {
		return nil
	}

	var texts []string
	for _, row := range rows[HeaderRows:] {
		text, ok := row.Cell(RemarkColumn)
		if !ok || text == "" {
			continue
		}
		texts = append(texts, text)
	}
	return texts
}
