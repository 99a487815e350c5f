package rostermail

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/rostermail/rostermail-go/pkg/rostermail/models"
	"github.com/rostermail/rostermail-go/pkg/rostermail/parser"
)

// Extract opens the workbook at path and locates the schedule table on the
// configured sheet.
func Extract(path string, opts Options) (*models.ScheduleTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	book := filepath.Base(path)
	sheet := opts.sheetName()
	if !hasSheet(f, sheet) {
		return nil, &LoadError{Book: book, Sheet: sheet, Err: ErrSheetNotFound}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &LoadError{Book: book, Sheet: sheet, Err: err}
	}

	locator, err := parser.NewLocator(opts.Strategy)
	if err != nil {
		return nil, err
	}
	table, err := locator.Locate(rows)
	if err != nil {
		return nil, &LoadError{Book: book, Sheet: sheet, Err: err}
	}
	return table, nil
}

// hasSheet matches the sheet name exactly. excelize's own index lookup is
// case-insensitive, which would accept "schedule" for "Schedule".
func hasSheet(f *excelize.File, name string) bool {
	for _, s := range f.GetSheetList() {
		if s == name {
			return true
		}
	}
	return false
}
