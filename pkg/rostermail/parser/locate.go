// Package parser locates and projects schedule tables inside sheet dumps.
package parser

import (
	"fmt"
	"strings"

	"github.com/rostermail/rostermail-go/pkg/rostermail/models"
)

// Strategy selects how the locator finds the header and date rows.
type Strategy string

const (
	// StrategyDynamic scans for the header row anywhere in the sheet and
	// takes the row above it as the date axis. This is the primary
	// convention.
	StrategyDynamic Strategy = "dynamic"
	// StrategyFixed reads the date and header rows at fixed indices, the
	// layout of older schedule workbooks.
	StrategyFixed Strategy = "fixed"
)

// Required column labels. Matching is case-insensitive on trimmed cells.
var requiredLabels = []string{"Team", "Email", "Employee"}

// Locator finds the header and date axes inside a sheet dump.
type Locator interface {
	Locate(rows [][]string) (*models.ScheduleTable, error)
}

// NewLocator returns the locator for the given strategy. An empty strategy
// selects the dynamic scan.
func NewLocator(s Strategy) (Locator, error) {
	switch s {
	case StrategyDynamic, "":
		return DynamicScan{}, nil
	case StrategyFixed:
		return FixedOffset{DateRow: 1, HeaderRow: 2}, nil
	default:
		return nil, fmt.Errorf("unknown locator strategy %q", s)
	}
}

// DynamicScan scans rows top-down for the first row containing all required
// labels. The date axis is the row immediately above the header, so a header
// found at row 0 is rejected.
type DynamicScan struct{}

// Locate implements Locator.
func (DynamicScan) Locate(rows [][]string) (*models.ScheduleTable, error) {
	headerIdx := -1
	for i, row := range rows {
		if containsAll(row, requiredLabels) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, ErrHeaderNotFound
	}
	if headerIdx == 0 {
		return nil, fmt.Errorf("%w: header at first row leaves no room for a date row", ErrHeaderNotFound)
	}
	return buildTable(rows, headerIdx, headerIdx-1), nil
}

// FixedOffset reads the date and header rows at fixed 0-based indices.
type FixedOffset struct {
	DateRow   int
	HeaderRow int
}

// Locate implements Locator.
func (f FixedOffset) Locate(rows [][]string) (*models.ScheduleTable, error) {
	if f.HeaderRow >= len(rows) || f.DateRow >= len(rows) {
		return nil, ErrHeaderNotFound
	}
	if !containsAll(rows[f.HeaderRow], requiredLabels) {
		return nil, fmt.Errorf("%w: row %d lacks Team, Email, Employee", ErrHeaderNotFound, f.HeaderRow)
	}
	return buildTable(rows, f.HeaderRow, f.DateRow), nil
}

func buildTable(rows [][]string, headerIdx, dateIdx int) *models.ScheduleTable {
	header := make([]string, len(rows[headerIdx]))
	for i, cell := range rows[headerIdx] {
		header[i] = strings.TrimSpace(cell)
	}
	return &models.ScheduleTable{
		HeaderIndex: headerIdx,
		HeaderAxis:  header,
		DateAxis:    coerceDateAxis(rows[dateIdx], len(header)),
		DataRows:    rows[headerIdx+1:],
	}
}

// coerceDateAxis renders parseable cells as canonical short labels and keeps
// anything else (blank corner cells, label text) as its trimmed string. The
// result is padded to the header width so the axes stay aligned.
func coerceDateAxis(row []string, width int) []string {
	axis := make([]string, width)
	for i := range axis {
		var cell string
		if i < len(row) {
			cell = strings.TrimSpace(row[i])
		}
		if d, ok := models.ParseCell(cell); ok {
			axis[i] = d.ShortLabel()
		} else {
			axis[i] = cell
		}
	}
	return axis
}

func containsAll(row []string, labels []string) bool {
	for _, label := range labels {
		if findColumn(row, label) < 0 {
			return false
		}
	}
	return true
}

// findColumn matches case-insensitively on trimmed cells and returns the
// first matching column index, or -1.
func findColumn(row []string, label string) int {
	for i, cell := range row {
		if strings.EqualFold(strings.TrimSpace(cell), label) {
			return i
		}
	}
	return -1
}
