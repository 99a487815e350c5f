// Package rostermail extracts weekly schedule slices from spreadsheet
// workbooks and prepares per-employee email drafts.
package rostermail

import (
	"go.uber.org/zap"

	"github.com/rostermail/rostermail-go/pkg/rostermail/parser"
)

// DefaultSheetName is the sheet the schedule is read from. The name is
// matched exactly, including case.
const DefaultSheetName = "Schedule"

// Options configures a session.
type Options struct {
	// SheetName overrides the sheet holding the schedule.
	// Empty means DefaultSheetName.
	SheetName string
	// Strategy selects the header/date row locator. Empty means the
	// dynamic scan.
	Strategy parser.Strategy
	// Log receives session events. Nil means no logging.
	Log *zap.Logger
}

// DefaultOptions returns the default session options.
func DefaultOptions() Options {
	return Options{
		SheetName: DefaultSheetName,
		Strategy:  parser.StrategyDynamic,
	}
}

func (o Options) sheetName() string {
	if o.SheetName == "" {
		return DefaultSheetName
	}
	return o.SheetName
}

func (o Options) logger() *zap.Logger {
	if o.Log == nil {
		return zap.NewNop()
	}
	return o.Log
}
