package rostermail

import (
	"errors"
	"fmt"
)

// ErrSheetNotFound indicates the workbook has no sheet with the configured
// name. Sheet names are compared exactly, including case.
var ErrSheetNotFound = errors.New("schedule sheet not found")

// ErrNoWorkbook indicates a projection was requested before any workbook
// was loaded into the session.
var ErrNoWorkbook = errors.New("no workbook loaded")

// LoadError wraps a failure while loading a workbook.
type LoadError struct {
	Book  string
	Sheet string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %q (sheet %q): %v", e.Book, e.Sheet, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
