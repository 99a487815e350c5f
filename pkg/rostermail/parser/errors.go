package parser

import "errors"

// ErrHeaderNotFound indicates no row contains the required column labels.
var ErrHeaderNotFound = errors.New("header row with Team, Email, Employee not found")

// ErrDateNotFound indicates the chosen week start has no column on the
// date axis.
var ErrDateNotFound = errors.New("week start date not found in schedule")

// ErrMissingColumn indicates a required identity column is absent from the
// header axis.
var ErrMissingColumn = errors.New("required column missing from header row")
