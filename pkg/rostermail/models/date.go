// Package models defines the data model for weekly schedule extraction.
package models

import (
	"fmt"
	"strings"
	"time"
)

// Date is a calendar date with no time component. All parsing, arithmetic
// and formatting happen in UTC; local-time construction is not supported
// anywhere in the core.
type Date struct {
	t time.Time
}

// NewDate returns the Date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a user-supplied "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

// cellLayouts are the textual date forms accepted from spreadsheet cells.
// excelize renders date cells through their number format, so both slash
// and dash forms, with two- and four-digit years, show up in practice.
var cellLayouts = []string{
	"2006-01-02",
	"01-02-06",
	"1-2-06",
	"01/02/06",
	"1/2/06",
	"01-02-2006",
	"01/02/2006",
	"1/2/2006",
	"Jan 02 06",
	"Jan 2 06",
	"Jan 02 2006",
	"Jan 2 2006",
	"2-Jan-06",
	"02-Jan-06",
}

// ParseCell attempts to interpret a spreadsheet cell as a calendar date.
func ParseCell(s string) (Date, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, false
	}
	for _, layout := range cellLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{t}, true
		}
	}
	return Date{}, false
}

// AddDays returns the calendar date n days after d.
func (d Date) AddDays(n int) Date {
	return Date{d.t.AddDate(0, 0, n)}
}

// ShortLabel formats d as "Apr 28 25", the canonical date-axis form.
func (d Date) ShortLabel() string {
	return fmt.Sprintf("%s %02d %02d", d.t.Month().String()[:3], d.t.Day(), d.t.Year()%100)
}

// FullLabel formats d as "Apr 28 2025", the form used for record keys and
// display headers.
func (d Date) FullLabel() string {
	return fmt.Sprintf("%s %02d %d", d.t.Month().String()[:3], d.t.Day(), d.t.Year())
}

// Weekday returns the long weekday name, e.g. "Monday".
func (d Date) Weekday() string {
	return d.t.Weekday().String()
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) String() string {
	return d.FullLabel()
}
