package models

// WeekWindow is a resolved five-day slice of the date axis. Columns are
// strictly consecutive indices, truncated only at the axis boundary.
type WeekWindow struct {
	// Start is the user-chosen week start.
	Start Date
	// Columns are the date-axis column indices covered by the window.
	Columns []int
	// Dates are the calendar dates for each column, aligned with Columns.
	Dates []Date
	// FullLabels are the display labels ("Apr 28 2025"), aligned with
	// Columns.
	FullLabels []string
}
