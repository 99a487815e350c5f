package models

// ScheduleTable is the located schedule region of a sheet: the header axis,
// the date axis aligned to it column by column, and the data rows below the
// header. A fresh file load replaces the whole table; nothing is merged.
type ScheduleTable struct {
	// HeaderIndex is the 0-based row index of the header axis in the sheet.
	HeaderIndex int
	// HeaderAxis holds the trimmed column labels.
	HeaderAxis []string
	// DateAxis holds one cell per header column: canonical short date
	// labels ("Apr 28 25") where the source cell parsed as a date, the
	// trimmed source string otherwise. Always the same length as
	// HeaderAxis.
	DateAxis []string
	// DataRows are the rows below the header, untrimmed and positional.
	DataRows [][]string
}
