package parser

import (
	"fmt"

	"github.com/rostermail/rostermail-go/pkg/rostermail/models"
)

// WindowDays is the number of consecutive calendar days in a weekly window.
// Weekends are included; the window never skips days.
const WindowDays = 5

// ResolveWindow maps the chosen week start onto the date axis. Only the
// start date is matched against the axis; the remaining columns are taken
// positionally so that duplicate or missing later labels cannot break
// contiguity. Columns past the end of the axis are dropped.
func ResolveWindow(start models.Date, axis []string) (*models.WeekWindow, error) {
	dates := make([]models.Date, WindowDays)
	for i := range dates {
		dates[i] = start.AddDays(i)
	}

	startIdx := -1
	startLabel := dates[0].ShortLabel()
	for i, cell := range axis {
		if cell == startLabel {
			startIdx = i
			break
		}
	}
	if startIdx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrDateNotFound, startLabel)
	}

	w := &models.WeekWindow{Start: start}
	for i := 0; i < WindowDays; i++ {
		idx := startIdx + i
		if idx >= len(axis) {
			break
		}
		w.Columns = append(w.Columns, idx)
		w.Dates = append(w.Dates, dates[i])
		w.FullLabels = append(w.FullLabels, dates[i].FullLabel())
	}
	return w, nil
}
