package parser

import (
	"fmt"

	"github.com/rostermail/rostermail-go/pkg/rostermail/models"
)

// excludedTeam is the literal sentinel marking an employee excluded from the
// weekly output. The comparison is exact, not trimmed or folded.
const excludedTeam = "X"

// Project filters the table's data rows and builds the normalized weekly
// view over the given window. A row is kept iff its Team cell is non-empty
// and not the exclusion sentinel. Output order follows source order, and an
// empty result is valid, not an error.
func Project(table *models.ScheduleTable, window *models.WeekWindow) (*models.Projection, error) {
	teamIdx := findColumn(table.HeaderAxis, "Team")
	emailIdx := findColumn(table.HeaderAxis, "Email")
	empIdx := findColumn(table.HeaderAxis, "Employee")
	if teamIdx < 0 || emailIdx < 0 || empIdx < 0 {
		return nil, fmt.Errorf("%w: need Team, Email and Employee", ErrMissingColumn)
	}

	headers := make([]string, 0, 2+len(window.FullLabels))
	headers = append(headers, table.HeaderAxis[emailIdx], table.HeaderAxis[empIdx])
	headers = append(headers, window.FullLabels...)

	proj := &models.Projection{
		Headers: headers,
		Dates:   window.Dates,
		Records: []models.WeeklyRecord{},
	}
	for _, row := range table.DataRows {
		team := cellAt(row, teamIdx)
		if team == "" || team == excludedTeam {
			continue
		}
		rec := models.WeeklyRecord{
			Email:    cellAt(row, emailIdx),
			Employee: cellAt(row, empIdx),
			Values:   make([]string, len(window.Columns)),
		}
		for j, col := range window.Columns {
			rec.Values[j] = cellAt(row, col)
		}
		proj.Records = append(proj.Records, rec)
	}
	return proj, nil
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
