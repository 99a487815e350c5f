package models

// Projection is the normalized weekly view of a schedule table: the selected
// headers in display order and one WeeklyRecord per kept employee row.
type Projection struct {
	// Headers is [email label, employee label, five full date labels].
	Headers []string
	// Dates are the calendar dates behind Headers[2:], in the same order.
	Dates []Date
	// Records holds the kept rows in source order.
	Records []WeeklyRecord
}

// WeeklyRecord is one employee's slice of the week. Values aligns with the
// projection's date headers.
type WeeklyRecord struct {
	Email    string
	Employee string
	Values   []string
}

// Row returns record i as display cells in header order.
func (p *Projection) Row(i int) []string {
	rec := p.Records[i]
	row := make([]string, 0, len(p.Headers))
	row = append(row, rec.Email, rec.Employee)
	for j := range p.Headers[2:] {
		if j < len(rec.Values) {
			row = append(row, rec.Values[j])
		} else {
			row = append(row, "")
		}
	}
	return row
}
