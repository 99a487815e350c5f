// Package compose turns weekly records into email drafts.
package compose

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/rostermail/rostermail-go/pkg/rostermail/models"
)

// Subject is the fixed subject line for every draft.
const Subject = "Schedule"

// Placeholder replaces empty schedule cells in the email body. An empty
// cell means the employee is not scheduled that day.
const Placeholder = "OFF"

// PageSize is the number of drafts shown per preview page.
const PageSize = 10

const bodyHTML = `<div style="font-family:Segoe UI,Arial,sans-serif;color:#333;">
<p style="font-size:1rem;margin:0 0 1em 0;">Hi Team &ndash;</p>
<p style="font-size:1rem;margin:0 0 1em 0;">Please see your schedule for next week below. If you have any questions, let us know.</p>
<table style="border-collapse:collapse;width:100%;margin:1em 0;">
<thead>
<tr><th style="border:1px solid #ddd;padding:6px;"></th>{{range .Days}}<th style="border:1px solid #ddd;padding:6px;">{{.Label}}</th>{{end}}</tr>
<tr><th style="border:1px solid #ddd;padding:6px;"></th>{{range .Days}}<th style="border:1px solid #ddd;padding:6px;">{{.Weekday}}</th>{{end}}</tr>
</thead>
<tbody>
<tr><td style="border:1px solid #ddd;padding:6px;font-weight:600;">{{.Name}}</td>{{range .Days}}<td style="border:1px solid #ddd;padding:6px;">{{.Value}}</td>{{end}}</tr>
</tbody>
</table>
<p style="font-size:1rem;margin:1em 0 0 0;">Thank you!</p>
</div>`

var bodyTmpl = template.Must(template.New("body").Parse(bodyHTML))

type day struct {
	Label   string
	Weekday string
	Value   string
}

type bodyData struct {
	Name string
	Days []day
}

// Compose builds the draft for one record. It is a pure transform: the same
// record and projection always yield byte-identical output.
func Compose(p *models.Projection, rec models.WeeklyRecord) models.EmailDraft {
	data := bodyData{Name: rec.Employee}
	for i, label := range p.Headers[2:] {
		value := ""
		if i < len(rec.Values) {
			value = rec.Values[i]
		}
		if value == "" {
			value = Placeholder
		}
		data.Days = append(data.Days, day{
			Label:   label,
			Weekday: p.Dates[i].Weekday(),
			Value:   value,
		})
	}

	var buf bytes.Buffer
	if err := bodyTmpl.Execute(&buf, data); err != nil {
		// Static template over plain strings.
		panic(fmt.Sprintf("compose: %v", err))
	}
	return models.EmailDraft{
		To:      rec.Email,
		Name:    rec.Employee,
		Subject: Subject,
		HTML:    buf.String(),
	}
}

// All composes one draft per record, in projection order.
func All(p *models.Projection) []models.EmailDraft {
	drafts := make([]models.EmailDraft, len(p.Records))
	for i, rec := range p.Records {
		drafts[i] = Compose(p, rec)
	}
	return drafts
}

// Paginate splits drafts into preview pages of PageSize, preserving order.
func Paginate(drafts []models.EmailDraft) [][]models.EmailDraft {
	var pages [][]models.EmailDraft
	for len(drafts) > PageSize {
		pages = append(pages, drafts[:PageSize])
		drafts = drafts[PageSize:]
	}
	if len(drafts) > 0 {
		pages = append(pages, drafts)
	}
	return pages
}
