package compose

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rostermail/rostermail-go/pkg/rostermail/models"
)

func weekProjection() *models.Projection {
	start := models.NewDate(2025, time.April, 28)
	p := &models.Projection{
		Headers: []string{"Email", "Employee"},
	}
	for i := 0; i < 5; i++ {
		d := start.AddDays(i)
		p.Headers = append(p.Headers, d.FullLabel())
		p.Dates = append(p.Dates, d)
	}
	p.Records = []models.WeeklyRecord{
		{Email: "b@x.com", Employee: "Bob", Values: []string{"9am", "9am", "", "9am", "9am"}},
	}
	return p
}

func TestCompose(t *testing.T) {
	p := weekProjection()
	draft := Compose(p, p.Records[0])

	if draft.To != "b@x.com" {
		t.Errorf("To = %q, expected 'b@x.com'", draft.To)
	}
	if draft.Name != "Bob" {
		t.Errorf("Name = %q, expected 'Bob'", draft.Name)
	}
	if draft.Subject != "Schedule" {
		t.Errorf("Subject = %q, expected 'Schedule'", draft.Subject)
	}

	// Date labels, long weekday names and the employee name all appear in
	// the body.
	for _, want := range []string{"Apr 28 2025", "May 02 2025", "Monday", "Friday", "Bob", "9am"} {
		if !strings.Contains(draft.HTML, want) {
			t.Errorf("Body missing %q", want)
		}
	}
}

func TestComposeEmptyCellPlaceholder(t *testing.T) {
	p := weekProjection()
	draft := Compose(p, p.Records[0])

	// The Wednesday cell is empty and renders as the OFF marker.
	if !strings.Contains(draft.HTML, ">OFF<") {
		t.Errorf("Expected empty cell to render as %q, body:\n%s", Placeholder, draft.HTML)
	}
}

func TestComposeDeterministic(t *testing.T) {
	p := weekProjection()
	first := Compose(p, p.Records[0])
	second := Compose(p, p.Records[0])

	if first != second {
		t.Error("Compose is not byte-identical across calls")
	}
}

func TestComposeShortValueSlice(t *testing.T) {
	p := weekProjection()
	rec := models.WeeklyRecord{Email: "c@x.com", Employee: "Cleo", Values: []string{"8am"}}

	draft := Compose(p, rec)
	// Missing values default through the placeholder path.
	if got := strings.Count(draft.HTML, ">OFF<"); got != 4 {
		t.Errorf("Expected 4 placeholder cells, got %d", got)
	}
}

func TestAll(t *testing.T) {
	p := weekProjection()
	p.Records = append(p.Records, models.WeeklyRecord{
		Email: "c@x.com", Employee: "Cleo", Values: []string{"", "", "", "", ""},
	})

	drafts := All(p)
	if len(drafts) != 2 {
		t.Fatalf("Expected 2 drafts, got %d", len(drafts))
	}
	if drafts[0].To != "b@x.com" || drafts[1].To != "c@x.com" {
		t.Errorf("Draft order does not follow record order: %q, %q", drafts[0].To, drafts[1].To)
	}
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		count int
		pages []int
	}{
		{0, nil},
		{1, []int{1}},
		{10, []int{10}},
		{11, []int{10, 1}},
		{25, []int{10, 10, 5}},
	}

	for _, tt := range tests {
		drafts := make([]models.EmailDraft, tt.count)
		for i := range drafts {
			drafts[i] = models.EmailDraft{To: fmt.Sprintf("u%d@x.com", i)}
		}

		pages := Paginate(drafts)
		if len(pages) != len(tt.pages) {
			t.Errorf("Paginate(%d) gave %d pages, expected %d", tt.count, len(pages), len(tt.pages))
			continue
		}
		for i, want := range tt.pages {
			if len(pages[i]) != want {
				t.Errorf("Paginate(%d) page %d has %d drafts, expected %d", tt.count, i, len(pages[i]), want)
			}
		}
	}
	// Order is preserved across page boundaries.
	drafts := make([]models.EmailDraft, 12)
	for i := range drafts {
		drafts[i] = models.EmailDraft{To: fmt.Sprintf("u%d@x.com", i)}
	}
	pages := Paginate(drafts)
	if pages[1][0].To != "u10@x.com" {
		t.Errorf("Expected 'u10@x.com' to open page 2, got %q", pages[1][0].To)
	}
}
