package rostermail

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/rostermail/rostermail-go/pkg/rostermail/compose"
	"github.com/rostermail/rostermail-go/pkg/rostermail/models"
	"github.com/rostermail/rostermail-go/pkg/rostermail/parser"
	"github.com/rostermail/rostermail-go/pkg/rostermail/render"
)

// Session owns the in-memory state for one loaded workbook: the located
// schedule table and the last generated projection. A new Load replaces the
// whole buffer atomically; nothing is merged across loads. Sessions are not
// safe for concurrent use, matching the one-interaction-at-a-time model.
type Session struct {
	opts  Options
	log   *zap.Logger
	path  string
	table *models.ScheduleTable
	proj  *models.Projection
}

// NewSession returns an empty session.
func NewSession(opts Options) *Session {
	return &Session{opts: opts, log: opts.logger()}
}

// Load reads the workbook at path and locates its schedule table. On
// success any previously loaded table and projection are discarded; on
// failure the session keeps its previous state.
func (s *Session) Load(path string) error {
	table, err := Extract(path, s.opts)
	if err != nil {
		return err
	}
	s.log.Info("workbook loaded",
		zap.String("path", path),
		zap.Int("header_row", table.HeaderIndex),
		zap.Int("data_rows", len(table.DataRows)),
	)
	s.path = path
	s.table = table
	s.proj = nil
	return nil
}

// Generate projects the loaded table onto the five-day window starting at
// start and stores the result as the current projection. On failure the
// previous projection is kept, so a bad date pick does not clear the
// on-screen preview.
func (s *Session) Generate(start models.Date) (*models.Projection, error) {
	if s.table == nil {
		return nil, ErrNoWorkbook
	}
	window, err := parser.ResolveWindow(start, s.table.DateAxis)
	if err != nil {
		return nil, err
	}
	proj, err := parser.Project(s.table, window)
	if err != nil {
		return nil, err
	}
	s.log.Info("projection generated",
		zap.String("week_start", start.String()),
		zap.Int("records", len(proj.Records)),
	)
	s.proj = proj
	return proj, nil
}

// Projection returns the current projection, or nil when none has been
// generated since the last load.
func (s *Session) Projection() *models.Projection {
	return s.proj
}

// Drafts composes one email draft per record of the current projection.
// Drafts are re-derived on every call, never cached.
func (s *Session) Drafts() ([]models.EmailDraft, error) {
	if s.proj == nil {
		return nil, fmt.Errorf("%w: generate a projection first", ErrNoWorkbook)
	}
	return compose.All(s.proj), nil
}

// WriteTemplate saves a copy of the loaded workbook to outPath with the
// current projection written to the "Weekly Template" sheet.
func (s *Session) WriteTemplate(outPath string) error {
	if s.proj == nil {
		return fmt.Errorf("%w: generate a projection first", ErrNoWorkbook)
	}
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return fmt.Errorf("reopen workbook: %w", err)
	}
	defer f.Close()
	return render.WriteTemplateSheet(f, s.proj, outPath)
}
