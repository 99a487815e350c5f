// Package render produces the reviewable artifacts: the preview table, its
// tab-separated export, and the optional "Weekly Template" workbook sheet.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/xuri/excelize/v2"

	"github.com/rostermail/rostermail-go/pkg/rostermail/models"
)

// EmptyMessage is shown instead of an empty table when the projection kept
// no rows.
const EmptyMessage = "No matching rows for selected week."

// TemplateSheetName is the sheet written by WriteTemplateSheet.
const TemplateSheetName = "Weekly Template"

// Table writes the aligned preview table. Column order is
// [Email, Employee, Date1..Date5].
func Table(w io.Writer, p *models.Projection) error {
	if len(p.Records) == 0 {
		_, err := fmt.Fprintln(w, EmptyMessage)
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, strings.Join(p.Headers, "\t")); err != nil {
		return err
	}
	for i := range p.Records {
		if _, err := fmt.Fprintln(tw, strings.Join(p.Row(i), "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// TSV writes the preview as tab-separated values, suitable for pasting into
// a spreadsheet. The header line is written even for an empty projection.
func TSV(w io.Writer, p *models.Projection) error {
	if _, err := fmt.Fprintln(w, strings.Join(p.Headers, "\t")); err != nil {
		return err
	}
	for i := range p.Records {
		if _, err := fmt.Fprintln(w, strings.Join(p.Row(i), "\t")); err != nil {
			return err
		}
	}
	return nil
}

// WriteTemplateSheet adds or replaces the "Weekly Template" sheet in the
// workbook with the projected records and saves the result to path. The
// source sheets are left untouched.
func WriteTemplateSheet(f *excelize.File, p *models.Projection, path string) error {
	if idx, err := f.GetSheetIndex(TemplateSheetName); err == nil && idx >= 0 {
		if err := f.DeleteSheet(TemplateSheetName); err != nil {
			return fmt.Errorf("replace sheet %q: %w", TemplateSheetName, err)
		}
	}
	if _, err := f.NewSheet(TemplateSheetName); err != nil {
		return fmt.Errorf("create sheet %q: %w", TemplateSheetName, err)
	}

	for col, header := range p.Headers {
		if err := setCell(f, col+1, 1, header); err != nil {
			return err
		}
	}
	for row := range p.Records {
		for col, value := range p.Row(row) {
			if err := setCell(f, col+1, row+2, value); err != nil {
				return err
			}
		}
	}
	return f.SaveAs(path)
}

func setCell(f *excelize.File, col, row int, value string) error {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(TemplateSheetName, name, value)
}
