package exporters

import (
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/mrlokans/vaultport/internal/entities"
)

// SummaryRow is the flat CSV projection of a canonical record.
type SummaryRow struct {
	Type         string `csv:"type"`
	Title        string `csv:"title"`
	Folder       string `csv:"folder"`
	Favorite     bool   `csv:"favorite"`
	CustomFields string `csv:"custom_fields"` // notes joined by newlines
}

// CSVExporter writes one summary row per record, for reviewing an import
// before handing the JSON to the importer.
type CSVExporter struct {
	w io.Writer
}

func NewCSVExporter(w io.Writer) *CSVExporter {
	return &CSVExporter{w: w}
}

func (e *CSVExporter) Export(records []entities.Record) (ExportResult, error) {
	rows := make([]*SummaryRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, summarize(r))
	}

	if err := gocsv.Marshal(rows, e.w); err != nil {
		return ExportResult{RecordsFailed: len(records)}, fmt.Errorf("failed to write CSV summary: %w", err)
	}

	return newExportResult(records), nil
}

func summarize(r entities.Record) *SummaryRow {
	row := &SummaryRow{
		Type:     string(r.Type),
		Folder:   r.Folder,
		Favorite: r.IsFavorite,
	}

	if base := entities.Base(r.Data); base != nil {
		row.Title = base.Title
		notes := make([]string, 0, len(base.CustomFields))
		for _, f := range base.CustomFields {
			notes = append(notes, f.Note)
		}
		row.CustomFields = strings.Join(notes, "\n")
	}

	return row
}

var _ RecordExporter = (*CSVExporter)(nil)
