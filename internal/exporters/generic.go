package exporters

import (
	"fmt"
	"io"
	"strings"

	"github.com/mrlokans/vaultport/internal/entities"
)

// RecordExporter hands canonical records to their destination.
type RecordExporter interface {
	Export(records []entities.Record) (ExportResult, error)
}

type ExportResult struct {
	RecordsProcessed int                         `json:"records_processed"`
	RecordsFailed    int                         `json:"records_failed"`
	ByType           map[entities.RecordType]int `json:"by_type"`
}

func newExportResult(records []entities.Record) ExportResult {
	result := ExportResult{
		RecordsProcessed: len(records),
		ByType:           make(map[entities.RecordType]int),
	}
	for _, r := range records {
		result.ByType[r.Type]++
	}
	return result
}

// NewForFormat returns the exporter writing records to w in the named
// output format: "json" for full records or "csv" for a summary.
func NewForFormat(format string, w io.Writer, pretty bool) (RecordExporter, error) {
	switch strings.ToLower(format) {
	case "json":
		return NewJSONExporter(w, pretty), nil
	case "csv":
		return NewCSVExporter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q, please use json or csv", format)
	}
}
