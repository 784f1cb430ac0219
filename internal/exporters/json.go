package exporters

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mrlokans/vaultport/internal/entities"
	"github.com/tidwall/pretty"
)

// JSONExporter writes the records as one JSON array.
type JSONExporter struct {
	w      io.Writer
	pretty bool
}

func NewJSONExporter(w io.Writer, prettyPrint bool) *JSONExporter {
	return &JSONExporter{w: w, pretty: prettyPrint}
}

func (e *JSONExporter) Export(records []entities.Record) (ExportResult, error) {
	if records == nil {
		records = []entities.Record{}
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return ExportResult{RecordsFailed: len(records)}, fmt.Errorf("failed to encode records: %w", err)
	}

	if e.pretty {
		payload = pretty.Pretty(payload)
	} else {
		payload = append(payload, '\n')
	}

	if _, err := e.w.Write(payload); err != nil {
		return ExportResult{RecordsFailed: len(records)}, fmt.Errorf("failed to write records: %w", err)
	}

	return newExportResult(records), nil
}

var _ RecordExporter = (*JSONExporter)(nil)
