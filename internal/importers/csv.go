package importers

import (
	"encoding/csv"
	"fmt"
	"strings"
)

const utf8BOM = "\ufeff"

// TokenizeCSV splits CSV text into rows of cells. Quoted cells may contain
// commas and line breaks, and "" inside a quoted cell is a literal quote.
// Rows may have differing lengths; blank lines are skipped.
func TokenizeCSV(text string) ([][]string, error) {
	reader := csv.NewReader(strings.NewReader(strings.TrimPrefix(text, utf8BOM)))
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadableCSV, err)
	}
	return rows, nil
}

// csvRow is one data row keyed by header name.
type csvRow map[string]string

// get returns the cell for key, or "" when the column is absent.
func (r csvRow) get(key string) string {
	return r[key]
}

// splitHeader separates the header row from the data rows.
func splitHeader(rows [][]string) ([]string, [][]string) {
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], rows[1:]
}

// zipTrimmed maps every trimmed header to the trimmed cell at the same
// position; cells missing from a short row become "".
func zipTrimmed(headers, cells []string) csvRow {
	row := make(csvRow, len(headers))
	for i, h := range headers {
		value := ""
		if i < len(cells) {
			value = strings.TrimSpace(cells[i])
		}
		row[strings.TrimSpace(h)] = value
	}
	return row
}

// zipRaw maps each present cell to its header without trimming either side.
// Columns beyond the end of a short row stay absent.
func zipRaw(headers, cells []string) csvRow {
	row := make(csvRow, len(cells))
	for i, cell := range cells {
		if i >= len(headers) {
			break
		}
		row[headers[i]] = cell
	}
	return row
}
