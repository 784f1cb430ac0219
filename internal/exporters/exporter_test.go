package exporters

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/mrlokans/vaultport/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []entities.Record {
	return []entities.Record{
		{
			Type:       entities.RecordTypeLogin,
			Folder:     "Work",
			IsFavorite: true,
			Data: &entities.LoginData{
				Common:   entities.Common{Title: "Site", CustomFields: []entities.CustomField{}},
				Username: "u",
				Password: "p",
				Websites: []string{"https://example.com"},
			},
		},
		{
			Type: entities.RecordTypeCustom,
			Data: &entities.CustomData{
				Common: entities.Common{Title: "Alias", CustomFields: []entities.CustomField{
					{Type: entities.CustomFieldTypeNote, Note: "first"},
					{Type: entities.CustomFieldTypeNote, Note: "a@b.com"},
				}},
			},
		},
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestJSONExporter_Compact(t *testing.T) {
	var buf bytes.Buffer

	result, err := NewJSONExporter(&buf, false).Export(sampleRecords())

	require.NoError(t, err)
	assert.Equal(t, 2, result.RecordsProcessed)
	assert.Equal(t, 1, result.ByType[entities.RecordTypeLogin])
	assert.Equal(t, 1, result.ByType[entities.RecordTypeCustom])

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "login", decoded[0]["type"])
	assert.Equal(t, "Work", decoded[0]["folder"])
	assert.Equal(t, true, decoded[0]["isFavorite"])

	data := decoded[0]["data"].(map[string]any)
	assert.Equal(t, "Site", data["title"])
	assert.Equal(t, []any{"https://example.com"}, data["websites"])
	assert.Equal(t, []any{}, data["customFields"])
	assert.Equal(t, "", data["note"])
}

func TestJSONExporter_IdentityDocumentsOnlyWhenPresent(t *testing.T) {
	var buf bytes.Buffer
	records := []entities.Record{
		{Type: entities.RecordTypeIdentity, Data: &entities.IdentityData{Common: entities.Common{Title: "bw"}}},
		{Type: entities.RecordTypeIdentity, Data: &entities.IdentityData{
			Common:            entities.Common{Title: "pp"},
			IdentityDocuments: &entities.IdentityDocuments{PassportGender: "F"},
		}},
	}

	_, err := NewJSONExporter(&buf, false).Export(records)

	require.NoError(t, err)
	var decoded []struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.NotContains(t, decoded[0].Data, "passportGender")
	assert.Equal(t, "F", decoded[1].Data["passportGender"])
	assert.Contains(t, decoded[1].Data, "idCardNumber")
}

func TestJSONExporter_Pretty(t *testing.T) {
	var buf bytes.Buffer

	_, err := NewJSONExporter(&buf, true).Export(sampleRecords())

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\n  {")
	assert.True(t, json.Valid(buf.Bytes()))
}

func TestJSONExporter_EmptyWritesArray(t *testing.T) {
	var buf bytes.Buffer

	result, err := NewJSONExporter(&buf, false).Export(nil)

	require.NoError(t, err)
	assert.Equal(t, "[]\n", buf.String())
	assert.Equal(t, 0, result.RecordsProcessed)
}

func TestJSONExporter_WriteError(t *testing.T) {
	result, err := NewJSONExporter(failingWriter{}, false).Export(sampleRecords())

	assert.ErrorContains(t, err, "closed pipe")
	assert.Equal(t, 2, result.RecordsFailed)
}

func TestCSVExporter(t *testing.T) {
	var buf bytes.Buffer

	result, err := NewCSVExporter(&buf).Export(sampleRecords())

	require.NoError(t, err)
	assert.Equal(t, 2, result.RecordsProcessed)

	var rows []*SummaryRow
	require.NoError(t, gocsv.UnmarshalString(buf.String(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, &SummaryRow{Type: "login", Title: "Site", Folder: "Work", Favorite: true}, rows[0])
	assert.Equal(t, &SummaryRow{Type: "custom", Title: "Alias", CustomFields: "first\na@b.com"}, rows[1])
	assert.True(t, strings.HasPrefix(buf.String(), "type,title,folder,favorite,custom_fields\n"))
}

func TestNewForFormat(t *testing.T) {
	var buf bytes.Buffer

	jsonExporter, err := NewForFormat("JSON", &buf, false)
	require.NoError(t, err)
	assert.IsType(t, &JSONExporter{}, jsonExporter)

	csvExporter, err := NewForFormat("csv", &buf, false)
	require.NoError(t, err)
	assert.IsType(t, &CSVExporter{}, csvExporter)

	_, err = NewForFormat("xml", &buf, false)
	assert.ErrorContains(t, err, `unsupported output format "xml"`)
}
