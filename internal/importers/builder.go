package importers

import "github.com/mrlokans/vaultport/internal/entities"

// NewRecord assembles the canonical envelope around a type-specific data shape.
// Absent list fields are filled with empty slices so that serialized records
// always carry arrays; absent scalar fields are already empty strings.
func NewRecord(recordType entities.RecordType, data entities.RecordData, folder string, favorite bool) entities.Record {
	if data == nil {
		data = &entities.CustomData{}
	}

	base := entities.Base(data)
	if base.CustomFields == nil {
		base.CustomFields = []entities.CustomField{}
	}

	if login, ok := data.(*entities.LoginData); ok && login.Websites == nil {
		login.Websites = []string{}
	}

	return entities.Record{
		Type:       recordType,
		Data:       data,
		Folder:     folder,
		IsFavorite: favorite,
	}
}

// NoteField wraps free-form text as a custom field.
func NoteField(note string) entities.CustomField {
	return entities.CustomField{Type: entities.CustomFieldTypeNote, Note: note}
}

// LabeledField renders "<label>: <value>" as a custom field.
func LabeledField(label, value string) entities.CustomField {
	return NoteField(label + ": " + value)
}

// optionalField appends a labeled field only when value is non-empty.
func optionalField(fields []entities.CustomField, label, value string) []entities.CustomField {
	if value == "" {
		return fields
	}
	return append(fields, LabeledField(label, value))
}

func common(title string, fields []entities.CustomField) entities.Common {
	return entities.Common{Title: title, CustomFields: fields}
}
