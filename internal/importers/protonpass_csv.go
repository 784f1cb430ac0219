package importers

import (
	"github.com/mrlokans/vaultport/internal/entities"
	"github.com/tidwall/gjson"
)

// protonPassCSVRow is the flattened view of one CSV export row. Values are
// used exactly as exported, without trimming.
type protonPassCSVRow struct {
	Type     string
	Name     string
	URL      string
	Email    string
	Username string
	Password string
	Note     string
	Vault    string
}

type protonPassCSVDeriver func(row protonPassCSVRow) entities.RecordData

var protonPassCSVDerivers = map[string]protonPassCSVDeriver{
	"login":    deriveProtonPassCSVLogin,
	"identity": deriveProtonPassCSVIdentity,
	"note":     deriveProtonPassCSVNote,
}

// ParseProtonPassCSV converts a ProtonPass CSV export into canonical records,
// one per data row and in row order. The export has no pin signal, so every
// record is a non-favorite; the raw vault cell becomes the folder.
func ParseProtonPassCSV(text string) ([]entities.Record, error) {
	rows, err := TokenizeCSV(text)
	if err != nil {
		return nil, err
	}

	headers, dataRows := splitHeader(rows)
	records := make([]entities.Record, 0, len(dataRows))

	for _, cells := range dataRows {
		row := readProtonPassCSVRow(zipRaw(headers, cells))

		derive, ok := protonPassCSVDerivers[row.Type]
		if !ok {
			derive = deriveProtonPassCSVGeneric
		}

		records = append(records, NewRecord(protonPassCSVType(row.Type), derive(row), row.Vault, false))
	}

	return records, nil
}

func readProtonPassCSVRow(row csvRow) protonPassCSVRow {
	return protonPassCSVRow{
		Type:     row.get("type"),
		Name:     row.get("name"),
		URL:      row.get("url"),
		Email:    row.get("email"),
		Username: row.get("username"),
		Password: row.get("password"),
		Note:     row.get("note"),
		Vault:    row.get("vault"),
	}
}

// protonPassCSVType keeps the exported type except for aliases, which have no
// canonical counterpart.
func protonPassCSVType(t string) entities.RecordType {
	if t == "alias" {
		return entities.RecordTypeCustom
	}
	return entities.RecordType(t)
}

func deriveProtonPassCSVLogin(row protonPassCSVRow) entities.RecordData {
	username := row.Username
	if username == "" {
		username = row.Email
	}

	login := protonPassLogin{
		Username: username,
		Password: row.Password,
		Note:     row.Note,
	}
	if row.URL != "" {
		login.URLs = []string{row.URL}
	}

	return protonPassLoginData(row.Name, login)
}

// deriveProtonPassCSVIdentity reads the identity from the JSON object the
// export stores in the note column. This is best effort: an unparsable or
// non-object note yields an identity with every field empty.
func deriveProtonPassCSVIdentity(row protonPassCSVRow) entities.RecordData {
	content := embeddedObject(row.Note)
	return protonPassIdentityData(row.Name, readProtonPassIdentity(content), content.Get("note").String())
}

func deriveProtonPassCSVNote(row protonPassCSVRow) entities.RecordData {
	return &entities.NoteData{
		Common: common(row.Name, nil),
		Note:   row.Note,
	}
}

// deriveProtonPassCSVGeneric keeps the note and email cells as the first two
// fields, even when empty.
func deriveProtonPassCSVGeneric(row protonPassCSVRow) entities.RecordData {
	return &entities.CustomData{
		Common: common(row.Name, []entities.CustomField{
			NoteField(row.Note),
			NoteField(row.Email),
		}),
	}
}

// embeddedObject parses text as a JSON object, returning an empty object on
// any failure.
func embeddedObject(text string) gjson.Result {
	if !gjson.Valid(text) {
		return gjson.Result{}
	}
	parsed := gjson.Parse(text)
	if !parsed.IsObject() {
		return gjson.Result{}
	}
	return parsed
}
