package importers

import (
	"regexp"
	"strings"

	"github.com/mrlokans/vaultport/internal/entities"
	"github.com/mrlokans/vaultport/internal/utils"
)

var lineBreak = regexp.MustCompile(`\r?\n`)

// bitwardenCSVRow is the flattened view of one CSV export row. Values are
// already trimmed; absent columns read as "".
type bitwardenCSVRow struct {
	Type     string
	Name     string
	Notes    string
	Folder   string
	Favorite bool
	Fields   []entities.CustomField
	Username string
	Password string
	URIs     []string
	TOTP     string
}

type bitwardenCSVDeriver func(row bitwardenCSVRow) (entities.RecordType, entities.RecordData)

var bitwardenCSVDerivers = map[string]bitwardenCSVDeriver{
	"login": deriveBitwardenCSVLogin,
	"note":  deriveBitwardenCSVNote,
}

// ParseBitwardenCSV converts a Bitwarden CSV export into canonical records,
// one per data row and in row order. The first row is the header.
func ParseBitwardenCSV(text string) ([]entities.Record, error) {
	rows, err := TokenizeCSV(text)
	if err != nil {
		return nil, err
	}

	headers, dataRows := splitHeader(rows)
	records := make([]entities.Record, 0, len(dataRows))

	for _, cells := range dataRows {
		row := readBitwardenCSVRow(zipTrimmed(headers, cells))

		derive, ok := bitwardenCSVDerivers[row.Type]
		if !ok {
			derive = deriveBitwardenCSVGeneric
		}
		recordType, data := derive(row)

		records = append(records, NewRecord(recordType, data, row.Folder, row.Favorite))
	}

	return records, nil
}

func readBitwardenCSVRow(row csvRow) bitwardenCSVRow {
	out := bitwardenCSVRow{
		Type:     row.get("type"),
		Name:     row.get("name"),
		Notes:    row.get("notes"),
		Folder:   row.get("folder"),
		Favorite: strings.EqualFold(row.get("favorite"), "true"),
		Username: row.get("login_username"),
		Password: row.get("login_password"),
		TOTP:     row.get("login_totp"),
	}

	for _, uri := range strings.Split(row.get("login_uri"), ",") {
		if uri = strings.TrimSpace(uri); uri != "" {
			out.URIs = append(out.URIs, uri)
		}
	}

	for _, line := range lineBreak.Split(row.get("fields"), -1) {
		if line = strings.TrimSpace(line); line != "" {
			out.Fields = append(out.Fields, NoteField(line))
		}
	}

	return out
}

func deriveBitwardenCSVLogin(row bitwardenCSVRow) (entities.RecordType, entities.RecordData) {
	websites := make([]string, 0, len(row.URIs))
	for _, uri := range row.URIs {
		websites = append(websites, utils.EnsureScheme(uri))
	}

	fields := append([]entities.CustomField{}, row.Fields...)
	fields = optionalField(fields, "TOTP", row.TOTP)

	return entities.RecordTypeLogin, &entities.LoginData{
		Common:   common(row.Name, fields),
		Username: row.Username,
		Password: row.Password,
		Note:     row.Notes,
		Websites: websites,
	}
}

func deriveBitwardenCSVNote(row bitwardenCSVRow) (entities.RecordType, entities.RecordData) {
	return entities.RecordTypeNote, &entities.NoteData{
		Common: common(row.Name, row.Fields),
		Note:   row.Notes,
	}
}

func deriveBitwardenCSVGeneric(row bitwardenCSVRow) (entities.RecordType, entities.RecordData) {
	return entities.RecordTypeCustom, &entities.CustomData{
		Common: common(row.Name, row.Fields),
	}
}
