package importers

import (
	"testing"

	"github.com/mrlokans/vaultport/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const protonPassExport = `{
  "version": "1.21.2",
  "encrypted": false,
  "vaults": {
    "v1": {
      "name": "Personal",
      "items": [
        {"itemId": "i1", "pinned": true, "data": {"type": "login",
          "metadata": {"name": "Mail", "note": "primary"},
          "content": {"itemUsername": "ann", "password": "pw", "urls": ["mail.example.com", "https://webmail.example.com"]}}},
        {"itemId": "i2", "pinned": false, "data": {"type": "note",
          "metadata": {"name": "Memo", "note": "remember"}, "content": {}}}
      ]
    },
    "v2": {
      "name": "Shared",
      "items": [
        {"itemId": "i3", "data": {"type": "identity",
          "metadata": {"name": "Me", "note": "id note"},
          "content": {"fullName": "Ann Lee", "email": "ann@example.com", "phoneNumber": "555",
            "streetAddress": "1 Main St", "floor": "3", "zipOrPostalCode": "12345", "city": "Springfield",
            "stateOrProvince": "IL", "countryOrRegion": "US", "passportNumber": "P1",
            "birthdate": "1990-01-01", "gender": "F", "licenseNumber": "L1",
            "organization": "ACME", "jobTitle": "Engineer", "secondPhoneNumber": "556"}}},
        {"itemId": "i4", "pinned": "true", "data": {"type": "alias",
          "metadata": {"name": "Alias", "note": "n"}, "content": {}}},
        {"itemId": "i5", "data": {"type": "creditCard",
          "metadata": {"name": "Card"}, "content": {"number": "4111"}}}
      ]
    }
  }
}`

func parseProtonPassTree(t *testing.T, doc string) []entities.Record {
	t.Helper()
	require.True(t, gjson.Valid(doc), "fixture must be valid JSON")
	return ParseProtonPassJSON(gjson.Parse(doc))
}

func TestParseProtonPassJSON_VaultsInOrder(t *testing.T) {
	records := parseProtonPassTree(t, protonPassExport)

	require.Len(t, records, 5)
	titles := make([]string, 0, len(records))
	for _, r := range records {
		titles = append(titles, entities.Base(r.Data).Title)
	}
	assert.Equal(t, []string{"Mail", "Memo", "Me", "Alias", "Card"}, titles)
	assert.Equal(t, "Personal", records[0].Folder)
	assert.Equal(t, "Personal", records[1].Folder)
	assert.Equal(t, "Shared", records[2].Folder)
}

func TestParseProtonPassJSON_Login(t *testing.T) {
	records := parseProtonPassTree(t, protonPassExport)

	assert.Equal(t, entities.Record{
		Type:       entities.RecordTypeLogin,
		Folder:     "Personal",
		IsFavorite: true,
		Data: &entities.LoginData{
			Common:   entities.Common{Title: "Mail", CustomFields: []entities.CustomField{}},
			Username: "ann",
			Password: "pw",
			Note:     "primary",
			Websites: []string{"https://mail.example.com", "https://webmail.example.com"},
		},
	}, records[0])
}

func TestParseProtonPassJSON_Note(t *testing.T) {
	records := parseProtonPassTree(t, protonPassExport)

	assert.Equal(t, entities.RecordTypeNote, records[1].Type)
	assert.False(t, records[1].IsFavorite)
	assert.Equal(t, &entities.NoteData{
		Common: entities.Common{Title: "Memo", CustomFields: []entities.CustomField{}},
		Note:   "remember",
	}, records[1].Data)
}

func TestParseProtonPassJSON_Identity(t *testing.T) {
	records := parseProtonPassTree(t, protonPassExport)

	assert.Equal(t, entities.RecordTypeIdentity, records[2].Type)
	assert.Equal(t, &entities.IdentityData{
		Common: entities.Common{Title: "Me", CustomFields: []entities.CustomField{
			NoteField("Organization: ACME"),
			NoteField("Job Title: Engineer"),
			NoteField("Second Phone Number: 556"),
		}},
		FullName:             "Ann Lee",
		Email:                "ann@example.com",
		PhoneNumber:          "555",
		Address:              "1 Main St 3",
		Zip:                  "12345",
		City:                 "Springfield",
		Region:               "IL",
		Country:              "US",
		PassportNumber:       "P1",
		DrivingLicenseNumber: "L1",
		Note:                 "id note",
		IdentityDocuments: &entities.IdentityDocuments{
			PassportDob:    "1990-01-01",
			PassportGender: "F",
		},
	}, records[2].Data)
}

func TestParseProtonPassJSON_IdentityCustomFieldOrder(t *testing.T) {
	records := parseProtonPassTree(t, `{"vaults": {"v": {"name": "V", "items": [{"data": {"type": "identity",
		"metadata": {"name": "x"},
		"content": {"secondPhoneNumber": "7", "county": "6", "socialSecurityNumber": "5",
			"jobTitle": "4", "company": "3", "xHandle": "2", "organization": "1"}}}]}}}`)

	assert.Equal(t, []entities.CustomField{
		NoteField("Organization: 1"),
		NoteField("X-Handle: 2"),
		NoteField("Company: 3"),
		NoteField("Job Title: 4"),
		NoteField("Social Security Number: 5"),
		NoteField("County: 6"),
		NoteField("Second Phone Number: 7"),
	}, entities.Base(records[0].Data).CustomFields)
}

func TestParseProtonPassJSON_OtherTypesPassThrough(t *testing.T) {
	records := parseProtonPassTree(t, protonPassExport)

	assert.Equal(t, entities.RecordType("alias"), records[3].Type)
	assert.False(t, records[3].IsFavorite, "only a boolean true pin counts")
	assert.Equal(t, &entities.CustomData{
		Common: entities.Common{Title: "Alias", CustomFields: []entities.CustomField{}},
	}, records[3].Data)

	assert.Equal(t, entities.RecordType("creditCard"), records[4].Type)
	assert.IsType(t, &entities.CustomData{}, records[4].Data)
}

func TestParseProtonPassJSON_MissingPieces(t *testing.T) {
	records := parseProtonPassTree(t, `{"vaults": {
		"v1": {"items": [{"data": {"type": "login"}}]},
		"v2": {"name": "Empty"}
	}}`)

	require.Len(t, records, 1)
	assert.Empty(t, records[0].Folder)
	login := records[0].Data.(*entities.LoginData)
	assert.Empty(t, login.Title)
	assert.Equal(t, []string{}, login.Websites)
}

func TestParseProtonPassJSON_NoVaults(t *testing.T) {
	records := parseProtonPassTree(t, `{}`)

	assert.NotNil(t, records)
	assert.Empty(t, records)
}
