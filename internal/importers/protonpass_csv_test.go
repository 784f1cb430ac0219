package importers

import (
	"testing"

	"github.com/mrlokans/vaultport/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const protonPassCSVHeader = "type,name,url,email,username,password,note,totp,createTime,modifyTime,vault\n"

func TestParseProtonPassCSV_AliasEndToEnd(t *testing.T) {
	records, err := ParseProtonPassCSV(protonPassCSVHeader + "alias,X,,a@b.com,,,,,,,Personal\n")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, entities.Record{
		Type:       entities.RecordTypeCustom,
		Folder:     "Personal",
		IsFavorite: false,
		Data: &entities.CustomData{
			Common: entities.Common{Title: "X", CustomFields: []entities.CustomField{
				NoteField(""),
				NoteField("a@b.com"),
			}},
		},
	}, records[0])
}

func TestParseProtonPassCSV_Login(t *testing.T) {
	csvText := protonPassCSVHeader +
		"login,Mail,mail.example.com,a@b.com,ann,pw,note text,,,,Personal\n" +
		"login,Fallback,,a@b.com,,pw2,,,,,Personal\n"

	records, err := ParseProtonPassCSV(csvText)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, &entities.LoginData{
		Common:   entities.Common{Title: "Mail", CustomFields: []entities.CustomField{}},
		Username: "ann",
		Password: "pw",
		Note:     "note text",
		Websites: []string{"https://mail.example.com"},
	}, records[0].Data)

	fallback := records[1].Data.(*entities.LoginData)
	assert.Equal(t, "a@b.com", fallback.Username, "email stands in for a missing username")
	assert.Equal(t, []string{}, fallback.Websites)
}

func TestParseProtonPassCSV_Note(t *testing.T) {
	records, err := ParseProtonPassCSV(protonPassCSVHeader + `note,Memo,,,,,"multi` + "\n" + `line",,,,Work` + "\n")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, entities.RecordTypeNote, records[0].Type)
	assert.Equal(t, "Work", records[0].Folder)
	assert.Equal(t, &entities.NoteData{
		Common: entities.Common{Title: "Memo", CustomFields: []entities.CustomField{}},
		Note:   "multi\nline",
	}, records[0].Data)
}

func TestParseProtonPassCSV_IdentityFromEmbeddedJSON(t *testing.T) {
	note := `"{""fullName"":""Ann Lee"",""email"":""ann@example.com"",""company"":""ACME"",""note"":""inner""}"`
	records, err := ParseProtonPassCSV(protonPassCSVHeader + "identity,Me,,,,," + note + ",,,,Personal\n")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, entities.RecordTypeIdentity, records[0].Type)
	identity := records[0].Data.(*entities.IdentityData)
	assert.Equal(t, "Me", identity.Title)
	assert.Equal(t, "Ann Lee", identity.FullName)
	assert.Equal(t, "ann@example.com", identity.Email)
	assert.Equal(t, "inner", identity.Note)
	assert.Equal(t, []entities.CustomField{NoteField("Company: ACME")}, identity.CustomFields)
}

func TestParseProtonPassCSV_IdentityWithUnparsableNote(t *testing.T) {
	for _, note := range []string{"not json", `"[1,2]"`, "42", ""} {
		t.Run(note, func(t *testing.T) {
			records, err := ParseProtonPassCSV(protonPassCSVHeader + "identity,Me,,,,," + note + ",,,,Personal\n")

			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, entities.RecordTypeIdentity, records[0].Type)
			assert.Equal(t, &entities.IdentityData{
				Common:            entities.Common{Title: "Me", CustomFields: []entities.CustomField{}},
				IdentityDocuments: &entities.IdentityDocuments{},
			}, records[0].Data)
		})
	}
}

func TestParseProtonPassCSV_OtherTypesKeepRawType(t *testing.T) {
	records, err := ParseProtonPassCSV(protonPassCSVHeader + "creditCard,Visa,,,,,n,,,,Personal\n,Blank,,,,,,,,,\n")

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, entities.RecordType("creditCard"), records[0].Type)
	assert.Equal(t, []entities.CustomField{NoteField("n"), NoteField("")}, entities.Base(records[0].Data).CustomFields)
	assert.Equal(t, entities.RecordType(""), records[1].Type)
	assert.Empty(t, records[1].Folder)
}

func TestParseProtonPassCSV_ValuesAreNotTrimmed(t *testing.T) {
	records, err := ParseProtonPassCSV(protonPassCSVHeader + "note, Spaced ,,,,, body ,,,, Vault \n")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, " Vault ", records[0].Folder)
	note := records[0].Data.(*entities.NoteData)
	assert.Equal(t, " Spaced ", note.Title)
	assert.Equal(t, " body ", note.Note)
}

func TestParseProtonPassCSV_NeverFavorite(t *testing.T) {
	records, err := ParseProtonPassCSV("type,name,pinned,favorite\nlogin,a,true,true\n")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.False(t, records[0].IsFavorite)
}

func TestParseProtonPassCSV_RowCount(t *testing.T) {
	csvText := protonPassCSVHeader +
		"login,1,,,,,,,,,V\n" +
		"note,2,,,,,,,,,V\n" +
		"alias,3,,,,,,,,,V\n"

	records, err := ParseProtonPassCSV(csvText)

	require.NoError(t, err)
	assert.Len(t, records, 3)
}
