package importers

import (
	"github.com/mrlokans/vaultport/internal/entities"
	"github.com/mrlokans/vaultport/internal/utils"
	"github.com/tidwall/gjson"
)

// protonPassLogin is the input of the login shape shared by the JSON and CSV paths.
type protonPassLogin struct {
	Username string
	Password string
	Note     string
	URLs     []string
}

// protonPassIdentity is the flattened view of an identity "content" object.
type protonPassIdentity struct {
	FullName             string
	Email                string
	PhoneNumber          string
	StreetAddress        string
	Floor                string
	ZipOrPostalCode      string
	City                 string
	StateOrProvince      string
	CountryOrRegion      string
	PassportNumber       string
	Birthdate            string
	Gender               string
	LicenseNumber        string
	Organization         string
	XHandle              string
	Company              string
	JobTitle             string
	SocialSecurityNumber string
	County               string
	SecondPhoneNumber    string
}

// protonPassDeriver builds the data shape for one JSON item of a given type.
type protonPassDeriver func(title string, content, metadata gjson.Result) entities.RecordData

var protonPassDerivers = map[string]protonPassDeriver{
	"login":    deriveProtonPassLogin,
	"identity": deriveProtonPassIdentity,
	"note":     deriveProtonPassNote,
}

// ParseProtonPassJSON converts a parsed ProtonPass JSON export into canonical
// records. Vaults and their items are visited in document order; the item
// type is passed through unchanged and the vault name becomes the folder.
func ParseProtonPassJSON(tree gjson.Result) []entities.Record {
	var records []entities.Record

	tree.Get("vaults").ForEach(func(_, vault gjson.Result) bool {
		folder := vault.Get("name").String()

		for _, item := range vault.Get("items").Array() {
			entry := item.Get("data")
			itemType := entry.Get("type").String()
			metadata := entry.Get("metadata")
			title := metadata.Get("name").String()

			var data entities.RecordData
			if derive, ok := protonPassDerivers[itemType]; ok {
				data = derive(title, entry.Get("content"), metadata)
			} else {
				data = &entities.CustomData{Common: common(title, nil)}
			}

			pinned := item.Get("pinned")
			records = append(records, NewRecord(entities.RecordType(itemType), data, folder, pinned.Type == gjson.True))
		}
		return true
	})

	if records == nil {
		records = []entities.Record{}
	}
	return records
}

func deriveProtonPassLogin(title string, content, metadata gjson.Result) entities.RecordData {
	login := protonPassLogin{
		Username: content.Get("itemUsername").String(),
		Password: content.Get("password").String(),
		Note:     metadata.Get("note").String(),
	}
	for _, u := range content.Get("urls").Array() {
		login.URLs = append(login.URLs, u.String())
	}
	return protonPassLoginData(title, login)
}

func deriveProtonPassIdentity(title string, content, metadata gjson.Result) entities.RecordData {
	return protonPassIdentityData(title, readProtonPassIdentity(content), metadata.Get("note").String())
}

func deriveProtonPassNote(title string, _, metadata gjson.Result) entities.RecordData {
	return &entities.NoteData{
		Common: common(title, nil),
		Note:   metadata.Get("note").String(),
	}
}

func protonPassLoginData(title string, login protonPassLogin) *entities.LoginData {
	websites := make([]string, 0, len(login.URLs))
	for _, u := range login.URLs {
		websites = append(websites, utils.EnsureScheme(u))
	}

	return &entities.LoginData{
		Common:   common(title, nil),
		Username: login.Username,
		Password: login.Password,
		Note:     login.Note,
		Websites: websites,
	}
}

func readProtonPassIdentity(content gjson.Result) protonPassIdentity {
	return protonPassIdentity{
		FullName:             content.Get("fullName").String(),
		Email:                content.Get("email").String(),
		PhoneNumber:          content.Get("phoneNumber").String(),
		StreetAddress:        content.Get("streetAddress").String(),
		Floor:                content.Get("floor").String(),
		ZipOrPostalCode:      content.Get("zipOrPostalCode").String(),
		City:                 content.Get("city").String(),
		StateOrProvince:      content.Get("stateOrProvince").String(),
		CountryOrRegion:      content.Get("countryOrRegion").String(),
		PassportNumber:       content.Get("passportNumber").String(),
		Birthdate:            content.Get("birthdate").String(),
		Gender:               content.Get("gender").String(),
		LicenseNumber:        content.Get("licenseNumber").String(),
		Organization:         content.Get("organization").String(),
		XHandle:              content.Get("xHandle").String(),
		Company:              content.Get("company").String(),
		JobTitle:             content.Get("jobTitle").String(),
		SocialSecurityNumber: content.Get("socialSecurityNumber").String(),
		County:               content.Get("county").String(),
		SecondPhoneNumber:    content.Get("secondPhoneNumber").String(),
	}
}

func protonPassIdentityData(title string, id protonPassIdentity, note string) *entities.IdentityData {
	var fields []entities.CustomField
	fields = optionalField(fields, "Organization", id.Organization)
	fields = optionalField(fields, "X-Handle", id.XHandle)
	fields = optionalField(fields, "Company", id.Company)
	fields = optionalField(fields, "Job Title", id.JobTitle)
	fields = optionalField(fields, "Social Security Number", id.SocialSecurityNumber)
	fields = optionalField(fields, "County", id.County)
	fields = optionalField(fields, "Second Phone Number", id.SecondPhoneNumber)

	return &entities.IdentityData{
		Common:               common(title, fields),
		FullName:             id.FullName,
		Email:                id.Email,
		PhoneNumber:          id.PhoneNumber,
		Address:              joinNonEmpty(" ", id.StreetAddress, id.Floor),
		Zip:                  id.ZipOrPostalCode,
		City:                 id.City,
		Region:               id.StateOrProvince,
		Country:              id.CountryOrRegion,
		PassportNumber:       id.PassportNumber,
		DrivingLicenseNumber: id.LicenseNumber,
		Note:                 note,
		IdentityDocuments: &entities.IdentityDocuments{
			PassportDob:    id.Birthdate,
			PassportGender: id.Gender,
		},
	}
}
