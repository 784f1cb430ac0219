package importers

import (
	"regexp"
	"strings"

	"github.com/mrlokans/vaultport/internal/entities"
	"github.com/mrlokans/vaultport/internal/utils"
	"github.com/tidwall/gjson"
)

// Bitwarden item type codes as found in the JSON export.
const (
	bitwardenTypeLogin      int64 = 1
	bitwardenTypeSecureNote int64 = 2
	bitwardenTypeCard       int64 = 3
	bitwardenTypeIdentity   int64 = 4
	bitwardenTypeSSHKey     int64 = 5
)

var whitespace = regexp.MustCompile(`\s`)

// bitwardenItem is the flattened view of one exported item. Every optional
// source field is read exactly once here and defaults to its zero value.
type bitwardenItem struct {
	TypeCode    int64
	HasTypeCode bool
	Name        string
	Notes       string
	FolderID    string
	Favorite    bool
	Fields      []entities.CustomField
	Login       bitwardenLogin
	Card        bitwardenCard
	Identity    bitwardenIdentity
	SSHKey      []entities.CustomField
}

type bitwardenLogin struct {
	Username string
	Password string
	TOTP     string
	URIs     []string
}

type bitwardenCard struct {
	Present        bool
	CardholderName string
	Number         string
	ExpMonth       string // "" when missing or falsy
	ExpYear        string
	Code           string
}

type bitwardenIdentity struct {
	Title          string
	FirstName      string
	MiddleName     string
	LastName       string
	Username       string
	Email          string
	Phone          string
	Address1       string
	Address2       string
	Address3       string
	PostalCode     string
	City           string
	State          string
	Country        string
	SSN            string
	PassportNumber string
	LicenseNumber  string
}

// bitwardenDeriver turns an item into its canonical type and data shape.
type bitwardenDeriver func(item bitwardenItem) (entities.RecordType, entities.RecordData)

var bitwardenDerivers = map[int64]bitwardenDeriver{
	bitwardenTypeLogin:      deriveBitwardenLogin,
	bitwardenTypeSecureNote: deriveBitwardenNote,
	bitwardenTypeCard:       deriveBitwardenCard,
	bitwardenTypeIdentity:   deriveBitwardenIdentity,
	bitwardenTypeSSHKey:     deriveBitwardenSSHKey,
}

// ParseBitwardenJSON converts a parsed Bitwarden JSON export into canonical
// records, one per item and in item order. Missing folders or items yield an
// empty mapping or an empty result respectively.
func ParseBitwardenJSON(tree gjson.Result) []entities.Record {
	folders := bitwardenFolders(tree.Get("folders"))

	items := tree.Get("items").Array()
	records := make([]entities.Record, 0, len(items))

	for _, raw := range items {
		item := readBitwardenItem(raw)

		derive, ok := bitwardenDerivers[item.TypeCode]
		if !ok || !item.HasTypeCode {
			derive = deriveBitwardenGeneric
		}
		recordType, data := derive(item)

		folder := ""
		if item.FolderID != "" {
			folder = folders[item.FolderID]
		}

		records = append(records, NewRecord(recordType, data, folder, item.Favorite))
	}

	return records
}

// bitwardenFolders builds the folder id -> name lookup. Later duplicates win.
func bitwardenFolders(list gjson.Result) map[string]string {
	folders := make(map[string]string)
	for _, f := range list.Array() {
		folders[f.Get("id").String()] = f.Get("name").String()
	}
	return folders
}

func readBitwardenItem(raw gjson.Result) bitwardenItem {
	typeCode := raw.Get("type")

	item := bitwardenItem{
		TypeCode:    typeCode.Int(),
		HasTypeCode: typeCode.Type == gjson.Number && typeCode.Num == float64(typeCode.Int()),
		Name:        raw.Get("name").String(),
		Notes:       raw.Get("notes").String(),
		FolderID:    raw.Get("folderId").String(),
		Favorite:    truthy(raw.Get("favorite")),
		Fields:      bitwardenFields(raw.Get("fields")),
	}

	login := raw.Get("login")
	item.Login = bitwardenLogin{
		Username: login.Get("username").String(),
		Password: login.Get("password").String(),
		TOTP:     login.Get("totp").String(),
	}
	for _, u := range login.Get("uris").Array() {
		item.Login.URIs = append(item.Login.URIs, u.Get("uri").String())
	}

	card := raw.Get("card")
	item.Card = bitwardenCard{
		Present:        truthy(card),
		CardholderName: card.Get("cardholderName").String(),
		Number:         card.Get("number").String(),
		ExpYear:        card.Get("expYear").String(),
		Code:           card.Get("code").String(),
	}
	if expMonth := card.Get("expMonth"); truthy(expMonth) {
		item.Card.ExpMonth = expMonth.String()
	}

	identity := raw.Get("identity")
	item.Identity = bitwardenIdentity{
		Title:          identity.Get("title").String(),
		FirstName:      identity.Get("firstName").String(),
		MiddleName:     identity.Get("middleName").String(),
		LastName:       identity.Get("lastName").String(),
		Username:       identity.Get("username").String(),
		Email:          identity.Get("email").String(),
		Phone:          identity.Get("phone").String(),
		Address1:       identity.Get("address1").String(),
		Address2:       identity.Get("address2").String(),
		Address3:       identity.Get("address3").String(),
		PostalCode:     identity.Get("postalCode").String(),
		City:           identity.Get("city").String(),
		State:          identity.Get("state").String(),
		Country:        identity.Get("country").String(),
		SSN:            identity.Get("ssn").String(),
		PassportNumber: identity.Get("passportNumber").String(),
		LicenseNumber:  identity.Get("licenseNumber").String(),
	}

	if sshKey := raw.Get("sshKey"); sshKey.IsObject() {
		sshKey.ForEach(func(key, value gjson.Result) bool {
			item.SSHKey = append(item.SSHKey, LabeledField(key.String(), value.String()))
			return true
		})
	}

	return item
}

// bitwardenFields converts the item-level name/value pairs, in source order.
func bitwardenFields(list gjson.Result) []entities.CustomField {
	var fields []entities.CustomField
	for _, f := range list.Array() {
		fields = append(fields, LabeledField(f.Get("name").String(), f.Get("value").String()))
	}
	return fields
}

func deriveBitwardenLogin(item bitwardenItem) (entities.RecordType, entities.RecordData) {
	websites := make([]string, 0, len(item.Login.URIs))
	for _, uri := range item.Login.URIs {
		websites = append(websites, utils.EnsureScheme(uri))
	}

	fields := append([]entities.CustomField{}, item.Fields...)
	fields = optionalField(fields, "TOTP", item.Login.TOTP)

	return entities.RecordTypeLogin, &entities.LoginData{
		Common:   common(item.Name, fields),
		Username: item.Login.Username,
		Password: item.Login.Password,
		Note:     item.Notes,
		Websites: websites,
	}
}

func deriveBitwardenNote(item bitwardenItem) (entities.RecordType, entities.RecordData) {
	return entities.RecordTypeNote, &entities.NoteData{
		Common: common(item.Name, item.Fields),
		Note:   item.Notes,
	}
}

func deriveBitwardenCard(item bitwardenItem) (entities.RecordType, entities.RecordData) {
	card := item.Card

	return entities.RecordTypeCreditCard, &entities.CreditCardData{
		Common:       common(item.Name, item.Fields),
		Name:         card.CardholderName,
		Number:       whitespace.ReplaceAllString(card.Number, ""),
		ExpireDate:   expireDate(card),
		SecurityCode: card.Code,
		Note:         item.Notes,
	}
}

// expireDate renders "MM YY" with "__" standing in for a missing part.
// Items without a card block get an empty date.
func expireDate(card bitwardenCard) string {
	if !card.Present {
		return ""
	}

	month := "__"
	if card.ExpMonth != "" {
		month = padLeft(card.ExpMonth, 2, '0')
	}

	year := card.ExpYear
	if year == "" {
		year = "__"
	}
	if len(year) > 2 {
		year = year[len(year)-2:]
	}

	return month + " " + year
}

func deriveBitwardenIdentity(item bitwardenItem) (entities.RecordType, entities.RecordData) {
	id := item.Identity

	var fields []entities.CustomField
	fields = optionalField(fields, "Title", id.Title)
	fields = optionalField(fields, "Username", id.Username)
	fields = optionalField(fields, "SSN", id.SSN)
	fields = append(fields, item.Fields...)

	return entities.RecordTypeIdentity, &entities.IdentityData{
		Common:               common(item.Name, fields),
		FullName:             joinNonEmpty(" ", id.FirstName, id.MiddleName, id.LastName),
		Email:                id.Email,
		PhoneNumber:          id.Phone,
		Address:              joinNonEmpty(", ", id.Address1, id.Address2, id.Address3),
		Zip:                  id.PostalCode,
		City:                 id.City,
		Region:               id.State,
		Country:              id.Country,
		PassportNumber:       id.PassportNumber,
		DrivingLicenseNumber: id.LicenseNumber,
		Note:                 item.Notes,
	}
}

// deriveBitwardenSSHKey keeps the notes as the first field, even when empty,
// followed by the item fields and one field per SSH key attribute.
func deriveBitwardenSSHKey(item bitwardenItem) (entities.RecordType, entities.RecordData) {
	fields := []entities.CustomField{NoteField(item.Notes)}
	fields = append(fields, item.Fields...)
	fields = append(fields, item.SSHKey...)

	return entities.RecordTypeCustom, &entities.CustomData{
		Common: common(item.Name, fields),
	}
}

func deriveBitwardenGeneric(item bitwardenItem) (entities.RecordType, entities.RecordData) {
	return entities.RecordTypeCustom, &entities.CustomData{
		Common: common(item.Name, item.Fields),
	}
}

// truthy mirrors how exports use presence as a flag: missing, null, false,
// empty string and zero are all treated as unset.
func truthy(r gjson.Result) bool {
	switch r.Type {
	case gjson.Null:
		return false
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.Number:
		return r.Num != 0
	case gjson.String:
		return r.Str != ""
	default:
		return r.Exists()
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func padLeft(s string, width int, pad byte) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(string(pad), width-len(s)) + s
}
