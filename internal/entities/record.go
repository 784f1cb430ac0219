package entities

// RecordType is the semantic kind of a canonical record.
// ProtonPass may pass through type strings outside of the known set.
type RecordType string

const (
	RecordTypeLogin      RecordType = "login"
	RecordTypeNote       RecordType = "note"
	RecordTypeCreditCard RecordType = "creditCard"
	RecordTypeIdentity   RecordType = "identity"
	RecordTypeCustom     RecordType = "custom"
)

type CustomFieldType string

// CustomFieldTypeNote is currently the only custom field kind.
const CustomFieldTypeNote CustomFieldType = "note"

// CustomField carries provider data that has no canonical slot.
type CustomField struct {
	Type CustomFieldType `json:"type"`
	Note string          `json:"note"`
}

// Record is the provider-agnostic unit handed to the downstream importer.
type Record struct {
	Type       RecordType `json:"type"`
	Data       RecordData `json:"data"`
	Folder     string     `json:"folder"` // empty when the item has no folder or vault
	IsFavorite bool       `json:"isFavorite"`
}

// RecordData is implemented by every per-type data shape.
type RecordData interface {
	common() *Common
}

// Common holds the fields shared by every data shape.
type Common struct {
	Title        string        `json:"title"`
	CustomFields []CustomField `json:"customFields"`
}

func (c *Common) common() *Common { return c }

// Base returns the shared title and custom fields of any data shape.
func Base(d RecordData) *Common {
	if d == nil {
		return nil
	}
	return d.common()
}

type LoginData struct {
	Common
	Username string   `json:"username"`
	Password string   `json:"password"`
	Note     string   `json:"note"`
	Websites []string `json:"websites"`
}

type NoteData struct {
	Common
	Note string `json:"note"`
}

type CreditCardData struct {
	Common
	Name         string `json:"name"`
	Number       string `json:"number"`
	ExpireDate   string `json:"expireDate"` // "MM YY", "__" for a missing part
	SecurityCode string `json:"securityCode"`
	PinCode      string `json:"pinCode"`
	Note         string `json:"note"`
}

type IdentityData struct {
	Common
	FullName             string `json:"fullName"`
	Email                string `json:"email"`
	PhoneNumber          string `json:"phoneNumber"`
	Address              string `json:"address"`
	Zip                  string `json:"zip"`
	City                 string `json:"city"`
	Region               string `json:"region"`
	Country              string `json:"country"`
	PassportNumber       string `json:"passportNumber"`
	DrivingLicenseNumber string `json:"drivingLicenseNumber"`
	Note                 string `json:"note"`

	// Only ProtonPass identities carry document details; nil for Bitwarden.
	*IdentityDocuments
}

type IdentityDocuments struct {
	PassportFullName             string `json:"passportFullName"`
	PassportIssuingCountry       string `json:"passportIssuingCountry"`
	PassportDob                  string `json:"passportDob"`
	PassportGender               string `json:"passportGender"`
	IDCardNumber                 string `json:"idCardNumber"`
	IDCardIssuingCountry         string `json:"idCardIssuingCountry"`
	DrivingLicenseIssuingCountry string `json:"drivingLicenseIssuingCountry"`
}

// CustomData is the generic shape: a title plus custom fields.
type CustomData struct {
	Common
}

// Compile-time interface checks
var (
	_ RecordData = (*LoginData)(nil)
	_ RecordData = (*NoteData)(nil)
	_ RecordData = (*CreditCardData)(nil)
	_ RecordData = (*IdentityData)(nil)
	_ RecordData = (*CustomData)(nil)
)
