package importers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mrlokans/vaultport/internal/entities"
	"github.com/tidwall/gjson"
)

// Format is the export file type chosen by the caller.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// Provider names the credential manager an export comes from.
type Provider string

const (
	ProviderBitwarden  Provider = "bitwarden"
	ProviderProtonPass Provider = "protonpass"
)

// Providers lists every supported provider in a stable order.
var Providers = []Provider{ProviderBitwarden, ProviderProtonPass}

// ParseProvider resolves a case-insensitive provider name.
func ParseProvider(name string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := normalizers[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedProvider, name)
	}
	return p, nil
}

type normalizer struct {
	json func(tree gjson.Result) []entities.Record
	csv  func(text string) ([]entities.Record, error)
}

var normalizers = map[Provider]normalizer{
	ProviderBitwarden:  {json: ParseBitwardenJSON, csv: ParseBitwardenCSV},
	ProviderProtonPass: {json: ParseProtonPassJSON, csv: ParseProtonPassCSV},
}

// ParseBitwarden normalizes a Bitwarden export given as text.
func ParseBitwarden(data string, fileType Format) ([]entities.Record, error) {
	return Parse(ProviderBitwarden, data, fileType)
}

// ParseProtonPass normalizes a ProtonPass export given as text.
func ParseProtonPass(data string, fileType Format) ([]entities.Record, error) {
	return Parse(ProviderProtonPass, data, fileType)
}

// Parse routes data to the normalizer of provider for the given file type.
// JSON text is validated and parsed here; CSV text is handed over untouched.
func Parse(provider Provider, data string, fileType Format) ([]entities.Record, error) {
	n, ok := normalizers[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, provider)
	}

	switch fileType {
	case FormatJSON:
		tree, err := parseJSONTree(provider, data)
		if err != nil {
			return nil, err
		}
		return n.json(tree), nil
	case FormatCSV:
		return n.csv(data)
	default:
		return nil, fmt.Errorf("%w: got %q", ErrUnsupportedFormat, fileType)
	}
}

// parseJSONTree rejects syntactically invalid input with the decoder's own
// error before handing the document to gjson.
func parseJSONTree(provider Provider, data string) (gjson.Result, error) {
	var raw json.RawMessage
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		return gjson.Result{}, &MalformedJSONError{Provider: provider, Err: err}
	}
	return gjson.ParseBytes(raw), nil
}
