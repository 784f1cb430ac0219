package importers

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned for any file type other than json or csv.
var ErrUnsupportedFormat = errors.New("unsupported file type, please use JSON or CSV")

// ErrUnsupportedProvider is returned when no normalizer is registered for a provider.
var ErrUnsupportedProvider = errors.New("unsupported provider, please use bitwarden or protonpass")

// ErrUnreadableCSV wraps tokenizer failures on CSV exports.
var ErrUnreadableCSV = errors.New("unreadable CSV export")

// ErrMalformedJSON matches every MalformedJSONError via errors.Is.
var ErrMalformedJSON = errors.New("malformed JSON export")

// MalformedJSONError wraps the decoder error for an export that is not valid JSON.
type MalformedJSONError struct {
	Provider Provider
	Err      error
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrMalformedJSON, e.Provider, e.Err)
}

func (e *MalformedJSONError) Unwrap() error {
	return e.Err
}

func (e *MalformedJSONError) Is(target error) bool {
	return target == ErrMalformedJSON
}
