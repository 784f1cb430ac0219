package config

const (
	DefaultLogLevel = "info"

	// DefaultOutputFormat writes canonical records as a JSON array
	DefaultOutputFormat = "json"

	DefaultProvider = "bitwarden"

	// DefaultMaxUploadBytes caps export uploads accepted by the HTTP server
	DefaultMaxUploadBytes = 32 << 20
)
