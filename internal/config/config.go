package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Log
		Output
		Import
	}

	HTTP struct {
		Port           int32
		Host           string
		MaxUploadBytes int64
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}

	Log struct {
		Level  string // debug, info, warn, error
		Format string // text or json
	}
	Output struct {
		Format string // json (canonical records) or csv (summary)
		Pretty bool   // Indent JSON output
		Path   string // Empty writes to stdout
	}
	Import struct {
		Provider string // bitwarden or protonpass
		Format   string // Export file type; empty means guess from the file extension
	}
)

// flagKeys maps CLI flag names onto config keys. Flags only override a value
// when they are set explicitly.
var flagKeys = map[string]string{
	"port":          "port",
	"host":          "host",
	"log-level":     "vaultport_log_level",
	"log-format":    "vaultport_log_format",
	"output-format": "vaultport_output_format",
	"pretty":        "vaultport_pretty",
	"output":        "vaultport_output_path",
	"provider":      "vaultport_provider",
	"format":        "vaultport_import_format",
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("max_upload_bytes", DefaultMaxUploadBytes)
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("vaultport_log_level", DefaultLogLevel)
	v.SetDefault("vaultport_log_format", "text")
	v.SetDefault("vaultport_output_format", DefaultOutputFormat)
	v.SetDefault("vaultport_pretty", true)
	v.SetDefault("vaultport_output_path", "")
	v.SetDefault("vaultport_provider", DefaultProvider)
	v.SetDefault("vaultport_import_format", "")
	return v
}

// NewConfig reads the configuration from the environment.
func NewConfig() *Config {
	return fromViper(newViper())
}

// NewConfigWithFlags reads the configuration from the environment and lets
// explicitly set flags in fs take precedence.
func NewConfigWithFlags(fs *pflag.FlagSet) (*Config, error) {
	v := newViper()
	for flagName, key := range flagKeys {
		f := fs.Lookup(flagName)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", flagName, err)
		}
	}
	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		HTTP: HTTP{
			Port:           v.GetInt32("PORT"),
			Host:           v.GetString("HOST"),
			MaxUploadBytes: v.GetInt64("MAX_UPLOAD_BYTES"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Log: Log{
			Level:  v.GetString("VAULTPORT_LOG_LEVEL"),
			Format: v.GetString("VAULTPORT_LOG_FORMAT"),
		},
		Output: Output{
			Format: v.GetString("VAULTPORT_OUTPUT_FORMAT"),
			Pretty: v.GetBool("VAULTPORT_PRETTY"),
			Path:   v.GetString("VAULTPORT_OUTPUT_PATH"),
		},
		Import: Import{
			Provider: v.GetString("VAULTPORT_PROVIDER"),
			Format:   v.GetString("VAULTPORT_IMPORT_FORMAT"),
		},
	}
}
