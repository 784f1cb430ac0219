package logging

import (
	"io"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/mrlokans/vaultport/internal/config"
)

// New builds a logger writing to w with the level and formatter from cfg.
// Unknown levels fall back to info.
func New(w io.Writer, cfg config.Log) *charmlog.Logger {
	logger := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           ParseLevel(cfg.Level),
		Prefix:          "vaultport",
	})

	if strings.EqualFold(cfg.Format, "json") {
		logger.SetFormatter(charmlog.JSONFormatter)
	} else {
		logger.SetFormatter(charmlog.TextFormatter)
	}

	return logger
}

func ParseLevel(level string) charmlog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return charmlog.DebugLevel
	case "warn", "warning":
		return charmlog.WarnLevel
	case "error":
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}
