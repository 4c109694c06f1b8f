package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// ParseLevel returns the configured log level. Empty means info.
func (l LogConfig) ParseLevel() (log.Level, error) {
	if strings.TrimSpace(l.Level) == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(l.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("config: log.level: %w", err)
	}
	return level, nil
}

// NewLogger builds a logger writing to w with the configured level.
// An invalid level falls back to info.
func (l LogConfig) NewLogger(w io.Writer, prefix string) *log.Logger {
	level, _ := l.ParseLevel()
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: l.Timestamps,
		Prefix:          prefix,
		Level:           level,
	})
}
