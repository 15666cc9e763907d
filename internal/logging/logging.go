// ABOUTME: File-backed debug logger for commands and the TUI
// ABOUTME: Keeps log output off the terminal so it never corrupts screens

package logging

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Open returns a logger writing to debug.log in the config directory.
// If configDir is empty or the file cannot be opened, logging is
// disabled and a no-op logger is returned along with a nil closer.
func Open(configDir string) (zerolog.Logger, func(), error) {
	if configDir == "" {
		return zerolog.Nop(), nil, nil
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return zerolog.Nop(), nil, err
	}

	logPath := filepath.Join(configDir, "debug.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	logger := zerolog.New(f).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	closer := func() { f.Close() }
	return logger, closer, nil
}
