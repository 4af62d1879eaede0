// Package log writes diagnostics to a file so the terminal stays free for
// the TUI.
package log

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/verte-zerg/typerush/internal/config"
)

// EnvPath overrides the log directory.
const EnvPath = "TYPERUSH_LOG_PATH"

const fileName = "typerush.log"

// File is an open diagnostics log.
type File struct {
	file   *os.File
	Logger zerolog.Logger
}

// ResolveDir picks the log directory: flag, then environment, then the XDG
// state directory.
func ResolveDir(flagPath string) (string, error) {
	if flagPath != "" {
		return absPath(flagPath)
	}
	if envPath := os.Getenv(EnvPath); envPath != "" {
		return absPath(envPath)
	}
	return config.DefaultLogDir(), nil
}

func absPath(p string) (string, error) {
	if filepath.IsAbs(p) {
		return p, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, p), nil
}

// Open creates dir if needed and appends to the log file inside it.
func Open(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, fileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	writer := zerolog.ConsoleWriter{
		Out:        f,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	return &File{
		file:   f,
		Logger: zerolog.New(writer).With().Timestamp().Int("pid", os.Getpid()).Logger(),
	}, nil
}

// Close closes the log file.
func (f *File) Close() error {
	return f.file.Close()
}
