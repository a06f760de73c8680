package envutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

var (
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrNotAFile        = errors.New("not a regular file")
)

func parseSlogLevel(value string) (slog.Level, error) {
	switch strings.ToLower(value) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}

func existingFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return path, err
	}

	if !info.Mode().IsRegular() {
		return path, fmt.Errorf("%w: %s", ErrNotAFile, path)
	}

	return path, nil
}
