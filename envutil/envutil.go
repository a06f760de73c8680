// Package envutil reads typed configuration from environment variables.
//
// Every reader returns a Reader, which carries the key, whether a value was
// present, any parse error, and the parsed value. Options such as Default and
// Validate adjust a Reader before the caller extracts the value:
//
//	level := envutil.SlogLevel(ctx, "LOG_LEVEL", envutil.Default(slog.LevelInfo)).ValueOrFatal()
//
// Values can be overridden per context with WithEnvOverride, which tests use
// instead of mutating the process environment.
package envutil

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// get returns a Reader for the given key, preferring a context override
// over the process environment.
func get(ctx context.Context, key string) Reader[string] {
	val, ok := getEnvOverride(ctx, key)
	if !ok {
		val, ok = os.LookupEnv(key)
	}

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the given environment variable key.
func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(get(ctx, key), opts)
}

// Bool parses the variable with strconv.ParseBool.
func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(ctx, key), strconv.ParseBool), opts)
}

// Int parses the variable as a base-10 int.
func Int(ctx context.Context, key string, opts ...Option[int]) Reader[int] {
	return apply(Map(Map(get(ctx, key), trimString), strconv.Atoi), opts)
}

// SlogLevel parses "debug", "info", "warn" or "error", ignoring case and
// surrounding whitespace.
func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(Map(get(ctx, key), trimString), parseSlogLevel), opts)
}

// FilePath reads a path and checks that it names an existing regular file.
func FilePath(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(Map(Map(get(ctx, key), trimString), existingFile), opts)
}

func trimString(value string) (string, error) {
	return strings.TrimSpace(value), nil
}
