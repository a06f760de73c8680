package envutil_test

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/amp-labs/amp-sort/envutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTooSmall = errors.New("too small")

func TestString(t *testing.T) { //nolint:paralleltest
	t.Run("process environment", func(t *testing.T) {
		t.Setenv("AMP_SORT_TEST_STRING", "hello")

		reader := envutil.String(t.Context(), "AMP_SORT_TEST_STRING")
		value, err := reader.Value()
		require.NoError(t, err)
		assert.Equal(t, "hello", value)
		assert.Equal(t, "AMP_SORT_TEST_STRING", reader.Key())
	})

	t.Run("context override wins", func(t *testing.T) {
		t.Setenv("AMP_SORT_TEST_STRING", "from-env")

		ctx := envutil.WithEnvOverride(t.Context(), "AMP_SORT_TEST_STRING", "from-ctx")
		assert.Equal(t, "from-ctx", envutil.String(ctx, "AMP_SORT_TEST_STRING").ValueOrElse(""))
	})

	t.Run("missing value", func(t *testing.T) {
		reader := envutil.String(t.Context(), "AMP_SORT_TEST_STRING_MISSING")
		_, err := reader.Value()
		require.ErrorIs(t, err, envutil.ErrEnvVarMissing)
		assert.False(t, reader.HasValue())
	})

	t.Run("with default", func(t *testing.T) {
		reader := envutil.String(t.Context(), "AMP_SORT_TEST_STRING_MISSING", envutil.Default("default"))
		value, err := reader.Value()
		require.NoError(t, err)
		assert.Equal(t, "default", value)
	})
}

func TestBool(t *testing.T) {
	t.Parallel()

	ctx := envutil.WithEnvOverride(t.Context(), "LOG_JSON", "true")
	assert.True(t, envutil.Bool(ctx, "LOG_JSON").ValueOrElse(false))

	bad := envutil.WithEnvOverride(t.Context(), "LOG_JSON", "nope")
	reader := envutil.Bool(bad, "LOG_JSON", envutil.Default(false))

	_, err := reader.Value()
	require.ErrorIs(t, err, envutil.ErrBadEnvVar)
	require.Error(t, reader.Error())
	assert.False(t, reader.ValueOrElse(false))
}

func TestInt(t *testing.T) {
	t.Parallel()

	ctx := envutil.WithEnvOverride(t.Context(), "SORT_K", " 4 ")
	assert.Equal(t, 4, envutil.Int(ctx, "SORT_K").ValueOrElse(0))

	validated := envutil.Int(ctx, "SORT_K", envutil.Validate(func(v int) error {
		if v < 10 {
			return errTooSmall
		}

		return nil
	}))

	_, err := validated.Value()
	require.ErrorIs(t, err, errTooSmall)
}

func TestIfMissing(t *testing.T) {
	t.Parallel()

	reader := envutil.Int(t.Context(), "AMP_SORT_TEST_INT_MISSING", envutil.IfMissing[int](errTooSmall))

	_, err := reader.Value()
	require.ErrorIs(t, err, errTooSmall)
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw      string
		expected slog.Level
		wantErr  bool
	}{
		{raw: "debug", expected: slog.LevelDebug},
		{raw: " INFO", expected: slog.LevelInfo},
		{raw: "Warning", expected: slog.LevelWarn},
		{raw: "error", expected: slog.LevelError},
		{raw: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			ctx := envutil.WithEnvOverride(t.Context(), "LOG_LEVEL", tt.raw)
			level, err := envutil.SlogLevel(ctx, "LOG_LEVEL").Value()

			if tt.wantErr {
				require.ErrorIs(t, err, envutil.ErrInvalidLogLevel)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestFilePath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o600))

	ctx := envutil.WithEnvOverride(t.Context(), "SORT_SCENARIOS", path)
	value, err := envutil.FilePath(ctx, "SORT_SCENARIOS").Value()
	require.NoError(t, err)
	assert.Equal(t, path, value)

	ctx = envutil.WithEnvOverride(t.Context(), "SORT_SCENARIOS", dir)
	_, err = envutil.FilePath(ctx, "SORT_SCENARIOS").Value()
	require.ErrorIs(t, err, envutil.ErrNotAFile)

	ctx = envutil.WithEnvOverride(t.Context(), "SORT_SCENARIOS", filepath.Join(dir, "missing.yaml"))
	_, err = envutil.FilePath(ctx, "SORT_SCENARIOS").Value()
	require.ErrorIs(t, err, os.ErrNotExist)
}
