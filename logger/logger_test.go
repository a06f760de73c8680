package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/amp-labs/amp-sort/envutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBadWidth = errors.New("bad width")

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var records []map[string]any

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}

		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))

		records = append(records, rec)
	}

	return records
}

func TestGet(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "amp-sort-test",
		JSON:      true,
		MinLevel:  slog.LevelDebug,
		Output:    &buf,
	})

	Get().Info("default subsystem")
	Get(WithSubsystem(t.Context(), "sorter")).Info("overridden subsystem")
	Get(With(t.Context(), "algorithm", "heap")).Info("with values")
	Get(WithMuted(t.Context(), true)).Info("never written")

	records := decodeLines(t, &buf)
	require.Len(t, records, 3)

	assert.Equal(t, "amp-sort-test", records[0]["subsystem"])
	assert.Equal(t, "sorter", records[1]["subsystem"])
	assert.Equal(t, "heap", records[2]["algorithm"])
}

func TestAnnotateError(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{JSON: true, Output: &buf})

	err := AnnotateError(fmt.Errorf("radix: %w", errBadWidth), "width", 3, "index", 7)
	require.ErrorIs(t, err, errBadWidth)
	assert.Equal(t, "radix: bad width", err.Error())

	Get().Warn("rejected input", "error", err, "size", 10)

	records := decodeLines(t, &buf)
	require.Len(t, records, 1)

	assert.Equal(t, "radix: bad width", records[0]["error"])
	assert.InDelta(t, 3, records[0]["width"], 0)
	assert.InDelta(t, 7, records[0]["index"], 0)
	assert.InDelta(t, 10, records[0]["size"], 0)

	assert.NoError(t, AnnotateError(nil, "k", 1))
}

func TestConfigureLogging(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ctx := envutil.WithEnvOverride(t.Context(), "LOG_JSON", "true")
	ctx = envutil.WithEnvOverride(ctx, "LOG_LEVEL", "warn")

	log, err := ConfigureLogging(ctx, "demo", WithOutput(&buf))
	require.NoError(t, err)

	log.Info("filtered out")
	log.Warn("kept")

	records := decodeLines(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "kept", records[0]["msg"])
	assert.Equal(t, "demo", GetSubsystem(t.Context()))

	bad := envutil.WithEnvOverride(t.Context(), "LOG_OUTPUT", "syslog")

	_, err = ConfigureLogging(bad, "demo")
	require.ErrorIs(t, err, ErrInvalidLogOutput)
}
