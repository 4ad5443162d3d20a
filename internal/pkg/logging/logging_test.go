package logging_test

import (
	"bytes"
	"encoding/json"
	"log"
	"log/slog"
	"os"
	"testing"

	"github.com/M-ayank2005/Carryaptos/internal/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(previous)
		log.SetOutput(os.Stderr)
	})

	var buf bytes.Buffer
	logger := logging.Setup(logging.Options{Service: "escrow", Env: "test", Level: "warn", Out: &buf})

	logger.Info("dropped")
	logger.Warn("kept", "orderId", "42")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "kept", record["message"])
	assert.Equal(t, "WARN", record["severity"])
	assert.Equal(t, "escrow", record["service"])
	assert.Equal(t, "test", record["env"])
	assert.Equal(t, "42", record["orderId"])
	assert.Contains(t, record, "timestamp")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logging.ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("verbose"))
}
