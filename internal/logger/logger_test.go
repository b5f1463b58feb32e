package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerDefaults(t *testing.T) {
	l := newLogger()

	assert.Equal(t, logrus.WarnLevel, l.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, l.Formatter)
}

func TestGetLoggerFallsBackToGlobal(t *testing.T) {
	got := G(context.Background())
	assert.Equal(t, L.Logger, got.Logger)
}

func TestWithLoggerRoundTrip(t *testing.T) {
	custom := logrus.NewEntry(logrus.New()).WithField("component", "discovery")
	ctx := WithLogger(context.Background(), custom)

	got := G(ctx)
	assert.Equal(t, "discovery", got.Data["component"])
}

func TestSetLogLevel(t *testing.T) {
	original := L.Logger.GetLevel()
	t.Cleanup(func() { L.Logger.SetLevel(original) })

	require.NoError(t, SetLogLevel("debug"))
	assert.Equal(t, logrus.DebugLevel, L.Logger.GetLevel())

	assert.Error(t, SetLogLevel("chatty"))
}

func TestSetLogFormatJSON(t *testing.T) {
	original := L.Logger.Formatter
	originalOut := L.Logger.Out
	t.Cleanup(func() {
		L.Logger.Formatter = original
		L.Logger.SetOutput(originalOut)
	})

	var buf bytes.Buffer
	SetLogOutput(&buf)
	SetLogFormat("json")

	L.Warn("skill id overwritten")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "skill id overwritten", entry["message"])
	assert.Equal(t, "warning", entry["logLevel"])
}
