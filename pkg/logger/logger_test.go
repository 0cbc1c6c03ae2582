package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acme/acme/pkg/logger"
)

func captureBase(t *testing.T, env string) *bytes.Buffer {
	t.Helper()
	prev := logger.L
	t.Cleanup(func() { logger.SetOutput(prev) })

	var buf bytes.Buffer
	logger.SetOutput(logger.New(&buf, env))
	return &buf
}

func TestLogActionWritesAuditLine(t *testing.T) {
	buf := captureBase(t, "local")

	got := logger.LogAction("saying hello")

	assert.Equal(t, "Action: saying hello", got)
	assert.Contains(t, buf.String(), "msg=action")
	assert.Contains(t, buf.String(), `description="saying hello"`)
}

func TestProductionUsesJSON(t *testing.T) {
	buf := captureBase(t, "production")

	logger.Info("order placed", "vendor", 7)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "order placed", line["msg"])
	assert.EqualValues(t, 7, line["vendor"])
}

func TestProductionDropsDebug(t *testing.T) {
	buf := captureBase(t, "prod")

	logger.Debug("noisy")

	assert.Empty(t, buf.String())
}

func TestSetOutputIgnoresNil(t *testing.T) {
	prev := logger.L
	logger.SetOutput(nil)
	assert.Same(t, prev, logger.L)
}

func TestActionLoggerFunc(t *testing.T) {
	var seen string
	var a logger.ActionLogger = logger.ActionLoggerFunc(func(d string) string {
		seen = d
		return "ok"
	})

	assert.Equal(t, "ok", a.LogAction("audit"))
	assert.Equal(t, "audit", seen)
}
