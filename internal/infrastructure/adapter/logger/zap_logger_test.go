package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

func newObservedLogger() (*ZapLogger, *observer.ObservedLogs) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	obsCore, logs := observer.New(level)
	return &ZapLogger{logger: zap.New(obsCore), level: level}, logs
}

func TestZapLoggerLevels(t *testing.T) {
	l, logs := newObservedLogger()

	l.Debug("hidden", nil)
	l.Info("visible", map[string]any{"reference": "TX1"})
	assert.Equal(t, 1, logs.Len())
	assert.Equal(t, "TX1", logs.All()[0].ContextMap()["reference"])

	l.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, l.GetLevel())
	l.Debug("now visible", nil)
	assert.Equal(t, 2, logs.Len())

	l.SetLevel(core.LogLevelError)
	l.Warn("hidden", nil)
	assert.Equal(t, 2, logs.Len())
}

func TestZapLoggerWith(t *testing.T) {
	l, logs := newObservedLogger()

	child := l.With(map[string]any{"request_id": "abc"})
	child.Info("webhook processed", map[string]any{"outcome": "credited"})

	entry := logs.All()[0]
	assert.Equal(t, "abc", entry.ContextMap()["request_id"])
	assert.Equal(t, "credited", entry.ContextMap()["outcome"])

	l.SetLevel(core.LogLevelError)
	child.Info("suppressed by shared level", nil)
	assert.Equal(t, 1, logs.Len())
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, core.LogLevelDebug, core.ParseLogLevel("DEBUG"))
	assert.Equal(t, core.LogLevelWarn, core.ParseLogLevel("warning"))
	assert.Equal(t, core.LogLevelError, core.ParseLogLevel("error"))
	assert.Equal(t, core.LogLevelInfo, core.ParseLogLevel("unknown"))
}
