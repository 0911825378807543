package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestBasicLogger_PrefixesAndSplitsLines(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(&buf, false)

	l.Info("funded %s", "0xabc")
	l.Warn("line one\nline two")
	l.Error("boom")
	l.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "funded 0xabc")
	assert.Contains(t, out, "Warning: line one")
	assert.Contains(t, out, "Warning: line two")
	assert.Contains(t, out, "Error: boom")
	assert.NotContains(t, out, "hidden")
}

func TestBasicLogger_VerboseShowsDebug(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(&buf, true)

	l.Debug("step %d", 3)
	assert.Contains(t, buf.String(), "Debug: step 3")
}

func TestZapLogger_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLoggerFrom(zap.New(core))

	l.Info("hello %s", "world")
	l.Warn("careful")
	l.Error("failed: %v", "reason")
	l.Debug("details")
	l.Info("\n")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "hello world", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "failed: reason", entries[2].Message)
	assert.Equal(t, zapcore.DebugLevel, entries[3].Level)
}
