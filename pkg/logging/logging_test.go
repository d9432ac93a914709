package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoggerForModule(t *testing.T) {
	l := LoggerForModule()
	assert.Equal(t, "pkg/logging", l.Module())
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel(" WARN ")
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, l)

	_, err = ParseLevel("chatty")
	assert.Error(t, err)
}

func TestSetLevel(t *testing.T) {
	defer SetLevel(level.Level())

	l := LoggerForName("test")
	SetLevel(zapcore.ErrorLevel)
	assert.False(t, l.Desugar().Core().Enabled(zapcore.InfoLevel))
	SetLevel(zapcore.DebugLevel)
	assert.True(t, l.Desugar().Core().Enabled(zapcore.DebugLevel))
}
