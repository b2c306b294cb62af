package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		env     string
		enabled zapcore.Level
		skipped zapcore.Level
	}{
		{"default level", "", "development", zapcore.InfoLevel, zapcore.DebugLevel},
		{"debug development", "debug", "development", zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{"warn production", "warn", "production", zapcore.WarnLevel, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.level, tt.env)
			require.NoError(t, err)

			assert.True(t, log.Core().Enabled(tt.enabled))
			assert.False(t, log.Core().Enabled(tt.skipped))
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud", "development")

	assert.Error(t, err)
}
