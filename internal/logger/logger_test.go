package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		name        string
		level       string
		format      string
		expectLevel zapcore.Level
		expectError bool
	}{
		{name: "Console debug", level: "debug", format: "console", expectLevel: zapcore.DebugLevel},
		{name: "JSON warn", level: "warn", format: "json", expectLevel: zapcore.WarnLevel},
		{name: "Empty level defaults to info", level: "", format: "", expectLevel: zapcore.InfoLevel},
		{name: "Invalid level", level: "loud", format: "json", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			log, err := NewLogger(tc.level, tc.format)
			if tc.expectError {
				assert.Error(t, err)
				assert.Nil(t, log)
				return
			}
			assert.NoError(t, err)
			assert.True(t, log.Core().Enabled(tc.expectLevel))
			assert.False(t, log.Core().Enabled(tc.expectLevel-1))
		})
	}
}
