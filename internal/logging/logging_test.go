package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/agenthands/advent/internal/config"
	"github.com/agenthands/advent/internal/logging"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LoggingConfig
		verbose bool
		want    zapcore.Level
	}{
		{"json info", config.LoggingConfig{Level: "info", JSON: true}, false, zapcore.InfoLevel},
		{"console warn", config.LoggingConfig{Level: "warn"}, false, zapcore.WarnLevel},
		{"default level", config.LoggingConfig{}, false, zapcore.InfoLevel},
		{"verbose wins", config.LoggingConfig{Level: "error"}, true, zapcore.DebugLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := logging.New(tt.cfg, tt.verbose)
			require.NoError(t, err)
			defer logger.Sync() //nolint:errcheck

			assert.True(t, logger.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestNewBadLevel(t *testing.T) {
	_, err := logging.New(config.LoggingConfig{Level: "loud"}, false)
	assert.ErrorContains(t, err, "loud")
}
