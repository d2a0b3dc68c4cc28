//go:build !integration

package app

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/guttosm/translate-service/config"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name          string
		cfg           config.LogConfig
		expectedLevel zerolog.Level
	}{
		{
			name:          "initializes with default log level",
			cfg:           config.LogConfig{},
			expectedLevel: zerolog.InfoLevel,
		},
		{
			name:          "initializes with custom log level",
			cfg:           config.LogConfig{Level: "debug"},
			expectedLevel: zerolog.DebugLevel,
		},
		{
			name:          "initializes with pretty output enabled",
			cfg:           config.LogConfig{Level: "warn", Pretty: true},
			expectedLevel: zerolog.WarnLevel,
		},
		{
			name:          "falls back to info on unknown level",
			cfg:           config.LogConfig{Level: "verbose"},
			expectedLevel: zerolog.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				InitializeLogger(tt.cfg)
			})
			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())
		})
	}
}
