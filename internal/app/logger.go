// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/translate-service/config"
	"github.com/guttosm/translate-service/internal/logger"
)

// InitializeLogger initializes the JSON logger from the log configuration.
func InitializeLogger(cfg config.LogConfig) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	logger.Init(level, cfg.Pretty)
}
