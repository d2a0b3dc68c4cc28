// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/translate-service/config"
	"github.com/guttosm/translate-service/internal/http"
	"github.com/guttosm/translate-service/internal/service"
)

// App is the wired application.
type App struct {
	Router   *gin.Engine
	Services *ServiceComponents

	db       *DatabaseComponents
	stopRate func()
}

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) (*App, error) {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg.Log)

	dbComponents := InitializeDatabase(cfg.Database)

	var recorder service.JobRecorder
	if dbComponents != nil {
		recorder = dbComponents.Recorder
	}

	serviceComponents, err := InitializeServices(cfg, recorder)
	if err != nil {
		_ = dbComponents.Close(context.Background())
		return nil, err
	}

	authComponents := InitializeAuth(cfg.Auth)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, authComponents, cfg)

	router, stopRate := http.NewRouter(routerComponents.Handlers, routerComponents.HealthHandler, routerComponents.Config)

	return &App{
		Router:   router,
		Services: serviceComponents,
		db:       dbComponents,
		stopRate: stopRate,
	}, nil
}

// Close releases background workers, the OCR engine and the database connection.
func (a *App) Close(ctx context.Context) error {
	if a.stopRate != nil {
		a.stopRate()
	}
	if a.Services != nil && a.Services.OCR != nil {
		if err := a.Services.OCR.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close OCR engine")
		}
	}
	return a.db.Close(ctx)
}
