package app

import (
	"context"
	"errors"

	"github.com/guttosm/translate-service/config"
	"github.com/guttosm/translate-service/internal/credentials"
	"github.com/guttosm/translate-service/internal/http"
)

var errCredentialsNotConfigured = errors.New("provider credentials not configured")

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handlers      http.Handlers
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	auth *AuthComponents,
	cfg config.Config,
) *RouterComponents {
	var history *http.JobsHandler
	if dbComponents != nil {
		history = http.NewJobsHandler(dbComponents.History)
	} else {
		history = http.NewJobsHandler(nil)
	}

	handlers := http.Handlers{
		Translation: http.NewHandler(services.Translator, http.WithMaxUploadBytes(cfg.Upload.MaxBytes)),
		Config:      http.NewConfigHandler(services.Credentials),
		Jobs:        history,
	}

	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterChecker("scratch_dir", http.HealthCheckFunc(services.Stager.Check))
	healthHandler.RegisterOptional("credentials", credentialsCheck(services.Credentials))
	if dbComponents != nil {
		healthHandler.RegisterOptional("mongodb", http.HealthCheckFunc(dbComponents.DB.HealthCheck))
		healthHandler.RegisterCircuitBreaker("mongodb_jobs", dbComponents.JobsCircuitBreaker)
	}

	routerCfg := http.RouterConfig{
		RateLimit:   cfg.Server.RateLimit,
		RateWindow:  cfg.Server.RateWindow,
		EnableAuth:  cfg.Auth.Enabled,
		APIKeys:     cfg.Auth.APIKeys,
		CORSOrigins: cfg.Server.CORSOrigins,
		SwaggerUser: cfg.Server.SwaggerUser,
		SwaggerPass: cfg.Server.SwaggerPass,
	}
	// a nil *TokenServiceImpl must not become a non-nil interface
	if auth != nil && auth.Tokens != nil {
		routerCfg.Tokens = auth.Tokens
	}

	return &RouterComponents{
		Handlers:      handlers,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}

func credentialsCheck(store credentials.Store) http.HealthChecker {
	return http.HealthCheckFunc(func(context.Context) error {
		creds, err := store.Get()
		if err != nil {
			return err
		}
		if !creds.IsComplete() {
			return errCredentialsNotConfigured
		}
		return nil
	})
}
