// Package app provides authentication initialization.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/translate-service/config"
	"github.com/guttosm/translate-service/internal/service"
)

// AuthComponents holds the admin authentication components.
type AuthComponents struct {
	// Tokens is nil when no JWT secret is configured.
	Tokens *service.TokenServiceImpl
}

// InitializeAuth builds the token service used by admin routes.
func InitializeAuth(cfg config.AuthConfig) *AuthComponents {
	components := &AuthComponents{}

	if cfg.JWTSecretKey != "" {
		components.Tokens = service.NewTokenService(service.TokenConfig{
			SecretKey: cfg.JWTSecretKey,
			TTL:       cfg.TokenTTL,
		})
	}

	if !cfg.Enabled {
		return components
	}

	if len(cfg.APIKeys) == 0 && components.Tokens == nil {
		log.Warn().Msg("AUTH_ENABLED is set but neither API_KEYS nor JWT_SECRET_KEY is configured, admin routes are open")
		return components
	}

	log.Info().
		Int("api_keys", len(cfg.APIKeys)).
		Bool("jwt", components.Tokens != nil).
		Msg("Admin authentication enabled")
	return components
}
