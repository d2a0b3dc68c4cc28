//go:build !integration

package app

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/translate-service/config"
	"github.com/guttosm/translate-service/internal/credentials"
	"github.com/guttosm/translate-service/internal/domain/model"
	"github.com/guttosm/translate-service/internal/http"
)

func TestInitializeRouter(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*config.Config)
		auth     *AuthComponents
		validate func(*testing.T, *RouterComponents)
	}{
		{
			name: "creates handlers without database",
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components.Handlers.Translation)
				assert.NotNil(t, components.Handlers.Config)
				assert.NotNil(t, components.Handlers.Jobs)
				assert.NotNil(t, components.HealthHandler)
				assert.False(t, components.Config.EnableAuth)
				assert.Nil(t, components.Config.Tokens)
				assert.Equal(t, 100, components.Config.RateLimit)
			},
		},
		{
			name: "creates router with auth enabled",
			mutate: func(cfg *config.Config) {
				cfg.Server.RateLimit = 50
				cfg.Server.RateWindow = 30 * time.Second
				cfg.Auth = config.AuthConfig{Enabled: true, APIKeys: map[string]bool{"test-key": true}}
			},
			auth: &AuthComponents{},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.True(t, components.Config.EnableAuth)
				assert.Equal(t, map[string]bool{"test-key": true}, components.Config.APIKeys)
				assert.Equal(t, 30*time.Second, components.Config.RateWindow)
				assert.Nil(t, components.Config.Tokens)
			},
		},
		{
			name: "passes token validator",
			mutate: func(cfg *config.Config) {
				cfg.Auth = config.AuthConfig{Enabled: true, JWTSecretKey: "secret"}
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components.Config.Tokens)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}
			services, err := InitializeServices(cfg, nil)
			require.NoError(t, err)

			auth := tt.auth
			if auth == nil {
				auth = InitializeAuth(cfg.Auth)
			}

			components := InitializeRouter(services, nil, auth, cfg)
			require.NotNil(t, components)
			tt.validate(t, components)
		})
	}
}

func TestInitializeRouter_Readiness(t *testing.T) {
	t.Setenv(credentials.EnvAppID, "")
	t.Setenv(credentials.EnvSecretKey, "")
	cfg := testConfig(t)
	services, err := InitializeServices(cfg, nil)
	require.NoError(t, err)

	components := InitializeRouter(services, nil, InitializeAuth(cfg.Auth), cfg)
	router, stop := http.NewRouter(components.Handlers, components.HealthHandler, components.Config)
	defer stop()

	readiness := func() map[string]interface{} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(nethttp.MethodGet, "/readyz", nil))
		require.Equal(t, nethttp.StatusOK, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return body
	}

	body := readiness()
	assert.Equal(t, "degraded", body["status"])
	checks := body["checks"].(map[string]interface{})
	assert.Equal(t, "ok", checks["scratch_dir"])
	assert.Equal(t, errCredentialsNotConfigured.Error(), checks["credentials"])

	require.NoError(t, services.Credentials.Set(model.Credentials{AppID: "app", SecretKey: "key"}))
	assert.Equal(t, "ok", readiness()["status"])
}
