//go:build !integration

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeApp(t *testing.T) {
	t.Setenv("BAIDU_APP_ID", "")
	t.Setenv("BAIDU_SECRET_KEY", "")

	cfg := testConfig(t)
	application, err := InitializeApp(cfg)
	require.NoError(t, err)
	defer func() { assert.NoError(t, application.Close(context.Background())) }()

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
	}{
		{name: "liveness", method: http.MethodGet, path: "/healthz", expectedStatus: http.StatusOK},
		{name: "readiness without database", method: http.MethodGet, path: "/readyz", expectedStatus: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", expectedStatus: http.StatusOK},
		{name: "languages", method: http.MethodGet, path: "/api/languages", expectedStatus: http.StatusOK},
		{name: "config before setup", method: http.MethodGet, path: "/api/config", expectedStatus: http.StatusOK},
		{name: "jobs without database", method: http.MethodGet, path: "/api/jobs", expectedStatus: http.StatusServiceUnavailable},
		{name: "translate without credentials", method: http.MethodPost, path: "/api/translate", body: `{"text":"hi"}`, expectedStatus: http.StatusBadRequest},
		{name: "same language needs no credentials", method: http.MethodPost, path: "/api/translate", body: `{"text":"hi","from":"en","to":"en"}`, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			w := httptest.NewRecorder()
			application.Router.ServeHTTP(w, req)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
