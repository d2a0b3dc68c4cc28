//go:build !integration

package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/translate-service/internal/logger"
)

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		expectedLevel string
	}{
		{name: "success logs info", status: http.StatusOK, expectedLevel: "info"},
		{name: "client error logs warn", status: http.StatusBadRequest, expectedLevel: "warn"},
		{name: "server error logs error", status: http.StatusBadGateway, expectedLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger.InitWithWriter("debug", false, &buf)
			t.Cleanup(func() { logger.Init("info", false) })

			router := gin.New()
			router.Use(RequestID(), RequestLogger())
			router.GET("/test", func(c *gin.Context) {
				c.Status(tt.status)
			})

			req := httptest.NewRequest(http.MethodGet, "/test?text=secret", nil)
			req.Header.Set(RequestIDHeader, "req-42")
			router.ServeHTTP(httptest.NewRecorder(), req)

			line := strings.TrimSpace(buf.String())
			require.NotEmpty(t, line)
			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(line), &entry))
			assert.Equal(t, tt.expectedLevel, entry["level"])
			assert.Equal(t, "req-42", entry["request_id"])
			assert.Equal(t, "/test", entry["path"])
			assert.EqualValues(t, tt.status, entry["status_code"])
			assert.Equal(t, "/test", entry["route"])
			assert.NotContains(t, line, "secret")
		})
	}
}

func TestRequestLogger_ProbesLogAtDebug(t *testing.T) {
	buf := captureLogs(t)
	logger.InitWithWriter("info", false, buf)

	router := gin.New()
	router.Use(RequestLogger())
	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		router.GET(path, func(c *gin.Context) { c.Status(http.StatusOK) })
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Empty(t, buf.String())
}
