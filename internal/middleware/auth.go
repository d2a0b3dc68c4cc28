package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/translate-service/internal/domain/dto"
	"github.com/guttosm/translate-service/internal/i18n"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"
)

// APIKeyAuth returns a middleware that validates API keys.
// It checks the X-API-Key header first, then falls back to api_key query parameter.
// If validKeys is nil or empty, authentication is disabled.
func APIKeyAuth(validKeys map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(validKeys) == 0 {
			c.Next()
			return
		}

		key := apiKeyFrom(c)
		if key == "" {
			abortUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
			return
		}
		if !keyMatches(validKeys, key) {
			abortUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
			return
		}

		c.Next()
	}
}

// AdminAuth guards admin routes. A request passes with a valid API key or a
// valid admin bearer token. With no keys and no validator every request passes.
func AdminAuth(validKeys map[string]bool, tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(validKeys) == 0 && tokens == nil {
			c.Next()
			return
		}

		if key := apiKeyFrom(c); key != "" {
			if keyMatches(validKeys, key) {
				c.Set(SubjectKey, "api-key")
				c.Next()
				return
			}
			abortUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
			return
		}

		if tokens != nil && strings.HasPrefix(c.GetHeader(AuthorizationHeader), bearerPrefix) {
			authenticateBearer(c, tokens)
			return
		}

		abortUnauthorized(c, i18n.ErrKeyTokenRequired)
	}
}

func apiKeyFrom(c *gin.Context) string {
	key := c.GetHeader(APIKeyHeader)
	if key == "" {
		key = c.Query(APIKeyQuery)
	}
	return key
}

func keyMatches(validKeys map[string]bool, key string) bool {
	for valid, enabled := range validKeys {
		if enabled && subtle.ConstantTimeCompare([]byte(valid), []byte(key)) == 1 {
			return true
		}
	}
	return false
}

func abortUnauthorized(c *gin.Context, messageKey string) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(c))
	errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
}
