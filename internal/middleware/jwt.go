package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/translate-service/internal/i18n"
	"github.com/guttosm/translate-service/internal/service"
)

const (
	// AuthorizationHeader carries the bearer token.
	AuthorizationHeader = "Authorization"
	// SubjectKey is the gin context key holding the authenticated subject.
	SubjectKey = "auth_subject"

	bearerPrefix = "Bearer "
)

// TokenValidator validates admin bearer tokens.
type TokenValidator interface {
	ValidateToken(tokenString string) (*service.Claims, error)
}

// JWTAuth returns a middleware that validates JWT tokens.
func JWTAuth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authenticateBearer(c, tokens)
	}
}

func authenticateBearer(c *gin.Context, tokens TokenValidator) {
	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		abortUnauthorized(c, i18n.ErrKeyTokenRequired)
		return
	}

	if !strings.HasPrefix(authHeader, bearerPrefix) {
		abortUnauthorized(c, i18n.ErrKeyInvalidToken)
		return
	}

	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
	if tokenString == "" {
		abortUnauthorized(c, i18n.ErrKeyTokenRequired)
		return
	}

	claims, err := tokens.ValidateToken(tokenString)
	if err != nil {
		abortUnauthorized(c, i18n.ErrKeyInvalidToken)
		return
	}

	c.Set(SubjectKey, claims.Subject)
	c.Next()
}

// GetSubject returns the authenticated subject, if any.
func GetSubject(c *gin.Context) string {
	return c.GetString(SubjectKey)
}
