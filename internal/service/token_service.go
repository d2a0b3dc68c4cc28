package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminRole is the only role the admin API accepts.
const AdminRole = "admin"

var (
	// ErrInvalidToken is returned for malformed, expired or foreign tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokensDisabled is returned when no signing secret is configured.
	ErrTokensDisabled = errors.New("token signing is not configured")
)

// Claims identify the caller of an admin endpoint.
type Claims struct {
	Subject string
	Role    string
}

// ClaimsWithJWT is the signed token payload.
type ClaimsWithJWT struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates admin bearer tokens.
type TokenService interface {
	// IssueAdminToken signs a token for subject valid for the configured TTL.
	IssueAdminToken(subject string) (string, time.Time, error)
	// ValidateToken validates a token and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}

// TokenServiceImpl implements TokenService with HS256.
type TokenServiceImpl struct {
	secretKey []byte
	ttl       time.Duration
	issuer    string
}

// TokenConfig holds configuration for the token service.
type TokenConfig struct {
	SecretKey string
	TTL       time.Duration
	Issuer    string
}

// NewTokenService creates a new token service.
func NewTokenService(cfg TokenConfig) *TokenServiceImpl {
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	if cfg.Issuer == "" {
		cfg.Issuer = "translate-service"
	}
	return &TokenServiceImpl{
		secretKey: []byte(cfg.SecretKey),
		ttl:       cfg.TTL,
		issuer:    cfg.Issuer,
	}
}

// IssueAdminToken signs an admin token.
func (s *TokenServiceImpl) IssueAdminToken(subject string) (string, time.Time, error) {
	if len(s.secretKey) == 0 {
		return "", time.Time{}, ErrTokensDisabled
	}
	if subject == "" {
		return "", time.Time{}, errors.New("subject is required")
	}

	now := time.Now()
	expiresAt := now.Add(s.ttl)
	claims := &ClaimsWithJWT{
		Role: AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateToken validates a token and returns its claims.
func (s *TokenServiceImpl) ValidateToken(tokenString string) (*Claims, error) {
	if len(s.secretKey) == 0 {
		return nil, ErrTokensDisabled
	}

	token, err := jwt.ParseWithClaims(tokenString, &ClaimsWithJWT{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(s.issuer))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claimsWithJWT, ok := token.Claims.(*ClaimsWithJWT)
	if !ok || !token.Valid || claimsWithJWT.Role != AdminRole {
		return nil, ErrInvalidToken
	}
	return &Claims{Subject: claimsWithJWT.Subject, Role: claimsWithJWT.Role}, nil
}
