package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/translate-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeTooLarge indicates the request body exceeded its limit.
	ErrCodeTooLarge = "payload_too_large"
	// ErrCodeBadGateway indicates the translation provider failed.
	ErrCodeBadGateway = "bad_gateway"
	// ErrCodeUnavailable indicates a dependency is disabled or failing.
	ErrCodeUnavailable = "service_unavailable"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"provider_invalid_signature"`
	Message string `json:"message,omitempty" example:"Signature error, check the secret key configuration"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusRequestEntityTooLarge:
		return ErrCodeTooLarge
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusBadGateway:
		return ErrCodeBadGateway
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// ConfigResponse reports the stored app id. The secret key is never returned.
// @Description Current provider configuration
type ConfigResponse struct {
	AppID      string `json:"appId" example:"20240101005525"`
	Configured bool   `json:"configured" example:"true"`
} // @name ConfigResponse

// MessageResponse carries a localized confirmation.
// @Description Confirmation message
type MessageResponse struct {
	Message string `json:"message" example:"Configuration saved"`
} // @name MessageResponse

// LanguagesResponse lists the accepted language codes.
// @Description Known language codes
type LanguagesResponse struct {
	Languages []model.Language `json:"languages"`
} // @name LanguagesResponse

// JobsResponse is one page of job records.
// @Description Recent translation jobs
type JobsResponse struct {
	Jobs  []*model.JobRecord `json:"jobs"`
	Total int64              `json:"total" example:"42"`
	Limit int                `json:"limit" example:"50"`
	Skip  int                `json:"skip" example:"0"`
} // @name JobsResponse
