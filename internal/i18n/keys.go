// Package i18n provides internationalization support for the translation service.
package i18n

import "github.com/guttosm/translate-service/internal/domain/model"

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates a body that could not be decoded.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyUploadTooLarge indicates the multipart body exceeded the upload limit.
	ErrKeyUploadTooLarge = "error.upload_too_large"
	// ErrKeyServiceUnavailable indicates a dependency is disabled or failing.
	ErrKeyServiceUnavailable = "error.service_unavailable"
	// ErrKeyProviderUnreachable indicates a transport failure talking to the provider.
	ErrKeyProviderUnreachable = "error.provider.unreachable"
	// ErrKeyProviderHTTPStatus indicates the provider answered with a non-success HTTP status.
	ErrKeyProviderHTTPStatus = "error.provider.http_status"
	// ErrKeyProviderEmpty indicates the provider answered without any translation.
	ErrKeyProviderEmpty = "error.provider.empty_result"
)

// Validation keys are shared with the domain model.
const (
	ErrKeyTextRequired          = model.ErrKeyTextRequired
	ErrKeyUnknownLanguage       = model.ErrKeyUnknownLanguage
	ErrKeyFileRequired          = model.ErrKeyFileRequired
	ErrKeyUnsupportedFile       = model.ErrKeyUnsupportedFile
	ErrKeyCredentialsMissing    = model.ErrKeyCredentialsMissing
	ErrKeyCredentialsIncomplete = model.ErrKeyCredentialsIncomplete
)

// Success message translation keys.
const (
	// SuccessKeyConfigSaved confirms stored credentials.
	SuccessKeyConfigSaved = "success.config_saved"
)
