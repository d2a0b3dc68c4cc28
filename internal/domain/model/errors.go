package model

import (
	"errors"
	"fmt"
)

// Message keys for validation failures. The HTTP layer resolves them to
// localized text.
const (
	ErrKeyTextRequired          = "error.validation.text_required"
	ErrKeyUnknownLanguage       = "error.validation.unknown_language"
	ErrKeyFileRequired          = "error.validation.file_required"
	ErrKeyUnsupportedFile       = "error.validation.unsupported_file"
	ErrKeyCredentialsMissing    = "error.validation.credentials_missing"
	ErrKeyCredentialsIncomplete = "error.validation.credentials_incomplete"
)

// ErrEmptyResult is returned when the provider answers with zero fragments.
var ErrEmptyResult = errors.New("provider returned an empty translation")

// ValidationError rejects a job before any remote call is made.
type ValidationError struct {
	Field   string
	Key     string
	Message string
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, key, message string) *ValidationError {
	return &ValidationError{Field: field, Key: key, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ProviderKind classifies a provider error code.
type ProviderKind string

const (
	ProviderTimeout             ProviderKind = "timeout"
	ProviderSystemError         ProviderKind = "system_error"
	ProviderUnauthorized        ProviderKind = "unauthorized"
	ProviderInvalidSignature    ProviderKind = "invalid_signature"
	ProviderRateLimited         ProviderKind = "rate_limited"
	ProviderUnsupportedLanguage ProviderKind = "unsupported_language"
	ProviderInsufficientBalance ProviderKind = "insufficient_balance"
	ProviderInvalidAccount      ProviderKind = "invalid_account"
	ProviderMissingParameter    ProviderKind = "missing_parameter"
	ProviderIPNotAllowed        ProviderKind = "ip_not_allowed"
	ProviderUnknown             ProviderKind = "unknown"
)

// MessageKey is the i18n key describing this kind to a user.
func (k ProviderKind) MessageKey() string {
	return "error.provider." + string(k)
}

// ErrorCode is the machine-readable code returned in API error bodies.
func (k ProviderKind) ErrorCode() string {
	return "provider_" + string(k)
}

// ProviderError is a provider-level failure carried in a successful HTTP response.
type ProviderError struct {
	Kind    ProviderKind
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error %s (%s): %s", e.Code, e.Kind, e.Message)
}

// TransportError is a non-success HTTP status, or no response at all (Status 0).
type TransportError struct {
	Status int
	Body   string
}

func (e *TransportError) Error() string {
	if e.Status == 0 {
		return "provider unreachable: " + e.Body
	}
	return fmt.Sprintf("provider returned HTTP %d: %s", e.Status, e.Body)
}

// ExtractionError wraps a document or OCR extraction failure.
type ExtractionError struct {
	FileName string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.FileName, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// ErrorCode returns a short classification of err for metrics and job records.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var (
		validationErr *ValidationError
		providerErr   *ProviderError
		transportErr  *TransportError
		extractionErr *ExtractionError
	)
	switch {
	case errors.As(err, &validationErr):
		return "validation"
	case errors.As(err, &providerErr):
		return providerErr.Kind.ErrorCode()
	case errors.As(err, &transportErr):
		return "transport"
	case errors.As(err, &extractionErr):
		return "extraction"
	case errors.Is(err, ErrEmptyResult):
		return "empty_result"
	default:
		return "internal"
	}
}
