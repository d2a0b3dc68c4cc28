package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/guttosm/translate-service/internal/circuitbreaker"
	"github.com/guttosm/translate-service/internal/domain/dto"
	"github.com/guttosm/translate-service/internal/domain/model"
	"github.com/guttosm/translate-service/internal/i18n"
)

// statusClientClosedRequest is logged when the caller went away mid-job.
const statusClientClosedRequest = 499

// errorMapping is the HTTP view of a domain error.
type errorMapping struct {
	status     int
	code       string
	messageKey string
	details    map[string]string
}

// mapError classifies err into status, error code and message key.
func mapError(err error) errorMapping {
	var (
		validationErr *model.ValidationError
		providerErr   *model.ProviderError
		transportErr  *model.TransportError
		maxBytesErr   *http.MaxBytesError
	)

	switch {
	case errors.As(err, &validationErr):
		return errorMapping{
			status:     http.StatusBadRequest,
			code:       dto.ErrCodeInvalidRequest,
			messageKey: validationErr.Key,
			details:    map[string]string{validationErr.Field: validationErr.Message},
		}
	case errors.As(err, &providerErr):
		status := http.StatusBadGateway
		switch providerErr.Kind {
		case model.ProviderRateLimited:
			status = http.StatusTooManyRequests
		case model.ProviderTimeout:
			status = http.StatusGatewayTimeout
		}
		details := map[string]string{"provider_code": providerErr.Code}
		if providerErr.Kind == model.ProviderUnknown && providerErr.Message != "" {
			details["provider_message"] = providerErr.Message
		}
		return errorMapping{
			status:     status,
			code:       providerErr.Kind.ErrorCode(),
			messageKey: providerErr.Kind.MessageKey(),
			details:    details,
		}
	case errors.As(err, &transportErr):
		m := errorMapping{
			status:     http.StatusBadGateway,
			code:       "provider_transport",
			messageKey: i18n.ErrKeyProviderUnreachable,
			details:    map[string]string{"upstream_body": transportErr.Body},
		}
		if transportErr.Status != 0 {
			m.messageKey = i18n.ErrKeyProviderHTTPStatus
			m.details["upstream_status"] = strconv.Itoa(transportErr.Status)
		}
		return m
	case errors.Is(err, model.ErrEmptyResult):
		return errorMapping{
			status:     http.StatusBadGateway,
			code:       "provider_empty_result",
			messageKey: i18n.ErrKeyProviderEmpty,
		}
	case errors.As(err, &maxBytesErr):
		return errorMapping{
			status:     http.StatusRequestEntityTooLarge,
			code:       dto.ErrCodeTooLarge,
			messageKey: i18n.ErrKeyUploadTooLarge,
		}
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return errorMapping{
			status:     http.StatusServiceUnavailable,
			code:       dto.ErrCodeUnavailable,
			messageKey: i18n.ErrKeyServiceUnavailable,
		}
	case errors.Is(err, context.Canceled):
		return errorMapping{
			status:     statusClientClosedRequest,
			code:       "canceled",
			messageKey: i18n.ErrKeyInternalError,
		}
	case errors.Is(err, context.DeadlineExceeded):
		return errorMapping{
			status:     http.StatusGatewayTimeout,
			code:       dto.ErrCodeTimeout,
			messageKey: i18n.ErrKeyProviderUnreachable,
		}
	default:
		return errorMapping{
			status:     http.StatusInternalServerError,
			code:       dto.ErrCodeInternal,
			messageKey: i18n.ErrKeyInternalError,
		}
	}
}
