package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/translate-service/internal/domain/dto"
	"github.com/guttosm/translate-service/internal/domain/model"
	"github.com/guttosm/translate-service/internal/i18n"
	"github.com/guttosm/translate-service/internal/logger"
)

// ErrorHandler logs the errors handlers attach with c.Error. Provider and
// transport failures are logged with their provider code or upstream status
// so that misconfigured credentials show up in the logs. A handler that
// recorded an error without writing a response gets a 500 envelope.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := c.Writer.Status()
		requestID := GetRequestID(c)

		log := logger.Logger()
		event := log.Error()
		if c.Writer.Written() && status >= 400 && status < 500 {
			event = log.Warn()
		}
		withErrorFields(event, err).
			Str("request_id", requestID).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Int("status", status).
			Msg("Request error")

		if !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			c.JSON(http.StatusInternalServerError, dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID))
		}
	}
}

func withErrorFields(event *zerolog.Event, err error) *zerolog.Event {
	event = event.Err(err)

	var providerErr *model.ProviderError
	var transportErr *model.TransportError
	var validationErr *model.ValidationError
	switch {
	case errors.As(err, &providerErr):
		event = event.Str("provider_code", providerErr.Code).Str("provider_kind", string(providerErr.Kind))
	case errors.As(err, &transportErr):
		event = event.Int("upstream_status", transportErr.Status)
	case errors.As(err, &validationErr):
		event = event.Str("field", validationErr.Field)
	}
	return event
}
