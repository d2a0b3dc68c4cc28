package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/translate-service/internal/domain/dto"
	"github.com/guttosm/translate-service/internal/i18n"
	"github.com/guttosm/translate-service/internal/middleware"
)

// ResponseBuilder writes the success and error envelopes for one request.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a response builder for c.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// SuccessOK sends data in a 200 envelope.
func (b *ResponseBuilder) SuccessOK(data any) {
	b.c.JSON(http.StatusOK, dto.SuccessResponse{
		Data:      data,
		RequestID: middleware.GetRequestID(b.c),
		Timestamp: time.Now(),
	})
}

// Error sends an error envelope for a failure that has no domain type,
// such as an unreadable body.
func (b *ResponseBuilder) Error(status int, messageKey string, err error) {
	b.write(errorMapping{
		status:     status,
		code:       dto.ErrCodeFromStatus(status),
		messageKey: messageKey,
	}, err)
}

// Fail maps a domain error to its status, code and localized message.
func (b *ResponseBuilder) Fail(err error) {
	b.write(mapError(err), err)
}

func (b *ResponseBuilder) write(m errorMapping, err error) {
	if err != nil {
		// picked up by the ErrorHandler middleware for logging
		_ = b.c.Error(err)
	}

	resp := dto.NewError(m.code, i18n.GetTranslator().Translate(m.messageKey, i18n.GetLocale(b.c))).
		WithRequestID(middleware.GetRequestID(b.c))
	resp.Details = m.details
	b.c.AbortWithStatusJSON(m.status, resp)
}

// BuildRequest binds the JSON body into a new T.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &req, nil
}
