package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/translate-service/internal/credentials"
	"github.com/guttosm/translate-service/internal/domain/dto"
	"github.com/guttosm/translate-service/internal/i18n"
)

// ConfigHandler exposes the stored provider credentials.
type ConfigHandler struct {
	store credentials.Store
}

// NewConfigHandler creates a ConfigHandler.
func NewConfigHandler(store credentials.Store) *ConfigHandler {
	return &ConfigHandler{store: store}
}

// GetConfig handles GET /api/config requests.
//
// @Summary      Get provider configuration
// @Description  Returns the configured app id. The secret key is never returned.
// @Tags         Config
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.ConfigResponse}
// @Failure      500 {object} dto.ErrorResponse
// @Router       /api/config [get]
func (h *ConfigHandler) GetConfig(c *gin.Context) {
	builder := NewResponseBuilder(c)

	creds, err := h.store.Get()
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(dto.ConfigResponse{
		AppID:      creds.AppID,
		Configured: creds.IsComplete(),
	})
}

// SaveConfig handles POST /api/config requests.
//
// @Summary      Store provider credentials
// @Description  Saves the app id and secret key used to sign provider requests.
// @Tags         Config
// @Accept       json
// @Produce      json
// @Param        request body dto.ConfigRequest true "Credentials"
// @Param        X-API-Key header string false "Admin API key (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse{data=dto.MessageResponse}
// @Failure      400 {object} dto.ErrorResponse "Both fields are required"
// @Failure      401 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse "Could not write the credentials file"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/config [post]
func (h *ConfigHandler) SaveConfig(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.ConfigRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := h.store.Set(req.ToModel()); err != nil {
		builder.Fail(err)
		return
	}

	builder.SuccessOK(dto.MessageResponse{
		Message: i18n.GetTranslator().Translate(i18n.SuccessKeyConfigSaved, i18n.GetLocale(c)),
	})
}
