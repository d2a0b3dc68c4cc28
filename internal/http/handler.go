// Package http exposes the translation service over gin under /api.
package http

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/translate-service/internal/domain/dto"
	"github.com/guttosm/translate-service/internal/domain/model"
	"github.com/guttosm/translate-service/internal/i18n"
	"github.com/guttosm/translate-service/internal/service"
	"github.com/guttosm/translate-service/internal/upload"
)

const (
	// DefaultMaxUploadBytes bounds the multipart body of upload endpoints.
	DefaultMaxUploadBytes int64 = 32 << 20

	uploadField = "file"
)

// Handler provides HTTP handlers for the translation routes.
type Handler struct {
	translator     service.Translator
	maxUploadBytes int64
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithMaxUploadBytes sets the multipart body limit.
func WithMaxUploadBytes(n int64) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.maxUploadBytes = n
		}
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(translator service.Translator, opts ...HandlerOption) *Handler {
	h := &Handler{
		translator:     translator,
		maxUploadBytes: DefaultMaxUploadBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// TranslateText handles POST /api/translate requests.
//
// @Summary      Translate text
// @Description  Splits long text at sentence boundaries, translates the chunks in order and joins them with a blank line. When source and target are the same language the text is returned unchanged.
// @Tags         Translation
// @Accept       json
// @Produce      json
// @Param        request body dto.TranslateTextRequest true "Text and language pair"
// @Success      200 {object} dto.SuccessResponse{data=model.TextResult}
// @Failure      400 {object} dto.ErrorResponse "Validation error or missing credentials"
// @Failure      429 {object} dto.ErrorResponse "Provider rate limit"
// @Failure      502 {object} dto.ErrorResponse "Provider error"
// @Router       /api/translate [post]
func (h *Handler) TranslateText(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.TranslateTextRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	result, err := h.translator.TranslateText(c.Request.Context(), req.ToModel())
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(result)
}

// TranslateDocument handles POST /api/translate/document requests.
//
// @Summary      Translate documents
// @Description  Extracts text from one or more .txt, .docx or .rtf files and translates them in submission order. Every file type is checked before any work starts.
// @Tags         Translation
// @Accept       mpfd
// @Produce      json
// @Param        file formData file true "Document (repeat for several files)"
// @Param        to formData string false "Target language" default(zh)
// @Success      200 {object} dto.SuccessResponse{data=model.DocumentJobResult}
// @Failure      400 {object} dto.ErrorResponse "Unsupported file or validation error"
// @Failure      413 {object} dto.ErrorResponse "Upload too large"
// @Failure      502 {object} dto.ErrorResponse "Provider error"
// @Router       /api/translate/document [post]
func (h *Handler) TranslateDocument(c *gin.Context) {
	builder := NewResponseBuilder(c)

	headers, target, err := h.readUploads(c)
	if err != nil {
		builder.Fail(err)
		return
	}

	files := make([]upload.File, len(headers))
	for i, fh := range headers {
		files[i] = upload.FromMultipart(fh)
	}

	result, err := h.translator.TranslateDocuments(c.Request.Context(), files, target)
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(result)
}

// TranslateImage handles POST /api/translate/image requests.
//
// @Summary      Translate text in an image
// @Description  Runs OCR on a .jpg, .jpeg, .png, .gif or .bmp image and translates the recognized text. An OCR failure is reported in the result with degraded=true.
// @Tags         Translation
// @Accept       mpfd
// @Produce      json
// @Param        file formData file true "Image"
// @Param        to formData string false "Target language" default(zh)
// @Success      200 {object} dto.SuccessResponse{data=model.ImageResult}
// @Failure      400 {object} dto.ErrorResponse "Unsupported file or validation error"
// @Failure      413 {object} dto.ErrorResponse "Upload too large"
// @Failure      502 {object} dto.ErrorResponse "Provider error"
// @Router       /api/translate/image [post]
func (h *Handler) TranslateImage(c *gin.Context) {
	builder := NewResponseBuilder(c)

	headers, target, err := h.readUploads(c)
	if err != nil {
		builder.Fail(err)
		return
	}

	result, err := h.translator.TranslateImage(c.Request.Context(), upload.FromMultipart(headers[0]), target)
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(result)
}

// readUploads parses the multipart body and returns the uploaded files and target language.
func (h *Handler) readUploads(c *gin.Context) ([]*multipart.FileHeader, string, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	form, err := c.MultipartForm()
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, "", err
		}
		return nil, "", model.NewValidationError(uploadField, model.ErrKeyFileRequired, "expected a multipart form with a file")
	}

	headers := form.File[uploadField]
	if len(headers) == 0 {
		return nil, "", model.NewValidationError(uploadField, model.ErrKeyFileRequired, "no file uploaded")
	}

	target := dto.TargetLanguage(c.PostForm("to"), c.PostForm("targetLang"))
	return headers, target, nil
}

// Languages handles GET /api/languages requests.
//
// @Summary      List languages
// @Description  Returns the language codes accepted as source or target.
// @Tags         Translation
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.LanguagesResponse}
// @Router       /api/languages [get]
func (h *Handler) Languages(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(dto.LanguagesResponse{Languages: model.Languages()})
}
