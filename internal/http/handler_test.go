//go:build !integration

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/translate-service/internal/domain/dto"
	"github.com/guttosm/translate-service/internal/domain/model"
	"github.com/guttosm/translate-service/internal/mocks"
	"github.com/guttosm/translate-service/internal/upload"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouterWithMock(t *testing.T, opts ...HandlerOption) (*gin.Engine, *mocks.MockTranslator) {
	t.Helper()
	translator := new(mocks.MockTranslator)
	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	router, stop := NewRouter(Handlers{Translation: NewHandler(translator, opts...)}, NewHealthHandler(), cfg)
	t.Cleanup(stop)
	return router, translator
}

type multipartFile struct {
	name    string
	content string
}

func multipartBody(t *testing.T, files []multipartFile, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, f := range files {
		part, err := w.CreateFormFile(uploadField, f.name)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.content))
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	dataBytes, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(dataBytes, &out))
	return out
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestTranslateText(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockTranslator)
		expectedStatus int
		expectedCode   string
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "short field names with defaults",
			body: `{"text": "Hello."}`,
			setupMock: func(m *mocks.MockTranslator) {
				m.On("TranslateText", mock.Anything, model.TranslationRequest{Text: "Hello.", SourceLang: "auto", TargetLang: "zh"}).
					Return(model.TextResult{TranslatedText: "你好。", SourceLang: "auto", TargetLang: "zh", Chunks: 1}, nil)
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				result := decodeData[model.TextResult](t, w)
				assert.Equal(t, "你好。", result.TranslatedText)
				assert.Equal(t, 1, result.Chunks)
			},
		},
		{
			name: "long field names",
			body: `{"text": "Bonjour", "sourceLang": "fra", "targetLang": "en"}`,
			setupMock: func(m *mocks.MockTranslator) {
				m.On("TranslateText", mock.Anything, model.TranslationRequest{Text: "Bonjour", SourceLang: "fra", TargetLang: "en"}).
					Return(model.TextResult{TranslatedText: "Hello", SourceLang: "fra", TargetLang: "en", Chunks: 1}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid JSON",
			body:           `{"text":`,
			setupMock:      func(*mocks.MockTranslator) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   dto.ErrCodeInvalidRequest,
		},
		{
			name: "validation error",
			body: `{"text": "   "}`,
			setupMock: func(m *mocks.MockTranslator) {
				m.On("TranslateText", mock.Anything, mock.Anything).
					Return(model.TextResult{}, model.NewValidationError("text", model.ErrKeyTextRequired, "text must not be empty"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   dto.ErrCodeInvalidRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Equal(t, "text must not be empty", resp.Details["text"])
				assert.NotEmpty(t, resp.Message)
			},
		},
		{
			name: "provider signature error",
			body: `{"text": "Hello"}`,
			setupMock: func(m *mocks.MockTranslator) {
				m.On("TranslateText", mock.Anything, mock.Anything).
					Return(model.TextResult{}, &model.ProviderError{Kind: model.ProviderInvalidSignature, Code: "54001", Message: "Invalid Sign"})
			},
			expectedStatus: http.StatusBadGateway,
			expectedCode:   "provider_invalid_signature",
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "54001", decodeError(t, w).Details["provider_code"])
			},
		},
		{
			name: "provider rate limit",
			body: `{"text": "Hello"}`,
			setupMock: func(m *mocks.MockTranslator) {
				m.On("TranslateText", mock.Anything, mock.Anything).
					Return(model.TextResult{}, &model.ProviderError{Kind: model.ProviderRateLimited, Code: "54003"})
			},
			expectedStatus: http.StatusTooManyRequests,
			expectedCode:   "provider_rate_limited",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, translator := setupRouterWithMock(t)
			tt.setupMock(translator)

			req := httptest.NewRequest(http.MethodPost, "/api/translate", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, w).Error)
			}
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
			translator.AssertExpectations(t)
		})
	}
}

func TestTranslateText_ChineseMessages(t *testing.T) {
	router, translator := setupRouterWithMock(t)
	translator.On("TranslateText", mock.Anything, mock.Anything).
		Return(model.TextResult{}, &model.ProviderError{Kind: model.ProviderUnauthorized, Code: "52003"})

	req := httptest.NewRequest(http.MethodPost, "/api/translate", strings.NewReader(`{"text":"Hello"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", "zh-CN,zh;q=0.9")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	enReq := httptest.NewRequest(http.MethodPost, "/api/translate", strings.NewReader(`{"text":"Hello"}`))
	enReq.Header.Set("Content-Type", "application/json")
	enW := httptest.NewRecorder()
	router.ServeHTTP(enW, enReq)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.NotEqual(t, decodeError(t, enW).Message, decodeError(t, w).Message)
}

func TestTranslateDocument(t *testing.T) {
	t.Run("files are passed in submission order with target", func(t *testing.T) {
		router, translator := setupRouterWithMock(t)
		translator.On("TranslateDocuments", mock.Anything, mock.MatchedBy(func(files []upload.File) bool {
			return len(files) == 2 && files[0].Name == "a.txt" && files[1].Name == "b.docx"
		}), "en").Return(model.DocumentJobResult{
			Files:          []model.DocumentResult{{FileName: "a.txt"}, {FileName: "b.docx"}},
			TranslatedText: "A\n\nB",
		}, nil)

		body, contentType := multipartBody(t,
			[]multipartFile{{name: "a.txt", content: "alpha"}, {name: "b.docx", content: "beta"}},
			map[string]string{"to": "en"})
		req := httptest.NewRequest(http.MethodPost, "/api/translate/document", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		result := decodeData[model.DocumentJobResult](t, w)
		assert.Equal(t, "A\n\nB", result.TranslatedText)
		assert.Len(t, result.Files, 2)
		translator.AssertExpectations(t)
	})

	t.Run("target defaults to zh", func(t *testing.T) {
		router, translator := setupRouterWithMock(t)
		translator.On("TranslateDocuments", mock.Anything, mock.Anything, "zh").
			Return(model.DocumentJobResult{}, nil)

		body, contentType := multipartBody(t, []multipartFile{{name: "a.txt", content: "alpha"}}, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/translate/document", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		translator.AssertExpectations(t)
	})

	t.Run("missing file", func(t *testing.T) {
		router, translator := setupRouterWithMock(t)

		body, contentType := multipartBody(t, nil, map[string]string{"to": "en"})
		req := httptest.NewRequest(http.MethodPost, "/api/translate/document", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "no file uploaded", decodeError(t, w).Details[uploadField])
		translator.AssertNotCalled(t, "TranslateDocuments", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("not multipart", func(t *testing.T) {
		router, _ := setupRouterWithMock(t)

		req := httptest.NewRequest(http.MethodPost, "/api/translate/document", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("upload too large", func(t *testing.T) {
		router, translator := setupRouterWithMock(t, WithMaxUploadBytes(1024))

		body, contentType := multipartBody(t, []multipartFile{{name: "big.txt", content: strings.Repeat("x", 4096)}}, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/translate/document", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Equal(t, dto.ErrCodeTooLarge, decodeError(t, w).Error)
		translator.AssertNotCalled(t, "TranslateDocuments", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unsupported file", func(t *testing.T) {
		router, translator := setupRouterWithMock(t)
		translator.On("TranslateDocuments", mock.Anything, mock.Anything, "zh").
			Return(model.DocumentJobResult{}, model.NewValidationError("file", model.ErrKeyUnsupportedFile, "unsupported file type .exe"))

		body, contentType := multipartBody(t, []multipartFile{{name: "tool.exe", content: "MZ"}}, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/translate/document", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "unsupported file type .exe", decodeError(t, w).Details["file"])
	})
}

func TestTranslateImage(t *testing.T) {
	t.Run("first file is used", func(t *testing.T) {
		router, translator := setupRouterWithMock(t)
		translator.On("TranslateImage", mock.Anything, mock.MatchedBy(func(f upload.File) bool {
			return f.Name == "scan.png"
		}), "ja").Return(model.ImageResult{FileName: "scan.png", OCRText: "[scan.png] OCR result:\nHi", TranslatedText: "やあ"}, nil)

		body, contentType := multipartBody(t, []multipartFile{{name: "scan.png", content: "png"}}, map[string]string{"to": "ja"})
		req := httptest.NewRequest(http.MethodPost, "/api/translate/image", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		result := decodeData[model.ImageResult](t, w)
		assert.Equal(t, "やあ", result.TranslatedText)
		assert.False(t, result.Degraded)
	})

	t.Run("transport failure", func(t *testing.T) {
		router, translator := setupRouterWithMock(t)
		translator.On("TranslateImage", mock.Anything, mock.Anything, "zh").
			Return(model.ImageResult{}, &model.TransportError{Status: http.StatusServiceUnavailable, Body: "upstream maintenance"})

		body, contentType := multipartBody(t, []multipartFile{{name: "scan.png", content: "png"}}, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/translate/image", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "provider_transport", resp.Error)
		assert.Equal(t, "503", resp.Details["upstream_status"])
		assert.Equal(t, "upstream maintenance", resp.Details["upstream_body"])
	})

	t.Run("unexpected error", func(t *testing.T) {
		router, translator := setupRouterWithMock(t)
		translator.On("TranslateImage", mock.Anything, mock.Anything, "zh").
			Return(model.ImageResult{}, errors.New("disk full"))

		body, contentType := multipartBody(t, []multipartFile{{name: "scan.png", content: "png"}}, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/translate/image", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, dto.ErrCodeInternal, decodeError(t, w).Error)
	})
}

func TestLanguages(t *testing.T) {
	router, _ := setupRouterWithMock(t)

	req := httptest.NewRequest(http.MethodGet, "/api/languages", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	result := decodeData[dto.LanguagesResponse](t, w)
	assert.NotEmpty(t, result.Languages)
	codes := make([]string, len(result.Languages))
	for i, l := range result.Languages {
		codes[i] = l.Code
	}
	assert.Contains(t, codes, "zh")
	assert.Contains(t, codes, "en")
}
