// Package app provides service initialization.
package app

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/translate-service/config"
	"github.com/guttosm/translate-service/internal/baidu"
	"github.com/guttosm/translate-service/internal/credentials"
	"github.com/guttosm/translate-service/internal/extract"
	"github.com/guttosm/translate-service/internal/extract/ocr"
	"github.com/guttosm/translate-service/internal/langdetect"
	"github.com/guttosm/translate-service/internal/service"
	"github.com/guttosm/translate-service/internal/upload"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Credentials *credentials.FileStore
	Translator  *service.TranslationService
	Stager      *upload.Stager
	OCR         ocr.Engine
}

// InitializeServices builds the translation pipeline. recorder may be nil when
// job storage is disabled.
func InitializeServices(cfg config.Config, recorder service.JobRecorder) (*ServiceComponents, error) {
	store, err := credentials.NewFileStore(cfg.Credentials.File, cfg.Credentials.SealKey)
	if err != nil {
		return nil, fmt.Errorf("credentials store: %w", err)
	}

	stager, err := upload.NewStager(cfg.Upload.Dir)
	if err != nil {
		return nil, err
	}

	recognizer, err := ocr.New(cfg.Features.OCRLanguages)
	if err != nil {
		return nil, fmt.Errorf("ocr engine: %w", err)
	}

	opts := []service.Option{service.WithMaxChunkChars(cfg.Provider.MaxChunkChars)}
	if recorder != nil {
		opts = append(opts, service.WithJobRecorder(recorder))
	}
	if cfg.Features.LanguageDetection {
		opts = append(opts, service.WithLanguageDetector(langdetect.NewLingua()))
	}

	translator := service.NewTranslationService(
		baidu.NewClient(cfg.Provider.URL, cfg.Provider.Timeout),
		store,
		stager,
		extract.NewRegistry(),
		recognizer,
		opts...,
	)

	log.Info().
		Str("provider_url", cfg.Provider.URL).
		Str("credentials_file", cfg.Credentials.File).
		Str("scratch_dir", stager.Dir()).
		Bool("language_detection", cfg.Features.LanguageDetection).
		Msg("Translation service initialized")

	return &ServiceComponents{
		Credentials: store,
		Translator:  translator,
		Stager:      stager,
		OCR:         recognizer,
	}, nil
}
