// Package service contains the translation job orchestration.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/guttosm/translate-service/internal/domain/model"
	"github.com/guttosm/translate-service/internal/extract/ocr"
	"github.com/guttosm/translate-service/internal/logger"
	"github.com/guttosm/translate-service/internal/metrics"
	"github.com/guttosm/translate-service/internal/segment"
	"github.com/guttosm/translate-service/internal/upload"
)

const (
	// DocumentSliceThreshold is the document length above which fixed slicing is used.
	DocumentSliceThreshold = 5000
	// DocumentSliceSize is the rune length of each document slice.
	DocumentSliceSize = 4500

	chunkSeparator = "\n\n"
)

// ChunkTranslator sends one chunk to the provider.
type ChunkTranslator interface {
	TranslateChunk(ctx context.Context, chunk model.Chunk, from, to string, creds model.Credentials) (model.TranslatedChunk, error)
}

// CredentialsSource supplies provider credentials. It is read once per job.
type CredentialsSource interface {
	Get() (model.Credentials, error)
}

// DocumentExtractor turns a staged document into text.
type DocumentExtractor interface {
	Supports(ext string) bool
	Extract(ctx context.Context, path string) (string, error)
}

// Stager writes an upload to scratch storage and returns a cleanup func.
type Stager interface {
	Stage(f upload.File) (string, func(), error)
}

// LanguageDetector guesses the language of a text.
type LanguageDetector interface {
	Detect(text string) string
}

// Translator runs translation jobs. Implemented by TranslationService.
type Translator interface {
	TranslateText(ctx context.Context, req model.TranslationRequest) (model.TextResult, error)
	TranslateDocuments(ctx context.Context, files []upload.File, targetLang string) (model.DocumentJobResult, error)
	TranslateImage(ctx context.Context, file upload.File, targetLang string) (model.ImageResult, error)
}

// TranslationService orchestrates text, document and image jobs. Chunks of a
// job are translated one after another; a failed chunk aborts the job.
type TranslationService struct {
	client        ChunkTranslator
	credentials   CredentialsSource
	stager        Stager
	documents     DocumentExtractor
	images        ocr.Recognizer
	detector      LanguageDetector
	recorder      JobRecorder
	maxChunkChars int
}

// Option configures a TranslationService.
type Option func(*TranslationService)

// WithMaxChunkChars sets the chunk size for text jobs.
func WithMaxChunkChars(n int) Option {
	return func(s *TranslationService) {
		if n > 0 {
			s.maxChunkChars = n
		}
	}
}

// WithLanguageDetector enables detectedLanguage on text results.
func WithLanguageDetector(d LanguageDetector) Option {
	return func(s *TranslationService) {
		s.detector = d
	}
}

// WithJobRecorder sends a record of every finished job to r.
func WithJobRecorder(r JobRecorder) Option {
	return func(s *TranslationService) {
		if r != nil {
			s.recorder = r
		}
	}
}

// NewTranslationService creates a TranslationService.
func NewTranslationService(
	client ChunkTranslator,
	credentials CredentialsSource,
	stager Stager,
	documents DocumentExtractor,
	images ocr.Recognizer,
	opts ...Option,
) *TranslationService {
	s := &TranslationService{
		client:        client,
		credentials:   credentials,
		stager:        stager,
		documents:     documents,
		images:        images,
		recorder:      noopRecorder{},
		maxChunkChars: segment.DefaultMaxChars,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TranslateText translates a single text. When source and target are the same
// language the text is returned unchanged without loading credentials.
func (s *TranslationService) TranslateText(ctx context.Context, req model.TranslationRequest) (result model.TextResult, err error) {
	job := s.begin(ctx, model.JobText)
	defer func() { job.finish(ctx, s.recorder, err) }()

	if err := req.Validate(); err != nil {
		return model.TextResult{}, err
	}
	job.record.SourceLang = req.SourceLang
	job.record.TargetLang = req.TargetLang
	job.record.Characters = utf8.RuneCountInString(req.Text)

	result = model.TextResult{SourceLang: req.SourceLang, TargetLang: req.TargetLang}
	if s.detector != nil && req.SourceLang == model.SourceAuto {
		result.DetectedLanguage = s.detector.Detect(req.Text)
	}

	if req.SourceLang == req.TargetLang {
		job.status = model.JobStatusNoop
		result.TranslatedText = req.Text
		return result, nil
	}

	creds, err := s.loadCredentials()
	if err != nil {
		return model.TextResult{}, err
	}

	chunks := segment.Segment(req.Text, s.maxChunkChars)
	translated, err := s.translateChunks(ctx, chunks, req.SourceLang, req.TargetLang, creds)
	job.record.Chunks = len(chunks)
	if err != nil {
		return model.TextResult{}, err
	}

	result.TranslatedText = translated
	result.Chunks = len(chunks)
	return result, nil
}

// TranslateDocuments translates uploaded documents strictly in submission order.
// Every extension is checked before any file is staged.
func (s *TranslationService) TranslateDocuments(ctx context.Context, files []upload.File, targetLang string) (result model.DocumentJobResult, err error) {
	job := s.begin(ctx, model.JobDocument)
	defer func() { job.finish(ctx, s.recorder, err) }()

	target, err := validateTarget(targetLang)
	if err != nil {
		return model.DocumentJobResult{}, err
	}
	job.record.SourceLang = model.SourceAuto
	job.record.TargetLang = target
	job.record.Files = len(files)

	if len(files) == 0 {
		return model.DocumentJobResult{}, model.NewValidationError("file", model.ErrKeyFileRequired, "no file uploaded")
	}
	for _, f := range files {
		if !s.documents.Supports(f.Ext()) {
			return model.DocumentJobResult{}, unsupportedFile(f)
		}
	}

	creds, err := s.loadCredentials()
	if err != nil {
		return model.DocumentJobResult{}, err
	}

	var extracted, translated strings.Builder
	placeholders := 0
	for _, f := range files {
		doc, stats, err := s.translateDocument(ctx, f, target, creds)
		job.record.Characters += stats.characters
		job.record.Chunks += stats.chunks
		if err != nil {
			return model.DocumentJobResult{}, fmt.Errorf("document %s: %w", f.Name, err)
		}
		if doc.Placeholder {
			placeholders++
		}
		result.Files = append(result.Files, doc)
		extracted.WriteString(doc.ExtractedText + chunkSeparator)
		translated.WriteString(doc.TranslatedText + chunkSeparator)
	}

	if placeholders == len(files) {
		job.status = model.JobStatusNoop
	}
	result.ExtractedText = strings.TrimRightFunc(extracted.String(), unicode.IsSpace)
	result.TranslatedText = strings.TrimRightFunc(translated.String(), unicode.IsSpace)
	return result, nil
}

type documentStats struct {
	characters int
	chunks     int
}

func (s *TranslationService) translateDocument(ctx context.Context, f upload.File, target string, creds model.Credentials) (model.DocumentResult, documentStats, error) {
	log := logger.FromContext(ctx)

	path, cleanup, err := s.stager.Stage(f)
	if err != nil {
		return model.DocumentResult{}, documentStats{}, err
	}
	defer cleanup()

	raw, err := s.documents.Extract(ctx, path)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return model.DocumentResult{}, documentStats{}, ctxErr
		}
		extractErr := &model.ExtractionError{FileName: f.Name, Err: err}
		log.Warn().Err(extractErr).Str("file", f.Name).Msg("Document extraction failed, using placeholder")
		metrics.RecordExtractionFailure(string(model.JobDocument))
		raw = ""
	}

	if strings.TrimSpace(raw) == "" {
		placeholder := fmt.Sprintf("[%s] document is empty or could not be parsed", f.Name)
		return model.DocumentResult{
			FileName:       f.Name,
			ExtractedText:  placeholder,
			TranslatedText: placeholder,
			Placeholder:    true,
		}, documentStats{}, nil
	}

	stats := documentStats{characters: utf8.RuneCountInString(raw)}
	var chunks []model.Chunk
	if stats.characters > DocumentSliceThreshold {
		chunks = segment.SliceByLength(raw, DocumentSliceSize)
	} else {
		chunks = []model.Chunk{{Index: 0, Text: raw}}
	}
	stats.chunks = len(chunks)

	translated, err := s.translateChunks(ctx, chunks, model.SourceAuto, target, creds)
	if err != nil {
		return model.DocumentResult{}, stats, err
	}

	return model.DocumentResult{
		FileName:       f.Name,
		ExtractedText:  raw,
		TranslatedText: translated,
	}, stats, nil
}

// TranslateImage recognizes text in an image and translates it. An OCR failure
// produces a degraded result instead of an error; a translation failure aborts.
func (s *TranslationService) TranslateImage(ctx context.Context, f upload.File, targetLang string) (result model.ImageResult, err error) {
	job := s.begin(ctx, model.JobImage)
	defer func() { job.finish(ctx, s.recorder, err) }()

	target, err := validateTarget(targetLang)
	if err != nil {
		return model.ImageResult{}, err
	}
	job.record.SourceLang = model.SourceAuto
	job.record.TargetLang = target
	job.record.Files = 1

	if f.Name == "" && f.Open == nil {
		return model.ImageResult{}, model.NewValidationError("file", model.ErrKeyFileRequired, "no file uploaded")
	}
	if !ocr.Supports(f.Ext()) {
		return model.ImageResult{}, unsupportedFile(f)
	}

	creds, err := s.loadCredentials()
	if err != nil {
		return model.ImageResult{}, err
	}

	path, cleanup, err := s.stager.Stage(f)
	if err != nil {
		return model.ImageResult{}, err
	}
	text, ocrErr := s.images.Recognize(ctx, path)
	cleanup()

	result.FileName = f.Name
	if ocrErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return model.ImageResult{}, ctxErr
		}
		extractErr := &model.ExtractionError{FileName: f.Name, Err: ocrErr}
		logger.FromContext(ctx).Warn().Err(extractErr).Str("file", f.Name).Msg("OCR failed, returning notice")
		metrics.RecordExtractionFailure(string(model.JobImage))

		msg := fmt.Sprintf("[%s] OCR failed: %s", f.Name, ocrErr.Error())
		result.OCRText = msg
		result.TranslatedText = msg
		result.Degraded = true
		job.status = model.JobStatusDegraded
		return result, nil
	}

	raw := strings.TrimSpace(text)
	if raw == "" {
		msg := fmt.Sprintf("[%s] no text recognized in image", f.Name)
		result.OCRText = msg
		result.TranslatedText = msg
		job.status = model.JobStatusNoop
		return result, nil
	}

	job.record.Characters = utf8.RuneCountInString(raw)
	chunks := segment.Segment(raw, s.maxChunkChars)
	job.record.Chunks = len(chunks)
	translated, err := s.translateChunks(ctx, chunks, model.SourceAuto, target, creds)
	if err != nil {
		return model.ImageResult{}, err
	}

	result.OCRText = fmt.Sprintf("[%s] OCR result:\n%s", f.Name, raw)
	result.TranslatedText = translated
	return result, nil
}

// translateChunks folds over chunks in order and joins the results with a blank line.
// Whitespace-only chunks are kept as they are without a provider call.
func (s *TranslationService) translateChunks(ctx context.Context, chunks []model.Chunk, from, to string, creds model.Credentials) (string, error) {
	parts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		if strings.TrimSpace(chunk.Text) == "" {
			parts = append(parts, chunk.Text)
			continue
		}
		out, err := s.client.TranslateChunk(ctx, chunk, from, to, creds)
		if err != nil {
			return "", fmt.Errorf("chunk %d of %d: %w", chunk.Index+1, len(chunks), err)
		}
		parts = append(parts, out.Text)
	}
	return strings.Join(parts, chunkSeparator), nil
}

func (s *TranslationService) loadCredentials() (model.Credentials, error) {
	creds, err := s.credentials.Get()
	if err != nil {
		return model.Credentials{}, fmt.Errorf("load credentials: %w", err)
	}
	if !creds.IsComplete() {
		return model.Credentials{}, model.NewValidationError("credentials", model.ErrKeyCredentialsMissing,
			"translation provider credentials are not configured")
	}
	return creds, nil
}

func validateTarget(targetLang string) (string, error) {
	if targetLang == "" {
		targetLang = "zh"
	}
	target, ok := model.NormalizeLanguage(targetLang)
	if !ok {
		return "", model.NewValidationError("targetLang", model.ErrKeyUnknownLanguage, "unknown target language "+targetLang)
	}
	return target, nil
}

func unsupportedFile(f upload.File) error {
	return model.NewValidationError("file", model.ErrKeyUnsupportedFile,
		fmt.Sprintf("unsupported file type %q (%s)", f.Ext(), f.Name))
}

// jobRun tracks one job from start to its record.
type jobRun struct {
	start  time.Time
	status string
	record model.JobRecord
}

func (s *TranslationService) begin(ctx context.Context, kind model.JobKind) *jobRun {
	return &jobRun{
		start:  time.Now(),
		status: model.JobStatusSuccess,
		record: model.JobRecord{
			Kind:      kind,
			RequestID: logger.RequestIDFromContext(ctx),
		},
	}
}

func (j *jobRun) finish(ctx context.Context, recorder JobRecorder, err error) {
	elapsed := time.Since(j.start)
	if err != nil {
		j.status = model.JobStatusFailed
		j.record.ErrorCode = model.ErrorCode(err)
		if errors.Is(err, context.Canceled) {
			j.record.ErrorCode = "canceled"
		}
	}
	j.record.Status = j.status
	j.record.DurationMs = elapsed.Milliseconds()
	j.record.CreatedAt = time.Now().UTC()

	metrics.RecordJob(string(j.record.Kind), j.status, elapsed)

	log := logger.FromContext(ctx)
	event := log.Info()
	if err != nil {
		event = log.Warn().Err(err)
	}
	event.
		Str("kind", string(j.record.Kind)).
		Str("status", j.status).
		Str("to", j.record.TargetLang).
		Int("characters", j.record.Characters).
		Int("chunks", j.record.Chunks).
		Dur("duration", elapsed).
		Msg("Translation job finished")

	record := j.record
	recorder.Record(&record)
}
