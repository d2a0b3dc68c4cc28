// Package model defines the core domain entities for the translation service.
package model

import "strings"

// SourceAuto lets the provider detect the source language.
const SourceAuto = "auto"

// TranslationRequest is a single text translation job.
//
// @Description Text to translate with its language pair
type TranslationRequest struct {
	Text       string `json:"text" example:"Hello world. How are you?"`
	SourceLang string `json:"sourceLang" example:"auto"`
	TargetLang string `json:"targetLang" example:"zh"`
}

// Validate checks text presence and that both languages are known.
// Language codes are normalized in place.
func (r *TranslationRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return NewValidationError("text", ErrKeyTextRequired, "text must not be empty")
	}

	source := r.SourceLang
	if source == "" {
		source = SourceAuto
	}
	if source != SourceAuto {
		code, ok := NormalizeLanguage(source)
		if !ok {
			return NewValidationError("sourceLang", ErrKeyUnknownLanguage, "unknown source language "+r.SourceLang)
		}
		source = code
	}

	target, ok := NormalizeLanguage(r.TargetLang)
	if !ok {
		return NewValidationError("targetLang", ErrKeyUnknownLanguage, "unknown target language "+r.TargetLang)
	}

	r.SourceLang = source
	r.TargetLang = target
	return nil
}

// Chunk is a length-bounded piece of input text.
type Chunk struct {
	Index int
	Text  string
}

// TranslatedChunk is the provider output for exactly one Chunk.
type TranslatedChunk struct {
	Index int
	Text  string
}

// Credentials authenticate calls to the translation provider.
// SecretKey must never be logged or returned to a caller.
type Credentials struct {
	AppID     string `json:"appId"`
	SecretKey string `json:"secretKey"`
}

// IsComplete reports whether both fields are set.
func (c Credentials) IsComplete() bool {
	return c.AppID != "" && c.SecretKey != ""
}

// MaskedAppID returns the app id with all but the last four characters hidden.
func (c Credentials) MaskedAppID() string {
	if len(c.AppID) <= 4 {
		return strings.Repeat("*", len(c.AppID))
	}
	return strings.Repeat("*", len(c.AppID)-4) + c.AppID[len(c.AppID)-4:]
}

// TextResult is the outcome of a text job.
//
// @Description Translated text with chunk statistics
type TextResult struct {
	TranslatedText   string `json:"translatedText" example:"你好，世界。"`
	SourceLang       string `json:"sourceLang" example:"auto"`
	TargetLang       string `json:"targetLang" example:"zh"`
	Chunks           int    `json:"chunks" example:"1"`
	DetectedLanguage string `json:"detectedLanguage,omitempty" example:"en"`
}

// DocumentResult is the outcome for one uploaded document.
//
// @Description Per-file document translation
type DocumentResult struct {
	FileName       string `json:"fileName" example:"notes.txt"`
	ExtractedText  string `json:"extractedText"`
	TranslatedText string `json:"translatedText"`
	Placeholder    bool   `json:"placeholder"`
}

// DocumentJobResult aggregates all files of a document job in submission order.
//
// @Description Document translation result
type DocumentJobResult struct {
	Files          []DocumentResult `json:"files"`
	ExtractedText  string           `json:"extractedText"`
	TranslatedText string           `json:"translatedText"`
}

// ImageResult is the outcome of an image job.
// Degraded is set when OCR failed and the texts carry the failure message.
//
// @Description Image OCR and translation result
type ImageResult struct {
	FileName       string `json:"fileName" example:"scan.png"`
	OCRText        string `json:"ocrText"`
	TranslatedText string `json:"translatedText"`
	Degraded       bool   `json:"degraded"`
}
