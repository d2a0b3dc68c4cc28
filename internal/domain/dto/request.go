// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"strings"
	"time"

	"github.com/guttosm/translate-service/internal/domain/model"
	"github.com/guttosm/translate-service/internal/i18n"
)

// DefaultTargetLang is used when a request names no target language.
const DefaultTargetLang = "zh"

// TranslateTextRequest represents the JSON request body for the text endpoint.
//
// Both the short (from/to) and long (sourceLang/targetLang) field names are
// accepted; the short names win when both are sent.
//
// @Description Request to translate a text
// @Example {"text": "Hello world.", "from": "auto", "to": "zh"}
type TranslateTextRequest struct {
	Text       string `json:"text" example:"Hello world. How are you?"`
	From       string `json:"from,omitempty" example:"auto"`
	To         string `json:"to,omitempty" example:"zh"`
	SourceLang string `json:"sourceLang,omitempty" example:"auto"`
	TargetLang string `json:"targetLang,omitempty" example:"zh"`
} // @name TranslateTextRequest

// ToModel converts the request into a domain request, applying defaults.
func (r *TranslateTextRequest) ToModel() model.TranslationRequest {
	source := firstNonEmpty(r.From, r.SourceLang, model.SourceAuto)
	target := firstNonEmpty(r.To, r.TargetLang, DefaultTargetLang)
	return model.TranslationRequest{
		Text:       r.Text,
		SourceLang: source,
		TargetLang: target,
	}
}

// TargetLanguage returns the target for multipart endpoints, defaulting to zh.
func TargetLanguage(values ...string) string {
	return firstNonEmpty(append(values, DefaultTargetLang)...)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// ConfigRequest represents the JSON request body for storing provider credentials.
//
// @Description Provider credentials
// @Example {"appId": "20240101005525", "secretKey": "your-secret"}
type ConfigRequest struct {
	AppID     string `json:"appId" example:"20240101005525"`
	SecretKey string `json:"secretKey" example:"your-secret"`
} // @name ConfigRequest

// ToModel converts the request into credentials.
func (r *ConfigRequest) ToModel() model.Credentials {
	return model.Credentials{AppID: r.AppID, SecretKey: r.SecretKey}
}

// JobsQuery holds the query string of the job listing endpoint.
type JobsQuery struct {
	Kind      string `form:"kind" binding:"omitempty,oneof=text document image"`
	Status    string `form:"status" binding:"omitempty,oneof=success failed degraded noop"`
	RequestID string `form:"request_id"`
	Since     string `form:"since"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=500"`
	Skip      int    `form:"skip" binding:"omitempty,min=0"`
}

// ToModel converts the query into repository options. Since must be RFC 3339.
func (q *JobsQuery) ToModel() (model.JobQueryOptions, error) {
	opts := model.JobQueryOptions{
		Kind:      model.JobKind(q.Kind),
		Status:    q.Status,
		RequestID: q.RequestID,
		Limit:     q.Limit,
		Skip:      q.Skip,
	}
	if q.Since != "" {
		since, err := time.Parse(time.RFC3339, q.Since)
		if err != nil {
			return opts, model.NewValidationError("since", i18n.ErrKeyInvalidRequest, "since must be an RFC 3339 timestamp")
		}
		opts.Since = &since
	}
	return opts, nil
}
