// Package baidu is the client for the Baidu general text translation API.
package baidu

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/translate-service/internal/domain/model"
	"github.com/guttosm/translate-service/internal/metrics"
)

const (
	// DefaultURL is the provider endpoint.
	DefaultURL = "https://fanyi-api.baidu.com/api/trans/vip/translate"
	// DefaultTimeout bounds a single provider request.
	DefaultTimeout = 30 * time.Second

	maxErrorBody = 512
)

// Client sends one signed request per chunk. It performs no retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	newSalt    func() string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithSaltFunc overrides salt generation. Used by tests to get stable signatures.
func WithSaltFunc(fn func() string) Option {
	return func(c *Client) {
		c.newSalt = fn
	}
}

// NewClient creates a Client for baseURL. Empty values fall back to the defaults.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		newSalt:    NewSalt,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type translateResponse struct {
	From        string     `json:"from"`
	To          string     `json:"to"`
	TransResult []fragment `json:"trans_result"`
	ErrorCode   flexCode   `json:"error_code"`
	ErrorMsg    string     `json:"error_msg"`
}

type fragment struct {
	Src string `json:"src"`
	Dst string `json:"dst"`
}

// flexCode accepts error_code as a JSON string or number.
type flexCode string

func (f *flexCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexCode(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexCode(n.String())
	return nil
}

// TranslateChunk translates a single chunk. The returned chunk keeps the input index.
//
// Errors:
//   - *model.TransportError for non-2xx responses or when no response was received
//   - *model.ProviderError when the body carries an error_code
//   - model.ErrEmptyResult when the provider returned no fragments
func (c *Client) TranslateChunk(ctx context.Context, chunk model.Chunk, from, to string, creds model.Credentials) (model.TranslatedChunk, error) {
	start := time.Now()
	out, err := c.translate(ctx, chunk, from, to, creds)
	metrics.RecordProviderRequest(resultLabel(err), time.Since(start))
	if err != nil {
		log.Warn().
			Err(err).
			Int("chunk", chunk.Index).
			Str("app_id", creds.MaskedAppID()).
			Str("from", from).
			Str("to", to).
			Msg("Provider request failed")
		return model.TranslatedChunk{}, err
	}
	metrics.RecordChunk()
	return out, nil
}

func (c *Client) translate(ctx context.Context, chunk model.Chunk, from, to string, creds model.Credentials) (model.TranslatedChunk, error) {
	salt := c.newSalt()
	form := url.Values{}
	form.Set("q", chunk.Text)
	form.Set("from", from)
	form.Set("to", to)
	form.Set("appid", creds.AppID)
	form.Set("salt", salt)
	form.Set("sign", Sign(creds.AppID, chunk.Text, salt, creds.SecretKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return model.TranslatedChunk{}, fmt.Errorf("build provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return model.TranslatedChunk{}, ctxErr
		}
		return model.TranslatedChunk{}, &model.TransportError{Status: 0, Body: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.TranslatedChunk{}, &model.TransportError{Status: resp.StatusCode, Body: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return model.TranslatedChunk{}, &model.TransportError{Status: resp.StatusCode, Body: truncate(body)}
	}

	var parsed translateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return model.TranslatedChunk{}, &model.TransportError{
			Status: resp.StatusCode,
			Body:   "invalid response body: " + truncate(body),
		}
	}

	if code := string(parsed.ErrorCode); code != "" && code != successCode {
		return model.TranslatedChunk{}, newProviderError(code, parsed.ErrorMsg)
	}

	if len(parsed.TransResult) == 0 {
		return model.TranslatedChunk{}, model.ErrEmptyResult
	}

	parts := make([]string, len(parsed.TransResult))
	for i, f := range parsed.TransResult {
		parts[i] = f.Dst
	}

	return model.TranslatedChunk{Index: chunk.Index, Text: strings.Join(parts, "\n")}, nil
}

// truncate cuts body to at most maxErrorBody bytes without splitting a rune.
func truncate(body []byte) string {
	if len(body) <= maxErrorBody {
		return string(body)
	}
	cut := maxErrorBody
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return string(body[:cut])
}

func resultLabel(err error) string {
	if err == nil {
		return "success"
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "canceled"
	}
	return model.ErrorCode(err)
}
