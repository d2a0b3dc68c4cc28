//go:build tesseract

package ocr

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"
	"github.com/rs/zerolog/log"
)

// ErrClosed is returned by Recognize after Close.
var ErrClosed = errors.New("ocr: engine closed")

// Tesseract runs recognition on a bounded pool of gosseract clients so
// concurrent jobs do not share engine state. Clients are created on demand
// up to the pool size and closed by Close.
type Tesseract struct {
	languages []string
	idle      chan *gosseract.Client

	mu      sync.Mutex
	created int
	size    int
	closed  bool
}

// New returns a tesseract-backed Engine for languages (e.g. "eng+chi_sim")
// with one client per CPU.
func New(languages string) (Engine, error) {
	return NewTesseract(languages, runtime.NumCPU())
}

// NewTesseract checks that the language packs load and returns an engine
// holding at most size clients.
func NewTesseract(languages string, size int) (*Tesseract, error) {
	if languages == "" {
		languages = DefaultLanguages
	}
	if size <= 0 {
		size = 1
	}

	t := &Tesseract{
		languages: strings.Split(languages, "+"),
		idle:      make(chan *gosseract.Client, size),
		size:      size,
	}

	client, err := t.newClient()
	if err != nil {
		return nil, err
	}
	t.created = 1
	t.idle <- client

	log.Info().Str("languages", languages).Int("pool_size", size).Str("engine", gosseract.Version()).Msg("OCR engine ready")
	return t, nil
}

func (t *Tesseract) newClient() (*gosseract.Client, error) {
	client := gosseract.NewClient()
	if err := client.SetLanguage(t.languages...); err != nil {
		_ = client.Close()
		log.Error().Err(err).Strs("languages", t.languages).Msg("Failed to set OCR language")
		return nil, fmt.Errorf("set ocr language %q: %w", strings.Join(t.languages, "+"), err)
	}
	return client, nil
}

// acquire returns an idle client, creates one while under the pool size,
// or waits for a release.
func (t *Tesseract) acquire(ctx context.Context) (*gosseract.Client, error) {
	select {
	case client, ok := <-t.idle:
		if !ok {
			return nil, ErrClosed
		}
		return client, nil
	default:
	}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil, ErrClosed
	}
	if t.created < t.size {
		t.created++
		t.mu.Unlock()
		client, err := t.newClient()
		if err != nil {
			t.mu.Lock()
			t.created--
			t.mu.Unlock()
			return nil, err
		}
		return client, nil
	}
	t.mu.Unlock()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case client, ok := <-t.idle:
		if !ok {
			return nil, ErrClosed
		}
		return client, nil
	}
}

// release returns client to the pool, or closes it when the engine is closed.
func (t *Tesseract) release(client *gosseract.Client) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		_ = client.Close()
		return
	}
	t.idle <- client
}

// Close closes idle clients. Clients still running are closed when they finish.
func (t *Tesseract) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true
	close(t.idle)

	var errs []error
	for client := range t.idle {
		if err := client.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Recognize returns the raw recognized text. The context bounds the wait, not the engine.
func (t *Tesseract) Recognize(ctx context.Context, path string) (string, error) {
	client, err := t.acquire(ctx)
	if err != nil {
		return "", err
	}

	type result struct {
		text string
		err  error
	}
	resultCh := make(chan result, 1)

	go func() {
		defer t.release(client)
		if err := client.SetImage(path); err != nil {
			resultCh <- result{err: fmt.Errorf("load image: %w", err)}
			return
		}
		text, err := client.Text()
		resultCh <- result{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-resultCh:
		return res.text, res.err
	}
}
