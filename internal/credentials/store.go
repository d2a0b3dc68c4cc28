// Package credentials loads and persists the provider credentials.
package credentials

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/guttosm/translate-service/internal/domain/model"
)

// Environment variables that take precedence over the file.
const (
	EnvAppID     = "BAIDU_APP_ID"
	EnvSecretKey = "BAIDU_SECRET_KEY"
)

const sealKeySize = 32

// ErrInvalidSealKey is returned when the seal key is not 32 base64-encoded bytes.
var ErrInvalidSealKey = errors.New("credentials: seal key must be 32 bytes, base64 encoded")

// Store reads and writes provider credentials. Get is called once per job.
type Store interface {
	Get() (model.Credentials, error)
	Set(creds model.Credentials) error
}

type fileContents struct {
	AppID           string `json:"appId"`
	SecretKey       string `json:"secretKey,omitempty"`
	SealedSecretKey string `json:"sealedSecretKey,omitempty"`
}

// FileStore reads each field from the environment first, then from a JSON file.
// Writes go to the file only.
type FileStore struct {
	path    string
	sealKey *[sealKeySize]byte
	mu      sync.Mutex
}

// NewFileStore creates a FileStore backed by path. sealKey is optional; when set
// the secret key is written sealed with secretbox.
func NewFileStore(path, sealKey string) (*FileStore, error) {
	s := &FileStore{path: path}
	if sealKey == "" {
		return s, nil
	}
	raw, err := base64.StdEncoding.DecodeString(sealKey)
	if err != nil || len(raw) != sealKeySize {
		return nil, ErrInvalidSealKey
	}
	var key [sealKeySize]byte
	copy(key[:], raw)
	s.sealKey = &key
	return s, nil
}

// Get returns the current credentials. Missing values are left empty; callers
// check IsComplete. A missing file is not an error.
func (s *FileStore) Get() (model.Credentials, error) {
	var creds model.Credentials
	if v, ok := os.LookupEnv(EnvAppID); ok {
		creds.AppID = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv(EnvSecretKey); ok {
		creds.SecretKey = strings.TrimSpace(v)
	}
	if creds.IsComplete() {
		return creds, nil
	}

	fromFile, err := s.readFile()
	if err != nil {
		return creds, err
	}
	if creds.AppID == "" {
		creds.AppID = fromFile.AppID
	}
	if creds.SecretKey == "" {
		creds.SecretKey = fromFile.SecretKey
	}
	return creds, nil
}

// Set validates and persists creds. The file is replaced atomically with mode 0600.
func (s *FileStore) Set(creds model.Credentials) error {
	creds.AppID = strings.TrimSpace(creds.AppID)
	creds.SecretKey = strings.TrimSpace(creds.SecretKey)
	if !creds.IsComplete() {
		return model.NewValidationError("credentials", model.ErrKeyCredentialsIncomplete, "appId and secretKey are required")
	}

	contents := fileContents{AppID: creds.AppID}
	if s.sealKey != nil {
		sealed, err := s.seal(creds.SecretKey)
		if err != nil {
			return err
		}
		contents.SealedSecretKey = sealed
	} else {
		contents.SecretKey = creds.SecretKey
	}

	data, err := json.MarshalIndent(contents, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := writeFileAtomic(s.path, data); err != nil {
		return err
	}

	log.Info().Str("app_id", creds.MaskedAppID()).Bool("sealed", s.sealKey != nil).Msg("Credentials updated")
	return nil
}

func (s *FileStore) readFile() (model.Credentials, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return model.Credentials{}, nil
	}
	if err != nil {
		return model.Credentials{}, fmt.Errorf("read credentials file: %w", err)
	}

	if err := validateFile(data); err != nil {
		return model.Credentials{}, err
	}

	var contents fileContents
	if err := json.Unmarshal(data, &contents); err != nil {
		return model.Credentials{}, fmt.Errorf("parse credentials file: %w", err)
	}

	creds := model.Credentials{AppID: contents.AppID, SecretKey: contents.SecretKey}
	if contents.SealedSecretKey != "" {
		secret, err := s.open(contents.SealedSecretKey)
		if err != nil {
			return model.Credentials{}, err
		}
		creds.SecretKey = secret
	}
	return creds, nil
}

func (s *FileStore) seal(secret string) (string, error) {
	var nonce [24]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	box := secretbox.Seal(nonce[:], []byte(secret), &nonce, s.sealKey)
	return base64.StdEncoding.EncodeToString(box), nil
}

func (s *FileStore) open(sealed string) (string, error) {
	if s.sealKey == nil {
		return "", errors.New("credentials: file holds a sealed secret but no seal key is configured")
	}
	box, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil || len(box) < 24 {
		return "", errors.New("credentials: malformed sealed secret")
	}
	var nonce [24]byte
	copy(nonce[:], box[:24])
	secret, ok := secretbox.Open(nil, box[24:], &nonce, s.sealKey)
	if !ok {
		return "", errors.New("credentials: sealed secret does not match seal key")
	}
	return string(secret), nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".credentials-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp credentials file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod credentials file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write credentials file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync credentials file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close credentials file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace credentials file: %w", err)
	}
	return nil
}
