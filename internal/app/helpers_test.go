package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/guttosm/translate-service/config"
)

// testConfig returns a config that keeps all files inside the test's temp dir.
func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	return config.Config{
		Server: config.ServerConfig{
			Port:       "0",
			RateLimit:  100,
			RateWindow: time.Minute,
		},
		Log: config.LogConfig{Level: "error"},
		Provider: config.ProviderConfig{
			URL:           "http://127.0.0.1:1/translate",
			Timeout:       time.Second,
			MaxChunkChars: 4500,
		},
		Upload: config.UploadConfig{
			Dir:      filepath.Join(dir, "uploads"),
			MaxBytes: 1 << 20,
		},
		Credentials: config.CredentialsConfig{
			File: filepath.Join(dir, "config.json"),
		},
		Features: config.FeaturesConfig{
			OCRLanguages: "eng",
		},
	}
}
