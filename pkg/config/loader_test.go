package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestFileLoader_YAML(t *testing.T) {
	path := writeConfigFile(t, "config.yaml", `
server:
  port: 5000
api:
  base_url: http://api.example.com/api
google:
  client_id: cid
  client_secret: csec
`)

	cfg, err := NewFileLoader(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host, "host should default")
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "http://api.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, "leveldb", cfg.Storage.Durable.Type, "durable storage should default to leveldb")
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.GoogleEnabled())
	assert.Equal(t, "http://127.0.0.1:5000/auth/google/callback", cfg.Google.RedirectURL)
}

func TestFileLoader_JSON(t *testing.T) {
	path := writeConfigFile(t, "config.json", `{"server": {"port": 5001}}`)

	cfg, err := NewFileLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 5001, cfg.Server.Port)
}

func TestFileLoader_EnvExpansion(t *testing.T) {
	t.Setenv("EDU2JOB_API_BASE", "http://backend.internal:9000/api")

	path := writeConfigFile(t, "config.yaml", `
api:
  base_url: ${EDU2JOB_API_BASE:-http://127.0.0.1:8000/api}
`)

	cfg, err := NewFileLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "http://backend.internal:9000/api", cfg.API.BaseURL)
}

func TestFileLoader_NotFound(t *testing.T) {
	_, err := NewFileLoader(filepath.Join(t.TempDir(), "missing.yaml")).Load()
	assert.ErrorIs(t, err, ErrConfigFileNotFound)
}

func TestFileLoader_UnsupportedExtension(t *testing.T) {
	path := writeConfigFile(t, "config.toml", "x = 1")
	_, err := NewFileLoader(path).Load()
	assert.ErrorContains(t, err, "unsupported config file format")
}

func TestFileLoader_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{"bad port", "server:\n  port: 99999\n", ErrInvalidServerPort},
		{"bad base url", "api:\n  base_url: not-a-url\n", ErrInvalidAPIBaseURL},
		{"bad timeout", "api:\n  timeout: soon\n", ErrInvalidAPITimeout},
		{"bad cache ttl", "cache:\n  ttl: never\n", ErrInvalidCacheTTL},
		{"bad storage type", "storage:\n  durable:\n    type: sqlite\n", ErrInvalidStorageType},
		{"google id without secret", "google:\n  client_id: cid\n", ErrGoogleSecretRequired},
		{"google secret without id", "google:\n  client_secret: csec\n", ErrGoogleClientIDRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, "config.yaml", tt.yaml)
			_, err := NewFileLoader(path).Load()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "http://127.0.0.1:8000/api", cfg.API.BaseURL)
	assert.Equal(t, 4280, cfg.Server.Port)
	assert.False(t, cfg.GoogleEnabled())
}

func TestDefaultLoader(t *testing.T) {
	cfg, err := DefaultLoader{}.Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
