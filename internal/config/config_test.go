package config_test

import (
	"linkify/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: production\n"))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, config.StorageDriverPostgres, cfg.Storage.Driver)
	require.Equal(t, config.KeyStrategyTimestamp, cfg.Assets.KeyStrategy)
	require.EqualValues(t, 5, cfg.Pages.MaxUpdateAttempts)
	require.Equal(t, 10*time.Millisecond, cfg.Pages.RetryBaseDelay)
	require.Equal(t, "pages", cfg.NATS.PagesBucket)
	require.Equal(t, int64(5<<20), cfg.HTTP.MaxUploadBytes)
}

func TestLoad_YAMLOverrides(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `
storage:
  driver: nats
nats:
  url: nats://nats:4222
  pagesBucket: bio-pages
assets:
  cdnDomain: cdn.example.com
  keyStrategy: content
pages:
  maxUpdateAttempts: 3
  retryBaseDelay: 5ms
`))
	require.NoError(t, err)

	require.Equal(t, config.StorageDriverNATS, cfg.Storage.Driver)
	require.Equal(t, "nats://nats:4222", cfg.NATS.URL)
	require.Equal(t, "bio-pages", cfg.NATS.PagesBucket)
	require.Equal(t, "cdn.example.com", cfg.Assets.CDNDomain)
	require.Equal(t, config.KeyStrategyContent, cfg.Assets.KeyStrategy)
	require.EqualValues(t, 3, cfg.Pages.MaxUpdateAttempts)
	require.Equal(t, 5*time.Millisecond, cfg.Pages.RetryBaseDelay)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")

	cfg, err := config.Load(writeConfig(t, "storage:\n  driver: nats\n"))
	require.NoError(t, err)
	require.Equal(t, config.StorageDriverMemory, cfg.Storage.Driver)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown driver", content: "storage:\n  driver: mongo\n"},
		{name: "unknown key strategy", content: "assets:\n  keyStrategy: random\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
