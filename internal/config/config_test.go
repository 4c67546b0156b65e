package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpp0ca/LinkBio-API/internal/store"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, store.DriverSQLite, cfg.DBDriver)
	assert.Equal(t, 4, cfg.MetadataWorkers)
	assert.Equal(t, 5*time.Second, cfg.ProviderTimeout)
	assert.True(t, cfg.ResolveOnSave)
	assert.Equal(t, "https://noembed.com", cfg.OEmbedProxyURL)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_DSN", "host=localhost user=linkbio dbname=linkbio sslmode=disable")
	t.Setenv("METADATA_WORKERS", "8")
	t.Setenv("PROVIDER_TIMEOUT", "1500ms")
	t.Setenv("RESOLVE_ON_SAVE", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, store.DriverPostgres, cfg.DBDriver)
	assert.Equal(t, 8, cfg.MetadataWorkers)
	assert.Equal(t, 1500*time.Millisecond, cfg.ProviderTimeout)
	assert.False(t, cfg.ResolveOnSave)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"DB_DRIVER":        "mysql",
		"METADATA_WORKERS": "0",
		"PROVIDER_TIMEOUT": "0s",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
