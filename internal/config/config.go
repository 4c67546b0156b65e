package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/jpp0ca/LinkBio-API/internal/store"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port     string `mapstructure:"PORT"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	DBDriver string `mapstructure:"DB_DRIVER"`
	DBDSN    string `mapstructure:"DB_DSN"`

	MetadataWorkers int           `mapstructure:"METADATA_WORKERS"`
	ProviderTimeout time.Duration `mapstructure:"PROVIDER_TIMEOUT"`
	ResolveOnSave   bool          `mapstructure:"RESOLVE_ON_SAVE"`
	UserAgent       string        `mapstructure:"USER_AGENT"`

	SpotifyBaseURL string `mapstructure:"SPOTIFY_BASE_URL"`
	DeezerAPIURL   string `mapstructure:"DEEZER_API_URL"`
	ITunesAPIURL   string `mapstructure:"ITUNES_API_URL"`
	YouTubeBaseURL string `mapstructure:"YOUTUBE_BASE_URL"`
	OEmbedProxyURL string `mapstructure:"OEMBED_PROXY_URL"`
}

var defaults = map[string]interface{}{
	"PORT":             "8080",
	"LOG_LEVEL":        "info",
	"DB_DRIVER":        store.DriverSQLite,
	"DB_DSN":           "linkbio.db",
	"METADATA_WORKERS": 4,
	"PROVIDER_TIMEOUT": "5s",
	"RESOLVE_ON_SAVE":  true,
	"USER_AGENT":       "LinkBio-API/1.0",
	"SPOTIFY_BASE_URL": "https://open.spotify.com",
	"DEEZER_API_URL":   "https://api.deezer.com",
	"ITUNES_API_URL":   "https://itunes.apple.com",
	"YOUTUBE_BASE_URL": "https://www.youtube.com",
	"OEMBED_PROXY_URL": "https://noembed.com",
}

// Load reads configuration from .env file (if present) and environment variables.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return nil, errors.Wrapf(err, "bind %s", key)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	if err := validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.DBDriver {
	case store.DriverSQLite, store.DriverPostgres:
	default:
		return errors.Errorf("DB driver is invalid: %s", cfg.DBDriver)
	}
	if cfg.DBDSN == "" {
		return errors.New("DB_DSN is required")
	}
	if cfg.MetadataWorkers < 1 {
		return errors.Errorf("METADATA_WORKERS must be positive, got %d", cfg.MetadataWorkers)
	}
	if cfg.ProviderTimeout <= 0 {
		return errors.Errorf("PROVIDER_TIMEOUT must be positive, got %s", cfg.ProviderTimeout)
	}
	return nil
}
