// Package config loads application configuration from a TOML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrMissingSpotifyCredentials is returned when no Spotify client credentials
// are configured. The OpenAI key is optional: without it the remote mood
// classifier is disabled and only the keyword fallback is available.
var ErrMissingSpotifyCredentials = errors.New("missing Spotify client credentials (set SPOTIFY_ID and SPOTIFY_SECRET)")

// ErrMissingDatabaseURL is returned by operations that need persistence when
// no database is configured.
var ErrMissingDatabaseURL = errors.New("missing database URL (set DATABASE_URL)")

// Config holds the application configuration.
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Credentials CredentialsConfig `toml:"credentials"`
	Database    DatabaseConfig    `toml:"database"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Addr        string `toml:"addr"`
	RedirectURI string `toml:"redirect_uri"`
}

// CredentialsConfig contains provider credentials.
type CredentialsConfig struct {
	Spotify SpotifyConfig `toml:"spotify"`
	OpenAI  OpenAIConfig  `toml:"openai"`
}

// SpotifyConfig contains Spotify API credentials.
type SpotifyConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
}

// OpenAIConfig contains OpenAI API credentials.
type OpenAIConfig struct {
	APIKey string `toml:"api_key"`
}

// DatabaseConfig contains PostgreSQL connection settings.
type DatabaseConfig struct {
	URL string `toml:"url"`
}

// Default returns a Config with development defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:        "127.0.0.1:8080",
			RedirectURI: "http://127.0.0.1:8080/callback",
		},
	}
}

// Load reads configuration from the TOML file at path (if it exists) and
// applies environment variable overrides. A missing file is not an error so
// a fully env-configured deployment needs no config file at all.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg.applyEnv()

	if cfg.Credentials.Spotify.ClientID == "" || cfg.Credentials.Spotify.ClientSecret == "" {
		return nil, ErrMissingSpotifyCredentials
	}

	return cfg, nil
}

// applyEnv overrides file values with environment variables when set.
func (c *Config) applyEnv() {
	overrides := []struct {
		env string
		dst *string
	}{
		{"SPOTIFY_ID", &c.Credentials.Spotify.ClientID},
		{"SPOTIFY_SECRET", &c.Credentials.Spotify.ClientSecret},
		{"OPENAI_API_KEY", &c.Credentials.OpenAI.APIKey},
		{"DATABASE_URL", &c.Database.URL},
		{"SERVER_ADDR", &c.Server.Addr},
		{"REDIRECT_URI", &c.Server.RedirectURI},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.env); v != "" {
			*o.dst = v
		}
	}
}
