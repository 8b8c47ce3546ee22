package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesEnv(t *testing.T) {
	t.Setenv("SPOTIFY_ID", "env-id")
	t.Setenv("SPOTIFY_SECRET", "env-secret")
	t.Setenv("DATABASE_URL", "postgres://localhost/moods")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Credentials.Spotify.ClientID != "env-id" {
		t.Errorf("ClientID = %q, want env-id", cfg.Credentials.Spotify.ClientID)
	}
	if cfg.Database.URL != "postgres://localhost/moods" {
		t.Errorf("Database.URL = %q", cfg.Database.URL)
	}
	if cfg.Server.Addr != "127.0.0.1:8080" {
		t.Errorf("Server.Addr = %q, want default", cfg.Server.Addr)
	}
}

func TestLoadFileWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
addr = "0.0.0.0:9000"

[credentials.spotify]
client_id = "file-id"
client_secret = "file-secret"

[credentials.openai]
api_key = "file-key"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("SPOTIFY_ID", "env-id")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Credentials.Spotify.ClientID != "env-id" {
		t.Errorf("ClientID = %q, want env override", cfg.Credentials.Spotify.ClientID)
	}
	if cfg.Credentials.Spotify.ClientSecret != "file-secret" {
		t.Errorf("ClientSecret = %q, want file value", cfg.Credentials.Spotify.ClientSecret)
	}
	if cfg.Server.Addr != "0.0.0.0:9000" {
		t.Errorf("Server.Addr = %q, want file value", cfg.Server.Addr)
	}
	if cfg.Credentials.OpenAI.APIKey != "file-key" {
		t.Errorf("APIKey = %q, want file value", cfg.Credentials.OpenAI.APIKey)
	}
}

func TestLoadMissingCredentials(t *testing.T) {
	t.Setenv("SPOTIFY_ID", "")
	t.Setenv("SPOTIFY_SECRET", "")

	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, ErrMissingSpotifyCredentials) {
		t.Errorf("Load() error = %v, want ErrMissingSpotifyCredentials", err)
	}
}
