package playlist

import (
	"context"
	"errors"
	"os"
	"slices"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jmwatt/go-mood-playlist/internal/mood"
)

func newTestBuilder() *Builder {
	b := NewBuilder(log.New(os.Stderr))
	b.now = func() time.Time { return time.Date(2024, 4, 2, 12, 0, 0, 0, time.UTC) }
	b.newID = func() string { return "test-id" }
	return b
}

func TestCreateLocalQuadrants(t *testing.T) {
	tests := []struct {
		name       string
		energy     float64
		valence    float64
		wantTrack1 string
	}{
		{"upbeat quadrant", 0.9, 0.9, "Don't Stop Me Now"},
		{"melancholic quadrant", 0.2, 0.1, "Someone Like You"},
		{"focus quadrant", 0.5, 0.6, "Experience"},
		{"default quadrant", 0.65, 0.5, "Blinding Lights"},
		{"high energy low valence falls to default", 0.9, 0.2, "Blinding Lights"},
		{"upbeat outranks focus on boundary", 0.75, 0.8, "Don't Stop Me Now"},
	}

	b := newTestBuilder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mood.Analysis{Mood: "Test", Energy: tt.energy, Valence: tt.valence}
			got := b.Create(context.Background(), m, nil)

			if len(got.Tracks) != 5 {
				t.Fatalf("len(Tracks) = %d, want 5", len(got.Tracks))
			}
			if got.Tracks[0].Name != tt.wantTrack1 {
				t.Errorf("Tracks[0].Name = %q, want %q", got.Tracks[0].Name, tt.wantTrack1)
			}
		})
	}
}

func TestCreateLocalShape(t *testing.T) {
	b := newTestBuilder()
	m := mood.Analysis{Mood: "Energetic", Energy: 0.9, Valence: 0.9, Description: "big energy"}

	got := b.Create(context.Background(), m, nil)

	if got.ID != "test-id" {
		t.Errorf("ID = %q, want test-id", got.ID)
	}
	if got.Name != "Energetic Mood - 4/2/2024" {
		t.Errorf("Name = %q", got.Name)
	}
	if got.Description != "big energy" {
		t.Errorf("Description = %q", got.Description)
	}
	if got.SpotifyURL != PlaceholderURL {
		t.Errorf("SpotifyURL = %q, want %q", got.SpotifyURL, PlaceholderURL)
	}
	if got.SpotifyID != "" {
		t.Errorf("SpotifyID = %q, want empty for local playlist", got.SpotifyID)
	}
	if got.MoodAnalysis.Mood != "Energetic" {
		t.Errorf("MoodAnalysis.Mood = %q", got.MoodAnalysis.Mood)
	}
}

type fakeProvider struct {
	recommendTracks []Track
	recommendErr    error
	userErr         error
	createErr       error
	addErr          error

	gotSeeds    []string
	gotName     string
	addedTracks []string
}

func (f *fakeProvider) Recommend(_ context.Context, seeds []string, _ mood.Analysis) ([]Track, error) {
	f.gotSeeds = seeds
	return f.recommendTracks, f.recommendErr
}

func (f *fakeProvider) CurrentUserID(context.Context) (string, error) {
	if f.userErr != nil {
		return "", f.userErr
	}
	return "user-1", nil
}

func (f *fakeProvider) CreatePlaylist(_ context.Context, _, name, _ string) (RemotePlaylist, error) {
	f.gotName = name
	if f.createErr != nil {
		return RemotePlaylist{}, f.createErr
	}
	return RemotePlaylist{ID: "sp-123", URL: "https://open.spotify.com/playlist/sp-123", CoverImage: "https://img/c.jpg"}, nil
}

func (f *fakeProvider) AddTracks(_ context.Context, _ string, ids []string) error {
	f.addedTracks = ids
	return f.addErr
}

func recommended() []Track {
	return []Track{
		{ID: "t1", Name: "Song One", Artist: "Artist A", Album: "Album A", Duration: "3:00", SpotifyURL: "https://open.spotify.com/track/t1"},
		{ID: "t2", Name: "Song Two", Artist: "Artist B", Album: "Album B", Duration: "2:30", SpotifyURL: "https://open.spotify.com/track/t2"},
	}
}

func TestCreateRemote(t *testing.T) {
	b := newTestBuilder()
	provider := &fakeProvider{recommendTracks: recommended()}
	m := mood.Analysis{Mood: "Energetic", Genres: []string{"Pop", "Dance"}, Energy: 0.8, Valence: 0.9, Description: "desc"}

	got := b.Create(context.Background(), m, provider)

	if got.SpotifyID != "sp-123" {
		t.Errorf("SpotifyID = %q, want sp-123", got.SpotifyID)
	}
	if got.ID != "sp-123" {
		t.Errorf("ID = %q, want sp-123", got.ID)
	}
	if !slices.Equal(provider.gotSeeds, []string{"pop", "dance"}) {
		t.Errorf("seeds = %v, want [pop dance]", provider.gotSeeds)
	}
	if provider.gotName != "Energetic Mood - 4/2/2024" {
		t.Errorf("playlist name = %q", provider.gotName)
	}
	if !slices.Equal(provider.addedTracks, []string{"t1", "t2"}) {
		t.Errorf("added tracks = %v", provider.addedTracks)
	}
	if len(got.Tracks) != 2 || got.Tracks[0].Name != "Song One" {
		t.Errorf("Tracks = %+v", got.Tracks)
	}
}

func TestCreateRemoteFallsBackToLocal(t *testing.T) {
	tests := []struct {
		name     string
		provider *fakeProvider
	}{
		{"recommendation error", &fakeProvider{recommendErr: errors.New("upstream down")}},
		{"zero tracks", &fakeProvider{recommendTracks: nil}},
		{"user lookup error", &fakeProvider{recommendTracks: recommended(), userErr: errors.New("401")}},
		{"create error", &fakeProvider{recommendTracks: recommended(), createErr: errors.New("403")}},
	}

	b := newTestBuilder()
	m := mood.Analysis{Mood: "Energetic", Genres: []string{"Pop"}, Energy: 0.9, Valence: 0.9}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Create(context.Background(), m, tt.provider)

			// Local fallback: mock tracks, placeholder links.
			if got.Tracks[0].Name != "Don't Stop Me Now" {
				t.Errorf("Tracks[0].Name = %q, want upbeat mock list", got.Tracks[0].Name)
			}
			if got.SpotifyURL != PlaceholderURL {
				t.Errorf("SpotifyURL = %q, want placeholder", got.SpotifyURL)
			}
		})
	}
}

func TestCreateRemoteAttachFailureNotFatal(t *testing.T) {
	b := newTestBuilder()
	provider := &fakeProvider{recommendTracks: recommended(), addErr: errors.New("attach failed")}
	m := mood.Analysis{Mood: "Energetic", Genres: []string{"Pop"}, Energy: 0.8, Valence: 0.9}

	got := b.Create(context.Background(), m, provider)

	// The playlist is still the remote one.
	if got.SpotifyID != "sp-123" {
		t.Errorf("SpotifyID = %q, want sp-123 despite attach failure", got.SpotifyID)
	}
}
