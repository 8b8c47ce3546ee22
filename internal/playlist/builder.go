package playlist

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/jmwatt/go-mood-playlist/internal/apperr"
	"github.com/jmwatt/go-mood-playlist/internal/genre"
	"github.com/jmwatt/go-mood-playlist/internal/mood"
)

// RemotePlaylist describes a playlist created on the provider.
type RemotePlaylist struct {
	ID         string
	URL        string
	CoverImage string
}

// Provider is the music-provider surface the remote builder needs. A Provider
// is bound to an authenticated user's token; requests for guests never reach
// one.
type Provider interface {
	Recommend(ctx context.Context, seedGenres []string, m mood.Analysis) ([]Track, error)
	CurrentUserID(ctx context.Context) (string, error)
	CreatePlaylist(ctx context.Context, userID, name, description string) (RemotePlaylist, error)
	AddTracks(ctx context.Context, playlistID string, trackIDs []string) error
}

// Builder produces playlists from mood descriptors. With a Provider it builds
// a real Spotify playlist; without one (or when any remote step fails) it
// falls back to the deterministic local builder so a playlist is always
// produced.
type Builder struct {
	logger *log.Logger

	// Injection points for tests.
	now   func() time.Time
	newID func() string
}

// NewBuilder creates a Builder.
func NewBuilder(logger *log.Logger) *Builder {
	return &Builder{
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Create builds a playlist for the given mood. provider may be nil for
// unauthenticated callers. Create never fails: remote errors degrade to the
// local builder.
func (b *Builder) Create(ctx context.Context, m mood.Analysis, provider Provider) Playlist {
	if provider == nil {
		return b.createLocal(m)
	}

	p, err := b.createRemote(ctx, m, provider)
	if err != nil {
		b.logger.Warn("remote playlist creation failed, using local builder", "mood", m.Mood, "err", err)
		return b.createLocal(m)
	}
	return p
}

// createLocal builds a playlist from the static mock track tables.
func (b *Builder) createLocal(m mood.Analysis) Playlist {
	return Playlist{
		ID:           b.newID(),
		Name:         Name(m, b.now()),
		Description:  m.Description,
		SpotifyURL:   PlaceholderURL,
		CoverImage:   PlaceholderCover,
		Tracks:       mockTracksFor(m),
		MoodAnalysis: m,
		CreatedAt:    b.now(),
	}
}

// createRemote builds a playlist through the provider: recommendations from
// normalized seed genres, then a fresh playlist populated with the
// recommended tracks. A failed track attach is logged but not fatal; the
// playlist itself was already created.
func (b *Builder) createRemote(ctx context.Context, m mood.Analysis, provider Provider) (Playlist, error) {
	seeds := genre.Normalize(m.Genres, m.Energy)

	tracks, err := provider.Recommend(ctx, seeds, m)
	if err != nil {
		return Playlist{}, fmt.Errorf("getting recommendations: %w", err)
	}
	if len(tracks) == 0 {
		return Playlist{}, apperr.Upstream("getting recommendations", fmt.Errorf("no tracks returned for seeds %v", seeds))
	}

	userID, err := provider.CurrentUserID(ctx)
	if err != nil {
		return Playlist{}, fmt.Errorf("getting user identity: %w", err)
	}

	name := Name(m, b.now())
	remote, err := provider.CreatePlaylist(ctx, userID, name, m.Description)
	if err != nil {
		return Playlist{}, fmt.Errorf("creating playlist: %w", err)
	}

	trackIDs := make([]string, len(tracks))
	for i, t := range tracks {
		trackIDs[i] = t.ID
	}
	if err := provider.AddTracks(ctx, remote.ID, trackIDs); err != nil {
		b.logger.Warn("adding tracks to playlist failed", "playlist_id", remote.ID, "err", err)
	}

	cover := remote.CoverImage
	if cover == "" {
		cover = PlaceholderCover
	}
	spotifyURL := remote.URL
	if spotifyURL == "" {
		spotifyURL = PlaceholderURL
	}

	return Playlist{
		ID:           remote.ID,
		Name:         name,
		Description:  m.Description,
		SpotifyID:    remote.ID,
		SpotifyURL:   spotifyURL,
		CoverImage:   cover,
		Tracks:       tracks,
		MoodAnalysis: m,
		CreatedAt:    b.now(),
	}, nil
}
