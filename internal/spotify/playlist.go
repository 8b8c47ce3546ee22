package spotify

import (
	"context"
	"fmt"
	"time"

	"github.com/zmb3/spotify/v2"

	pl "github.com/jmwatt/go-mood-playlist/internal/playlist"
)

const maxTracksPerRequest = 100

// CreatePlaylist creates a new private playlist owned by userID.
func (c *Client) CreatePlaylist(ctx context.Context, userID, name, description string) (pl.RemotePlaylist, error) {
	created, err := c.api.CreatePlaylistForUser(ctx, userID, name, description, false, false)
	if err != nil {
		return pl.RemotePlaylist{}, fmt.Errorf("creating playlist: %w", err)
	}

	return pl.RemotePlaylist{
		ID:         created.ID.String(),
		URL:        created.ExternalURLs["spotify"],
		CoverImage: firstImageURL(created.Images, ""),
	}, nil
}

// AddTracks adds tracks to a playlist, batching per the 100-track API limit.
func (c *Client) AddTracks(ctx context.Context, playlistID string, trackIDs []string) error {
	if len(trackIDs) == 0 {
		return nil
	}

	ids := make([]spotify.ID, len(trackIDs))
	for i, id := range trackIDs {
		ids[i] = spotify.ID(id)
	}

	for i := 0; i < len(ids); i += maxTracksPerRequest {
		end := min(i+maxTracksPerRequest, len(ids))
		batch := ids[i:end]

		if _, err := c.api.AddTracksToPlaylist(ctx, spotify.ID(playlistID), batch...); err != nil {
			return fmt.Errorf("adding tracks (batch %d-%d): %w", i+1, end, err)
		}
	}

	return nil
}

// GetPlaylist fetches a playlist with its tracks from Spotify.
func (c *Client) GetPlaylist(ctx context.Context, playlistID string) (pl.Playlist, error) {
	full, err := c.api.GetPlaylist(ctx, spotify.ID(playlistID))
	if err != nil {
		return pl.Playlist{}, fmt.Errorf("getting playlist: %w", err)
	}

	tracks := make([]pl.Track, 0, len(full.Tracks.Tracks))
	for _, item := range full.Tracks.Tracks {
		tracks = append(tracks, convertSimpleTrack(item.Track.SimpleTrack))
	}

	return pl.Playlist{
		ID:          full.ID.String(),
		Name:        full.Name,
		Description: full.Description,
		SpotifyID:   full.ID.String(),
		SpotifyURL:  externalURL(full.ExternalURLs),
		CoverImage:  firstImageURL(full.Images, pl.PlaceholderCover),
		Tracks:      tracks,
		CreatedAt:   time.Now(),
	}, nil
}
