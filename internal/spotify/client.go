// Package spotify wraps the Spotify Web API for mood playlist generation.
package spotify

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"

	pl "github.com/jmwatt/go-mood-playlist/internal/playlist"
)

// Client wraps an authenticated Spotify API client with the operations the
// playlist builder and handlers need.
type Client struct {
	api *spotify.Client
}

// New creates a Client around an already-authenticated API client.
func New(api *spotify.Client) *Client {
	return &Client{api: api}
}

// CurrentUserID returns the acting user's Spotify ID.
func (c *Client) CurrentUserID(ctx context.Context) (string, error) {
	user, err := c.api.CurrentUser(ctx)
	if err != nil {
		return "", fmt.Errorf("getting current user: %w", err)
	}
	return user.ID, nil
}

// Profile holds the subset of the user profile persisted locally.
type Profile struct {
	ID          string
	DisplayName string
	Email       string
}

// CurrentProfile returns the acting user's profile.
func (c *Client) CurrentProfile(ctx context.Context) (Profile, error) {
	user, err := c.api.CurrentUser(ctx)
	if err != nil {
		return Profile{}, fmt.Errorf("getting current user: %w", err)
	}
	return Profile{
		ID:          user.ID,
		DisplayName: user.DisplayName,
		Email:       user.Email,
	}, nil
}

// GenreSeeds returns the genre tokens accepted by the recommendation
// endpoint.
func (c *Client) GenreSeeds(ctx context.Context) ([]string, error) {
	seeds, err := c.api.GetAvailableGenreSeeds(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting genre seeds: %w", err)
	}
	return seeds, nil
}

// convertSimpleTrack maps a Spotify track into the application track shape.
func convertSimpleTrack(t spotify.SimpleTrack) pl.Track {
	return pl.Track{
		ID:         t.ID.String(),
		Name:       t.Name,
		Artist:     joinArtists(t.Artists),
		Album:      t.Album.Name,
		AlbumCover: firstImageURL(t.Album.Images, pl.PlaceholderAlbumCover),
		Duration:   pl.FormatDuration(int(t.Duration)),
		SpotifyURL: externalURL(t.ExternalURLs),
	}
}

func joinArtists(artists []spotify.SimpleArtist) string {
	switch len(artists) {
	case 0:
		return ""
	case 1:
		return artists[0].Name
	}

	joined := artists[0].Name
	for _, a := range artists[1:] {
		joined += ", " + a.Name
	}
	return joined
}

func firstImageURL(images []spotify.Image, placeholder string) string {
	if len(images) == 0 || images[0].URL == "" {
		return placeholder
	}
	return images[0].URL
}

func externalURL(urls map[string]string) string {
	if u, ok := urls["spotify"]; ok && u != "" {
		return u
	}
	return pl.PlaceholderURL
}
