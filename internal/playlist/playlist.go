// Package playlist builds mood playlists, either from the Spotify
// recommendation endpoint or from static mock track lists when the remote
// path is unavailable.
package playlist

import (
	"fmt"
	"time"

	"github.com/jmwatt/go-mood-playlist/internal/mood"
)

// Placeholder assets used when a provider image or link is unavailable.
const (
	PlaceholderCover      = "/placeholder.svg?height=300&width=300"
	PlaceholderAlbumCover = "/placeholder.svg?height=64&width=64"
	PlaceholderURL        = "#"
)

// Track is a single playlist entry. Tracks are owned by their playlist and
// never mutated after creation.
type Track struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Artist     string `json:"artist"`
	Album      string `json:"album"`
	AlbumCover string `json:"albumCover"`
	Duration   string `json:"duration"`
	SpotifyURL string `json:"spotifyUrl"`
}

// Playlist is a generated mood playlist. Guest playlists carry no SpotifyID;
// persisted ones have both a store identity and a provider identity.
type Playlist struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	SpotifyID    string        `json:"spotifyId,omitempty"`
	SpotifyURL   string        `json:"spotifyUrl"`
	CoverImage   string        `json:"coverImage"`
	Tracks       []Track       `json:"tracks"`
	MoodAnalysis mood.Analysis `json:"moodAnalysis"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// Summary is the listing projection of a Playlist.
type Summary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CoverImage  string    `json:"coverImage"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Summarize returns the listing projection of p.
func (p Playlist) Summarize() Summary {
	return Summary{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CoverImage:  p.CoverImage,
		CreatedAt:   p.CreatedAt,
	}
}

// Name produces the display name for a playlist built from a mood, e.g.
// "Energetic Mood - 4/2/2023".
func Name(m mood.Analysis, now time.Time) string {
	return fmt.Sprintf("%s Mood - %s", m.Mood, now.Format("1/2/2006"))
}

// FormatDuration renders a millisecond duration as M:SS with zero-padded
// seconds.
func FormatDuration(ms int) string {
	minutes := ms / 60000
	seconds := (ms % 60000) / 1000
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
