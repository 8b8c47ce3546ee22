package web

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/jmwatt/go-mood-playlist/internal/db"
	"github.com/jmwatt/go-mood-playlist/internal/mood"
	"github.com/jmwatt/go-mood-playlist/internal/playlist"
)

// toStored converts an API playlist into its database representation. A
// playlist without a provider id (guest-built) uses its own id as the
// spotify_id so the uniqueness constraint still holds.
func toStored(p playlist.Playlist, userID string) (*db.Playlist, []db.PlaylistTrack) {
	spotifyID := p.SpotifyID
	if spotifyID == "" {
		spotifyID = p.ID
	}

	moodData, _ := json.Marshal(p.MoodAnalysis)

	stored := &db.Playlist{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        p.Name,
		Description: p.Description,
		SpotifyID:   spotifyID,
		SpotifyURL:  p.SpotifyURL,
		CoverImage:  p.CoverImage,
		MoodData:    moodData,
	}

	tracks := make([]db.PlaylistTrack, len(p.Tracks))
	for i, t := range p.Tracks {
		tracks[i] = db.PlaylistTrack{
			Position:   i,
			SpotifyID:  t.ID,
			Name:       t.Name,
			Artist:     t.Artist,
			Album:      t.Album,
			AlbumCover: t.AlbumCover,
			Duration:   t.Duration,
			SpotifyURL: t.SpotifyURL,
		}
	}
	return stored, tracks
}

// fromStored converts a database playlist and its tracks back into the API
// shape.
func fromStored(p *db.Playlist, tracks []db.PlaylistTrack) playlist.Playlist {
	out := playlist.Playlist{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		SpotifyID:   p.SpotifyID,
		SpotifyURL:  p.SpotifyURL,
		CoverImage:  p.CoverImage,
		Tracks:      make([]playlist.Track, len(tracks)),
		CreatedAt:   p.CreatedAt,
	}

	if len(p.MoodData) > 0 {
		_ = json.Unmarshal(p.MoodData, &out.MoodAnalysis)
	}

	for i, t := range tracks {
		out.Tracks[i] = playlist.Track{
			ID:         t.SpotifyID,
			Name:       t.Name,
			Artist:     t.Artist,
			Album:      t.Album,
			AlbumCover: t.AlbumCover,
			Duration:   t.Duration,
			SpotifyURL: t.SpotifyURL,
		}
	}
	return out
}

// storedSummary projects a database playlist row onto the listing shape.
func storedSummary(p db.Playlist) playlist.Summary {
	return playlist.Summary{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CoverImage:  p.CoverImage,
		CreatedAt:   p.CreatedAt,
	}
}

// moodPoint extracts the clustering coordinates from a stored playlist,
// reporting false when no mood data was persisted.
func moodPoint(p db.Playlist) (mood.Analysis, bool) {
	if len(p.MoodData) == 0 {
		return mood.Analysis{}, false
	}
	var m mood.Analysis
	if err := json.Unmarshal(p.MoodData, &m); err != nil {
		return mood.Analysis{}, false
	}
	return m, true
}
