package db

import "time"

// User represents a Spotify user profile.
type User struct {
	ID          string
	DisplayName string
	Email       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Session represents an authenticated web session.
type Session struct {
	ID           string
	UserID       string
	AccessToken  string
	RefreshToken string
	TokenExpiry  time.Time
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

// Playlist is a persisted mood playlist. SpotifyID is unique across the
// store; MoodData carries the denormalized mood analysis blob.
type Playlist struct {
	ID          string
	UserID      string
	Name        string
	Description string
	SpotifyID   string
	SpotifyURL  string
	CoverImage  string
	MoodData    []byte // JSON blob, may be nil
	CreatedAt   time.Time
}

// PlaylistTrack is a track owned by a persisted playlist, ordered by
// Position.
type PlaylistTrack struct {
	PlaylistID string
	Position   int
	SpotifyID  string
	Name       string
	Artist     string
	Album      string
	AlbumCover string
	Duration   string
	SpotifyURL string
}
