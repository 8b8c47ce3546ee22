package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PlaylistRepository handles playlist database operations.
type PlaylistRepository struct {
	pool *pgxpool.Pool
}

// CreateWithTracks persists a playlist and its tracks in one transaction.
// The unique constraint on spotify_id makes the operation race-free: when a
// record with the same provider id already exists, nothing is inserted and
// the existing store id is returned with created=false.
func (r *PlaylistRepository) CreateWithTracks(ctx context.Context, p *Playlist, tracks []PlaylistTrack) (string, bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return "", false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insert := `
		INSERT INTO playlists (id, user_id, name, description, spotify_id, spotify_url, cover_image, mood_data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (spotify_id) DO NOTHING
		RETURNING id
	`
	var id string
	err = tx.QueryRow(ctx, insert,
		p.ID,
		p.UserID,
		p.Name,
		p.Description,
		p.SpotifyID,
		p.SpotifyURL,
		p.CoverImage,
		p.MoodData,
	).Scan(&id)

	if errors.Is(err, pgx.ErrNoRows) {
		// Lost the race (or the playlist was saved earlier); hand back the
		// existing record's id.
		var existingID string
		lookup := `SELECT id FROM playlists WHERE spotify_id = $1`
		if err := tx.QueryRow(ctx, lookup, p.SpotifyID).Scan(&existingID); err != nil {
			return "", false, fmt.Errorf("looking up existing playlist: %w", err)
		}
		if err := tx.Commit(ctx); err != nil {
			return "", false, fmt.Errorf("committing transaction: %w", err)
		}
		return existingID, false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("inserting playlist: %w", err)
	}

	trackInsert := `
		INSERT INTO playlist_tracks (playlist_id, position, spotify_id, name, artist, album, album_cover, duration, spotify_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	for i, t := range tracks {
		if _, err := tx.Exec(ctx, trackInsert,
			id,
			i,
			t.SpotifyID,
			t.Name,
			t.Artist,
			t.Album,
			t.AlbumCover,
			t.Duration,
			t.SpotifyURL,
		); err != nil {
			return "", false, fmt.Errorf("inserting track %d: %w", i, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return "", false, fmt.Errorf("committing transaction: %w", err)
	}
	return id, true, nil
}

// GetBySpotifyID retrieves a playlist and its tracks by provider id.
func (r *PlaylistRepository) GetBySpotifyID(ctx context.Context, spotifyID string) (*Playlist, []PlaylistTrack, error) {
	return r.getWhere(ctx, "spotify_id = $1", spotifyID)
}

// Get retrieves a playlist and its tracks by store id.
func (r *PlaylistRepository) Get(ctx context.Context, id string) (*Playlist, []PlaylistTrack, error) {
	return r.getWhere(ctx, "id = $1", id)
}

func (r *PlaylistRepository) getWhere(ctx context.Context, cond, arg string) (*Playlist, []PlaylistTrack, error) {
	query := `
		SELECT id, user_id, name, description, spotify_id, spotify_url, cover_image, mood_data, created_at
		FROM playlists
		WHERE ` + cond

	var p Playlist
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Description,
		&p.SpotifyID,
		&p.SpotifyURL,
		&p.CoverImage,
		&p.MoodData,
		&p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("querying playlist: %w", err)
	}

	tracks, err := r.tracksFor(ctx, p.ID)
	if err != nil {
		return nil, nil, err
	}
	return &p, tracks, nil
}

func (r *PlaylistRepository) tracksFor(ctx context.Context, playlistID string) ([]PlaylistTrack, error) {
	query := `
		SELECT playlist_id, position, spotify_id, name, artist, album, album_cover, duration, spotify_url
		FROM playlist_tracks
		WHERE playlist_id = $1
		ORDER BY position
	`
	rows, err := r.pool.Query(ctx, query, playlistID)
	if err != nil {
		return nil, fmt.Errorf("querying playlist tracks: %w", err)
	}
	defer rows.Close()

	var tracks []PlaylistTrack
	for rows.Next() {
		var t PlaylistTrack
		if err := rows.Scan(
			&t.PlaylistID,
			&t.Position,
			&t.SpotifyID,
			&t.Name,
			&t.Artist,
			&t.Album,
			&t.AlbumCover,
			&t.Duration,
			&t.SpotifyURL,
		); err != nil {
			return nil, fmt.Errorf("scanning track: %w", err)
		}
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}

// ListByUser retrieves a user's playlists, newest first. Tracks are not
// loaded; listings only need the summary fields.
func (r *PlaylistRepository) ListByUser(ctx context.Context, userID string) ([]Playlist, error) {
	query := `
		SELECT id, user_id, name, description, spotify_id, spotify_url, cover_image, mood_data, created_at
		FROM playlists
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying user playlists: %w", err)
	}
	defer rows.Close()

	var playlists []Playlist
	for rows.Next() {
		var p Playlist
		if err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.Name,
			&p.Description,
			&p.SpotifyID,
			&p.SpotifyURL,
			&p.CoverImage,
			&p.MoodData,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning playlist: %w", err)
		}
		playlists = append(playlists, p)
	}
	return playlists, rows.Err()
}
