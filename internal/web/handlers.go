package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	zspotify "github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"

	"github.com/jmwatt/go-mood-playlist/internal/apperr"
	"github.com/jmwatt/go-mood-playlist/internal/db"
	"github.com/jmwatt/go-mood-playlist/internal/genre"
	"github.com/jmwatt/go-mood-playlist/internal/mood"
	"github.com/jmwatt/go-mood-playlist/internal/moodmap"
	"github.com/jmwatt/go-mood-playlist/internal/playlist"
	spclient "github.com/jmwatt/go-mood-playlist/internal/spotify"
)

// musicClient is the provider surface the handlers need for an
// authenticated user.
type musicClient interface {
	playlist.Provider
	GetPlaylist(ctx context.Context, playlistID string) (playlist.Playlist, error)
	GenreSeeds(ctx context.Context) ([]string, error)
	CurrentProfile(ctx context.Context) (spclient.Profile, error)
}

// playlistStore is the persistence surface the handlers need. Backed by
// db.PlaylistRepository in production.
type playlistStore interface {
	CreateWithTracks(ctx context.Context, p *db.Playlist, tracks []db.PlaylistTrack) (string, bool, error)
	Get(ctx context.Context, id string) (*db.Playlist, []db.PlaylistTrack, error)
	GetBySpotifyID(ctx context.Context, spotifyID string) (*db.Playlist, []db.PlaylistTrack, error)
	ListByUser(ctx context.Context, userID string) ([]db.Playlist, error)
}

// Handlers contains the HTTP handlers for the JSON API.
type Handlers struct {
	auth       *spotifyauth.Authenticator
	sessions   SessionManager
	classifier *mood.Classifier
	builder    *playlist.Builder
	guests     playlist.GuestStore
	database   *db.DB        // nil when persistence is not configured
	playlists  playlistStore // nil when persistence is not configured
	logger     *log.Logger

	// clientFor builds a provider client from a session token. Swapped out
	// in tests.
	clientFor func(ctx context.Context, token *oauth2.Token) musicClient
}

// NewHandlers creates a Handlers instance. database may be nil.
func NewHandlers(
	auth *spotifyauth.Authenticator,
	sessions SessionManager,
	classifier *mood.Classifier,
	builder *playlist.Builder,
	guests playlist.GuestStore,
	database *db.DB,
	logger *log.Logger,
) *Handlers {
	h := &Handlers{
		auth:       auth,
		sessions:   sessions,
		classifier: classifier,
		builder:    builder,
		guests:     guests,
		database:   database,
		logger:     logger,
	}
	if database != nil {
		h.playlists = database.Playlists()
	}
	h.clientFor = func(ctx context.Context, token *oauth2.Token) musicClient {
		return spclient.New(zspotify.New(auth.Client(ctx, token)))
	}
	return h
}

// analyzeRequest is the body of both mood analysis endpoints.
type analyzeRequest struct {
	Text string `json:"text"`
}

// AnalyzeMood classifies free text into a mood descriptor (POST
// /analyze-mood).
func (h *Handlers) AnalyzeMood(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	analysis, err := h.classifier.Analyze(r.Context(), req.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

// AnalyzeMoodFallback classifies free text with the keyword matcher only
// (POST /analyze-mood-fallback).
func (h *Handlers) AnalyzeMoodFallback(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	analysis, err := h.classifier.AnalyzeFallback(r.Context(), req.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

// createPlaylistRequest is the body of POST /playlist.
type createPlaylistRequest struct {
	MoodAnalysis mood.Analysis `json:"moodAnalysis"`
}

// CreatePlaylist builds a playlist from a mood descriptor (POST /playlist).
// Authenticated users get a real Spotify playlist that is persisted;
// guests get a locally built one kept in the guest store.
func (h *Handlers) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	var req createPlaylistRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.MoodAnalysis.Mood == "" {
		writeError(w, apperr.Input("mood analysis is required"))
		return
	}

	session := sessionFromRequest(h.sessions, r)
	if session == nil {
		gid := guestID(w, r)
		p := h.builder.Create(r.Context(), req.MoodAnalysis, nil)
		h.guests.Append(gid, p)
		writeJSON(w, http.StatusOK, p)
		return
	}

	client := h.clientFor(r.Context(), session.Token)
	p := h.builder.Create(r.Context(), req.MoodAnalysis, client)

	if h.playlists != nil {
		if _, err := h.persist(r.Context(), p, session.UserID); err != nil {
			h.logger.Warn("persisting playlist failed", "playlist_id", p.ID, "err", err)
		}
	}
	writeJSON(w, http.StatusOK, p)
}

// GetPlaylist resolves a playlist by id (GET /playlist/{id}). Resolution
// order: the caller's guest store, the database by provider id, the
// database by store id, a live Spotify fetch (persisted opportunistically),
// and finally the static mock playlist so the endpoint never 404s on a
// plausible id.
func (h *Handlers) GetPlaylist(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ctx := r.Context()

	if cookie, err := r.Cookie(guestCookieName); err == nil {
		if p, ok := h.guests.Find(cookie.Value, id); ok {
			writeJSON(w, http.StatusOK, p)
			return
		}
	}

	if h.playlists != nil {
		if stored, tracks, err := h.playlists.GetBySpotifyID(ctx, id); err == nil {
			writeJSON(w, http.StatusOK, fromStored(stored, tracks))
			return
		} else if !errors.Is(err, db.ErrNotFound) {
			writeError(w, err)
			return
		}

		if stored, tracks, err := h.playlists.Get(ctx, id); err == nil {
			writeJSON(w, http.StatusOK, fromStored(stored, tracks))
			return
		} else if !errors.Is(err, db.ErrNotFound) {
			writeError(w, err)
			return
		}
	}

	if session := sessionFromRequest(h.sessions, r); session != nil {
		client := h.clientFor(ctx, session.Token)
		if p, err := client.GetPlaylist(ctx, id); err == nil {
			if h.playlists != nil {
				if _, err := h.persist(ctx, p, session.UserID); err != nil {
					h.logger.Warn("caching fetched playlist failed", "playlist_id", id, "err", err)
				}
			}
			writeJSON(w, http.StatusOK, p)
			return
		}
		h.logger.Debug("live playlist fetch failed, serving mock", "playlist_id", id)
	}

	writeJSON(w, http.StatusOK, playlist.MockPlaylist(id))
}

// saveResponse is the body of POST /playlist/{id}/save.
type saveResponse struct {
	Success    bool   `json:"success"`
	PlaylistID string `json:"playlistId"`
}

// SavePlaylist persists a playlist for the authenticated user (POST
// /playlist/{id}/save). Saving an already-stored playlist succeeds with the
// existing record's id.
func (h *Handlers) SavePlaylist(w http.ResponseWriter, r *http.Request) {
	session := sessionFromRequest(h.sessions, r)
	if session == nil {
		writeError(w, apperr.Auth("authentication required"))
		return
	}
	if h.playlists == nil {
		writeError(w, apperr.Config("persistence is not configured"))
		return
	}

	id := chi.URLParam(r, "id")
	ctx := r.Context()

	p, ok := h.resolveForSave(ctx, r, id, session)
	if !ok {
		writeError(w, apperr.NotFound(fmt.Sprintf("playlist %s not found", id)))
		return
	}

	storedID, err := h.persist(ctx, p, session.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saveResponse{Success: true, PlaylistID: storedID})
}

// resolveForSave locates the playlist being saved: the caller's guest store
// first, then a live provider fetch.
func (h *Handlers) resolveForSave(ctx context.Context, r *http.Request, id string, session *Session) (playlist.Playlist, bool) {
	if cookie, err := r.Cookie(guestCookieName); err == nil {
		if p, ok := h.guests.Find(cookie.Value, id); ok {
			return p, true
		}
	}

	client := h.clientFor(ctx, session.Token)
	p, err := client.GetPlaylist(ctx, id)
	if err != nil {
		h.logger.Warn("fetching playlist for save failed", "playlist_id", id, "err", err)
		return playlist.Playlist{}, false
	}
	return p, true
}

// persist writes a playlist to the database, returning the store id. The
// unique provider-id constraint makes concurrent saves converge on one
// record.
func (h *Handlers) persist(ctx context.Context, p playlist.Playlist, userID string) (string, error) {
	stored, tracks := toStored(p, userID)
	id, created, err := h.playlists.CreateWithTracks(ctx, stored, tracks)
	if err != nil {
		return "", fmt.Errorf("saving playlist: %w", err)
	}
	if !created {
		h.logger.Debug("playlist already saved", "playlist_id", id)
	}
	return id, nil
}

// UserPlaylists lists the caller's playlists, newest first (GET
// /user/playlists). Authenticated users read from the database; guests from
// the guest store.
func (h *Handlers) UserPlaylists(w http.ResponseWriter, r *http.Request) {
	session := sessionFromRequest(h.sessions, r)

	if session != nil && h.playlists != nil {
		stored, err := h.playlists.ListByUser(r.Context(), session.UserID)
		if err != nil {
			writeError(w, err)
			return
		}
		summaries := make([]playlist.Summary, len(stored))
		for i, p := range stored {
			summaries[i] = storedSummary(p)
		}
		writeJSON(w, http.StatusOK, summaries)
		return
	}

	gid := guestID(w, r)
	playlists := h.guests.List(gid)
	summaries := make([]playlist.Summary, len(playlists))
	for i, p := range playlists {
		summaries[i] = p.Summarize()
	}
	writeJSON(w, http.StatusOK, summaries)
}

// genresResponse mirrors the Spotify available-genre-seeds shape.
type genresResponse struct {
	Genres []string `json:"genres"`
}

// Genres passes through the provider's recommendation seed genres (GET
// /spotify/genres). When the provider call fails the known seed whitelist
// is served instead.
func (h *Handlers) Genres(w http.ResponseWriter, r *http.Request) {
	session := sessionFromRequest(h.sessions, r)
	if session == nil {
		writeError(w, apperr.Auth("authentication required"))
		return
	}

	client := h.clientFor(r.Context(), session.Token)
	seeds, err := client.GenreSeeds(r.Context())
	if err != nil {
		h.logger.Warn("fetching genre seeds failed, serving known seeds", "err", err)
		seeds = genre.Seeds()
	}
	writeJSON(w, http.StatusOK, genresResponse{Genres: seeds})
}

// moodMapResponse is the body of GET /user/mood-map.
type moodMapResponse struct {
	Clusters      []moodmap.Cluster `json:"clusters"`
	PlaylistCount int               `json:"playlistCount"`
}

// MoodMap clusters the authenticated user's saved playlists by mood (GET
// /user/mood-map).
func (h *Handlers) MoodMap(w http.ResponseWriter, r *http.Request) {
	session := sessionFromRequest(h.sessions, r)
	if session == nil {
		writeError(w, apperr.Auth("authentication required"))
		return
	}
	if h.playlists == nil {
		writeError(w, apperr.Config("persistence is not configured"))
		return
	}

	stored, err := h.playlists.ListByUser(r.Context(), session.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	var points []moodmap.Point
	for _, p := range stored {
		m, ok := moodPoint(p)
		if !ok {
			continue
		}
		points = append(points, moodmap.Point{
			ID:           p.ID,
			Name:         p.Name,
			Energy:       m.Energy,
			Valence:      m.Valence,
			Danceability: m.Danceability,
			Acousticness: m.Acousticness,
		})
	}

	clusters, err := moodmap.Build(points, moodmap.DefaultClusters)
	if err != nil {
		writeError(w, fmt.Errorf("building mood map: %w", err))
		return
	}
	if clusters == nil {
		clusters = []moodmap.Cluster{}
	}
	writeJSON(w, http.StatusOK, moodMapResponse{
		Clusters:      clusters,
		PlaylistCount: len(points),
	})
}

// Health reports liveness (GET /health).
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Login initiates the Spotify OAuth flow (GET /auth/login).
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	state, err := randomID(16)
	if err != nil {
		writeError(w, fmt.Errorf("generating state: %w", err))
		return
	}

	// State round-trips through a short-lived cookie for CSRF protection.
	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   300,
	})

	http.Redirect(w, r, h.auth.AuthURL(state), http.StatusTemporaryRedirect)
}

// Callback completes the OAuth flow (GET /callback): validates state,
// exchanges the code, records the user, and opens a session.
func (h *Handlers) Callback(w http.ResponseWriter, r *http.Request) {
	stateCookie, err := r.Cookie("oauth_state")
	if err != nil {
		writeError(w, apperr.Input("missing state cookie"))
		return
	}

	state := r.URL.Query().Get("state")
	if state != stateCookie.Value {
		writeError(w, apperr.Input("state mismatch"))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	if errMsg := r.URL.Query().Get("error"); errMsg != "" {
		writeError(w, apperr.Auth(fmt.Sprintf("authorization failed: %s", errMsg)))
		return
	}

	token, err := h.auth.Token(r.Context(), state, r)
	if err != nil {
		writeError(w, apperr.Auth("token exchange failed"))
		return
	}

	client := h.clientFor(r.Context(), token)
	profile, err := client.CurrentProfile(r.Context())
	if err != nil {
		writeError(w, apperr.Upstream("getting user profile", err))
		return
	}

	if h.database != nil {
		user := &db.User{
			ID:          profile.ID,
			DisplayName: profile.DisplayName,
			Email:       profile.Email,
		}
		if err := h.database.Users().Upsert(r.Context(), user); err != nil {
			writeError(w, fmt.Errorf("recording user: %w", err))
			return
		}
	}

	session, err := h.sessions.Create(r.Context(), token, profile.ID, profile.DisplayName)
	if err != nil {
		writeError(w, fmt.Errorf("creating session: %w", err))
		return
	}

	setSessionCookie(w, session)
	http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
}

// Logout ends the session (POST /auth/logout).
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if session := sessionFromRequest(h.sessions, r); session != nil {
		h.sessions.Delete(r.Context(), session.ID)
	}
	clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
