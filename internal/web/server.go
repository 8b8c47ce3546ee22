package web

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	spotifyauth "github.com/zmb3/spotify/v2/auth"

	"github.com/jmwatt/go-mood-playlist/internal/config"
	"github.com/jmwatt/go-mood-playlist/internal/db"
	"github.com/jmwatt/go-mood-playlist/internal/mood"
	"github.com/jmwatt/go-mood-playlist/internal/playlist"
)

// Server is the HTTP server for the mood playlist API.
type Server struct {
	router   chi.Router
	server   *http.Server
	handlers *Handlers
	database *db.DB // nil when persistence is not configured
	logger   *log.Logger
}

// NewServer wires the application together from configuration. database may
// be nil; sessions and playlists then live in memory only.
func NewServer(cfg *config.Config, database *db.DB, logger *log.Logger) *Server {
	auth := spotifyauth.New(
		spotifyauth.WithClientID(cfg.Credentials.Spotify.ClientID),
		spotifyauth.WithClientSecret(cfg.Credentials.Spotify.ClientSecret),
		spotifyauth.WithRedirectURL(cfg.Server.RedirectURI),
		spotifyauth.WithScopes(
			spotifyauth.ScopeUserReadPrivate,
			spotifyauth.ScopeUserReadEmail,
			spotifyauth.ScopePlaylistModifyPublic,
			spotifyauth.ScopePlaylistModifyPrivate,
		),
	)

	var sessions SessionManager
	if database != nil {
		sessions = NewDBSessionStore(database)
	} else {
		sessions = NewMemorySessionStore()
	}

	var remote mood.Strategy
	if key := cfg.Credentials.OpenAI.APIKey; key != "" {
		remote = mood.NewOpenAIStrategy(key)
	}
	classifier := mood.NewClassifier(remote, logger)

	handlers := NewHandlers(
		auth,
		sessions,
		classifier,
		playlist.NewBuilder(logger),
		playlist.NewMemoryGuestStore(),
		database,
		logger,
	)

	router := chi.NewRouter()
	s := &Server{
		router:   router,
		handlers: handlers,
		database: database,
		logger:   logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

func (s *Server) setupRoutes() {
	h := s.handlers

	s.router.Get("/health", h.Health)

	s.router.Post("/analyze-mood", h.AnalyzeMood)
	s.router.Post("/analyze-mood-fallback", h.AnalyzeMoodFallback)

	s.router.Post("/playlist", h.CreatePlaylist)
	s.router.Get("/playlist/{id}", h.GetPlaylist)
	s.router.Post("/playlist/{id}/save", h.SavePlaylist)

	s.router.Get("/user/playlists", h.UserPlaylists)
	s.router.Get("/user/mood-map", h.MoodMap)
	s.router.Get("/spotify/genres", h.Genres)

	s.router.Get("/auth/login", h.Login)
	s.router.Get("/callback", h.Callback)
	s.router.Post("/auth/logout", h.Logout)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.logger.Info("starting server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// sessionSweepInterval is how often persisted expired sessions are removed.
const sessionSweepInterval = time.Hour

// sessionSweeper deletes expired sessions from a backing store.
type sessionSweeper interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// sweepSessions removes expired sessions on every tick until ctx is done.
func sweepSessions(ctx context.Context, sweeper sessionSweeper, interval time.Duration, logger *log.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := sweeper.DeleteExpired(ctx)
			if err != nil {
				logger.Warn("session sweep failed", "err", err)
				continue
			}
			if n > 0 {
				logger.Debug("removed expired sessions", "count", n)
			}
		}
	}
}

// Run starts the server and shuts it down gracefully on interrupt.
func (s *Server) Run() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	if s.database != nil {
		sweepCtx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go sweepSessions(sweepCtx, s.database.Sessions(), sessionSweepInterval, s.logger)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-stop:
		s.logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		return err
	}

	s.logger.Info("server stopped")
	return nil
}
