// Command mood-playlist runs the mood playlist API server.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/jmwatt/go-mood-playlist/internal/config"
	"github.com/jmwatt/go-mood-playlist/internal/db"
	"github.com/jmwatt/go-mood-playlist/internal/web"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mood-playlist",
	})

	configFlag := &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}

	app := &cli.Command{
		Name:    "mood-playlist",
		Usage:   "Turn mood descriptions into Spotify playlists",
		Version: "0.1.0",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the API server",
				Flags:  []cli.Flag{configFlag},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return serve(ctx, cmd.String("config"), logger)
				},
			},
			{
				Name:   "migrate",
				Usage:  "Apply the database schema",
				Flags:  []cli.Flag{configFlag},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return migrate(ctx, cmd.String("config"), logger)
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}

// serve starts the HTTP server, running until interrupted.
func serve(ctx context.Context, configPath string, logger *log.Logger) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	database, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if database != nil {
		defer database.Close()
	}

	server := web.NewServer(cfg, database, logger)
	return server.Run()
}

// migrate applies the schema to the configured database.
func migrate(ctx context.Context, configPath string, logger *log.Logger) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Database.URL == "" {
		return config.ErrMissingDatabaseURL
	}

	database, err := db.New(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		return err
	}
	logger.Info("database schema up to date")
	return nil
}

// openDatabase connects to PostgreSQL when configured. Without a database
// URL the server runs with in-memory sessions and guest storage only.
func openDatabase(ctx context.Context, cfg *config.Config, logger *log.Logger) (*db.DB, error) {
	if cfg.Database.URL == "" {
		logger.Warn("no database configured, sessions and playlists are in-memory only")
		return nil, nil
	}

	database, err := db.New(ctx, cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}
