// Package main is the entry point for lampdelve.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/samdwyer/lampdelve/internal/audio"
	"github.com/samdwyer/lampdelve/internal/config"
	"github.com/samdwyer/lampdelve/internal/game"
	"github.com/samdwyer/lampdelve/internal/gamedata"
	"github.com/samdwyer/lampdelve/internal/persistence"
	"github.com/samdwyer/lampdelve/internal/persistence/postgres"
	"github.com/samdwyer/lampdelve/internal/persistence/sqlite"
	"github.com/samdwyer/lampdelve/internal/telemetry"
	"github.com/samdwyer/lampdelve/internal/ui"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("lampdelve: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger, closeLog, err := openLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	shutdown, err := telemetry.Setup(ctx, cfg.TelemetrySetup())
	if err != nil {
		// The game still works without observability.
		logger.Warn("telemetry setup failed", "error", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	data, err := gamedata.LoadAll()
	if err != nil {
		return fmt.Errorf("load game data: %w", err)
	}

	store, err := openStore(ctx, cfg.Store)
	if err != nil && postgres.IsUnavailable(err) {
		logger.Warn("postgres unreachable, saving to files instead", "error", err)
		store, err = openStore(ctx, config.StoreConfig{Driver: config.DriverFile, Path: "data"})
	}
	if err != nil {
		return err
	}
	defer store.Close()

	var sounder game.Sounder
	if cfg.Audio.Enabled {
		player := audio.NewPlayer(cfg.Audio.Volume, logger)
		if err := player.Init(); err != nil {
			logger.Warn("audio unavailable", "error", err)
		} else {
			defer player.Close()
		}
		sounder = player
	}

	opts := game.Options{
		Config:  cfg.Game(),
		Data:    data,
		Logger:  logger,
		Sounder: sounder,
	}
	session, err := startSession(ctx, store, cfg, opts, logger)
	if err != nil {
		return err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	defer screen.Close()

	return ui.NewClient(screen, session, store, cfg.SaveSlot, logger).Run(ctx)
}

// startSession resumes the configured save slot unless a new game was
// asked for or the slot is empty.
func startSession(ctx context.Context, store persistence.Store, cfg config.Config, opts game.Options, logger *slog.Logger) (*game.Session, error) {
	if !cfg.NewGame {
		state, err := store.LoadGame(ctx, cfg.SaveSlot)
		switch {
		case err == nil:
			return game.Restore(ctx, state, opts)
		case errors.Is(err, persistence.ErrNotFound):
		default:
			logger.Warn("could not load save, starting fresh", "slot", cfg.SaveSlot, "error", err)
		}
	}
	return game.NewSession(ctx, opts)
}

func openStore(ctx context.Context, cfg config.StoreConfig) (persistence.Store, error) {
	var (
		store persistence.Store
		err   error
	)
	switch cfg.Driver {
	case config.DriverSQLite:
		store, err = sqlite.Open(ctx, cfg.Path)
	case config.DriverPostgres:
		store, err = postgres.Open(ctx, cfg.DSN)
	default:
		store, err = persistence.OpenFileStore(cfg.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Driver, err)
	}
	return persistence.Traced(store, cfg.Driver), nil
}

// openLogger writes JSON logs to the configured file.
func openLogger(cfg config.LogConfig) (*slog.Logger, func(), error) {
	if dir := filepath.Dir(cfg.File); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: cfg.Level}))
	return logger, func() { _ = f.Close() }, nil
}
