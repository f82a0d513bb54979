// Package config loads lampdelve settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/samdwyer/lampdelve/internal/fov"
	"github.com/samdwyer/lampdelve/internal/game"
	"github.com/samdwyer/lampdelve/internal/telemetry"
	"github.com/samdwyer/lampdelve/internal/world"
)

// Store drivers.
const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config is every setting the game reads at startup.
type Config struct {
	Seed     int64  `env:"LAMPDELVE_SEED"`
	NewGame  bool   `env:"LAMPDELVE_NEW_GAME"`
	SaveSlot string `env:"LAMPDELVE_SAVE_SLOT" envDefault:"main"`

	Log       LogConfig       `envPrefix:"LAMPDELVE_LOG_"`
	Map       MapConfig       `envPrefix:"LAMPDELVE_MAP_"`
	FOV       FOVConfig       `envPrefix:"LAMPDELVE_FOV_"`
	Player    PlayerConfig    `envPrefix:"LAMPDELVE_PLAYER_"`
	Store     StoreConfig     `envPrefix:"LAMPDELVE_STORE_"`
	Audio     AudioConfig     `envPrefix:"LAMPDELVE_AUDIO_"`
	Telemetry TelemetryConfig `envPrefix:"HONEYCOMB_LAMPDELVE_"`
}

// LogConfig sends structured logs to a file; the terminal belongs to the
// screen.
type LogConfig struct {
	File  string     `env:"FILE" envDefault:"lampdelve.log"`
	Level slog.Level `env:"LEVEL" envDefault:"info"`
}

// MapConfig controls level generation.
type MapConfig struct {
	Width         int `env:"WIDTH" envDefault:"50"`
	Height        int `env:"HEIGHT" envDefault:"30"`
	MaxRooms      int `env:"MAX_ROOMS" envDefault:"10"`
	RoomMinWidth  int `env:"ROOM_MIN_WIDTH" envDefault:"3"`
	RoomMaxWidth  int `env:"ROOM_MAX_WIDTH" envDefault:"5"`
	RoomMinHeight int `env:"ROOM_MIN_HEIGHT" envDefault:"3"`
	RoomMaxHeight int `env:"ROOM_MAX_HEIGHT" envDefault:"7"`
	Levels        int `env:"LEVELS" envDefault:"3"`
}

// FOVConfig controls the player's torch.
type FOVConfig struct {
	Radius     int           `env:"RADIUS" envDefault:"10"`
	LightWalls bool          `env:"LIGHT_WALLS" envDefault:"true"`
	Algorithm  fov.Algorithm `env:"ALGORITHM" envDefault:"basic"`
}

// PlayerConfig holds the starting character.
type PlayerConfig struct {
	Name    string  `env:"NAME" envDefault:"Paul"`
	Attack  int     `env:"ATTACK" envDefault:"5"`
	Defense int     `env:"DEFENSE" envDefault:"0"`
	HP      int     `env:"HP" envDefault:"50"`
	Volume  float64 `env:"VOLUME" envDefault:"10"`
}

// StoreConfig selects where saves live. Path is a directory for the file
// driver and a database file for sqlite; DSN is used by postgres.
type StoreConfig struct {
	Driver string `env:"DRIVER" envDefault:"file"`
	Path   string `env:"PATH" envDefault:"data"`
	DSN    string `env:"DSN"`
}

// AudioConfig controls sound cues.
type AudioConfig struct {
	Enabled bool    `env:"ENABLED" envDefault:"true"`
	Volume  float64 `env:"VOLUME" envDefault:"0.5"`
}

// TelemetryConfig holds the Honeycomb export settings.
type TelemetryConfig struct {
	APIKey   string `env:"API_KEY"`
	Dataset  string `env:"DATASET" envDefault:"lampdelve"`
	Endpoint string `env:"ENDPOINT" envDefault:"https://api.honeycomb.io"`
}

// Load reads a .env file if one exists, then parses the environment.
func Load() (Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the environment without touching .env files.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	m := c.Map
	if m.Width < 3 || m.Height < 3 {
		errs = append(errs, fmt.Errorf("map must be at least 3x3, got %dx%d", m.Width, m.Height))
	}
	if m.MaxRooms < 0 {
		errs = append(errs, fmt.Errorf("max rooms must not be negative, got %d", m.MaxRooms))
	}
	if m.RoomMinWidth < 1 || m.RoomMaxWidth < m.RoomMinWidth {
		errs = append(errs, fmt.Errorf("room width range %d..%d is invalid", m.RoomMinWidth, m.RoomMaxWidth))
	}
	if m.RoomMinHeight < 1 || m.RoomMaxHeight < m.RoomMinHeight {
		errs = append(errs, fmt.Errorf("room height range %d..%d is invalid", m.RoomMinHeight, m.RoomMaxHeight))
	}
	if m.Levels < 1 {
		errs = append(errs, fmt.Errorf("levels must be at least 1, got %d", m.Levels))
	}
	if c.Player.HP < 1 {
		errs = append(errs, fmt.Errorf("player hp must be positive, got %d", c.Player.HP))
	}
	if c.Player.Volume < 0 {
		errs = append(errs, fmt.Errorf("player volume must not be negative, got %g", c.Player.Volume))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio volume must be within 0..1, got %g", c.Audio.Volume))
	}
	switch c.Store.Driver {
	case DriverFile, DriverSQLite:
		if c.Store.Path == "" {
			errs = append(errs, fmt.Errorf("store path is required for the %s driver", c.Store.Driver))
		}
	case DriverPostgres:
		if c.Store.DSN == "" {
			errs = append(errs, errors.New("store dsn is required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown store driver %q", c.Store.Driver))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Game maps the settings onto the simulation's configuration.
func (c Config) Game() game.Config {
	g := game.DefaultConfig()
	g.Seed = c.Seed
	g.Levels = c.Map.Levels
	g.Map = world.GenConfig{
		Width:         c.Map.Width,
		Height:        c.Map.Height,
		MaxRooms:      c.Map.MaxRooms,
		RoomMinWidth:  c.Map.RoomMinWidth,
		RoomMaxWidth:  c.Map.RoomMaxWidth,
		RoomMinHeight: c.Map.RoomMinHeight,
		RoomMaxHeight: c.Map.RoomMaxHeight,
	}
	g.FOV = game.FOVConfig{
		Radius:     c.FOV.Radius,
		LightWalls: c.FOV.LightWalls,
		Algorithm:  c.FOV.Algorithm,
	}
	g.Player.Name = c.Player.Name
	g.Player.Attack = c.Player.Attack
	g.Player.Defense = c.Player.Defense
	g.Player.HP = c.Player.HP
	g.Player.Volume = c.Player.Volume
	return g
}

// TelemetrySetup returns the exporter settings.
func (c Config) TelemetrySetup() telemetry.Config {
	return telemetry.Config{
		APIKey:   c.Telemetry.APIKey,
		Dataset:  c.Telemetry.Dataset,
		Endpoint: c.Telemetry.Endpoint,
	}
}
