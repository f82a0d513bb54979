package game

import (
	"github.com/samdwyer/lampdelve/internal/fov"
	"github.com/samdwyer/lampdelve/internal/world"
)

// DefaultLevels is how many levels deep the lamp lies.
const DefaultLevels = 3

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Levels is the depth of the level holding the key item.
	Levels int

	Map    world.GenConfig
	FOV    FOVConfig
	Player PlayerConfig
}

// FOVConfig controls the player's field of view.
type FOVConfig struct {
	Radius     int // Torch radius; 0 or less is unlimited
	LightWalls bool
	Algorithm  fov.Algorithm
}

// PlayerConfig holds the player's starting stats.
type PlayerConfig struct {
	Name    string
	Object  string // Object name shown after the player's name
	Attack  int
	Defense int
	HP      int
	Volume  float64 // Inventory capacity
}

// DefaultConfig returns the stock game settings.
func DefaultConfig() Config {
	return Config{
		Levels: DefaultLevels,
		Map:    world.DefaultGenConfig(),
		FOV: FOVConfig{
			Radius:     10,
			LightWalls: true,
			Algorithm:  fov.AlgorithmBasic,
		},
		Player: PlayerConfig{
			Name:    "Paul",
			Object:  "python",
			Attack:  5,
			Defense: 0,
			HP:      50,
			Volume:  10,
		},
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Levels <= 0 {
		c.Levels = d.Levels
	}
	if c.Map.Width == 0 && c.Map.Height == 0 {
		c.Map = d.Map
	}
	if c.Player.Name == "" {
		c.Player.Name = d.Player.Name
	}
	if c.Player.Object == "" {
		c.Player.Object = d.Player.Object
	}
	if c.Player.HP <= 0 {
		c.Player.HP = d.Player.HP
	}
	return c
}
