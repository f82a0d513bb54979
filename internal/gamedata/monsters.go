package gamedata

import (
	"errors"
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/lampdelve/internal/entity"
)

// MonsterDef defines a monster type loaded from JSON.
type MonsterDef struct {
	ID          string              `json:"id"`          // Unique identifier (e.g., "cobra")
	Name        string              `json:"name"`        // Object name shown after the creature's own name
	Glyph       string              `json:"glyph"`       // Single character for rendering
	Color       string              `json:"color"`       // Hex color code
	NamePool    string              `json:"namePool"`    // Key into names.json
	Attack      Range               `json:"attack"`      // Base attack roll
	Defense     Range               `json:"defense"`     // Base defense roll
	HP          Range               `json:"hp"`          // Max HP roll
	Behavior    entity.BehaviorKind `json:"behavior"`    // AI routine
	Death       entity.DeathEffect  `json:"death"`       // What remains on death
	Corpse      CorpseDef           `json:"corpse"`      // Corpse appearance
	Heal        Range               `json:"heal"`        // Healing when eaten, edible corpses only
	SpawnWeight int                 `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
}

// CorpseDef describes how a dead monster is drawn.
type CorpseDef struct {
	Glyph string `json:"glyph"`
	Color string `json:"color"`
}

// DefID implements Def.
func (m MonsterDef) DefID() string { return m.ID }

// SpawnOdds implements Def.
func (m MonsterDef) SpawnOdds() int { return m.SpawnWeight }

// GlyphRune returns the glyph as a rune for rendering.
func (m *MonsterDef) GlyphRune() rune {
	if len(m.Glyph) == 0 {
		return '?'
	}
	return rune(m.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (m *MonsterDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(m.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// NewActor rolls a monster's stats and builds its actor at (x, y).
func (m *MonsterDef) NewActor(rng *rand.Rand, name string, x, y int) *entity.Actor {
	a := &entity.Actor{
		Name:     m.Name,
		X:        x,
		Y:        y,
		Depth:    entity.DepthCreature,
		Glyph:    m.Glyph,
		Color:    m.Color,
		Creature: entity.NewCreature(name, m.Attack.Roll(rng), m.Defense.Roll(rng), m.HP.Roll(rng), m.Death),
	}
	a.SetBehavior(entity.NewBehavior(m.Behavior))
	if m.Death == entity.DeathEdibleCorpse {
		a.Item = &entity.Item{
			Effect:  entity.UseHeal,
			Payload: entity.Payload{Amount: m.Heal.Roll(rng)},
			Volume:  1,
		}
	}
	return a
}

// MonstersFile represents the structure of monsters.json.
type MonstersFile struct {
	Monsters []MonsterDef `json:"monsters"`
}

// LoadMonsters loads monster definitions from the embedded monsters.json file.
func LoadMonsters() ([]MonsterDef, error) {
	file, err := Load[MonstersFile]("monsters.json")
	if err != nil {
		return nil, err
	}
	return file.Monsters, nil
}

// LoadMonsterTable loads the weighted monster spawn table.
func LoadMonsterTable() (*Table[MonsterDef], error) {
	monsters, err := LoadMonsters()
	if err != nil {
		return nil, err
	}
	if len(monsters) == 0 {
		return nil, errors.New("no monsters loaded from monsters.json")
	}
	return NewTable(monsters), nil
}

// MustLoadMonsterTable loads the monster table, panicking on error.
func MustLoadMonsterTable() *Table[MonsterDef] {
	table, err := LoadMonsterTable()
	if err != nil {
		panic(err)
	}
	return table
}
