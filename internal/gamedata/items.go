package gamedata

import (
	"errors"
	"math/rand"

	"github.com/samdwyer/lampdelve/internal/entity"
)

// ItemDef defines an item type loaded from JSON.
//
// Use-effect parameters are rolled per spawned item:
//
//	heal:      amount
//	lightning: damage, range
//	fireball:  damage, radius, range
//	confuse:   turns
//
// An item with an equipment block is worn rather than used up.
type ItemDef struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Glyph       string           `json:"glyph"`
	Color       string           `json:"color"`
	Weight      float64          `json:"weight"`
	Volume      float64          `json:"volume"`
	Effect      entity.UseEffect `json:"effect"`
	Damage      Range            `json:"damage,omitempty"`
	Amount      Range            `json:"amount,omitempty"`
	Range       Range            `json:"range,omitempty"`
	Radius      Range            `json:"radius,omitempty"`
	Turns       Range            `json:"turns,omitempty"`
	Equipment   *EquipmentDef    `json:"equipment,omitempty"`
	SpawnWeight int              `json:"spawnWeight"`
}

// EquipmentDef defines the bonuses of a wearable item.
type EquipmentDef struct {
	Slot    string `json:"slot"`
	Attack  Range  `json:"attack,omitempty"`
	Defense Range  `json:"defense,omitempty"`
}

// DefID implements Def.
func (d ItemDef) DefID() string { return d.ID }

// SpawnOdds implements Def.
func (d ItemDef) SpawnOdds() int { return d.SpawnWeight }

// Payload rolls the use-effect parameters for one item.
func (d *ItemDef) Payload(rng *rand.Rand) entity.Payload {
	p := entity.Payload{
		Range:  d.Range.Roll(rng),
		Radius: d.Radius.Roll(rng),
		Turns:  d.Turns.Roll(rng),
	}
	switch d.Effect {
	case entity.UseHeal:
		p.Amount = d.Amount.Roll(rng)
	default:
		p.Amount = d.Damage.Roll(rng)
	}
	return p
}

// NewActor rolls an item's parameters and builds its actor at (x, y).
func (d *ItemDef) NewActor(rng *rand.Rand, x, y int) *entity.Actor {
	a := &entity.Actor{
		Name:  d.Name,
		X:     x,
		Y:     y,
		Depth: entity.DepthItem,
		Glyph: d.Glyph,
		Color: d.Color,
		Item: &entity.Item{
			Weight: d.Weight,
			Volume: d.Volume,
			Effect: d.Effect,
		},
	}
	if d.Effect != entity.UseNone {
		a.Item.Payload = d.Payload(rng)
	}
	if d.Equipment != nil {
		a.AttachEquipment(&entity.Equipment{
			AttackBonus:  d.Equipment.Attack.Roll(rng),
			DefenseBonus: d.Equipment.Defense.Roll(rng),
			Slot:         d.Equipment.Slot,
		})
	}
	return a
}

// ItemsFile represents the structure of items.json. Key is the goal item
// placed on the deepest level; it never appears in the random table.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
	Key   ItemDef   `json:"key"`
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() (ItemsFile, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return ItemsFile{}, err
	}
	if len(file.Items) == 0 {
		return ItemsFile{}, errors.New("no items loaded from items.json")
	}
	if file.Key.ID == "" {
		return ItemsFile{}, errors.New("no key item defined in items.json")
	}
	return file, nil
}

// Catalog is the spawn table plus the key item.
type Catalog struct {
	Table *Table[ItemDef]
	Key   ItemDef
}

// NewKeyActor builds the goal item at (x, y).
func (c *Catalog) NewKeyActor(rng *rand.Rand, x, y int) *entity.Actor {
	a := c.Key.NewActor(rng, x, y)
	a.Item.Key = true
	return a
}

// LoadItemCatalog loads the weighted item table and the key item.
func LoadItemCatalog() (*Catalog, error) {
	file, err := LoadItems()
	if err != nil {
		return nil, err
	}
	return &Catalog{Table: NewTable(file.Items), Key: file.Key}, nil
}

// MustLoadItemCatalog loads the item catalog, panicking on error.
func MustLoadItemCatalog() *Catalog {
	catalog, err := LoadItemCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}
