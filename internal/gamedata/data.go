package gamedata

import "fmt"

// Data bundles every embedded table the level generator needs.
type Data struct {
	Monsters *Table[MonsterDef]
	Items    *Catalog
	Names    NamePools
}

// LoadAll loads monsters, items and names from the embedded files.
func LoadAll() (*Data, error) {
	monsters, err := LoadMonsterTable()
	if err != nil {
		return nil, fmt.Errorf("load monsters: %w", err)
	}
	items, err := LoadItemCatalog()
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	names, err := LoadNames()
	if err != nil {
		return nil, fmt.Errorf("load names: %w", err)
	}
	return &Data{Monsters: monsters, Items: items, Names: names}, nil
}

// MustLoadAll loads every table, panicking on error.
func MustLoadAll() *Data {
	d, err := LoadAll()
	if err != nil {
		panic(err)
	}
	return d
}
