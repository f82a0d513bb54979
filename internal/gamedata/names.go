package gamedata

import (
	"fmt"
	"math/rand"
)

// NamePools maps a pool key (e.g., "celtic_male") to candidate names.
type NamePools map[string][]string

// NamesFile represents the structure of names.json.
type NamesFile struct {
	Pools NamePools `json:"pools"`
}

// LoadNames loads the creature name pools from the embedded names.json file.
func LoadNames() (NamePools, error) {
	file, err := Load[NamesFile]("names.json")
	if err != nil {
		return nil, err
	}
	for key, names := range file.Pools {
		if len(names) == 0 {
			return nil, fmt.Errorf("name pool %q is empty", key)
		}
	}
	return file.Pools, nil
}

// MustLoadNames loads name pools, panicking on error.
func MustLoadNames() NamePools {
	pools, err := LoadNames()
	if err != nil {
		panic(err)
	}
	return pools
}

// Generate picks a name from the pool. Unknown pools yield "Nameless".
func (p NamePools) Generate(rng *rand.Rand, pool string) string {
	names := p[pool]
	if len(names) == 0 {
		return "Nameless"
	}
	return names[rng.Intn(len(names))]
}
