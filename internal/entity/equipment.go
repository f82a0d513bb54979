package entity

// Equipment gives an item stat bonuses while equipped in its slot.
type Equipment struct {
	Owner        Handle `json:"owner"`
	AttackBonus  int    `json:"attack_bonus"`
	DefenseBonus int    `json:"defense_bonus"`
	Slot         string `json:"slot"` // e.g. "right_hand"; empty means no slot
	Equipped     bool   `json:"equipped"`
}

// Conflicts reports whether another equipped item already uses this
// equipment's slot.
func (e *Equipment) Conflicts(equipped []*Actor) bool {
	if e.Slot == "" {
		return false
	}
	for _, a := range equipped {
		if a.Equipment == nil || a.Equipment == e || !a.Equipment.Equipped {
			continue
		}
		if a.Equipment.Slot == e.Slot {
			return true
		}
	}
	return false
}
