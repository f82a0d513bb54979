package entity

// Container holds items by handle. The combined volume of the held items
// never exceeds MaxVolume.
type Container struct {
	Owner     Handle   `json:"owner"`
	Inventory []Handle `json:"inventory"`
	MaxVolume float64  `json:"max_volume"`
}

// NewContainer creates an empty container.
func NewContainer(maxVolume float64) *Container {
	return &Container{MaxVolume: maxVolume}
}

// Volume sums the volume of every held item.
func (c *Container) Volume(l Lookup) float64 {
	total := 0.0
	for _, h := range c.Inventory {
		if a, ok := l.Get(h); ok && a.Item != nil {
			total += a.Item.Volume
		}
	}
	return total
}

// Fits reports whether an item of the given volume can be added.
func (c *Container) Fits(l Lookup, volume float64) bool {
	return c.Volume(l)+volume <= c.MaxVolume
}

// Add appends an item handle.
func (c *Container) Add(h Handle) {
	c.Inventory = append(c.Inventory, h)
}

// Remove drops an item handle, preserving order. It returns false if the
// item was not held.
func (c *Container) Remove(h Handle) bool {
	for i, held := range c.Inventory {
		if held == h {
			c.Inventory = append(c.Inventory[:i], c.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether the item is held.
func (c *Container) Contains(h Handle) bool {
	for _, held := range c.Inventory {
		if held == h {
			return true
		}
	}
	return false
}

// Items resolves the held handles in inventory order.
func (c *Container) Items(l Lookup) []*Actor {
	out := make([]*Actor, 0, len(c.Inventory))
	for _, h := range c.Inventory {
		if a, ok := l.Get(h); ok {
			out = append(out, a)
		}
	}
	return out
}

// EquippedItems returns the held items whose equipment is equipped.
func (c *Container) EquippedItems(l Lookup) []*Actor {
	var out []*Actor
	for _, a := range c.Items(l) {
		if a.Equipment != nil && a.Equipment.Equipped {
			out = append(out, a)
		}
	}
	return out
}

// HasKey reports whether any held item is a key.
func (c *Container) HasKey(l Lookup) bool {
	for _, a := range c.Items(l) {
		if a.Item != nil && a.Item.Key {
			return true
		}
	}
	return false
}
