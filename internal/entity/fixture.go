package entity

// Stairs lead to the next or previous level.
type Stairs struct {
	Owner Handle `json:"owner"`
	Down  bool   `json:"down"`
}

// PortalState is the open/closed state of the exit portal.
type PortalState int

const (
	PortalClosed PortalState = iota
	PortalOpen
)

var portalStateNames = map[PortalState]string{
	PortalClosed: "closed",
	PortalOpen:   "open",
}

// String returns the state name.
func (p PortalState) String() string { return enumString(p, portalStateNames) }

// MarshalText implements encoding.TextMarshaler.
func (p PortalState) MarshalText() ([]byte, error) { return marshalEnum(p, portalStateNames) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PortalState) UnmarshalText(text []byte) error {
	v, err := unmarshalEnum(text, portalStateNames)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Portal is the exit. Stepping onto an open portal wins the game.
type Portal struct {
	Owner Handle      `json:"owner"`
	State PortalState `json:"state"`
}

// IsOpen returns true if the portal is open.
func (p *Portal) IsOpen() bool {
	return p.State == PortalOpen
}
