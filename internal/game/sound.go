package game

// Cue names a sound effect.
type Cue int

const (
	CueHit    Cue = iota // The player dealt damage
	CueDeath             // The player died
	CuePickup            // An item went into the player's inventory
	CueWin               // The player escaped
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueHit:
		return "hit"
	case CueDeath:
		return "death"
	case CuePickup:
		return "pickup"
	case CueWin:
		return "win"
	default:
		return "unknown"
	}
}

// Sounder plays sound cues. Play must not block the turn.
type Sounder interface {
	Play(cue Cue)
}

type silent struct{}

func (silent) Play(Cue) {}
