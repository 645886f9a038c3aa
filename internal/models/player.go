package models

// Player represents a participant sharing the device
type Player struct {
	// Name is the display name of the player, unique within a game (case-insensitive)
	Name string

	// Age is used to derive the question level the player answers
	Age int

	// Coins is the player's current balance
	Coins int
}

// Clone returns a copy of the player
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

// ClonePlayers returns a deep copy of a roster
func ClonePlayers(players []*Player) []*Player {
	out := make([]*Player, len(players))
	for i, p := range players {
		out[i] = p.Clone()
	}
	return out
}
