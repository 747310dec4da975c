package entities

// RegisteredMoveCount is the number of moves a profile holds
const RegisteredMoveCount = 4

// UserMoveProfile is the per-user record of registered moves, keyed by Discord user ID
type UserMoveProfile struct {
	DiscordID       string
	Username        string
	RegisteredMoves []string
}

// HasMoves reports whether the profile holds any registered moves
func (p *UserMoveProfile) HasMoves() bool {
	return p != nil && len(p.RegisteredMoves) > 0
}
