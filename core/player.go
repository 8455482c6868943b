package core

// Player identifies a side of the match
type Player uint8

const (
	PlayerNone  Player = iota
	PlayerHuman        // Left paddle
	PlayerAI           // Right paddle
)

func (p Player) String() string {
	switch p {
	case PlayerHuman:
		return "player"
	case PlayerAI:
		return "ai"
	default:
		return "none"
	}
}
