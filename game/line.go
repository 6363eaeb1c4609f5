package game

// Line is player-drawn terrain. Lines are the only relayed state the server
// persists, so late joiners can be bootstrapped with the current set.
type Line struct {
	ID       string  `json:"id"`
	Points   []Point `json:"points"`
	PlayerID string  `json:"playerId"`
}
