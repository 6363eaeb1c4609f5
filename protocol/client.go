package protocol

import "skifall/game"

// Payloads coming in from clients.

type SetReady struct {
	Type  string `json:"type"`
	Ready bool   `json:"ready"`
}

// SetTotalRounds is only honored in the lobby, from a sender that has not
// readied up yet; otherwise it is a no-op.
type SetTotalRounds struct {
	Type   string `json:"type"`
	Rounds int    `json:"rounds"`
}

// FinishReport is a client's self-reported round outcome. A null finishTime
// means did-not-finish. The server trusts the value as reported.
type FinishReport struct {
	Type       string   `json:"type"`
	FinishTime *float64 `json:"finishTime"`
}

type PlayAgain struct {
	Type string `json:"type"`
}

// RequestNewLevel is the dev/admin override forcing regeneration.
type RequestNewLevel struct {
	Type       string          `json:"type"`
	Difficulty game.Difficulty `json:"difficulty,omitempty"`
}

type LineAdd struct {
	Type string    `json:"type"`
	Line game.Line `json:"line"`
}

type LineRemove struct {
	Type     string `json:"type"`
	LineID   string `json:"lineId"`
	PlayerID string `json:"playerId,omitempty"` // stamped by the server on relay
}

type LinesClear struct {
	Type     string `json:"type"`
	PlayerID string `json:"playerId,omitempty"` // stamped by the server on relay
}

// SkierPosition is ephemeral ghost telemetry, relayed and never persisted.
type SkierPosition struct {
	Type     string  `json:"type"`
	PlayerID string  `json:"playerId,omitempty"` // stamped by the server on relay
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	State    string  `json:"state,omitempty"` // idle, moving, fallen, finished
}
