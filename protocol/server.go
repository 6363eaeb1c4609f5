package protocol

import "skifall/game"

// PlayerInfo is the roster view of one player.
type PlayerInfo struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Color        string            `json:"color"`
	Avatar       string            `json:"avatar"`
	Character    string            `json:"character"`
	IsReady      bool              `json:"isReady"`
	IsSpectating bool              `json:"isSpectating"`
	RoundResult  *game.RoundResult `json:"roundResult"`
	TotalScore   int               `json:"totalScore"`
}

// Welcome bootstraps a new connection with everything a late joiner needs.
type Welcome struct {
	Type           string       `json:"type"`
	PlayerID       string       `json:"playerId"`
	Phase          string       `json:"phase"`
	Players        []PlayerInfo `json:"players"`
	Level          *game.Level  `json:"level,omitempty"`
	Lines          []game.Line  `json:"lines"`
	CurrentRound   int          `json:"currentRound"`
	TotalRounds    int          `json:"totalRounds"`
	RoundOptions   []int        `json:"roundOptions"`
	RoundStartedAt int64        `json:"roundStartedAt,omitempty"` // unix ms
}

type PlayerJoined struct {
	Type   string     `json:"type"`
	Player PlayerInfo `json:"player"`
}

type PlayerLeft struct {
	Type           string   `json:"type"`
	PlayerID       string   `json:"playerId"`
	RemovedLineIDs []string `json:"removedLineIds"`
}

// GameState is the full snapshot broadcast after any phase, roster, or
// setting change. Clients reconcile from it instead of a retry protocol.
type GameState struct {
	Type           string       `json:"type"`
	Phase          string       `json:"phase"`
	Players        []PlayerInfo `json:"players"`
	Level          *game.Level  `json:"level,omitempty"`
	CurrentRound   int          `json:"currentRound"`
	TotalRounds    int          `json:"totalRounds"`
	RoundStartedAt int64        `json:"roundStartedAt,omitempty"` // unix ms
}

type LevelUpdate struct {
	Type  string      `json:"type"`
	Level *game.Level `json:"level"`
}

// PlayerFinished announces one player's accepted round result.
type PlayerFinished struct {
	Type       string           `json:"type"`
	PlayerID   string           `json:"playerId"`
	Result     game.RoundResult `json:"result"`
	TotalScore int              `json:"totalScore"`
}

type ObstaclePosition struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type ObstaclePositions struct {
	Type      string             `json:"type"`
	Elapsed   float64            `json:"elapsed"` // seconds since round start
	Positions []ObstaclePosition `json:"positions"`
}
