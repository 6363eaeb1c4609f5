package protocol

// Wire messages are JSON objects tagged by a "type" field.

// Server -> client.
const (
	MsgWelcome           = "welcome"
	MsgPlayerJoined      = "player-joined"
	MsgPlayerLeft        = "player-left"
	MsgGameState         = "game-state"
	MsgLevelUpdate       = "level-update"
	MsgPlayerFinished    = "player-finished" // also client -> server (finish report)
	MsgObstaclePositions = "obstacle-positions"
)

// Client -> server.
const (
	MsgSetReady        = "set-ready"
	MsgSetTotalRounds  = "set-total-rounds"
	MsgPlayAgain       = "play-again"
	MsgRequestNewLevel = "request-new-level"
)

// Relayed in both directions. The server stamps the sender's player id
// before fanning out.
const (
	MsgLineAdd       = "line-add"
	MsgLineRemove    = "line-remove"
	MsgLinesClear    = "lines-clear"
	MsgSkierPosition = "skier-position"
)

const TelemetryPeriodMs = 66 // moving-obstacle broadcast period
