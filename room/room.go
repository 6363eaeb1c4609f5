package room

import (
	"math/rand"
	"sort"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"skifall/game"
	"skifall/protocol"
)

// Phase values go on the wire as-is.
const (
	PhaseLobby         = "lobby"
	PhasePlaying       = "playing"
	PhaseRoundComplete = "round-complete"
	PhaseGameOver      = "game-over"
)

// roundOptions are the total-round counts offered to the lobby.
var roundOptions = []int{1, 3, 5, 10}

const telemetryPeriod = protocol.TelemetryPeriodMs * time.Millisecond

type Config struct {
	TotalRounds int             // default 3
	Difficulty  game.Difficulty // default medium
	Rand        *rand.Rand      // injected for reproducible level generation; nil seeds from the clock
}

// Room is a single-threaded actor: Run consumes the inbox to completion one
// event at a time, so roster, level, lines, and phase need no locking. The
// only autonomous activity is the telemetry ticker, and its channel is read
// by the same loop.
type Room struct {
	Inbox chan any

	Code    string
	OnEmpty func(code string) // called when the last player leaves

	rng        *rand.Rand
	difficulty game.Difficulty

	phase          string
	players        map[string]*Player
	joinSeq        int
	lines          map[string]game.Line
	level          *game.Level
	currentRound   int
	totalRounds    int
	roundStartedAt time.Time

	telemetry  *time.Ticker
	telemetryC <-chan time.Time

	// Mirrors of phase and roster size for cross-goroutine readers (the
	// manager's room list); the actor is the only writer.
	sharedPhase atomic.Value
	playerCount atomic.Int32

	quit chan struct{}
}

func New(cfg Config) *Room {
	if cfg.TotalRounds <= 0 {
		cfg.TotalRounds = 3
	}
	if !cfg.Difficulty.Valid() {
		cfg.Difficulty = game.DifficultyMedium
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	r := &Room{
		Inbox:       make(chan any, 256),
		rng:         cfg.Rand,
		difficulty:  cfg.Difficulty,
		phase:       PhaseLobby,
		players:     make(map[string]*Player),
		lines:       make(map[string]game.Line),
		totalRounds: cfg.TotalRounds,
		quit:        make(chan struct{}),
	}
	r.sharedPhase.Store(PhaseLobby)
	return r
}

func (r *Room) Stop() {
	close(r.quit)
}

// NumPlayers returns the current number of connected players.
func (r *Room) NumPlayers() int {
	return int(r.playerCount.Load())
}

// Phase returns the room's current phase.
func (r *Room) Phase() string {
	return r.sharedPhase.Load().(string)
}

// setPhase is the only place the phase changes.
func (r *Room) setPhase(phase string) {
	r.phase = phase
	r.sharedPhase.Store(phase)
}

func (r *Room) Run() {
	defer r.stopTelemetry()
	for {
		select {
		case <-r.quit:
			return
		case cmd := <-r.Inbox:
			r.handleCommand(cmd)
		case <-r.telemetryC:
			r.broadcastObstaclePositions()
		}
	}
}

func (r *Room) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		r.handleJoin(c)
	case Leave:
		r.handleLeave(c.PlayerID)
	case ClientMessage:
		r.handleClientMessage(c)
	}
}

// --- connection lifecycle ---

func (r *Room) handleJoin(c Join) {
	// Stale single-player session guard: a room left mid-game with nobody in
	// it snaps back to the lobby before the newcomer is seated.
	if len(r.players) == 0 && r.phase != PhaseLobby {
		r.resetToLobby()
	}

	p := r.addPlayer(c.Conn, c.Name)
	if c.Reply != nil {
		c.Reply <- JoinResult{PlayerID: p.ID}
	}

	r.sendTo(p, r.welcomeFor(p))
	r.broadcastExcept(protocol.PlayerJoined{
		Type:   protocol.MsgPlayerJoined,
		Player: snapshotOf(p),
	}, p.ID)
	r.broadcastGameState()

	log.Info().Str("room", r.Code).Str("player", p.ID).Str("name", p.Name).
		Bool("spectating", p.IsSpectating).Int("total", len(r.players)).Msg("player joined")
}

func (r *Room) handleLeave(playerID string) {
	p, removedLines := r.removePlayer(playerID)
	if p == nil {
		return
	}
	_ = p.conn.Close()

	r.broadcastAll(protocol.PlayerLeft{
		Type:           protocol.MsgPlayerLeft,
		PlayerID:       playerID,
		RemovedLineIDs: removedLines,
	})

	log.Info().Str("room", r.Code).Str("player", playerID).
		Int("removedLines", len(removedLines)).Int("remaining", len(r.players)).Msg("player left")

	if len(r.players) == 0 {
		r.stopTelemetry()
		if r.OnEmpty != nil && r.Code != "" {
			r.OnEmpty(r.Code)
		}
		return
	}

	// A departure can shrink the active set into a satisfied quorum.
	if !r.evaluateQuorum() {
		r.broadcastGameState()
	}
}

// --- inbound messages ---

func (r *Room) handleClientMessage(c ClientMessage) {
	p, ok := r.players[c.PlayerID]
	if !ok {
		return
	}
	typ, ok := protocol.Peek(c.Data)
	if !ok {
		return // malformed or untagged, dropped silently
	}

	switch typ {
	case protocol.MsgSetReady:
		if msg, err := protocol.Decode[protocol.SetReady](c.Data); err == nil {
			r.handleSetReady(p, msg.Ready)
		}
	case protocol.MsgSetTotalRounds:
		if msg, err := protocol.Decode[protocol.SetTotalRounds](c.Data); err == nil {
			r.handleSetTotalRounds(p, msg.Rounds)
		}
	case protocol.MsgPlayerFinished:
		if msg, err := protocol.Decode[protocol.FinishReport](c.Data); err == nil {
			r.handleFinish(p, msg.FinishTime)
		}
	case protocol.MsgPlayAgain:
		r.handlePlayAgain()
	case protocol.MsgRequestNewLevel:
		if msg, err := protocol.Decode[protocol.RequestNewLevel](c.Data); err == nil {
			r.handleRequestNewLevel(msg.Difficulty)
		}
	case protocol.MsgLineAdd:
		if msg, err := protocol.Decode[protocol.LineAdd](c.Data); err == nil {
			r.handleLineAdd(p, msg.Line)
		}
	case protocol.MsgLineRemove:
		if msg, err := protocol.Decode[protocol.LineRemove](c.Data); err == nil {
			r.handleLineRemove(p, msg.LineID)
		}
	case protocol.MsgLinesClear:
		r.handleLinesClear(p)
	case protocol.MsgSkierPosition:
		if msg, err := protocol.Decode[protocol.SkierPosition](c.Data); err == nil {
			msg.PlayerID = p.ID
			r.broadcastExcept(msg, p.ID)
		}
	default:
		// Forward-compatibility escape hatch: unknown tagged messages are
		// relayed untouched to everyone else (unvalidated forwarding).
		r.broadcastRawExcept(c.Data, p.ID)
	}
}

func (r *Room) handleSetReady(p *Player, ready bool) {
	if r.phase != PhaseLobby && r.phase != PhaseRoundComplete {
		return
	}
	p.IsReady = ready
	if !r.evaluateQuorum() {
		r.broadcastGameState()
	}
}

func (r *Room) handleSetTotalRounds(p *Player, rounds int) {
	if r.phase != PhaseLobby || p.IsReady {
		return
	}
	valid := false
	for _, opt := range roundOptions {
		if opt == rounds {
			valid = true
			break
		}
	}
	if !valid {
		return
	}
	r.totalRounds = rounds
	r.broadcastGameState()
}

// handleFinish records a self-reported result. The first report per player
// per round wins; repeats are ignored so scores cannot double-count.
func (r *Room) handleFinish(p *Player, finishTime *float64) {
	if r.phase != PhasePlaying || p.IsSpectating || p.RoundResult != nil {
		return
	}
	score := game.Score(finishTime)
	p.RoundResult = &game.RoundResult{FinishTime: finishTime, Score: score}
	p.TotalScore += score

	r.broadcastAll(protocol.PlayerFinished{
		Type:       protocol.MsgPlayerFinished,
		PlayerID:   p.ID,
		Result:     *p.RoundResult,
		TotalScore: p.TotalScore,
	})
	r.evaluateQuorum()
}

func (r *Room) handlePlayAgain() {
	if r.phase != PhaseGameOver {
		return
	}
	r.resetToLobby()
	r.broadcastGameState()
}

func (r *Room) handleRequestNewLevel(difficulty game.Difficulty) {
	if difficulty.Valid() {
		r.difficulty = difficulty
	}
	r.level = game.Generate(r.rng, r.difficulty)
	r.broadcastAll(protocol.LevelUpdate{Type: protocol.MsgLevelUpdate, Level: r.level})
}

// --- relay ---

func (r *Room) handleLineAdd(p *Player, line game.Line) {
	if line.ID == "" || len(line.Points) == 0 {
		return
	}
	line.PlayerID = p.ID // ownership comes from the connection, not the payload
	r.lines[line.ID] = line
	r.broadcastExcept(protocol.LineAdd{Type: protocol.MsgLineAdd, Line: line}, p.ID)
}

func (r *Room) handleLineRemove(p *Player, lineID string) {
	line, ok := r.lines[lineID]
	if !ok || line.PlayerID != p.ID {
		return
	}
	delete(r.lines, lineID)
	r.broadcastExcept(protocol.LineRemove{
		Type:     protocol.MsgLineRemove,
		LineID:   lineID,
		PlayerID: p.ID,
	}, p.ID)
}

func (r *Room) handleLinesClear(p *Player) {
	for id, line := range r.lines {
		if line.PlayerID == p.ID {
			delete(r.lines, id)
		}
	}
	r.broadcastExcept(protocol.LinesClear{Type: protocol.MsgLinesClear, PlayerID: p.ID}, p.ID)
}

// --- state machine ---

// evaluateQuorum checks the current phase's exit condition against the
// active (non-spectating) player set and fires the transition when every
// active player satisfies it. Reports whether a transition happened; every
// transition ends in its own full-state broadcast.
func (r *Room) evaluateQuorum() bool {
	switch r.phase {
	case PhaseLobby:
		if r.allActiveReady() {
			r.startRound()
			return true
		}
	case PhasePlaying:
		if r.allActiveFinished() {
			r.completeRound()
			return true
		}
	case PhaseRoundComplete:
		if r.allActiveReady() {
			if r.currentRound >= r.totalRounds {
				r.endGame()
			} else {
				r.startRound()
			}
			return true
		}
	}
	return false
}

func (r *Room) allActiveReady() bool {
	active := r.activePlayers()
	if len(active) == 0 {
		return false
	}
	for _, p := range active {
		if !p.IsReady {
			return false
		}
	}
	return true
}

func (r *Room) allActiveFinished() bool {
	active := r.activePlayers()
	if len(active) == 0 {
		return false
	}
	for _, p := range active {
		if p.RoundResult == nil {
			return false
		}
	}
	return true
}

// startRound performs the lobby->playing (and round-complete->playing) entry
// actions as one atomic turn: fresh level, cleared lines, cleared per-round
// player state, spectators seated, telemetry started, then the broadcast.
func (r *Room) startRound() {
	r.currentRound++
	r.level = game.Generate(r.rng, r.difficulty)
	r.roundStartedAt = time.Now()
	r.lines = make(map[string]game.Line)
	for _, p := range r.players {
		p.IsReady = false
		p.RoundResult = nil
		p.IsSpectating = false
	}
	r.setPhase(PhasePlaying)
	r.startTelemetry()
	r.broadcastGameState()

	log.Info().Str("room", r.Code).Int("round", r.currentRound).
		Int("of", r.totalRounds).Str("level", r.level.ID).Msg("round started")
}

func (r *Room) completeRound() {
	r.stopTelemetry()
	for _, p := range r.players {
		p.IsReady = false
	}
	r.setPhase(PhaseRoundComplete)
	r.broadcastGameState()

	log.Info().Str("room", r.Code).Int("round", r.currentRound).Msg("round complete")
}

func (r *Room) endGame() {
	r.stopTelemetry()
	for _, p := range r.players {
		p.IsReady = false
	}
	r.setPhase(PhaseGameOver)
	r.broadcastGameState()

	log.Info().Str("room", r.Code).Msg("game over")
}

// resetToLobby returns the room to its initial state. Used by the explicit
// play-again action and by the stale-session guard on first join.
func (r *Room) resetToLobby() {
	r.stopTelemetry()
	r.setPhase(PhaseLobby)
	r.currentRound = 0
	r.level = nil
	r.roundStartedAt = time.Time{}
	r.lines = make(map[string]game.Line)
	for _, p := range r.players {
		p.IsReady = false
		p.IsSpectating = false
		p.RoundResult = nil
		p.TotalScore = 0
	}
}

// --- telemetry driver ---

// The ticker handle is owned by the transitions: started only on entering
// playing, stopped on every path that leaves it. A nil channel removes the
// case from the select, so a stopped driver can never fire.
func (r *Room) startTelemetry() {
	r.stopTelemetry()
	r.telemetry = time.NewTicker(telemetryPeriod)
	r.telemetryC = r.telemetry.C
}

func (r *Room) stopTelemetry() {
	if r.telemetry != nil {
		r.telemetry.Stop()
		r.telemetry = nil
		r.telemetryC = nil
	}
}

func (r *Room) broadcastObstaclePositions() {
	if r.phase != PhasePlaying || r.level == nil {
		return
	}
	elapsed := time.Since(r.roundStartedAt)
	positions := make([]protocol.ObstaclePosition, 0, len(r.level.MovingObstacles))
	for _, o := range r.level.MovingObstacles {
		pos := o.PositionAt(elapsed)
		positions = append(positions, protocol.ObstaclePosition{ID: o.ID, X: pos.X, Y: pos.Y})
	}
	r.broadcastAll(protocol.ObstaclePositions{
		Type:      protocol.MsgObstaclePositions,
		Elapsed:   elapsed.Seconds(),
		Positions: positions,
	})
}

// --- broadcasting ---

func (r *Room) welcomeFor(p *Player) protocol.Welcome {
	lines := make([]game.Line, 0, len(r.lines))
	for _, line := range r.lines {
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ID < lines[j].ID })

	return protocol.Welcome{
		Type:           protocol.MsgWelcome,
		PlayerID:       p.ID,
		Phase:          r.phase,
		Players:        r.playerSnapshots(),
		Level:          r.level,
		Lines:          lines,
		CurrentRound:   r.currentRound,
		TotalRounds:    r.totalRounds,
		RoundOptions:   roundOptions,
		RoundStartedAt: r.roundStartMillis(),
	}
}

func (r *Room) broadcastGameState() {
	r.broadcastAll(protocol.GameState{
		Type:           protocol.MsgGameState,
		Phase:          r.phase,
		Players:        r.playerSnapshots(),
		Level:          r.level,
		CurrentRound:   r.currentRound,
		TotalRounds:    r.totalRounds,
		RoundStartedAt: r.roundStartMillis(),
	})
}

func (r *Room) roundStartMillis() int64 {
	if r.roundStartedAt.IsZero() {
		return 0
	}
	return r.roundStartedAt.UnixMilli()
}

func (r *Room) broadcastAll(msg any) {
	r.broadcastExcept(msg, "")
}

// broadcastExcept fans a message out to every connection except excludeID.
// Delivery is fire-and-forget: a failed send just closes the connection and
// the read pump turns that into a Leave on a later turn.
func (r *Room) broadcastExcept(msg any, excludeID string) {
	b, err := protocol.Encode(msg)
	if err != nil {
		log.Error().Str("room", r.Code).Err(err).Msg("encode broadcast")
		return
	}
	r.broadcastRawExcept(b, excludeID)
}

func (r *Room) broadcastRawExcept(b []byte, excludeID string) {
	for id, p := range r.players {
		if id == excludeID {
			continue
		}
		if err := p.conn.Send(b); err != nil {
			_ = p.conn.Close()
		}
	}
}

func (r *Room) sendTo(p *Player, msg any) {
	b, err := protocol.Encode(msg)
	if err != nil {
		log.Error().Str("room", r.Code).Err(err).Msg("encode send")
		return
	}
	if err := p.conn.Send(b); err != nil {
		_ = p.conn.Close()
	}
}
