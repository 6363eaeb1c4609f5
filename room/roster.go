package room

import (
	"sort"

	"github.com/google/uuid"

	"skifall/game"
	"skifall/protocol"
)

// Identity palettes. Assignment is round-robin on roster size so visual
// identity is deterministic and collision-free regardless of join order.
var (
	colorPalette = []string{
		"#EF4444", "#F97316", "#EAB308", "#22C55E",
		"#06B6D4", "#3B82F6", "#8B5CF6", "#EC4899",
	}
	avatarPalette    = []string{"goggles", "beanie", "helmet", "headband", "earmuffs", "scarf"}
	characterPalette = []string{"classic", "racer", "freestyler", "rookie", "veteran", "trailblazer"}
)

// Player is one connected client's authoritative record.
type Player struct {
	ID           string
	Name         string
	Color        string
	Avatar       string
	Character    string
	IsReady      bool
	IsSpectating bool
	RoundResult  *game.RoundResult
	TotalScore   int

	joinSeq int
	conn    Conn
}

// addPlayer allocates a Player for a new connection. Joining mid-round makes
// the player a spectator until the next round starts.
func (r *Room) addPlayer(conn Conn, name string) *Player {
	idx := len(r.players)
	if name == "" {
		name = game.PlayerName(r.rng)
	}
	p := &Player{
		ID:           uuid.NewString(),
		Name:         name,
		Color:        colorPalette[idx%len(colorPalette)],
		Avatar:       avatarPalette[idx%len(avatarPalette)],
		Character:    characterPalette[idx%len(characterPalette)],
		IsSpectating: r.phase == PhasePlaying,
		joinSeq:      r.joinSeq,
		conn:         conn,
	}
	r.joinSeq++
	r.players[p.ID] = p
	r.playerCount.Store(int32(len(r.players)))
	return p
}

// removePlayer drops the player and every line they own, returning the ids
// of the removed lines so the departure broadcast can list them.
func (r *Room) removePlayer(id string) (*Player, []string) {
	p, ok := r.players[id]
	if !ok {
		return nil, nil
	}
	removed := make([]string, 0)
	for lineID, line := range r.lines {
		if line.PlayerID == id {
			delete(r.lines, lineID)
			removed = append(removed, lineID)
		}
	}
	sort.Strings(removed)
	delete(r.players, id)
	r.playerCount.Store(int32(len(r.players)))
	return p, removed
}

// activePlayers returns every non-spectating player.
func (r *Room) activePlayers() []*Player {
	out := make([]*Player, 0, len(r.players))
	for _, p := range r.players {
		if !p.IsSpectating {
			out = append(out, p)
		}
	}
	return out
}

// leaderboard orders players by total score descending, ties broken by join
// order. Used for every roster snapshot put on the wire.
func (r *Room) leaderboard() []*Player {
	out := make([]*Player, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalScore != out[j].TotalScore {
			return out[i].TotalScore > out[j].TotalScore
		}
		return out[i].joinSeq < out[j].joinSeq
	})
	return out
}

func (r *Room) playerSnapshots() []protocol.PlayerInfo {
	players := r.leaderboard()
	out := make([]protocol.PlayerInfo, 0, len(players))
	for _, p := range players {
		out = append(out, snapshotOf(p))
	}
	return out
}

func snapshotOf(p *Player) protocol.PlayerInfo {
	return protocol.PlayerInfo{
		ID:           p.ID,
		Name:         p.Name,
		Color:        p.Color,
		Avatar:       p.Avatar,
		Character:    p.Character,
		IsReady:      p.IsReady,
		IsSpectating: p.IsSpectating,
		RoundResult:  p.RoundResult,
		TotalScore:   p.TotalScore,
	}
}
