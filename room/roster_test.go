package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skifall/protocol"
)

func TestJoinAssignsPaletteIdentityRoundRobin(t *testing.T) {
	r := newTestRoom(t, Config{})

	var ids []string
	for i := 0; i < len(colorPalette)+1; i++ {
		id, _ := joinPlayer(t, r, "")
		ids = append(ids, id)
	}

	for i, id := range ids {
		p := r.players[id]
		assert.Equal(t, colorPalette[i%len(colorPalette)], p.Color)
		assert.Equal(t, avatarPalette[i%len(avatarPalette)], p.Avatar)
		assert.Equal(t, characterPalette[i%len(characterPalette)], p.Character)
		assert.NotEmpty(t, p.Name, "players without a name get a generated one")
	}

	// The palette wraps: player 9 repeats player 1's color.
	assert.Equal(t, r.players[ids[0]].Color, r.players[ids[len(colorPalette)]].Color)
}

func TestPlayerIDsAreUnique(t *testing.T) {
	r := newTestRoom(t, Config{})
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		id, _ := joinPlayer(t, r, "p")
		require.False(t, seen[id], "duplicate player id %q", id)
		seen[id] = true
	}
}

func TestLeaderboardOrdersByScoreThenJoinOrder(t *testing.T) {
	r := newTestRoom(t, Config{TotalRounds: 3})
	id1, _, id2, _ := startPlaying(t, r)
	id3, _ := joinPlayer(t, r, "gamma") // spectator, score 0

	reportFinish(t, r, id1, ptr(50)) // 50 points
	reportFinish(t, r, id2, ptr(10)) // 90 points
	require.Equal(t, PhaseRoundComplete, r.phase)

	board := r.leaderboard()
	require.Len(t, board, 3)
	assert.Equal(t, id2, board[0].ID)
	assert.Equal(t, id1, board[1].ID)
	assert.Equal(t, id3, board[2].ID, "ties break by join order")
}

func TestJoinBroadcastsToOthersOnly(t *testing.T) {
	r := newTestRoom(t, Config{})
	_, fc1 := joinPlayer(t, r, "alpha")
	id2, fc2 := joinPlayer(t, r, "beta")

	joined := lastTyped[protocol.PlayerJoined](t, fc1, protocol.MsgPlayerJoined)
	assert.Equal(t, id2, joined.Player.ID)

	assert.Empty(t, fc2.typed(protocol.MsgPlayerJoined),
		"the joiner gets a welcome, not their own player-joined")

	// Both see the follow-up full snapshot with two players.
	for _, fc := range []*fakeConn{fc1, fc2} {
		state := lastTyped[protocol.GameState](t, fc, protocol.MsgGameState)
		assert.Len(t, state.Players, 2)
	}
}

func TestLeaveClosesConnection(t *testing.T) {
	r := newTestRoom(t, Config{})
	id1, fc1 := joinPlayer(t, r, "alpha")
	joinPlayer(t, r, "beta")

	r.handleCommand(Leave{PlayerID: id1})
	assert.True(t, fc1.closed)
	assert.NotContains(t, r.players, id1)

	// A second leave for the same id is a no-op.
	r.handleCommand(Leave{PlayerID: id1})
}

func TestSpectatorOnlyRoomNeverTransitions(t *testing.T) {
	r := newTestRoom(t, Config{})
	id1, _, id2, _ := startPlaying(t, r)
	id3, _ := joinPlayer(t, r, "watcher")
	require.True(t, r.players[id3].IsSpectating)

	r.handleCommand(Leave{PlayerID: id1})
	r.handleCommand(Leave{PlayerID: id2})

	// Only the spectator remains: the active set is empty, so no quorum can
	// be satisfied and the round stays open.
	assert.Equal(t, PhasePlaying, r.phase)
	setReady(t, r, id3, true)
	assert.Equal(t, PhasePlaying, r.phase)
}
