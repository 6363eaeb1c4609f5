package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeek(t *testing.T) {
	typ, ok := Peek([]byte(`{"type":"set-ready","ready":true}`))
	require.True(t, ok)
	assert.Equal(t, MsgSetReady, typ)

	_, ok = Peek([]byte(`not json`))
	assert.False(t, ok)

	_, ok = Peek([]byte(`{"ready":true}`))
	assert.False(t, ok, "untagged objects are dropped")

	_, ok = Peek(nil)
	assert.False(t, ok)

	// Unknown types still peek fine: the room relays them as-is.
	typ, ok = Peek([]byte(`{"type":"emote","id":4}`))
	require.True(t, ok)
	assert.Equal(t, "emote", typ)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	b, err := Encode(SetTotalRounds{Type: MsgSetTotalRounds, Rounds: 5})
	require.NoError(t, err)

	msg, err := Decode[SetTotalRounds](b)
	require.NoError(t, err)
	assert.Equal(t, 5, msg.Rounds)
	assert.Equal(t, MsgSetTotalRounds, msg.Type)
}

func TestEncodeRejectsNil(t *testing.T) {
	_, err := Encode(nil)
	assert.Error(t, err)
}

func TestDecodeNullFinishTime(t *testing.T) {
	msg, err := Decode[FinishReport]([]byte(`{"type":"player-finished","finishTime":null}`))
	require.NoError(t, err)
	assert.Nil(t, msg.FinishTime)

	msg, err = Decode[FinishReport]([]byte(`{"type":"player-finished","finishTime":23.4}`))
	require.NoError(t, err)
	require.NotNil(t, msg.FinishTime)
	assert.Equal(t, 23.4, *msg.FinishTime)
}
