package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/terra-societies/internal/game/world"
	"github.com/palemoky/terra-societies/internal/protocol"
)

// joinAs drives the real join flow and returns the assigned player ID.
func joinAs(t *testing.T, h *Handler, srv *fakeServer, sessionID, roomID, name string) string {
	t.Helper()

	c := srv.connect(sessionID)
	h.Handle(c, protocol.MustNewMessage(protocol.MsgRequestJoinRoom, protocol.JoinRoomPayload{
		RoomID: roomID, DisplayName: name,
	}))

	joined := c.MessagesOfType(protocol.MsgRoomJoined)
	require.Len(t, joined, 1)
	payload, err := protocol.ParsePayload[protocol.RoomJoinedPayload](joined[0])
	require.NoError(t, err)
	return payload.PlayerID
}

func TestHandleAddBuilding_BroadcastsToWholeRoom(t *testing.T) {
	t.Parallel()

	srv := newFakeServer()
	h := NewHandler(srv)

	alicePlayer := joinAs(t, h, srv, "session-alice", "abc", "Alice")
	joinAs(t, h, srv, "session-bob", "abc", "Bob")
	alice := srv.clients["session-alice"]
	bob := srv.clients["session-bob"]

	h.Handle(alice, protocol.MustNewMessage(protocol.MsgRequestAddBuilding, protocol.AddBuildingPayload{
		PlayerID:     alicePlayer,
		RoomID:       "abc",
		BuildingType: world.BuildingPowerPlant,
		Position:     world.Vector3{X: 1, Y: 0, Z: 1},
	}))

	// serverAddedBuilding 广播给全房间，包括请求者自己
	for _, c := range []interface {
		MessagesOfType(protocol.MessageType) []*protocol.Message
	}{alice, bob} {
		added := c.MessagesOfType(protocol.MsgServerAddedBuilding)
		require.Len(t, added, 1)

		payload, err := protocol.ParsePayload[protocol.BuildingAddedPayload](added[0])
		require.NoError(t, err)
		assert.Equal(t, alicePlayer, payload.PlayerID)
		assert.Equal(t, world.BuildingPowerPlant, payload.BuildingInstance.BuildingType)
		assert.Equal(t, world.Vector3{X: 1, Y: 0, Z: 1}, payload.BuildingInstance.Position)
		assert.Zero(t, payload.BuildingInstance.Cutback)
	}

	// 建筑已落入房间状态
	snapshot := srv.rm.Snapshot("abc")
	require.NotNil(t, snapshot)
	player := snapshot.FindPlayer(alicePlayer)
	require.NotNil(t, player)
	assert.Len(t, player.Society.Buildings, 1)
}

func TestHandleAddBuilding_UnknownRoomDroppedSilently(t *testing.T) {
	t.Parallel()

	srv := newFakeServer()
	h := NewHandler(srv)
	alicePlayer := joinAs(t, h, srv, "session-alice", "abc", "Alice")
	alice := srv.clients["session-alice"]
	before := len(alice.Messages)

	h.Handle(alice, protocol.MustNewMessage(protocol.MsgRequestAddBuilding, protocol.AddBuildingPayload{
		PlayerID:     alicePlayer,
		RoomID:       "no-such-room",
		BuildingType: world.BuildingHeadQuarters,
		Position:     world.Vector3{},
	}))

	// 静默丢弃：没有广播，也没有错误回发
	assert.Len(t, alice.Messages, before)
}

func TestHandleAddBuilding_UnknownPlayerDroppedSilently(t *testing.T) {
	t.Parallel()

	srv := newFakeServer()
	h := NewHandler(srv)
	joinAs(t, h, srv, "session-alice", "abc", "Alice")
	alice := srv.clients["session-alice"]
	before := len(alice.Messages)

	h.Handle(alice, protocol.MustNewMessage(protocol.MsgRequestAddBuilding, protocol.AddBuildingPayload{
		PlayerID:     "ghost-player",
		RoomID:       "abc",
		BuildingType: world.BuildingHeadQuarters,
		Position:     world.Vector3{},
	}))

	assert.Len(t, alice.Messages, before)

	// 房间状态未被污染
	snapshot := srv.rm.Snapshot("abc")
	require.NotNil(t, snapshot)
	for _, p := range snapshot.Players {
		assert.Empty(t, p.Society.Buildings)
	}
}

func TestHandleAddBuilding_InvalidBuildingType(t *testing.T) {
	t.Parallel()

	srv := newFakeServer()
	h := NewHandler(srv)
	alicePlayer := joinAs(t, h, srv, "session-alice", "abc", "Alice")
	alice := srv.clients["session-alice"]
	before := len(alice.Messages)

	h.Handle(alice, protocol.MustNewMessage(protocol.MsgRequestAddBuilding, protocol.AddBuildingPayload{
		PlayerID:     alicePlayer,
		RoomID:       "abc",
		BuildingType: world.BuildingType("castle"),
		Position:     world.Vector3{},
	}))

	assert.Len(t, alice.Messages, before)
}

func TestHandleAddBuilding_InvalidPayload(t *testing.T) {
	t.Parallel()

	srv := newFakeServer()
	h := NewHandler(srv)
	alice := srv.connect("session-alice")

	h.Handle(alice, &protocol.Message{
		Type:    protocol.MsgRequestAddBuilding,
		Payload: json.RawMessage(`[1, 2, 3]`),
	})

	errs := alice.MessagesOfType(protocol.MsgError)
	require.Len(t, errs, 1)
}

func TestHandlePing(t *testing.T) {
	t.Parallel()

	srv := newFakeServer()
	h := NewHandler(srv)
	alice := srv.connect("session-alice")

	h.Handle(alice, protocol.MustNewMessage(protocol.MsgPing, protocol.PingPayload{
		Timestamp: 12345,
	}))

	pongs := alice.MessagesOfType(protocol.MsgPong)
	require.Len(t, pongs, 1)

	payload, err := protocol.ParsePayload[protocol.PongPayload](pongs[0])
	require.NoError(t, err)
	assert.Equal(t, int64(12345), payload.ClientTimestamp)
	assert.NotZero(t, payload.ServerTimestamp)
}
