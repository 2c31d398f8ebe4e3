package handlers

import (
	"github.com/palemoky/terra-societies/internal/config"
	"github.com/palemoky/terra-societies/internal/game/room"
	"github.com/palemoky/terra-societies/internal/network/server/session"
	"github.com/palemoky/terra-societies/internal/network/server/types"
	"github.com/palemoky/terra-societies/internal/protocol"
	"github.com/palemoky/terra-societies/internal/testutil"
)

// fakeServer implements types.ServerContext with a real registry and a
// real session binding table, so handler tests exercise the actual
// fan-out addressing logic without a websocket transport.
type fakeServer struct {
	rm       *room.Manager
	sessions *session.Manager
	clients  map[string]*testutil.SimpleClient
}

func newFakeServer() *fakeServer {
	return &fakeServer{
		rm: room.NewManager(config.TerrainConfig{
			Width: 10, Depth: 10, Levels: 5, MaxHeight: 6, Seed: 42,
		}),
		sessions: session.NewManager(),
		clients:  make(map[string]*testutil.SimpleClient),
	}
}

func (s *fakeServer) connect(id string) *testutil.SimpleClient {
	c := &testutil.SimpleClient{ID: id}
	s.clients[id] = c
	return c
}

func (s *fakeServer) GetRoomManager() types.RoomManagerInterface { return s.rm }
func (s *fakeServer) GetSessions() types.SessionsInterface       { return s.sessions }
func (s *fakeServer) GetStore() types.StoreInterface             { return nil }
func (s *fakeServer) GetOnlineCount() int                        { return len(s.clients) }

func (s *fakeServer) BroadcastToRoom(roomID string, msg *protocol.Message) {
	for _, sessionID := range s.sessions.SessionsInRoom(roomID) {
		if client, ok := s.clients[sessionID]; ok {
			client.SendMessage(msg)
		}
	}
}

func (s *fakeServer) BroadcastToRoomExcept(roomID, exceptSessionID string, msg *protocol.Message) {
	for _, sessionID := range s.sessions.SessionsInRoom(roomID) {
		if sessionID == exceptSessionID {
			continue
		}
		if client, ok := s.clients[sessionID]; ok {
			client.SendMessage(msg)
		}
	}
}
