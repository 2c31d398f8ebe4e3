package server

import (
	"github.com/palemoky/terra-societies/internal/protocol"
)

// 广播寻址的三种模式：
//   1. 仅回复请求者       —— 直接 client.SendMessage
//   2. 房间内除请求者外    —— BroadcastToRoomExcept
//   3. 整个房间（含请求者） —— BroadcastToRoom
// 投递为 fire-and-forget：至多一次，无确认、无重试。

// GetOnlineCount 获取在线连接数（按需调用）
func (s *Server) GetOnlineCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}

// BroadcastToRoom 广播消息给绑定到指定房间的所有会话
func (s *Server) BroadcastToRoom(roomID string, msg *protocol.Message) {
	for _, sessionID := range s.sessions.SessionsInRoom(roomID) {
		if client := s.getClient(sessionID); client != nil {
			client.SendMessage(msg)
		}
	}
}

// BroadcastToRoomExcept 广播消息给房间内除指定会话外的所有会话
func (s *Server) BroadcastToRoomExcept(roomID, exceptSessionID string, msg *protocol.Message) {
	for _, sessionID := range s.sessions.SessionsInRoom(roomID) {
		if sessionID == exceptSessionID {
			continue
		}
		if client := s.getClient(sessionID); client != nil {
			client.SendMessage(msg)
		}
	}
}

// getClient 按会话 ID 查找客户端
func (s *Server) getClient(sessionID string) *Client {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return s.clients[sessionID]
}
