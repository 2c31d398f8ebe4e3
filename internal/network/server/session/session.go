// Package session 维护会话 ID 到 (roomId, playerId) 的显式映射。
// 绑定表独立于传输层，广播寻址与测试都直接查询它。
package session

import (
	"sync"

	"github.com/palemoky/terra-societies/internal/network/server/types"
)

// Manager 会话绑定表
type Manager struct {
	mu       sync.RWMutex
	bindings map[string]types.Binding
}

// NewManager 创建会话绑定表
func NewManager() *Manager {
	return &Manager{
		bindings: make(map[string]types.Binding),
	}
}

// Bind 建立会话与房间/玩家的绑定，重复加入时覆盖旧绑定
func (m *Manager) Bind(sessionID, roomID, playerID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bindings[sessionID] = types.Binding{RoomID: roomID, PlayerID: playerID}
}

// Lookup 查询会话绑定
func (m *Manager) Lookup(sessionID string) (types.Binding, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.bindings[sessionID]
	return b, ok
}

// SessionsInRoom 返回绑定到指定房间的所有会话 ID
func (m *Manager) SessionsInRoom(roomID string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var ids []string
	for id, b := range m.bindings {
		if b.RoomID == roomID {
			ids = append(ids, id)
		}
	}
	return ids
}

// Unbind 移除会话绑定（连接断开时调用；Player 记录按产品决策保留）
func (m *Manager) Unbind(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.bindings, sessionID)
}
