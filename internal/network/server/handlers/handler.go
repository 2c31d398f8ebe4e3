// Package handlers 把入站协议事件映射到房间注册表与建筑放置服务，
// 并执行响应/广播扇出。
package handlers

import (
	"log"

	"github.com/palemoky/terra-societies/internal/network/server/types"
	"github.com/palemoky/terra-societies/internal/protocol"
)

// Handler 消息处理器
type Handler struct {
	server types.ServerContext
}

// NewHandler 创建处理器
func NewHandler(s types.ServerContext) *Handler {
	return &Handler{server: s}
}

// Handle 处理消息
func (h *Handler) Handle(client types.ClientInterface, msg *protocol.Message) {
	switch msg.Type {
	// 连接操作
	case protocol.MsgPing:
		h.handlePing(client, msg)

	// 房间操作
	case protocol.MsgRequestJoinRoom:
		h.handleJoinRoom(client, msg)

	// 建筑操作
	case protocol.MsgRequestAddBuilding:
		h.handleAddBuilding(client, msg)

	default:
		log.Printf("⚠️  未知消息类型: '%s' (会话: %s)", msg.Type, client.GetID())
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
	}
}
