// Package ui 实现共享世界的终端客户端。
package ui

import (
	"github.com/palemoky/terra-societies/internal/protocol"
)

// Phase 客户端当前阶段
type Phase int

const (
	PhaseConnecting Phase = iota
	PhaseJoinForm
	PhaseInRoom
)

// --- Tea Messages ---

// ServerMessage 包装服务端消息为 tea.Msg
type ServerMessage struct {
	Msg *protocol.Message
}

// ConnectionErrorMsg 连接错误
type ConnectionErrorMsg struct {
	Err error
}

// ConnectionClosedMsg 连接已关闭
type ConnectionClosedMsg struct{}
