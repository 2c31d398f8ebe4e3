package handlers

import (
	"time"

	"github.com/palemoky/terra-societies/internal/network/server/types"
	"github.com/palemoky/terra-societies/internal/protocol"
)

// handlePing 处理心跳，回显客户端时间戳用于延迟计算
func (h *Handler) handlePing(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.PingPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgPong, protocol.PongPayload{
		ClientTimestamp: payload.Timestamp,
		ServerTimestamp: time.Now().UnixMilli(),
	}))
}
