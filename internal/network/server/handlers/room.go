package handlers

import (
	"context"
	"log"

	"github.com/palemoky/terra-societies/internal/network/server/types"
	"github.com/palemoky/terra-societies/internal/protocol"
)

// handleJoinRoom 处理加入房间请求。
// 成功时：roomJoined 仅发给请求者（携带 playerId 与完整房间快照），
// newPlayerJoinedRoom 发给房间内其他所有会话（花名册更新）。
// 失败时：roomJoinError 发回请求者；已创建的房间/玩家记录不回滚。
func (h *Handler) handleJoinRoom(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.JoinRoomPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	log.Printf("🚪 会话 %s 请求以 %q 身份加入房间 %s", client.GetID(), payload.DisplayName, payload.RoomID)

	player, roomState, err := h.server.GetRoomManager().JoinRoom(payload.RoomID, payload.DisplayName)
	if err != nil {
		log.Printf("⚠️  加入房间失败: %v", err)
		client.SendMessage(protocol.NewJoinErrorMessage("Failed to join room"))
		return
	}

	// 绑定会话，后续请求无需重新携带房间信息即可归因
	h.server.GetSessions().Bind(client.GetID(), payload.RoomID, player.PlayerID)

	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomJoined, protocol.RoomJoinedPayload{
		PlayerID:  player.PlayerID,
		RoomState: roomState,
	}))

	h.server.BroadcastToRoomExcept(payload.RoomID, client.GetID(),
		protocol.MustNewMessage(protocol.MsgNewPlayerJoinedRoom, protocol.NewPlayerJoinedPayload{
			Player: player,
		}))

	// 统计与房间镜像，尽力而为
	if store := h.server.GetStore(); store != nil {
		go func() {
			ctx := context.Background()
			_ = store.RecordJoin(ctx, player.PlayerID, player.DisplayName, payload.RoomID)
			_ = store.SaveRoomSnapshot(ctx, roomState)
		}()
	}
}
