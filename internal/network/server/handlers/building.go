package handlers

import (
	"context"
	"errors"
	"log"

	"github.com/palemoky/terra-societies/internal/apperrors"
	"github.com/palemoky/terra-societies/internal/network/server/types"
	"github.com/palemoky/terra-societies/internal/protocol"
)

// handleAddBuilding 处理放置建筑请求。
// 成功时 serverAddedBuilding 广播给整个房间（含请求者），
// 请求者的视图与其他人一样来自同一份权威事件，没有乐观的本地状态。
// 房间或玩家不匹配时仅记录日志并丢弃请求，不回发错误。
func (h *Handler) handleAddBuilding(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.AddBuildingPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if !payload.BuildingType.Valid() {
		log.Printf("⚠️  未知建筑类型 %q，请求被丢弃", payload.BuildingType)
		return
	}

	log.Printf("🏗️  房间 %s 中请求放置 %s", payload.RoomID, payload.BuildingType)

	instance, err := h.server.GetRoomManager().PlaceBuilding(
		payload.RoomID, payload.PlayerID, payload.BuildingType, payload.Position)
	if err != nil {
		var gameErr *apperrors.GameError
		if errors.As(err, &gameErr) {
			log.Printf("⚠️  放置失败: %s (房间: %s, 玩家: %s)", gameErr.Message, payload.RoomID, payload.PlayerID)
		} else {
			log.Printf("⚠️  放置失败: %v", err)
		}
		return
	}

	h.server.BroadcastToRoom(payload.RoomID,
		protocol.MustNewMessage(protocol.MsgServerAddedBuilding, protocol.BuildingAddedPayload{
			PlayerID:         payload.PlayerID,
			BuildingInstance: instance,
		}))

	// 统计，尽力而为
	if store := h.server.GetStore(); store != nil {
		go func() {
			_ = store.RecordPlacement(context.Background(), payload.PlayerID, payload.BuildingType)
		}()
	}
}
