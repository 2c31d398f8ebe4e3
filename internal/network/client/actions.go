package client

import (
	"time"

	"github.com/palemoky/terra-societies/internal/game/world"
	"github.com/palemoky/terra-societies/internal/protocol"
)

// JoinRoom 请求加入房间，roomId 同时充当加入码
func (c *Client) JoinRoom(roomID, displayName string) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgRequestJoinRoom, protocol.JoinRoomPayload{
		RoomID:      roomID,
		DisplayName: displayName,
	}))
}

// PlaceBuilding 请求在指定位置放置建筑
func (c *Client) PlaceBuilding(playerID, roomID string, buildingType world.BuildingType, position world.Vector3) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgRequestAddBuilding, protocol.AddBuildingPayload{
		PlayerID:     playerID,
		RoomID:       roomID,
		BuildingType: buildingType,
		Position:     position,
	}))
}

// Ping 发送心跳
func (c *Client) Ping() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgPing, protocol.PingPayload{
		Timestamp: time.Now().UnixMilli(),
	}))
}
