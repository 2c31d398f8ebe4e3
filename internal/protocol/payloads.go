package protocol

import (
	"github.com/palemoky/terra-societies/internal/game/world"
)

// --- 客户端请求 Payloads ---

// JoinRoomPayload 加入房间请求。roomId 由客户端提供，同时充当加入码；
// 任意非空字符串均可接受，校验是客户端的职责。
type JoinRoomPayload struct {
	RoomID      string `json:"roomId"`
	DisplayName string `json:"displayName"`
}

// AddBuildingPayload 放置建筑请求
type AddBuildingPayload struct {
	PlayerID     string             `json:"playerId"`
	RoomID       string             `json:"roomId"`
	BuildingType world.BuildingType `json:"buildingType"`
	Position     world.Vector3      `json:"position"`
}

// PingPayload 心跳请求
type PingPayload struct {
	Timestamp int64 `json:"timestamp"` // 客户端时间戳（毫秒）
}

// --- 服务端响应 Payloads ---

// ConnectedPayload 连接成功响应
type ConnectedPayload struct {
	SessionID string `json:"sessionId"`
}

// PongPayload 心跳响应
type PongPayload struct {
	ClientTimestamp int64 `json:"clientTimestamp"`
	ServerTimestamp int64 `json:"serverTimestamp"` // 服务器时间戳（毫秒）
}

// RoomJoinedPayload 加入房间成功响应，携带完整房间快照
// （包含所有已存在玩家的社会/建筑以及房间地形网格）
type RoomJoinedPayload struct {
	PlayerID  string      `json:"playerId"`
	RoomState *world.Room `json:"roomState"`
}

// NewPlayerJoinedPayload 新玩家加入通知（花名册更新）
type NewPlayerJoinedPayload struct {
	Player *world.Player `json:"player"`
}

// BuildingAddedPayload 建筑放置广播，请求者与其他玩家收到同一份权威事件
type BuildingAddedPayload struct {
	PlayerID         string                  `json:"playerId"`
	BuildingInstance *world.BuildingInstance `json:"buildingInstance"`
}

// ErrorPayload 协议级错误响应
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
