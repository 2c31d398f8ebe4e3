package types

import (
	"context"

	"github.com/palemoky/terra-societies/internal/game/world"
	"github.com/palemoky/terra-societies/internal/protocol"
)

// ServerContext 服务器上下文接口 - 避免循环依赖
type ServerContext interface {
	GetRoomManager() RoomManagerInterface
	GetSessions() SessionsInterface
	// GetStore 可能返回 nil（未配置 Redis 时统计与镜像被禁用）
	GetStore() StoreInterface
	GetOnlineCount() int

	// 房间级广播（按会话绑定寻址）
	BroadcastToRoom(roomID string, msg *protocol.Message)
	BroadcastToRoomExcept(roomID, exceptSessionID string, msg *protocol.Message)
}

// RoomManagerInterface 房间注册表接口
type RoomManagerInterface interface {
	JoinRoom(roomID, displayName string) (*world.Player, *world.Room, error)
	PlaceBuilding(roomID, playerID string, buildingType world.BuildingType, position world.Vector3) (*world.BuildingInstance, error)
	Snapshot(roomID string) *world.Room
	RoomCount() int
}

// SessionsInterface 会话绑定表接口：会话 ID → (roomId, playerId)。
// 绑定在加入房间时建立，使后续请求无需重新携带房间信息即可归因。
type SessionsInterface interface {
	Bind(sessionID, roomID, playerID string)
	Lookup(sessionID string) (Binding, bool)
	SessionsInRoom(roomID string) []string
	Unbind(sessionID string)
}

// Binding 一个会话与房间/玩家的绑定关系
type Binding struct {
	RoomID   string
	PlayerID string
}

// StoreInterface 存储接口（统计与房间镜像，尽力而为）
type StoreInterface interface {
	RecordJoin(ctx context.Context, playerID, displayName, roomID string) error
	RecordPlacement(ctx context.Context, playerID string, buildingType world.BuildingType) error
	SaveRoomSnapshot(ctx context.Context, room *world.Room) error
}

// ClientInterface 客户端连接接口
type ClientInterface interface {
	GetID() string
	SendMessage(msg *protocol.Message)
	Close()
}
