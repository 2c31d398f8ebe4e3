package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型。房间与建筑事件的名称是与客户端的兼容性契约，
// 与原有前端保持一致，不可改动。
type MessageType string

// 客户端 → 服务端 消息类型
const (
	// 连接操作
	MsgPing MessageType = "ping" // 心跳 ping

	// 房间操作
	MsgRequestJoinRoom MessageType = "requestJoinRoom" // 请求加入房间

	// 建筑操作
	MsgRequestAddBuilding MessageType = "requestAddBuilding" // 请求放置建筑
)

// 服务端 → 客户端 消息类型
const (
	// 连接相关
	MsgConnected MessageType = "connected" // 连接成功
	MsgPong      MessageType = "pong"      // 心跳 pong

	// 房间相关
	MsgRoomJoined          MessageType = "roomJoined"          // 加入房间成功（仅发送给请求者）
	MsgNewPlayerJoinedRoom MessageType = "newPlayerJoinedRoom" // 新玩家加入（发送给房间内其他人）
	MsgRoomJoinError       MessageType = "roomJoinError"       // 加入房间失败（仅发送给请求者）

	// 建筑相关
	MsgServerAddedBuilding MessageType = "serverAddedBuilding" // 建筑放置成功（发送给整个房间，含请求者）

	// 错误
	MsgError MessageType = "error" // 协议级错误消息
)

// --- 错误码 ---
const (
	ErrCodeUnknown        = 1000
	ErrCodeInvalidMsg     = 1001
	ErrCodeRoomNotFound   = 2001
	ErrCodePlayerNotFound = 2002
	ErrCodeJoinFailed     = 2003
)

// ErrorMessages 错误码对应的消息
var ErrorMessages = map[int]string{
	ErrCodeUnknown:        "未知错误",
	ErrCodeInvalidMsg:     "无效的消息格式",
	ErrCodeRoomNotFound:   "房间不存在",
	ErrCodePlayerNotFound: "玩家不在该房间中",
	ErrCodeJoinFailed:     "Failed to join room",
}
