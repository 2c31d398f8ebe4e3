package apperrors

import (
	"github.com/palemoky/terra-societies/internal/protocol"
)

// GameError 游戏错误（房间与放置共享）
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrRoomNotFound   = &GameError{Code: protocol.ErrCodeRoomNotFound, Message: "房间不存在"}
	ErrPlayerNotFound = &GameError{Code: protocol.ErrCodePlayerNotFound, Message: "玩家不在该房间中"}
	ErrJoinFailed     = &GameError{Code: protocol.ErrCodeJoinFailed, Message: "Failed to join room"}
)
