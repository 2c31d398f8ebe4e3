// Package storage 提供基于 Redis 的社会统计与房间快照镜像。
// 镜像仅用于诊断与观察，进程重启后不会从中恢复房间。
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/redis/go-redis/v9"

	"github.com/palemoky/terra-societies/internal/game/world"
)

const (
	// Redis key 前缀
	societyStatsKey = "society:stats:"
	roomSnapshotKey = "room:snapshot:"

	// 房间快照过期时间
	roomExpiration = 2 * time.Hour
)

// SocietyStats 玩家社会的统计数据
type SocietyStats struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
	LastRoomID  string `json:"last_room_id"`

	RoomsJoined     int            `json:"rooms_joined"`     // 加入过的房间次数
	BuildingsPlaced int            `json:"buildings_placed"` // 放置建筑总数
	PlacedByType    map[string]int `json:"placed_by_type"`   // 按建筑类型统计

	FirstJoinedAt int64 `json:"first_joined_at"` // 首次加入时间（毫秒）
	LastActiveAt  int64 `json:"last_active_at"`  // 最后活跃时间（毫秒）
}

// RedisStore Redis 存储
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 创建 Redis 存储
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// --- 社会统计 ---

// RecordJoin 记录一次加入房间
func (rs *RedisStore) RecordJoin(ctx context.Context, playerID, displayName, roomID string) error {
	stats, err := rs.getOrCreateStats(ctx, playerID, displayName)
	if err != nil {
		return err
	}

	now := time.Now().UnixMilli()
	stats.DisplayName = displayName
	stats.LastRoomID = roomID
	stats.RoomsJoined++
	stats.LastActiveAt = now

	return rs.saveStats(ctx, stats)
}

// RecordPlacement 记录一次建筑放置
func (rs *RedisStore) RecordPlacement(ctx context.Context, playerID string, buildingType world.BuildingType) error {
	stats, err := rs.getOrCreateStats(ctx, playerID, "")
	if err != nil {
		return err
	}

	stats.BuildingsPlaced++
	stats.PlacedByType[string(buildingType)]++
	stats.LastActiveAt = time.Now().UnixMilli()

	return rs.saveStats(ctx, stats)
}

// GetStats 获取玩家统计，不存在时返回 nil
func (rs *RedisStore) GetStats(ctx context.Context, playerID string) (*SocietyStats, error) {
	data, err := rs.client.Get(ctx, societyStatsKey+playerID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stats SocietyStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	if stats.PlacedByType == nil {
		stats.PlacedByType = make(map[string]int)
	}
	return &stats, nil
}

// getOrCreateStats 获取或创建玩家统计
func (rs *RedisStore) getOrCreateStats(ctx context.Context, playerID, displayName string) (*SocietyStats, error) {
	stats, err := rs.GetStats(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		now := time.Now().UnixMilli()
		stats = &SocietyStats{
			PlayerID:      playerID,
			DisplayName:   displayName,
			PlacedByType:  make(map[string]int),
			FirstJoinedAt: now,
			LastActiveAt:  now,
		}
	}
	return stats, nil
}

// saveStats 保存玩家统计
func (rs *RedisStore) saveStats(ctx context.Context, stats *SocietyStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return rs.client.Set(ctx, societyStatsKey+stats.PlayerID, data, 0).Err()
}

// --- 房间快照镜像 ---

// SaveRoomSnapshot 保存房间快照。地形网格约占 50KB JSON，
// 先 gzip 压缩再落 Redis。
func (rs *RedisStore) SaveRoomSnapshot(ctx context.Context, room *world.Room) error {
	if room == nil {
		return nil
	}

	jsonData, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("序列化房间快照失败: %w", err)
	}

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write(jsonData); err != nil {
		return err
	}
	if err := gw.Close(); err != nil {
		return err
	}

	key := roomSnapshotKey + room.RoomID
	return rs.client.Set(ctx, key, buf.Bytes(), roomExpiration).Err()
}

// LoadRoomSnapshot 加载房间快照，不存在时返回 nil
func (rs *RedisStore) LoadRoomSnapshot(ctx context.Context, roomID string) (*world.Room, error) {
	data, err := rs.client.Get(ctx, roomSnapshotKey+roomID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer gr.Close()

	jsonData, err := io.ReadAll(gr)
	if err != nil {
		return nil, err
	}

	var room world.Room
	if err := json.Unmarshal(jsonData, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// DeleteRoomSnapshot 删除房间快照
func (rs *RedisStore) DeleteRoomSnapshot(ctx context.Context, roomID string) error {
	return rs.client.Del(ctx, roomSnapshotKey+roomID).Err()
}
