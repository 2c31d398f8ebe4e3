// Package room 管理房间注册表：房间生命周期、玩家成员关系与权威建筑放置。
package room

import (
	"log"
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/palemoky/terra-societies/internal/apperrors"
	"github.com/palemoky/terra-societies/internal/config"
	"github.com/palemoky/terra-societies/internal/game/terrain"
	"github.com/palemoky/terra-societies/internal/game/world"
)

// managedRoom 房间及其互斥锁。连接各自运行在独立 goroutine 中，
// 玩家列表与建筑序列的修改都必须持有该锁。
type managedRoom struct {
	mu   sync.Mutex
	room *world.Room
}

// Manager 房间管理器，进程内唯一的房间注册表。
// 显式构造、按引用传递，没有包级单例，便于每个测试各建一份。
type Manager struct {
	mu    sync.RWMutex
	rooms map[string]*managedRoom

	gen          *terrain.Generator
	width, depth int
	seed         int64 // 0 表示每个房间随机种子
}

// NewManager 创建房间管理器
func NewManager(cfg config.TerrainConfig) *Manager {
	return &Manager{
		rooms: make(map[string]*managedRoom),
		gen: &terrain.Generator{
			Levels:    cfg.Levels,
			MaxHeight: float64(cfg.MaxHeight),
		},
		width: cfg.Width,
		depth: cfg.Depth,
		seed:  cfg.Seed,
	}
}

// JoinRoom 加入房间。roomId 不存在时懒创建房间并生成地形
// （首个加入者承担生成成本，后续加入者复用现有几何数据）。
// 返回新玩家以及用于回发的房间快照。
func (m *Manager) JoinRoom(roomID, displayName string) (*world.Player, *world.Room, error) {
	// 任意非空 roomId 都可接受，空串无法充当加入码
	if roomID == "" {
		return nil, nil, apperrors.ErrJoinFailed
	}

	player := &world.Player{
		PlayerID:    uuid.New().String(),
		DisplayName: displayName,
		Society: &world.Society{
			SocietyID: uuid.New().String(),
			Color:     world.RandomColor(),
			Buildings: []*world.BuildingInstance{},
		},
	}

	// 取出或创建房间必须在注册表写锁内完成，
	// 保证同一 roomId 的并发加入至多创建一个房间
	m.mu.Lock()
	mr, exists := m.rooms[roomID]
	if !exists {
		log.Printf("🏠 房间 %s 不存在，正在创建", roomID)
		mr = &managedRoom{
			room: &world.Room{
				RoomID:      roomID,
				Players:     []*world.Player{},
				MapGeometry: m.gen.Generate(m.width, m.depth, m.roomSeed()),
			},
		}
		m.rooms[roomID] = mr
	}
	m.mu.Unlock()

	mr.mu.Lock()
	mr.room.Players = append(mr.room.Players, player)
	snapshot := mr.room.Snapshot()
	mr.mu.Unlock()

	log.Printf("👤 玩家 %s (%s) 加入房间 %s", displayName, player.PlayerID, roomID)
	return player, snapshot, nil
}

// PlaceBuilding 校验并执行一次建筑放置。
// 成功时把 {buildingType, cutback: 0, position} 追加到玩家社会的建筑序列
// （仅追加，不移除、不重排），并返回实例用于广播。
// 不做任何空间校验（越界、重叠、格子归属）：放置在当前范围内是纯展示性的。
func (m *Manager) PlaceBuilding(roomID, playerID string, buildingType world.BuildingType, position world.Vector3) (*world.BuildingInstance, error) {
	m.mu.RLock()
	mr, exists := m.rooms[roomID]
	m.mu.RUnlock()
	if !exists {
		return nil, apperrors.ErrRoomNotFound
	}

	mr.mu.Lock()
	defer mr.mu.Unlock()

	player := mr.room.FindPlayer(playerID)
	if player == nil {
		return nil, apperrors.ErrPlayerNotFound
	}

	instance := &world.BuildingInstance{
		BuildingType: buildingType,
		Cutback:      0,
		Position:     position,
	}
	player.Society.Buildings = append(player.Society.Buildings, instance)

	return instance, nil
}

// GetRoom 获取房间（只读访问，调用方不得修改返回值）
func (m *Manager) GetRoom(roomID string) *world.Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if mr, ok := m.rooms[roomID]; ok {
		return mr.room
	}
	return nil
}

// Snapshot 返回房间快照，房间不存在时返回 nil
func (m *Manager) Snapshot(roomID string) *world.Room {
	m.mu.RLock()
	mr, ok := m.rooms[roomID]
	m.mu.RUnlock()
	if !ok {
		return nil
	}
	mr.mu.Lock()
	defer mr.mu.Unlock()
	return mr.room.Snapshot()
}

// RoomCount 当前房间数
func (m *Manager) RoomCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rooms)
}

// roomSeed 计算新房间的地形种子
func (m *Manager) roomSeed() int64 {
	if m.seed != 0 {
		return m.seed
	}
	return rand.Int63()
}
