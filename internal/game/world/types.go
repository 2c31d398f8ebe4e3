// Package world 定义房间内共享世界的核心数据模型。
// 所有类型的 JSON 标签即线上协议格式，客户端按原样消费，不可随意改动。
package world

// Vector3 三维坐标，不可变值类型
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// BuildingType 建筑类型（封闭枚举）
type BuildingType string

const (
	BuildingHeadQuarters BuildingType = "headQuarters" // 总部
	BuildingPowerPlant   BuildingType = "powerPlant"   // 发电厂
	// BuildingGhost 预留给尚未实现的放置预览（幽灵建筑）功能
	BuildingGhost BuildingType = "ghost"
)

// Valid 判断是否为可放置的建筑类型。
// ghost 仅用于客户端预览，服务端不接受。
func (t BuildingType) Valid() bool {
	switch t {
	case BuildingHeadQuarters, BuildingPowerPlant:
		return true
	}
	return false
}

// BuildingInstance 一个已放置的建筑，归属于放置它的 Society
type BuildingInstance struct {
	BuildingType BuildingType `json:"buildingType"`
	// Cutback 资源消耗度，当前始终为 0，预留给资源衰减机制
	Cutback  float64 `json:"cutback"`
	Position Vector3 `json:"position"`
}

// Society 玩家的社会，与 Player 一一对应，加入房间时创建
type Society struct {
	SocietyID string `json:"societyId"`
	// Color 渲染用的身份颜色，按玩家固定不变
	Color string `json:"color"`
	// Buildings 仅追加，已放置的建筑不会被移除或重排
	Buildings []*BuildingInstance `json:"buildings"`
}

// Player 房间内的玩家
type Player struct {
	PlayerID    string   `json:"playerId"`
	DisplayName string   `json:"displayName"`
	Society     *Society `json:"society"`
}

// MapGeometry 地形网格，房间创建时生成一次，之后不可变。
// vertices/indices 在线上以扁平数值数组传输：每顶点 3 个 float，
// 每三角形 3 个索引，每个地形格两个三角形。
type MapGeometry struct {
	Vertices []float32 `json:"vertices"`
	Indices  []uint16  `json:"indices"`
}

// Room 房间聚合，roomId 由客户端提供，同时充当加入码
type Room struct {
	RoomID      string       `json:"roomId"`
	Players     []*Player    `json:"players"`
	MapGeometry *MapGeometry `json:"mapGeometry"`
}

// FindPlayer 按 ID 查找玩家，找不到返回 nil
func (r *Room) FindPlayer(playerID string) *Player {
	for _, p := range r.Players {
		if p.PlayerID == playerID {
			return p
		}
	}
	return nil
}
