package world

// Snapshot 返回房间的深拷贝快照，用于在锁外序列化发送。
// MapGeometry 创建后不可变，直接共享引用。
func (r *Room) Snapshot() *Room {
	players := make([]*Player, len(r.Players))
	for i, p := range r.Players {
		buildings := make([]*BuildingInstance, len(p.Society.Buildings))
		for j, b := range p.Society.Buildings {
			copied := *b
			buildings[j] = &copied
		}
		players[i] = &Player{
			PlayerID:    p.PlayerID,
			DisplayName: p.DisplayName,
			Society: &Society{
				SocietyID: p.Society.SocietyID,
				Color:     p.Society.Color,
				Buildings: buildings,
			},
		}
	}
	return &Room{
		RoomID:      r.RoomID,
		Players:     players,
		MapGeometry: r.MapGeometry,
	}
}
