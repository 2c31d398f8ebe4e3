package world

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildingType_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, BuildingHeadQuarters.Valid())
	assert.True(t, BuildingPowerPlant.Valid())
	assert.False(t, BuildingType("castle").Valid())
	assert.False(t, BuildingType("").Valid())

	// ghost is a client-side preview variant, never placeable
	assert.False(t, BuildingGhost.Valid())
}

func TestMapGeometry_WireFormatFlatArrays(t *testing.T) {
	t.Parallel()

	// vertices/indices 必须以扁平数值数组传输，这是与前端的兼容性契约
	geo := &MapGeometry{
		Vertices: []float32{0, 1.5, 0, 1, 2.5, 0},
		Indices:  []uint16{0, 2, 1},
	}

	data, err := json.Marshal(geo)
	require.NoError(t, err)
	assert.JSONEq(t, `{"vertices":[0,1.5,0,1,2.5,0],"indices":[0,2,1]}`, string(data))
}

func TestRoom_WireFormatFieldNames(t *testing.T) {
	t.Parallel()

	room := &Room{
		RoomID: "abc",
		Players: []*Player{{
			PlayerID:    "p1",
			DisplayName: "Alice",
			Society: &Society{
				SocietyID: "s1",
				Color:     "#ff00aa",
				Buildings: []*BuildingInstance{{
					BuildingType: BuildingPowerPlant,
					Cutback:      0,
					Position:     Vector3{X: 1, Y: 0, Z: 1},
				}},
			},
		}},
		MapGeometry: &MapGeometry{Vertices: []float32{}, Indices: []uint16{}},
	}

	data, err := json.Marshal(room)
	require.NoError(t, err)

	expected := `{
		"roomId": "abc",
		"players": [{
			"playerId": "p1",
			"displayName": "Alice",
			"society": {
				"societyId": "s1",
				"color": "#ff00aa",
				"buildings": [{
					"buildingType": "powerPlant",
					"cutback": 0,
					"position": {"x": 1, "y": 0, "z": 1}
				}]
			}
		}],
		"mapGeometry": {"vertices": [], "indices": []}
	}`
	assert.JSONEq(t, expected, string(data))
}

func TestRoom_FindPlayer(t *testing.T) {
	t.Parallel()

	room := &Room{Players: []*Player{
		{PlayerID: "a"},
		{PlayerID: "b"},
	}}

	assert.Equal(t, "b", room.FindPlayer("b").PlayerID)
	assert.Nil(t, room.FindPlayer("c"))
}

func TestRoom_SnapshotDeepCopiesPlayers(t *testing.T) {
	t.Parallel()

	original := &Room{
		RoomID: "abc",
		Players: []*Player{{
			PlayerID:    "p1",
			DisplayName: "Alice",
			Society: &Society{
				SocietyID: "s1",
				Color:     "#123456",
				Buildings: []*BuildingInstance{{BuildingType: BuildingHeadQuarters}},
			},
		}},
		MapGeometry: &MapGeometry{Vertices: []float32{1}, Indices: []uint16{0}},
	}

	snapshot := original.Snapshot()

	// 修改原件不影响快照
	original.Players[0].Society.Buildings = append(original.Players[0].Society.Buildings,
		&BuildingInstance{BuildingType: BuildingPowerPlant})
	original.Players = append(original.Players, &Player{PlayerID: "p2"})

	require.Len(t, snapshot.Players, 1)
	assert.Len(t, snapshot.Players[0].Society.Buildings, 1)

	// 不可变的几何数据共享引用
	assert.Same(t, original.MapGeometry, snapshot.MapGeometry)
}

func TestRandomColor_Format(t *testing.T) {
	t.Parallel()

	for i := 0; i < 50; i++ {
		assert.Regexp(t, `^#[0-9a-f]{6}$`, RandomColor())
	}
}
