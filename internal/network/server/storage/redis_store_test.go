package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/terra-societies/internal/game/world"
)

// setupTestStore starts an in-memory Redis and returns a store backed by it.
func setupTestStore(t *testing.T) *RedisStore {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client)
}

func TestRecordJoin_CreatesAndIncrements(t *testing.T) {
	t.Parallel()

	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordJoin(ctx, "p1", "Alice", "abc"))

	stats, err := store.GetStats(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, "p1", stats.PlayerID)
	assert.Equal(t, "Alice", stats.DisplayName)
	assert.Equal(t, "abc", stats.LastRoomID)
	assert.Equal(t, 1, stats.RoomsJoined)
	assert.NotZero(t, stats.FirstJoinedAt)

	// 再次加入，计数递增且 LastRoomID 更新
	require.NoError(t, store.RecordJoin(ctx, "p1", "Alice", "xyz"))

	stats, err = store.GetStats(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.RoomsJoined)
	assert.Equal(t, "xyz", stats.LastRoomID)
}

func TestRecordPlacement_CountsByType(t *testing.T) {
	t.Parallel()

	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordJoin(ctx, "p1", "Alice", "abc"))
	require.NoError(t, store.RecordPlacement(ctx, "p1", world.BuildingPowerPlant))
	require.NoError(t, store.RecordPlacement(ctx, "p1", world.BuildingPowerPlant))
	require.NoError(t, store.RecordPlacement(ctx, "p1", world.BuildingHeadQuarters))

	stats, err := store.GetStats(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 3, stats.BuildingsPlaced)
	assert.Equal(t, 2, stats.PlacedByType["powerPlant"])
	assert.Equal(t, 1, stats.PlacedByType["headQuarters"])

	// 名字为空的放置记录不应覆盖已有的展示名
	assert.Equal(t, "Alice", stats.DisplayName)
}

func TestGetStats_Missing(t *testing.T) {
	t.Parallel()

	store := setupTestStore(t)

	stats, err := store.GetStats(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, stats)
}

func TestRoomSnapshot_RoundTrip(t *testing.T) {
	t.Parallel()

	store := setupTestStore(t)
	ctx := context.Background()

	room := &world.Room{
		RoomID: "abc",
		Players: []*world.Player{
			{
				PlayerID:    "p1",
				DisplayName: "Alice",
				Society: &world.Society{
					SocietyID: "s1",
					Color:     "#ff0000",
					Buildings: []*world.BuildingInstance{
						{
							BuildingType: world.BuildingPowerPlant,
							Position:     world.Vector3{X: 1, Z: 1},
						},
					},
				},
			},
		},
		MapGeometry: &world.MapGeometry{
			Vertices: []float32{0, 1.2, 0, 1, 1.2, 0},
			Indices:  []uint16{0, 1, 0},
		},
	}

	require.NoError(t, store.SaveRoomSnapshot(ctx, room))

	loaded, err := store.LoadRoomSnapshot(ctx, "abc")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, room.RoomID, loaded.RoomID)
	require.Len(t, loaded.Players, 1)
	assert.Equal(t, "Alice", loaded.Players[0].DisplayName)
	assert.Len(t, loaded.Players[0].Society.Buildings, 1)
	assert.Equal(t, room.MapGeometry.Vertices, loaded.MapGeometry.Vertices)
	assert.Equal(t, room.MapGeometry.Indices, loaded.MapGeometry.Indices)
}

func TestRoomSnapshot_MissingAndDelete(t *testing.T) {
	t.Parallel()

	store := setupTestStore(t)
	ctx := context.Background()

	loaded, err := store.LoadRoomSnapshot(ctx, "ghost")
	require.NoError(t, err)
	assert.Nil(t, loaded)

	require.NoError(t, store.SaveRoomSnapshot(ctx, &world.Room{RoomID: "abc"}))
	require.NoError(t, store.DeleteRoomSnapshot(ctx, "abc"))

	loaded, err = store.LoadRoomSnapshot(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSaveRoomSnapshot_NilRoom(t *testing.T) {
	t.Parallel()

	store := setupTestStore(t)
	assert.NoError(t, store.SaveRoomSnapshot(context.Background(), nil))
}
