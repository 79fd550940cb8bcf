package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora/planora/backend-go/internal/scene"
)

func TestFindCabinetSnapPointsFlushSideBySide(t *testing.T) {
	e := NewEngine(DefaultSnapConfig())
	a := testCabinet("a", 310, 297.5, 0)
	b := testCabinet("b", 0, 0, 0)

	points := e.FindCabinetSnapPoints(b, 790, 310, []scene.PlacedItem{a, b})
	require.NotEmpty(t, points)

	best := points[0]
	assert.Equal(t, SnapEdgeLeft, best.Edge)
	assert.Equal(t, "a", best.TargetID)
	assert.InDelta(t, 910.0, best.X, 1e-9) // a.Right 610 + 600/2
	assert.InDelta(t, 297.5, best.Z, 1e-9) // back-aligned to a
	assert.True(t, best.AlignedZ)
	assert.Equal(t, prioritySameRunAligned, best.Priority)
}

func TestFindCabinetSnapPointsPriorityBeatsDistance(t *testing.T) {
	e := NewEngine(DefaultSnapConfig())
	a := testCabinet("a", 310, 297.5, 0)   // same wall run as the dragged item
	c := testCabinet("c", 1377.5, 400, 90) // closer, but cross-oriented
	b := testCabinet("b", 0, 0, 0)

	points := e.FindCabinetSnapPoints(b, 770, 320, []scene.PlacedItem{a, c, b})
	require.GreaterOrEqual(t, len(points), 2)

	// The same-run back-aligned neighbor wins even though the cross
	// cabinet's edge gap is smaller.
	assert.Equal(t, "a", points[0].TargetID)
	assert.Equal(t, prioritySameRunAligned, points[0].Priority)
	assert.Greater(t, points[0].Priority, points[1].Priority)
	assert.Less(t, points[1].Distance, points[0].Distance)
}

func TestFindCabinetSnapPointsSkipsDecorAndSelf(t *testing.T) {
	e := NewEngine(DefaultSnapConfig())
	b := testCabinet("b", 0, 0, 0)
	plant := scene.PlacedItem{
		InstanceID: "plant",
		ItemType:   scene.ItemTypeDecor,
		Width:      300, Height: 600, Depth: 300,
		X: 700, Z: 300,
	}

	points := e.FindCabinetSnapPoints(b, 790, 310, []scene.PlacedItem{plant, b})
	assert.Empty(t, points)
}

func TestFindCabinetSnapPointsDepthContact(t *testing.T) {
	e := NewEngine(DefaultSnapConfig())
	// Island row: dragged approaches a's front face from inside the room.
	a := testCabinet("a", 1000, 297.5, 0) // front edge at 585
	b := testCabinet("b", 0, 0, 0)

	points := e.FindCabinetSnapPoints(b, 1010, 1000, []scene.PlacedItem{a, b})
	require.NotEmpty(t, points)

	best := points[0]
	assert.Equal(t, SnapEdgeBack, best.Edge)
	assert.InDelta(t, 585+287.5, best.Z, 1e-9) // flush against a's front
	assert.True(t, best.AlignedX)              // left edges within tolerance
	assert.InDelta(t, 1000.0, best.X, 1e-9)
}

func TestFindCabinetSnapPointsNoAlignmentKeepsCursorAxis(t *testing.T) {
	e := NewEngine(DefaultSnapConfig())
	a := testCabinet("a", 310, 297.5, 0)
	b := testCabinet("b", 0, 0, 0)

	// Far enough forward that no Z reference line matches.
	points := e.FindCabinetSnapPoints(b, 790, 500, []scene.PlacedItem{a, b})
	require.NotEmpty(t, points)

	best := points[0]
	assert.Equal(t, SnapEdgeLeft, best.Edge)
	assert.False(t, best.AlignedZ)
	assert.InDelta(t, 500.0, best.Z, 1e-9) // unsnapped cursor Z preserved
	assert.Equal(t, prioritySameRotation, best.Priority)
}

func TestWallRunCabinets(t *testing.T) {
	e := NewEngine(DefaultSnapConfig())
	room := testRoom()
	dims := testDims()

	flush := testCabinet("flush", 310, 297.5, 0)
	island := testCabinet("island", 2000, 1500, 180)
	sideWall := testCabinet("side", 297.5, 1500, 90)

	run := e.WallRunCabinets(WallBack, []scene.PlacedItem{flush, island, sideWall}, room, dims)
	require.Len(t, run, 1)
	assert.Equal(t, "flush", run[0].InstanceID)

	leftRun := e.WallRunCabinets(WallLeft, []scene.PlacedItem{flush, island, sideWall}, room, dims)
	require.Len(t, leftRun, 1)
	assert.Equal(t, "side", leftRun[0].InstanceID)
}

func TestInheritRotation(t *testing.T) {
	e := NewEngine(DefaultSnapConfig())
	room := testRoom()
	dims := testDims()

	flush := testCabinet("flush", 310, 297.5, 0)
	rot, ok := e.InheritRotation(flush, room, dims)
	require.True(t, ok)
	assert.Equal(t, 0.0, rot)

	island := testCabinet("island", 2000, 1500, 180)
	_, ok = e.InheritRotation(island, room, dims)
	assert.False(t, ok)
}
