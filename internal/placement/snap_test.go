package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora/planora/backend-go/internal/scene"
)

func TestCalculateSnapFlushSideBySide(t *testing.T) {
	e := NewEngine(DefaultSnapConfig())
	room := testRoom()
	dims := testDims()

	a := testCabinet("a", 310, 297.5, 0) // back-aligned against the back wall
	b := testCabinet("b", 0, 0, 0)

	res := e.CalculateSnapPosition(920, 300, b, []scene.PlacedItem{a, b}, room, 50, dims, false)

	require.Equal(t, SnapCabinet, res.SnappedTo)
	assert.Equal(t, SnapEdgeLeft, res.SnapEdge)
	assert.Equal(t, "a", res.SnappedItemID)
	assert.InDelta(t, 910.0, res.X, 1e-9) // a.Right 610 + b halfwidth 300
	assert.InDelta(t, 297.5, res.Z, 1e-9) // inherited a's back-aligned Z
	assert.Equal(t, 0.0, res.Rotation)
}

func TestCalculateSnapBackWall(t *testing.T) {
	e := NewEngine(DefaultSnapConfig())
	room := testRoom()
	dims := testDims()

	b := testCabinet("b", 0, 0, 0)
	res := e.CalculateSnapPosition(2000, 50, b, []scene.PlacedItem{b}, room, 50, dims, false)

	require.Equal(t, SnapWall, res.SnappedTo)
	assert.Equal(t, WallBack, res.Wall)
	assert.InDelta(t, 297.5, res.Z, 1e-9) // 575/2 + 10
	assert.InDelta(t, 2000.0, res.X, 1e-9, "parallel axis slides freely at grid resolution")
	assert.Equal(t, 0.0, res.Rotation)
}

func TestCalculateSnapCorner(t *testing.T) {
	e := NewEngine(DefaultSnapConfig())
	room := testRoom()
	dims := testDims()

	b := testCabinet("b", 0, 0, 0)
	res := e.CalculateSnapPosition(250, 250, b, []scene.PlacedItem{b}, room, 50, dims, false)

	require.Equal(t, SnapCorner, res.SnappedTo)
	assert.InDelta(t, 310.0, res.X, 1e-9) // 600/2 + 10
	assert.InDelta(t, 297.5, res.Z, 1e-9) // 575/2 + 10
	assert.Equal(t, 0.0, res.Rotation)
}

func TestCalculateSnapCornerPrecedesWall(t *testing.T) {
	e := NewEngine(DefaultSnapConfig())
	room := testRoom()
	dims := testDims()

	// Close enough to both the back and left walls to qualify for either a
	// wall snap or a corner snap. Corner must win.
	b := testCabinet("b", 0, 0, 0)
	res := e.CalculateSnapPosition(350, 300, b, []scene.PlacedItem{b}, room, 50, dims, false)

	assert.Equal(t, SnapCorner, res.SnappedTo)
}

func TestCalculateSnapGridFallback(t *testing.T) {
	e := NewEngine(DefaultSnapConfig())
	room := testRoom()
	dims := testDims()

	b := testCabinet("b", 0, 0, 0)
	res := e.CalculateSnapPosition(1987, 1512, b, []scene.PlacedItem{b}, room, 50, dims, false)

	assert.Equal(t, SnapGrid, res.SnappedTo)
	assert.InDelta(t, 2000.0, res.X, 1e-9)
	assert.InDelta(t, 1500.0, res.Z, 1e-9)
	assert.Empty(t, res.SnappedItemID)
}

func TestCalculateSnapIdempotent(t *testing.T) {
	e := NewEngine(DefaultSnapConfig())
	room := testRoom()
	dims := testDims()

	a := testCabinet("a", 310, 297.5, 0)
	b := testCabinet("b", 0, 0, 0)
	items := []scene.PlacedItem{a, b}

	first := e.CalculateSnapPosition(920, 300, b, items, room, 50, dims, false)
	second := e.CalculateSnapPosition(920, 300, b, items, room, 50, dims, false)
	assert.Equal(t, first, second)
}

func TestCalculateSnapBoundsInvariant(t *testing.T) {
	e := NewEngine(DefaultSnapConfig())
	room := testRoom()
	dims := testDims()
	b := testCabinet("b", 0, 0, 0)

	// Sweep raw positions well outside and across the room; every result
	// must keep the rotated bounding box inside the walls minus the gap.
	for rawX := -1000.0; rawX <= 5000; rawX += 370 {
		for rawZ := -1000.0; rawZ <= 4000; rawZ += 290 {
			res := e.CalculateSnapPosition(rawX, rawZ, b, []scene.PlacedItem{b}, room, 50, dims, false)

			final := b
			final.Rotation = res.Rotation
			bb := RotatedBoundsAt(final, res.X, res.Z)

			assert.GreaterOrEqual(t, bb.Left, dims.WallGap-1e-9, "raw (%v,%v)", rawX, rawZ)
			assert.LessOrEqual(t, bb.Right, room.Width-dims.WallGap+1e-9, "raw (%v,%v)", rawX, rawZ)
			assert.GreaterOrEqual(t, bb.Back, dims.WallGap-1e-9, "raw (%v,%v)", rawX, rawZ)
			assert.LessOrEqual(t, bb.Front, room.Depth-dims.WallGap+1e-9, "raw (%v,%v)", rawX, rawZ)
		}
	}
}

func TestCalculateSnapSideWallRotates(t *testing.T) {
	e := NewEngine(DefaultSnapConfig())
	room := testRoom()
	dims := testDims()

	b := testCabinet("b", 0, 0, 0)
	res := e.CalculateSnapPosition(100, 1500, b, []scene.PlacedItem{b}, room, 50, dims, false)

	assert.Equal(t, SnapWall, res.SnappedTo)
	assert.Equal(t, WallLeft, res.Wall)
	assert.Equal(t, 90.0, res.Rotation)
	assert.InDelta(t, 297.5, res.X, 1e-9) // depth faces the wall after rotation
	assert.InDelta(t, 1500.0, res.Z, 1e-9)
}

func TestCalculateSnapCollisionPushOut(t *testing.T) {
	e := NewEngine(DefaultSnapConfig())
	room := testRoom()
	dims := testDims()

	a := testCabinet("a", 1000, 1000, 0)
	b := testCabinet("b", 0, 0, 0)

	// Dropped deep inside a's footprint, far from any snap target.
	res := e.CalculateSnapPosition(1100, 1000, b, []scene.PlacedItem{a, b}, room, 50, dims, false)

	final := b
	final.Rotation = res.Rotation
	bb := RotatedBoundsAt(final, res.X, res.Z)
	assert.False(t, Overlaps(bb, RotatedBounds(a)), "single colliding neighbor must be fully resolved")

	// Pushed out the near side, with the margin applied.
	assert.InDelta(t, 1610.0, res.X, 1e-9) // a.Right 1300 + half 300 + 10 margin
	assert.InDelta(t, 1000.0, res.Z, 1e-9)
}

func TestCalculateSnapWallHysteresisThreading(t *testing.T) {
	e := NewEngine(DefaultSnapConfig())
	room := testRoom()
	dims := testDims()
	b := testCabinet("b", 0, 0, 0)

	// Roughly 300mm from the back wall after grid rounding: inside the
	// release band, outside the engage band.
	z := 575.0/2 + 300

	held := e.CalculateSnapPosition(2000, z, b, []scene.PlacedItem{b}, room, 50, dims, true)
	assert.Equal(t, SnapWall, held.SnappedTo)
	assert.InDelta(t, 297.5, held.Z, 1e-9)

	released := e.CalculateSnapPosition(2000, z, b, []scene.PlacedItem{b}, room, 50, dims, false)
	assert.Equal(t, SnapGrid, released.SnappedTo)
}

func TestCalculateSnapWallThenCabinetKeepsWallAxis(t *testing.T) {
	e := NewEngine(DefaultSnapConfig())
	room := testRoom()
	dims := testDims()

	// Neighbor sits slightly off the wall line; the dragged item is
	// wall-snapped, so the cabinet match may only adjust X, never Z.
	a := testCabinet("a", 310, 330, 0)
	b := testCabinet("b", 0, 0, 0)

	res := e.CalculateSnapPosition(750, 60, b, []scene.PlacedItem{a, b}, room, 50, dims, false)

	assert.Equal(t, SnapCabinet, res.SnappedTo)
	assert.Equal(t, "a", res.SnappedItemID)
	assert.InDelta(t, 297.5, res.Z, 1e-9, "wall alignment must not be broken by the cabinet match")
	assert.InDelta(t, 910.0, res.X, 1e-9)
	assert.Equal(t, WallBack, res.Wall)
}

func TestCalculateSnapWallIgnoresPerpendicularCabinetContact(t *testing.T) {
	e := NewEngine(DefaultSnapConfig())
	room := testRoom()
	dims := testDims()

	// The only nearby cabinet contact is against a's back face, which runs
	// perpendicular to the active back-wall snap. It must not reclassify
	// the result as a cabinet snap.
	a := testCabinet("a", 2000, 1000, 0)
	b := testCabinet("b", 0, 0, 0)

	res := e.CalculateSnapPosition(2000, 50, b, []scene.PlacedItem{a, b}, room, 50, dims, false)

	assert.Equal(t, SnapWall, res.SnappedTo)
	assert.Equal(t, WallBack, res.Wall)
	assert.Empty(t, res.SnappedItemID)
	assert.Empty(t, res.SnapEdge)
	assert.InDelta(t, 297.5, res.Z, 1e-9)
	assert.InDelta(t, 2000.0, res.X, 1e-9)
}

func TestCalculateSnapInheritsWallRunRotation(t *testing.T) {
	e := NewEngine(DefaultSnapConfig())
	room := testRoom()
	dims := testDims()

	// a is flush against the left wall at rotation 90. The dragged item
	// approaches a's open side at rotation 0, too far from any wall for a
	// wall snap of its own, and inherits a's orientation.
	a := testCabinet("a", 297.5, 1500, 90)
	b := testCabinet("b", 0, 0, 0)

	res := e.CalculateSnapPosition(880, 1520, b, []scene.PlacedItem{a, b}, room, 50, dims, false)

	assert.Equal(t, SnapCabinet, res.SnappedTo)
	assert.Equal(t, "a", res.SnappedItemID)
	assert.Equal(t, 90.0, res.Rotation)
}
