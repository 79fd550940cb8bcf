package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora/planora/backend-go/internal/scene"
)

func testRoom() scene.Room {
	return scene.Room{Width: 4000, Depth: 3000, Height: 2400, Shape: scene.RoomShapeRectangular}
}

func testDims() scene.GlobalDimensions {
	d := scene.DefaultGlobals()
	d.WallGap = 10
	return d
}

func TestWallDistancesSortedAndEdgeBased(t *testing.T) {
	e := NewEngine(DefaultSnapConfig())
	item := testCabinet("a", 0, 0, 0)

	walls := e.WallDistances(500, 400, item, testRoom(), testDims())
	require.Len(t, walls, 4)

	assert.Equal(t, WallBack, walls[0].Wall)
	assert.InDelta(t, 112.5, walls[0].Distance, 1e-9) // 400 - 575/2
	assert.Equal(t, WallLeft, walls[1].Wall)
	assert.InDelta(t, 200.0, walls[1].Distance, 1e-9) // 500 - 600/2
	assert.Equal(t, WallFront, walls[2].Wall)
	assert.Equal(t, WallRight, walls[3].Wall)

	for i := 1; i < len(walls); i++ {
		assert.GreaterOrEqual(t, walls[i].Distance, walls[i-1].Distance)
	}
}

func TestWallDistancesRotationAware(t *testing.T) {
	e := NewEngine(DefaultSnapConfig())
	item := testCabinet("a", 0, 0, 90) // footprint 575 wide, 600 deep

	walls := e.WallDistances(2000, 350, item, testRoom(), testDims())
	assert.Equal(t, WallBack, walls[0].Wall)
	assert.InDelta(t, 50.0, walls[0].Distance, 1e-9) // 350 - 600/2
}

func TestWallDistancesSnapPoseUsesRawDepth(t *testing.T) {
	e := NewEngine(DefaultSnapConfig())
	item := testCabinet("a", 0, 0, 90)

	walls := e.WallDistances(2000, 1500, item, testRoom(), testDims())
	for _, w := range walls {
		switch w.Wall {
		case WallBack:
			assert.Equal(t, 0.0, w.Rotation)
			assert.InDelta(t, 297.5, w.SnapZ, 1e-9) // 575/2 + 10 after re-rotation
		case WallLeft:
			assert.Equal(t, 90.0, w.Rotation)
			assert.InDelta(t, 297.5, w.SnapX, 1e-9)
		case WallRight:
			assert.Equal(t, 270.0, w.Rotation)
			assert.InDelta(t, 3702.5, w.SnapX, 1e-9)
		case WallFront:
			assert.Equal(t, 180.0, w.Rotation)
			assert.InDelta(t, 2702.5, w.SnapZ, 1e-9)
		}
	}
}

func TestDetectCornerAllFour(t *testing.T) {
	e := NewEngine(DefaultSnapConfig())
	item := testCabinet("a", 0, 0, 0)
	room := testRoom()
	dims := testDims()

	cases := []struct {
		name    string
		x, z    float64
		corner  Corner
		wantX   float64
		wantZ   float64
		wantRot float64
	}{
		{"back-left", 250, 250, CornerBackLeft, 310, 297.5, 0},
		{"back-right", 3750, 250, CornerBackRight, 3690, 297.5, 0},
		{"front-left", 250, 2750, CornerFrontLeft, 310, 2702.5, 180},
		{"front-right", 3750, 2750, CornerFrontRight, 3690, 2702.5, 180},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pose := e.DetectCorner(tc.x, tc.z, item, room, dims)
			require.NotNil(t, pose)
			assert.Equal(t, tc.corner, pose.Corner)
			assert.InDelta(t, tc.wantX, pose.X, 1e-9)
			assert.InDelta(t, tc.wantZ, pose.Z, 1e-9)
			assert.Equal(t, tc.wantRot, pose.Rotation)
		})
	}
}

func TestDetectCornerSingleWallIsNil(t *testing.T) {
	e := NewEngine(DefaultSnapConfig())
	item := testCabinet("a", 0, 0, 0)

	pose := e.DetectCorner(2000, 300, item, testRoom(), testDims())
	assert.Nil(t, pose)
}

func TestDetectCornerParallelWallsIsNil(t *testing.T) {
	e := NewEngine(DefaultSnapConfig())
	item := testCabinet("a", 0, 0, 0)
	narrow := scene.Room{Width: 4000, Depth: 700, Height: 2400, Shape: scene.RoomShapeRectangular}

	// Back and front walls are both within threshold but parallel.
	pose := e.DetectCorner(2000, 350, item, narrow, testDims())
	assert.Nil(t, pose)
}

func TestFindWallSnapHysteresis(t *testing.T) {
	e := NewEngine(DefaultSnapConfig())
	item := testCabinet("a", 0, 0, 0)
	room := testRoom()
	dims := testDims()

	// 300mm edge distance sits between the 200mm engage and 350mm release
	// thresholds.
	z := 575.0/2 + 300

	snapped := e.FindWallSnap(2000, z, item, room, dims, true)
	require.NotNil(t, snapped, "already-snapped item must hold its snap at 300mm")
	assert.Equal(t, WallBack, snapped.Wall)

	unsnapped := e.FindWallSnap(2000, z, item, room, dims, false)
	assert.Nil(t, unsnapped, "unsnapped item must not engage at 300mm")
}

func TestFindWallSnapEngages(t *testing.T) {
	e := NewEngine(DefaultSnapConfig())
	item := testCabinet("a", 0, 0, 0)

	snap := e.FindWallSnap(2000, 575.0/2+150, item, testRoom(), testDims(), false)
	require.NotNil(t, snap)
	assert.Equal(t, WallBack, snap.Wall)
	assert.Equal(t, 0.0, snap.Rotation)
	assert.InDelta(t, 297.5, snap.SnapZ, 1e-9)
}
