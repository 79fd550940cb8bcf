package placement

import (
	"sort"

	"github.com/planora/planora/backend-go/internal/scene"
)

// WallID names one of the four implicit room walls.
type WallID string

const (
	WallBack  WallID = "back"
	WallFront WallID = "front"
	WallLeft  WallID = "left"
	WallRight WallID = "right"
)

// Rotation returns the canonical rotation a cabinet takes when its back is
// flush against this wall, facing into the room.
func (w WallID) Rotation() float64 {
	switch w {
	case WallBack:
		return 0
	case WallFront:
		return 180
	case WallLeft:
		return 90
	case WallRight:
		return 270
	}
	return 0
}

// WallInfo describes one wall's proximity for a candidate position, along
// with the pose the item would take if snapped to it: the item's raw depth
// faces the wall after rotating to the wall's canonical orientation.
type WallInfo struct {
	Wall     WallID  `json:"wallId"`
	Distance float64 `json:"distance"`
	Rotation float64 `json:"rotation"`
	SnapX    float64 `json:"snapX"`
	SnapZ    float64 `json:"snapZ"`
}

// WallDistances computes, for an item centered at (x, z) at its current
// rotation, the distance from its nearest edge to each wall surface, sorted
// ascending. Edge-based distance means two cabinets of different depths
// trigger a wall snap at the same visual gap. An edge past the wall surface
// counts as distance zero.
func (e *Engine) WallDistances(x, z float64, item scene.PlacedItem, room scene.Room, dims scene.GlobalDimensions) []WallInfo {
	bb := RotatedBoundsAt(item, x, z)
	gap := dims.WallGap

	infos := []WallInfo{
		{
			Wall:     WallBack,
			Distance: clampMin(bb.Back, 0),
			Rotation: WallBack.Rotation(),
			SnapX:    x,
			SnapZ:    item.Depth/2 + gap,
		},
		{
			Wall:     WallFront,
			Distance: clampMin(room.Depth-bb.Front, 0),
			Rotation: WallFront.Rotation(),
			SnapX:    x,
			SnapZ:    room.Depth - item.Depth/2 - gap,
		},
		{
			Wall:     WallLeft,
			Distance: clampMin(bb.Left, 0),
			Rotation: WallLeft.Rotation(),
			SnapX:    item.Depth/2 + gap,
			SnapZ:    z,
		},
		{
			Wall:     WallRight,
			Distance: clampMin(room.Width-bb.Right, 0),
			Rotation: WallRight.Rotation(),
			SnapX:    room.Width - item.Depth/2 - gap,
			SnapZ:    z,
		},
	}

	sort.SliceStable(infos, func(i, j int) bool {
		return infos[i].Distance < infos[j].Distance
	})
	return infos
}

// Corner names one of the four room corners.
type Corner string

const (
	CornerBackLeft   Corner = "back-left"
	CornerBackRight  Corner = "back-right"
	CornerFrontLeft  Corner = "front-left"
	CornerFrontRight Corner = "front-right"
)

// CornerPose is the fixed position and rotation assigned when an item is
// detected near two perpendicular walls at once.
type CornerPose struct {
	Corner   Corner  `json:"corner"`
	X        float64 `json:"x"`
	Z        float64 `json:"z"`
	Rotation float64 `json:"rotation"`
}

// DetectCorner returns the corner pose for (x, z), or nil when the two
// nearest walls are not both within the corner threshold or are parallel.
// Corner cabinets always face into the room along the Z axis: rotation 0 in
// back corners, 180 in front corners, never 90/270.
//
// The rule set assumes a rectangular footprint; see DESIGN.md for the
// L-shaped room question.
func (e *Engine) DetectCorner(x, z float64, item scene.PlacedItem, room scene.Room, dims scene.GlobalDimensions) *CornerPose {
	walls := e.WallDistances(x, z, item, room, dims)
	a, b := walls[0], walls[1]

	if a.Distance > e.cfg.CornerSnapThreshold || b.Distance > e.cfg.CornerSnapThreshold {
		return nil
	}

	horizontal, vertical := a.Wall, b.Wall
	if isVertical(horizontal) {
		horizontal, vertical = vertical, horizontal
	}
	if isVertical(horizontal) || !isVertical(vertical) {
		return nil // two parallel walls, not a corner
	}

	gap := dims.WallGap
	pose := &CornerPose{}

	switch {
	case horizontal == WallBack && vertical == WallLeft:
		pose.Corner = CornerBackLeft
		pose.X = item.Width/2 + gap
		pose.Z = item.Depth/2 + gap
		pose.Rotation = 0
	case horizontal == WallBack && vertical == WallRight:
		pose.Corner = CornerBackRight
		pose.X = room.Width - item.Width/2 - gap
		pose.Z = item.Depth/2 + gap
		pose.Rotation = 0
	case horizontal == WallFront && vertical == WallLeft:
		pose.Corner = CornerFrontLeft
		pose.X = item.Width/2 + gap
		pose.Z = room.Depth - item.Depth/2 - gap
		pose.Rotation = 180
	default: // front-right
		pose.Corner = CornerFrontRight
		pose.X = room.Width - item.Width/2 - gap
		pose.Z = room.Depth - item.Depth/2 - gap
		pose.Rotation = 180
	}

	return pose
}

// FindWallSnap returns the nearest wall when it is close enough to snap to,
// or nil. currentlySnapped selects the larger release threshold so an item
// that is already wall-snapped holds its snap until it moves clearly away.
func (e *Engine) FindWallSnap(x, z float64, item scene.PlacedItem, room scene.Room, dims scene.GlobalDimensions, currentlySnapped bool) *WallInfo {
	walls := e.WallDistances(x, z, item, room, dims)
	nearest := walls[0]

	threshold := e.cfg.WallSnapThreshold
	if currentlySnapped {
		threshold = e.cfg.WallReleaseThreshold
	}

	if nearest.Distance > threshold {
		return nil
	}
	return &nearest
}

func isVertical(w WallID) bool {
	return w == WallLeft || w == WallRight
}

func clampMin(v, floor float64) float64 {
	if v < floor {
		return floor
	}
	return v
}
