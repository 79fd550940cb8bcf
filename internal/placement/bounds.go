package placement

import (
	"github.com/planora/planora/backend-go/internal/scene"
)

// BoundingBox is an item's axis-aligned plan-view footprint in millimeters.
// Left/Right bound the X axis, Back/Front the Z axis.
type BoundingBox struct {
	Left    float64 `json:"left"`
	Right   float64 `json:"right"`
	Back    float64 `json:"back"`
	Front   float64 `json:"front"`
	CenterX float64 `json:"centerX"`
	CenterZ float64 `json:"centerZ"`
}

// EffectiveDimensions returns the item's footprint width and depth after
// rotation. At 90/270 the raw width and depth swap axes; the center stays
// fixed. Must be applied before any bounds computation.
func EffectiveDimensions(item scene.PlacedItem) (width, depth float64) {
	rot := scene.NormalizeRotation(item.Rotation)
	if rot == 90 || rot == 270 {
		return item.Depth, item.Width
	}
	return item.Width, item.Depth
}

// RotatedBounds returns the item's bounding box at its stored position.
func RotatedBounds(item scene.PlacedItem) BoundingBox {
	return RotatedBoundsAt(item, item.X, item.Z)
}

// RotatedBoundsAt returns the bounding box the item would have if its center
// were at (x, z), keeping its current rotation.
func RotatedBoundsAt(item scene.PlacedItem, x, z float64) BoundingBox {
	w, d := EffectiveDimensions(item)
	return BoundingBox{
		Left:    x - w/2,
		Right:   x + w/2,
		Back:    z - d/2,
		Front:   z + d/2,
		CenterX: x,
		CenterZ: z,
	}
}

// Overlaps reports whether two boxes overlap on both axes. The test is
// exact: edge-touching boxes do not overlap, so flush-snapped neighbors
// never count as colliding.
func Overlaps(a, b BoundingBox) bool {
	return a.Left < b.Right && a.Right > b.Left &&
		a.Back < b.Front && a.Front > b.Back
}

// CheckCollision reports whether the rotated bounding boxes of two items
// overlap.
func CheckCollision(a, b scene.PlacedItem) bool {
	return Overlaps(RotatedBounds(a), RotatedBounds(b))
}
