package placement

import (
	"math"

	"github.com/planora/planora/backend-go/internal/scene"
)

// SnapKind classifies what the final position snapped to.
type SnapKind string

const (
	SnapCorner  SnapKind = "corner"
	SnapWall    SnapKind = "wall"
	SnapCabinet SnapKind = "cabinet"
	SnapGrid    SnapKind = "grid"
)

// SnapResult is the corrected pose for a dragged item. The position always
// keeps the item's rotated bounding box inside the room minus the wall gap.
type SnapResult struct {
	X             float64  `json:"x"`
	Z             float64  `json:"z"`
	Rotation      float64  `json:"rotation"`
	SnappedTo     SnapKind `json:"snappedTo"`
	SnapEdge      SnapEdge `json:"snapEdge,omitempty"`
	SnappedItemID string   `json:"snappedItemId,omitempty"`
	Wall          WallID   `json:"wallId,omitempty"`
}

// CalculateSnapPosition turns a raw cursor position into a corrected pose.
// It is a total function: every input yields a valid in-bounds result, with
// plain grid snapping as the terminal fallback. Classification precedence is
// corner > wall > cabinet > grid; bounds clamping and collision push-back
// always run last.
//
// currentlyWallSnapped is the hysteresis flag the caller threads across
// drag frames; the engine itself holds no state between calls.
func (e *Engine) CalculateSnapPosition(rawX, rawZ float64, dragged scene.PlacedItem, items []scene.PlacedItem, room scene.Room, gridStep float64, dims scene.GlobalDimensions, currentlyWallSnapped bool) SnapResult {
	if gridStep <= 0 {
		gridStep = e.cfg.GridStep
	}

	// Grid pre-snap is the baseline everything else refines.
	x := math.Round(rawX/gridStep) * gridStep
	z := math.Round(rawZ/gridStep) * gridStep
	result := SnapResult{
		X:         x,
		Z:         z,
		Rotation:  scene.NormalizeRotation(dragged.Rotation),
		SnappedTo: SnapGrid,
	}

	// Corner snap is absolute: fixed pose, no cabinet refinement, no
	// collision pass. Corner cabinets have their own fixed geometry.
	if corner := e.DetectCorner(x, z, dragged, room, dims); corner != nil {
		result.X = corner.X
		result.Z = corner.Z
		result.Rotation = corner.Rotation
		result.SnappedTo = SnapCorner
		return result
	}

	// Wall snap fixes only the perpendicular axis; the item keeps sliding
	// along the wall at grid resolution.
	wallSnap := e.FindWallSnap(x, z, dragged, room, dims, currentlyWallSnapped)
	if wallSnap != nil {
		result.Rotation = wallSnap.Rotation
		result.SnappedTo = SnapWall
		result.Wall = wallSnap.Wall
		if isVertical(wallSnap.Wall) {
			result.X = wallSnap.SnapX
		} else {
			result.Z = wallSnap.SnapZ
		}
	}

	// Cabinet snap evaluates a hypothetical item at the post-wall pose.
	hypo := dragged
	hypo.Rotation = result.Rotation
	if points := e.FindCabinetSnapPoints(hypo, result.X, result.Z, items); len(points) > 0 {
		if wallSnap != nil {
			// Never break an active wall alignment: only a contact along
			// the axis parallel to the wall may refine the pose.
			if best, ok := parallelContact(points, wallSnap.Wall); ok {
				if isVertical(wallSnap.Wall) {
					result.Z = best.Z
				} else {
					result.X = best.X
				}
				result.SnappedTo = SnapCabinet
				result.SnapEdge = best.Edge
				result.SnappedItemID = best.TargetID
			}
		} else {
			best := points[0]
			result.X = best.X
			result.Z = best.Z
			result.SnappedTo = SnapCabinet
			result.SnapEdge = best.Edge
			result.SnappedItemID = best.TargetID
			// Propagate orientation down a wall run.
			if target, ok := findItem(items, best.TargetID); ok {
				if rot, inherit := e.InheritRotation(target, room, dims); inherit {
					result.Rotation = rot
				}
			}
		}
	}

	// Bounds clamp with the final rotation's effective dimensions.
	final := dragged
	final.Rotation = result.Rotation
	effW, effD := EffectiveDimensions(final)
	result.X = clampAxis(result.X, effW/2, dims.WallGap, room.Width)
	result.Z = clampAxis(result.Z, effD/2, dims.WallGap, room.Depth)

	// Single-pass collision push-back, then re-clamp so the bounds
	// invariant holds no matter what the push produced. One pass per
	// neighbor is enough for interactive placement; multi-way pile-ups
	// are resolved over subsequent drag frames.
	result.X, result.Z = e.resolveCollisions(final, result.X, result.Z, items)
	result.X = clampAxis(result.X, effW/2, dims.WallGap, room.Width)
	result.Z = clampAxis(result.Z, effD/2, dims.WallGap, room.Depth)

	return result
}

// resolveCollisions pushes the dragged item out of every overlapping
// neighbor by the smallest of the four axis penetrations plus the margin.
func (e *Engine) resolveCollisions(dragged scene.PlacedItem, x, z float64, items []scene.PlacedItem) (float64, float64) {
	for _, other := range items {
		if other.InstanceID == dragged.InstanceID || !other.ItemType.Collidable() {
			continue
		}

		db := RotatedBoundsAt(dragged, x, z)
		ob := RotatedBounds(other)
		if !Overlaps(db, ob) {
			continue
		}

		// Penetration depth for each push direction.
		pushLeft := db.Right - ob.Left
		pushRight := ob.Right - db.Left
		pushBack := db.Front - ob.Back
		pushFront := ob.Front - db.Back

		m := e.cfg.CollisionMargin
		smallest := pushLeft
		dx, dz := -(pushLeft + m), 0.0

		if pushRight < smallest {
			smallest = pushRight
			dx, dz = pushRight+m, 0
		}
		if pushBack < smallest {
			smallest = pushBack
			dx, dz = 0, -(pushBack + m)
		}
		if pushFront < smallest {
			dx, dz = 0, pushFront+m
		}

		x += dx
		z += dz
	}
	return x, z
}

// clampAxis keeps a center coordinate inside [half+gap, roomDim-half-gap].
// An item too large for the room settles at the room center.
func clampAxis(v, half, gap, roomDim float64) float64 {
	lo := half + gap
	hi := roomDim - half - gap
	if lo > hi {
		return roomDim / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// parallelContact returns the best-ranked candidate whose contact runs
// along the axis parallel to the given wall: side contacts for the back
// and front walls, depth contacts for the left and right walls.
func parallelContact(points []CabinetSnapPoint, wall WallID) (CabinetSnapPoint, bool) {
	for _, pt := range points {
		side := pt.Edge == SnapEdgeLeft || pt.Edge == SnapEdgeRight
		if side != isVertical(wall) {
			return pt, true
		}
	}
	return CabinetSnapPoint{}, false
}

func findItem(items []scene.PlacedItem, id string) (scene.PlacedItem, bool) {
	for _, it := range items {
		if it.InstanceID == id {
			return it, true
		}
	}
	return scene.PlacedItem{}, false
}
