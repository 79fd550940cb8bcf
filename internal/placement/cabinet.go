package placement

import (
	"sort"

	"github.com/planora/planora/backend-go/internal/scene"
)

// SnapEdge names the edge of the dragged item that makes contact.
type SnapEdge string

const (
	SnapEdgeLeft  SnapEdge = "left"
	SnapEdgeRight SnapEdge = "right"
	SnapEdgeBack  SnapEdge = "back"
	SnapEdgeFront SnapEdge = "front"
)

// Candidate priorities, highest first. Two cabinets in the same wall run
// (same rotation, backs flush to the same wall) must snap together in
// preference to an accidental edge proximity from an unrelated cabinet.
const (
	prioritySameRunAligned = 4 // same orientation, back/primary aligned
	prioritySameRotation   = 3
	priorityAligned        = 2
	priorityProximity      = 1
)

// CabinetSnapPoint is one flush-contact candidate against another item.
// X/Z is the dragged item's center if this point is applied; Distance is the
// edge gap that triggered the match.
type CabinetSnapPoint struct {
	X        float64  `json:"x"`
	Z        float64  `json:"z"`
	Edge     SnapEdge `json:"edge"`
	TargetID string   `json:"targetId"`
	Distance float64  `json:"distance"`
	AlignedZ bool     `json:"alignedZ"`
	AlignedX bool     `json:"alignedX"`
	Priority int      `json:"priority"`
}

// FindCabinetSnapPoints scans every other collidable item and produces a
// ranked list of flush-contact candidates for the dragged item centered at
// (x, z). Each neighbor yields up to four directional matches; the snap
// position is exactly flush on the contact axis, and snaps the perpendicular
// axis to the neighbor's back edge, front edge, or center line when one of
// those is within tolerance. Results sort by priority descending, then gap
// ascending; exact ties keep scan order.
func (e *Engine) FindCabinetSnapPoints(dragged scene.PlacedItem, x, z float64, items []scene.PlacedItem) []CabinetSnapPoint {
	effW, effD := EffectiveDimensions(dragged)
	db := RotatedBoundsAt(dragged, x, z)
	dragRot := scene.NormalizeRotation(dragged.Rotation)

	var points []CabinetSnapPoint
	for _, other := range items {
		if other.InstanceID == dragged.InstanceID || !other.ItemType.Collidable() {
			continue
		}

		ob := RotatedBounds(other)
		sameRot := scene.NormalizeRotation(other.Rotation) == dragRot

		// Side contact: dragged left edge against the neighbor's right edge.
		if gap := abs(db.Left - ob.Right); gap <= e.cfg.CabinetSnapThreshold {
			pt := CabinetSnapPoint{
				X:        ob.Right + effW/2,
				Z:        z,
				Edge:     SnapEdgeLeft,
				TargetID: other.InstanceID,
				Distance: gap,
			}
			e.alignSideContact(&pt, db, ob, z, effD, sameRot)
			points = append(points, pt)
		}

		// Side contact: dragged right edge against the neighbor's left edge.
		if gap := abs(ob.Left - db.Right); gap <= e.cfg.CabinetSnapThreshold {
			pt := CabinetSnapPoint{
				X:        ob.Left - effW/2,
				Z:        z,
				Edge:     SnapEdgeRight,
				TargetID: other.InstanceID,
				Distance: gap,
			}
			e.alignSideContact(&pt, db, ob, z, effD, sameRot)
			points = append(points, pt)
		}

		// Depth contact: dragged back edge against the neighbor's front edge.
		if gap := abs(db.Back - ob.Front); gap <= e.cfg.CabinetSnapThreshold {
			pt := CabinetSnapPoint{
				X:        x,
				Z:        ob.Front + effD/2,
				Edge:     SnapEdgeBack,
				TargetID: other.InstanceID,
				Distance: gap,
			}
			e.alignDepthContact(&pt, db, ob, x, effW, sameRot)
			points = append(points, pt)
		}

		// Depth contact: dragged front edge against the neighbor's back edge.
		if gap := abs(ob.Back - db.Front); gap <= e.cfg.CabinetSnapThreshold {
			pt := CabinetSnapPoint{
				X:        x,
				Z:        ob.Back - effD/2,
				Edge:     SnapEdgeFront,
				TargetID: other.InstanceID,
				Distance: gap,
			}
			e.alignDepthContact(&pt, db, ob, x, effW, sameRot)
			points = append(points, pt)
		}
	}

	sort.SliceStable(points, func(i, j int) bool {
		if points[i].Priority != points[j].Priority {
			return points[i].Priority > points[j].Priority
		}
		return points[i].Distance < points[j].Distance
	})
	return points
}

// alignSideContact resolves the Z axis for a left/right contact: back edge
// first (tight threshold, wall-run case), then front edge, then center. If
// nothing lines up the dragged item keeps its unsnapped Z.
func (e *Engine) alignSideContact(pt *CabinetSnapPoint, db, ob BoundingBox, z, effD float64, sameRot bool) {
	backAligned := false
	switch {
	case abs(db.Back-ob.Back) <= e.cfg.BackAlignThreshold:
		pt.Z = ob.Back + effD/2
		pt.AlignedZ = true
		backAligned = true
	case abs(db.Front-ob.Front) <= e.cfg.CabinetAlignThreshold:
		pt.Z = ob.Front - effD/2
		pt.AlignedZ = true
	case abs(z-ob.CenterZ) <= e.cfg.CabinetAlignThreshold:
		pt.Z = ob.CenterZ
		pt.AlignedZ = true
	}
	pt.Priority = rankCandidate(sameRot, backAligned, pt.AlignedZ)
}

// alignDepthContact resolves the X axis for a back/front contact: left edge
// first (tight threshold, side-wall run), then right edge, then center.
func (e *Engine) alignDepthContact(pt *CabinetSnapPoint, db, ob BoundingBox, x, effW float64, sameRot bool) {
	edgeAligned := false
	switch {
	case abs(db.Left-ob.Left) <= e.cfg.BackAlignThreshold:
		pt.X = ob.Left + effW/2
		pt.AlignedX = true
		edgeAligned = true
	case abs(db.Right-ob.Right) <= e.cfg.CabinetAlignThreshold:
		pt.X = ob.Right - effW/2
		pt.AlignedX = true
	case abs(x-ob.CenterX) <= e.cfg.CabinetAlignThreshold:
		pt.X = ob.CenterX
		pt.AlignedX = true
	}
	pt.Priority = rankCandidate(sameRot, edgeAligned, pt.AlignedX)
}

func rankCandidate(sameRot, primaryAligned, anyAligned bool) int {
	switch {
	case sameRot && primaryAligned:
		return prioritySameRunAligned
	case sameRot:
		return prioritySameRotation
	case anyAligned:
		return priorityAligned
	default:
		return priorityProximity
	}
}

// WallRunCabinets returns the items currently oriented flush against the
// given wall: canonical rotation for that wall and back edge within the
// back-align tolerance of the wall surface.
func (e *Engine) WallRunCabinets(wall WallID, items []scene.PlacedItem, room scene.Room, dims scene.GlobalDimensions) []scene.PlacedItem {
	var run []scene.PlacedItem
	for _, item := range items {
		if !item.ItemType.Collidable() {
			continue
		}
		if scene.NormalizeRotation(item.Rotation) != wall.Rotation() {
			continue
		}
		if e.wallEdgeDistance(wall, item, room) <= dims.WallGap+e.cfg.BackAlignThreshold {
			run = append(run, item)
		}
	}
	return run
}

// InheritRotation reports the rotation a newly snapped neighbor should take
// from target: if target is flush against a wall at that wall's canonical
// rotation, its orientation propagates down the run.
func (e *Engine) InheritRotation(target scene.PlacedItem, room scene.Room, dims scene.GlobalDimensions) (float64, bool) {
	rot := scene.NormalizeRotation(target.Rotation)
	for _, wall := range []WallID{WallBack, WallFront, WallLeft, WallRight} {
		if wall.Rotation() != rot {
			continue
		}
		if e.wallEdgeDistance(wall, target, room) <= dims.WallGap+e.cfg.BackAlignThreshold {
			return rot, true
		}
	}
	return 0, false
}

// wallEdgeDistance is the distance from the item's wall-facing edge to the
// wall surface, assuming the item already has the wall's canonical rotation.
func (e *Engine) wallEdgeDistance(wall WallID, item scene.PlacedItem, room scene.Room) float64 {
	bb := RotatedBounds(item)
	switch wall {
	case WallBack:
		return abs(bb.Back)
	case WallFront:
		return abs(room.Depth - bb.Front)
	case WallLeft:
		return abs(bb.Left)
	default:
		return abs(room.Width - bb.Right)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
