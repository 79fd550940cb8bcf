package collab

import (
	"encoding/json"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/planora/planora/backend-go/internal/placement"
	"github.com/planora/planora/backend-go/internal/scene"
	"github.com/planora/planora/backend-go/internal/typeid"
)

// DesignState holds the authoritative design document for a room. Every
// mutation goes through ApplyOperation under the lock; item placement is
// re-run through the snapping engine so the stored document always satisfies
// the placement invariants regardless of what a client sent.
type DesignState struct {
	mu        sync.RWMutex
	design    *scene.Design
	engine    *placement.Engine
	serverSeq int64
	opLog     []Operation
	dirty     bool
}

func NewDesignState(design *scene.Design, engine *placement.Engine) *DesignState {
	return &DesignState{
		design: design,
		engine: engine,
		opLog:  make([]Operation, 0),
	}
}

// GetDesign returns the current design. Callers must not mutate it.
func (ds *DesignState) GetDesign() *scene.Design {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.design
}

// Dirty reports whether the document changed since the last save.
func (ds *DesignState) Dirty() bool {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.dirty
}

// MarkSaved clears the dirty flag after a successful snapshot write.
func (ds *DesignState) MarkSaved() {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.dirty = false
}

// ApplyOperation applies an operation and returns the server sequence plus
// the snap result for operations that ran the placement engine.
func (ds *DesignState) ApplyOperation(op *Operation) (int64, error) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	if err := ds.applyOperationLocked(op); err != nil {
		return 0, err
	}

	// Offline-queued ops can arrive without an id; the log and the ack
	// still need one.
	if op.ID == "" {
		op.ID = typeid.NewOpID()
	}

	ds.serverSeq++
	ds.dirty = true
	ds.opLog = append(ds.opLog, *op)

	return ds.serverSeq, nil
}

func (ds *DesignState) applyOperationLocked(op *Operation) error {
	switch op.Type {
	case OpItemAdd:
		return ds.applyItemAdd(op)
	case OpItemMove:
		return ds.applyItemMove(op)
	case OpItemRotate:
		return ds.applyItemRotate(op)
	case OpItemDuplicate:
		return ds.applyItemDuplicate(op)
	case OpItemRemove:
		return ds.applyItemRemove(op)
	case OpRoomUpdate:
		return ds.applyRoomUpdate(op)
	case OpGlobalsUpdate:
		return ds.applyGlobalsUpdate(op)
	case OpDesignRename:
		return ds.applyDesignRename(op)
	default:
		return fmt.Errorf("unknown operation type: %s", op.Type)
	}
}

func (ds *DesignState) applyItemAdd(op *Operation) error {
	var item scene.PlacedItem
	if err := json.Unmarshal(op.Item, &item); err != nil {
		return fmt.Errorf("invalid item: %w", err)
	}
	if item.Width <= 0 || item.Depth <= 0 || item.Height <= 0 {
		return fmt.Errorf("item has non-positive dimensions")
	}
	if item.InstanceID == "" {
		item.InstanceID = typeid.NewItemID()
	}
	if _, exists := ds.design.Items[item.InstanceID]; exists {
		return fmt.Errorf("item already exists: %s", item.InstanceID)
	}
	item.Rotation = scene.NormalizeRotation(item.Rotation)

	// Drop the new item through the engine so it lands snapped and
	// collision-free.
	snap := ds.snapLocked(item, item.X, item.Z, false)
	item.X = snap.X
	item.Z = snap.Z
	item.Rotation = snap.Rotation

	ds.design.Items[item.InstanceID] = item
	op.ItemID = item.InstanceID
	op.Snap = marshalSnap(snap)
	return nil
}

func (ds *DesignState) applyItemMove(op *Operation) error {
	item, ok := ds.design.Items[op.ItemID]
	if !ok {
		return fmt.Errorf("item not found: %s", op.ItemID)
	}
	if op.X == nil || op.Z == nil {
		return fmt.Errorf("move requires x and z")
	}

	snap := ds.snapLocked(item, *op.X, *op.Z, op.WallSnapped)
	item.X = snap.X
	item.Z = snap.Z
	item.Rotation = snap.Rotation

	ds.design.Items[op.ItemID] = item
	op.Snap = marshalSnap(snap)
	return nil
}

func (ds *DesignState) applyItemRotate(op *Operation) error {
	item, ok := ds.design.Items[op.ItemID]
	if !ok {
		return fmt.Errorf("item not found: %s", op.ItemID)
	}
	if op.Rotation == nil {
		return fmt.Errorf("rotate requires rotation")
	}

	rot := scene.NormalizeRotation(*op.Rotation)
	if math.Mod(rot, 90) != 0 {
		return fmt.Errorf("rotation must be a multiple of 90, got %v", *op.Rotation)
	}
	item.Rotation = rot

	// Re-run placement at the same cursor position: the rotated footprint
	// may now poke through a wall or a neighbor.
	snap := ds.snapLocked(item, item.X, item.Z, op.WallSnapped)
	item.X = snap.X
	item.Z = snap.Z
	item.Rotation = snap.Rotation

	ds.design.Items[op.ItemID] = item
	op.Snap = marshalSnap(snap)
	return nil
}

func (ds *DesignState) applyItemDuplicate(op *Operation) error {
	src, ok := ds.design.Items[op.ItemID]
	if !ok {
		return fmt.Errorf("item not found: %s", op.ItemID)
	}

	clone := src
	if op.NewInstanceID != "" {
		clone.InstanceID = op.NewInstanceID
	} else {
		clone.InstanceID = typeid.NewItemID()
	}
	if _, exists := ds.design.Items[clone.InstanceID]; exists {
		return fmt.Errorf("item already exists: %s", clone.InstanceID)
	}

	// Offset one footprint to the right and let the engine settle it.
	effW, _ := placement.EffectiveDimensions(src)
	snap := ds.snapLocked(clone, src.X+effW, src.Z, false)
	clone.X = snap.X
	clone.Z = snap.Z
	clone.Rotation = snap.Rotation

	ds.design.Items[clone.InstanceID] = clone
	op.NewInstanceID = clone.InstanceID
	op.Snap = marshalSnap(snap)
	return nil
}

func (ds *DesignState) applyItemRemove(op *Operation) error {
	if _, ok := ds.design.Items[op.ItemID]; !ok {
		return fmt.Errorf("item not found: %s", op.ItemID)
	}
	delete(ds.design.Items, op.ItemID)
	return nil
}

func (ds *DesignState) applyRoomUpdate(op *Operation) error {
	var changes map[string]interface{}
	if err := json.Unmarshal(op.Changes, &changes); err != nil {
		return fmt.Errorf("invalid room changes: %w", err)
	}

	room := ds.design.Room
	if v, ok := changes["width"].(float64); ok && v > 0 {
		room.Width = v
	}
	if v, ok := changes["depth"].(float64); ok && v > 0 {
		room.Depth = v
	}
	if v, ok := changes["height"].(float64); ok && v > 0 {
		room.Height = v
	}
	if v, ok := changes["shape"].(string); ok {
		room.Shape = scene.RoomShape(v)
	}
	ds.design.Room = room

	// A shrunk room can strand items outside the walls; settle every
	// collidable item back in bounds.
	for id, item := range ds.design.Items {
		if !item.ItemType.Collidable() {
			continue
		}
		snap := ds.snapLocked(item, item.X, item.Z, false)
		item.X = snap.X
		item.Z = snap.Z
		item.Rotation = snap.Rotation
		ds.design.Items[id] = item
	}
	return nil
}

func (ds *DesignState) applyGlobalsUpdate(op *Operation) error {
	var changes map[string]float64
	if err := json.Unmarshal(op.Changes, &changes); err != nil {
		return fmt.Errorf("invalid globals changes: %w", err)
	}

	g := ds.design.Globals
	if v, ok := changes["wallGap"]; ok && v >= 0 {
		g.WallGap = v
	}
	if v, ok := changes["gridStep"]; ok && v > 0 {
		g.GridStep = v
	}
	if v, ok := changes["baseDepth"]; ok && v > 0 {
		g.BaseDepth = v
	}
	if v, ok := changes["baseHeight"]; ok && v > 0 {
		g.BaseHeight = v
	}
	if v, ok := changes["wallCabDepth"]; ok && v > 0 {
		g.WallCabDepth = v
	}
	if v, ok := changes["counterHeight"]; ok && v > 0 {
		g.CounterHeight = v
	}
	ds.design.Globals = g
	return nil
}

func (ds *DesignState) applyDesignRename(op *Operation) error {
	if op.Name == "" {
		return fmt.Errorf("name is required")
	}
	op.PreviousName = ds.design.Project.Name
	ds.design.Project.Name = op.Name
	return nil
}

// snapLocked runs the placement engine against the current document. The
// dragged item itself is excluded by instance id inside the engine.
func (ds *DesignState) snapLocked(item scene.PlacedItem, rawX, rawZ float64, wallSnapped bool) placement.SnapResult {
	items := make([]scene.PlacedItem, 0, len(ds.design.Items))
	for _, it := range ds.design.Items {
		items = append(items, it)
	}
	return ds.engine.CalculateSnapPosition(
		rawX, rawZ,
		item,
		items,
		ds.design.Room,
		ds.design.Globals.GridStep,
		ds.design.Globals,
		wallSnapped,
	)
}

func marshalSnap(snap placement.SnapResult) json.RawMessage {
	data, _ := json.Marshal(snap)
	return data
}

// GetServerTimestamp returns the current server timestamp
func GetServerTimestamp() int64 {
	return time.Now().UnixMilli()
}
