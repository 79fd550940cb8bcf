package collab

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora/planora/backend-go/internal/placement"
	"github.com/planora/planora/backend-go/internal/scene"
)

func newTestState(t *testing.T) *DesignState {
	t.Helper()
	design := scene.NewEmptyDesign("dsgn_test", "Test Kitchen")
	design.Items["a"] = scene.PlacedItem{
		InstanceID: "a",
		ItemType:   scene.ItemTypeCabinet,
		Width:      600, Height: 720, Depth: 575,
		X: 310, Y: 360, Z: 297.5,
		Rotation: 0,
	}
	design.Items["b"] = scene.PlacedItem{
		InstanceID: "b",
		ItemType:   scene.ItemTypeCabinet,
		Width:      600, Height: 720, Depth: 575,
		X: 2000, Y: 360, Z: 1500,
		Rotation: 0,
	}
	return NewDesignState(design, placement.NewEngine(placement.DefaultSnapConfig()))
}

func floatPtr(v float64) *float64 { return &v }

func TestApplyItemMoveRunsEngine(t *testing.T) {
	ds := newTestState(t)

	op := &Operation{
		ID:     "op_1",
		Type:   OpItemMove,
		ItemID: "b",
		X:      floatPtr(920),
		Z:      floatPtr(300),
	}
	seq, err := ds.ApplyOperation(op)
	require.NoError(t, err)
	assert.Equal(t, int64(1), seq)

	// The raw drag position is corrected to flush contact against "a".
	moved := ds.GetDesign().Items["b"]
	assert.InDelta(t, 910.0, moved.X, 1e-9)
	assert.InDelta(t, 297.5, moved.Z, 1e-9)

	var snap placement.SnapResult
	require.NoError(t, json.Unmarshal(op.Snap, &snap))
	assert.Equal(t, placement.SnapCabinet, snap.SnappedTo)
	assert.Equal(t, "a", snap.SnappedItemID)
}

func TestApplyItemMoveUnknownItem(t *testing.T) {
	ds := newTestState(t)

	op := &Operation{Type: OpItemMove, ItemID: "ghost", X: floatPtr(1), Z: floatPtr(1)}
	_, err := ds.ApplyOperation(op)
	assert.Error(t, err)
	assert.False(t, ds.Dirty())
}

func TestApplyItemAddSnapsAndAssignsID(t *testing.T) {
	ds := newTestState(t)

	itemJSON, _ := json.Marshal(scene.PlacedItem{
		DefinitionID: "cab_base_600",
		ItemType:     scene.ItemTypeCabinet,
		Width:        600, Height: 720, Depth: 575,
		X: 3000, Z: 50,
	})
	op := &Operation{Type: OpItemAdd, Item: itemJSON}
	_, err := ds.ApplyOperation(op)
	require.NoError(t, err)
	require.NotEmpty(t, op.ItemID)

	added, ok := ds.GetDesign().Items[op.ItemID]
	require.True(t, ok)
	assert.InDelta(t, 297.5, added.Z, 1e-9, "new item lands wall-snapped")
}

func TestApplyItemAddRejectsBadDimensions(t *testing.T) {
	ds := newTestState(t)

	itemJSON, _ := json.Marshal(scene.PlacedItem{ItemType: scene.ItemTypeCabinet, Width: 0, Height: 720, Depth: 575})
	op := &Operation{Type: OpItemAdd, Item: itemJSON}
	_, err := ds.ApplyOperation(op)
	assert.Error(t, err)
}

func TestApplyItemRotateRejectsNonCardinal(t *testing.T) {
	ds := newTestState(t)

	op := &Operation{Type: OpItemRotate, ItemID: "b", Rotation: floatPtr(45)}
	_, err := ds.ApplyOperation(op)
	assert.Error(t, err)

	op = &Operation{Type: OpItemRotate, ItemID: "b", Rotation: floatPtr(270)}
	_, err = ds.ApplyOperation(op)
	require.NoError(t, err)
	assert.Equal(t, 270.0, ds.GetDesign().Items["b"].Rotation)
}

func TestApplyItemDuplicateLandsFlush(t *testing.T) {
	ds := newTestState(t)

	op := &Operation{Type: OpItemDuplicate, ItemID: "a"}
	_, err := ds.ApplyOperation(op)
	require.NoError(t, err)
	require.NotEmpty(t, op.NewInstanceID)

	clone := ds.GetDesign().Items[op.NewInstanceID]
	assert.InDelta(t, 910.0, clone.X, 1e-9, "duplicate settles flush beside the source")
	assert.InDelta(t, 297.5, clone.Z, 1e-9)
}

func TestApplyItemRemove(t *testing.T) {
	ds := newTestState(t)

	op := &Operation{Type: OpItemRemove, ItemID: "b"}
	_, err := ds.ApplyOperation(op)
	require.NoError(t, err)
	_, ok := ds.GetDesign().Items["b"]
	assert.False(t, ok)
}

func TestApplyOperationAssignsOpID(t *testing.T) {
	ds := newTestState(t)

	op := &Operation{Type: OpItemRemove, ItemID: "b"}
	_, err := ds.ApplyOperation(op)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(op.ID, "op_"), "server must mint an id for id-less ops, got %q", op.ID)

	op2 := &Operation{ID: "op_client_kept", Type: OpItemRemove, ItemID: "a"}
	_, err = ds.ApplyOperation(op2)
	require.NoError(t, err)
	assert.Equal(t, "op_client_kept", op2.ID)
}

func TestApplyRoomShrinkResettlesItems(t *testing.T) {
	ds := newTestState(t)

	changes, _ := json.Marshal(map[string]float64{"width": 2000})
	op := &Operation{Type: OpRoomUpdate, Changes: changes}
	_, err := ds.ApplyOperation(op)
	require.NoError(t, err)

	design := ds.GetDesign()
	assert.Equal(t, 2000.0, design.Room.Width)
	for id, item := range design.Items {
		bb := placement.RotatedBounds(item)
		assert.LessOrEqual(t, bb.Right, design.Room.Width-design.Globals.WallGap+1e-9, "item %s", id)
		assert.GreaterOrEqual(t, bb.Left, design.Globals.WallGap-1e-9, "item %s", id)
	}
}

func TestApplyDesignRename(t *testing.T) {
	ds := newTestState(t)

	op := &Operation{Type: OpDesignRename, Name: "Galley v2"}
	_, err := ds.ApplyOperation(op)
	require.NoError(t, err)
	assert.Equal(t, "Galley v2", ds.GetDesign().Project.Name)
	assert.Equal(t, "Test Kitchen", op.PreviousName)

	_, err = ds.ApplyOperation(&Operation{Type: OpDesignRename})
	assert.Error(t, err)
}
