package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/planora/planora/backend-go/internal/scene"
)

func testCabinet(id string, x, z, rotation float64) scene.PlacedItem {
	return scene.PlacedItem{
		InstanceID:   id,
		DefinitionID: "cab_base_600",
		Name:         "Base 600",
		ItemType:     scene.ItemTypeCabinet,
		Width:        600,
		Height:       720,
		Depth:        575,
		X:            x,
		Y:            360,
		Z:            z,
		Rotation:     rotation,
	}
}

func TestEffectiveDimensionsSwapsAt90(t *testing.T) {
	item := testCabinet("a", 0, 0, 90)
	w, d := EffectiveDimensions(item)
	assert.Equal(t, 575.0, w)
	assert.Equal(t, 600.0, d)
}

func TestEffectiveDimensionsPassthrough(t *testing.T) {
	for _, rot := range []float64{0, 180, 360, -180} {
		item := testCabinet("a", 0, 0, rot)
		w, d := EffectiveDimensions(item)
		assert.Equal(t, 600.0, w, "rotation %v", rot)
		assert.Equal(t, 575.0, d, "rotation %v", rot)
	}

	item := testCabinet("a", 0, 0, 270)
	w, d := EffectiveDimensions(item)
	assert.Equal(t, 575.0, w)
	assert.Equal(t, 600.0, d)
}

func TestRotatedBoundsCenterInvariant(t *testing.T) {
	item := testCabinet("a", 1000, 800, 90)
	bb := RotatedBounds(item)

	assert.Less(t, bb.Left, bb.Right)
	assert.Less(t, bb.Back, bb.Front)
	assert.InDelta(t, (bb.Left+bb.Right)/2, bb.CenterX, 1e-9)
	assert.InDelta(t, (bb.Back+bb.Front)/2, bb.CenterZ, 1e-9)

	// Rotation swaps the footprint axes but the center stays fixed.
	assert.InDelta(t, 1000-287.5, bb.Left, 1e-9)
	assert.InDelta(t, 800-300, bb.Back, 1e-9)
}

func TestOverlapsEdgeTouchIsNotCollision(t *testing.T) {
	a := testCabinet("a", 300, 287.5, 0)
	b := testCabinet("b", 900, 287.5, 0) // a.Right == 600 == b.Left

	assert.False(t, CheckCollision(a, b))

	b.X = 899 // one millimeter of overlap
	assert.True(t, CheckCollision(a, b))
}

func TestOverlapsRequiresBothAxes(t *testing.T) {
	a := testCabinet("a", 300, 300, 0)
	b := testCabinet("b", 350, 2000, 0) // overlapping in X, far apart in Z

	assert.False(t, CheckCollision(a, b))
}
