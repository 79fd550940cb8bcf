package scene

// Design is the persisted unit of work: one kitchen layout with its room
// geometry, shared dimension settings, and every placed item.
type Design struct {
	Project Project               `json:"project"`
	Room    Room                  `json:"room"`
	Globals GlobalDimensions      `json:"globals"`
	Items   map[string]PlacedItem `json:"items"`
}

type Project struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Version   int    `json:"version"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type RoomShape string

const (
	RoomShapeRectangular RoomShape = "rectangular"
	// RoomShapeL is declared for forward compatibility with L-shaped rooms.
	// The placement detectors currently treat any room as its enclosing
	// rectangle; see DESIGN.md for the open question.
	RoomShapeL RoomShape = "l-shaped"
)

// Room is an axis-aligned rectangular footprint in millimeters. Walls are
// implicit: back at z=0, left at x=0, right at x=Width, front at z=Depth.
type Room struct {
	Width  float64   `json:"width"`
	Depth  float64   `json:"depth"`
	Height float64   `json:"height"`
	Shape  RoomShape `json:"shape"`
}

// GlobalDimensions is the shared configuration every placement call reads.
// All values are millimeters.
type GlobalDimensions struct {
	WallGap       float64 `json:"wallGap"`       // clearance kept between cabinet faces and walls
	GridStep      float64 `json:"gridStep"`      // grid resolution for free placement
	BaseDepth     float64 `json:"baseDepth"`     // default depth for base cabinets
	BaseHeight    float64 `json:"baseHeight"`    // default height for base cabinets
	WallCabDepth  float64 `json:"wallCabDepth"`  // default depth for wall cabinets
	CounterHeight float64 `json:"counterHeight"` // worktop surface height
}

// DefaultGlobals returns the stock dimension settings for a new design.
func DefaultGlobals() GlobalDimensions {
	return GlobalDimensions{
		WallGap:       10,
		GridStep:      50,
		BaseDepth:     575,
		BaseHeight:    720,
		WallCabDepth:  320,
		CounterHeight: 900,
	}
}

type ItemType string

const (
	ItemTypeCabinet   ItemType = "Cabinet"
	ItemTypeAppliance ItemType = "Appliance"
	ItemTypeDecor     ItemType = "Decor"
)

// Collidable reports whether items of this type take part in snapping and
// collision resolution. Decor is placed freely.
func (t ItemType) Collidable() bool {
	return t == ItemTypeCabinet || t == ItemTypeAppliance
}

// PlacedItem is one cabinet instance in the scene. Width, Height, and Depth
// are the raw un-rotated dimensions; X/Y/Z is the center of the footprint
// (Y vertical). Rotation is degrees about the vertical axis, restricted to
// {0, 90, 180, 270}.
type PlacedItem struct {
	InstanceID   string   `json:"instanceId"`
	DefinitionID string   `json:"definitionId"`
	Name         string   `json:"name"`
	ItemType     ItemType `json:"itemType"`
	Width        float64  `json:"width"`
	Height       float64  `json:"height"`
	Depth        float64  `json:"depth"`
	X            float64  `json:"x"`
	Y            float64  `json:"y"`
	Z            float64  `json:"z"`
	Rotation     float64  `json:"rotation"`
}

// NormalizeRotation maps an arbitrary degree value onto [0, 360).
func NormalizeRotation(deg float64) float64 {
	r := deg
	for r < 0 {
		r += 360
	}
	for r >= 360 {
		r -= 360
	}
	return r
}
