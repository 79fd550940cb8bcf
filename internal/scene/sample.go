package scene

// NewEmptyDesign creates an empty design for a new project.
func NewEmptyDesign(projectID, projectName string) *Design {
	return &Design{
		Project: Project{
			ID:        projectID,
			Name:      projectName,
			Version:   1,
			CreatedAt: "", // set by caller
			UpdatedAt: "",
		},
		Room: Room{
			Width:  4000,
			Depth:  3000,
			Height: 2400,
			Shape:  RoomShapeRectangular,
		},
		Globals: DefaultGlobals(),
		Items:   map[string]PlacedItem{},
	}
}

// NewSampleDesign builds the playground document: a short run of base
// cabinets flush against the back wall plus a free-standing island.
func NewSampleDesign(projectID string) *Design {
	d := NewEmptyDesign(projectID, "Sample Kitchen")
	g := d.Globals

	backZ := g.BaseDepth/2 + g.WallGap

	items := []PlacedItem{
		{
			InstanceID:   "item_sample_corner",
			DefinitionID: "cab_base_corner_900",
			Name:         "Corner Base 900",
			ItemType:     ItemTypeCabinet,
			Width:        900, Height: g.BaseHeight, Depth: g.BaseDepth,
			X: 450 + g.WallGap, Y: g.BaseHeight / 2, Z: backZ,
			Rotation: 0,
		},
		{
			InstanceID:   "item_sample_base600",
			DefinitionID: "cab_base_600",
			Name:         "Base 600",
			ItemType:     ItemTypeCabinet,
			Width:        600, Height: g.BaseHeight, Depth: g.BaseDepth,
			X: 900 + g.WallGap + 300, Y: g.BaseHeight / 2, Z: backZ,
			Rotation: 0,
		},
		{
			InstanceID:   "item_sample_oven",
			DefinitionID: "appl_oven_600",
			Name:         "Oven Housing",
			ItemType:     ItemTypeAppliance,
			Width:        600, Height: g.BaseHeight, Depth: g.BaseDepth,
			X: 1500 + g.WallGap + 300, Y: g.BaseHeight / 2, Z: backZ,
			Rotation: 0,
		},
		{
			InstanceID:   "item_sample_island",
			DefinitionID: "cab_island_1200",
			Name:         "Island 1200",
			ItemType:     ItemTypeCabinet,
			Width:        1200, Height: g.BaseHeight, Depth: 900,
			X: 2200, Y: g.BaseHeight / 2, Z: 1800,
			Rotation: 180,
		},
		{
			InstanceID:   "item_sample_plant",
			DefinitionID: "decor_plant",
			Name:         "Plant",
			ItemType:     ItemTypeDecor,
			Width:        300, Height: 600, Depth: 300,
			X: 3700, Y: 300, Z: 2700,
			Rotation: 0,
		},
	}

	for _, it := range items {
		d.Items[it.InstanceID] = it
	}
	return d
}
