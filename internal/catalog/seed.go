package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/planora/planora/backend-go/internal/db/dbgen"
	"github.com/planora/planora/backend-go/internal/typeid"
)

// seedItems is the starter product range: standard carcass widths for base
// and wall cabinets plus the common appliances. Dimensions in millimeters.
var seedItems = []Item{
	{Name: "Base Cabinet 300", Category: "base", ItemType: "cabinet", Width: 300, Height: 720, Depth: 575},
	{Name: "Base Cabinet 400", Category: "base", ItemType: "cabinet", Width: 400, Height: 720, Depth: 575},
	{Name: "Base Cabinet 450", Category: "base", ItemType: "cabinet", Width: 450, Height: 720, Depth: 575},
	{Name: "Base Cabinet 500", Category: "base", ItemType: "cabinet", Width: 500, Height: 720, Depth: 575},
	{Name: "Base Cabinet 600", Category: "base", ItemType: "cabinet", Width: 600, Height: 720, Depth: 575},
	{Name: "Base Cabinet 800", Category: "base", ItemType: "cabinet", Width: 800, Height: 720, Depth: 575},
	{Name: "Base Cabinet 900", Category: "base", ItemType: "cabinet", Width: 900, Height: 720, Depth: 575},
	{Name: "Corner Base 900", Category: "base", ItemType: "cabinet", Width: 900, Height: 720, Depth: 900},
	{Name: "Sink Base 800", Category: "base", ItemType: "cabinet", Width: 800, Height: 720, Depth: 575},
	{Name: "Drawer Unit 600", Category: "base", ItemType: "cabinet", Width: 600, Height: 720, Depth: 575},
	{Name: "Wall Cabinet 300", Category: "wall", ItemType: "cabinet", Width: 300, Height: 720, Depth: 320},
	{Name: "Wall Cabinet 400", Category: "wall", ItemType: "cabinet", Width: 400, Height: 720, Depth: 320},
	{Name: "Wall Cabinet 600", Category: "wall", ItemType: "cabinet", Width: 600, Height: 720, Depth: 320},
	{Name: "Wall Cabinet 800", Category: "wall", ItemType: "cabinet", Width: 800, Height: 720, Depth: 320},
	{Name: "Tall Larder 600", Category: "tall", ItemType: "cabinet", Width: 600, Height: 2100, Depth: 575},
	{Name: "Oven Housing 600", Category: "tall", ItemType: "cabinet", Width: 600, Height: 2100, Depth: 575},
	{Name: "Dishwasher 600", Category: "appliance", ItemType: "appliance", Width: 600, Height: 820, Depth: 575},
	{Name: "Fridge Freezer 600", Category: "appliance", ItemType: "appliance", Width: 600, Height: 1850, Depth: 650},
	{Name: "Range Cooker 900", Category: "appliance", ItemType: "appliance", Width: 900, Height: 900, Depth: 600},
	{Name: "Washing Machine 600", Category: "appliance", ItemType: "appliance", Width: 600, Height: 850, Depth: 600},
}

// Seed inserts the starter product range on first boot. A non-empty catalog
// is left untouched.
func Seed(ctx context.Context, queries *dbgen.Queries) error {
	count, err := queries.CountCatalogItems(ctx)
	if err != nil {
		return fmt.Errorf("count catalog items: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, item := range seedItems {
		_, err := queries.CreateCatalogItem(ctx, dbgen.CreateCatalogItemParams{
			ID:       typeid.NewCatalogID(),
			Name:     item.Name,
			Category: item.Category,
			ItemType: item.ItemType,
			Width:    int32(item.Width),
			Height:   int32(item.Height),
			Depth:    int32(item.Depth),
		})
		if err != nil {
			return fmt.Errorf("seed %q: %w", item.Name, err)
		}
	}

	slog.Info("seeded catalog", "items", len(seedItems))
	return nil
}
