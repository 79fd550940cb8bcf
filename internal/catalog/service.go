package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/planora/planora/backend-go/internal/db/dbgen"
)

var ErrNotFound = errors.New("catalog item not found")

type Service struct {
	queries *dbgen.Queries
}

func NewService(queries *dbgen.Queries) *Service {
	return &Service{queries: queries}
}

// Item is a placeable product definition. Dimensions are millimeters; the
// planner copies them onto each placed instance.
type Item struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	ItemType  string `json:"itemType"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Depth     int    `json:"depth"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

func (s *Service) List(ctx context.Context) ([]Item, error) {
	dbItems, err := s.queries.ListCatalogItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog items: %w", err)
	}

	items := make([]Item, len(dbItems))
	for i, it := range dbItems {
		items[i] = dbItemToItem(it)
	}
	return items, nil
}

// CreateParams are the fields a new product definition needs; the id is
// generated by the caller of Create.
type CreateParams struct {
	Name     string
	Category string
	ItemType string
	Width    int
	Height   int
	Depth    int
}

func (s *Service) Create(ctx context.Context, id string, p CreateParams) (*Item, error) {
	dbItem, err := s.queries.CreateCatalogItem(ctx, dbgen.CreateCatalogItemParams{
		ID:       id,
		Name:     p.Name,
		Category: p.Category,
		ItemType: p.ItemType,
		Width:    int32(p.Width),
		Height:   int32(p.Height),
		Depth:    int32(p.Depth),
	})
	if err != nil {
		return nil, fmt.Errorf("create catalog item: %w", err)
	}

	item := dbItemToItem(dbItem)
	return &item, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Item, error) {
	dbItem, err := s.queries.GetCatalogItem(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get catalog item: %w", err)
	}

	item := dbItemToItem(dbItem)
	return &item, nil
}

func dbItemToItem(it dbgen.CatalogItem) Item {
	return Item{
		ID:        it.ID,
		Name:      it.Name,
		Category:  it.Category,
		ItemType:  it.ItemType,
		Width:     int(it.Width),
		Height:    int(it.Height),
		Depth:     int(it.Depth),
		Thumbnail: it.Thumbnail.String,
	}
}
