package design

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/planora/planora/backend-go/internal/db/dbgen"
	"github.com/planora/planora/backend-go/internal/scene"
	"github.com/planora/planora/backend-go/internal/typeid"
)

var (
	ErrNotFound  = errors.New("design not found")
	ErrForbidden = errors.New("forbidden")
	ErrNotMember = errors.New("not a design member")
)

type Service struct {
	queries *dbgen.Queries
}

func NewService(queries *dbgen.Queries) *Service {
	return &Service{queries: queries}
}

type Design struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	OwnerID    string `json:"ownerId"`
	RoomWidth  int    `json:"roomWidth"`
	RoomDepth  int    `json:"roomDepth"`
	RoomHeight int    `json:"roomHeight"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

type Member struct {
	UserID      string `json:"userId"`
	Role        string `json:"role"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

// CreateParams carries the room dimensions in millimeters. Zero values fall
// back to the default 4000x3000x2400 room.
type CreateParams struct {
	Name       string
	OwnerID    string
	RoomWidth  int
	RoomDepth  int
	RoomHeight int
}

func (s *Service) Create(ctx context.Context, p CreateParams) (*Design, error) {
	if p.RoomWidth <= 0 {
		p.RoomWidth = 4000
	}
	if p.RoomDepth <= 0 {
		p.RoomDepth = 3000
	}
	if p.RoomHeight <= 0 {
		p.RoomHeight = 2400
	}

	designID := typeid.NewDesignID()

	dbDesign, err := s.queries.CreateDesign(ctx, dbgen.CreateDesignParams{
		ID:         designID,
		Name:       p.Name,
		OwnerID:    p.OwnerID,
		RoomWidth:  int32(p.RoomWidth),
		RoomDepth:  int32(p.RoomDepth),
		RoomHeight: int32(p.RoomHeight),
	})
	if err != nil {
		return nil, fmt.Errorf("create design: %w", err)
	}

	err = s.queries.AddDesignMember(ctx, dbgen.AddDesignMemberParams{
		DesignID: designID,
		UserID:   p.OwnerID,
		Role:     dbgen.DesignRoleOwner,
	})
	if err != nil {
		return nil, fmt.Errorf("add owner as member: %w", err)
	}

	// Seed the first snapshot with an empty room so the collab hub always
	// has a document to load.
	doc := scene.NewEmptyDesign(designID, p.Name)
	doc.Room.Width = float64(p.RoomWidth)
	doc.Room.Depth = float64(p.RoomDepth)
	doc.Room.Height = float64(p.RoomHeight)

	docJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal empty design: %w", err)
	}

	_, err = s.queries.CreateSnapshot(ctx, dbgen.CreateSnapshotParams{
		ID:       typeid.NewSnapshotID(),
		DesignID: designID,
		Version:  1,
		Document: docJSON,
	})
	if err != nil {
		return nil, fmt.Errorf("create initial snapshot: %w", err)
	}

	return dbDesignToDesign(dbDesign), nil
}

func (s *Service) Get(ctx context.Context, designID, userID string) (*Design, error) {
	if err := s.checkMembership(ctx, designID, userID); err != nil {
		return nil, err
	}

	dbDesign, err := s.queries.GetDesign(ctx, designID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get design: %w", err)
	}

	return dbDesignToDesign(dbDesign), nil
}

func (s *Service) List(ctx context.Context, userID string) ([]Design, error) {
	dbDesigns, err := s.queries.ListDesignsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list designs: %w", err)
	}

	designs := make([]Design, len(dbDesigns))
	for i, d := range dbDesigns {
		designs[i] = *dbDesignToDesign(d)
	}

	return designs, nil
}

// validateDesignID rejects malformed ids before they reach the database. A
// string that is not a dsgn-prefixed typeid cannot name a design.
func validateDesignID(designID string) error {
	if err := typeid.Validate(designID, typeid.PrefixDesign); err != nil {
		return ErrNotFound
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, designID, userID string) error {
	if err := validateDesignID(designID); err != nil {
		return err
	}
	dbDesign, err := s.queries.GetDesign(ctx, designID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("get design: %w", err)
	}

	if dbDesign.OwnerID != userID {
		return ErrForbidden
	}

	return s.queries.DeleteDesign(ctx, designID)
}

func (s *Service) InviteByEmail(ctx context.Context, designID, ownerID, inviteeEmail string) error {
	if err := validateDesignID(designID); err != nil {
		return err
	}
	dbDesign, err := s.queries.GetDesign(ctx, designID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("get design: %w", err)
	}

	if dbDesign.OwnerID != ownerID {
		return ErrForbidden
	}

	invitee, err := s.queries.GetUserByEmail(ctx, inviteeEmail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errors.New("user not found")
		}
		return fmt.Errorf("find user: %w", err)
	}

	return s.queries.AddDesignMember(ctx, dbgen.AddDesignMemberParams{
		DesignID: designID,
		UserID:   invitee.ID,
		Role:     dbgen.DesignRoleEditor,
	})
}

func (s *Service) ListMembers(ctx context.Context, designID, userID string) ([]Member, error) {
	if err := s.checkMembership(ctx, designID, userID); err != nil {
		return nil, err
	}

	dbMembers, err := s.queries.ListDesignMembers(ctx, designID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	members := make([]Member, len(dbMembers))
	for i, m := range dbMembers {
		members[i] = Member{
			UserID:      m.UserID,
			Role:        string(m.Role),
			DisplayName: m.DisplayName,
			Email:       m.Email,
		}
	}

	return members, nil
}

func (s *Service) RemoveMember(ctx context.Context, designID, ownerID, targetUserID string) error {
	if err := validateDesignID(designID); err != nil {
		return err
	}
	dbDesign, err := s.queries.GetDesign(ctx, designID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("get design: %w", err)
	}

	if dbDesign.OwnerID != ownerID {
		return ErrForbidden
	}

	if targetUserID == ownerID {
		return errors.New("cannot remove design owner")
	}

	return s.queries.RemoveDesignMember(ctx, dbgen.RemoveDesignMemberParams{
		DesignID: designID,
		UserID:   targetUserID,
	})
}

func (s *Service) GetLatestSnapshot(ctx context.Context, designID, userID string) (json.RawMessage, error) {
	if err := s.checkMembership(ctx, designID, userID); err != nil {
		return nil, err
	}

	snap, err := s.queries.GetLatestSnapshot(ctx, designID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}

	return snap.Document, nil
}

// LoadDocument returns the latest persisted design document without a
// membership check. It backs the collab hub's loader, which authorizes the
// websocket connection before a room is created.
func (s *Service) LoadDocument(ctx context.Context, designID string) (*scene.Design, error) {
	if err := validateDesignID(designID); err != nil {
		return nil, err
	}
	snap, err := s.queries.GetLatestSnapshot(ctx, designID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}

	var doc scene.Design
	if err := json.Unmarshal(snap.Document, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal design document: %w", err)
	}
	if doc.Items == nil {
		doc.Items = make(map[string]scene.PlacedItem)
	}
	return &doc, nil
}

// SaveDocument writes a new snapshot version. It backs the collab hub's
// saver, called when a room empties or the server shuts down.
func (s *Service) SaveDocument(ctx context.Context, designID string, doc *scene.Design) error {
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal design document: %w", err)
	}

	version := int32(1)
	latest, err := s.queries.GetLatestSnapshot(ctx, designID)
	if err == nil {
		version = latest.Version + 1
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("get latest snapshot: %w", err)
	}

	_, err = s.queries.CreateSnapshot(ctx, dbgen.CreateSnapshotParams{
		ID:       typeid.NewSnapshotID(),
		DesignID: designID,
		Version:  version,
		Document: docJSON,
	})
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	return nil
}

// CheckAccess reports whether the user may open the design's collab room.
func (s *Service) CheckAccess(ctx context.Context, designID, userID string) error {
	return s.checkMembership(ctx, designID, userID)
}

func (s *Service) checkMembership(ctx context.Context, designID, userID string) error {
	if err := validateDesignID(designID); err != nil {
		return err
	}
	_, err := s.queries.GetDesignMember(ctx, dbgen.GetDesignMemberParams{
		DesignID: designID,
		UserID:   userID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotMember
		}
		return fmt.Errorf("check membership: %w", err)
	}
	return nil
}

func dbDesignToDesign(d dbgen.Design) *Design {
	return &Design{
		ID:         d.ID,
		Name:       d.Name,
		OwnerID:    d.OwnerID,
		RoomWidth:  int(d.RoomWidth),
		RoomDepth:  int(d.RoomDepth),
		RoomHeight: int(d.RoomHeight),
		CreatedAt:  d.CreatedAt.Time.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:  d.UpdatedAt.Time.Format("2006-01-02T15:04:05Z"),
	}
}
