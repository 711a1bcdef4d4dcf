package item

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/peershare/item-sharing-backend/internal/pkg/paging"
	"github.com/peershare/item-sharing-backend/internal/user"
)

// CreateRequest carries the fields for listing a new item.
type CreateRequest struct {
	Name        string
	Description string
	Available   bool
	RequestID   *string
}

// UpdateRequest carries a partial item edit; nil fields stay unchanged.
type UpdateRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

// Service defines business logic related to items and their comments.
type Service interface {
	Create(ctx context.Context, ownerID string, req CreateRequest) (*Item, error)
	Update(ctx context.Context, ownerID, itemID string, req UpdateRequest) (*Item, error)
	GetByID(ctx context.Context, itemID, viewerID string) (*OwnerView, error)
	ListByOwner(ctx context.Context, ownerID string, from int, size *int) ([]*OwnerView, error)
	Search(ctx context.Context, viewerID, text string) ([]*Item, error)
	AddComment(ctx context.Context, authorID, itemID, text string) (*Comment, error)
}

type service struct {
	repo     Repository
	users    user.Service
	bookings BookingView
	now      func() time.Time
	logger   zerolog.Logger
}

// NewService creates a new item Service. now supplies the reference time for
// booking-context lookups so tests can pin it.
func NewService(repo Repository, users user.Service, bookings BookingView, now func() time.Time, logger zerolog.Logger) Service {
	return &service{
		repo:     repo,
		users:    users,
		bookings: bookings,
		now:      now,
		logger:   logger.With().Str("component", "item_service").Logger(),
	}
}

func (s *service) Create(ctx context.Context, ownerID string, req CreateRequest) (*Item, error) {
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}

	i := &Item{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Available:   req.Available,
		OwnerID:     ownerID,
		RequestID:   req.RequestID,
	}

	if err := s.repo.Create(ctx, i); err != nil {
		return nil, err
	}

	s.logger.Info().Str("item_id", i.ID).Str("owner_id", ownerID).Msg("item listed")
	return i, nil
}

func (s *service) Update(ctx context.Context, ownerID, itemID string, req UpdateRequest) (*Item, error) {
	i, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if i.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		i.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) != "" {
		i.Description = strings.TrimSpace(*req.Description)
	}
	if req.Available != nil {
		i.Available = *req.Available
	}

	if err := s.repo.Update(ctx, i); err != nil {
		return nil, err
	}

	return i, nil
}

func (s *service) GetByID(ctx context.Context, itemID, viewerID string) (*OwnerView, error) {
	i, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	// Booking context is owner-only; other viewers just see the comments.
	withBookings := i.OwnerID == viewerID
	return s.buildView(ctx, i, withBookings)
}

func (s *service) ListByOwner(ctx context.Context, ownerID string, from int, size *int) ([]*OwnerView, error) {
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}

	items, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	page, err := paging.Window(items, from, size)
	if err != nil {
		return nil, err
	}

	views := make([]*OwnerView, 0, len(page))
	for _, i := range page {
		view, err := s.buildView(ctx, i, true)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}

func (s *service) Search(ctx context.Context, viewerID, text string) ([]*Item, error) {
	if _, err := s.users.GetByID(ctx, viewerID); err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return []*Item{}, nil
	}

	return s.repo.Search(ctx, text)
}

func (s *service) AddComment(ctx context.Context, authorID, itemID, text string) (*Comment, error) {
	if _, err := s.users.GetByID(ctx, authorID); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByID(ctx, itemID); err != nil {
		return nil, err
	}

	allowed, err := s.bookings.HasPastBooking(ctx, authorID, itemID, s.now())
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrCommentNotAllowed
	}

	c := &Comment{
		ItemID:   itemID,
		AuthorID: authorID,
		Text:     strings.TrimSpace(text),
	}
	if err := s.repo.CreateComment(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *service) buildView(ctx context.Context, i *Item, withBookings bool) (*OwnerView, error) {
	view := &OwnerView{Item: *i}

	comments, err := s.repo.ListComments(ctx, i.ID)
	if err != nil {
		return nil, err
	}
	view.Comments = comments

	if !withBookings {
		return view, nil
	}

	now := s.now()
	if view.LastBooking, err = s.bookings.LastForItem(ctx, i.ID, now); err != nil {
		return nil, err
	}
	if view.NextBooking, err = s.bookings.NextForItem(ctx, i.ID, now); err != nil {
		return nil, err
	}

	return view, nil
}
