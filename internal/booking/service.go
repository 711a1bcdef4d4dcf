package booking

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/peershare/item-sharing-backend/internal/item"
	"github.com/peershare/item-sharing-backend/internal/metrics"
	"github.com/peershare/item-sharing-backend/internal/pkg/paging"
	"github.com/peershare/item-sharing-backend/internal/user"
)

// CreateRequest carries the fields for requesting a booking.
type CreateRequest struct {
	ItemID string
	Start  time.Time
	End    time.Time
}

// Service is the booking policy engine: it decides who may book what,
// drives the status transitions, and answers the temporal list views.
type Service interface {
	Create(ctx context.Context, bookerID string, req CreateRequest) (*Booking, error)
	Decide(ctx context.Context, ownerID, bookingID string, approve bool) (*Booking, error)
	GetForViewer(ctx context.Context, viewerID, bookingID string) (*Booking, error)
	ListForBooker(ctx context.Context, bookerID string, state State, from int, size *int) ([]*Booking, error)
	ListForOwner(ctx context.Context, ownerID string, state State, from int, size *int) ([]*Booking, error)
}

type service struct {
	repo   Repository
	items  item.Repository
	users  user.Service
	now    func() time.Time
	logger zerolog.Logger
}

// NewService creates a new booking Service. now supplies the reference
// time for list classification so tests can pin it.
func NewService(repo Repository, items item.Repository, users user.Service, now func() time.Time, logger zerolog.Logger) Service {
	return &service{
		repo:   repo,
		items:  items,
		users:  users,
		now:    now,
		logger: logger.With().Str("component", "booking_service").Logger(),
	}
}

func (s *service) Create(ctx context.Context, bookerID string, req CreateRequest) (*Booking, error) {
	if !req.Start.Before(req.End) {
		return nil, ErrInvalidTimeRange
	}

	if _, err := s.users.GetByID(ctx, bookerID); err != nil {
		return nil, err
	}

	it, err := s.items.GetByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if it.OwnerID == bookerID {
		return nil, ErrSelfBooking
	}
	if !it.Available {
		return nil, ErrItemNotAvailable
	}

	b := &Booking{
		Start:    req.Start,
		End:      req.End,
		Status:   StatusWaiting,
		ItemID:   req.ItemID,
		BookerID: bookerID,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	metrics.IncBookingCreated()
	s.logger.Info().
		Str("booking_id", b.ID).
		Str("item_id", req.ItemID).
		Str("booker_id", bookerID).
		Msg("booking requested")

	return s.repo.GetByID(ctx, b.ID)
}

func (s *service) Decide(ctx context.Context, ownerID, bookingID string, approve bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	it, err := s.items.GetByID(ctx, b.ItemID)
	if err != nil {
		return nil, err
	}
	if it.OwnerID != ownerID {
		return nil, ErrNotAuthorized
	}

	if b.Status != StatusWaiting {
		return nil, ErrAlreadyDecided
	}

	status := StatusRejected
	if approve {
		status = StatusApproved
	}

	updated, err := s.repo.UpdateStatusIfWaiting(ctx, bookingID, status)
	if err != nil {
		return nil, err
	}
	if !updated {
		// Someone else decided between our read and the update.
		if _, err := s.repo.GetByID(ctx, bookingID); err != nil {
			return nil, err
		}
		return nil, ErrAlreadyDecided
	}

	metrics.IncBookingDecision(strings.ToLower(string(status)))
	s.logger.Info().
		Str("booking_id", bookingID).
		Str("owner_id", ownerID).
		Str("status", string(status)).
		Msg("booking decided")

	return s.repo.GetByID(ctx, bookingID)
}

func (s *service) GetForViewer(ctx context.Context, viewerID, bookingID string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if b.BookerID == viewerID {
		return b, nil
	}

	it, err := s.items.GetByID(ctx, b.ItemID)
	if err != nil {
		return nil, err
	}
	if it.OwnerID != viewerID {
		return nil, ErrNotAuthorized
	}

	return b, nil
}

func (s *service) ListForBooker(ctx context.Context, bookerID string, state State, from int, size *int) ([]*Booking, error) {
	if _, err := s.users.GetByID(ctx, bookerID); err != nil {
		return nil, err
	}

	bookings, err := s.repo.ListByBooker(ctx, bookerID)
	if err != nil {
		return nil, err
	}

	return paging.Window(FilterByState(bookings, state, s.now()), from, size)
}

func (s *service) ListForOwner(ctx context.Context, ownerID string, state State, from int, size *int) ([]*Booking, error) {
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}

	bookings, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return paging.Window(FilterByState(bookings, state, s.now()), from, size)
}
