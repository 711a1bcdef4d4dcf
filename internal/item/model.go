package item

import (
	"context"
	"net/http"
	"time"

	"github.com/peershare/item-sharing-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "item not found")
	ErrNotOwner          = apperror.New(http.StatusForbidden, "only the owner can edit an item")
	ErrCommentNotAllowed = apperror.New(http.StatusBadRequest, "commenting requires a finished booking of the item")
)

// Item is something a user offers for booking by other users.
type Item struct {
	ID          string // UUID
	Name        string
	Description string
	Available   bool
	OwnerID     string
	RequestID   *string // set when the item answers an item request
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Comment is feedback left by a user who finished a booking of the item.
type Comment struct {
	ID         string
	ItemID     string
	AuthorID   string
	AuthorName string
	Text       string
	CreatedAt  time.Time
}

// BookingRef is the slice of a booking the item views need.
type BookingRef struct {
	ID       string
	BookerID string
	Start    time.Time
	End      time.Time
}

// OwnerView is an item enriched with booking context. LastBooking and
// NextBooking are only populated for the item's owner.
type OwnerView struct {
	Item
	LastBooking *BookingRef
	NextBooking *BookingRef
	Comments    []*Comment
}

// BookingView is the slice of the booking engine the item module consumes:
// surrounding bookings for the owner view and the comment-eligibility check.
type BookingView interface {
	LastForItem(ctx context.Context, itemID string, now time.Time) (*BookingRef, error)
	NextForItem(ctx context.Context, itemID string, now time.Time) (*BookingRef, error)
	HasPastBooking(ctx context.Context, userID, itemID string, now time.Time) (bool, error)
}
