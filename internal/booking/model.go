package booking

import (
	"net/http"
	"time"

	"github.com/peershare/item-sharing-backend/internal/pkg/apperror"
)

// Status is the lifecycle state of a booking. WAITING is the only
// non-terminal state; APPROVED and REJECTED never transition again.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrItemNotAvailable = apperror.New(http.StatusBadRequest, "item is not available for booking")
	ErrSelfBooking      = apperror.New(http.StatusForbidden, "owners cannot book their own items")
	ErrNotAuthorized    = apperror.New(http.StatusForbidden, "not allowed to access this booking")
	ErrAlreadyDecided   = apperror.New(http.StatusBadRequest, "booking has already been decided")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "start time must be before end time")
)

// Booking is a time-bounded reservation of an item by a booker.
// ItemName and BookerName are denormalized from the joined rows for
// presentation; the store never writes them back.
type Booking struct {
	ID         string
	Start      time.Time
	End        time.Time
	Status     Status
	ItemID     string
	ItemName   string
	BookerID   string
	BookerName string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
