package booking

import (
	"context"
	"time"

	"github.com/peershare/item-sharing-backend/internal/item"
)

// ItemView adapts the booking store to the read-only view the item
// module needs for owner listings and comment gating.
type ItemView struct {
	repo Repository
}

var _ item.BookingView = (*ItemView)(nil)

func NewItemView(repo Repository) *ItemView {
	return &ItemView{repo: repo}
}

func (v *ItemView) LastForItem(ctx context.Context, itemID string, now time.Time) (*item.BookingRef, error) {
	return v.repo.LastForItem(ctx, itemID, now)
}

func (v *ItemView) NextForItem(ctx context.Context, itemID string, now time.Time) (*item.BookingRef, error) {
	return v.repo.NextForItem(ctx, itemID, now)
}

// HasPastBooking reports whether the user ever held a booking of the
// item that has already ended, regardless of its status.
func (v *ItemView) HasPastBooking(ctx context.Context, userID, itemID string, now time.Time) (bool, error) {
	return v.repo.ExistsPastBooking(ctx, userID, itemID, now)
}
