package itemrequest

import (
	"net/http"
	"time"

	"github.com/peershare/item-sharing-backend/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "request not found")

// ItemRequest is a wish for an item that no one has listed yet.
type ItemRequest struct {
	ID          string
	Description string
	RequesterID string
	CreatedAt   time.Time
}

// Answer is an item listed in response to a request.
type Answer struct {
	ID          string
	Name        string
	Description string
	Available   bool
	OwnerID     string
}

// WithAnswers pairs a request with the items listed against it.
type WithAnswers struct {
	ItemRequest
	Items []*Answer
}
