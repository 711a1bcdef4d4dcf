package user

import (
	"net/http"
	"time"

	"github.com/peershare/item-sharing-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "user not found")
	ErrEmailAlreadyUsed = apperror.New(http.StatusConflict, "email already used")
	ErrNothingToUpdate  = apperror.New(http.StatusBadRequest, "nothing to update")
)

// User is an account that can own items and book other users' items.
type User struct {
	ID        string // UUID
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
