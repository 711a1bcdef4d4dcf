// Package paging applies an offset/size window to lists that are already
// fully materialized in memory. It is shared by the booking, item and
// request list endpoints so they all fail and slice the same way.
package paging

import (
	"net/http"

	"github.com/peershare/item-sharing-backend/internal/pkg/apperror"
)

// ErrOffsetOutOfRange is returned when the offset points past the end of
// the list. An offset equal to the length is fine and yields an empty page.
var ErrOffsetOutOfRange = apperror.New(http.StatusBadRequest, "from is out of range")

// Window returns at most size elements of items starting at from.
// A nil size means everything from the offset to the end. The input order
// is preserved and the input slice is never mutated.
func Window[T any](items []T, from int, size *int) ([]T, error) {
	if from > len(items) {
		return nil, ErrOffsetOutOfRange
	}

	out := items[from:]
	if size != nil && *size < len(out) {
		out = out[:*size]
	}
	return out, nil
}
