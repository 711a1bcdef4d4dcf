package booking

import (
	"net/http"
	"strings"
	"time"

	"github.com/peershare/item-sharing-backend/internal/pkg/apperror"
)

// State selects a temporal or status slice of a booking list.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

var ErrUnknownState = apperror.New(http.StatusBadRequest, "unknown state")

// statePredicates maps each state to its filter. Keeping this a table
// makes the set of states exhaustive rather than order-dependent.
var statePredicates = map[State]func(b *Booking, now time.Time) bool{
	StateAll:      func(*Booking, time.Time) bool { return true },
	StateCurrent:  func(b *Booking, now time.Time) bool { return b.Start.Before(now) && b.End.After(now) },
	StatePast:     func(b *Booking, now time.Time) bool { return b.End.Before(now) },
	StateFuture:   func(b *Booking, now time.Time) bool { return b.Start.After(now) && b.Status != StatusRejected },
	StateWaiting:  func(b *Booking, _ time.Time) bool { return b.Status == StatusWaiting },
	StateRejected: func(b *Booking, _ time.Time) bool { return b.Status == StatusRejected },
}

// ParseState maps a query token to a State. The empty token means ALL;
// anything not in the table is rejected here, at the boundary.
func ParseState(token string) (State, error) {
	if token == "" {
		return StateAll, nil
	}

	state := State(strings.ToUpper(token))
	if _, ok := statePredicates[state]; !ok {
		return "", ErrUnknownState
	}
	return state, nil
}

// FilterByState keeps the bookings matching state, preserving input
// order. now is sampled once by the caller so the whole list is judged
// against the same instant.
func FilterByState(bookings []*Booking, state State, now time.Time) []*Booking {
	pred := statePredicates[state]

	out := make([]*Booking, 0, len(bookings))
	for _, b := range bookings {
		if pred(b, now) {
			out = append(out, b)
		}
	}
	return out
}
