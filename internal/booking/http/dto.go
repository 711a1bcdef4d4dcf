package http

import (
	"time"

	"github.com/peershare/item-sharing-backend/internal/booking"
)

type BookingItemResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BookingUserResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID        string              `json:"id"`
	StartTime time.Time           `json:"start_time"`
	EndTime   time.Time           `json:"end_time"`
	Status    string              `json:"status"`
	Item      BookingItemResponse `json:"item"`
	Booker    BookingUserResponse `json:"booker"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		StartTime: b.Start,
		EndTime:   b.End,
		Status:    string(b.Status),
		Item:      BookingItemResponse{ID: b.ItemID, Name: b.ItemName},
		Booker:    BookingUserResponse{ID: b.BookerID, Name: b.BookerName},
	}
}

type CreateBookingRequest struct {
	ItemID    string    `json:"item_id" binding:"required,uuid"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}
