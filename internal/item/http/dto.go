package http

import (
	"time"

	"github.com/peershare/item-sharing-backend/internal/item"
)

type ItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Available   bool    `json:"available"`
	OwnerID     string  `json:"owner_id"`
	RequestID   *string `json:"request_id,omitempty"`
}

func NewItemResponse(i *item.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		OwnerID:     i.OwnerID,
		RequestID:   i.RequestID,
	}
}

// BookingRefResponse is the short booking form shown on owner item views.
type BookingRefResponse struct {
	ID        string    `json:"id"`
	BookerID  string    `json:"booker_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

func newBookingRefResponse(b *item.BookingRef) *BookingRefResponse {
	if b == nil {
		return nil
	}
	return &BookingRefResponse{
		ID:        b.ID,
		BookerID:  b.BookerID,
		StartTime: b.Start,
		EndTime:   b.End,
	}
}

type CommentResponse struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewCommentResponse(c *item.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		AuthorName: c.AuthorName,
		Text:       c.Text,
		CreatedAt:  c.CreatedAt,
	}
}

type ItemViewResponse struct {
	ItemResponse
	LastBooking *BookingRefResponse `json:"last_booking,omitempty"`
	NextBooking *BookingRefResponse `json:"next_booking,omitempty"`
	Comments    []CommentResponse   `json:"comments"`
}

func NewItemViewResponse(v *item.OwnerView) ItemViewResponse {
	comments := make([]CommentResponse, len(v.Comments))
	for i, c := range v.Comments {
		comments[i] = NewCommentResponse(c)
	}
	return ItemViewResponse{
		ItemResponse: NewItemResponse(&v.Item),
		LastBooking:  newBookingRefResponse(v.LastBooking),
		NextBooking:  newBookingRefResponse(v.NextBooking),
		Comments:     comments,
	}
}

type CreateItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Available   *bool   `json:"available" binding:"required"`
	RequestID   *string `json:"request_id" binding:"omitempty,uuid"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}
