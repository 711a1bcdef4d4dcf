package http

import (
	"time"

	"github.com/peershare/item-sharing-backend/internal/itemrequest"
)

type RequestResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	RequesterID string    `json:"requester_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewRequestResponse(r *itemrequest.ItemRequest) RequestResponse {
	return RequestResponse{
		ID:          r.ID,
		Description: r.Description,
		RequesterID: r.RequesterID,
		CreatedAt:   r.CreatedAt,
	}
}

type AnswerResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     string `json:"owner_id"`
}

type RequestViewResponse struct {
	RequestResponse
	Items []AnswerResponse `json:"items"`
}

func NewRequestViewResponse(v *itemrequest.WithAnswers) RequestViewResponse {
	items := make([]AnswerResponse, len(v.Items))
	for i, a := range v.Items {
		items[i] = AnswerResponse{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Available:   a.Available,
			OwnerID:     a.OwnerID,
		}
	}
	return RequestViewResponse{
		RequestResponse: NewRequestResponse(&v.ItemRequest),
		Items:           items,
	}
}

type CreateRequestRequest struct {
	Description string `json:"description" binding:"required"`
}
