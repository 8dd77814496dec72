package http

import (
	"time"

	"github.com/peershare/shareit-backend/internal/itemrequest"
)

type CreateRequestBody struct {
	Description string `json:"description" binding:"required"`
}

type ReplyResponse struct {
	ItemID  string `json:"item_id"`
	Name    string `json:"name"`
	OwnerID string `json:"owner_id"`
}

type RequestResponse struct {
	ID          string    `json:"id"`
	RequesterID string    `json:"requester_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type RequestDetailResponse struct {
	RequestResponse
	Replies []ReplyResponse `json:"items"`
}

func NewRequestResponse(r *itemrequest.ItemRequest) RequestResponse {
	return RequestResponse{
		ID:          r.ID,
		RequesterID: r.RequesterID,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}

func NewRequestDetailResponse(r *itemrequest.WithReplies) RequestDetailResponse {
	replies := make([]ReplyResponse, len(r.Replies))
	for i, rep := range r.Replies {
		replies[i] = ReplyResponse{ItemID: rep.ItemID, Name: rep.Name, OwnerID: rep.OwnerID}
	}
	return RequestDetailResponse{
		RequestResponse: NewRequestResponse(&r.ItemRequest),
		Replies:         replies,
	}
}
