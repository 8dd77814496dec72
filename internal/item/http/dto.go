package http

import (
	"time"

	"github.com/peershare/shareit-backend/internal/item"
	"github.com/peershare/shareit-backend/internal/pkg/request"
)

type CreateItemBody struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Available   *bool   `json:"available" binding:"required"`
	RequestID   *string `json:"request_id" binding:"omitempty,uuid"`
}

type UpdateItemBody struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type CreateCommentBody struct {
	Text string `json:"text" binding:"required"`
}

type SearchItemsRequest struct {
	request.ListParams
	Text string `form:"text"`
}

type ItemResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
	RequestID   *string   `json:"request_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type CommentResponse struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

type BookingTagResponse struct {
	ID        string    `json:"id"`
	BookerID  string    `json:"booker_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type ItemDetailResponse struct {
	ItemResponse
	Comments    []CommentResponse   `json:"comments"`
	LastBooking *BookingTagResponse `json:"last_booking,omitempty"`
	NextBooking *BookingTagResponse `json:"next_booking,omitempty"`
}

func NewItemResponse(i *item.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		OwnerID:     i.OwnerID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		RequestID:   i.RequestID,
		CreatedAt:   i.CreatedAt,
	}
}

func newBookingTag(t *item.BookingTag) *BookingTagResponse {
	if t == nil {
		return nil
	}
	return &BookingTagResponse{ID: t.ID, BookerID: t.BookerID, StartTime: t.Start, EndTime: t.End}
}

func NewItemDetailResponse(d *item.Detail) ItemDetailResponse {
	comments := make([]CommentResponse, len(d.Comments))
	for i, c := range d.Comments {
		comments[i] = CommentResponse{
			ID:         c.ID,
			AuthorName: c.AuthorName,
			Text:       c.Text,
			CreatedAt:  c.CreatedAt,
		}
	}

	return ItemDetailResponse{
		ItemResponse: NewItemResponse(&d.Item),
		Comments:     comments,
		LastBooking:  newBookingTag(d.LastBooking),
		NextBooking:  newBookingTag(d.NextBooking),
	}
}
