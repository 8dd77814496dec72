package itemrequest

import (
	"net/http"
	"time"

	"github.com/peershare/shareit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "item request not found")
	ErrUserNotFound     = apperror.New(http.StatusNotFound, "user not found")
	ErrEmptyDescription = apperror.New(http.StatusBadRequest, "description cannot be empty")
)

// ItemRequest is a wish posted by a user for an item nobody has listed yet.
type ItemRequest struct {
	ID          string
	RequesterID string
	Description string
	CreatedAt   time.Time
}

// Reply is an item listed in answer to a request.
type Reply struct {
	ItemID  string
	Name    string
	OwnerID string
}

// WithReplies pairs a request with the items answering it.
type WithReplies struct {
	ItemRequest
	Replies []Reply
}
