package item

import (
	"net/http"
	"time"

	"github.com/peershare/shareit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "item not found")
	ErrOwnerNotFound = apperror.New(http.StatusNotFound, "user not found")
	ErrMissingFields = apperror.New(http.StatusBadRequest, "name, description and available are required")
	ErrEmptyComment  = apperror.New(http.StatusBadRequest, "comment text cannot be empty")
	ErrNoBooking     = apperror.New(http.StatusBadRequest, "commenting requires a completed booking of this item")
)

// Item represents something a user has listed for others to book.
type Item struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	Available   bool
	RequestID   *string // set when the item answers an item request
	CreatedAt   time.Time
}

// Comment is a review left by a booker after a completed booking.
// AuthorName is a read-time snapshot of the author's name.
type Comment struct {
	ID         string
	ItemID     string
	AuthorID   string
	AuthorName string
	Text       string
	CreatedAt  time.Time
}

// BookingTag is the minimal booking reference shown on an owner's item view.
type BookingTag struct {
	ID       string
	BookerID string
	Start    time.Time
	End      time.Time
}

// Detail is the full item view: the item, its comments and, for the owner,
// the closest bookings around now.
type Detail struct {
	Item
	Comments    []Comment
	LastBooking *BookingTag
	NextBooking *BookingTag
}
