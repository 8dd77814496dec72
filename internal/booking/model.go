package booking

import (
	"context"
	"net/http"
	"time"

	"github.com/peershare/shareit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrUserNotFound     = apperror.New(http.StatusNotFound, "user not found")
	ErrItemNotFound     = apperror.New(http.StatusNotFound, "item not found")
	ErrItemUnavailable  = apperror.New(http.StatusBadRequest, "item is not available for booking")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "end time must be after start time")
	ErrStartTimePast    = apperror.New(http.StatusBadRequest, "cannot create booking in the past")
	ErrNotOwner         = apperror.New(http.StatusForbidden, "only the item owner can decide a booking")
	ErrAlreadyDecided   = apperror.New(http.StatusBadRequest, "booking has already been decided")
	ErrUnknownFilter    = apperror.New(http.StatusBadRequest, "unknown state filter")
)

type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusCanceled Status = "canceled"
)

// User is the snapshot of the booker embedded in a booking view.
type User struct {
	ID    string
	Name  string
	Email string
}

// Item is the snapshot of the booked item embedded in a booking view.
// OwnerID must match the item's true owner at booking time; authorization
// decisions are made against it.
type Item struct {
	ID          string
	Name        string
	Description string
	Available   bool
	OwnerID     string
}

// Booking is the root entity of the module. Booker and Item are read-time
// snapshots denormalized by the repository; later changes to the user or the
// item do not retroactively alter a previously returned booking.
type Booking struct {
	ID        string
	ItemID    string
	BookerID  string
	Start     time.Time
	End       time.Time
	Status    Status
	CreatedAt time.Time

	Booker User
	Item   Item
}

// UserLookup resolves the acting user. Implemented by the user module.
type UserLookup interface {
	GetByID(ctx context.Context, id string) (*User, error)
}

// ItemLookup resolves the target item. Implemented by the item module.
type ItemLookup interface {
	GetByID(ctx context.Context, id string) (*Item, error)
}
