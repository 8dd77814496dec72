package booking

import (
	"context"
	"time"
)

type CreateRequest struct {
	BookerID string
	ItemID   string
	Start    time.Time
	End      time.Time
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	Decide(ctx context.Context, actingUserID, bookingID string, approved bool) (*Booking, error)
	Cancel(ctx context.Context, actingUserID, bookingID string) (*Booking, error)
	GetByID(ctx context.Context, actingUserID, bookingID string) (*Booking, error)
	ListForBooker(ctx context.Context, actingUserID string, f Filter) ([]*Booking, error)
	ListForOwner(ctx context.Context, actingUserID string, f Filter) ([]*Booking, error)
}

type service struct {
	repo  Repository
	users UserLookup
	items ItemLookup
}

func NewService(repo Repository, users UserLookup, items ItemLookup) Service {
	return &service{
		repo:  repo,
		users: users,
		items: items,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	booker, err := s.users.GetByID(ctx, req.BookerID)
	if err != nil {
		return nil, err
	}

	item, err := s.items.GetByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	if !item.Available {
		return nil, ErrItemUnavailable
	}
	if !req.End.After(req.Start) {
		return nil, ErrInvalidTimeRange
	}
	if req.Start.Before(time.Now().UTC()) {
		return nil, ErrStartTimePast
	}
	// Self-booking is reported as "item not found" rather than "forbidden"
	// so a caller cannot probe who owns an item.
	if item.OwnerID == booker.ID {
		return nil, ErrItemNotFound
	}

	b := &Booking{
		ItemID:   item.ID,
		BookerID: booker.ID,
		Start:    req.Start,
		End:      req.End,
		Status:   StatusWaiting,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	// Re-read for the denormalized booker/item snapshot.
	return s.repo.GetByID(ctx, b.ID)
}

func (s *service) Decide(ctx context.Context, actingUserID, bookingID string, approved bool) (*Booking, error) {
	if _, err := s.users.GetByID(ctx, actingUserID); err != nil {
		return nil, err
	}

	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	next, err := Decide(b, actingUserID, approved)
	if err != nil {
		return nil, err
	}

	// Compare-and-swap on the waiting status; a concurrent decision that won
	// the race surfaces here as ErrAlreadyDecided.
	if err := s.repo.UpdateStatus(ctx, b.ID, StatusWaiting, next); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, b.ID)
}

func (s *service) Cancel(ctx context.Context, actingUserID, bookingID string) (*Booking, error) {
	if _, err := s.users.GetByID(ctx, actingUserID); err != nil {
		return nil, err
	}

	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	next, err := Cancel(b, actingUserID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, b.ID, StatusWaiting, next); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, b.ID)
}

func (s *service) GetByID(ctx context.Context, actingUserID, bookingID string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	// Only the booker and the item owner may see a booking. Anyone else gets
	// the same "not found" as a missing id; existence is not leaked.
	if b.BookerID != actingUserID && b.Item.OwnerID != actingUserID {
		return nil, ErrNotFound
	}

	return b, nil
}

func (s *service) ListForBooker(ctx context.Context, actingUserID string, f Filter) ([]*Booking, error) {
	if _, err := s.users.GetByID(ctx, actingUserID); err != nil {
		return nil, err
	}
	return s.repo.ListByBooker(ctx, actingUserID, f, time.Now().UTC())
}

func (s *service) ListForOwner(ctx context.Context, actingUserID string, f Filter) ([]*Booking, error) {
	if _, err := s.users.GetByID(ctx, actingUserID); err != nil {
		return nil, err
	}
	return s.repo.ListByOwner(ctx, actingUserID, f, time.Now().UTC())
}
