package booking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory Repository used as a test double behind the
// same interface as the persisted store. It is not a production path.
type MemoryRepository struct {
	mu       sync.Mutex
	bookings map[string]*Booking

	// Users and Items supply the snapshot data a SQL join would, keyed by id.
	// Tests seed them before creating bookings.
	Users map[string]User
	Items map[string]Item
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		bookings: make(map[string]*Booking),
		Users:    make(map[string]User),
		Items:    make(map[string]Item),
	}
}

func (r *MemoryRepository) snapshot(b *Booking) {
	b.Booker = r.Users[b.BookerID]
	b.Item = r.Items[b.ItemID]
}

func (r *MemoryRepository) Create(_ context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b.ID = uuid.New().String()
	b.CreatedAt = time.Now().UTC()
	r.snapshot(b)

	stored := *b
	r.bookings[b.ID] = &stored
	return nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	b := *stored
	r.snapshot(&b)
	return &b, nil
}

func (r *MemoryRepository) listWhere(f Filter, now time.Time, keep func(*Booking) bool) []*Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*Booking
	for _, stored := range r.bookings {
		b := *stored
		r.snapshot(&b)
		if keep(&b) && f.Matches(&b, now) {
			out = append(out, &b)
		}
	}
	SortBookings(out)
	return out
}

func (r *MemoryRepository) ListByBooker(_ context.Context, bookerID string, f Filter, now time.Time) ([]*Booking, error) {
	return r.listWhere(f, now, func(b *Booking) bool { return b.BookerID == bookerID }), nil
}

func (r *MemoryRepository) ListByOwner(_ context.Context, ownerID string, f Filter, now time.Time) ([]*Booking, error) {
	return r.listWhere(f, now, func(b *Booking) bool { return b.Item.OwnerID == ownerID }), nil
}

func (r *MemoryRepository) UpdateStatus(_ context.Context, id string, from, to Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.bookings[id]
	if !ok || stored.Status != from {
		return ErrAlreadyDecided
	}
	stored.Status = to
	return nil
}

func (r *MemoryRepository) LastForItem(_ context.Context, itemID string, now time.Time) (*Booking, error) {
	candidates := r.listWhere(FilterAll, now, func(b *Booking) bool {
		return b.ItemID == itemID && b.Status != StatusRejected && !b.Start.After(now)
	})
	if len(candidates) == 0 {
		return nil, nil
	}
	// listWhere sorts start descending, so the first is the latest started.
	return candidates[0], nil
}

func (r *MemoryRepository) NextForItem(_ context.Context, itemID string, now time.Time) (*Booking, error) {
	candidates := r.listWhere(FilterAll, now, func(b *Booking) bool {
		return b.ItemID == itemID && b.Status != StatusRejected && b.Start.After(now)
	})
	if len(candidates) == 0 {
		return nil, nil
	}
	return candidates[len(candidates)-1], nil
}

func (r *MemoryRepository) EligibleForComment(_ context.Context, bookerID, itemID string, now time.Time) ([]*Booking, error) {
	return r.listWhere(FilterAll, now, func(b *Booking) bool {
		return b.BookerID == bookerID && b.ItemID == itemID &&
			b.Status == StatusApproved && !b.Start.After(now)
	}), nil
}
