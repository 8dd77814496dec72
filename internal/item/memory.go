package item

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory Repository used as a test double.
type MemoryRepository struct {
	mu       sync.Mutex
	items    map[string]*Item
	comments map[string][]Comment // keyed by item id
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items:    make(map[string]*Item),
		comments: make(map[string][]Comment),
	}
}

func (r *MemoryRepository) Create(_ context.Context, i *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i.ID = uuid.New().String()
	i.CreatedAt = time.Now().UTC()
	stored := *i
	r.items[i.ID] = &stored
	return nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	i := *stored
	return &i, nil
}

func (r *MemoryRepository) Update(_ context.Context, i *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[i.ID]
	if !ok {
		return ErrNotFound
	}
	stored.Name = i.Name
	stored.Description = i.Description
	stored.Available = i.Available
	return nil
}

func (r *MemoryRepository) ListByOwner(_ context.Context, ownerID string) ([]*Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var items []*Item
	for _, stored := range r.items {
		if stored.OwnerID == ownerID {
			i := *stored
			items = append(items, &i)
		}
	}
	sort.Slice(items, func(a, b int) bool {
		if items[a].CreatedAt.Equal(items[b].CreatedAt) {
			return items[a].ID < items[b].ID
		}
		return items[a].CreatedAt.Before(items[b].CreatedAt)
	})
	return items, nil
}

func (r *MemoryRepository) Search(_ context.Context, text string, _, _ int) ([]*Item, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	needle := strings.ToLower(text)
	var items []*Item
	for _, stored := range r.items {
		if !stored.Available {
			continue
		}
		if strings.Contains(strings.ToLower(stored.Name), needle) ||
			strings.Contains(strings.ToLower(stored.Description), needle) {
			i := *stored
			items = append(items, &i)
		}
	}
	sort.Slice(items, func(a, b int) bool { return items[a].ID < items[b].ID })
	return items, len(items), nil
}

func (r *MemoryRepository) AddComment(_ context.Context, c *Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = uuid.New().String()
	c.CreatedAt = time.Now().UTC()
	r.comments[c.ItemID] = append(r.comments[c.ItemID], *c)
	return nil
}

func (r *MemoryRepository) CommentsForItem(_ context.Context, itemID string) ([]Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Comment(nil), r.comments[itemID]...), nil
}
