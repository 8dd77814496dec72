package itemrequest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory Repository used as a test double.
type MemoryRepository struct {
	mu       sync.Mutex
	requests map[string]*ItemRequest

	// Replies are seeded by tests; keyed by request id.
	Replies map[string][]Reply
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		requests: make(map[string]*ItemRequest),
		Replies:  make(map[string][]Reply),
	}
}

func (r *MemoryRepository) Create(_ context.Context, req *ItemRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	req.ID = uuid.New().String()
	req.CreatedAt = time.Now().UTC()
	stored := *req
	r.requests[req.ID] = &stored
	return nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*ItemRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.requests[id]
	if !ok {
		return nil, ErrNotFound
	}
	req := *stored
	return &req, nil
}

func (r *MemoryRepository) listWhere(keep func(*ItemRequest) bool) []*ItemRequest {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*ItemRequest
	for _, stored := range r.requests {
		if keep(stored) {
			req := *stored
			out = append(out, &req)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *MemoryRepository) ListByRequester(_ context.Context, requesterID string) ([]*ItemRequest, error) {
	return r.listWhere(func(req *ItemRequest) bool { return req.RequesterID == requesterID }), nil
}

func (r *MemoryRepository) ListOthers(_ context.Context, excludeUserID string) ([]*ItemRequest, error) {
	return r.listWhere(func(req *ItemRequest) bool { return req.RequesterID != excludeUserID }), nil
}

func (r *MemoryRepository) RepliesFor(_ context.Context, requestID string) ([]Reply, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Reply(nil), r.Replies[requestID]...), nil
}
