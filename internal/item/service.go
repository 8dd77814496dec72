package item

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/peershare/shareit-backend/internal/booking"
	"github.com/peershare/shareit-backend/internal/user"
)

type CreateRequest struct {
	OwnerID     string
	Name        string
	Description string
	Available   *bool
	RequestID   *string
}

type UpdateRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Item, error)
	Get(ctx context.Context, id string) (*Item, error)
	GetDetail(ctx context.Context, id, callerID string) (*Detail, error)
	Update(ctx context.Context, id, callerID string, req UpdateRequest) (*Item, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Detail, error)
	Search(ctx context.Context, text string, page, pageSize int) ([]*Item, int, error)
	AddComment(ctx context.Context, itemID, authorID, text string) (*Comment, error)
}

type service struct {
	repo     Repository
	users    user.Service
	bookings booking.Repository
}

func NewService(repo Repository, users user.Service, bookings booking.Repository) Service {
	return &service{
		repo:     repo,
		users:    users,
		bookings: bookings,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Item, error) {
	if _, err := s.users.GetByID(ctx, req.OwnerID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}

	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Description) == "" ||
		req.Available == nil {
		return nil, ErrMissingFields
	}

	i := &Item{
		OwnerID:     req.OwnerID,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Available:   *req.Available,
		RequestID:   req.RequestID,
	}
	if err := s.repo.Create(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *service) Get(ctx context.Context, id string) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetDetail(ctx context.Context, id, callerID string) (*Detail, error) {
	i, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := s.repo.CommentsForItem(ctx, id)
	if err != nil {
		return nil, err
	}

	d := &Detail{Item: *i, Comments: comments}

	// Only the owner sees the bookings around the item.
	if i.OwnerID == callerID {
		if err := s.attachBookings(ctx, d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

func (s *service) attachBookings(ctx context.Context, d *Detail) error {
	now := time.Now().UTC()

	last, err := s.bookings.LastForItem(ctx, d.ID, now)
	if err != nil {
		return err
	}
	if last != nil {
		d.LastBooking = &BookingTag{ID: last.ID, BookerID: last.BookerID, Start: last.Start, End: last.End}
	}

	next, err := s.bookings.NextForItem(ctx, d.ID, now)
	if err != nil {
		return err
	}
	if next != nil {
		d.NextBooking = &BookingTag{ID: next.ID, BookerID: next.BookerID, Start: next.Start, End: next.End}
	}

	return nil
}

func (s *service) Update(ctx context.Context, id, callerID string, req UpdateRequest) (*Item, error) {
	i, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// A non-owner gets the same "not found" as a missing item; the API does
	// not reveal that the item exists under someone else's account.
	if i.OwnerID != callerID {
		return nil, ErrNotFound
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		i.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) != "" {
		i.Description = strings.TrimSpace(*req.Description)
	}
	if req.Available != nil {
		i.Available = *req.Available
	}

	if err := s.repo.Update(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *service) ListByOwner(ctx context.Context, ownerID string) ([]*Detail, error) {
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}

	items, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	details := make([]*Detail, 0, len(items))
	for _, i := range items {
		comments, err := s.repo.CommentsForItem(ctx, i.ID)
		if err != nil {
			return nil, err
		}
		d := &Detail{Item: *i, Comments: comments}
		if err := s.attachBookings(ctx, d); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

func (s *service) Search(ctx context.Context, text string, page, pageSize int) ([]*Item, int, error) {
	if strings.TrimSpace(text) == "" {
		return []*Item{}, 0, nil
	}
	return s.repo.Search(ctx, strings.TrimSpace(text), page, pageSize)
}

func (s *service) AddComment(ctx context.Context, itemID, authorID, text string) (*Comment, error) {
	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}

	if _, err := s.repo.GetByID(ctx, itemID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyComment
	}

	// Review comments are reserved for users that actually held the item:
	// a past or current approved booking must exist.
	eligible, err := s.bookings.EligibleForComment(ctx, authorID, itemID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if len(eligible) == 0 {
		return nil, ErrNoBooking
	}

	c := &Comment{
		ItemID:     itemID,
		AuthorID:   authorID,
		AuthorName: author.Name,
		Text:       strings.TrimSpace(text),
	}
	if err := s.repo.AddComment(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
