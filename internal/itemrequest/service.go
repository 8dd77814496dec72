package itemrequest

import (
	"context"
	"errors"
	"strings"

	"github.com/peershare/shareit-backend/internal/user"
)

type Service interface {
	Create(ctx context.Context, requesterID, description string) (*ItemRequest, error)
	GetByID(ctx context.Context, callerID, id string) (*WithReplies, error)
	ListOwn(ctx context.Context, requesterID string) ([]*WithReplies, error)
	ListOthers(ctx context.Context, callerID string) ([]*ItemRequest, error)
}

type service struct {
	repo  Repository
	users user.Service
}

func NewService(repo Repository, users user.Service) Service {
	return &service{
		repo:  repo,
		users: users,
	}
}

func (s *service) resolveUser(ctx context.Context, id string) error {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *service) Create(ctx context.Context, requesterID, description string) (*ItemRequest, error) {
	if err := s.resolveUser(ctx, requesterID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}

	req := &ItemRequest{
		RequesterID: requesterID,
		Description: strings.TrimSpace(description),
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *service) withReplies(ctx context.Context, req *ItemRequest) (*WithReplies, error) {
	replies, err := s.repo.RepliesFor(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return &WithReplies{ItemRequest: *req, Replies: replies}, nil
}

func (s *service) GetByID(ctx context.Context, callerID, id string) (*WithReplies, error) {
	if err := s.resolveUser(ctx, callerID); err != nil {
		return nil, err
	}

	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withReplies(ctx, req)
}

func (s *service) ListOwn(ctx context.Context, requesterID string) ([]*WithReplies, error) {
	if err := s.resolveUser(ctx, requesterID); err != nil {
		return nil, err
	}

	requests, err := s.repo.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	out := make([]*WithReplies, 0, len(requests))
	for _, req := range requests {
		wr, err := s.withReplies(ctx, req)
		if err != nil {
			return nil, err
		}
		out = append(out, wr)
	}
	return out, nil
}

func (s *service) ListOthers(ctx context.Context, callerID string) ([]*ItemRequest, error) {
	if err := s.resolveUser(ctx, callerID); err != nil {
		return nil, err
	}
	return s.repo.ListOthers(ctx, callerID)
}
