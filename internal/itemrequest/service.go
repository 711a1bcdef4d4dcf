package itemrequest

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/peershare/item-sharing-backend/internal/pkg/paging"
	"github.com/peershare/item-sharing-backend/internal/user"
)

// Service defines business logic related to item requests.
type Service interface {
	Create(ctx context.Context, requesterID, description string) (*ItemRequest, error)
	ListOwn(ctx context.Context, requesterID string) ([]*WithAnswers, error)
	ListOthers(ctx context.Context, viewerID string, from int, size *int) ([]*WithAnswers, error)
	GetByID(ctx context.Context, viewerID, requestID string) (*WithAnswers, error)
}

type service struct {
	repo   Repository
	users  user.Service
	logger zerolog.Logger
}

// NewService creates a new item request Service.
func NewService(repo Repository, users user.Service, logger zerolog.Logger) Service {
	return &service{
		repo:   repo,
		users:  users,
		logger: logger.With().Str("component", "itemrequest_service").Logger(),
	}
}

func (s *service) Create(ctx context.Context, requesterID, description string) (*ItemRequest, error) {
	if _, err := s.users.GetByID(ctx, requesterID); err != nil {
		return nil, err
	}

	req := &ItemRequest{
		Description: strings.TrimSpace(description),
		RequesterID: requesterID,
	}

	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}

	s.logger.Info().Str("request_id", req.ID).Str("requester_id", requesterID).Msg("item request created")
	return req, nil
}

func (s *service) ListOwn(ctx context.Context, requesterID string) ([]*WithAnswers, error) {
	if _, err := s.users.GetByID(ctx, requesterID); err != nil {
		return nil, err
	}

	reqs, err := s.repo.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	return s.attachAnswers(ctx, reqs)
}

func (s *service) ListOthers(ctx context.Context, viewerID string, from int, size *int) ([]*WithAnswers, error) {
	if _, err := s.users.GetByID(ctx, viewerID); err != nil {
		return nil, err
	}

	reqs, err := s.repo.ListOthers(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	page, err := paging.Window(reqs, from, size)
	if err != nil {
		return nil, err
	}

	return s.attachAnswers(ctx, page)
}

func (s *service) GetByID(ctx context.Context, viewerID, requestID string) (*WithAnswers, error) {
	if _, err := s.users.GetByID(ctx, viewerID); err != nil {
		return nil, err
	}

	req, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	views, err := s.attachAnswers(ctx, []*ItemRequest{req})
	if err != nil {
		return nil, err
	}

	return views[0], nil
}

func (s *service) attachAnswers(ctx context.Context, reqs []*ItemRequest) ([]*WithAnswers, error) {
	ids := make([]string, 0, len(reqs))
	for _, req := range reqs {
		ids = append(ids, req.ID)
	}

	answers, err := s.repo.ListAnswers(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]*WithAnswers, 0, len(reqs))
	for _, req := range reqs {
		items := answers[req.ID]
		if items == nil {
			items = []*Answer{}
		}
		views = append(views, &WithAnswers{ItemRequest: *req, Items: items})
	}

	return views, nil
}
