package service

import (
	"context"
	"errors"
	"time"

	"github.com/sharer-labs/shareit-server/internal/dto"
	"github.com/sharer-labs/shareit-server/internal/models"
	"github.com/sharer-labs/shareit-server/internal/repository"
)

type ItemRequestService interface {
	Add(ctx context.Context, userID int64, req dto.CreateItemRequestRequest) (*models.ItemRequest, error)
	GetAllByUser(ctx context.Context, userID int64) ([]dto.ItemRequestResponse, error)
	GetByID(ctx context.Context, userID, requestID int64) (*dto.ItemRequestResponse, error)
	GetAllOthers(ctx context.Context, userID int64, from, size int) ([]dto.ItemRequestResponse, error)
}

type itemRequestService struct {
	requests repository.ItemRequestRepository
	items    repository.ItemRepository
	users    UserService
}

func NewItemRequestService(
	requests repository.ItemRequestRepository,
	items repository.ItemRepository,
	users UserService,
) ItemRequestService {
	return &itemRequestService{requests: requests, items: items, users: users}
}

func (s *itemRequestService) Add(ctx context.Context, userID int64, req dto.CreateItemRequestRequest) (*models.ItemRequest, error) {
	// Only a missing description is rejected; a blank one is accepted, as it
	// always was.
	if req.Description == nil {
		return nil, ErrEmptyDescription
	}

	requestor, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	request := &models.ItemRequest{
		Description: *req.Description,
		RequestorID: requestor.ID,
		Created:     time.Now(),
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *itemRequestService) GetAllByUser(ctx context.Context, userID int64) ([]dto.ItemRequestResponse, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	requests, err := s.requests.FindAllByRequestor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.annotateAll(ctx, requests)
}

func (s *itemRequestService) GetByID(ctx context.Context, userID, requestID int64) (*dto.ItemRequestResponse, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	request, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	resp := dto.ToItemRequestResponse(request)
	if err := s.annotate(ctx, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *itemRequestService) GetAllOthers(ctx context.Context, userID int64, from, size int) ([]dto.ItemRequestResponse, error) {
	if from < 0 || size <= 0 {
		return nil, ErrInvalidPaging
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	requests, err := s.requests.FindAllOthers(ctx, userID, repository.NewPage(from, size))
	if err != nil {
		return nil, err
	}
	return s.annotateAll(ctx, requests)
}

func (s *itemRequestService) annotateAll(ctx context.Context, requests []models.ItemRequest) ([]dto.ItemRequestResponse, error) {
	responses := make([]dto.ItemRequestResponse, 0, len(requests))
	for i := range requests {
		resp := dto.ToItemRequestResponse(&requests[i])
		if err := s.annotate(ctx, &resp); err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// annotate attaches the items that were created in response to the request.
func (s *itemRequestService) annotate(ctx context.Context, resp *dto.ItemRequestResponse) error {
	items, err := s.items.FindAllByRequest(ctx, resp.ID)
	if err != nil {
		return err
	}
	resp.Items = make([]dto.ItemResponse, 0, len(items))
	for i := range items {
		resp.Items = append(resp.Items, dto.ToItemResponse(&items[i]))
	}
	return nil
}
