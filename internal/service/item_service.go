package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sharer-labs/shareit-server/internal/dto"
	"github.com/sharer-labs/shareit-server/internal/models"
	"github.com/sharer-labs/shareit-server/internal/repository"
)

type ItemService interface {
	Add(ctx context.Context, ownerID int64, req dto.CreateItemRequest) (*models.Item, error)
	Update(ctx context.Context, itemID, ownerID int64, req dto.UpdateItemRequest) (*models.Item, error)
	Search(ctx context.Context, text string, from, size int) ([]models.Item, error)
	GetByID(ctx context.Context, userID, itemID int64) (*dto.ItemDetailResponse, error)
	GetAllByOwner(ctx context.Context, ownerID int64, from, size int) ([]dto.ItemDetailResponse, error)
	AddComment(ctx context.Context, userID, itemID int64, text string) (*models.Comment, error)
}

type itemService struct {
	items    repository.ItemRepository
	bookings repository.BookingRepository
	comments repository.CommentRepository
	requests repository.ItemRequestRepository
	users    UserService
}

func NewItemService(
	items repository.ItemRepository,
	bookings repository.BookingRepository,
	comments repository.CommentRepository,
	requests repository.ItemRequestRepository,
	users UserService,
) ItemService {
	return &itemService{
		items:    items,
		bookings: bookings,
		comments: comments,
		requests: requests,
		users:    users,
	}
}

func (s *itemService) Add(ctx context.Context, ownerID int64, req dto.CreateItemRequest) (*models.Item, error) {
	if req.Name == nil || req.Description == nil || req.Available == nil ||
		strings.TrimSpace(*req.Name) == "" {
		return nil, ErrInvalidItem
	}

	owner, err := s.users.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	item := &models.Item{
		Name:        *req.Name,
		Description: *req.Description,
		Available:   *req.Available,
		OwnerID:     owner.ID,
	}

	if req.RequestID != nil {
		if _, err := s.requests.FindByID(ctx, *req.RequestID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrRequestNotFound
			}
			return nil, err
		}
		item.RequestID = req.RequestID
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) Update(ctx context.Context, itemID, ownerID int64, req dto.UpdateItemRequest) (*models.Item, error) {
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := s.items.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) Search(ctx context.Context, text string, from, size int) ([]models.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []models.Item{}, nil
	}
	return s.items.Search(ctx, text, repository.NewPage(from, size))
}

func (s *itemService) GetByID(ctx context.Context, userID, itemID int64) (*dto.ItemDetailResponse, error) {
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	detail := dto.ToItemDetailResponse(item)
	if err := s.attachComments(ctx, &detail); err != nil {
		return nil, err
	}
	// Booking info is the owner's view only.
	if item.OwnerID == userID {
		if err := s.attachBookings(ctx, &detail); err != nil {
			return nil, err
		}
	}
	return &detail, nil
}

func (s *itemService) GetAllByOwner(ctx context.Context, ownerID int64, from, size int) ([]dto.ItemDetailResponse, error) {
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}

	items, err := s.items.FindAllByOwner(ctx, ownerID, repository.NewPage(from, size))
	if err != nil {
		return nil, err
	}

	details := make([]dto.ItemDetailResponse, 0, len(items))
	for i := range items {
		detail := dto.ToItemDetailResponse(&items[i])
		if err := s.attachComments(ctx, &detail); err != nil {
			return nil, err
		}
		if err := s.attachBookings(ctx, &detail); err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, nil
}

func (s *itemService) AddComment(ctx context.Context, userID, itemID int64, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyComment
	}

	author, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	finished, err := s.bookings.HasFinishedBooking(ctx, userID, itemID, time.Now())
	if err != nil {
		return nil, err
	}
	if !finished {
		return nil, ErrCommentNotAllowed
	}

	comment := &models.Comment{
		Text:     text,
		ItemID:   item.ID,
		AuthorID: author.ID,
		Created:  time.Now(),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	comment.Author = author
	return comment, nil
}

func (s *itemService) findItem(ctx context.Context, id int64) (*models.Item, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *itemService) attachComments(ctx context.Context, detail *dto.ItemDetailResponse) error {
	comments, err := s.comments.FindAllByItem(ctx, detail.ID)
	if err != nil {
		return err
	}
	detail.Comments = make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		detail.Comments = append(detail.Comments, dto.ToCommentResponse(&comments[i]))
	}
	return nil
}

func (s *itemService) attachBookings(ctx context.Context, detail *dto.ItemDetailResponse) error {
	now := time.Now()
	last, err := s.bookings.FindLastForItem(ctx, detail.ID, now)
	if err != nil {
		return err
	}
	next, err := s.bookings.FindNextForItem(ctx, detail.ID, now)
	if err != nil {
		return err
	}
	detail.LastBooking = dto.ToBookingShort(last)
	detail.NextBooking = dto.ToBookingShort(next)
	return nil
}
