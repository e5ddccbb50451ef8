package repository

import (
	"context"

	"github.com/sharer-labs/shareit-server/internal/models"
	"gorm.io/gorm"
)

type itemRequestRepository struct {
	db *gorm.DB
}

func NewItemRequestRepository(db *gorm.DB) ItemRequestRepository {
	return &itemRequestRepository{db: db}
}

func (r *itemRequestRepository) Create(ctx context.Context, request *models.ItemRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *itemRequestRepository) FindByID(ctx context.Context, id int64) (*models.ItemRequest, error) {
	var request models.ItemRequest
	if err := r.db.WithContext(ctx).First(&request, id).Error; err != nil {
		return nil, translate(err)
	}
	return &request, nil
}

func (r *itemRequestRepository) FindAllByRequestor(ctx context.Context, requestorID int64) ([]models.ItemRequest, error) {
	var requests []models.ItemRequest
	err := r.db.WithContext(ctx).
		Where("requestor_id = ?", requestorID).
		Order("created ASC, id ASC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *itemRequestRepository) FindAllOthers(ctx context.Context, requestorID int64, page Page) ([]models.ItemRequest, error) {
	var requests []models.ItemRequest
	err := r.db.WithContext(ctx).
		Where("requestor_id <> ?", requestorID).
		Order("created DESC, id DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}
