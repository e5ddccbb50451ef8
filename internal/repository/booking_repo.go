package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sharer-labs/shareit-server/internal/models"
	"gorm.io/gorm"
)

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id int64) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		First(&booking, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &booking, nil
}

func (r *bookingRepository) Save(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *bookingRepository) FindAllByBooker(ctx context.Context, bookerID int64, state BookingState, now time.Time, page Page) ([]models.Booking, error) {
	q := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		Where("booker_id = ?", bookerID)
	return r.listByState(q, state, now, page)
}

func (r *bookingRepository) FindAllByOwner(ctx context.Context, ownerID int64, state BookingState, now time.Time, page Page) ([]models.Booking, error) {
	q := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ?", ownerID)
	return r.listByState(q, state, now, page)
}

func (r *bookingRepository) listByState(q *gorm.DB, state BookingState, now time.Time, page Page) ([]models.Booking, error) {
	switch state {
	case StateAll:
	case StatePast:
		q = q.Where("end_date < ?", now)
	case StateCurrent:
		q = q.Where("start_date < ? AND end_date > ?", now, now)
	case StateFuture:
		q = q.Where("start_date > ?", now)
	case StateWaiting:
		q = q.Where("status = ?", models.StatusWaiting)
	case StateRejected:
		q = q.Where("status = ?", models.StatusRejected)
	}

	var bookings []models.Booking
	err := q.Order("start_date DESC, bookings.id DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("booker_id = ? AND item_id = ? AND status = ? AND end_date < ?",
			bookerID, itemID, models.StatusApproved, now).
		Count(&count).Error
	return count > 0, err
}

func (r *bookingRepository) FindLastForItem(ctx context.Context, itemID int64, now time.Time) (*models.Booking, error) {
	return r.firstApproved(ctx, itemID, "start_date < ?", now, "start_date DESC, id DESC")
}

func (r *bookingRepository) FindNextForItem(ctx context.Context, itemID int64, now time.Time) (*models.Booking, error) {
	return r.firstApproved(ctx, itemID, "start_date > ?", now, "start_date ASC, id ASC")
}

func (r *bookingRepository) firstApproved(ctx context.Context, itemID int64, cond string, now time.Time, order string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Where("item_id = ? AND status = ?", itemID, models.StatusApproved).
		Where(cond, now).
		Order(order).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}
