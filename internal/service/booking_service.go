package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sharer-labs/shareit-server/internal/dto"
	"github.com/sharer-labs/shareit-server/internal/models"
	"github.com/sharer-labs/shareit-server/internal/repository"
	"github.com/sharer-labs/shareit-server/pkg/rabbitmq"
)

type BookingService interface {
	Create(ctx context.Context, bookerID int64, req dto.CreateBookingRequest) (*models.Booking, error)
	GetByID(ctx context.Context, userID, bookingID int64) (*models.Booking, error)
	Approve(ctx context.Context, userID, bookingID int64, approved bool) (*models.Booking, error)
	GetAllByBooker(ctx context.Context, userID int64, state string, from, size int) ([]models.Booking, error)
	GetAllByOwner(ctx context.Context, userID int64, state string, from, size int) ([]models.Booking, error)
}

type bookingService struct {
	bookings  repository.BookingRepository
	items     repository.ItemRepository
	users     UserService
	publisher *rabbitmq.Publisher
}

// NewBookingService wires the booking rules; publisher may be nil, in which
// case lifecycle events are not emitted.
func NewBookingService(
	bookings repository.BookingRepository,
	items repository.ItemRepository,
	users UserService,
	publisher *rabbitmq.Publisher,
) BookingService {
	return &bookingService{
		bookings:  bookings,
		items:     items,
		users:     users,
		publisher: publisher,
	}
}

func (s *bookingService) Create(ctx context.Context, bookerID int64, req dto.CreateBookingRequest) (*models.Booking, error) {
	now := time.Now()
	if req.Start == nil || req.End == nil ||
		req.Start.Equal(*req.End) ||
		req.Start.Before(now) ||
		req.End.Before(*req.Start) ||
		req.End.Before(now) {
		return nil, ErrInvalidBookingTime
	}

	item, err := s.items.FindByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	booker, err := s.users.GetByID(ctx, bookerID)
	if err != nil {
		return nil, err
	}

	if item.OwnerID == bookerID {
		return nil, ErrOwnBooking
	}
	if !item.Available {
		return nil, ErrItemUnavailable
	}

	booking := &models.Booking{
		Start:    *req.Start,
		End:      *req.End,
		ItemID:   item.ID,
		BookerID: booker.ID,
		// Whatever status the caller supplied, new bookings wait for the
		// owner's decision.
		Status: models.StatusWaiting,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}
	booking.Item = item
	booking.Booker = booker

	s.publish("booking.created", booking)
	return booking, nil
}

func (s *bookingService) GetByID(ctx context.Context, userID, bookingID int64) (*models.Booking, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Item.OwnerID != userID && booking.BookerID != userID {
		return nil, ErrAccessDenied
	}
	return booking, nil
}

func (s *bookingService) Approve(ctx context.Context, userID, bookingID int64, approved bool) (*models.Booking, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Item.OwnerID != userID {
		return nil, ErrAccessDenied
	}
	if booking.Status == models.StatusApproved {
		return nil, ErrAlreadyApproved
	}

	if approved {
		booking.Status = models.StatusApproved
	} else {
		booking.Status = models.StatusRejected
	}
	if err := s.bookings.Save(ctx, booking); err != nil {
		return nil, err
	}

	if approved {
		s.publish("booking.approved", booking)
	} else {
		s.publish("booking.rejected", booking)
	}
	return booking, nil
}

func (s *bookingService) GetAllByBooker(ctx context.Context, userID int64, state string, from, size int) ([]models.Booking, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	st, err := parseState(state)
	if err != nil {
		return nil, err
	}
	return s.bookings.FindAllByBooker(ctx, userID, st, time.Now(), repository.NewPage(from, size))
}

func (s *bookingService) GetAllByOwner(ctx context.Context, userID int64, state string, from, size int) ([]models.Booking, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	st, err := parseState(state)
	if err != nil {
		return nil, err
	}
	return s.bookings.FindAllByOwner(ctx, userID, st, time.Now(), repository.NewPage(from, size))
}

func (s *bookingService) findBooking(ctx context.Context, id int64) (*models.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) publish(routingKey string, booking *models.Booking) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.Publish(routingKey, booking)
}

func parseState(state string) (repository.BookingState, error) {
	switch repository.BookingState(state) {
	case repository.StateAll, repository.StateCurrent, repository.StatePast,
		repository.StateFuture, repository.StateWaiting, repository.StateRejected:
		return repository.BookingState(state), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownState, state)
	}
}
