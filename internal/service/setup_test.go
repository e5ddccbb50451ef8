package service

import (
	"context"
	"testing"
	"time"

	"github.com/sharer-labs/shareit-server/internal/dto"
	"github.com/sharer-labs/shareit-server/internal/models"
	"github.com/sharer-labs/shareit-server/internal/repository"
	"github.com/stretchr/testify/require"
)

type env struct {
	users    *repository.MemoryUserRepository
	items    *repository.MemoryItemRepository
	bookings *repository.MemoryBookingRepository
	comments *repository.MemoryCommentRepository
	requests *repository.MemoryItemRequestRepository

	userSvc    UserService
	itemSvc    ItemService
	bookingSvc BookingService
	requestSvc ItemRequestService
}

func newEnv() *env {
	users := repository.NewMemoryUserRepository()
	items := repository.NewMemoryItemRepository()
	bookings := repository.NewMemoryBookingRepository(users, items)
	comments := repository.NewMemoryCommentRepository(users)
	requests := repository.NewMemoryItemRequestRepository()

	userSvc := NewUserService(users)
	return &env{
		users:    users,
		items:    items,
		bookings: bookings,
		comments: comments,
		requests: requests,

		userSvc:    userSvc,
		itemSvc:    NewItemService(items, bookings, comments, requests, userSvc),
		bookingSvc: NewBookingService(bookings, items, userSvc, nil),
		requestSvc: NewItemRequestService(requests, items, userSvc),
	}
}

func (e *env) addUser(t *testing.T, name, email string) *models.User {
	t.Helper()
	user, err := e.userSvc.Create(context.Background(), dto.CreateUserRequest{Name: name, Email: email})
	require.NoError(t, err)
	return user
}

func (e *env) addItem(t *testing.T, ownerID int64, name, description string, available bool) *models.Item {
	t.Helper()
	item, err := e.itemSvc.Add(context.Background(), ownerID, dto.CreateItemRequest{
		Name:        &name,
		Description: &description,
		Available:   &available,
	})
	require.NoError(t, err)
	return item
}

// addBooking stores a booking directly, bypassing the service's
// start-in-the-future validation so past and current windows can be staged.
func (e *env) addBooking(t *testing.T, bookerID, itemID int64, start, end time.Time, status models.BookingStatus) *models.Booking {
	t.Helper()
	booking := &models.Booking{
		Start:    start,
		End:      end,
		ItemID:   itemID,
		BookerID: bookerID,
		Status:   status,
	}
	require.NoError(t, e.bookings.Create(context.Background(), booking))
	return booking
}

func strPtr(s string) *string        { return &s }
func boolPtr(b bool) *bool           { return &b }
func int64Ptr(v int64) *int64        { return &v }
func timePtr(v time.Time) *time.Time { return &v }
