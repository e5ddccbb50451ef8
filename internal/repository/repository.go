package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sharer-labs/shareit-server/internal/models"
)

// ErrNotFound is returned by every backend when a record does not exist, so
// services stay agnostic of the storage engine.
var ErrNotFound = errors.New("record not found")

// Page translates the API's from/size parameters into an offset window. The
// from value is rounded down to a page boundary (from>0 ? from/size : 0),
// which is exact only when from is a multiple of size. The original service
// paginated this way and callers depend on it.
type Page struct {
	Offset int
	Limit  int
}

const DefaultPageSize = 10

func NewPage(from, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	page := 0
	if from > 0 {
		page = from / size
	}
	return Page{Offset: page * size, Limit: size}
}

// BookingState selects one of the overlapping booking list filters.
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Save(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
}

type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	FindByID(ctx context.Context, id int64) (*models.Item, error)
	Save(ctx context.Context, item *models.Item) error
	// FindAllByOwner returns the owner's items ordered by id ascending.
	FindAllByOwner(ctx context.Context, ownerID int64, page Page) ([]models.Item, error)
	// Search matches available items whose name or description contains text,
	// case-insensitively.
	Search(ctx context.Context, text string, page Page) ([]models.Item, error)
	FindAllByRequest(ctx context.Context, requestID int64) ([]models.Item, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	// FindByID loads the booking together with its item and booker.
	FindByID(ctx context.Context, id int64) (*models.Booking, error)
	Save(ctx context.Context, booking *models.Booking) error
	// FindAllByBooker and FindAllByOwner order by start descending, id
	// descending as the deterministic tie-break.
	FindAllByBooker(ctx context.Context, bookerID int64, state BookingState, now time.Time, page Page) ([]models.Booking, error)
	FindAllByOwner(ctx context.Context, ownerID int64, state BookingState, now time.Time, page Page) ([]models.Booking, error)
	// HasFinishedBooking reports whether the user has an APPROVED booking of
	// the item that ended before now.
	HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
	// FindLastForItem returns the APPROVED booking with the latest start
	// before now (ties broken by highest id), or nil when there is none.
	FindLastForItem(ctx context.Context, itemID int64, now time.Time) (*models.Booking, error)
	// FindNextForItem returns the APPROVED booking with the earliest start
	// after now (ties broken by lowest id), or nil when there is none.
	FindNextForItem(ctx context.Context, itemID int64, now time.Time) (*models.Booking, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	// FindAllByItem returns the item's comments with authors loaded, ordered
	// by id ascending.
	FindAllByItem(ctx context.Context, itemID int64) ([]models.Comment, error)
}

type ItemRequestRepository interface {
	Create(ctx context.Context, request *models.ItemRequest) error
	FindByID(ctx context.Context, id int64) (*models.ItemRequest, error)
	// FindAllByRequestor returns the user's own requests ordered by created
	// ascending.
	FindAllByRequestor(ctx context.Context, requestorID int64) ([]models.ItemRequest, error)
	// FindAllOthers returns requests not authored by the user, newest first.
	FindAllOthers(ctx context.Context, requestorID int64, page Page) ([]models.ItemRequest, error)
}
