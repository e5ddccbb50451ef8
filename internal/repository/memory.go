package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sharer-labs/shareit-server/internal/models"
)

// Memory-backed implementations of the repository interfaces. They mirror
// the SQL backend's ordering and filtering semantics and serve as the test
// double and as the lineage of the project's original map-based store.

type MemoryUserRepository struct {
	mu     sync.Mutex
	users  map[int64]models.User
	nextID int64
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[int64]models.User)}
}

func (r *MemoryUserRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (r *MemoryUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *MemoryUserRepository) Save(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

type MemoryItemRepository struct {
	mu     sync.Mutex
	items  map[int64]models.Item
	nextID int64
}

func NewMemoryItemRepository() *MemoryItemRepository {
	return &MemoryItemRepository{items: make(map[int64]models.Item)}
}

func (r *MemoryItemRepository) Create(ctx context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	item.ID = r.nextID
	r.items[item.ID] = *item
	return nil
}

func (r *MemoryItemRepository) FindByID(ctx context.Context, id int64) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

func (r *MemoryItemRepository) Save(ctx context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID] = *item
	return nil
}

func (r *MemoryItemRepository) FindAllByOwner(ctx context.Context, ownerID int64, page Page) ([]models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []models.Item
	for _, item := range r.items {
		if item.OwnerID == ownerID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return paginate(items, page), nil
}

func (r *MemoryItemRepository) Search(ctx context.Context, text string, page Page) ([]models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	needle := strings.ToLower(text)
	var items []models.Item
	for _, item := range r.items {
		if !item.Available {
			continue
		}
		if strings.Contains(strings.ToLower(item.Name), needle) ||
			strings.Contains(strings.ToLower(item.Description), needle) {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return paginate(items, page), nil
}

func (r *MemoryItemRepository) FindAllByRequest(ctx context.Context, requestID int64) ([]models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []models.Item
	for _, item := range r.items {
		if item.RequestID != nil && *item.RequestID == requestID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

type MemoryBookingRepository struct {
	mu       sync.Mutex
	bookings map[int64]models.Booking
	nextID   int64

	users *MemoryUserRepository
	items *MemoryItemRepository
}

// NewMemoryBookingRepository needs the user and item stores to resolve
// associations the SQL backend loads via Preload.
func NewMemoryBookingRepository(users *MemoryUserRepository, items *MemoryItemRepository) *MemoryBookingRepository {
	return &MemoryBookingRepository{
		bookings: make(map[int64]models.Booking),
		users:    users,
		items:    items,
	}
}

func (r *MemoryBookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	booking.ID = r.nextID
	stored := *booking
	stored.Item = nil
	stored.Booker = nil
	r.bookings[booking.ID] = stored
	return nil
}

func (r *MemoryBookingRepository) FindByID(ctx context.Context, id int64) (*models.Booking, error) {
	r.mu.Lock()
	booking, ok := r.bookings[id]
	r.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}
	r.attach(ctx, &booking)
	return &booking, nil
}

func (r *MemoryBookingRepository) Save(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *booking
	stored.Item = nil
	stored.Booker = nil
	r.bookings[booking.ID] = stored
	return nil
}

func (r *MemoryBookingRepository) FindAllByBooker(ctx context.Context, bookerID int64, state BookingState, now time.Time, page Page) ([]models.Booking, error) {
	return r.list(ctx, state, now, page, func(b models.Booking) bool {
		return b.BookerID == bookerID
	})
}

func (r *MemoryBookingRepository) FindAllByOwner(ctx context.Context, ownerID int64, state BookingState, now time.Time, page Page) ([]models.Booking, error) {
	return r.list(ctx, state, now, page, func(b models.Booking) bool {
		item, err := r.items.FindByID(ctx, b.ItemID)
		return err == nil && item.OwnerID == ownerID
	})
}

func (r *MemoryBookingRepository) list(ctx context.Context, state BookingState, now time.Time, page Page, match func(models.Booking) bool) ([]models.Booking, error) {
	r.mu.Lock()
	var bookings []models.Booking
	for _, b := range r.bookings {
		if matchState(b, state, now) && match(b) {
			bookings = append(bookings, b)
		}
	}
	r.mu.Unlock()

	sort.Slice(bookings, func(i, j int) bool {
		if !bookings[i].Start.Equal(bookings[j].Start) {
			return bookings[i].Start.After(bookings[j].Start)
		}
		return bookings[i].ID > bookings[j].ID
	})
	bookings = paginate(bookings, page)
	for i := range bookings {
		r.attach(ctx, &bookings[i])
	}
	return bookings, nil
}

func matchState(b models.Booking, state BookingState, now time.Time) bool {
	switch state {
	case StatePast:
		return b.End.Before(now)
	case StateCurrent:
		return b.Start.Before(now) && b.End.After(now)
	case StateFuture:
		return b.Start.After(now)
	case StateWaiting:
		return b.Status == models.StatusWaiting
	case StateRejected:
		return b.Status == models.StatusRejected
	default:
		return true
	}
}

func (r *MemoryBookingRepository) HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.BookerID == bookerID && b.ItemID == itemID &&
			b.Status == models.StatusApproved && b.End.Before(now) {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryBookingRepository) FindLastForItem(ctx context.Context, itemID int64, now time.Time) (*models.Booking, error) {
	return r.pickApproved(itemID, func(b models.Booking) bool {
		return b.Start.Before(now)
	}, func(cur, best models.Booking) bool {
		if !cur.Start.Equal(best.Start) {
			return cur.Start.After(best.Start)
		}
		return cur.ID > best.ID
	}), nil
}

func (r *MemoryBookingRepository) FindNextForItem(ctx context.Context, itemID int64, now time.Time) (*models.Booking, error) {
	return r.pickApproved(itemID, func(b models.Booking) bool {
		return b.Start.After(now)
	}, func(cur, best models.Booking) bool {
		if !cur.Start.Equal(best.Start) {
			return cur.Start.Before(best.Start)
		}
		return cur.ID < best.ID
	}), nil
}

func (r *MemoryBookingRepository) pickApproved(itemID int64, match func(models.Booking) bool, better func(cur, best models.Booking) bool) *models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	var best *models.Booking
	for _, b := range r.bookings {
		if b.ItemID != itemID || b.Status != models.StatusApproved || !match(b) {
			continue
		}
		if best == nil || better(b, *best) {
			candidate := b
			best = &candidate
		}
	}
	return best
}

func (r *MemoryBookingRepository) attach(ctx context.Context, b *models.Booking) {
	if item, err := r.items.FindByID(ctx, b.ItemID); err == nil {
		b.Item = item
	}
	if user, err := r.users.FindByID(ctx, b.BookerID); err == nil {
		b.Booker = user
	}
}

type MemoryCommentRepository struct {
	mu       sync.Mutex
	comments map[int64]models.Comment
	nextID   int64

	users *MemoryUserRepository
}

func NewMemoryCommentRepository(users *MemoryUserRepository) *MemoryCommentRepository {
	return &MemoryCommentRepository{comments: make(map[int64]models.Comment), users: users}
}

func (r *MemoryCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	comment.ID = r.nextID
	stored := *comment
	stored.Author = nil
	r.comments[comment.ID] = stored
	return nil
}

func (r *MemoryCommentRepository) FindAllByItem(ctx context.Context, itemID int64) ([]models.Comment, error) {
	r.mu.Lock()
	var comments []models.Comment
	for _, c := range r.comments {
		if c.ItemID == itemID {
			comments = append(comments, c)
		}
	}
	r.mu.Unlock()

	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	for i := range comments {
		if author, err := r.users.FindByID(ctx, comments[i].AuthorID); err == nil {
			comments[i].Author = author
		}
	}
	return comments, nil
}

type MemoryItemRequestRepository struct {
	mu       sync.Mutex
	requests map[int64]models.ItemRequest
	nextID   int64
}

func NewMemoryItemRequestRepository() *MemoryItemRequestRepository {
	return &MemoryItemRequestRepository{requests: make(map[int64]models.ItemRequest)}
}

func (r *MemoryItemRequestRepository) Create(ctx context.Context, request *models.ItemRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	request.ID = r.nextID
	r.requests[request.ID] = *request
	return nil
}

func (r *MemoryItemRequestRepository) FindByID(ctx context.Context, id int64) (*models.ItemRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	request, ok := r.requests[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &request, nil
}

func (r *MemoryItemRequestRepository) FindAllByRequestor(ctx context.Context, requestorID int64) ([]models.ItemRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var requests []models.ItemRequest
	for _, req := range r.requests {
		if req.RequestorID == requestorID {
			requests = append(requests, req)
		}
	}
	sort.Slice(requests, func(i, j int) bool {
		if !requests[i].Created.Equal(requests[j].Created) {
			return requests[i].Created.Before(requests[j].Created)
		}
		return requests[i].ID < requests[j].ID
	})
	return requests, nil
}

func (r *MemoryItemRequestRepository) FindAllOthers(ctx context.Context, requestorID int64, page Page) ([]models.ItemRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var requests []models.ItemRequest
	for _, req := range r.requests {
		if req.RequestorID != requestorID {
			requests = append(requests, req)
		}
	}
	sort.Slice(requests, func(i, j int) bool {
		if !requests[i].Created.Equal(requests[j].Created) {
			return requests[i].Created.After(requests[j].Created)
		}
		return requests[i].ID > requests[j].ID
	})
	return paginate(requests, page), nil
}

func paginate[T any](list []T, page Page) []T {
	if page.Offset >= len(list) {
		return []T{}
	}
	end := page.Offset + page.Limit
	if end > len(list) {
		end = len(list)
	}
	return list[page.Offset:end]
}
