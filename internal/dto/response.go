package dto

import (
	"time"

	"github.com/sharer-labs/shareit-server/internal/models"
)

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

// BookingShort is the compact booking view embedded in item responses.
type BookingShort struct {
	ID       int64                `json:"id"`
	Start    time.Time            `json:"start"`
	End      time.Time            `json:"end"`
	BookerID int64                `json:"bookerId"`
	ItemID   int64                `json:"itemId"`
	Status   models.BookingStatus `json:"status"`
}

type BookingResponse struct {
	ID     int64                `json:"id"`
	Start  time.Time            `json:"start"`
	End    time.Time            `json:"end"`
	Booker UserResponse         `json:"booker"`
	Item   ItemResponse         `json:"item"`
	Status models.BookingStatus `json:"status"`
}

type CommentResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

// ItemDetailResponse is an item enriched with its comments and, for the
// owner, the last and next approved bookings.
type ItemDetailResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Available   bool              `json:"available"`
	LastBooking *BookingShort     `json:"lastBooking"`
	NextBooking *BookingShort     `json:"nextBooking"`
	Comments    []CommentResponse `json:"comments"`
}

type ItemRequestResponse struct {
	ID          int64          `json:"id"`
	Description string         `json:"description"`
	RequestorID int64          `json:"requestorId"`
	Created     time.Time      `json:"created"`
	Items       []ItemResponse `json:"items"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func ToItemResponse(i *models.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		RequestID:   i.RequestID,
	}
}

func ToBookingShort(b *models.Booking) *BookingShort {
	if b == nil {
		return nil
	}
	return &BookingShort{
		ID:       b.ID,
		Start:    b.Start,
		End:      b.End,
		BookerID: b.BookerID,
		ItemID:   b.ItemID,
		Status:   b.Status,
	}
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: b.Status,
	}
	if b.Booker != nil {
		resp.Booker = ToUserResponse(b.Booker)
	}
	if b.Item != nil {
		resp.Item = ToItemResponse(b.Item)
	}
	return resp
}

func ToCommentResponse(c *models.Comment) CommentResponse {
	resp := CommentResponse{
		ID:      c.ID,
		Text:    c.Text,
		Created: c.Created,
	}
	if c.Author != nil {
		resp.AuthorName = c.Author.Name
	}
	return resp
}

func ToItemDetailResponse(i *models.Item) ItemDetailResponse {
	return ItemDetailResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		Comments:    []CommentResponse{},
	}
}

func ToItemRequestResponse(r *models.ItemRequest) ItemRequestResponse {
	return ItemRequestResponse{
		ID:          r.ID,
		Description: r.Description,
		RequestorID: r.RequestorID,
		Created:     r.Created,
		Items:       []ItemResponse{},
	}
}
