package dto

import (
	"time"

	"github.com/sharer-labs/shareit-server/internal/models"
)

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateUserRequest carries a partial update: nil fields keep the stored
// values.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type CreateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
	RequestID   *int64  `json:"requestId"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type CreateBookingRequest struct {
	ItemID int64      `json:"itemId"`
	Start  *time.Time `json:"start"`
	End    *time.Time `json:"end"`
	// Status is accepted in the payload but ignored: new bookings always
	// start out WAITING.
	Status models.BookingStatus `json:"status"`
}

type CreateCommentRequest struct {
	Text string `json:"text"`
}

type CreateItemRequestRequest struct {
	Description *string `json:"description"`
}
