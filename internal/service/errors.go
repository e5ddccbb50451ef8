package service

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrRequestNotFound = errors.New("item request not found")

	ErrEmailExists = errors.New("email is already registered")
	ErrInvalidUser = errors.New("name and email are required")
	ErrInvalidItem = errors.New("name, description and available are required")

	ErrInvalidBookingTime = errors.New("booking time is not valid")
	ErrItemUnavailable    = errors.New("item is not available for booking")
	// ErrOwnBooking and ErrAccessDenied surface as 404, not 403: the API
	// hides other users' bookings instead of admitting they exist.
	ErrOwnBooking      = errors.New("item can not be booked by its owner")
	ErrAccessDenied    = errors.New("user does not have access to the booking")
	ErrNotOwner        = errors.New("user is not the owner of the item")
	ErrAlreadyApproved = errors.New("booking status was already approved")

	// ErrUnknownState deliberately surfaces as an internal error; the
	// original service reported unrecognized state strings with a 500.
	ErrUnknownState = errors.New("Unknown state")

	ErrEmptyComment      = errors.New("comment text is required")
	ErrCommentNotAllowed = errors.New("commenting requires a finished booking of the item")

	ErrEmptyDescription = errors.New("item request description is required")
	ErrInvalidPaging    = errors.New("from must be >= 0 and size must be > 0")
)
