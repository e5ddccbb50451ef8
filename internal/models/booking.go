package models

import "time"

type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
	// StatusCanceled is part of the status vocabulary but no operation
	// transitions into it.
	StatusCanceled BookingStatus = "CANCELED"
)

type Booking struct {
	ID       int64         `gorm:"primaryKey" json:"id"`
	Start    time.Time     `gorm:"column:start_date;not null" json:"start"`
	End      time.Time     `gorm:"column:end_date;not null" json:"end"`
	ItemID   int64         `gorm:"not null;index" json:"itemId"`
	BookerID int64         `gorm:"not null;index" json:"bookerId"`
	Status   BookingStatus `gorm:"type:varchar(20);not null;default:'WAITING'" json:"status"`

	Item   *Item `gorm:"foreignKey:ItemID" json:"-"`
	Booker *User `gorm:"foreignKey:BookerID" json:"-"`
}
