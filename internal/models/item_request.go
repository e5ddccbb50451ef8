package models

import "time"

type ItemRequest struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"not null" json:"description"`
	RequestorID int64     `gorm:"not null;index" json:"requestorId"`
	Created     time.Time `gorm:"not null" json:"created"`

	Requestor *User `gorm:"foreignKey:RequestorID" json:"-"`
}
