package models

import "time"

type Comment struct {
	ID       int64     `gorm:"primaryKey" json:"id"`
	Text     string    `gorm:"not null" json:"text"`
	ItemID   int64     `gorm:"not null;index" json:"itemId"`
	AuthorID int64     `gorm:"not null" json:"authorId"`
	Created  time.Time `gorm:"not null" json:"created"`

	Author *User `gorm:"foreignKey:AuthorID" json:"-"`
}
