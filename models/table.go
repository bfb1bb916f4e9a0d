package models

import "time"

// Table is a physical dining table. Label is the human-assigned number
// or name shown to guests; Capacity is the number of seats.
type Table struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Label     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"label"`
	Capacity  int       `gorm:"not null" json:"capacity"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
