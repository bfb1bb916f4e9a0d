package models

import "time"

const (
	ReservationStatusPending   = "pending"
	ReservationStatusAttended  = "attended"
	ReservationStatusCancelled = "cancelled"
)

// Reservation books one table for one date and time slot. Rows are
// append-only; after insert only Status (and SlotLock with it) ever
// changes.
//
// SlotLock backs the slot uniqueness guarantee: it is true while the
// reservation occupies its (table, date, time) slot and NULL once
// cancelled. The composite unique index therefore rejects a second
// active booking for the same slot at the database, while a cancelled
// row no longer blocks rebooking.
type Reservation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	TableID   uint      `gorm:"not null;uniqueIndex:idx_reservation_slot" json:"table_id"`
	Table     Table     `gorm:"foreignKey:TableID" json:"table"`
	Date      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_reservation_slot" json:"date"`
	TimeSlot  string    `gorm:"type:varchar(5);not null;uniqueIndex:idx_reservation_slot" json:"time_slot"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	SlotLock  *bool     `gorm:"uniqueIndex:idx_reservation_slot" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
