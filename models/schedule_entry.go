package models

import "time"

// ScheduleEntry holds the opening hours for one weekday. Weekday uses
// ISO ordering, 0=Monday through 6=Sunday. A weekday without an entry
// means the restaurant is closed that day.
//
// OpenTime and CloseTime are zero-padded 24-hour "HH:MM" strings.
type ScheduleEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Weekday   int       `gorm:"uniqueIndex;not null" json:"weekday"`
	OpenTime  string    `gorm:"type:varchar(5);not null" json:"open_time"`
	CloseTime string    `gorm:"type:varchar(5);not null" json:"close_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// WeekdayName returns the display name for the entry's weekday.
func (s ScheduleEntry) WeekdayName() string {
	if s.Weekday < 0 || s.Weekday > 6 {
		return "Unknown"
	}
	return weekdayNames[s.Weekday]
}
