package services

import (
	"errors"
	"fmt"

	"github.com/restobook/reservation-app/models"
	"gorm.io/gorm"
)

// ScheduleService is the schedule directory: one opening-hours entry
// per weekday.
type ScheduleService struct {
	db *gorm.DB
}

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{db: db}
}

// GetHours returns the schedule entry for the given weekday, or
// ErrNotFound when the restaurant is closed that day.
func (s *ScheduleService) GetHours(weekday int) (*models.ScheduleEntry, error) {
	var entry models.ScheduleEntry
	if err := s.db.Where("weekday = ?", weekday).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// AddHours creates the opening-hours entry for a weekday. A weekday may
// have at most one entry; a duplicate is reported as ErrConflict. Open
// and close are only checked for "HH:MM" shape, not for open < close.
func (s *ScheduleService) AddHours(weekday int, openTime, closeTime string) (*models.ScheduleEntry, error) {
	if weekday < 0 || weekday > 6 {
		return nil, fmt.Errorf("%w: weekday must be between 0 and 6, got %d", ErrInvalidInput, weekday)
	}
	if _, err := ParseClock(openTime); err != nil {
		return nil, err
	}
	if _, err := ParseClock(closeTime); err != nil {
		return nil, err
	}

	entry := models.ScheduleEntry{
		Weekday:   weekday,
		OpenTime:  openTime,
		CloseTime: closeTime,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return &entry, nil
}

// ListSchedules returns all entries ordered by weekday.
func (s *ScheduleService) ListSchedules() ([]models.ScheduleEntry, error) {
	var entries []models.ScheduleEntry
	if err := s.db.Order("weekday").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
