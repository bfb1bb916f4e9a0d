package services

import (
	"errors"

	"github.com/restobook/reservation-app/models"
	"gorm.io/gorm"
)

// ReservationService is the reservation ledger: an append-only record
// of bookings whose only mutable field is the status.
type ReservationService struct {
	db *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{db: db}
}

// ReservationsFor returns the ids of tables occupied at the given date
// and time slot. Cancelled reservations have released their slot and
// are not counted.
func (s *ReservationService) ReservationsFor(date, timeSlot string) ([]uint, error) {
	var tableIDs []uint
	err := s.db.Model(&models.Reservation{}).
		Where("date = ? AND time_slot = ? AND status <> ?",
			date, timeSlot, models.ReservationStatusCancelled).
		Pluck("table_id", &tableIDs).Error
	if err != nil {
		return nil, err
	}
	return tableIDs, nil
}

// Find returns the active reservation holding the given slot, or
// ErrNotFound when the slot is free.
func (s *ReservationService) Find(tableID uint, date, timeSlot string) (*models.Reservation, error) {
	var reservation models.Reservation
	err := s.db.
		Where("table_id = ? AND date = ? AND time_slot = ? AND status <> ?",
			tableID, date, timeSlot, models.ReservationStatusCancelled).
		First(&reservation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &reservation, nil
}

// Create inserts a new pending reservation for the slot. The slot
// unique index is the real double-booking guard: when two writers race
// past their availability checks, the second insert fails here with
// ErrConflict.
func (s *ReservationService) Create(userID, tableID uint, date, timeSlot string) (*models.Reservation, error) {
	lock := true
	reservation := models.Reservation{
		UserID:   userID,
		TableID:  tableID,
		Date:     date,
		TimeSlot: timeSlot,
		Status:   models.ReservationStatusPending,
		SlotLock: &lock,
	}
	if err := s.db.Create(&reservation).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return &reservation, nil
}

// ListAll returns every reservation with its table, newest slot first
// (date descending, then time descending), for the admin overview.
func (s *ReservationService) ListAll() ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.db.Preload("Table").
		Order("date DESC, time_slot DESC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

// ListByUser returns one account's reservations, newest slot first.
func (s *ReservationService) ListByUser(userID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.db.Preload("Table").
		Where("user_id = ?", userID).
		Order("date DESC, time_slot DESC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

// SetStatus applies an admin status transition. Only attended and
// cancelled are accepted; both are terminal. Cancelling clears the
// slot lock so the slot becomes bookable again.
func (s *ReservationService) SetStatus(reservationID uint, status string) (*models.Reservation, error) {
	if status != models.ReservationStatusAttended && status != models.ReservationStatusCancelled {
		return nil, ErrInvalidStatus
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var reservation models.Reservation
	if err := tx.First(&reservation, reservationID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	reservation.Status = status
	if status == models.ReservationStatusCancelled {
		reservation.SlotLock = nil
	}
	if err := tx.Save(&reservation).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}
