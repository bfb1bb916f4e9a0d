package services

import (
	"errors"

	"github.com/restobook/reservation-app/models"
	"gorm.io/gorm"
)

// Availability outcomes for a requested slot.
const (
	AvailabilityClosed     = "closed"
	AvailabilityOutOfHours = "out_of_hours"
	AvailabilityOpen       = "open"
)

// Confirmation outcomes for a booking attempt.
const (
	ConfirmInvalidTable  = "invalid_table"
	ConfirmAlreadyBooked = "already_booked"
	ConfirmConfirmed     = "confirmed"
)

// AvailabilityResult reports whether the restaurant can take bookings
// at the requested slot. OpenTime/CloseTime are set for out_of_hours
// and open; Tables is set for open and holds the free tables.
type AvailabilityResult struct {
	Kind      string         `json:"status"`
	OpenTime  string         `json:"open_time,omitempty"`
	CloseTime string         `json:"close_time,omitempty"`
	Tables    []models.Table `json:"tables,omitempty"`
}

// ConfirmResult reports the outcome of a booking attempt. Reservation
// is set only when Kind is confirmed.
type ConfirmResult struct {
	Kind        string              `json:"status"`
	Reservation *models.Reservation `json:"reservation,omitempty"`
}

// AvailabilityEngine answers whether the restaurant is open for a
// requested date and time, which tables are still free, and commits
// new bookings against the ledger.
type AvailabilityEngine struct {
	schedule *ScheduleService
	tables   *TableService
	ledger   *ReservationService
}

func NewAvailabilityEngine(db *gorm.DB) *AvailabilityEngine {
	return &AvailabilityEngine{
		schedule: NewScheduleService(db),
		tables:   NewTableService(db),
		ledger:   NewReservationService(db),
	}
}

// CheckAvailability resolves a requested slot to closed, out_of_hours
// or open with the set of free tables. It is a pure read: calling it
// twice with no intervening writes yields the same result.
func (e *AvailabilityEngine) CheckAvailability(date, timeSlot string) (*AvailabilityResult, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	requested, err := ParseClock(timeSlot)
	if err != nil {
		return nil, err
	}

	entry, err := e.schedule.GetHours(Weekday(day))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return &AvailabilityResult{Kind: AvailabilityClosed}, nil
		}
		return nil, err
	}

	openMinute, err := ParseClock(entry.OpenTime)
	if err != nil {
		return nil, err
	}
	closeMinute, err := ParseClock(entry.CloseTime)
	if err != nil {
		return nil, err
	}
	// A request at closing time itself is still accepted.
	if requested < openMinute || requested > closeMinute {
		return &AvailabilityResult{
			Kind:      AvailabilityOutOfHours,
			OpenTime:  entry.OpenTime,
			CloseTime: entry.CloseTime,
		}, nil
	}

	occupiedIDs, err := e.ledger.ReservationsFor(date, timeSlot)
	if err != nil {
		return nil, err
	}
	occupied := make(map[uint]bool, len(occupiedIDs))
	for _, id := range occupiedIDs {
		occupied[id] = true
	}

	all, err := e.tables.ListTables()
	if err != nil {
		return nil, err
	}
	available := make([]models.Table, 0, len(all))
	for _, table := range all {
		if !occupied[table.ID] {
			available = append(available, table)
		}
	}

	return &AvailabilityResult{
		Kind:      AvailabilityOpen,
		OpenTime:  entry.OpenTime,
		CloseTime: entry.CloseTime,
		Tables:    available,
	}, nil
}

// ConfirmReservation commits a booking for the given account. The
// ledger pre-check gives a friendly already_booked answer without
// burning an insert, but the slot unique index is what actually keeps
// two racing writers from both succeeding.
func (e *AvailabilityEngine) ConfirmReservation(accountID, tableID uint, date, timeSlot string) (*ConfirmResult, error) {
	if _, err := ParseDate(date); err != nil {
		return nil, err
	}
	if _, err := ParseClock(timeSlot); err != nil {
		return nil, err
	}

	if _, err := e.tables.GetTable(tableID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return &ConfirmResult{Kind: ConfirmInvalidTable}, nil
		}
		return nil, err
	}

	if _, err := e.ledger.Find(tableID, date, timeSlot); err == nil {
		return &ConfirmResult{Kind: ConfirmAlreadyBooked}, nil
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	reservation, err := e.ledger.Create(accountID, tableID, date, timeSlot)
	if err != nil {
		if errors.Is(err, ErrConflict) {
			return &ConfirmResult{Kind: ConfirmAlreadyBooked}, nil
		}
		return nil, err
	}
	return &ConfirmResult{Kind: ConfirmConfirmed, Reservation: reservation}, nil
}

// Ledger exposes the reservation ledger for callers that list or
// mutate reservation status.
func (e *AvailabilityEngine) Ledger() *ReservationService {
	return e.ledger
}
