package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/restobook/reservation-app/services"
	"github.com/restobook/reservation-app/utils"
	"gorm.io/gorm"
)

type ReservationController struct {
	engine *services.AvailabilityEngine
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{engine: services.NewAvailabilityEngine(db)}
}

// CheckAvailability resolves a requested date and time to closed,
// out_of_hours or open with the free tables.
func (rc *ReservationController) CheckAvailability(c *gin.Context) {
	var req struct {
		Date string `json:"date" binding:"required"`
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	result, err := rc.engine.CheckAvailability(req.Date, req.Time)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	switch result.Kind {
	case services.AvailabilityClosed:
		utils.RespondJSON(c, http.StatusOK, "The restaurant is closed that day", result)
	case services.AvailabilityOutOfHours:
		utils.RespondJSON(c, http.StatusOK, "Requested time is outside opening hours", result)
	default:
		utils.RespondJSON(c, http.StatusOK, "Available tables", result)
	}
}

// ConfirmReservation books a table for the authenticated account.
func (rc *ReservationController) ConfirmReservation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var req struct {
		TableID uint   `json:"table_id" binding:"required"`
		Date    string `json:"date" binding:"required"`
		Time    string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	result, err := rc.engine.ConfirmReservation(userID, req.TableID, req.Date, req.Time)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	switch result.Kind {
	case services.ConfirmInvalidTable:
		utils.RespondError(c, http.StatusNotFound, errors.New("table not found"))
	case services.ConfirmAlreadyBooked:
		utils.RespondError(c, http.StatusConflict, errors.New("that table is already booked for this slot"))
	default:
		reservation := result.Reservation
		utils.InfoLogger.Printf("Reservation %d confirmed: table %d on %s at %s",
			reservation.ID, reservation.TableID, reservation.Date, reservation.TimeSlot)
		utils.RespondJSON(c, http.StatusCreated, "Reservation confirmed", reservation)
	}
}

// GetMyReservations lists the caller's reservations.
func (rc *ReservationController) GetMyReservations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	reservations, err := rc.engine.Ledger().ListByUser(userID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Your reservations", reservations)
}

// GetAllReservations lists every reservation for the admin overview,
// newest slot first.
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	reservations, err := rc.engine.Ledger().ListAll()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// UpdateReservationStatus applies an admin status transition.
func (rc *ReservationController) UpdateReservationStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("reservation_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid reservation id"))
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.engine.Ledger().SetStatus(uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			utils.RespondError(c, http.StatusBadRequest, errors.New("status must be attended or cancelled"))
		case errors.Is(err, services.ErrNotFound):
			utils.RespondError(c, http.StatusNotFound, errors.New("reservation not found"))
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.InfoLogger.Printf("Reservation %d status changed to %s", reservation.ID, reservation.Status)
	utils.RespondJSON(c, http.StatusOK, "Reservation status updated", reservation)
}
