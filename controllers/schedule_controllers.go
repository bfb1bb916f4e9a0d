package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/restobook/reservation-app/models"
	"github.com/restobook/reservation-app/services"
	"github.com/restobook/reservation-app/utils"
	"gorm.io/gorm"
)

type ScheduleController struct {
	schedule *services.ScheduleService
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{schedule: services.NewScheduleService(db)}
}

// scheduleView adds the weekday display name to an entry.
type scheduleView struct {
	models.ScheduleEntry
	WeekdayName string `json:"weekday_name"`
}

// CreateSchedule sets the opening hours for one weekday.
func (sc *ScheduleController) CreateSchedule(c *gin.Context) {
	var req struct {
		Weekday   *int   `json:"weekday" binding:"required"`
		OpenTime  string `json:"open_time" binding:"required"`
		CloseTime string `json:"close_time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	entry, err := sc.schedule.AddHours(*req.Weekday, req.OpenTime, req.CloseTime)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrConflict):
			utils.RespondError(c, http.StatusConflict, errors.New("a schedule for that weekday already exists"))
		case errors.Is(err, services.ErrInvalidInput):
			utils.RespondError(c, http.StatusBadRequest, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.InfoLogger.Printf("Schedule created: %s %s-%s", entry.WeekdayName(), entry.OpenTime, entry.CloseTime)
	utils.RespondJSON(c, http.StatusCreated, "Schedule created successfully", scheduleView{
		ScheduleEntry: *entry,
		WeekdayName:   entry.WeekdayName(),
	})
}

// GetAllSchedules lists the weekly opening hours.
func (sc *ScheduleController) GetAllSchedules(c *gin.Context) {
	entries, err := sc.schedule.ListSchedules()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	views := make([]scheduleView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, scheduleView{
			ScheduleEntry: entry,
			WeekdayName:   entry.WeekdayName(),
		})
	}
	utils.RespondJSON(c, http.StatusOK, "List of schedules", views)
}
