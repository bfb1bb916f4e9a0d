package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/restobook/reservation-app/controllers"
	"github.com/restobook/reservation-app/utils"
)

func setupScheduleRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	scheduleCtrl := controllers.NewScheduleController(db)
	router.GET("/schedules", scheduleCtrl.GetAllSchedules)
	router.POST("/schedules", scheduleCtrl.CreateSchedule)
	return router
}

func TestCreateSchedule(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)
	router := setupScheduleRouter(db)

	w := postJSON(t, router, "POST", "/schedules", gin.H{"weekday": 0, "open_time": "09:00", "close_time": "22:00"})
	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Monday", data["weekday_name"])

	// One entry per weekday.
	w = postJSON(t, router, "POST", "/schedules", gin.H{"weekday": 0, "open_time": "10:00", "close_time": "20:00"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Weekday out of range.
	w = postJSON(t, router, "POST", "/schedules", gin.H{"weekday": 7, "open_time": "09:00", "close_time": "22:00"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Malformed times.
	w = postJSON(t, router, "POST", "/schedules", gin.H{"weekday": 1, "open_time": "9am", "close_time": "22:00"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListSchedules(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)
	router := setupScheduleRouter(db)

	for _, entry := range []gin.H{
		{"weekday": 2, "open_time": "09:00", "close_time": "22:00"},
		{"weekday": 0, "open_time": "09:00", "close_time": "21:00"},
	} {
		w := postJSON(t, router, "POST", "/schedules", entry)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	req, _ := http.NewRequest("GET", "/schedules", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].([]interface{})
	require.Len(t, data, 2)
	// Ordered by weekday.
	assert.Equal(t, float64(0), data[0].(map[string]interface{})["weekday"])
	assert.Equal(t, "Wednesday", data[1].(map[string]interface{})["weekday_name"])
}
