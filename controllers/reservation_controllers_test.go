package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/restobook/reservation-app/controllers"
	"github.com/restobook/reservation-app/models"
	"github.com/restobook/reservation-app/services"
	"github.com/restobook/reservation-app/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Table{},
		&models.ScheduleEntry{},
		&models.Reservation{},
	))
	return db
}

// setupReservationRouter mounts the reservation routes with a stub
// auth middleware injecting the given account id.
func setupReservationRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})

	reservationCtrl := controllers.NewReservationController(db)
	router.POST("/reservations/check", reservationCtrl.CheckAvailability)
	router.POST("/reservations", reservationCtrl.ConfirmReservation)
	router.GET("/reservations/mine", reservationCtrl.GetMyReservations)
	router.GET("/reservations", reservationCtrl.GetAllReservations)
	router.PATCH("/reservations/:reservation_id/status", reservationCtrl.UpdateReservationStatus)
	return router
}

func seedBookingData(t *testing.T, db *gorm.DB) (uint, uint) {
	t.Helper()
	user := models.User{Name: "Client", Email: t.Name() + "@example.com", Password: "x", Role: models.RoleClient}
	require.NoError(t, db.Create(&user).Error)

	// Monday 09:00-22:00 and one two-seat table.
	_, err := services.NewScheduleService(db).AddHours(0, "09:00", "22:00")
	require.NoError(t, err)
	table, err := services.NewTableService(db).AddTable("T1", 2)
	require.NoError(t, err)
	return user.ID, table.ID
}

func postJSON(t *testing.T, router *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req, err := http.NewRequest(method, url, bytes.NewBuffer(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCheckAvailabilityEndpoint(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)
	userID, _ := seedBookingData(t, db)
	router := setupReservationRouter(db, userID)

	// Open Monday slot.
	w := postJSON(t, router, "POST", "/reservations/check", gin.H{"date": "2025-06-02", "time": "10:00"})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "open", data["status"])
	assert.Len(t, data["tables"], 1)

	// Sunday has no schedule entry.
	w = postJSON(t, router, "POST", "/reservations/check", gin.H{"date": "2025-06-08", "time": "10:00"})
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data = response["data"].(map[string]interface{})
	assert.Equal(t, "closed", data["status"])

	// Past closing.
	w = postJSON(t, router, "POST", "/reservations/check", gin.H{"date": "2025-06-02", "time": "23:59"})
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data = response["data"].(map[string]interface{})
	assert.Equal(t, "out_of_hours", data["status"])
	assert.Equal(t, "09:00", data["open_time"])
	assert.Equal(t, "22:00", data["close_time"])

	// Malformed time.
	w = postJSON(t, router, "POST", "/reservations/check", gin.H{"date": "2025-06-02", "time": "10am"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfirmReservationEndpoint(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)
	userID, tableID := seedBookingData(t, db)
	router := setupReservationRouter(db, userID)

	payload := gin.H{"table_id": tableID, "date": "2025-06-02", "time": "10:00"}

	w := postJSON(t, router, "POST", "/reservations", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "pending", data["status"])

	// Same slot again conflicts.
	w = postJSON(t, router, "POST", "/reservations", payload)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Unknown table.
	w = postJSON(t, router, "POST", "/reservations", gin.H{"table_id": 999, "date": "2025-06-02", "time": "10:00"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The booked slot no longer offers the table.
	w = postJSON(t, router, "POST", "/reservations/check", gin.H{"date": "2025-06-02", "time": "10:00"})
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data = response["data"].(map[string]interface{})
	assert.Equal(t, "open", data["status"])
	assert.Nil(t, data["tables"])

	// And the caller sees it under /reservations/mine.
	req, _ := http.NewRequest("GET", "/reservations/mine", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response["data"], 1)
}

func TestUpdateReservationStatusEndpoint(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)
	userID, tableID := seedBookingData(t, db)
	router := setupReservationRouter(db, userID)

	w := postJSON(t, router, "POST", "/reservations", gin.H{"table_id": tableID, "date": "2025-06-02", "time": "10:00"})
	require.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	reservationID := uint(response["data"].(map[string]interface{})["id"].(float64))

	url := fmt.Sprintf("/reservations/%d/status", reservationID)

	// Unknown status is rejected and leaves the row alone.
	w = postJSON(t, router, "PATCH", url, gin.H{"status": "no-show"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var stored models.Reservation
	require.NoError(t, db.First(&stored, reservationID).Error)
	assert.Equal(t, models.ReservationStatusPending, stored.Status)

	w = postJSON(t, router, "PATCH", url, gin.H{"status": "attended"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, router, "PATCH", "/reservations/999/status", gin.H{"status": "cancelled"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
