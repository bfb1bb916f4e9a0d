package router

import (
	"github.com/gin-gonic/gin"
	"github.com/restobook/reservation-app/controllers"
	"github.com/restobook/reservation-app/middlewares"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	userCtrl := controllers.NewUserController(db)
	tableCtrl := controllers.NewTableController(db)
	scheduleCtrl := controllers.NewScheduleController(db)
	reservationCtrl := controllers.NewReservationController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Auth endpoints get the strict limiter.
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware())
	{
		authed.GET("/profile", userCtrl.GetProfile)

		// Availability + booking, open to any authenticated account.
		authed.POST("/reservations/check", reservationCtrl.CheckAvailability)
		authed.POST("/reservations", reservationCtrl.ConfirmReservation)
		authed.GET("/reservations/mine", reservationCtrl.GetMyReservations)
	}

	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminOnly())
	{
		admin.GET("/users", userCtrl.GetAllUsers)

		admin.GET("/tables", tableCtrl.GetAllTables)
		admin.POST("/tables", tableCtrl.CreateTable)
		admin.GET("/tables/:table_id", tableCtrl.GetTableByID)

		admin.GET("/schedules", scheduleCtrl.GetAllSchedules)
		admin.POST("/schedules", scheduleCtrl.CreateSchedule)

		admin.GET("/reservations", reservationCtrl.GetAllReservations)
		admin.PATCH("/reservations/:reservation_id/status", reservationCtrl.UpdateReservationStatus)
	}

	return r
}
