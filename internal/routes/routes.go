package routes

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"hospital-booking-server/internal/config"
	"hospital-booking-server/internal/handlers"
	"hospital-booking-server/internal/middleware"
	"hospital-booking-server/internal/repository"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, repos *repository.Repositories, cfg *config.Config, logger zerolog.Logger) {
	router.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		gzip.Gzip(gzip.BestSpeed),
	)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(repos, cfg, logger)
	bookingHandler := handlers.NewBookingHandler(repos, logger)
	doctorHandler := handlers.NewDoctorHandler(repos, logger)
	auditHandler := handlers.NewAuditHandler(repos, logger)
	probeHandler := handlers.NewProbeHandler(repos, logger)

	sessions := middleware.NewSessionLoader(cfg, repos, logger)
	router.Use(sessions.Load())

	// Public routes (no session required)
	router.GET("/", handlers.Home)
	router.GET("/doctors", doctorHandler.ListDoctors)
	router.POST("/doctors", doctorHandler.RegisterDoctor)
	router.GET("/signup", authHandler.SignupForm)
	router.POST("/signup", authHandler.Signup)
	router.GET("/login", authHandler.LoginForm)
	router.POST("/login", authHandler.Login)
	router.GET("/test", probeHandler.TestConnection)

	// Session routes
	private := router.Group("")
	private.Use(middleware.RequireSession())
	{
		private.GET("/patients", bookingHandler.BookingForm)
		private.POST("/patients", bookingHandler.CreateBooking)
		private.GET("/bookings", bookingHandler.ListBookings)

		private.GET("/edit/:pid", bookingHandler.EditForm)
		private.POST("/edit/:pid", bookingHandler.UpdateBooking)
		private.GET("/delete/:pid", bookingHandler.DeleteBooking)
		private.POST("/delete/:pid", bookingHandler.DeleteBooking)

		private.GET("/logout", authHandler.Logout)
		private.GET("/details", auditHandler.ListEntries)

		private.GET("/search", doctorHandler.SearchForm)
		private.POST("/search", doctorHandler.Search)
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
