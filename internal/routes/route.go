package routes

import (
	"github.com/aradhya-travels/booking-api/internal/container"
	"github.com/aradhya-travels/booking-api/internal/handlers"
	"github.com/aradhya-travels/booking-api/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	// Set Gin mode for production
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck(container.BookingService))
		api.GET("/stats", handlers.GetStats(container.BookingService))

		bookingRoutes := api.Group("/bookings")
		{
			bookingRoutes.POST("", handlers.CreateBooking(container.BookingService))
			bookingRoutes.GET("", handlers.ListBookings(container.BookingService))
			bookingRoutes.GET("/:id", handlers.GetBooking(container.BookingService))
			bookingRoutes.PATCH("/:id", handlers.UpdateBookingStatus(container.BookingService))
			bookingRoutes.DELETE("/:id", handlers.DeleteBooking(container.BookingService))
		}
	}

	return r
}
