package handlers

import (
	"errors"
	"net/http"

	"github.com/aradhya-travels/booking-api/internal/models"
	"github.com/aradhya-travels/booking-api/internal/services"
	"github.com/gin-gonic/gin"
)

func HealthCheck(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Aradhya Travels API is running",
			"dbType":  bs.DBType(),
		})
	}
}

func ListBookings(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := bs.ListBookings(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.ListResponse{Success: true, Bookings: bookings})
	}
}

func GetBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		booking, err := bs.GetBooking(c.Request.Context(), c.Param("id"))
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse("Booking not found"))
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.BookingResponse(booking, ""))
	}
}

func CreateBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.BookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request body"))
			return
		}

		booking, err := bs.CreateBooking(c.Request.Context(), &input)
		if err != nil {
			var ve *models.ValidationError
			if errors.As(err, &ve) {
				c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(ve))
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusCreated, models.BookingResponse(booking, ""))
	}
}

func UpdateBookingStatus(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reqBody struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Status is required"))
			return
		}

		booking, err := bs.UpdateBookingStatus(c.Request.Context(), c.Param("id"), reqBody.Status)
		if errors.Is(err, models.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid booking status"))
			return
		}
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse("Booking not found"))
			return
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.BookingResponse(booking, ""))
	}
}

func DeleteBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := bs.DeleteBooking(c.Request.Context(), c.Param("id"))
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse("Booking not found"))
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse("Booking deleted"))
	}
}

func GetStats(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := bs.BookingStats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.StatsResponse{Success: true, Stats: stats})
	}
}
