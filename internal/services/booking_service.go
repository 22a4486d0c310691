package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aradhya-travels/booking-api/internal/models"
)

const (
	DBTypeMongo  = "mongodb"
	DBTypeMemory = "memory"
)

// BookingService is the authoritative CRUD surface over the booking store.
// It normalizes and validates input before anything reaches the repo; the
// repo is never handed a partially valid record.
type BookingService struct {
	bookingRepo models.BookingRepo
	dbType      string
}

func NewBookingService(bookingRepo models.BookingRepo, dbType string) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		dbType:      dbType,
	}
}

// DBType reports which backend was selected at startup, for the health
// endpoint. No other code path branches on it.
func (bs *BookingService) DBType() string {
	return bs.dbType
}

func (bs *BookingService) CreateBooking(ctx context.Context, input *models.BookingInput) (*models.Booking, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return bs.bookingRepo.CreateBooking(ctx, input.ToBooking(time.Now()))
}

func (bs *BookingService) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	return bs.bookingRepo.ListBookings(ctx)
}

func (bs *BookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("booking ID cannot be empty")
	}

	return bs.bookingRepo.GetBookingByID(ctx, id)
}

func (bs *BookingService) UpdateBookingStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("booking ID cannot be empty")
	}
	if !models.ValidStatus(status) {
		return nil, models.ErrInvalidStatus
	}

	return bs.bookingRepo.UpdateBookingStatus(ctx, id, status)
}

func (bs *BookingService) DeleteBooking(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("booking ID cannot be empty")
	}

	return bs.bookingRepo.DeleteBooking(ctx, id)
}

func (bs *BookingService) BookingStats(ctx context.Context) (*models.Stats, error) {
	return bs.bookingRepo.BookingStats(ctx)
}
