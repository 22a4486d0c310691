package models

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

var Validate = validator.New()

func init() {
	// Validate is shared; the custom mobile rule is registered once here.
	if err := Validate.RegisterValidation("mobilenumber", validMobileNumber); err != nil {
		panic(err)
	}
}

var (
	ErrNotFound      = errors.New("booking not found")
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Stats summarizes the store by status. Cancelled bookings are counted too,
// even though the admin dashboard only charts the first three buckets.
type Stats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
}

// BookingRepo is the storage contract shared by the durable Mongo adapter
// and the in-memory fallback. Implementations mint the record id on create
// and keep every other field immutable except status.
type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *Booking) (*Booking, error)
	ListBookings(ctx context.Context) ([]*Booking, error)
	GetBookingByID(ctx context.Context, id string) (*Booking, error)
	UpdateBookingStatus(ctx context.Context, id, status string) (*Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	BookingStats(ctx context.Context) (*Stats, error)
}

type MongodbRepo struct {
	mongodbClient *mongo.Client
}

func MongodbNewRepo(mongodbClient *mongo.Client) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
	}
}
