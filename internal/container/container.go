package container

import (
	"log/slog"

	"github.com/aradhya-travels/booking-api/internal/models"
	"github.com/aradhya-travels/booking-api/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger         *slog.Logger
	MongoDBClient  *mongo.Client
	BookingService *services.BookingService
}

// NewContainer creates a new dependency injection container. Backend
// selection happens here and nowhere else: a nil Mongo client means the
// durable store was unreachable and the in-memory fallback is used.
func NewContainer(logger *slog.Logger, mongoDBClient *mongo.Client) *Container {
	var bookingService *services.BookingService
	if mongoDBClient != nil {
		bookingService = services.NewBookingService(models.MongodbNewRepo(mongoDBClient), services.DBTypeMongo)
	} else {
		bookingService = services.NewBookingService(models.MemoryNewRepo(), services.DBTypeMemory)
	}

	return &Container{
		Logger:         logger,
		MongoDBClient:  mongoDBClient,
		BookingService: bookingService,
	}
}
