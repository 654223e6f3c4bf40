package bookingRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"frontdesk/config"
	"frontdesk/database"
	"frontdesk/models"
)

// BookingRepository persists finalized reservations.
type BookingRepository interface {
	Create(ctx context.Context, booking models.FinalizedBooking) (string, error)
	GetByID(ctx context.Context, id string) (*models.FinalizedBooking, error)
	GetByDate(ctx context.Context, date string) ([]models.FinalizedBooking, error)
	List(ctx context.Context, limit int64) ([]models.FinalizedBooking, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
