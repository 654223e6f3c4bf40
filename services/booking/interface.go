package booking

import (
	"context"

	"frontdesk/models"
)

// BookingService manages finalized reservations. It doubles as the
// conversation engine's booking sink: CreateBooking accepts the record
// fire-and-forget and must never block the conversation turn.
type BookingService interface {
	CreateBooking(booking models.FinalizedBooking)
	ListBookings(ctx context.Context, limit int64) ([]models.FinalizedBooking, error)
	GetBooking(ctx context.Context, id string) (*models.FinalizedBooking, error)
	BookingsForDate(ctx context.Context, date string) ([]models.FinalizedBooking, error)
	CancelBooking(ctx context.Context, id string) error
}
