package booking

import (
	"context"
	"time"

	bookingRepo "frontdesk/database/repository/booking"
	"frontdesk/models"
	"frontdesk/services/notification"
	"frontdesk/utils"

	"go.uber.org/zap"
)

var _ BookingService = (*DefaultBookingService)(nil)

// DefaultBookingService persists reservations and announces them on the
// notifier bus.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Notifier notification.Notifier
}

func NewDefaultBookingService(repo bookingRepo.BookingRepository, notifier notification.Notifier) *DefaultBookingService {
	return &DefaultBookingService{Repo: repo, Notifier: notifier}
}

// CreateBooking stores the finalized reservation. Errors are logged rather
// than returned: the conversation engine has already confirmed to the guest
// by the time this runs, so failures are an ops concern, not a turn failure.
func (s *DefaultBookingService) CreateBooking(booking models.FinalizedBooking) {
	logger := utils.GetLogger().With(zap.String("bookingID", booking.ID))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := s.Repo.Create(ctx, booking); err != nil {
		logger.Error("Failed to persist booking", zap.Error(err))
		return
	}
	logger.Info("Booking created",
		zap.String("customer", booking.CustomerName),
		zap.String("date", booking.Date),
		zap.Time("time", booking.StartTime),
		zap.Int("partySize", booking.PartySize),
	)

	if s.Notifier != nil {
		s.Notifier.Publish(notification.BookingCreatedEvent{Booking: booking})
	}
}

func (s *DefaultBookingService) ListBookings(ctx context.Context, limit int64) ([]models.FinalizedBooking, error) {
	return s.Repo.List(ctx, limit)
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.FinalizedBooking, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultBookingService) BookingsForDate(ctx context.Context, date string) ([]models.FinalizedBooking, error) {
	return s.Repo.GetByDate(ctx, date)
}

// CancelBooking removes a reservation by id.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, id string) error {
	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	utils.GetLogger().Info("Booking cancelled", zap.String("bookingID", id))
	return nil
}
