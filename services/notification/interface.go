package notification

import "frontdesk/models"

// Event is an in-process notification with a typed payload. Events replace
// the ad-hoc cross-component signalling the dashboard widgets rely on.
type Event interface {
	Name() string
}

// Event names.
const (
	EventBookingCreated    = "bookingCreated"
	EventConversationReset = "conversationReset"
)

// BookingCreatedEvent announces a newly finalized booking.
type BookingCreatedEvent struct {
	Booking models.FinalizedBooking
}

func (BookingCreatedEvent) Name() string { return EventBookingCreated }

// ConversationResetEvent announces that a session's state was cleared.
type ConversationResetEvent struct {
	SessionID string
}

func (ConversationResetEvent) Name() string { return EventConversationReset }

// Handler consumes events of one name.
type Handler func(Event)

// Notifier dispatches events to registered handlers. Dispatch is best-effort:
// a failing handler never propagates back to the publisher.
type Notifier interface {
	Subscribe(eventName string, handler Handler)
	Publish(event Event)
}
