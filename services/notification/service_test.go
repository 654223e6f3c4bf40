package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/models"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	n := NewDefaultNotifier()

	var got []models.FinalizedBooking
	n.Subscribe(EventBookingCreated, func(e Event) {
		got = append(got, e.(BookingCreatedEvent).Booking)
	})
	n.Subscribe(EventBookingCreated, func(e Event) {
		got = append(got, e.(BookingCreatedEvent).Booking)
	})

	n.Publish(BookingCreatedEvent{Booking: models.FinalizedBooking{ID: "b1"}})

	require.Len(t, got, 2)
	assert.Equal(t, "b1", got[0].ID)
	assert.Equal(t, "b1", got[1].ID)
}

func TestPublishIgnoresOtherEventNames(t *testing.T) {
	n := NewDefaultNotifier()

	var calls int
	n.Subscribe(EventConversationReset, func(Event) { calls++ })

	n.Publish(BookingCreatedEvent{})
	assert.Zero(t, calls)

	n.Publish(ConversationResetEvent{SessionID: "s1"})
	assert.Equal(t, 1, calls)
}

func TestPanickingHandlerDoesNotBreakPublish(t *testing.T) {
	n := NewDefaultNotifier()

	var reached bool
	n.Subscribe(EventBookingCreated, func(Event) { panic("boom") })
	n.Subscribe(EventBookingCreated, func(Event) { reached = true })

	require.NotPanics(t, func() {
		n.Publish(BookingCreatedEvent{})
	})
	assert.True(t, reached, "later handlers still run after an earlier panic")
}

func TestPublishWithNoSubscribersIsNoop(t *testing.T) {
	n := NewDefaultNotifier()
	require.NotPanics(t, func() {
		n.Publish(ConversationResetEvent{SessionID: "s1"})
	})
}
