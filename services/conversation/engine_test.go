package conversation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"frontdesk/models"
)

// The canonical happy path: a guest books a table across four short turns.
func TestSimpleBookingScenario(t *testing.T) {
	e, sink := newTestEngine(t)

	res := e.ProcessMessage("I'd like a table for tonight")
	assert.Equal(t, IntentMakeReservation, res.Intent)
	require.NotNil(t, e.state.ActiveBooking)
	assert.Equal(t, "2025-03-12", e.state.ActiveBooking.Date)

	res = e.ProcessMessage("Four people, around 7 PM")
	assert.Equal(t, IntentMakeReservation, res.Intent)
	assert.Equal(t, 4, e.state.ActiveBooking.PartySize)
	assert.Equal(t, "7:00 PM", e.state.ActiveBooking.Time)

	e.ProcessMessage("under Johnson")
	assert.Equal(t, "Johnson", e.state.ActiveBooking.CustomerName)

	res = e.ProcessMessage("555-123-4567")
	require.Len(t, sink.bookings, 1)
	b := sink.bookings[0]
	assert.Equal(t, "Johnson", b.CustomerName)
	assert.Equal(t, 4, b.PartySize)
	assert.Equal(t, "2025-03-12", b.Date)
	assert.Equal(t, "5551234567", b.PhoneNumber)
	assert.Nil(t, e.state.ActiveBooking)
	assert.Contains(t, res.Response, "Your reservation is confirmed for Johnson, party of 4")
}

func TestResetConversation(t *testing.T) {
	e, _ := newTestEngine(t)

	e.ProcessMessage("book a table for tonight")
	e.ProcessMessage("4 people")
	require.NotNil(t, e.state.ActiveBooking)
	require.NotEmpty(t, e.state.History)

	e.ResetConversation()
	assert.Nil(t, e.state.ActiveBooking)
	assert.Empty(t, e.state.History)

	// A fresh booking flow starts cleanly after reset.
	res := e.ProcessMessage("book a table")
	require.NotNil(t, e.state.ActiveBooking)
	assert.Contains(t, res.Response, "What name should I put the reservation under?")
}

func TestHandleTextConversationSuccess(t *testing.T) {
	e, _ := newTestEngine(t)

	out := e.HandleTextConversation(context.Background(), "What are your hours?")
	assert.True(t, out.Success)
	assert.Equal(t, IntentAskHours, out.Intent)
	assert.Empty(t, out.Error)
	require.NotNil(t, out.ConversationState)
	assert.Len(t, out.ConversationState.History, 1)
}

func TestHandleTextConversationNeverPanics(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		strings.Repeat("table for 2 people ", 500),
		"\x00\x01\x02",
		"🍝🍕🍷",
	}
	for _, in := range inputs {
		e, _ := newTestEngine(t)
		require.NotPanics(t, func() {
			out := e.HandleTextConversation(context.Background(), in)
			assert.NotEmpty(t, out.Response)
		})
	}
}

func TestHandleTextConversationRecoversPanic(t *testing.T) {
	e, _ := newTestEngine(t)
	// Force a panic deep in processing.
	e.patterns = nil

	var out = e.HandleTextConversation(context.Background(), "hello")
	assert.False(t, out.Success)
	assert.Equal(t, apologyResponse, out.Response)
	assert.NotEmpty(t, out.Error)
}

// fakeConfigSource serves a canned knowledge base, or an error.
type fakeConfigSource struct {
	kb     models.KnowledgeBase
	loaded bool
	err    error
}

func (f *fakeConfigSource) IsConfigLoaded() bool { return f.loaded }

func (f *fakeConfigSource) LoadConfig(ctx context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.loaded = true
	return nil
}

func (f *fakeConfigSource) TransformForConversationEngine() (models.KnowledgeBase, error) {
	return f.kb, f.err
}

func TestEngineUsesLoaderKnowledge(t *testing.T) {
	loader := &fakeConfigSource{kb: DefaultKnowledgeBase()}
	loader.kb.Restaurant.Name = "Trattoria Test"
	loader.kb.Restaurant.Staff.ExecutiveChef = "Elena Conti"

	e := NewEngine(loader, nil, WithLogger(zap.NewNop()))
	assert.Equal(t, "Trattoria Test", e.kb.Restaurant.Name)

	res := e.ProcessMessage("who is the chef")
	assert.Contains(t, res.Response, "Elena Conti")
}

func TestEngineFallsBackWhenLoaderFails(t *testing.T) {
	loader := &fakeConfigSource{err: errors.New("file missing")}

	e := NewEngine(loader, nil, WithLogger(zap.NewNop()))
	assert.Equal(t, "Mario's Italian Bistro", e.kb.Restaurant.Name)
}
