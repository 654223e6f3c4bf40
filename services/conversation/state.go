package conversation

import (
	"strconv"

	"frontdesk/models"
)

// updateState applies one turn to the session state: it lazily opens a
// booking draft on a reservation intent, merges freshly extracted entities
// into any open draft (last write wins per field), and appends the turn to
// the bounded history. Returns true when a draft was opened this turn.
func (e *Engine) updateState(intent string, entities models.EntityRecord, message string) bool {
	opened := false

	if intent == IntentMakeReservation && e.state.ActiveBooking == nil {
		now := e.now()
		e.state.ActiveBooking = &models.BookingDraft{
			// Time-based id; uniqueness per session is all that is needed.
			ID:        strconv.FormatInt(now.UnixMilli(), 10),
			Status:    models.BookingStatusInProgress,
			CreatedAt: now,
		}
		opened = true
	}

	if e.state.ActiveBooking != nil {
		e.state.ActiveBooking.Merge(entities)
	}

	e.state.History = append(e.state.History, models.Turn{
		Timestamp: e.now(),
		Message:   message,
		Intent:    intent,
		Entities:  entities,
	})
	if n := len(e.state.History); n > models.MaxHistoryTurns {
		e.state.History = e.state.History[n-models.MaxHistoryTurns:]
	}

	return opened
}
