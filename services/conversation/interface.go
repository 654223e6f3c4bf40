package conversation

import (
	"context"

	"frontdesk/models"
)

// ConversationService is the interface the embedding application programs
// against: one engine per session.
type ConversationService interface {
	// ProcessMessage runs one full turn: classify, extract, update state,
	// generate a response. It does not return errors; misses degrade to the
	// general intent.
	ProcessMessage(message string) models.ConversationResult

	// HandleTextConversation wraps ProcessMessage in a uniform envelope for
	// asynchronous callers. It recovers every internal failure and reports it
	// as a polite apology with Success=false; it never panics outward.
	HandleTextConversation(ctx context.Context, message string) models.ConversationOutcome

	// ResetConversation clears the active booking draft and the history.
	ResetConversation()

	// State returns a snapshot of the current conversation state.
	State() models.ConversationState
}

// BookingSink receives finalized bookings. Implementations must not block;
// delivery is fire-and-forget and best-effort.
type BookingSink interface {
	CreateBooking(booking models.FinalizedBooking)
}

// ConfigSource supplies a restaurant knowledge base at engine construction.
// When loading fails the engine silently falls back to built-in defaults.
type ConfigSource interface {
	IsConfigLoaded() bool
	LoadConfig(ctx context.Context) error
	TransformForConversationEngine() (models.KnowledgeBase, error)
}
