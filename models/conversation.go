package models

import "time"

// EntityRecord is the partial set of structured fields extracted from one
// utterance. Zero values mean the field was not found in the text.
type EntityRecord struct {
	PartySize           int    `json:"partySize,omitempty"`
	CustomerName        string `json:"customerName,omitempty"`
	PhoneNumber         string `json:"phoneNumber,omitempty"`
	Date                string `json:"date,omitempty"`      // "YYYY-MM-DD"
	DayOfWeek           string `json:"dayOfWeek,omitempty"` // lowercase weekday token
	Time                string `json:"time,omitempty"`      // "H:MM AM/PM"
	DietaryRestrictions string `json:"dietaryRestrictions,omitempty"`
	SeatingPreference   string `json:"seatingPreference,omitempty"`
	Occasion            string `json:"occasion,omitempty"`
	AccessibilityNeeds  string `json:"accessibilityNeeds,omitempty"`
	AmbiancePreference  string `json:"ambiancePreference,omitempty"`
	Urgent              bool   `json:"urgent,omitempty"`
}

// IsEmpty reports whether no field matched at all.
func (e EntityRecord) IsEmpty() bool {
	return e == EntityRecord{}
}

// Turn is one processed message in the conversation history.
type Turn struct {
	Timestamp time.Time    `json:"timestamp"`
	Message   string       `json:"message"`
	Intent    string       `json:"intent"`
	Entities  EntityRecord `json:"entities"`
}

// MaxHistoryTurns bounds how many turns a session keeps.
const MaxHistoryTurns = 10

// ConversationState is the per-session dialogue state: the in-progress booking
// draft, if any, plus the bounded turn history.
type ConversationState struct {
	ActiveBooking *BookingDraft `json:"activeBooking,omitempty"`
	History       []Turn        `json:"history"`
}

// ConversationResult is what one ProcessMessage turn produces.
type ConversationResult struct {
	Intent   string            `json:"intent"`
	Entities EntityRecord      `json:"entities"`
	Response string            `json:"response"`
	State    ConversationState `json:"conversationState"`
}

// ConversationOutcome is the uniform envelope the outer wrapper returns.
// Success is false only when processing panicked; Error then carries the cause.
type ConversationOutcome struct {
	Success           bool               `json:"success"`
	Response          string             `json:"response"`
	Intent            string             `json:"intent,omitempty"`
	Entities          EntityRecord       `json:"entities,omitempty"`
	ConversationState *ConversationState `json:"conversationState,omitempty"`
	Error             string             `json:"error,omitempty"`
}
