package models

import "time"

// Booking draft statuses.
const (
	BookingStatusInProgress = "in_progress"
	BookingStatusConfirmed  = "confirmed"
)

// BookingDraft is an in-progress reservation accumulated across turns.
// Fields are filled incrementally as entities are extracted; empty means the
// slot has not been collected yet.
type BookingDraft struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created"`

	CustomerName        string `json:"customerName,omitempty"`
	PartySize           int    `json:"partySize,omitempty"`
	Date                string `json:"date,omitempty"`
	DayOfWeek           string `json:"dayOfWeek,omitempty"`
	Time                string `json:"time,omitempty"`
	PhoneNumber         string `json:"phoneNumber,omitempty"`
	DietaryRestrictions string `json:"dietaryRestrictions,omitempty"`
	SeatingPreference   string `json:"seatingPreference,omitempty"`
	Occasion            string `json:"occasion,omitempty"`
	AccessibilityNeeds  string `json:"accessibilityNeeds,omitempty"`
	AmbiancePreference  string `json:"ambiancePreference,omitempty"`
	Urgent              bool   `json:"urgent,omitempty"`
}

// Merge copies every field present in the entity record into the draft,
// overwriting existing values. Fields absent from the record are untouched.
func (b *BookingDraft) Merge(e EntityRecord) {
	if e.PartySize != 0 {
		b.PartySize = e.PartySize
	}
	if e.CustomerName != "" {
		b.CustomerName = e.CustomerName
	}
	if e.PhoneNumber != "" {
		b.PhoneNumber = e.PhoneNumber
	}
	if e.Date != "" {
		b.Date = e.Date
	}
	if e.DayOfWeek != "" {
		b.DayOfWeek = e.DayOfWeek
	}
	if e.Time != "" {
		b.Time = e.Time
	}
	if e.DietaryRestrictions != "" {
		b.DietaryRestrictions = e.DietaryRestrictions
	}
	if e.SeatingPreference != "" {
		b.SeatingPreference = e.SeatingPreference
	}
	if e.Occasion != "" {
		b.Occasion = e.Occasion
	}
	if e.AccessibilityNeeds != "" {
		b.AccessibilityNeeds = e.AccessibilityNeeds
	}
	if e.AmbiancePreference != "" {
		b.AmbiancePreference = e.AmbiancePreference
	}
	if e.Urgent {
		b.Urgent = true
	}
}

// BookingPreferences is the optional-preference sub-record carried on a
// finalized booking.
type BookingPreferences struct {
	Dietary       string `bson:"dietary,omitempty" json:"dietary,omitempty"`
	Seating       string `bson:"seating,omitempty" json:"seating,omitempty"`
	Occasion      string `bson:"occasion,omitempty" json:"occasion,omitempty"`
	Accessibility string `bson:"accessibility,omitempty" json:"accessibility,omitempty"`
	Ambiance      string `bson:"ambiance,omitempty" json:"ambiance,omitempty"`
	Urgent        bool   `bson:"urgent,omitempty" json:"urgent,omitempty"`
}

// FinalizedBooking is a completed reservation record handed to the booking sink.
type FinalizedBooking struct {
	ID           string             `bson:"id" json:"id"`
	CustomerName string             `bson:"customer_name" json:"customer_name"`
	PhoneNumber  string             `bson:"phone_number" json:"phone_number"`
	PartySize    int                `bson:"party_size" json:"party_size"`
	Date         string             `bson:"date" json:"date"` // "YYYY-MM-DD"
	StartTime    time.Time          `bson:"start_time" json:"start_time"`
	EndTime      time.Time          `bson:"end_time" json:"end_time"`
	Status       string             `bson:"status" json:"status"`
	Notes        string             `bson:"notes" json:"notes"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	CreatedVia   string             `bson:"created_via" json:"created_via"`
	Preferences  BookingPreferences `bson:"preferences" json:"preferences"`
}
