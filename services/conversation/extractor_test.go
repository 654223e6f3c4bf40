package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPartySize(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    int
	}{
		{"digits with people", "we need a table, 6 people", 6},
		{"party of", "party of 8", 8},
		{"table for", "table for 2", 2},
		{"word number", "Four people, around 7 PM", 4},
		{"word after for", "a table for twelve", 12},
		{"zero discarded", "0 people", 0},
		{"over max discarded", "21 people", 0},
		{"boundary max kept", "20 people", 20},
		{"boundary min kept", "just 1", 1},
		{"no size", "do you have outdoor seating", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(t)
			got := e.extract(tt.message)
			assert.Equal(t, tt.want, got.PartySize)
		})
	}
}

func TestExtractCustomerName(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"my name is", "my name is john smith", "John Smith"},
		{"under", "put it under Johnson", "Johnson"},
		{"strips punctuation", "i am anna marie!", "Anna Marie"},
		{"date word rejected", "a table for tonight", ""},
		{"weekday rejected", "a table for friday evening", ""},
		{"number word rejected", "a table for four", ""},
		{"meal word rejected", "reservation for dinner", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(t)
			got := e.extract(tt.message)
			assert.Equal(t, tt.want, got.CustomerName)
		})
	}
}

func TestExtractNameTruncatesToThirtyChars(t *testing.T) {
	e, _ := newTestEngine(t)
	got := e.extract("my name is Bartholomew Maximillian Archibald")
	assert.LessOrEqual(t, len(got.CustomerName), 30)
	assert.NotEmpty(t, got.CustomerName)
}

func TestExtractPhoneNumber(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"dashed", "my number is 555-123-4567", "5551234567"},
		{"dotted", "555.123.4567", "5551234567"},
		{"spaced", "call me at 555 123 4567", "5551234567"},
		{"bare digits kept to ten", "5551234567", "5551234567"},
		{"no phone", "table for two please", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(t)
			got := e.extract(tt.message)
			assert.Equal(t, tt.want, got.PhoneNumber)
		})
	}
}

func TestExtractDateAndDay(t *testing.T) {
	e, _ := newTestEngine(t)

	got := e.extract("a table for tonight")
	assert.Equal(t, "2025-03-12", got.Date)

	got = e.extract("how about tomorrow")
	assert.Equal(t, "2025-03-13", got.Date)

	got = e.extract("next Friday works")
	assert.Equal(t, "friday", got.DayOfWeek)
	assert.Empty(t, got.Date)
}

func TestExtractTime(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"hour with pm", "around 7 PM", "7:00 PM"},
		{"hour minutes", "at 6:30 pm", "6:30 PM"},
		{"morning", "9 am works", "9:00 AM"},
		{"noon", "12 pm sharp", "12:00 PM"},
		{"lunch word", "lunch for two", "12:00 PM"},
		{"dinner word", "dinner reservation", "7:00 PM"},
		{"breakfast word", "breakfast on sunday", "10:00 AM"},
		{"explicit time beats meal word", "dinner at 8:15 pm", "8:15 PM"},
		{"no time", "table for two", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(t)
			got := e.extract(tt.message)
			assert.Equal(t, tt.want, got.Time)
		})
	}
}

func TestExtractPreferences(t *testing.T) {
	e, _ := newTestEngine(t)

	got := e.extract("It's our anniversary, we'd love a quiet booth. I'm vegetarian and my mom uses a wheelchair.")
	assert.Equal(t, "anniversary", got.Occasion)
	assert.Equal(t, "quiet booth", got.SeatingPreference)
	assert.Equal(t, "vegetarian", got.DietaryRestrictions)
	assert.Equal(t, "wheelchair", got.AccessibilityNeeds)

	got = e.extract("somewhere romantic, and we need it ASAP")
	assert.Equal(t, "romantic", got.AmbiancePreference)
	assert.True(t, got.Urgent)

	got = e.extract("hello there")
	assert.True(t, got.IsEmpty())
}

func TestCleanHelpers(t *testing.T) {
	assert.Equal(t, "John Smith", cleanName("  john   SMITH  "))
	assert.Equal(t, "Anna", cleanName("anna!!!"))
	assert.Equal(t, "", cleanName("1234"))

	assert.Equal(t, "5551234567", cleanPhone("(555) 123-4567"))
	assert.Equal(t, "5551234567", cleanPhone("555123456789"))

	assert.Equal(t, "7:00 PM", normalizeTime("7 pm"))
	assert.Equal(t, "11:45 AM", normalizeTime("11:45am"))
	assert.Equal(t, "12:00 AM", normalizeTime("12 am"))
}
