package conversation

import (
	"strconv"
	"strings"
	"unicode"

	"frontdesk/models"
)

const (
	minPartySize = 1
	maxPartySize = 20
)

// extract scans the original-case message and returns the partial entity
// record. Extraction runs on every turn regardless of intent and never fails;
// fields that do not match are simply left at their zero value.
func (e *Engine) extract(message string) models.EntityRecord {
	var entities models.EntityRecord

	e.extractPartySize(message, &entities)
	e.extractCustomerName(message, &entities)
	e.extractPhoneNumber(message, &entities)
	e.extractDateTime(message, &entities)
	e.extractPreferences(message, &entities)

	if e.patterns.urgency.MatchString(message) {
		entities.Urgent = true
	}

	return entities
}

func (e *Engine) extractPartySize(message string, entities *models.EntityRecord) {
	for _, p := range e.patterns.partySizeDigits {
		m := p.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		size, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		// Out-of-range sizes are discarded, not clamped.
		if size >= minPartySize && size <= maxPartySize {
			entities.PartySize = size
			return
		}
	}
	for _, p := range e.patterns.partySizeWords {
		m := p.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		if size, ok := numberWords[strings.ToLower(m[1])]; ok {
			entities.PartySize = size
			return
		}
	}
}

func (e *Engine) extractCustomerName(message string, entities *models.EntityRecord) {
	for _, p := range e.patterns.customerName {
		m := p.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		name := cleanName(m[1])
		if name == "" || containsStopword(name) {
			continue
		}
		entities.CustomerName = name
		return
	}
}

func (e *Engine) extractPhoneNumber(message string, entities *models.EntityRecord) {
	for _, p := range e.patterns.phoneNumber {
		m := p.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		if phone := cleanPhone(m[1]); phone != "" {
			entities.PhoneNumber = phone
			return
		}
	}
}

func (e *Engine) extractDateTime(message string, entities *models.EntityRecord) {
	now := e.now()

	if e.patterns.dateToday.MatchString(message) {
		entities.Date = now.Format("2006-01-02")
	} else if e.patterns.dateTomorrow.MatchString(message) {
		entities.Date = now.AddDate(0, 0, 1).Format("2006-01-02")
	}

	if m := e.patterns.dayOfWeek.FindStringSubmatch(message); m != nil {
		entities.DayOfWeek = strings.ToLower(m[1])
	}

	if m := e.patterns.timeSlot.FindString(message); m != "" {
		entities.Time = normalizeTime(m)
	} else {
		// Bare meal-time words map to canonical times.
		switch {
		case e.patterns.mealLunch.MatchString(message):
			entities.Time = "12:00 PM"
		case e.patterns.mealDinner.MatchString(message):
			entities.Time = "7:00 PM"
		case e.patterns.mealBreak.MatchString(message):
			entities.Time = "10:00 AM"
		}
	}
}

func (e *Engine) extractPreferences(message string, entities *models.EntityRecord) {
	if m := e.patterns.dietary.FindString(message); m != "" {
		entities.DietaryRestrictions = strings.ToLower(m)
	}
	if m := e.patterns.seating.FindString(message); m != "" {
		entities.SeatingPreference = strings.ToLower(m)
	}
	if m := e.patterns.occasion.FindString(message); m != "" {
		entities.Occasion = strings.ToLower(m)
	}
	if m := e.patterns.accessibility.FindString(message); m != "" {
		entities.AccessibilityNeeds = strings.ToLower(m)
	}
	if m := e.patterns.ambiance.FindString(message); m != "" {
		entities.AmbiancePreference = strings.ToLower(m)
	}
}

// cleanName sanitizes a captured name: trims, strips everything but letters
// and spaces, capitalizes each word, and truncates to 30 characters.
func cleanName(raw string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		if unicode.IsLetter(r) || r == ' ' {
			b.WriteRune(r)
		}
	}

	words := strings.Fields(b.String())
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	name := strings.Join(words, " ")
	if len(name) > 30 {
		name = name[:30]
	}
	return name
}

func containsStopword(name string) bool {
	for _, w := range strings.Fields(strings.ToLower(name)) {
		if nameStopwords[w] {
			return true
		}
	}
	return false
}

// cleanPhone keeps digits only, truncated to 10.
func cleanPhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) > 10 {
		digits = digits[:10]
	}
	return digits
}

// normalizeTime renders any matched clock time as "H:MM AM/PM",
// e.g. "7 pm" -> "7:00 PM", "19:30" is not produced because extraction
// requires an am/pm marker.
func normalizeTime(raw string) string {
	m := defaultPatterns.timeSlot.FindStringSubmatch(raw)
	if m == nil {
		return raw
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return raw
	}
	minute := m[2]
	if minute == "" {
		minute = "00"
	}

	period := strings.ToUpper(m[3])
	if period == "PM" && hour < 12 {
		hour += 12
	}
	if period == "AM" && hour == 12 {
		hour = 0
	}

	display := hour % 12
	if display == 0 {
		display = 12
	}
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	return strconv.Itoa(display) + ":" + minute + " " + suffix
}
