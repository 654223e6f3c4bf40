package conversation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"frontdesk/models"
)

// respond turns (intent, entities, state) into the reply for this turn.
// Reservation intents run the slot-filling machine; everything else answers
// from the knowledge base without mutating state.
func (e *Engine) respond(intent string, entities models.EntityRecord, normalized string, draftOpened bool) string {
	switch intent {
	case IntentMakeReservation:
		return e.handleReservation(draftOpened)
	case IntentCheckAvailability:
		return e.handleAvailability(entities)
	case IntentModifyReservation:
		return e.handleModify()
	case IntentAskHours:
		return e.handleHours()
	case IntentAskSpecials:
		return e.handleSpecials()
	case IntentAskDietary:
		return e.handleDietary(normalized)
	case IntentAskMenu:
		return e.handleMenu(normalized)
	case IntentAskLocation:
		return e.handleLocation()
	case IntentAskPolicies:
		return e.handlePolicies(normalized)
	case IntentAskFeatures:
		return e.handleFeatures(normalized)
	case IntentAskStaff:
		return e.handleStaff()
	case IntentCompliment:
		return e.pick(
			"Thank you so much! We'll pass that along to the whole team - it means a lot.",
			"That's wonderful to hear! Our staff will be thrilled.",
			"We really appreciate the kind words. We hope to see you again soon!",
		)
	case IntentComplaint:
		return e.pick(
			fmt.Sprintf("I'm very sorry to hear that. Your experience matters to us - please call us at %s so %s, our manager, can make it right.", e.kb.Restaurant.Contact.Phone, e.kb.Restaurant.Staff.Manager),
			"I apologize for your experience. That's not the standard we hold ourselves to. Could you share a few more details so we can follow up?",
		)
	case IntentGreeting:
		return e.pick(
			fmt.Sprintf("Hello! Welcome to %s. How can I help you today?", e.kb.Restaurant.Name),
			"Hi there! I'm here to help with reservations and answer any questions about our restaurant.",
			fmt.Sprintf("Good day! What can I do for you at %s?", e.kb.Restaurant.Name),
		)
	case IntentThanks:
		return e.pick(
			"You're very welcome! Is there anything else I can help you with?",
			"My pleasure! Let me know if you have any other questions.",
			"Happy to help! Anything else you'd like to know about our restaurant?",
		)
	case IntentGoodbye:
		return e.pick(
			fmt.Sprintf("Thank you for your interest in %s! We look forward to seeing you soon.", e.kb.Restaurant.Name),
			"Have a wonderful day! Don't hesitate to reach out if you need anything else.",
			"Thanks for chatting! We can't wait to serve you at our restaurant.",
		)
	default:
		return e.handleGeneral(normalized)
	}
}

func (e *Engine) pick(variants ...string) string {
	return variants[e.rng.Intn(len(variants))]
}

// ---------- Reservation slot filling ----------

// Required slots in asking order. The date slot is satisfied by either a
// concrete date or a day-of-week token.
var slotQuestions = []struct {
	slot     string
	question string
}{
	{"name", "Great! What name should I put the reservation under?"},
	{"party size", "Perfect! How many people will be dining with us?"},
	{"date", "Excellent! What day would you like to come in?"},
	{"time", "Wonderful! What time would you prefer?"},
	{"phone number", "Almost done! Can you provide a phone number for the reservation?"},
}

func missingSlots(b *models.BookingDraft) []string {
	var missing []string
	if b.CustomerName == "" {
		missing = append(missing, "name")
	}
	if b.PartySize == 0 {
		missing = append(missing, "party size")
	}
	if b.Date == "" && b.DayOfWeek == "" {
		missing = append(missing, "date")
	}
	if b.Time == "" {
		missing = append(missing, "time")
	}
	if b.PhoneNumber == "" {
		missing = append(missing, "phone number")
	}
	return missing
}

func (e *Engine) handleReservation(draftOpened bool) string {
	booking := e.state.ActiveBooking
	if booking == nil {
		return "I'd be happy to help you make a reservation! Let me get some details from you."
	}

	missing := missingSlots(booking)
	if len(missing) == 0 {
		return e.finalizeReservation(booking)
	}

	// Ask exactly one question: the first slot still missing.
	question := "I need a bit more information to complete your reservation."
	for _, sq := range slotQuestions {
		if sq.slot == missing[0] {
			question = sq.question
			break
		}
	}
	if draftOpened {
		return "I'd be happy to help you with a reservation! " + question
	}
	return question
}

// finalizeReservation converts the completed draft into a FinalizedBooking,
// hands it to the booking sink, clears the draft, and composes the
// confirmation sentence.
func (e *Engine) finalizeReservation(booking *models.BookingDraft) string {
	date := booking.Date
	if date == "" {
		date = e.resolveDayOfWeek(booking.DayOfWeek)
	}

	start := e.parseClockTime(booking.Time, date)
	final := models.FinalizedBooking{
		ID:           booking.ID,
		CustomerName: booking.CustomerName,
		PhoneNumber:  booking.PhoneNumber,
		PartySize:    booking.PartySize,
		Date:         date,
		StartTime:    start,
		EndTime:      start.Add(2 * time.Hour),
		Status:       models.BookingStatusConfirmed,
		Notes:        assembleNotes(booking),
		CreatedAt:    e.now(),
		CreatedVia:   "chat",
		Preferences: models.BookingPreferences{
			Dietary:       booking.DietaryRestrictions,
			Seating:       booking.SeatingPreference,
			Occasion:      booking.Occasion,
			Accessibility: booking.AccessibilityNeeds,
			Ambiance:      booking.AmbiancePreference,
			Urgent:        booking.Urgent,
		},
	}

	e.deliverToSink(final)
	e.state.ActiveBooking = nil

	return e.composeConfirmation(final)
}

// deliverToSink is best-effort: the notification step never breaks
// finalization, even if the sink panics.
func (e *Engine) deliverToSink(final models.FinalizedBooking) {
	if e.sink == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("booking sink failed", zap.Any("cause", r), zap.String("bookingId", final.ID))
		}
	}()
	e.sink.CreateBooking(final)
}

// composeConfirmation builds the confirmation sentence: base confirmation,
// then conditional clauses for occasion, dietary, seating, and accessibility,
// in that order.
func (e *Engine) composeConfirmation(final models.FinalizedBooking) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Perfect! Your reservation is confirmed for %s, party of %d, on %s at %s. We'll contact you at %s if needed.",
		final.CustomerName, final.PartySize, e.formatDate(final.Date), final.StartTime.Format("3:04 PM"), final.PhoneNumber)

	if final.Preferences.Occasion != "" {
		fmt.Fprintf(&b, " We're delighted to help you celebrate your %s!", final.Preferences.Occasion)
	}
	if final.Preferences.Dietary != "" {
		fmt.Fprintf(&b, " We've noted your %s requirements for the kitchen.", final.Preferences.Dietary)
	}
	if final.Preferences.Seating != "" {
		fmt.Fprintf(&b, " We've noted your preference for %s seating.", final.Preferences.Seating)
	}
	if final.Preferences.Accessibility != "" {
		b.WriteString(" Our team will have everything ready for your accessibility needs.")
	}

	fmt.Fprintf(&b, " Looking forward to seeing you at %s!", e.kb.Restaurant.Name)
	return b.String()
}

func assembleNotes(b *models.BookingDraft) string {
	var parts []string
	if b.Occasion != "" {
		parts = append(parts, "Occasion: "+b.Occasion)
	}
	if b.DietaryRestrictions != "" {
		parts = append(parts, "Dietary: "+b.DietaryRestrictions)
	}
	if b.SeatingPreference != "" {
		parts = append(parts, "Seating: "+b.SeatingPreference)
	}
	if b.AccessibilityNeeds != "" {
		parts = append(parts, "Accessibility: "+b.AccessibilityNeeds)
	}
	if b.AmbiancePreference != "" {
		parts = append(parts, "Ambiance: "+b.AmbiancePreference)
	}
	if b.Urgent {
		parts = append(parts, "Urgent request")
	}
	if len(parts) == 0 {
		return "Created via chat"
	}
	return strings.Join(parts, "; ")
}

var weekdayIndex = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// resolveDayOfWeek returns the next occurrence of the named weekday strictly
// after today; the same weekday as today rolls a full week forward.
func (e *Engine) resolveDayOfWeek(day string) string {
	target, ok := weekdayIndex[strings.ToLower(day)]
	today := e.now()
	if !ok {
		return today.Format("2006-01-02")
	}

	diff := int(target) - int(today.Weekday())
	if diff <= 0 {
		diff += 7
	}
	return today.AddDate(0, 0, diff).Format("2006-01-02")
}

// parseClockTime combines a normalized "H:MM AM/PM" string with a
// "YYYY-MM-DD" date into a concrete time in the engine's location.
func (e *Engine) parseClockTime(clock, date string) time.Time {
	now := e.now()
	day, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		day = now
	}
	t, err := time.ParseInLocation("3:04 PM", clock, now.Location())
	if err != nil {
		return day
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
}

func (e *Engine) formatDate(date string) string {
	now := e.now()
	day, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return date
	}

	switch date {
	case now.Format("2006-01-02"):
		return "today"
	case now.AddDate(0, 0, 1).Format("2006-01-02"):
		return "tomorrow"
	}
	return day.Format("Monday, January 2")
}

// ---------- Informational intents ----------

var availabilityTimeSlots = []string{
	"5:00 PM", "5:30 PM", "6:00 PM", "6:30 PM", "7:00 PM",
	"7:30 PM", "8:00 PM", "8:30 PM", "9:00 PM",
}

// handleAvailability answers with simulated open slots; no real floor data
// exists behind this demo.
func (e *Engine) handleAvailability(entities models.EntityRecord) string {
	n := e.rng.Intn(6) + 3
	slots := strings.Join(availabilityTimeSlots[:n], ", ")

	if entities.Date != "" || entities.DayOfWeek != "" {
		ref := entities.DayOfWeek
		if entities.Date != "" {
			ref = e.formatDate(entities.Date)
		}
		return fmt.Sprintf("For %s, we have availability at: %s. Would you like to make a reservation for any of these times?", ref, slots)
	}
	return fmt.Sprintf("We have several time slots available today: %s. What day were you thinking of dining with us?", slots)
}

func (e *Engine) handleModify() string {
	return fmt.Sprintf("I can help with changes to an existing reservation. %s Please call us at %s with your name and we'll take care of it right away.",
		e.kb.Restaurant.Policies.Cancellation+".", e.kb.Restaurant.Contact.Phone)
}

// handleHours groups consecutive days sharing the same hours, matching the
// way the restaurant publishes them.
func (e *Engine) handleHours() string {
	days, hours := e.kb.Restaurant.Hours.Ordered()

	var groups []string
	for i := 0; i < len(days); {
		j := i
		for j+1 < len(days) && hours[j+1] == hours[i] {
			j++
		}
		switch {
		case i == 0 && j == len(days)-1:
			groups = append(groups, "Daily "+hours[i])
		case i == j:
			groups = append(groups, days[i]+" "+hours[i])
		default:
			groups = append(groups, days[i]+"-"+days[j]+" "+hours[i])
		}
		i = j + 1
	}
	return "Our hours are: " + strings.Join(groups, ", ") + ". Would you like to make a reservation?"
}

func (e *Engine) handleSpecials() string {
	specials := e.kb.Restaurant.Menu.Specials
	if len(specials) == 0 {
		return "Ask about our daily specials when you visit - the chef changes them with the season!"
	}

	names := make([]string, 0, len(specials))
	for name := range specials {
		names = append(names, name)
	}
	sort.Strings(names)

	var parts []string
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s (%s)", name, specials[name]))
	}
	return "Here's what's special right now: " + strings.Join(parts, "; ") + ". Shall I book you a table to try them?"
}

func (e *Engine) handleDietary(normalized string) string {
	menu := e.kb.Restaurant.Menu

	switch {
	case strings.Contains(normalized, "vegan"):
		return "We can accommodate vegan requests with advance notice - several dishes can be prepared vegan. Just mention it when you book."
	case strings.Contains(normalized, "vegetarian"):
		if items := menu.ItemsWithTag("vegetarian"); len(items) > 0 {
			return fmt.Sprintf("We have several vegetarian options including %s. Would you like to make a reservation?", joinItemNames(items, len(items)))
		}
		return "We have vegetarian options available - just ask your server."
	case strings.Contains(normalized, "gluten"):
		if items := menu.ItemsWithTag("gluten-free"); len(items) > 0 {
			return fmt.Sprintf("Yes! Our gluten-free choices include %s, plus gluten-free pasta on request. Let us know when you reserve so the kitchen can prepare.", joinItemNames(items, len(items)))
		}
		return "Yes, we offer gluten-free pasta and pizza options. Just let us know when you make your reservation."
	case strings.Contains(normalized, "allerg"):
		return "Please tell us about any allergies when you book - our kitchen takes them very seriously and the chef will adjust dishes where possible."
	}
	return "We're happy to accommodate dietary needs - vegetarian, gluten-free, and most allergies. What should we know about?"
}

func (e *Engine) handleMenu(normalized string) string {
	menu := e.kb.Restaurant.Menu

	switch {
	case strings.Contains(normalized, "appetizer") || strings.Contains(normalized, "starter"):
		return fmt.Sprintf("Our popular appetizers include: %s. Would you like to make a reservation to try them?", joinItemNames(menu.Appetizers, len(menu.Appetizers)))
	case strings.Contains(normalized, "main") || strings.Contains(normalized, "entree") || strings.Contains(normalized, "signature"):
		return fmt.Sprintf("Our signature dishes include: %s, and more! We serve authentic %s cuisine. Shall I make you a reservation?", joinItemNames(menu.Mains, 4), e.kb.Restaurant.Cuisine)
	case strings.Contains(normalized, "dessert"):
		return fmt.Sprintf("Our delicious desserts include: %s. Perfect way to end your meal!", joinItemNames(menu.Desserts, len(menu.Desserts)))
	case strings.Contains(normalized, "drink") || strings.Contains(normalized, "wine") || strings.Contains(normalized, "beverage"):
		return fmt.Sprintf("We offer %s, and an extensive Italian wine list. Would you like to book a table?", joinItemNames(menu.Beverages, len(menu.Beverages)))
	case strings.Contains(normalized, "price") || strings.Contains(normalized, "cost") ||
		strings.Contains(normalized, "how much") || strings.Contains(normalized, "expensive"):
		lo, hi := priceRange(menu.Mains)
		if lo > 0 {
			return fmt.Sprintf("Our entrees range from $%.0f to $%.0f (%s). Would you like to hear about our current specials?", lo, hi, e.kb.Restaurant.PriceRange)
		}
		return "Our pricing is in the " + e.kb.Restaurant.PriceRange + " range. Would you like to hear about our current specials?"
	}

	return fmt.Sprintf("We serve authentic %s cuisine with fresh, locally-sourced ingredients. Our specialties include %s. Would you like to make a reservation?",
		e.kb.Restaurant.Cuisine, joinItemNames(menu.Mains, 3))
}

func (e *Engine) handleLocation() string {
	contact := e.kb.Restaurant.Contact
	return fmt.Sprintf("We're located at %s. %s. Our phone number is %s if you need directions!",
		contact.Address, e.kb.Restaurant.Features.Parking, contact.Phone)
}

func (e *Engine) handlePolicies(normalized string) string {
	p := e.kb.Restaurant.Policies

	switch {
	case strings.Contains(normalized, "dress") || strings.Contains(normalized, "wear") || strings.Contains(normalized, "attire"):
		return fmt.Sprintf("Our dress code is %s. We want you to feel comfortable while keeping a nice atmosphere for all guests.", strings.ToLower(p.DressCode))
	case strings.Contains(normalized, "parking") || strings.Contains(normalized, "park"):
		return e.kb.Restaurant.Features.Parking + "."
	case strings.Contains(normalized, "kid") || strings.Contains(normalized, "child") || strings.Contains(normalized, "family"):
		return p.Children + "."
	case strings.Contains(normalized, "cancel"):
		return p.Cancellation + ". You can call us or let me know here if you need to make changes."
	case strings.Contains(normalized, "pet") || strings.Contains(normalized, "dog") || strings.Contains(normalized, "animal"):
		return p.Pets + "."
	case strings.Contains(normalized, "corkage") || strings.Contains(normalized, "byob") || strings.Contains(normalized, "own wine"):
		return p.Corkage + "."
	case strings.Contains(normalized, "pay") || strings.Contains(normalized, "card") || strings.Contains(normalized, "cash"):
		return p.Payment + "."
	case strings.Contains(normalized, "private") || strings.Contains(normalized, "event"):
		return p.PrivateEvents + "."
	case strings.Contains(normalized, "large") || strings.Contains(normalized, "group") || strings.Contains(normalized, "party"):
		return p.LargeParties + ". We're happy to accommodate larger groups with advance notice!"
	}
	return "I'd be happy to help with any specific questions about our policies. What would you like to know?"
}

func (e *Engine) handleFeatures(normalized string) string {
	f := e.kb.Restaurant.Features

	switch {
	case strings.Contains(normalized, "wifi") || strings.Contains(normalized, "wi-fi") || strings.Contains(normalized, "internet"):
		return f.Wifi + "."
	case strings.Contains(normalized, "catering") || strings.Contains(normalized, "class") || strings.Contains(normalized, "pairing"):
		if len(f.SpecialServices) > 0 {
			return fmt.Sprintf("Yes! We offer %s. Call us at %s to arrange any of these.", strings.Join(f.SpecialServices, ", "), e.kb.Restaurant.Contact.Phone)
		}
	}
	return f.Atmosphere + ". " + f.Wifi + "."
}

func (e *Engine) handleStaff() string {
	staff := e.kb.Restaurant.Staff
	if staff.ExecutiveChef == "" {
		return fmt.Sprintf("Our kitchen team takes great pride in every plate at %s.", e.kb.Restaurant.Name)
	}
	return fmt.Sprintf("Our kitchen is led by executive chef %s, who built the menu around authentic %s traditions. Come taste it for yourself!",
		staff.ExecutiveChef, e.kb.Restaurant.Cuisine)
}

func (e *Engine) handleGeneral(normalized string) string {
	// Deterministic key order so repeated inputs get repeated answers.
	keys := make([]string, 0, len(e.kb.CommonQuestions))
	for k := range e.kb.CommonQuestions {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, question := range keys {
		if strings.Contains(normalized, question) {
			return e.kb.CommonQuestions[question]
		}
	}

	return "I'd be happy to help! I can assist with reservations, provide information about our menu, hours, or location. What would you like to know?"
}

func joinItemNames(items []models.MenuItem, limit int) string {
	if limit > len(items) {
		limit = len(items)
	}
	names := make([]string, limit)
	for i := 0; i < limit; i++ {
		names[i] = items[i].Name
	}
	return strings.Join(names, ", ")
}

func priceRange(items []models.MenuItem) (lo, hi float64) {
	for _, item := range items {
		if item.Price == 0 {
			continue
		}
		if lo == 0 || item.Price < lo {
			lo = item.Price
		}
		if item.Price > hi {
			hi = item.Price
		}
	}
	return lo, hi
}
