package conversation

// classify maps a normalized (lowercased, trimmed) message to exactly one
// intent label. Intents are tried in declared order and, within an intent,
// rules in declared order; the first match wins. When nothing matches, a
// message sent mid-booking is treated as a reservation continuation so that
// bare answers like "4" or "Johnson" stay in the slot-filling flow.
func (e *Engine) classify(normalized string) string {
	for _, rule := range e.patterns.intents {
		for _, p := range rule.patterns {
			if p.MatchString(normalized) {
				return rule.intent
			}
		}
	}

	if e.state.ActiveBooking != nil {
		return IntentMakeReservation
	}
	return IntentGeneral
}
