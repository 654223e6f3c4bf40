package conversation

import "regexp"

// Intent labels, in classification order. Booking intents come first, then
// information intents, then sentiment, then conversational closers; the
// classifier returns the earliest declared intent whose rules match.
const (
	IntentMakeReservation   = "makeReservation"
	IntentCheckAvailability = "checkAvailability"
	IntentModifyReservation = "modifyReservation"
	IntentAskHours          = "askHours"
	IntentAskSpecials       = "askSpecials"
	IntentAskDietary        = "askDietary"
	IntentAskMenu           = "askMenu"
	IntentAskLocation       = "askLocation"
	IntentAskPolicies       = "askPolicies"
	IntentAskFeatures       = "askFeatures"
	IntentAskStaff          = "askStaff"
	IntentCompliment        = "compliment"
	IntentComplaint         = "complaint"
	IntentGreeting          = "greeting"
	IntentThanks            = "thanks"
	IntentGoodbye           = "goodbye"
	IntentGeneral           = "general"
)

type intentRule struct {
	intent   string
	patterns []*regexp.Regexp
}

// PatternSet is the compiled rule library. It is built once and shared
// read-only across every engine instance.
type PatternSet struct {
	intents []intentRule

	partySizeDigits []*regexp.Regexp
	partySizeWords  []*regexp.Regexp
	customerName    []*regexp.Regexp
	phoneNumber     []*regexp.Regexp

	dateToday    *regexp.Regexp
	dateTomorrow *regexp.Regexp
	dayOfWeek    *regexp.Regexp
	timeSlot     *regexp.Regexp
	mealLunch    *regexp.Regexp
	mealDinner   *regexp.Regexp
	mealBreak    *regexp.Regexp

	dietary       *regexp.Regexp
	seating       *regexp.Regexp
	occasion      *regexp.Regexp
	accessibility *regexp.Regexp
	ambiance      *regexp.Regexp
	urgency       *regexp.Regexp
}

var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19, "twenty": 20,
}

const numberWordAlt = "one|two|three|four|five|six|seven|eight|nine|ten|" +
	"eleven|twelve|thirteen|fourteen|fifteen|sixteen|seventeen|eighteen|nineteen|twenty"

// Words that disqualify a captured name candidate. Keeps date/time talk such
// as "table for tonight" from being read as a customer name.
var nameStopwords = map[string]bool{
	"today": true, "tonight": true, "tomorrow": true, "evening": true,
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
	"lunch": true, "dinner": true, "breakfast": true,
	"people": true, "persons": true, "guests": true, "diners": true,
	"us": true, "me": true, "am": true, "pm": true, "now": true,
	"one": true, "two": true, "three": true, "four": true, "five": true,
	"six": true, "seven": true, "eight": true, "nine": true, "ten": true,
	"eleven": true, "twelve": true, "thirteen": true, "fourteen": true,
	"fifteen": true, "sixteen": true, "seventeen": true, "eighteen": true,
	"nineteen": true, "twenty": true,
}

var defaultPatterns = compilePatterns()

func compilePatterns() *PatternSet {
	rx := func(exprs ...string) []*regexp.Regexp {
		out := make([]*regexp.Regexp, len(exprs))
		for i, expr := range exprs {
			out[i] = regexp.MustCompile(expr)
		}
		return out
	}

	return &PatternSet{
		intents: []intentRule{
			// Booking intents.
			{IntentMakeReservation, rx(
				`(?i)(?:make|book|reserve|need|want|get)\s+(?:a\s+)?(?:reservation|table|booking)`,
				`(?i)(?:table|reservation)\s+for`,
				`(?i)book\s+(?:a\s+)?table`,
				`(?i)can\s+(?:we|i)\s+(?:get|have)\s+a\s+table`,
			)},
			{IntentCheckAvailability, rx(
				`(?i)(?:do you have|are there|is there)\s+(?:any\s+)?(?:tables|availability|openings)`,
				`(?i)(?:what\s+)?(?:times|slots)\s+(?:are\s+)?(?:available|open)`,
				`(?i)can\s+you\s+fit\s+us\s+in`,
			)},
			{IntentModifyReservation, rx(
				`(?i)(?:change|modify|update|reschedule)\s+(?:my\s+)?reservation`,
				`(?i)(?:cancel|remove)\s+(?:my\s+)?(?:reservation|booking)`,
				`(?i)move\s+(?:my\s+)?(?:table|reservation)`,
			)},

			// Information intents.
			{IntentAskHours, rx(
				`(?i)(?:what|when)\s+(?:time|times)\s+(?:are you|do you)\s+open`,
				`(?i)(?:hours|operating|open)`,
				`(?i)what\s+time\s+(?:do you|are you)\s+(?:close|open)`,
			)},
			{IntentAskSpecials, rx(
				`(?i)specials?\b`,
				`(?i)what(?:'s|\s+is)\s+(?:good|fresh)\s+today`,
				`(?i)chef'?s\s+(?:special|recommendation)`,
			)},
			{IntentAskDietary, rx(
				`(?i)(?:vegetarian|vegan|gluten[-\s]?free|dairy[-\s]?free|nut[-\s]?free|kosher|halal|keto)`,
				`(?i)allerg(?:y|ic|ies)`,
				`(?i)dietary`,
			)},
			{IntentAskMenu, rx(
				`(?i)(?:what|tell me about)\s+(?:do you|can you)\s+(?:have|serve)`,
				`(?i)(?:menu|cuisine|dishes)`,
				`(?i)what\s+(?:kind|type)\s+of\s+food`,
				`(?i)food\s+do\s+you\s+(?:have|serve)`,
				`(?i)(?:how\s+much|price|cost|expensive)`,
				`(?i)signature\s+dish`,
			)},
			{IntentAskLocation, rx(
				`(?i)(?:where\s+are\s+you|address|location|directions)`,
				`(?i)how\s+do\s+(?:i|we)\s+get\s+there`,
			)},
			{IntentAskPolicies, rx(
				`(?i)(?:dress\s+code|what\s+should\s+i\s+wear)`,
				`(?i)(?:parking|can\s+i\s+park)`,
				`(?i)(?:kids|children|family)`,
				`(?i)(?:cancellation|cancel)`,
				`(?i)(?:pets?|dog|service\s+animal)`,
				`(?i)(?:corkage|byob|bring\s+(?:our|my)\s+own\s+wine)`,
				`(?i)(?:credit\s+card|payment|pay\s+with|cash)`,
				`(?i)(?:private\s+(?:room|event|dining)|large\s+(?:group|party))`,
			)},
			{IntentAskFeatures, rx(
				`(?i)(?:wifi|wi-fi|internet)`,
				`(?i)(?:atmosphere|ambiance|vibe|loud\s+or\s+quiet|is\s+it\s+(?:loud|quiet))`,
				`(?i)(?:catering|cooking\s+class|wine\s+pairing)`,
			)},
			{IntentAskStaff, rx(
				`(?i)(?:your\s+chef|the\s+chef|who\s+(?:cooks|is\s+the\s+chef)|owner)`,
			)},

			// Sentiment.
			{IntentCompliment, rx(
				`(?i)(?:amazing|delicious|wonderful|fantastic|incredible|excellent)`,
				`(?i)(?:loved?\s+(?:it|the)|great\s+(?:food|service|meal|time)|best\s+(?:meal|food|dinner))`,
			)},
			{IntentComplaint, rx(
				`(?i)(?:terrible|awful|horrible|disappointed|disappointing|unacceptable)`,
				`(?i)(?:bad|poor|slow|rude)\s+(?:service|food|experience|staff)`,
				`(?i)complain(?:t|ts|ing)?`,
			)},

			// Conversational.
			{IntentGreeting, rx(
				`(?i)^(?:hi|hello|hey|good\s+(?:morning|afternoon|evening))`,
				`(?i)how\s+are\s+you`,
			)},
			{IntentThanks, rx(
				`(?i)^(?:thank\s+you|thanks|appreciate)`,
				`(?i)that\s+(?:helps|works)`,
			)},
			{IntentGoodbye, rx(
				`(?i)^(?:bye|goodbye|see\s+you|talk\s+to\s+you)`,
				`(?i)have\s+a\s+(?:good|great|nice)`,
			)},
		},

		partySizeDigits: rx(
			`(?i)(?:party of|table for|for)\s+(\d{1,2})(?:\s+people|\s+persons|\s+guests|$)`,
			`(?i)(\d{1,2})\s+(?:people|persons|guests|diners)`,
			`(?i)(?:we are|there are|it's|just|only)\s+(\d{1,2})(?:\s+of us)?`,
		),
		partySizeWords: rx(
			`(?i)(?:party of|table for|for)\s+(`+numberWordAlt+`)\b`,
			`(?i)\b(`+numberWordAlt+`)\s+(?:people|persons|guests|diners)\b`,
		),
		customerName: rx(
			`(?i)(?:my name is|i'm|i am|this is|name's|call me)\s+([a-zA-Z\s]{2,30})`,
			`(?i)(?:for|under)\s+([a-zA-Z\s]{2,30})(?:\s|$)`,
			`(?i)reservation\s+(?:for|under)\s+([a-zA-Z\s]{2,30})`,
		),
		phoneNumber: rx(
			`(?i)(?:phone|number|contact)(?:\s+is)?\s*:?\s*(\d{3}[-.\s]?\d{3}[-.\s]?\d{4})`,
			`(\d{3}[-.\s]?\d{3}[-.\s]?\d{4})`,
			`(?i)call\s+me\s+at\s+(\d[\d.\s-]{6,})`,
		),

		dateToday:    regexp.MustCompile(`(?i)(?:today|this evening|tonight)`),
		dateTomorrow: regexp.MustCompile(`(?i)(?:tomorrow|next day)`),
		dayOfWeek:    regexp.MustCompile(`(?i)(?:this\s+|next\s+)?(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`),
		timeSlot:     regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(am|pm)`),
		mealLunch:    regexp.MustCompile(`(?i)\blunch\b`),
		mealDinner:   regexp.MustCompile(`(?i)\bdinner\b`),
		mealBreak:    regexp.MustCompile(`(?i)\bbreakfast\b`),

		dietary:       regexp.MustCompile(`(?i)(?:vegetarian|vegan|gluten[-\s]?free|dairy[-\s]?free|nut[-\s]?free|kosher|halal|allergic\s+to\s+\w+|no\s+(?:meat|dairy|gluten|nuts))`),
		seating:       regexp.MustCompile(`(?i)(?:booth|patio|outdoor|outside|window\s+(?:seat|table)|bar\s+seat(?:ing)?|quiet\s+(?:table|booth|corner|spot|area)|private\s+(?:room|table))`),
		occasion:      regexp.MustCompile(`(?i)(?:birthday|anniversary|date\s+night|business\s+(?:dinner|lunch|meeting)|celebration|graduation|engagement|proposal)`),
		accessibility: regexp.MustCompile(`(?i)(?:wheelchair|accessib(?:le|ility)|mobility|hearing\s+imp|service\s+(?:dog|animal)|step[-\s]?free)`),
		ambiance:      regexp.MustCompile(`(?i)(?:romantic|cozy|intimate|lively|casual|upscale|quiet)`),
		urgency:       regexp.MustCompile(`(?i)(?:urgent(?:ly)?|asap|as\s+soon\s+as\s+possible|right\s+away|immediately|in\s+a\s+hurry)`),
	}
}

// Patterns returns the shared compiled pattern library.
func Patterns() *PatternSet {
	return defaultPatterns
}
