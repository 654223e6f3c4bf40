package models

// KnowledgeBase holds everything the conversation engine knows about the
// restaurant. It is loaded once at startup and treated as immutable afterwards.
type KnowledgeBase struct {
	Restaurant      RestaurantInfo    `json:"restaurant" mapstructure:"restaurant"`
	CommonQuestions map[string]string `json:"commonQuestions" mapstructure:"common_questions"`
	BrandVoice      BrandVoice        `json:"brandVoice" mapstructure:"brand_voice"`
	BusinessRules   BusinessRules     `json:"businessRules" mapstructure:"business_rules"`
}

// RestaurantInfo describes the restaurant's identity and static facts.
type RestaurantInfo struct {
	Name          string       `json:"name" mapstructure:"name"`
	Description   string       `json:"description" mapstructure:"description"`
	Cuisine       string       `json:"cuisine" mapstructure:"cuisine"`
	PriceRange    string       `json:"priceRange" mapstructure:"price_range"`
	Capacity      int          `json:"capacity" mapstructure:"capacity"`
	AvgDiningTime int          `json:"avgDiningTime" mapstructure:"avg_dining_time_minutes"` // minutes
	Hours         WeeklyHours  `json:"hours" mapstructure:"hours"`
	Menu          Menu         `json:"menu" mapstructure:"menu"`
	Policies      Policies     `json:"policies" mapstructure:"policies"`
	Features      Features     `json:"features" mapstructure:"features"`
	Staff         Staff        `json:"staff" mapstructure:"staff"`
	Contact       ContactInfo  `json:"contact" mapstructure:"contact"`
}

// WeeklyHours holds opening hours per weekday as display strings,
// e.g. "11:00 AM - 10:00 PM".
type WeeklyHours struct {
	Monday    string `json:"monday" mapstructure:"monday"`
	Tuesday   string `json:"tuesday" mapstructure:"tuesday"`
	Wednesday string `json:"wednesday" mapstructure:"wednesday"`
	Thursday  string `json:"thursday" mapstructure:"thursday"`
	Friday    string `json:"friday" mapstructure:"friday"`
	Saturday  string `json:"saturday" mapstructure:"saturday"`
	Sunday    string `json:"sunday" mapstructure:"sunday"`
}

// Ordered returns the weekday names and hours in Monday-first order.
func (h WeeklyHours) Ordered() ([]string, []string) {
	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	hours := []string{h.Monday, h.Tuesday, h.Wednesday, h.Thursday, h.Friday, h.Saturday, h.Sunday}
	return days, hours
}

// MenuItem is a single dish or drink on the menu.
type MenuItem struct {
	Name        string   `json:"name" mapstructure:"name"`
	Price       float64  `json:"price,omitempty" mapstructure:"price"`
	Description string   `json:"description,omitempty" mapstructure:"description"`
	DietaryTags []string `json:"dietaryTags,omitempty" mapstructure:"dietary_tags"`
	Popular     bool     `json:"popular,omitempty" mapstructure:"popular"`
}

// Menu groups menu items by course.
type Menu struct {
	Appetizers []MenuItem        `json:"appetizers" mapstructure:"appetizers"`
	Mains      []MenuItem        `json:"mains" mapstructure:"mains"`
	Desserts   []MenuItem        `json:"desserts" mapstructure:"desserts"`
	Beverages  []MenuItem        `json:"beverages" mapstructure:"beverages"`
	Specials   map[string]string `json:"specials,omitempty" mapstructure:"specials"`
}

// ItemsWithTag returns every menu item carrying the given dietary tag.
func (m Menu) ItemsWithTag(tag string) []MenuItem {
	var out []MenuItem
	for _, group := range [][]MenuItem{m.Appetizers, m.Mains, m.Desserts} {
		for _, item := range group {
			for _, t := range item.DietaryTags {
				if t == tag {
					out = append(out, item)
					break
				}
			}
		}
	}
	return out
}

// Policies holds free-text policy statements per topic.
type Policies struct {
	Reservation   string `json:"reservationPolicy" mapstructure:"reservation"`
	Cancellation  string `json:"cancellationPolicy" mapstructure:"cancellation"`
	LargeParties  string `json:"largeParties" mapstructure:"large_parties"`
	DressCode     string `json:"dressCode" mapstructure:"dress_code"`
	Children      string `json:"children" mapstructure:"children"`
	Pets          string `json:"pets" mapstructure:"pets"`
	Accessibility string `json:"accessibility" mapstructure:"accessibility"`
	Payment       string `json:"payment" mapstructure:"payment"`
	Corkage       string `json:"corkage" mapstructure:"corkage"`
	PrivateEvents string `json:"privateEvents" mapstructure:"private_events"`
}

// Features describes amenities and atmosphere.
type Features struct {
	Wifi            string   `json:"wifi" mapstructure:"wifi"`
	Parking         string   `json:"parking" mapstructure:"parking"`
	Atmosphere      string   `json:"atmosphere" mapstructure:"atmosphere"`
	SpecialServices []string `json:"specialServices,omitempty" mapstructure:"special_services"`
}

// Staff holds the staff members guests ask about.
type Staff struct {
	ExecutiveChef string `json:"executiveChef" mapstructure:"executive_chef"`
	Manager       string `json:"manager" mapstructure:"manager"`
}

// ContactInfo is how guests reach the restaurant.
type ContactInfo struct {
	Phone   string `json:"phone" mapstructure:"phone"`
	Address string `json:"address" mapstructure:"address"`
	Email   string `json:"email" mapstructure:"email"`
}

// BrandVoice tunes how generated responses sound.
type BrandVoice struct {
	Tone        string `json:"tone" mapstructure:"tone"`
	Personality string `json:"personality" mapstructure:"personality"`
}

// BusinessRules carries operational constraints the engine surfaces in answers.
type BusinessRules struct {
	ReservationWindowDays int  `json:"reservationWindowDays" mapstructure:"reservation_window_days"`
	MaxPartySize          int  `json:"maxPartySize" mapstructure:"max_party_size"`
	WalkInsWelcome        bool `json:"walkInsWelcome" mapstructure:"walk_ins_welcome"`
}
