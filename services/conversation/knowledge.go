package conversation

import "frontdesk/models"

// DefaultKnowledgeBase returns the built-in restaurant facts used when no
// configuration source is supplied or loading fails.
func DefaultKnowledgeBase() models.KnowledgeBase {
	return models.KnowledgeBase{
		Restaurant: models.RestaurantInfo{
			Name:          "Mario's Italian Bistro",
			Description:   "Authentic Italian cuisine with fresh, locally-sourced ingredients",
			Cuisine:       "Italian",
			PriceRange:    "$$",
			Capacity:      80,
			AvgDiningTime: 90,
			Hours: models.WeeklyHours{
				Monday:    "11:00 AM - 10:00 PM",
				Tuesday:   "11:00 AM - 10:00 PM",
				Wednesday: "11:00 AM - 10:00 PM",
				Thursday:  "11:00 AM - 10:00 PM",
				Friday:    "11:00 AM - 11:00 PM",
				Saturday:  "10:00 AM - 11:00 PM",
				Sunday:    "10:00 AM - 10:00 PM",
			},
			Menu: models.Menu{
				Appetizers: []models.MenuItem{
					{Name: "Bruschetta", Price: 12, Description: "Grilled bread, tomato, basil", DietaryTags: []string{"vegetarian"}},
					{Name: "Calamari", Price: 16, Description: "Lightly fried with lemon aioli", Popular: true},
					{Name: "Antipasto Platter", Price: 18, Description: "Cured meats, cheeses, olives"},
					{Name: "Caesar Salad", Price: 14, Description: "Romaine, parmesan, house dressing"},
				},
				Mains: []models.MenuItem{
					{Name: "Spaghetti Carbonara", Price: 22, Description: "Guanciale, egg, pecorino", Popular: true},
					{Name: "Chicken Parmigiana", Price: 26, Description: "Breaded cutlet, marinara, mozzarella", Popular: true},
					{Name: "Seafood Risotto", Price: 32, Description: "Shrimp, scallops, saffron", DietaryTags: []string{"gluten-free"}},
					{Name: "Margherita Pizza", Price: 19, Description: "San Marzano tomato, fresh mozzarella", DietaryTags: []string{"vegetarian"}},
					{Name: "Lasagna", Price: 24, Description: "Slow-braised beef ragu"},
					{Name: "Veal Piccata", Price: 34, Description: "Lemon, capers, white wine"},
				},
				Desserts: []models.MenuItem{
					{Name: "Tiramisu", Price: 11, Description: "Espresso-soaked ladyfingers", Popular: true},
					{Name: "Gelato", Price: 9, Description: "Daily flavors", DietaryTags: []string{"vegetarian", "gluten-free"}},
					{Name: "Cannoli", Price: 10, Description: "Sweet ricotta, pistachio"},
					{Name: "Panna Cotta", Price: 11, Description: "Vanilla bean, berry coulis", DietaryTags: []string{"gluten-free"}},
				},
				Beverages: []models.MenuItem{
					{Name: "Italian Wine", Price: 12, Description: "By the glass, extensive list"},
					{Name: "Espresso", Price: 4},
					{Name: "Limoncello", Price: 9},
					{Name: "San Pellegrino", Price: 5},
				},
				Specials: map[string]string{
					"Osso Buco Friday": "Braised veal shank with saffron risotto, Fridays only",
					"Twilight Menu":    "Three courses for $39, weekdays 5-6 PM",
				},
			},
			Policies: models.Policies{
				Reservation:   "Reservations recommended for parties of 4 or more",
				Cancellation:  "24-hour cancellation notice preferred",
				LargeParties:  "Parties of 8+ may have gratuity added",
				DressCode:     "Smart casual",
				Children:      "Families welcome; children's menu, high chairs and booster seats available",
				Pets:          "Service animals welcome; pets are welcome on the patio",
				Accessibility: "Fully wheelchair accessible, including restrooms",
				Payment:       "All major credit cards accepted",
				Corkage:       "Corkage fee of $25 per bottle applies",
				PrivateEvents: "Private dining room available for up to 20 guests with advance notice",
			},
			Features: models.Features{
				Wifi:       "Complimentary WiFi for our guests",
				Parking:    "Valet parking available, plus street parking nearby",
				Atmosphere: "Warm, rustic dining room with candlelit tables",
				SpecialServices: []string{
					"catering", "private events", "wine pairings", "cooking classes",
				},
			},
			Staff: models.Staff{
				ExecutiveChef: "Marco Rossi",
				Manager:       "Lucia Bianchi",
			},
			Contact: models.ContactInfo{
				Phone:   "(555) 123-4567",
				Address: "123 Main Street, Downtown",
				Email:   "info@mariositalian.com",
			},
		},
		CommonQuestions: map[string]string{
			"do you take reservations": "Yes, we accept reservations. Would you like to make one now?",
			"what's your hours":        "We're open Monday through Thursday 11 AM to 10 PM, Friday 11 AM to 11 PM, Saturday 10 AM to 11 PM, and Sunday 10 AM to 10 PM.",
			"do you have parking":      "Yes, we have valet parking available and street parking nearby.",
			"are you kid friendly":     "Absolutely! We welcome families and have a children's menu available.",
			"do you have gluten free":  "Yes, we offer several gluten-free pasta and pizza options.",
			"what type of food":        "We serve authentic Italian cuisine including pasta, pizza, seafood, and traditional Italian dishes.",
			"do you deliver":           "We offer takeout and work with several delivery services. Would you like our takeout number?",
			"how much does it cost":    "Our entrees typically range from $18 to $35. Would you like to hear about our current specials?",
			"dress code":               "We have a smart casual dress code - no shorts or flip-flops for dinner service.",
			"do you have wifi":         "Yes, we provide complimentary WiFi for our guests.",
		},
		BrandVoice: models.BrandVoice{
			Tone:        "warm, professional",
			Personality: "attentive front-desk host",
		},
		BusinessRules: models.BusinessRules{
			ReservationWindowDays: 30,
			MaxPartySize:          20,
			WalkInsWelcome:        true,
		},
	}
}
