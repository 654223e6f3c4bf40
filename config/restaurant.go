package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"frontdesk/models"
)

// rawRestaurantConfig mirrors the on-disk restaurant configuration layout.
type rawRestaurantConfig struct {
	Restaurant struct {
		BasicInfo struct {
			Name          string `mapstructure:"name"`
			Description   string `mapstructure:"description"`
			Cuisine       string `mapstructure:"cuisine"`
			PriceRange    string `mapstructure:"price_range"`
			Capacity      int    `mapstructure:"capacity"`
			AvgDiningTime int    `mapstructure:"avg_dining_time_minutes"`
		} `mapstructure:"basic_info"`
		Hours    models.WeeklyHours `mapstructure:"hours"`
		Menu     models.Menu        `mapstructure:"menu"`
		Policies models.Policies    `mapstructure:"policies"`
		Features models.Features    `mapstructure:"features"`
		Staff    models.Staff       `mapstructure:"staff"`
		Contact  models.ContactInfo `mapstructure:"contact"`
	} `mapstructure:"restaurant"`
	ConversationSettings struct {
		BrandVoice models.BrandVoice `mapstructure:"brand_voice"`
	} `mapstructure:"conversation_settings"`
	BusinessRules models.BusinessRules `mapstructure:"business_rules"`
}

// RestaurantConfigLoader reads restaurant-specific knowledge from a YAML file
// and transforms it into the shape the conversation engine consumes.
type RestaurantConfigLoader struct {
	path   string
	raw    *rawRestaurantConfig
	loaded bool
}

// NewRestaurantConfigLoader builds a loader for the given file path.
func NewRestaurantConfigLoader(path string) *RestaurantConfigLoader {
	return &RestaurantConfigLoader{path: path}
}

// IsConfigLoaded reports whether a configuration has been read successfully.
func (l *RestaurantConfigLoader) IsConfigLoaded() bool {
	return l.loaded
}

// LoadConfig reads and parses the restaurant configuration file.
func (l *RestaurantConfigLoader) LoadConfig(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(l.path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read restaurant config %s: %w", l.path, err)
	}

	var raw rawRestaurantConfig
	if err := v.Unmarshal(&raw); err != nil {
		return fmt.Errorf("parse restaurant config %s: %w", l.path, err)
	}
	if raw.Restaurant.BasicInfo.Name == "" {
		return fmt.Errorf("restaurant config %s: missing restaurant.basic_info.name", l.path)
	}

	l.raw = &raw
	l.loaded = true
	return nil
}

// TransformForConversationEngine converts the loaded configuration into the
// engine's knowledge-base shape, including generated common questions.
func (l *RestaurantConfigLoader) TransformForConversationEngine() (models.KnowledgeBase, error) {
	if !l.loaded || l.raw == nil {
		return models.KnowledgeBase{}, fmt.Errorf("restaurant configuration not loaded")
	}

	r := l.raw.Restaurant
	kb := models.KnowledgeBase{
		Restaurant: models.RestaurantInfo{
			Name:          r.BasicInfo.Name,
			Description:   r.BasicInfo.Description,
			Cuisine:       r.BasicInfo.Cuisine,
			PriceRange:    r.BasicInfo.PriceRange,
			Capacity:      r.BasicInfo.Capacity,
			AvgDiningTime: r.BasicInfo.AvgDiningTime,
			Hours:         r.Hours,
			Menu:          r.Menu,
			Policies:      r.Policies,
			Features:      r.Features,
			Staff:         r.Staff,
			Contact:       r.Contact,
		},
		BrandVoice:    l.raw.ConversationSettings.BrandVoice,
		BusinessRules: l.raw.BusinessRules,
	}
	kb.CommonQuestions = l.generateCommonQuestions(kb.Restaurant)
	return kb, nil
}

// generateCommonQuestions derives the canned Q&A map from the configuration
// so every restaurant gets sensible answers without hand-writing them.
func (l *RestaurantConfigLoader) generateCommonQuestions(r models.RestaurantInfo) map[string]string {
	questions := map[string]string{}

	hoursAnswer := groupedHoursAnswer(r.Hours)
	questions["what are your hours"] = hoursAnswer
	questions["when are you open"] = hoursAnswer

	if r.Cuisine != "" {
		questions["what type of food"] = strings.TrimSpace(fmt.Sprintf("We serve %s cuisine. %s", r.Cuisine, r.Description))
	}
	if r.Policies.Reservation != "" {
		questions["do you take reservations"] = r.Policies.Reservation + "."
	}
	if r.Features.Parking != "" {
		questions["do you have parking"] = r.Features.Parking + "."
	}
	if r.Features.Wifi != "" {
		questions["do you have wifi"] = r.Features.Wifi + "."
	}
	if r.Policies.Children != "" {
		questions["are you kid friendly"] = r.Policies.Children + "."
	}

	return questions
}

// groupedHoursAnswer collapses consecutive days that share identical hours,
// e.g. "Monday-Thursday 11:00 AM - 10:00 PM, Friday 11:00 AM - 11:00 PM".
func groupedHoursAnswer(hours models.WeeklyHours) string {
	days, perDay := hours.Ordered()

	var groups []string
	for i := 0; i < len(days); {
		j := i
		for j+1 < len(days) && perDay[j+1] == perDay[i] {
			j++
		}
		switch {
		case i == 0 && j == len(days)-1:
			groups = append(groups, "Daily "+perDay[i])
		case i == j:
			groups = append(groups, days[i]+" "+perDay[i])
		default:
			groups = append(groups, days[i]+"-"+days[j]+" "+perDay[i])
		}
		i = j + 1
	}
	return "Our hours are: " + strings.Join(groups, ", ") + "."
}
