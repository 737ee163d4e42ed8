// Package trip defines the planning request and response shapes exchanged
// with the planning service, and the builder that turns wizard input into a
// request.
package trip

import (
	"fmt"

	"github.com/Iron-Ham/tripbook/internal/errors"
)

// Weather is the forecast attached to a day, when the service had one.
type Weather struct {
	TemperatureC float64 `json:"temperature_c" yaml:"temperature_c"`
	Condition    string  `json:"condition" yaml:"condition"`
}

// Activity is a single scheduled experience. TimeSlot is a display label only.
type Activity struct {
	Name          string  `json:"name" yaml:"name"`
	Description   string  `json:"description" yaml:"description"`
	Location      string  `json:"location" yaml:"location"`
	EstimatedCost float64 `json:"estimated_cost" yaml:"estimated_cost"`
	BookingLink   string  `json:"booking_link,omitempty" yaml:"booking_link,omitempty"`
	TimeSlot      string  `json:"time_slot" yaml:"time_slot"`
}

// DailyPlan is one day of the itinerary. DayNumber is 1-based and is the
// display key for the day.
type DailyPlan struct {
	DayNumber           int        `json:"day_number" yaml:"day_number"`
	Date                string     `json:"date" yaml:"date"`
	City                string     `json:"city" yaml:"city"`
	Weather             *Weather   `json:"weather,omitempty" yaml:"weather,omitempty"`
	MorningActivities   []Activity `json:"morning_activities" yaml:"morning_activities"`
	AfternoonActivities []Activity `json:"afternoon_activities" yaml:"afternoon_activities"`
	EveningActivities   []Activity `json:"evening_activities" yaml:"evening_activities"`
	MealSuggestions     []string   `json:"meal_suggestions" yaml:"meal_suggestions"`
}

// Activities returns the day's activities in morning, afternoon, evening order.
func (d DailyPlan) Activities() []Activity {
	all := make([]Activity, 0, len(d.MorningActivities)+len(d.AfternoonActivities)+len(d.EveningActivities))
	all = append(all, d.MorningActivities...)
	all = append(all, d.AfternoonActivities...)
	all = append(all, d.EveningActivities...)
	return all
}

// Accommodation is a shortlisted hotel.
type Accommodation struct {
	Name          string   `json:"name" yaml:"name"`
	Area          string   `json:"area" yaml:"area"`
	PricePerNight float64  `json:"price_per_night" yaml:"price_per_night"`
	Rating        *float64 `json:"rating,omitempty" yaml:"rating,omitempty"`
	Description   string   `json:"description" yaml:"description"`
	BookingLink   string   `json:"booking_link,omitempty" yaml:"booking_link,omitempty"`
}

// IntercityTravel is one leg between cities.
type IntercityTravel struct {
	From          string  `json:"from" yaml:"from"`
	To            string  `json:"to" yaml:"to"`
	Mode          string  `json:"mode" yaml:"mode"`
	EstimatedCost float64 `json:"estimated_cost" yaml:"estimated_cost"`
	BookingLink   string  `json:"booking_link,omitempty" yaml:"booking_link,omitempty"`
	Duration      string  `json:"duration,omitempty" yaml:"duration,omitempty"`
	Notes         string  `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Budget is the estimated cost breakdown. Absent fields decode as 0.
type Budget struct {
	Flights        float64 `json:"flights" yaml:"flights"`
	Accommodation  float64 `json:"accommodation" yaml:"accommodation"`
	Activities     float64 `json:"activities" yaml:"activities"`
	Food           float64 `json:"food" yaml:"food"`
	TransportLocal float64 `json:"transport_local" yaml:"transport_local"`
	TotalEstimated float64 `json:"total_estimated" yaml:"total_estimated"`
	Currency       string  `json:"currency" yaml:"currency"`
}

// PackingItem is one entry of the packing list.
type PackingItem struct {
	Category string `json:"category" yaml:"category"`
	Item     string `json:"item" yaml:"item"`
}

// Plan is the itinerary returned by the planning service. It is untrusted
// input; call Normalize before handing it to presentation code.
type Plan struct {
	TripID            string            `json:"trip_id,omitempty" yaml:"trip_id,omitempty"`
	Title             string            `json:"title" yaml:"title"`
	Summary           string            `json:"summary" yaml:"summary"`
	Origin            string            `json:"origin,omitempty" yaml:"origin,omitempty"`
	Destination       string            `json:"destination,omitempty" yaml:"destination,omitempty"`
	Itinerary         []DailyPlan       `json:"itinerary" yaml:"itinerary"`
	HotelsShortlist   []Accommodation   `json:"hotels_shortlist" yaml:"hotels_shortlist"`
	IntercityTravel   []IntercityTravel `json:"intercity_travel,omitempty" yaml:"intercity_travel,omitempty"`
	Budget            Budget            `json:"budget" yaml:"budget"`
	PackingList       []PackingItem     `json:"packing_list" yaml:"packing_list"`
	BookingPlatforms  map[string]string `json:"booking_platforms,omitempty" yaml:"booking_platforms,omitempty"`
	ActivityPlatforms map[string]string `json:"activity_platforms,omitempty" yaml:"activity_platforms,omitempty"`
}

// Normalize replaces every absent list or platform map with an empty one so
// that callers can range over any collection without nil checks. It
// returns p.
func (p *Plan) Normalize() *Plan {
	if p.Itinerary == nil {
		p.Itinerary = []DailyPlan{}
	}
	for i := range p.Itinerary {
		d := &p.Itinerary[i]
		if d.MorningActivities == nil {
			d.MorningActivities = []Activity{}
		}
		if d.AfternoonActivities == nil {
			d.AfternoonActivities = []Activity{}
		}
		if d.EveningActivities == nil {
			d.EveningActivities = []Activity{}
		}
		if d.MealSuggestions == nil {
			d.MealSuggestions = []string{}
		}
	}
	if p.HotelsShortlist == nil {
		p.HotelsShortlist = []Accommodation{}
	}
	if p.IntercityTravel == nil {
		p.IntercityTravel = []IntercityTravel{}
	}
	if p.PackingList == nil {
		p.PackingList = []PackingItem{}
	}
	if p.BookingPlatforms == nil {
		p.BookingPlatforms = map[string]string{}
	}
	if p.ActivityPlatforms == nil {
		p.ActivityPlatforms = map[string]string{}
	}
	return p
}

// FillEndpoints sets Origin and Destination from the request when the
// service omitted them.
func (p *Plan) FillEndpoints(spec Spec) {
	if p.Origin == "" {
		p.Origin = spec.Origin
	}
	if p.Destination == "" {
		p.Destination = spec.Destination
	}
}

// CheckDays reports day numbers that are not positive or not unique.
// The plan is still usable; the error describes a data-quality problem.
func (p *Plan) CheckDays() error {
	seen := make(map[int]bool, len(p.Itinerary))
	var errs []error
	for i, d := range p.Itinerary {
		if d.DayNumber < 1 {
			errs = append(errs, fmt.Errorf("itinerary[%d] day %d: %w", i, d.DayNumber, errors.ErrInvalidDay))
			continue
		}
		if seen[d.DayNumber] {
			errs = append(errs, fmt.Errorf("itinerary[%d] day %d: %w", i, d.DayNumber, errors.ErrDuplicateDay))
			continue
		}
		seen[d.DayNumber] = true
	}
	return errors.Join(errs...)
}

// Summary is a saved trip as listed by the planning service.
type Summary struct {
	ID          string `json:"id"`
	Destination string `json:"destination"`
	Title       string `json:"title,omitempty"`
}
