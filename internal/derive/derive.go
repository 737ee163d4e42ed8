// Package derive computes display-ready views from a trip.Plan.
//
// Every function here is pure and total: it accepts any structurally valid
// plan, including one with an empty itinerary, no hotels and no packing
// list, and returns empty or zeroed results rather than failing. All
// default-filling for presentation lives in this package so renderers never
// need their own fallbacks.
package derive

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/Iron-Ham/tripbook/internal/trip"
)

// Placeholders used when a plan carries no usable city names.
const (
	FallbackOrigin      = "Your City"
	FallbackDestination = "Destination"
	FallbackHeadingCity = "Paradise"
	DefaultCategory     = "General"
	DefaultCurrency     = "USD"
	NoWeather           = "Weather unavailable"
)

// Places flattens every activity of every day (morning, afternoon, evening)
// and keeps only the first activity with each name.
func Places(p *trip.Plan) []trip.Activity {
	places := []trip.Activity{}
	if p == nil {
		return places
	}
	seen := make(map[string]bool)
	for _, day := range p.Itinerary {
		for _, a := range day.Activities() {
			if seen[a.Name] {
				continue
			}
			seen[a.Name] = true
			places = append(places, a)
		}
	}
	return places
}

// PackingCategory is one category of the packing list with its items in
// first-seen order. Repeated item names are kept.
type PackingCategory struct {
	Name  string
	Items []string
}

// PackingGroups is the packing list grouped by category, in first-seen
// category order.
type PackingGroups []PackingCategory

// Total returns the number of items across all categories.
func (g PackingGroups) Total() int {
	n := 0
	for _, c := range g {
		n += len(c.Items)
	}
	return n
}

// Items returns the items for a category, or nil if it is not present.
func (g PackingGroups) Items(category string) []string {
	for _, c := range g {
		if c.Name == category {
			return c.Items
		}
	}
	return nil
}

// Packing groups the packing list by category. Entries without a category
// go under "General".
func Packing(p *trip.Plan) PackingGroups {
	groups := PackingGroups{}
	if p == nil {
		return groups
	}
	index := make(map[string]int)
	for _, entry := range p.PackingList {
		cat := strings.TrimSpace(entry.Category)
		if cat == "" {
			cat = DefaultCategory
		}
		i, ok := index[cat]
		if !ok {
			i = len(groups)
			index[cat] = i
			groups = append(groups, PackingCategory{Name: cat, Items: []string{}})
		}
		groups[i].Items = append(groups[i].Items, entry.Item)
	}
	return groups
}

// BudgetLine is one bar of the budget breakdown.
type BudgetLine struct {
	Label   string
	Amount  float64
	Percent float64
}

// BudgetBreakdown is the budget summary and per-category bars.
type BudgetBreakdown struct {
	Currency      string
	Total         float64
	Flights       float64
	Accommodation float64
	// FoodAndFun is food plus activities, shown as a single tile.
	FoodAndFun float64
	Lines      []BudgetLine
}

// Budget computes the breakdown with percentages relative to denominator.
// A non-positive denominator yields 0% bars; percentages are clamped to
// [0, 100].
func Budget(p *trip.Plan, denominator float64) BudgetBreakdown {
	var b trip.Budget
	if p != nil {
		b = p.Budget
	}
	currency := strings.TrimSpace(b.Currency)
	if currency == "" {
		currency = DefaultCurrency
	}

	lines := []BudgetLine{
		{Label: "Flights", Amount: nonNegative(b.Flights)},
		{Label: "Accommodation", Amount: nonNegative(b.Accommodation)},
		{Label: "Activities", Amount: nonNegative(b.Activities)},
		{Label: "Food", Amount: nonNegative(b.Food)},
		{Label: "Local transport", Amount: nonNegative(b.TransportLocal)},
	}
	for i := range lines {
		lines[i].Percent = Percent(lines[i].Amount, denominator)
	}

	return BudgetBreakdown{
		Currency:      currency,
		Total:         nonNegative(b.TotalEstimated),
		Flights:       nonNegative(b.Flights),
		Accommodation: nonNegative(b.Accommodation),
		FoodAndFun:    nonNegative(b.Food) + nonNegative(b.Activities),
		Lines:         lines,
	}
}

// Denominator returns the budget bar denominator: the estimated total, or
// the sum of the category amounts when no total was given.
func Denominator(p *trip.Plan) float64 {
	if p == nil {
		return 0
	}
	b := p.Budget
	if b.TotalEstimated > 0 {
		return b.TotalEstimated
	}
	return nonNegative(b.Flights) + nonNegative(b.Accommodation) + nonNegative(b.Activities) +
		nonNegative(b.Food) + nonNegative(b.TransportLocal)
}

// Percent returns amount as a percentage of denominator, clamped to [0, 100].
func Percent(amount, denominator float64) float64 {
	if denominator <= 0 || amount <= 0 {
		return 0
	}
	pct := amount / denominator * 100
	if pct > 100 {
		return 100
	}
	return pct
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// Endpoints returns the trip's origin and destination. Explicit values win;
// otherwise the first and last day's cities are used; otherwise the
// placeholders.
func Endpoints(p *trip.Plan) (origin, destination string) {
	origin, destination = FallbackOrigin, FallbackDestination
	if p == nil {
		return origin, destination
	}
	if n := len(p.Itinerary); n > 0 {
		if c := strings.TrimSpace(p.Itinerary[0].City); c != "" {
			origin = c
		}
		if c := strings.TrimSpace(p.Itinerary[n-1].City); c != "" {
			destination = c
		}
	}
	if o := strings.TrimSpace(p.Origin); o != "" {
		origin = o
	}
	if d := strings.TrimSpace(p.Destination); d != "" {
		destination = d
	}
	return origin, destination
}

// Heading returns the results screen title line.
func Heading(p *trip.Plan) string {
	city := FallbackHeadingCity
	if p != nil && len(p.Itinerary) > 0 {
		if c := strings.TrimSpace(p.Itinerary[0].City); c != "" {
			city = c
		}
	}
	return "Your Journey to " + city
}

// DayCard is one day of the itinerary view.
type DayCard struct {
	DayNumber int
	Date      string
	City      string
	Weather   string
	Morning   []trip.Activity
	Afternoon []trip.Activity
	Evening   []trip.Activity
	// Activities is Morning, Afternoon and Evening concatenated.
	Activities []trip.Activity
	Meals      []string
	Cost       float64
}

// Days returns one card per itinerary day in itinerary order.
func Days(p *trip.Plan) []DayCard {
	cards := []DayCard{}
	if p == nil {
		return cards
	}
	for _, d := range p.Itinerary {
		card := DayCard{
			DayNumber:  d.DayNumber,
			Date:       d.Date,
			City:       d.City,
			Weather:    NoWeather,
			Morning:    orEmpty(d.MorningActivities),
			Afternoon:  orEmpty(d.AfternoonActivities),
			Evening:    orEmpty(d.EveningActivities),
			Activities: d.Activities(),
			Meals:      slices.Clone(d.MealSuggestions),
		}
		if card.Meals == nil {
			card.Meals = []string{}
		}
		if d.Weather != nil {
			card.Weather = fmt.Sprintf("%.0f°C, %s", d.Weather.TemperatureC, d.Weather.Condition)
		}
		for _, a := range card.Activities {
			card.Cost += nonNegative(a.EstimatedCost)
		}
		cards = append(cards, card)
	}
	return cards
}

func orEmpty(as []trip.Activity) []trip.Activity {
	if as == nil {
		return []trip.Activity{}
	}
	return as
}

// ActivityCost sums the estimated cost of every scheduled activity.
func ActivityCost(p *trip.Plan) float64 {
	total := 0.0
	for _, d := range Days(p) {
		total += d.Cost
	}
	return total
}

// Leg is one row of the flights view.
type Leg struct {
	From        string
	To          string
	Mode        string
	Cost        float64
	Duration    string
	Notes       string
	BookingLink string
}

// Platform is a named booking site.
type Platform struct {
	Name string
	URL  string
}

// FlightsView is the flights tab content.
type FlightsView struct {
	Origin      string
	Destination string
	Budget      float64
	Currency    string
	Legs        []Leg
	Platforms   []Platform
}

// Flights builds the flights tab. Legs missing an endpoint take the trip's
// origin or destination; a missing mode reads "flight".
func Flights(p *trip.Plan) FlightsView {
	origin, destination := Endpoints(p)
	budget := Budget(p, 0)
	view := FlightsView{
		Origin:      origin,
		Destination: destination,
		Budget:      budget.Flights,
		Currency:    budget.Currency,
		Legs:        []Leg{},
		Platforms:   []Platform{},
	}
	if p == nil {
		return view
	}
	for _, t := range p.IntercityTravel {
		leg := Leg{
			From:        strings.TrimSpace(t.From),
			To:          strings.TrimSpace(t.To),
			Mode:        strings.TrimSpace(t.Mode),
			Cost:        nonNegative(t.EstimatedCost),
			Duration:    t.Duration,
			Notes:       t.Notes,
			BookingLink: t.BookingLink,
		}
		if leg.From == "" {
			leg.From = origin
		}
		if leg.To == "" {
			leg.To = destination
		}
		if leg.Mode == "" {
			leg.Mode = "flight"
		}
		view.Legs = append(view.Legs, leg)
	}
	view.Platforms = platforms(p.BookingPlatforms)
	return view
}

// HotelCard is one row of the hotels tab.
type HotelCard struct {
	Name          string
	Area          string
	PricePerNight float64
	Rating        string
	Description   string
	BookingLink   string
}

// Hotels returns the hotel shortlist. A hotel without its own booking link
// uses the first booking platform by name, if any.
func Hotels(p *trip.Plan) []HotelCard {
	cards := []HotelCard{}
	if p == nil {
		return cards
	}
	var fallback string
	if ps := platforms(p.BookingPlatforms); len(ps) > 0 {
		fallback = ps[0].URL
	}
	for _, h := range p.HotelsShortlist {
		card := HotelCard{
			Name:          h.Name,
			Area:          h.Area,
			PricePerNight: nonNegative(h.PricePerNight),
			Rating:        "n/a",
			Description:   h.Description,
			BookingLink:   h.BookingLink,
		}
		if h.Rating != nil {
			card.Rating = fmt.Sprintf("%.1f", *h.Rating)
		}
		if card.BookingLink == "" {
			card.BookingLink = fallback
		}
		cards = append(cards, card)
	}
	return cards
}

// ActivityPlatforms returns the activity booking sites sorted by name.
func ActivityPlatforms(p *trip.Plan) []Platform {
	if p == nil {
		return []Platform{}
	}
	return platforms(p.ActivityPlatforms)
}

func platforms(m map[string]string) []Platform {
	out := make([]Platform, 0, len(m))
	for name, url := range m {
		out = append(out, Platform{Name: name, URL: url})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
