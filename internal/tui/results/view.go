// Package results implements the trip results screen: a tab controller
// over the derived plan views and the Bubble Tea model that drives it.
package results

import "strings"

// View names one tab of the results screen.
type View string

const (
	ViewItinerary View = "itinerary"
	ViewPlaces    View = "places"
	ViewFlights   View = "flights"
	ViewHotels    View = "hotels"
	ViewPacking   View = "packing"
)

// Views returns every view in tab order.
func Views() []View {
	return []View{ViewItinerary, ViewPlaces, ViewFlights, ViewHotels, ViewPacking}
}

// ValidViews returns the view names, for config validation and flag help.
func ValidViews() []string {
	views := Views()
	names := make([]string, len(views))
	for i, v := range views {
		names[i] = string(v)
	}
	return names
}

// ParseView parses a view name case-insensitively.
func ParseView(s string) (View, bool) {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	if v.Valid() {
		return v, true
	}
	return "", false
}

// Valid reports whether v is a known view.
func (v View) Valid() bool {
	switch v {
	case ViewItinerary, ViewPlaces, ViewFlights, ViewHotels, ViewPacking:
		return true
	}
	return false
}

// Label returns the tab label.
func (v View) Label() string {
	switch v {
	case ViewItinerary:
		return "Itinerary"
	case ViewPlaces:
		return "Places"
	case ViewFlights:
		return "Flights"
	case ViewHotels:
		return "Hotels"
	case ViewPacking:
		return "Packing"
	}
	return string(v)
}

func (v View) index() int {
	for i, candidate := range Views() {
		if candidate == v {
			return i
		}
	}
	return -1
}
