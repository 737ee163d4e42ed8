package trip

import "strings"

// GroupType is the wizard's shorthand for who is travelling.
type GroupType string

const (
	GroupSolo    GroupType = "solo"
	GroupCouple  GroupType = "couple"
	GroupFriends GroupType = "friends"
	GroupFamily  GroupType = "family"
)

// GroupTypes returns the group types in wizard display order.
func GroupTypes() []GroupType {
	return []GroupType{GroupSolo, GroupCouple, GroupFamily, GroupFriends}
}

// Travelers returns the traveler count for the group type.
// Unknown group types count as one traveler.
func (g GroupType) Travelers() int {
	switch g {
	case GroupSolo:
		return 1
	case GroupCouple:
		return 2
	case GroupFriends:
		return 3
	case GroupFamily:
		return 4
	default:
		return 1
	}
}

// Label returns the display label, e.g. "Family".
func (g GroupType) Label() string {
	return titleCase(string(g))
}

// BudgetTier is the spending level requested from the planner.
type BudgetTier string

const (
	BudgetLow    BudgetTier = "low"
	BudgetMedium BudgetTier = "medium"
	BudgetHigh   BudgetTier = "high"
)

// BudgetTiers returns all budget tiers, cheapest first.
func BudgetTiers() []BudgetTier {
	return []BudgetTier{BudgetLow, BudgetMedium, BudgetHigh}
}

// TravelStyle is the purpose of the trip.
type TravelStyle string

const (
	StylePleasure TravelStyle = "pleasure"
	StyleWork     TravelStyle = "work"
	StyleBusiness TravelStyle = "business"
)

// TravelStyles returns all travel styles.
func TravelStyles() []TravelStyle {
	return []TravelStyle{StylePleasure, StyleWork, StyleBusiness}
}

// Interests offered by the wizard. Selections are sent lower-cased.
var Interests = []string{"Food", "Shopping", "Explore", "Heritage", "Relax"}

// Spec is the planning request body.
type Spec struct {
	Origin      string      `json:"origin" validate:"required"`
	Destination string      `json:"destination" validate:"required"`
	Dates       string      `json:"dates"`
	Travelers   int         `json:"travelers" validate:"gt=0"`
	BudgetTier  BudgetTier  `json:"budget_tier" validate:"oneof=low medium high"`
	TravelStyle TravelStyle `json:"travel_style" validate:"oneof=pleasure work business"`
	Interests   []string    `json:"interests"`
	Constraints []string    `json:"constraints"`
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
