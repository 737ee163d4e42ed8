package trip

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Iron-Ham/tripbook/internal/errors"
	"github.com/go-playground/validator/v10"
)

// DateLayout is the format of wizard start and end dates.
const DateLayout = "2006-01-02"

// Builder accumulates wizard input and produces a validated Spec.
// The zero value is not ready; use NewBuilder.
type Builder struct {
	origin        string
	destination   string
	startDate     string
	endDate       string
	freeformDates string
	groupType     GroupType
	budgetTier    BudgetTier
	travelStyle   TravelStyle
	interests     []string
	constraints   []string

	validate *validator.Validate
}

// NewBuilder returns a Builder with the wizard defaults: solo, medium
// budget, pleasure trip.
func NewBuilder() *Builder {
	return &Builder{
		groupType:   GroupSolo,
		budgetTier:  BudgetMedium,
		travelStyle: StylePleasure,
		interests:   []string{},
		constraints: []string{},
		validate:    validator.New(),
	}
}

// SetOrigin sets the departure city.
func (b *Builder) SetOrigin(origin string) *Builder {
	b.origin = strings.TrimSpace(origin)
	return b
}

// SetDestination sets the destination city.
func (b *Builder) SetDestination(destination string) *Builder {
	b.destination = strings.TrimSpace(destination)
	return b
}

// SetDates sets the start and end dates (YYYY-MM-DD).
func (b *Builder) SetDates(start, end string) *Builder {
	b.startDate = strings.TrimSpace(start)
	b.endDate = strings.TrimSpace(end)
	return b
}

// SetFreeformDates sets dates used when start and end are not both given.
func (b *Builder) SetFreeformDates(dates string) *Builder {
	b.freeformDates = strings.TrimSpace(dates)
	return b
}

// SetGroupType records the group selection. The last call wins.
func (b *Builder) SetGroupType(g GroupType) *Builder {
	b.groupType = g
	return b
}

// GroupType returns the current group selection.
func (b *Builder) GroupType() GroupType {
	return b.groupType
}

// SetBudgetTier sets the budget tier.
func (b *Builder) SetBudgetTier(tier BudgetTier) *Builder {
	b.budgetTier = tier
	return b
}

// SetTravelStyle sets the travel style.
func (b *Builder) SetTravelStyle(style TravelStyle) *Builder {
	b.travelStyle = style
	return b
}

// ToggleInterest selects the interest, or deselects it if already
// selected. Interests are compared lower-cased.
func (b *Builder) ToggleInterest(interest string) *Builder {
	interest = strings.ToLower(strings.TrimSpace(interest))
	if interest == "" {
		return b
	}
	if i := slices.Index(b.interests, interest); i >= 0 {
		b.interests = slices.Delete(b.interests, i, i+1)
		return b
	}
	b.interests = append(b.interests, interest)
	return b
}

// HasInterest reports whether the interest is currently selected.
func (b *Builder) HasInterest(interest string) bool {
	return slices.Contains(b.interests, strings.ToLower(strings.TrimSpace(interest)))
}

// Interests returns a copy of the selected interests in selection order.
func (b *Builder) Interests() []string {
	return slices.Clone(b.interests)
}

// AddConstraint appends a free-text constraint; blanks are ignored.
func (b *Builder) AddConstraint(constraint string) *Builder {
	if c := strings.TrimSpace(constraint); c != "" {
		b.constraints = append(b.constraints, c)
	}
	return b
}

// SetConstraints replaces the constraints with a comma-separated list.
func (b *Builder) SetConstraints(list string) *Builder {
	b.constraints = []string{}
	for _, c := range strings.Split(list, ",") {
		b.AddConstraint(c)
	}
	return b
}

// Build validates the input and returns the request. Validation failures
// are *errors.ValidationError naming the offending field.
func (b *Builder) Build() (Spec, error) {
	spec := Spec{
		Origin:      b.origin,
		Destination: b.destination,
		Dates:       b.freeformDates,
		Travelers:   b.groupType.Travelers(),
		BudgetTier:  b.budgetTier,
		TravelStyle: b.travelStyle,
		Interests:   slices.Clone(b.interests),
		Constraints: slices.Clone(b.constraints),
	}

	if err := b.validate.Struct(spec); err != nil {
		return Spec{}, fieldError(err)
	}

	if b.startDate != "" || b.endDate != "" {
		dates, err := b.dateRange()
		if err != nil {
			return Spec{}, err
		}
		spec.Dates = dates
	}

	return spec, nil
}

// dateRange checks start and end and joins them as "<start> to <end>".
// A single date falls back to the free-form value.
func (b *Builder) dateRange() (string, error) {
	var start, end time.Time
	var err error
	if b.startDate != "" {
		start, err = time.Parse(DateLayout, b.startDate)
		if err != nil {
			return "", errors.NewValidationError("start date must be YYYY-MM-DD").
				WithField("start_date").WithValue(b.startDate)
		}
	}
	if b.endDate != "" {
		end, err = time.Parse(DateLayout, b.endDate)
		if err != nil {
			return "", errors.NewValidationError("end date must be YYYY-MM-DD").
				WithField("end_date").WithValue(b.endDate)
		}
	}
	if b.startDate == "" || b.endDate == "" {
		return b.freeformDates, nil
	}
	if start.After(end) {
		return "", errors.NewValidationError("start date must be on or before end date").
			WithField("dates").WithValue(fmt.Sprintf("%s to %s", b.startDate, b.endDate))
	}
	return fmt.Sprintf("%s to %s", b.startDate, b.endDate), nil
}

// fieldError converts the first validator failure into a ValidationError.
func fieldError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errors.NewValidationError("invalid trip request").WithCause(err)
	}

	fe := verrs[0]
	field := jsonName(fe.Field())
	var msg string
	switch fe.Tag() {
	case "required":
		msg = fmt.Sprintf("%s is required", field)
	case "oneof":
		msg = fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		msg = fmt.Sprintf("%s is invalid", field)
	}
	return errors.NewValidationError(msg).WithField(field).WithValue(fe.Value())
}

// jsonName maps struct field names to their wire names.
func jsonName(field string) string {
	switch field {
	case "BudgetTier":
		return "budget_tier"
	case "TravelStyle":
		return "travel_style"
	default:
		return strings.ToLower(field)
	}
}
