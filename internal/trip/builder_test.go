package trip

import (
	"reflect"
	"testing"

	"github.com/Iron-Ham/tripbook/internal/errors"
)

func TestGroupType_Travelers(t *testing.T) {
	tests := []struct {
		group GroupType
		want  int
	}{
		{GroupSolo, 1},
		{GroupCouple, 2},
		{GroupFriends, 3},
		{GroupFamily, 4},
		{GroupType("coworkers"), 1},
		{GroupType(""), 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.group), func(t *testing.T) {
			if got := tt.group.Travelers(); got != tt.want {
				t.Errorf("Travelers() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBuilder_Build(t *testing.T) {
	spec, err := NewBuilder().
		SetOrigin(" Boston ").
		SetDestination("Lisbon").
		SetDates("2024-06-01", "2024-06-05").
		SetGroupType(GroupCouple).
		SetGroupType(GroupFamily).
		SetBudgetTier(BudgetHigh).
		SetTravelStyle(StyleBusiness).
		ToggleInterest("Food").
		ToggleInterest("Heritage").
		SetConstraints("wheelchair access, , no red-eyes").
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := Spec{
		Origin:      "Boston",
		Destination: "Lisbon",
		Dates:       "2024-06-01 to 2024-06-05",
		Travelers:   4,
		BudgetTier:  BudgetHigh,
		TravelStyle: StyleBusiness,
		Interests:   []string{"food", "heritage"},
		Constraints: []string{"wheelchair access", "no red-eyes"},
	}
	if !reflect.DeepEqual(spec, want) {
		t.Errorf("Build() = %+v, want %+v", spec, want)
	}
}

func TestBuilder_Defaults(t *testing.T) {
	spec, err := NewBuilder().SetOrigin("Oslo").SetDestination("Rome").SetFreeformDates("sometime in May").Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if spec.Travelers != 1 {
		t.Errorf("Travelers = %d, want 1", spec.Travelers)
	}
	if spec.BudgetTier != BudgetMedium {
		t.Errorf("BudgetTier = %q, want %q", spec.BudgetTier, BudgetMedium)
	}
	if spec.TravelStyle != StylePleasure {
		t.Errorf("TravelStyle = %q, want %q", spec.TravelStyle, StylePleasure)
	}
	if spec.Dates != "sometime in May" {
		t.Errorf("Dates = %q, want free-form value", spec.Dates)
	}
	if spec.Interests == nil || len(spec.Interests) != 0 {
		t.Errorf("Interests = %#v, want empty non-nil slice", spec.Interests)
	}
}

func TestBuilder_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		build     func() *Builder
		wantField string
	}{
		{
			name:      "missing origin",
			build:     func() *Builder { return NewBuilder().SetDestination("Lisbon") },
			wantField: "origin",
		},
		{
			name:      "blank destination",
			build:     func() *Builder { return NewBuilder().SetOrigin("Boston").SetDestination("   ") },
			wantField: "destination",
		},
		{
			name: "start after end",
			build: func() *Builder {
				return NewBuilder().SetOrigin("Boston").SetDestination("Lisbon").SetDates("2024-06-05", "2024-06-01")
			},
			wantField: "dates",
		},
		{
			name: "malformed start",
			build: func() *Builder {
				return NewBuilder().SetOrigin("Boston").SetDestination("Lisbon").SetDates("06/01/2024", "2024-06-05")
			},
			wantField: "start_date",
		},
		{
			name: "unknown budget tier",
			build: func() *Builder {
				return NewBuilder().SetOrigin("Boston").SetDestination("Lisbon").SetBudgetTier("luxury")
			},
			wantField: "budget_tier",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build().Build()
			if err == nil {
				t.Fatal("Build() error = nil, want validation error")
			}
			if !errors.Is(err, errors.ErrInvalidInput) {
				t.Errorf("errors.Is(err, ErrInvalidInput) = false for %v", err)
			}
			var ve *errors.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error %T is not *ValidationError", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", ve.Field, tt.wantField)
			}
		})
	}
}

func TestBuilder_SameDayTrip(t *testing.T) {
	spec, err := NewBuilder().SetOrigin("A").SetDestination("B").SetDates("2024-06-01", "2024-06-01").Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if spec.Dates != "2024-06-01 to 2024-06-01" {
		t.Errorf("Dates = %q", spec.Dates)
	}
}

func TestBuilder_ToggleInterest(t *testing.T) {
	b := NewBuilder()
	b.ToggleInterest("Food").ToggleInterest("Relax").ToggleInterest("Shopping")
	b.ToggleInterest("food")
	b.ToggleInterest("Food")

	want := []string{"relax", "shopping", "food"}
	if got := b.Interests(); !reflect.DeepEqual(got, want) {
		t.Errorf("Interests() = %v, want %v", got, want)
	}
	if !b.HasInterest("RELAX") {
		t.Error("HasInterest(RELAX) = false, want true")
	}

	b.ToggleInterest("Relax").ToggleInterest("Shopping").ToggleInterest("Food")
	if got := b.Interests(); len(got) != 0 {
		t.Errorf("Interests() = %v, want empty after toggling everything off", got)
	}
}
