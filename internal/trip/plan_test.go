package trip

import (
	"encoding/json"
	"testing"

	"github.com/Iron-Ham/tripbook/internal/errors"
)

func TestPlan_NormalizeFillsEmptyCollections(t *testing.T) {
	var p Plan
	if err := json.Unmarshal([]byte(`{"title":"T","itinerary":[{"day_number":1,"city":"Lisbon"}],"budget":null}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	p.Normalize()

	if p.HotelsShortlist == nil || p.IntercityTravel == nil || p.PackingList == nil {
		t.Error("Normalize() left a nil top-level list")
	}
	if p.BookingPlatforms == nil || p.ActivityPlatforms == nil {
		t.Error("Normalize() left a nil platform map")
	}
	d := p.Itinerary[0]
	if d.MorningActivities == nil || d.AfternoonActivities == nil || d.EveningActivities == nil || d.MealSuggestions == nil {
		t.Error("Normalize() left a nil day list")
	}
	if p.Budget.TotalEstimated != 0 || p.Budget.Flights != 0 {
		t.Errorf("Budget = %+v, want zero values", p.Budget)
	}

	var empty Plan
	if empty.Normalize().Itinerary == nil {
		t.Error("Normalize() on zero plan left Itinerary nil")
	}
}

func TestPlan_FillEndpoints(t *testing.T) {
	spec := Spec{Origin: "Boston", Destination: "Lisbon"}

	p := Plan{Destination: "Porto"}
	p.FillEndpoints(spec)
	if p.Origin != "Boston" {
		t.Errorf("Origin = %q, want Boston", p.Origin)
	}
	if p.Destination != "Porto" {
		t.Errorf("Destination = %q, want explicit value Porto kept", p.Destination)
	}
}

func TestPlan_CheckDays(t *testing.T) {
	tests := []struct {
		name    string
		days    []int
		wantErr error
	}{
		{"ordered", []int{1, 2, 3}, nil},
		{"empty", nil, nil},
		{"duplicate", []int{1, 2, 2}, errors.ErrDuplicateDay},
		{"zero", []int{0, 1}, errors.ErrInvalidDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Plan
			for _, n := range tt.days {
				p.Itinerary = append(p.Itinerary, DailyPlan{DayNumber: n})
			}
			err := p.CheckDays()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("CheckDays() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CheckDays() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDailyPlan_ActivitiesOrder(t *testing.T) {
	d := DailyPlan{
		EveningActivities:   []Activity{{Name: "Fado"}},
		MorningActivities:   []Activity{{Name: "Castle"}},
		AfternoonActivities: []Activity{{Name: "Tram 28"}},
	}
	got := d.Activities()
	want := []string{"Castle", "Tram 28", "Fado"}
	if len(got) != len(want) {
		t.Fatalf("Activities() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Name != want[i] {
			t.Errorf("Activities()[%d] = %q, want %q", i, got[i].Name, want[i])
		}
	}
}
