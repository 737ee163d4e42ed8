// Package internal contains integration tests that verify the planner
// client, plan store, results views and exporter work together.
package internal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Iron-Ham/tripbook/internal/derive"
	"github.com/Iron-Ham/tripbook/internal/export"
	"github.com/Iron-Ham/tripbook/internal/planclient"
	"github.com/Iron-Ham/tripbook/internal/store"
	"github.com/Iron-Ham/tripbook/internal/trip"
	"github.com/Iron-Ham/tripbook/internal/tui/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const portoResponse = `{
	"status": "completed",
	"run_id": "run-42",
	"plan": {
		"title": "Porto Weekend",
		"destination": "Porto",
		"itinerary": [
			{"day_number": 1, "date": "2024-09-06", "city": "Porto",
			 "morning_activities": [{"name": "Livraria Lello", "estimated_cost": 8}],
			 "afternoon_activities": [{"name": "Ribeira Walk", "estimated_cost": 0}],
			 "evening_activities": [{"name": "Livraria Lello", "estimated_cost": 0}],
			 "meal_suggestions": ["Francesinha"]},
			{"day_number": 2, "date": "2024-09-07", "city": "Porto",
			 "morning_activities": [{"name": "Port Cellars", "estimated_cost": 20}]}
		],
		"hotels_shortlist": [{"name": "Rio Douro Inn", "area": "Ribeira", "price_per_night": 95}],
		"budget": {"flights": 300, "accommodation": 190, "food": 120, "activities": 28, "currency": "EUR"},
		"packing_list": [
			{"category": "Documents", "item": "Passport"},
			{"category": "Clothing", "item": "Rain jacket"}
		]
	}
}`

func newPlannerServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/plan" {
			http.NotFound(w, r)
			return
		}
		var spec map[string]any
		if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
			http.Error(w, `{"detail":"bad body"}`, http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(portoResponse))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// TestPlanLifecycle submits a spec, persists the plan, reloads it from a
// fresh store and exports it.
func TestPlanLifecycle(t *testing.T) {
	ctx := context.Background()
	srv := newPlannerServer(t)

	client, err := planclient.New(planclient.WithBaseURL(srv.URL))
	require.NoError(t, err)

	spec, err := trip.NewBuilder().
		SetOrigin("Madrid").
		SetDestination("Porto").
		SetDates("2024-09-06", "2024-09-07").
		SetGroupType(trip.GroupCouple).
		Build()
	require.NoError(t, err)

	plan, err := client.Submit(ctx, spec)
	require.NoError(t, err)
	assert.Equal(t, "Madrid", plan.Origin)

	dataDir := t.TempDir()
	backend, err := store.NewFileBackend(dataDir)
	require.NoError(t, err)
	require.NoError(t, store.NewPlanStore(backend).Save(ctx, plan))

	// A second store over the same directory sees the saved plan.
	reopened, err := store.NewFileBackend(dataDir)
	require.NoError(t, err)
	loaded, err := store.NewPlanStore(reopened).Require(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Porto Weekend", loaded.Title)
	assert.Len(t, loaded.Itinerary, 2)

	t.Run("derived views", func(t *testing.T) {
		var names []string
		for _, a := range derive.Places(loaded) {
			names = append(names, a.Name)
		}
		assert.Equal(t, []string{"Livraria Lello", "Ribeira Walk", "Port Cellars"}, names)
		assert.Equal(t, 638.0, derive.Denominator(loaded))

		out := results.NewPresenter(loaded, results.ViewPlaces).Render(100)
		assert.Contains(t, out, "3 places to visit")
	})

	t.Run("structured export", func(t *testing.T) {
		exporter := export.NewExporter(t.TempDir(), nil)
		path, err := exporter.Structured(loaded, export.FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, "trip-plan.json", filepath.Base(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var decoded trip.Plan
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, loaded.Title, decoded.Title)
		assert.Equal(t, loaded.Budget, decoded.Budget)
	})

	t.Run("visual export", func(t *testing.T) {
		exporter := export.NewExporter(t.TempDir(), nil)
		path, err := exporter.Visual(results.NewPresenter(loaded, results.ViewItinerary).Render(100))
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "%PDF", string(data[:4]))
	})
}
