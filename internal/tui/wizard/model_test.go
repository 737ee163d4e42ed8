package wizard

import (
	"context"
	"strings"
	"testing"

	"github.com/Iron-Ham/tripbook/internal/errors"
	"github.com/Iron-Ham/tripbook/internal/trip"
	"github.com/Iron-Ham/tripbook/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

type fakeClient struct {
	specs []trip.Spec
	plan  *trip.Plan
	err   error
}

func (f *fakeClient) Submit(_ context.Context, spec trip.Spec) (*trip.Plan, error) {
	f.specs = append(f.specs, spec)
	if f.err != nil {
		return nil, f.err
	}
	return f.plan, nil
}

func (f *fakeClient) ListTrips(context.Context) ([]trip.Summary, error) {
	return []trip.Summary{}, nil
}

func (f *fakeClient) GetTrip(context.Context, string) (*trip.Plan, error) {
	return nil, nil
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = send(t, m, runes(string(r)))
	}
	return m
}

// fill enters origin and destination and leaves focus on the group field.
func fill(t *testing.T, m Model, origin, destination string) Model {
	t.Helper()
	m = typeText(t, m, origin)
	m, _ = send(t, m, key(tea.KeyEnter))
	m = typeText(t, m, destination)
	for m.focus != fieldGroup {
		m, _ = send(t, m, key(tea.KeyTab))
	}
	return m
}

// runCmd executes cmd, expanding batches, and returns the first message
// matching keep.
func runCmd(cmd tea.Cmd, keep func(tea.Msg) bool) tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if found := runCmd(c, keep); found != nil {
				return found
			}
		}
		return nil
	}
	if keep(msg) {
		return msg
	}
	return nil
}

func isResult(msg tea.Msg) bool {
	switch msg.(type) {
	case PlanReadyMsg, submitFailedMsg:
		return true
	}
	return false
}

func TestWizard_RequiredFieldsShownInline(t *testing.T) {
	client := &fakeClient{}
	m := New(context.Background(), client, nil)

	m, cmd := send(t, m, key(tea.KeyCtrlS))
	if cmd != nil {
		t.Error("invalid form should not start a request")
	}
	if len(client.specs) != 0 {
		t.Error("client should not be called on validation failure")
	}
	if m.fieldErrs[fieldOrigin] != "origin is required" {
		t.Errorf("origin error = %q", m.fieldErrs[fieldOrigin])
	}
	if m.focus != fieldOrigin {
		t.Errorf("focus = %d, want origin", m.focus)
	}
	if !strings.Contains(util.StripANSI(m.View()), "origin is required") {
		t.Error("View() should show the field error")
	}

	m = typeText(t, m, "B")
	if _, ok := m.fieldErrs[fieldOrigin]; ok {
		t.Error("editing the field should clear its error")
	}
}

func TestWizard_DateOrder(t *testing.T) {
	m := New(context.Background(), &fakeClient{}, nil)
	m = fill(t, m, "Boston", "Lisbon")

	m.setFocus(fieldStart)
	m = typeText(t, m, "2024-06-05")
	m.setFocus(fieldEnd)
	m = typeText(t, m, "2024-06-01")

	m, _ = send(t, m, key(tea.KeyCtrlS))
	if m.focus != fieldStart {
		t.Errorf("focus = %d, want start date", m.focus)
	}
	if !strings.Contains(m.fieldErrs[fieldStart], "on or before") {
		t.Errorf("start error = %q", m.fieldErrs[fieldStart])
	}
}

func TestWizard_Submit(t *testing.T) {
	plan := &trip.Plan{Title: "Lisbon Week"}
	client := &fakeClient{plan: plan}
	m := New(context.Background(), client, nil)
	m = fill(t, m, "Boston", "Lisbon")

	// Group: solo -> couple -> family.
	m, _ = send(t, m, key(tea.KeyRight))
	m, _ = send(t, m, key(tea.KeyRight))

	// Budget: medium -> high.
	m, _ = send(t, m, key(tea.KeyTab))
	m, _ = send(t, m, key(tea.KeyTab))
	m, _ = send(t, m, key(tea.KeyRight))

	// Interests: Food and Heritage.
	m, _ = send(t, m, key(tea.KeyTab))
	m, _ = send(t, m, key(tea.KeySpace))
	m, _ = send(t, m, key(tea.KeyRight))
	m, _ = send(t, m, key(tea.KeyRight))
	m, _ = send(t, m, key(tea.KeyRight))
	m, _ = send(t, m, key(tea.KeySpace))

	m, _ = send(t, m, key(tea.KeyTab))
	m = typeText(t, m, "vegetarian, ")
	m, _ = send(t, m, key(tea.KeyEnter))
	if m.focus != fieldSubmit {
		t.Fatalf("focus = %d, want submit", m.focus)
	}

	m, cmd := send(t, m, key(tea.KeyEnter))
	if !m.Loading() {
		t.Fatal("submission should set loading")
	}
	if !strings.Contains(util.StripANSI(m.View()), "Planning your trip") {
		t.Error("View() should show the pending indicator")
	}

	msg := runCmd(cmd, isResult)
	ready, ok := msg.(PlanReadyMsg)
	if !ok {
		t.Fatalf("command returned %T, want PlanReadyMsg", msg)
	}
	if ready.Plan != plan {
		t.Error("PlanReadyMsg should carry the client's plan")
	}

	if len(client.specs) != 1 {
		t.Fatalf("client called %d times, want 1", len(client.specs))
	}
	spec := client.specs[0]
	if spec.Travelers != 4 {
		t.Errorf("Travelers = %d, want 4 for family", spec.Travelers)
	}
	if spec.BudgetTier != trip.BudgetHigh {
		t.Errorf("BudgetTier = %q, want high", spec.BudgetTier)
	}
	if strings.Join(spec.Interests, ",") != "food,heritage" {
		t.Errorf("Interests = %v, want [food heritage]", spec.Interests)
	}
	if len(spec.Constraints) != 1 || spec.Constraints[0] != "vegetarian" {
		t.Errorf("Constraints = %v", spec.Constraints)
	}

	m, _ = send(t, m, ready)
	if m.Loading() {
		t.Error("loading should clear once the plan arrives")
	}
}

func TestWizard_IgnoresKeysWhileLoading(t *testing.T) {
	client := &fakeClient{plan: &trip.Plan{}}
	m := New(context.Background(), client, nil)
	m = fill(t, m, "Boston", "Lisbon")

	m, first := send(t, m, key(tea.KeyCtrlS))
	if first == nil {
		t.Fatal("first submit should return a command")
	}
	m, second := send(t, m, key(tea.KeyCtrlS))
	if second != nil {
		t.Error("resubmission while loading should be ignored")
	}
	before := m.focus
	m, _ = send(t, m, key(tea.KeyTab))
	if m.focus != before {
		t.Error("navigation should be ignored while loading")
	}
}

func TestWizard_RequestFailureShowsAlert(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "request failed",
			err:  errors.NewRequestFailedError("Planner is down").WithStatus(503),
			want: "Planner is down",
		},
		{
			name: "generation failed",
			err:  errors.NewGenerationFailedError("no flights found"),
			want: "no flights found",
		},
		{
			name: "unknown",
			err:  errors.New("boom"),
			want: "Failed to generate plan. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{err: tt.err}
			m := New(context.Background(), client, nil)
			m = fill(t, m, "Boston", "Lisbon")

			m, cmd := send(t, m, key(tea.KeyCtrlS))
			m, _ = send(t, m, runCmd(cmd, isResult))

			if m.Loading() {
				t.Error("loading should clear on failure")
			}
			if m.Alert() != tt.want {
				t.Errorf("Alert() = %q, want %q", m.Alert(), tt.want)
			}
			if !strings.Contains(util.StripANSI(m.View()), tt.want) {
				t.Error("View() should show the alert")
			}
		})
	}
}

func TestWizard_FocusWraps(t *testing.T) {
	m := New(context.Background(), &fakeClient{}, nil)
	m, _ = send(t, m, key(tea.KeyShiftTab))
	if m.focus != fieldSubmit {
		t.Errorf("focus = %d, want submit after wrapping back", m.focus)
	}
	m, _ = send(t, m, key(tea.KeyTab))
	if m.focus != fieldOrigin {
		t.Errorf("focus = %d, want origin after wrapping forward", m.focus)
	}
}
