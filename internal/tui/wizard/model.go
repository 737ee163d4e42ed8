// Package wizard implements the trip preferences form. It collects input
// into a trip.Builder, submits the built request to the planning service,
// and reports the generated plan to the parent model.
package wizard

import (
	"context"
	"strings"

	"github.com/Iron-Ham/tripbook/internal/errors"
	"github.com/Iron-Ham/tripbook/internal/logging"
	"github.com/Iron-Ham/tripbook/internal/planclient"
	"github.com/Iron-Ham/tripbook/internal/trip"
	"github.com/Iron-Ham/tripbook/internal/tui/styles"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type field int

const (
	fieldOrigin field = iota
	fieldDestination
	fieldStart
	fieldEnd
	fieldGroup
	fieldStyle
	fieldBudget
	fieldInterests
	fieldConstraints
	fieldSubmit
	fieldCount
)

// PlanReadyMsg carries a generated plan back to the parent model.
type PlanReadyMsg struct {
	Plan *trip.Plan
	Spec trip.Spec
}

type submitFailedMsg struct {
	err error
}

// Model is the Bubble Tea model for the wizard screen.
type Model struct {
	ctx     context.Context
	client  planclient.Client
	logger  *logging.Logger
	builder *trip.Builder

	inputs map[field]*textinput.Model
	focus  field

	groupIdx    int
	styleIdx    int
	budgetIdx   int
	interestIdx int

	spinner   spinner.Model
	loading   bool
	fieldErrs map[field]string
	alert     string
	width     int
	quitting  bool
}

// New creates a wizard that submits through client. ctx bounds every
// submission in addition to the client's own timeout.
func New(ctx context.Context, client planclient.Client, logger *logging.Logger) Model {
	if logger == nil {
		logger = logging.NopLogger()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Primary

	m := Model{
		ctx:       ctx,
		client:    client,
		logger:    logger.WithComponent("wizard"),
		builder:   trip.NewBuilder(),
		inputs:    make(map[field]*textinput.Model),
		spinner:   s,
		fieldErrs: make(map[field]string),
	}
	m.inputs[fieldOrigin] = newInput("Boston")
	m.inputs[fieldDestination] = newInput("Lisbon")
	m.inputs[fieldStart] = newInput(trip.DateLayout)
	m.inputs[fieldEnd] = newInput(trip.DateLayout)
	m.inputs[fieldConstraints] = newInput("vegetarian, no red-eye flights")

	m.groupIdx = indexOf(trip.GroupTypes(), m.builder.GroupType())
	m.styleIdx = indexOf(trip.TravelStyles(), trip.StylePleasure)
	m.budgetIdx = indexOf(trip.BudgetTiers(), trip.BudgetMedium)

	m.setFocus(fieldOrigin)
	return m
}

func newInput(placeholder string) *textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 120
	ti.Width = 40
	return &ti
}

func indexOf[T comparable](values []T, v T) int {
	for i, candidate := range values {
		if candidate == v {
			return i
		}
	}
	return 0
}

// Loading reports whether a submission is pending.
func (m Model) Loading() bool {
	return m.loading
}

// Alert returns the current request failure message, if any.
func (m Model) Alert() string {
	return m.alert
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case submitFailedMsg:
		m.loading = false
		m.alert = errors.UserMessage(msg.err)
		m.logger.Warn("plan request failed", "error", msg.err)
		return m, nil

	case PlanReadyMsg:
		m.loading = false
		m.alert = ""
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.loading {
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.quitting = true
		return m, tea.Quit
	case "tab", "down":
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil
	case "shift+tab", "up":
		m.setFocus((m.focus - 1 + fieldCount) % fieldCount)
		return m, nil
	case "ctrl+s":
		return m.submit()
	case "enter":
		if m.focus == fieldSubmit {
			return m.submit()
		}
		m.setFocus(m.focus + 1)
		return m, nil
	}

	switch m.focus {
	case fieldGroup:
		m.groupIdx = cycle(m.groupIdx, len(trip.GroupTypes()), msg.String())
		m.builder.SetGroupType(trip.GroupTypes()[m.groupIdx])
		return m, nil
	case fieldStyle:
		m.styleIdx = cycle(m.styleIdx, len(trip.TravelStyles()), msg.String())
		m.builder.SetTravelStyle(trip.TravelStyles()[m.styleIdx])
		return m, nil
	case fieldBudget:
		m.budgetIdx = cycle(m.budgetIdx, len(trip.BudgetTiers()), msg.String())
		m.builder.SetBudgetTier(trip.BudgetTiers()[m.budgetIdx])
		return m, nil
	case fieldInterests:
		switch msg.String() {
		case " ", "x":
			m.builder.ToggleInterest(trip.Interests[m.interestIdx])
		default:
			m.interestIdx = cycle(m.interestIdx, len(trip.Interests), msg.String())
		}
		return m, nil
	case fieldSubmit:
		return m, nil
	}

	input := m.inputs[m.focus]
	updated, cmd := input.Update(msg)
	*input = updated
	delete(m.fieldErrs, m.focus)
	return m, cmd
}

// cycle moves an option index left or right, wrapping around.
func cycle(idx, n int, key string) int {
	switch key {
	case "left", "h":
		return (idx - 1 + n) % n
	case "right", "l":
		return (idx + 1) % n
	}
	return idx
}

func (m *Model) setFocus(f field) {
	if f >= fieldCount {
		f = fieldSubmit
	}
	m.focus = f
	for key, input := range m.inputs {
		if key == f {
			input.Focus()
		} else {
			input.Blur()
		}
	}
}

func (m Model) value(f field) string {
	return strings.TrimSpace(m.inputs[f].Value())
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	m.builder.
		SetOrigin(m.value(fieldOrigin)).
		SetDestination(m.value(fieldDestination)).
		SetDates(m.value(fieldStart), m.value(fieldEnd)).
		SetConstraints(m.value(fieldConstraints))

	m.fieldErrs = make(map[field]string)
	spec, err := m.builder.Build()
	if err != nil {
		var verr *errors.ValidationError
		if errors.As(err, &verr) {
			f := fieldFor(verr.Field)
			m.fieldErrs[f] = errors.UserMessage(err)
			m.setFocus(f)
			m.logger.Debug("wizard validation failed", "field", verr.Field)
			return m, nil
		}
		m.alert = errors.UserMessage(err)
		return m, nil
	}

	m.loading = true
	m.alert = ""
	m.logger.Info("submitting plan request",
		"destination", spec.Destination,
		"travelers", spec.Travelers,
		"budget_tier", spec.BudgetTier,
	)
	return m, tea.Batch(m.spinner.Tick, submitCmd(m.ctx, m.client, spec))
}

func submitCmd(ctx context.Context, client planclient.Client, spec trip.Spec) tea.Cmd {
	return func() tea.Msg {
		plan, err := client.Submit(ctx, spec)
		if err != nil {
			return submitFailedMsg{err: err}
		}
		return PlanReadyMsg{Plan: plan, Spec: spec}
	}
}

// fieldFor maps a validation field name to the form field showing it.
func fieldFor(name string) field {
	switch name {
	case "origin":
		return fieldOrigin
	case "destination":
		return fieldDestination
	case "start_date", "dates":
		return fieldStart
	case "end_date":
		return fieldEnd
	case "travelers":
		return fieldGroup
	case "travel_style":
		return fieldStyle
	case "budget_tier":
		return fieldBudget
	}
	return fieldSubmit
}
