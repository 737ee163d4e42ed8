package tui

import (
	"context"

	"github.com/Iron-Ham/tripbook/internal/errors"
	"github.com/Iron-Ham/tripbook/internal/export"
	"github.com/Iron-Ham/tripbook/internal/logging"
	"github.com/Iron-Ham/tripbook/internal/planclient"
	"github.com/Iron-Ham/tripbook/internal/trip"
	"github.com/Iron-Ham/tripbook/internal/tui/results"
	"github.com/Iron-Ham/tripbook/internal/tui/wizard"
	tea "github.com/charmbracelet/bubbletea"
)

// Screen identifies the visible screen.
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenWizard
	ScreenResults
)

func (s Screen) String() string {
	switch s {
	case ScreenWizard:
		return "wizard"
	case ScreenResults:
		return "results"
	default:
		return "loading"
	}
}

// PlanStore is the slice of store.PlanStore the application needs.
type PlanStore interface {
	Save(ctx context.Context, plan *trip.Plan) error
	Require(ctx context.Context) (*trip.Plan, error)
	Clear(ctx context.Context) error
}

// Options wires the application's collaborators.
type Options struct {
	Store        PlanStore
	Client       planclient.Client
	Exporter     results.Exporter
	DefaultView  results.View
	ExportFormat export.Format
	Logger       *logging.Logger

	// StartInWizard skips the stored plan and opens the wizard.
	StartInWizard bool
}

type planLoadedMsg struct {
	plan *trip.Plan
	err  error
}

type planSavedMsg struct {
	plan *trip.Plan
	err  error
}

type sessionClearedMsg struct {
	err error
}

// Model routes between the wizard and results screens.
type Model struct {
	ctx    context.Context
	opts   Options
	logger *logging.Logger

	screen  Screen
	wizard  wizard.Model
	results results.Model

	width  int
	height int
}

// NewModel creates the root model.
func NewModel(ctx context.Context, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	opts.Logger = logger
	return Model{
		ctx:    ctx,
		opts:   opts,
		logger: logger.WithComponent("app"),
		screen: ScreenLoading,
	}
}

// Screen returns the visible screen.
func (m Model) Screen() Screen {
	return m.screen
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.opts.StartInWizard {
		return func() tea.Msg {
			return planLoadedMsg{err: errors.NewMissingPlanStateError("")}
		}
	}
	return m.loadPlan()
}

func (m Model) loadPlan() tea.Cmd {
	ctx, st := m.ctx, m.opts.Store
	return func() tea.Msg {
		plan, err := st.Require(ctx)
		return planLoadedMsg{plan: plan, err: err}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case planLoadedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, errors.ErrMissingPlan) {
				m.logger.Info("no current plan, opening wizard", "error", msg.err)
			} else {
				m.logger.Error("failed to load current plan", "error", msg.err)
			}
			return m.showWizard()
		}
		return m.showResults(msg.plan)

	case wizard.PlanReadyMsg:
		st, ctx := m.opts.Store, m.ctx
		plan := msg.Plan
		m.logger.Info("plan generated", "destination", msg.Spec.Destination, "days", len(plan.Itinerary))
		return m, func() tea.Msg {
			return planSavedMsg{plan: plan, err: st.Save(ctx, plan)}
		}

	case planSavedMsg:
		if msg.err != nil {
			m.logger.Error("failed to save plan", "error", msg.err)
		}
		return m.showResults(msg.plan)

	case results.NewSessionMsg:
		st, ctx := m.opts.Store, m.ctx
		return m, func() tea.Msg {
			return sessionClearedMsg{err: st.Clear(ctx)}
		}

	case sessionClearedMsg:
		if msg.err != nil {
			m.logger.Error("failed to clear plan", "error", msg.err)
		}
		m.logger.Info("started new session")
		return m.showWizard()
	}

	return m.forward(msg)
}

func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var next tea.Model
	switch m.screen {
	case ScreenWizard:
		next, cmd = m.wizard.Update(msg)
		m.wizard = next.(wizard.Model)
	case ScreenResults:
		next, cmd = m.results.Update(msg)
		m.results = next.(results.Model)
	default:
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, cmd
}

func (m Model) showWizard() (tea.Model, tea.Cmd) {
	m.screen = ScreenWizard
	m.wizard = wizard.New(m.ctx, m.opts.Client, m.opts.Logger)
	m.resize()
	return m, m.wizard.Init()
}

func (m Model) showResults(plan *trip.Plan) (tea.Model, tea.Cmd) {
	m.screen = ScreenResults
	m.results = results.New(plan, results.Options{
		DefaultView:  m.opts.DefaultView,
		ExportFormat: m.opts.ExportFormat,
		Exporter:     m.opts.Exporter,
		Logger:       m.opts.Logger,
	})
	m.resize()
	return m, m.results.Init()
}

// resize replays the last known window size into a freshly built screen.
func (m *Model) resize() {
	if m.width == 0 && m.height == 0 {
		return
	}
	size := tea.WindowSizeMsg{Width: m.width, Height: m.height}
	switch m.screen {
	case ScreenWizard:
		next, _ := m.wizard.Update(size)
		m.wizard = next.(wizard.Model)
	case ScreenResults:
		next, _ := m.results.Update(size)
		m.results = next.(results.Model)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.screen {
	case ScreenWizard:
		return m.wizard.View()
	case ScreenResults:
		return m.results.View()
	default:
		return ""
	}
}
