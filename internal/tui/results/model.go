package results

import (
	"strings"

	"github.com/Iron-Ham/tripbook/internal/errors"
	"github.com/Iron-Ham/tripbook/internal/export"
	"github.com/Iron-Ham/tripbook/internal/logging"
	"github.com/Iron-Ham/tripbook/internal/trip"
	"github.com/Iron-Ham/tripbook/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea"
)

// Exporter writes export files for the results screen.
type Exporter interface {
	Structured(plan *trip.Plan, format export.Format) (string, error)
	Visual(rendered string) (string, error)
}

// Options configures a results Model.
type Options struct {
	DefaultView  View
	ExportFormat export.Format
	Exporter     Exporter
	Logger       *logging.Logger
}

// NewSessionMsg asks the application to discard the plan and start over.
type NewSessionMsg struct{}

type exportDoneMsg struct {
	path string
	err  error
}

// Model is the Bubble Tea model for the results screen.
type Model struct {
	presenter *Presenter
	exporter  Exporter
	format    export.Format
	logger    *logging.Logger

	width     int
	height    int
	scroll    int
	status    string
	statusErr bool
	exporting bool
	quitting  bool
}

// New creates a results model for plan.
func New(plan *trip.Plan, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	format := opts.ExportFormat
	if format == "" {
		format = export.FormatJSON
	}
	return Model{
		presenter: NewPresenter(plan, opts.DefaultView),
		exporter:  opts.Exporter,
		format:    format,
		logger:    logger.WithComponent("results"),
	}
}

// Presenter exposes the tab controller.
func (m Model) Presenter() *Presenter {
	return m.presenter
}

// Status returns the current status line text.
func (m Model) Status() string {
	return m.status
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()
		return m, nil

	case exportDoneMsg:
		m.exporting = false
		if msg.err != nil {
			m.logger.Error("export failed", "error", msg.err)
			m.status = "Export failed: " + msg.err.Error()
			m.statusErr = true
			return m, nil
		}
		m.logger.Info("exported plan", "path", msg.path)
		m.status = "Saved " + msg.path
		m.statusErr = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "tab", "right", "l":
		m.switched(m.presenter.Next())
	case "shift+tab", "left", "h":
		m.switched(m.presenter.Prev())
	case "1", "2", "3", "4", "5":
		views := Views()
		if m.presenter.Select(views[int(key[0]-'1')]) {
			m.switched(m.presenter.Current())
		}
	case "j", "down":
		m.scroll++
		m.clampScroll()
	case "k", "up":
		if m.scroll > 0 {
			m.scroll--
		}
	case "g", "home":
		m.scroll = 0
	case "G", "end":
		m.scroll = m.maxScroll()
	case "e":
		return m.startExport(m.format)
	case "p":
		return m.startExport(export.FormatPDF)
	case "n":
		return m, func() tea.Msg { return NewSessionMsg{} }
	}
	return m, nil
}

func (m *Model) switched(v View) {
	m.scroll = 0
	m.logger.WithView(string(v)).Debug("switched view")
}

func (m Model) startExport(format export.Format) (tea.Model, tea.Cmd) {
	if m.exporter == nil {
		m.status = "Export is not configured"
		m.statusErr = true
		return m, nil
	}
	if m.exporting {
		return m, nil
	}
	m.exporting = true
	m.status = "Exporting " + format.Filename() + "..."
	m.statusErr = false

	exporter := m.exporter
	if format == export.FormatPDF {
		rendered := m.presenter.Render(m.contentWidth())
		return m, func() tea.Msg {
			path, err := exporter.Visual(rendered)
			return exportDoneMsg{path: path, err: err}
		}
	}
	plan := m.presenter.Plan()
	return m, func() tea.Msg {
		path, err := exporter.Structured(plan, format)
		return exportDoneMsg{path: path, err: errors.Wrap(err, "export "+string(format))}
	}
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

func (m Model) contentHeight() int {
	return max(1, m.height-styles.HeaderFooterReserved-1)
}

func (m Model) lines() []string {
	return strings.Split(m.presenter.Render(m.contentWidth()), "\n")
}

func (m Model) maxScroll() int {
	if m.height <= 0 {
		return 0
	}
	return max(0, len(m.lines())-m.contentHeight())
}

func (m *Model) clampScroll() {
	m.scroll = max(0, min(m.scroll, m.maxScroll()))
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.Header.Render("tripbook"))
	b.WriteString("\n")

	lines := m.lines()
	if m.height > 0 {
		end := min(len(lines), m.scroll+m.contentHeight())
		lines = lines[min(m.scroll, end):end]
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")

	switch {
	case m.status == "":
	case m.statusErr:
		b.WriteString(styles.ErrorMsg.Render(m.status))
	default:
		b.WriteString(styles.SuccessMsg.Render(m.status))
	}

	b.WriteString(styles.Help(
		"tab", "next view",
		"1-5", "jump",
		"j/k", "scroll",
		"e", "export "+string(m.format),
		"p", "pdf",
		"n", "new trip",
		"q", "quit",
	))
	return b.String()
}
