package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors - all colors meet WCAG AA contrast (4.5:1) on both black and dark surfaces
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	SurfaceColor   = lipgloss.Color("#1F2937") // Dark surface
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray
	BlueColor      = lipgloss.Color("#60A5FA") // Blue

	// Time-of-day accents for itinerary activities
	MorningColor   = lipgloss.Color("#FBBF24") // Yellow
	AfternoonColor = lipgloss.Color("#FB923C") // Orange
	EveningColor   = lipgloss.Color("#818CF8") // Indigo

	// Convenience styles for colors
	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning   = lipgloss.NewStyle().Foreground(WarningColor)
	Error     = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Surface   = lipgloss.NewStyle().Background(SurfaceColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)
	Link      = lipgloss.NewStyle().Foreground(BlueColor).Underline(true)

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// Tab styles
	TabActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 2)

	TabInactive = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 2)

	// Content area
	ContentBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	// Card is a day, hotel or flight leg.
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1)

	CardTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	// Budget tiles
	Tile = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Padding(0, 1)

	TileLabel = lipgloss.NewStyle().
			Foreground(MutedColor)

	TileValue = lipgloss.NewStyle().
			Bold(true).
			Foreground(SecondaryColor)

	BarFilled = lipgloss.NewStyle().Foreground(SecondaryColor)
	BarEmpty  = lipgloss.NewStyle().Foreground(BorderColor)

	// Help bar
	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)

	// Header
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(BorderColor).
		MarginBottom(1).
		PaddingBottom(1)

	// Footer / status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(SurfaceColor).
			Padding(0, 1)

	// Form fields
	FieldLabel = lipgloss.NewStyle().
			Foreground(MutedColor)

	FieldLabelFocused = lipgloss.NewStyle().
				Bold(true).
				Foreground(TextColor)

	FieldError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Italic(true)

	Chip = lipgloss.NewStyle().
		Foreground(MutedColor).
		Padding(0, 1)

	ChipSelected = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Bold(true).
			Padding(0, 1)

	// Alert box for submission failures
	Alert = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ErrorColor).
		Foreground(ErrorColor).
		Padding(0, 1)

	// Error message
	ErrorMsg = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// Success message
	SuccessMsg = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	// Warning message
	WarningMsg = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	DropdownItem = lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(0, 1)

	DropdownItemSelected = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor).
				Bold(true).
				Padding(0, 1)
)

// Layout constants for screens with a header and help bar.
const (
	// HeaderLines is text + PaddingBottom + BorderBottom + MarginBottom.
	HeaderLines = 4
	// HelpBarLines is MarginTop + text.
	HelpBarLines = 2
	// ViewNewlines are the explicit newlines View adds around the body.
	ViewNewlines = 2
	// HeaderFooterReserved is the total height not available to content.
	HeaderFooterReserved = HeaderLines + HelpBarLines + ViewNewlines
)

// SlotColor returns the accent color for a time-of-day bucket.
func SlotColor(slot string) lipgloss.Color {
	switch strings.ToLower(slot) {
	case "morning":
		return MorningColor
	case "afternoon":
		return AfternoonColor
	case "evening":
		return EveningColor
	default:
		return MutedColor
	}
}

// Bar renders a horizontal percentage bar width cells wide.
// Percentages outside [0, 100] are clamped.
func Bar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent/100*float64(width) + 0.5)
	return BarFilled.Render(strings.Repeat("█", filled)) +
		BarEmpty.Render(strings.Repeat("░", width-filled))
}

// Help renders a help bar from key/description pairs.
func Help(pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, HelpKey.Render(pairs[i])+" "+pairs[i+1])
	}
	return HelpBar.Render(strings.Join(parts, "  "))
}
