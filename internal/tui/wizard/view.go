package wizard

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/tripbook/internal/trip"
	"github.com/Iron-Ham/tripbook/internal/tui/styles"
)

var labels = map[field]string{
	fieldOrigin:      "From",
	fieldDestination: "To",
	fieldStart:       "Start date",
	fieldEnd:         "End date",
	fieldGroup:       "Who's going",
	fieldStyle:       "Trip style",
	fieldBudget:      "Budget",
	fieldInterests:   "Interests",
	fieldConstraints: "Constraints",
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.Header.Render("tripbook · plan a trip"))
	b.WriteString("\n")

	for f := fieldOrigin; f < fieldSubmit; f++ {
		b.WriteString(m.renderField(f))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Planning your trip...")
	case m.focus == fieldSubmit:
		b.WriteString(styles.ChipSelected.Render("Plan my trip"))
	default:
		b.WriteString(styles.Chip.Render("Plan my trip"))
	}

	if m.alert != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.Alert.Render(m.alert))
	}

	b.WriteString("\n")
	b.WriteString(styles.Help(
		"tab", "next field",
		"←/→", "change",
		"space", "toggle interest",
		"enter", "submit",
		"esc", "quit",
	))
	return b.String()
}

func (m Model) renderField(f field) string {
	label := styles.FieldLabel
	if m.focus == f {
		label = styles.FieldLabelFocused
	}
	line := label.Render(fmt.Sprintf("%-12s", labels[f])) + " "

	switch f {
	case fieldGroup:
		groups := trip.GroupTypes()
		opts := make([]string, len(groups))
		for i, g := range groups {
			opts[i] = fmt.Sprintf("%s (%d)", g.Label(), g.Travelers())
		}
		line += chips(opts, m.groupIdx, m.focus == f)
	case fieldStyle:
		line += chips(stringsOf(trip.TravelStyles()), m.styleIdx, m.focus == f)
	case fieldBudget:
		line += chips(stringsOf(trip.BudgetTiers()), m.budgetIdx, m.focus == f)
	case fieldInterests:
		var parts []string
		for i, interest := range trip.Interests {
			mark := "[ ]"
			if m.builder.HasInterest(interest) {
				mark = "[x]"
			}
			text := mark + " " + interest
			if m.focus == f && i == m.interestIdx {
				parts = append(parts, styles.ChipSelected.Render(text))
			} else {
				parts = append(parts, styles.Chip.Render(text))
			}
		}
		line += strings.Join(parts, " ")
	default:
		line += m.inputs[f].View()
	}

	if msg, ok := m.fieldErrs[f]; ok {
		line += "\n" + strings.Repeat(" ", 13) + styles.FieldError.Render(msg)
	}
	return line
}

func chips(options []string, selected int, focused bool) string {
	parts := make([]string, len(options))
	for i, opt := range options {
		switch {
		case i == selected && focused:
			parts[i] = styles.ChipSelected.Render(opt)
		case i == selected:
			parts[i] = styles.Chip.Bold(true).Render("● " + opt)
		default:
			parts[i] = styles.Chip.Render(opt)
		}
	}
	return strings.Join(parts, " ")
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
