package results

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/tripbook/internal/derive"
	"github.com/Iron-Ham/tripbook/internal/trip"
	"github.com/Iron-Ham/tripbook/internal/tui/styles"
	"github.com/Iron-Ham/tripbook/internal/util"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth = 80
	labelWidth   = 16
	minBarWidth  = 10
	maxBarWidth  = 40
)

func renderBudget(p *trip.Plan, width int) string {
	budget := derive.Budget(p, derive.Denominator(p))
	money := func(v float64) string { return util.FormatMoney(v, budget.Currency) }

	tiles := []string{
		tile("Total", money(budget.Total)),
		tile("Flights", money(budget.Flights)),
		tile("Accommodation", money(budget.Accommodation)),
		tile("Food & Fun", money(budget.FoodAndFun)),
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
	if lipgloss.Width(row) > width {
		row = lipgloss.JoinVertical(lipgloss.Left, tiles...)
	}

	barWidth := width - labelWidth - 24
	barWidth = max(minBarWidth, min(maxBarWidth, barWidth))

	var b strings.Builder
	b.WriteString(row)
	for _, line := range budget.Lines {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%-*s %s %5.1f%%  %s",
			labelWidth, line.Label,
			styles.Bar(line.Percent, barWidth),
			line.Percent,
			styles.Muted.Render(money(line.Amount)),
		)
	}
	return b.String()
}

func tile(label, value string) string {
	return styles.Tile.Render(styles.TileLabel.Render(label) + "\n" + styles.TileValue.Render(value))
}

func renderItinerary(p *trip.Plan, width int) string {
	days := derive.Days(p)
	if len(days) == 0 {
		return styles.Muted.Render("No days planned yet.")
	}
	currency := derive.Budget(p, 0).Currency

	cardWidth := max(20, width-2)
	cards := make([]string, 0, len(days))
	for _, d := range days {
		var b strings.Builder
		title := fmt.Sprintf("Day %d", d.DayNumber)
		if d.City != "" {
			title += " · " + d.City
		}
		if d.Date != "" {
			title += " · " + d.Date
		}
		b.WriteString(styles.CardTitle.Render(title))
		b.WriteString("\n")
		b.WriteString(styles.Muted.Render(d.Weather))

		slots := []struct {
			name       string
			activities []trip.Activity
		}{
			{"Morning", d.Morning},
			{"Afternoon", d.Afternoon},
			{"Evening", d.Evening},
		}
		for _, slot := range slots {
			if len(slot.activities) == 0 {
				continue
			}
			b.WriteString("\n\n")
			b.WriteString(lipgloss.NewStyle().Foreground(styles.SlotColor(slot.name)).Bold(true).Render(slot.name))
			for _, a := range slot.activities {
				b.WriteString("\n")
				b.WriteString(activityLine(a, currency, cardWidth-4))
			}
		}

		if len(d.Meals) > 0 {
			b.WriteString("\n\n")
			b.WriteString(styles.Secondary.Render("Meals"))
			for _, meal := range d.Meals {
				b.WriteString("\n  • " + meal)
			}
		}
		b.WriteString("\n\n")
		b.WriteString(styles.Muted.Render("Day total: " + util.FormatMoney(d.Cost, currency)))

		cards = append(cards, styles.Card.Width(cardWidth).Render(b.String()))
	}
	return strings.Join(cards, "\n")
}

func activityLine(a trip.Activity, currency string, width int) string {
	line := "  • " + a.Name
	if a.TimeSlot != "" {
		line += styles.Muted.Render(" (" + a.TimeSlot + ")")
	}
	if a.EstimatedCost > 0 {
		line += "  " + styles.Secondary.Render(util.FormatMoney(a.EstimatedCost, currency))
	}
	return util.TruncateANSI(line, width)
}

func renderPlaces(p *trip.Plan, width int) string {
	places := derive.Places(p)
	if len(places) == 0 {
		return styles.Muted.Render("No places to show.")
	}
	currency := derive.Budget(p, 0).Currency

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", styles.Muted.Render(fmt.Sprintf("%d places to visit", len(places))))
	for i, a := range places {
		b.WriteString("\n")
		b.WriteString(styles.CardTitle.Render(fmt.Sprintf("%d. %s", i+1, a.Name)))
		if a.Location != "" {
			b.WriteString("\n   " + styles.Muted.Render(a.Location))
		}
		if a.Description != "" {
			for _, line := range strings.Split(util.Wrap(a.Description, max(20, width-3)), "\n") {
				b.WriteString("\n   " + line)
			}
		}
		if a.EstimatedCost > 0 {
			b.WriteString("\n   " + styles.Secondary.Render(util.FormatMoney(a.EstimatedCost, currency)))
		}
		if a.BookingLink != "" {
			b.WriteString("\n   " + styles.Link.Render(a.BookingLink))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderFlights(p *trip.Plan, width int) string {
	f := derive.Flights(p)

	var b strings.Builder
	b.WriteString(styles.CardTitle.Render(f.Origin + " → " + f.Destination))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("Flight budget: ") + styles.TileValue.Render(util.FormatMoney(f.Budget, f.Currency)))

	if len(f.Legs) == 0 {
		b.WriteString("\n\n")
		b.WriteString(styles.Muted.Render("No intercity travel planned."))
	}
	for _, leg := range f.Legs {
		var card strings.Builder
		card.WriteString(styles.CardTitle.Render(fmt.Sprintf("%s → %s", leg.From, leg.To)))
		card.WriteString(styles.Muted.Render("  " + leg.Mode))
		details := []string{util.FormatMoney(leg.Cost, f.Currency)}
		if leg.Duration != "" {
			details = append(details, leg.Duration)
		}
		card.WriteString("\n" + strings.Join(details, " · "))
		if leg.Notes != "" {
			card.WriteString("\n" + styles.Muted.Render(util.Wrap(leg.Notes, max(20, width-6))))
		}
		if leg.BookingLink != "" {
			card.WriteString("\n" + styles.Link.Render(leg.BookingLink))
		}
		b.WriteString("\n\n")
		b.WriteString(styles.Card.Width(max(20, width-2)).Render(card.String()))
	}

	b.WriteString(renderPlatforms("Book flights", f.Platforms))
	return b.String()
}

func renderHotels(p *trip.Plan, width int) string {
	hotels := derive.Hotels(p)
	if len(hotels) == 0 {
		return styles.Muted.Render("No hotels shortlisted.")
	}
	currency := derive.Budget(p, 0).Currency

	cards := make([]string, 0, len(hotels))
	for _, h := range hotels {
		var b strings.Builder
		b.WriteString(styles.CardTitle.Render(h.Name))
		if h.Area != "" {
			b.WriteString(styles.Muted.Render("  " + h.Area))
		}
		b.WriteString("\n")
		b.WriteString(styles.Secondary.Render(util.FormatMoney(h.PricePerNight, currency) + " / night"))
		b.WriteString(styles.Muted.Render("  ★ " + h.Rating))
		if h.Description != "" {
			b.WriteString("\n" + util.Wrap(h.Description, max(20, width-6)))
		}
		if h.BookingLink != "" {
			b.WriteString("\n" + styles.Link.Render(h.BookingLink))
		}
		cards = append(cards, styles.Card.Width(max(20, width-2)).Render(b.String()))
	}

	out := strings.Join(cards, "\n")
	return out + renderPlatforms("Activity booking", derive.ActivityPlatforms(p))
}

func renderPacking(p *trip.Plan, _ int) string {
	groups := derive.Packing(p)
	if groups.Total() == 0 {
		return styles.Muted.Render("Nothing on the packing list.")
	}

	var b strings.Builder
	b.WriteString(styles.Muted.Render(fmt.Sprintf("%d items in %d categories", groups.Total(), len(groups))))
	for _, cat := range groups {
		b.WriteString("\n\n")
		b.WriteString(styles.CardTitle.Render(fmt.Sprintf("%s (%d)", cat.Name, len(cat.Items))))
		for _, item := range cat.Items {
			b.WriteString("\n  [ ] " + item)
		}
	}
	return b.String()
}

func renderPlatforms(title string, platforms []derive.Platform) string {
	if len(platforms) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(styles.Secondary.Render(title))
	for _, pl := range platforms {
		b.WriteString("\n  " + pl.Name + "  " + styles.Link.Render(pl.URL))
	}
	return b.String()
}
