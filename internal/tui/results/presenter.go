package results

import (
	"strings"

	"github.com/Iron-Ham/tripbook/internal/derive"
	"github.com/Iron-Ham/tripbook/internal/trip"
	"github.com/Iron-Ham/tripbook/internal/tui/styles"
)

// Presenter selects which derived view of a plan is visible and renders it.
// It performs no I/O: every render is computed from the plan it was built
// with.
type Presenter struct {
	plan    *trip.Plan
	current View
}

// NewPresenter creates a Presenter showing initial, or the itinerary if
// initial is not a known view. A nil plan renders as an empty one.
func NewPresenter(plan *trip.Plan, initial View) *Presenter {
	if plan == nil {
		plan = &trip.Plan{}
	}
	plan.Normalize()
	if !initial.Valid() {
		initial = ViewItinerary
	}
	return &Presenter{plan: plan, current: initial}
}

// Plan returns the plan being presented.
func (p *Presenter) Plan() *trip.Plan {
	return p.plan
}

// Current returns the visible view.
func (p *Presenter) Current() View {
	return p.current
}

// Select makes v the visible view. Unknown views leave the state unchanged
// and report false.
func (p *Presenter) Select(v View) bool {
	if !v.Valid() {
		return false
	}
	p.current = v
	return true
}

// Next moves to the following tab, wrapping around.
func (p *Presenter) Next() View {
	views := Views()
	p.current = views[(p.current.index()+1)%len(views)]
	return p.current
}

// Prev moves to the preceding tab, wrapping around.
func (p *Presenter) Prev() View {
	views := Views()
	p.current = views[(p.current.index()-1+len(views))%len(views)]
	return p.current
}

// Render returns the full results screen body for the current view:
// heading, budget summary, tab bar and tab content.
func (p *Presenter) Render(width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(derive.Heading(p.plan)))
	b.WriteString("\n")
	if sub := p.subtitle(); sub != "" {
		b.WriteString(styles.Subtitle.Render(sub))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(renderBudget(p.plan, width))
	b.WriteString("\n\n")
	b.WriteString(p.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(p.RenderContent(width))
	return b.String()
}

// RenderContent returns only the current tab's content.
func (p *Presenter) RenderContent(width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	switch p.current {
	case ViewPlaces:
		return renderPlaces(p.plan, width)
	case ViewFlights:
		return renderFlights(p.plan, width)
	case ViewHotels:
		return renderHotels(p.plan, width)
	case ViewPacking:
		return renderPacking(p.plan, width)
	default:
		return renderItinerary(p.plan, width)
	}
}

func (p *Presenter) subtitle() string {
	origin, destination := derive.Endpoints(p.plan)
	route := origin + " → " + destination
	if p.plan.Title != "" {
		return p.plan.Title + " · " + route
	}
	return route
}

func (p *Presenter) renderTabs() string {
	var tabs []string
	for i, v := range Views() {
		label := string(rune('1'+i)) + " " + v.Label()
		if v == p.current {
			tabs = append(tabs, styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, styles.TabInactive.Render(label))
		}
	}
	return strings.Join(tabs, " ")
}
