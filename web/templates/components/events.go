package components

import (
	"nikofree-web/internal/services"

	"github.com/a-h/templ"
)

// EventCard renders one event tile
func EventCard(card services.EventCard) templ.Component {
	return component("event-card", card)
}

type eventGridData struct {
	Cards []services.EventCard
	Empty string
}

// EventGrid renders cards as a grid, or the empty message when there are none
func EventGrid(cards []services.EventCard, empty string) templ.Component {
	return component("event-grid", eventGridData{Cards: cards, Empty: empty})
}

// WeekendResults is the filterable part of the weekend page. HTMX filter
// requests swap it in place.
func WeekendResults(page *services.WeekendPage) templ.Component {
	return component("weekend-results", page)
}
