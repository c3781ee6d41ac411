package pages

import (
	"nikofree-web/internal/services"

	"github.com/a-h/templ"
)

// HomePage renders the landing page with the upcoming featured events
func HomePage(featured []services.EventCard) templ.Component {
	return page("", "home", featured)
}

// EventDetailPage renders a single event
func EventDetailPage(detail *services.EventDetail) templ.Component {
	return page(detail.Card.Title, "event-detail", detail)
}

// WeekendPage renders the weekend listing with its filters
func WeekendPage(weekend *services.WeekendPage) templ.Component {
	return page("This Weekend", "weekend", weekend)
}

// CalendarPage renders a month of events
func CalendarPage(calendar *services.CalendarPage) templ.Component {
	return page(calendar.Month.Title(), "calendar", calendar)
}

// StaticPages maps the informational page slugs to their titles
var StaticPages = map[string]string{
	"about":          "About Us",
	"terms":          "Terms of Service",
	"privacy":        "Privacy Policy",
	"contact":        "Contact Us",
	"feedback":       "Feedback",
	"become-partner": "Become a Partner",
}

// StaticPage renders the informational page with slug. ok is false for an
// unknown slug.
func StaticPage(slug string) (component templ.Component, ok bool) {
	title, ok := StaticPages[slug]
	if !ok {
		return nil, false
	}
	return page(title, "static-"+slug, nil), true
}
