package pages

import (
	"context"
	"embed"
	"html/template"

	"nikofree-web/internal/services"
	"nikofree-web/web/templates/components"

	"github.com/a-h/templ"
	"github.com/shopspring/decimal"
)

//go:embed html/*.html
var files embed.FS

var funcs = template.FuncMap{
	"eventDate": eventDate,
	"titleCase": titleCase,
	"kes":       func(d decimal.Decimal) string { return services.FormatKES(d) },
	"weekdayHeaders": func() []string {
		return []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	},
	"eventGrid": func(cards []services.EventCard, empty string) (template.HTML, error) {
		return templ.ToGoHTML(context.Background(), components.EventGrid(cards, empty))
	},
	"weekendResults": func(page *services.WeekendPage) (template.HTML, error) {
		return templ.ToGoHTML(context.Background(), components.WeekendResults(page))
	},
	"followButton": func(partnerID int, state services.FollowState) (template.HTML, error) {
		return templ.ToGoHTML(context.Background(), components.FollowButton(partnerID, state))
	},
	"errorPanel": func(message, backURL, backLabel string) (template.HTML, error) {
		return templ.ToGoHTML(context.Background(), components.ErrorPanel(message, backURL, backLabel))
	},
}

var set = template.Must(template.New("pages").Funcs(components.Funcs).Funcs(funcs).ParseFS(files, "html/*.html"))

// page renders the named template with data inside the site layout
func page(title, name string, data any) templ.Component {
	return components.Layout(title, templ.FromGoHTML(set.Lookup(name), data))
}
