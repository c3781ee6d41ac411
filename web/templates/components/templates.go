package components

import (
	"embed"
	"html/template"

	"nikofree-web/internal/services"

	"github.com/a-h/templ"
	"github.com/dustin/go-humanize"
)

//go:embed html/*.html
var files embed.FS

// Funcs are the template helpers shared by components and pages
var Funcs = template.FuncMap{
	"comma": func(n int) string { return humanize.Comma(int64(n)) },
	"plural": func(n int, one, many string) string {
		if n == 1 {
			return one
		}
		return many
	},
	"gridOf": func(cards []services.EventCard, empty string) eventGridData {
		return eventGridData{Cards: cards, Empty: empty}
	},
}

var set = template.Must(template.New("components").Funcs(Funcs).ParseFS(files, "html/*.html"))

// component renders the named template with data
func component(name string, data any) templ.Component {
	return templ.FromGoHTML(set.Lookup(name), data)
}
