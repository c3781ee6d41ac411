package pages

import (
	"github.com/a-h/templ"
)

// ErrorPage renders an error panel as a full page
func ErrorPage(title, message, backURL, backLabel string) templ.Component {
	return page(title, "error", struct {
		Title     string
		Message   string
		BackURL   string
		BackLabel string
	}{title, message, backURL, backLabel})
}

// NotFoundPage renders the page for unknown paths
func NotFoundPage() templ.Component {
	return page("Page Not Found", "not-found", nil)
}
