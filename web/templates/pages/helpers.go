package pages

import (
	"context"
	"strings"
	"time"

	"nikofree-web/internal/middleware"
	"nikofree-web/internal/models"
)

// getCSRFToken gets the CSRF token from the request context
func getCSRFToken(ctx context.Context) string {
	return middleware.GetCSRFToken(ctx)
}

// eventDate formats an optional event time in the display timezone
func eventDate(t *time.Time) string {
	if t == nil {
		return "Date TBA"
	}
	return t.In(models.DefaultLocation).Format("Mon, Jan 2 2006 · 3:04 PM")
}

// titleCase upper-cases the first letter of a status or slug
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
