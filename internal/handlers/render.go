package handlers

import (
	"net/http"
	"strings"
	"time"

	"nikofree-web/internal/apiclient"
	"nikofree-web/internal/metrics"
	"nikofree-web/internal/middleware"
	"nikofree-web/web/templates/components"
	"nikofree-web/web/templates/pages"

	"github.com/a-h/templ"
	"github.com/sirupsen/logrus"
)

// base carries what every page handler needs
type base struct {
	metrics *metrics.Metrics
	logger  *logrus.Logger
	now     func() time.Time
}

func newBase(m *metrics.Metrics, logger *logrus.Logger) base {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return base{metrics: m, logger: logger, now: time.Now}
}

// SetClock replaces the handler clock, for tests
func (b *base) SetClock(now func() time.Time) {
	b.now = now
}

// render writes component with status and counts the page
func (b *base) render(w http.ResponseWriter, r *http.Request, page string, status int, component templ.Component) {
	outcome := "ok"
	if status >= 400 {
		outcome = "error"
	}
	b.metrics.ObservePage(page, outcome)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := component.Render(r.Context(), w); err != nil {
		b.logger.WithError(err).WithField("page", page).Error("failed to render page")
	}
}

// renderError shows the error panel. HTMX requests get the bare panel.
func (b *base) renderError(w http.ResponseWriter, r *http.Request, page string, status int, message, backURL, backLabel string) {
	if middleware.IsHTMXRequest(r) {
		b.render(w, r, page, status, components.ErrorPanel(message, backURL, backLabel))
		return
	}
	b.render(w, r, page, status, pages.ErrorPage(http.StatusText(status), message, backURL, backLabel))
}

// fetchFailed logs an upstream failure and shows it as a 502
func (b *base) fetchFailed(w http.ResponseWriter, r *http.Request, page string, err error, fallback string) {
	b.logger.WithError(err).WithField("page", page).Warn("failed to load page data")
	b.renderError(w, r, page, http.StatusBadGateway, apiclient.MessageOf(err, fallback), "/", "Back to Home")
}

// stale reports whether the client went away while data was being fetched.
// The result is dropped without rendering.
func (b *base) stale(r *http.Request, page string) bool {
	if r.Context().Err() == nil {
		return false
	}
	b.metrics.ObservePage(page, "cancelled")
	return true
}

// safeRedirect returns target when it is a local path, otherwise fallback
func safeRedirect(target, fallback string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return fallback
	}
	return target
}
