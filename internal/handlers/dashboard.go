package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"nikofree-web/internal/apiclient"
	"nikofree-web/internal/metrics"
	"nikofree-web/internal/middleware"
	"nikofree-web/internal/models"
	"nikofree-web/internal/services"
	"nikofree-web/internal/session"
	"nikofree-web/web/templates/pages"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// sessionExpiredMessage is shown when the API rejects a stored token
const sessionExpiredMessage = "Your session has expired. Please log in again."

// DashboardHandler handles the signed-in dashboards and ticket downloads
type DashboardHandler struct {
	base
	adminService   services.AdminServiceInterface
	accountService services.AccountServiceInterface
	store          *session.Store
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(
	adminService services.AdminServiceInterface,
	accountService services.AccountServiceInterface,
	store *session.Store,
	m *metrics.Metrics,
	logger *logrus.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		base:           newBase(m, logger),
		adminService:   adminService,
		accountService: accountService,
		store:          store,
	}
}

// AdminDashboard renders the admin overview. The route is guarded so only
// signed-in admins get here.
func (h *DashboardHandler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSessionFromContext(r.Context())

	overview, err := h.adminService.Dashboard(r.Context(), sess.Token, h.now())
	if h.stale(r, "admin_dashboard") {
		return
	}
	if err != nil {
		if h.tokenRejected(w, r, err) {
			form := pages.AdminLoginForm()
			form.Error = sessionExpiredMessage
			h.render(w, r, "admin_dashboard", http.StatusUnauthorized, pages.LoginPage(form))
			return
		}
		h.fetchFailed(w, r, "admin_dashboard", err, "Failed to load dashboard data")
		return
	}

	h.render(w, r, "admin_dashboard", http.StatusOK, pages.AdminDashboardPage(overview))
}

// UserDashboard renders the signed-in user's bookings
func (h *DashboardHandler) UserDashboard(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSessionFromContext(r.Context())

	dashboard, err := h.accountService.UserDashboard(r.Context(), sess.Token, h.now())
	if h.stale(r, "user_dashboard") {
		return
	}
	if err != nil {
		if h.tokenRejected(w, r, err) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		h.fetchFailed(w, r, "user_dashboard", err, "Failed to load your bookings")
		return
	}

	h.render(w, r, "user_dashboard", http.StatusOK, pages.UserDashboardPage(sess.User, dashboard))
}

// PartnerDashboard renders the signed-in partner's events (?status=)
func (h *DashboardHandler) PartnerDashboard(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSessionFromContext(r.Context())

	dashboard, err := h.accountService.PartnerDashboard(r.Context(), sess.Token, r.URL.Query().Get("status"))
	if h.stale(r, "partner_dashboard") {
		return
	}
	if err != nil {
		if h.tokenRejected(w, r, err) {
			http.Redirect(w, r, "/partner-login", http.StatusSeeOther)
			return
		}
		h.fetchFailed(w, r, "partner_dashboard", err, "Failed to load your events")
		return
	}

	h.render(w, r, "partner_dashboard", http.StatusOK, pages.PartnerDashboardPage(dashboard))
}

// DownloadTicket streams the ticket document of a booking
func (h *DashboardHandler) DownloadTicket(w http.ResponseWriter, r *http.Request) {
	bookingNumber := chi.URLParam(r, "bookingNumber")

	file, err := h.accountService.DownloadTicket(r.Context(), bookingNumber)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidInput):
			h.renderError(w, r, "ticket", http.StatusBadRequest, "Invalid booking number", "/", "Back to Home")
		case apiclient.StatusOf(err) == http.StatusNotFound:
			h.renderError(w, r, "ticket", http.StatusNotFound, "Ticket not found", "/", "Back to Home")
		default:
			h.fetchFailed(w, r, "ticket", err, "Failed to download ticket")
		}
		return
	}
	defer file.Body.Close()

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, file.Body); err != nil {
		h.logger.WithError(err).WithField("booking_number", bookingNumber).Warn("ticket download interrupted")
		return
	}
	h.metrics.ObservePage("ticket", "ok")
}

// tokenRejected clears the session when the API refused its token
func (h *DashboardHandler) tokenRejected(w http.ResponseWriter, r *http.Request, err error) bool {
	if apiclient.StatusOf(err) != http.StatusUnauthorized {
		return false
	}
	if err := h.store.Clear(w, r); err != nil {
		h.logger.WithError(err).Warn("failed to clear rejected session")
	}
	return true
}
