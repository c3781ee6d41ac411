package handlers

import (
	"errors"
	"net/http"
	"strings"

	"nikofree-web/internal/metrics"
	"nikofree-web/internal/middleware"
	"nikofree-web/internal/models"
	"nikofree-web/internal/services"
	"nikofree-web/internal/session"
	"nikofree-web/web/templates/pages"

	"github.com/sirupsen/logrus"
)

// AuthHandler handles the admin, user and partner login forms
type AuthHandler struct {
	base
	authService services.AuthServiceInterface
	store       *session.Store
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface, store *session.Store, m *metrics.Metrics, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		base:        newBase(m, logger),
		authService: authService,
		store:       store,
	}
}

// loginFunc signs in with the submitted credentials
type loginFunc func(r *http.Request, email, password string, keepLoggedIn bool) (*models.Session, error)

// AdminLoginPage renders the admin login form. It is shown in place of the
// admin dashboard to anyone who is not a signed-in admin.
func (h *AuthHandler) AdminLoginPage(w http.ResponseWriter, r *http.Request) {
	form := pages.AdminLoginForm()
	if sess := middleware.GetSessionFromContext(r.Context()); sess != nil && sess.Role() != models.UserRoleAdmin {
		form.Error = services.LoginErrorMessage(models.ErrUnauthorized)
	}
	h.render(w, r, "admin_login", http.StatusOK, pages.LoginPage(form))
}

// AdminLoginSubmit handles the admin login form
func (h *AuthHandler) AdminLoginSubmit(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, "admin_login", pages.AdminLoginForm(), "/admin-dashboard",
		func(r *http.Request, email, password string, keep bool) (*models.Session, error) {
			return h.authService.AdminLogin(r.Context(), email, password, keep)
		})
}

// UserLoginPage renders the user login form
func (h *AuthHandler) UserLoginPage(w http.ResponseWriter, r *http.Request) {
	h.loginPage(w, r, "user_login", pages.UserLoginForm(), models.UserRoleUser, "/user-dashboard")
}

// UserLoginSubmit handles the user login form
func (h *AuthHandler) UserLoginSubmit(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, "user_login", pages.UserLoginForm(), "/user-dashboard",
		func(r *http.Request, email, password string, _ bool) (*models.Session, error) {
			return h.authService.UserLogin(r.Context(), email, password)
		})
}

// PartnerLoginPage renders the partner login form
func (h *AuthHandler) PartnerLoginPage(w http.ResponseWriter, r *http.Request) {
	h.loginPage(w, r, "partner_login", pages.PartnerLoginForm(), models.UserRolePartner, "/partner-dashboard")
}

// PartnerLoginSubmit handles the partner login form
func (h *AuthHandler) PartnerLoginSubmit(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, "partner_login", pages.PartnerLoginForm(), "/partner-dashboard",
		func(r *http.Request, email, password string, _ bool) (*models.Session, error) {
			return h.authService.PartnerLogin(r.Context(), email, password)
		})
}

// Logout clears the session and returns to the landing page
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Clear(w, r); err != nil {
		h.logger.WithError(err).Warn("failed to clear session")
	}

	if middleware.IsHTMXRequest(r) {
		w.Header().Set("HX-Redirect", "/")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) loginPage(w http.ResponseWriter, r *http.Request, page string, form pages.LoginForm, role models.UserRole, dashboard string) {
	redirect := safeRedirect(r.URL.Query().Get("redirect"), dashboard)

	// Already signed in with this role
	if sess := middleware.GetSessionFromContext(r.Context()); session.HasRole(sess, role) {
		http.Redirect(w, r, redirect, http.StatusSeeOther)
		return
	}

	form.Redirect = redirect
	h.render(w, r, page, http.StatusOK, pages.LoginPage(form))
}

func (h *AuthHandler) submit(w http.ResponseWriter, r *http.Request, page string, form pages.LoginForm, dashboard string, login loginFunc) {
	if err := r.ParseForm(); err != nil {
		form.Error = "Invalid form data"
		h.render(w, r, page, http.StatusBadRequest, pages.LoginPage(form))
		return
	}

	form.Email = strings.TrimSpace(r.FormValue("email"))
	form.KeepLoggedIn = r.FormValue("keep_logged_in") == "on"
	form.Redirect = safeRedirect(r.FormValue("redirect"), dashboard)

	sess, err := login(r, form.Email, r.FormValue("password"), form.KeepLoggedIn)
	if h.stale(r, page) {
		return
	}
	if err != nil {
		status := http.StatusUnauthorized
		if errors.Is(err, models.ErrInvalidInput) {
			status = http.StatusUnprocessableEntity
		}
		form.Error = services.LoginErrorMessage(err)
		h.render(w, r, page, status, pages.LoginPage(form))
		return
	}

	if err := h.store.Save(w, r, sess, form.KeepLoggedIn); err != nil {
		h.logger.WithError(err).Error("failed to save session")
		form.Error = "Could not start your session. Please try again."
		h.render(w, r, page, http.StatusInternalServerError, pages.LoginPage(form))
		return
	}

	http.Redirect(w, r, form.Redirect, http.StatusSeeOther)
}
