// Package server wires the route table of the web frontend.
package server

import (
	"net/http"
	"time"

	"nikofree-web/internal/handlers"
	"nikofree-web/internal/middleware"
	"nikofree-web/internal/models"
	"nikofree-web/internal/session"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Deps are the collaborators the router serves requests with
type Deps struct {
	Store       *session.Store
	RateLimiter *middleware.LoginRateLimiter
	Public      *handlers.PublicHandler
	Auth        *handlers.AuthHandler
	Dashboards  *handlers.DashboardHandler
	Health      *handlers.HealthHandler
	Gatherer    prometheus.Gatherer
	Logger      *logrus.Logger
}

// NewRouter builds the route table
func NewRouter(deps Deps) http.Handler {
	authMiddleware := middleware.NewAuthMiddleware(deps.Store, deps.Logger)
	csrfMiddleware := middleware.NewCSRFMiddleware(deps.Store, deps.Logger)
	loginRateLimit := middleware.LoginRateLimit(deps.RateLimiter)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.SecureHeaders)
	r.Use(authMiddleware.LoadSession)
	r.Use(middleware.RequestLogger(deps.Logger))
	// Inside the access log so recovered panics are logged with their 500
	r.Use(middleware.ErrorHandlingMiddleware(deps.Logger))

	r.NotFound(deps.Public.NotFound)
	r.MethodNotAllowed(middleware.MethodNotAllowedHandler().ServeHTTP)

	// Machine endpoints carry no session cookie
	r.Get("/health", deps.Health.Health)
	if deps.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Group(func(r chi.Router) {
		r.Use(csrfMiddleware.EnsureCSRFToken)
		r.Use(csrfMiddleware.CSRFProtection)
		r.Use(chimiddleware.Timeout(60 * time.Second))

		r.Get("/", deps.Public.HomePage)
		r.Get("/event-detail/{eventId}", deps.Public.EventDetailPage)
		r.Get("/this-weekend", deps.Public.WeekendPage)
		r.Get("/calendar", deps.Public.CalendarPage)

		r.Route("/partner/{partnerId}", func(r chi.Router) {
			r.Get("/", deps.Public.PartnerProfilePage)
			r.Post("/follow", deps.Public.FollowPartner)
			r.Post("/unfollow", deps.Public.UnfollowPartner)
			r.Post("/follow-menu", deps.Public.ToggleFollowMenu)
		})

		for _, slug := range []string{"about", "terms", "privacy", "contact", "feedback", "become-partner"} {
			r.Get("/"+slug, deps.Public.StaticPage(slug))
		}

		r.Group(func(r chi.Router) {
			r.Use(loginRateLimit)
			r.Get("/login", deps.Auth.UserLoginPage)
			r.Post("/login", deps.Auth.UserLoginSubmit)
			r.Get("/partner-login", deps.Auth.PartnerLoginPage)
			r.Post("/partner-login", deps.Auth.PartnerLoginSubmit)
			r.Post("/admin-dashboard/login", deps.Auth.AdminLoginSubmit)
		})
		r.Post("/logout", deps.Auth.Logout)

		r.With(authMiddleware.RequireAdmin(http.HandlerFunc(deps.Auth.AdminLoginPage))).
			Get("/admin-dashboard", deps.Dashboards.AdminDashboard)
		r.With(authMiddleware.RequireRole(models.UserRoleUser, "/login")).
			Get("/user-dashboard", deps.Dashboards.UserDashboard)
		r.With(authMiddleware.RequireRole(models.UserRolePartner, "/partner-login")).
			Get("/partner-dashboard", deps.Dashboards.PartnerDashboard)

		r.Get("/download-ticket/{bookingNumber}", deps.Dashboards.DownloadTicket)
	})

	return r
}
