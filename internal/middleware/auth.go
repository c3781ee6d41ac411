package middleware

import (
	"context"
	"net/http"
	"net/url"

	"nikofree-web/internal/models"
	"nikofree-web/internal/session"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	SessionContextKey contextKey = "session"
	CSRFContextKey    contextKey = "csrf_token"
)

// AuthMiddleware exposes the session to handlers and guards protected pages
type AuthMiddleware struct {
	store  *session.Store
	logger *logrus.Logger
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(store *session.Store, logger *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		store:  store,
		logger: logger,
	}
}

// LoadSession reads the session once and adds it to the request context.
// Unreadable cookies are treated as signed out.
func (m *AuthMiddleware) LoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.store.Get(r)
		if err != nil {
			m.logger.WithError(err).Debug("ignoring unreadable session cookie")
			next.ServeHTTP(w, r)
			return
		}
		if sess == nil {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(SetSessionContext(r.Context(), sess)))
	})
}

// RequireAdmin shows the protected page only to signed-in admins. Everyone
// else gets loginPage rendered at the same URL.
func (m *AuthMiddleware) RequireAdmin(loginPage http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := GetSessionFromContext(r.Context())

			var token string
			var user *models.User
			if sess != nil {
				token, user = sess.Token, sess.User
			}

			if !session.IsAdminAuthorized(token, user) {
				loginPage.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole ensures the user is signed in with role, redirecting anonymous
// visitors to loginPath.
func (m *AuthMiddleware) RequireRole(role models.UserRole, loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := GetSessionFromContext(r.Context())
			if sess == nil {
				if IsHTMXRequest(r) {
					w.Header().Set("HX-Redirect", loginPath)
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				http.Redirect(w, r, loginPath+"?redirect="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
				return
			}

			if !session.HasRole(sess, role) {
				if IsHTMXRequest(r) {
					w.WriteHeader(http.StatusForbidden)
					w.Write([]byte("Access denied"))
					return
				}
				http.Error(w, "Access denied", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetSessionFromContext retrieves the session from request context
func GetSessionFromContext(ctx context.Context) *models.Session {
	sess, ok := ctx.Value(SessionContextKey).(*models.Session)
	if !ok {
		return nil
	}
	return sess
}

// GetUserFromContext retrieves the signed-in user from request context
func GetUserFromContext(ctx context.Context) *models.User {
	if sess := GetSessionFromContext(ctx); sess != nil {
		return sess.User
	}
	return nil
}

// SetSessionContext sets the session in the context (for testing)
func SetSessionContext(ctx context.Context, sess *models.Session) context.Context {
	return context.WithValue(ctx, SessionContextKey, sess)
}

// IsHTMXRequest checks if the request is from HTMX
func IsHTMXRequest(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
