package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"

	"nikofree-web/internal/session"

	"github.com/sirupsen/logrus"
)

// CSRFMiddleware protects the login, logout and follow forms
type CSRFMiddleware struct {
	store  *session.Store
	logger *logrus.Logger
}

// NewCSRFMiddleware creates a new CSRF middleware
func NewCSRFMiddleware(store *session.Store, logger *logrus.Logger) *CSRFMiddleware {
	return &CSRFMiddleware{
		store:  store,
		logger: logger,
	}
}

// CSRFProtection rejects state-changing requests whose token does not match
// the one stored for the browser.
func (m *CSRFMiddleware) CSRFProtection(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		sessionToken := m.store.StoredCSRFToken(r)

		requestToken := r.Header.Get("X-CSRF-Token")
		if requestToken == "" {
			requestToken = r.FormValue("csrf_token")
		}

		if sessionToken == "" || subtle.ConstantTimeCompare([]byte(requestToken), []byte(sessionToken)) != 1 {
			m.logger.WithFields(logrus.Fields{
				"path":   r.URL.Path,
				"method": r.Method,
			}).Warn("csrf token mismatch")

			if IsHTMXRequest(r) {
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`<div class="alert alert-error">Security token mismatch. Please refresh the page and try again.</div>`))
			} else {
				http.Error(w, "CSRF token mismatch", http.StatusForbidden)
			}
			return
		}

		next.ServeHTTP(w, r)
	})
}

// EnsureCSRFToken makes sure the browser has a token and exposes it to templates
func (m *CSRFMiddleware) EnsureCSRFToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := m.store.CSRFToken(w, r)
		if err != nil {
			m.logger.WithError(err).Warn("failed to issue csrf token")
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), CSRFContextKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetCSRFToken returns the token EnsureCSRFToken placed in ctx
func GetCSRFToken(ctx context.Context) string {
	token, _ := ctx.Value(CSRFContextKey).(string)
	return token
}
