// Package session keeps the signed-in actor in a signed cookie. It is the
// single place the rest of the server reads or writes session state.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"nikofree-web/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/sessions"
)

const (
	cookieName = "nikofree_session"

	tokenKey = "token"
	userKey  = "user"
	keepKey  = "keep_logged_in"
	csrfKey  = "csrf_token"
)

// Options configures the cookie store
type Options struct {
	Secret string
	MaxAge int // seconds, applied when the user asks to stay logged in
	Secure bool
}

// Store reads and writes the session cookie
type Store struct {
	cookies sessions.Store
	maxAge  int
	secure  bool
	now     func() time.Time
}

// NewStore creates a cookie-backed session store
func NewStore(opts Options) *Store {
	cookies := sessions.NewCookieStore([]byte(opts.Secret))
	cookies.MaxAge(opts.MaxAge)

	s := &Store{
		cookies: cookies,
		maxAge:  opts.MaxAge,
		secure:  opts.Secure,
		now:     time.Now,
	}
	cookies.Options = s.options(false)
	return s
}

// Get returns the current session, or nil when nobody is signed in.
// A session whose access token is a JWT past its expiry is treated as absent.
func (s *Store) Get(r *http.Request) (*models.Session, error) {
	raw, err := s.cookies.Get(r, cookieName)
	if err != nil {
		return nil, fmt.Errorf("failed to read session cookie: %w", err)
	}

	token, _ := raw.Values[tokenKey].(string)
	encodedUser, _ := raw.Values[userKey].(string)
	if token == "" || encodedUser == "" {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(encodedUser), &user); err != nil {
		return nil, fmt.Errorf("failed to decode session user: %w", err)
	}

	if TokenExpired(token, s.now()) {
		return nil, nil
	}

	return &models.Session{Token: token, User: &user}, nil
}

// Save stores sess in the cookie. Without keepLoggedIn the cookie lasts for
// the browser session only.
func (s *Store) Save(w http.ResponseWriter, r *http.Request, sess *models.Session, keepLoggedIn bool) error {
	if sess == nil || sess.Token == "" || sess.User == nil {
		return errors.New("cannot save an incomplete session")
	}

	encodedUser, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("failed to encode session user: %w", err)
	}

	raw, _ := s.cookies.Get(r, cookieName)
	raw.Values[tokenKey] = sess.Token
	raw.Values[userKey] = string(encodedUser)
	raw.Values[keepKey] = keepLoggedIn
	raw.Options = s.options(keepLoggedIn)

	if err := raw.Save(r, w); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Clear removes the session cookie
func (s *Store) Clear(w http.ResponseWriter, r *http.Request) error {
	raw, _ := s.cookies.Get(r, cookieName)
	for key := range raw.Values {
		delete(raw.Values, key)
	}
	opts := s.options(false)
	opts.MaxAge = -1
	raw.Options = opts

	if err := raw.Save(r, w); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Value returns a string stored under key, for state kept next to the session
func (s *Store) Value(r *http.Request, key string) string {
	raw, err := s.cookies.Get(r, cookieName)
	if err != nil {
		return ""
	}
	value, _ := raw.Values[key].(string)
	return value
}

// SetValue stores a string under key without touching the signed-in actor
func (s *Store) SetValue(w http.ResponseWriter, r *http.Request, key, value string) error {
	raw, _ := s.cookies.Get(r, cookieName)
	raw.Values[key] = value
	keep, _ := raw.Values[keepKey].(bool)
	raw.Options = s.options(keep)

	if err := raw.Save(r, w); err != nil {
		return fmt.Errorf("failed to save session value %q: %w", key, err)
	}
	return nil
}

func (s *Store) options(keepLoggedIn bool) *sessions.Options {
	maxAge := 0
	if keepLoggedIn {
		maxAge = s.maxAge
	}
	return &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// TokenExpired reports whether token is a JWT whose exp claim is before now.
// Opaque tokens and JWTs without exp never expire here; the API remains the
// authority and rejects them itself.
func TokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !now.Before(exp.Time)
}
