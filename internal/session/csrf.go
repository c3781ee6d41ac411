package session

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
)

// CSRFToken returns the form token bound to this browser, minting and
// storing one when absent.
func (s *Store) CSRFToken(w http.ResponseWriter, r *http.Request) (string, error) {
	if token := s.Value(r, csrfKey); token != "" {
		return token, nil
	}

	token, err := GenerateCSRFToken()
	if err != nil {
		return "", err
	}
	if err := s.SetValue(w, r, csrfKey, token); err != nil {
		return "", err
	}
	return token, nil
}

// StoredCSRFToken returns the token stored for this browser without minting one
func (s *Store) StoredCSRFToken(r *http.Request) string {
	return s.Value(r, csrfKey)
}

// GenerateCSRFToken returns 32 random bytes, hex encoded
func GenerateCSRFToken() (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(tokenBytes), nil
}
