package models

import "errors"

// Common errors used throughout the application
var (
	ErrEventNotFound      = errors.New("event not found")
	ErrPartnerNotFound    = errors.New("partner not found or has no events")
	ErrInvalidID          = errors.New("invalid id")
	ErrNotImplemented     = errors.New("feature not implemented")
	ErrUnauthorized       = errors.New("unauthorized access")
	ErrInvalidInput       = errors.New("invalid input")
	ErrMissingAccessToken = errors.New("login response did not include an access token")
)
