package services

import (
	"context"
	"errors"
	"strings"

	"nikofree-web/internal/apiclient"
	"nikofree-web/internal/metrics"
	"nikofree-web/internal/models"

	"github.com/sirupsen/logrus"
)

// DefaultLoginError is shown when the API gives no reason for a failed login
const DefaultLoginError = "Invalid credentials. Please try again."

// AuthService exchanges credentials for a session with the backend
type AuthService struct {
	api     AuthAPI
	logger  *logrus.Logger
	metrics *metrics.Metrics
}

// NewAuthService creates a new auth service
func NewAuthService(api AuthAPI, logger *logrus.Logger, m *metrics.Metrics) *AuthService {
	return &AuthService{
		api:     api,
		logger:  logger,
		metrics: m,
	}
}

// AdminLogin signs in an administrator. Accounts without the admin role
// are refused so that no session is written for them.
func (s *AuthService) AdminLogin(ctx context.Context, email, password string, keepLoggedIn bool) (*models.Session, error) {
	req, err := credentials(email, password, keepLoggedIn)
	if err != nil {
		return nil, err
	}

	resp, err := s.api.AdminLogin(ctx, req)
	sess, err := sessionFromResponse(resp, err)
	if err == nil && sess.User.Role != models.UserRoleAdmin {
		sess, err = nil, models.ErrUnauthorized
	}

	s.observe(models.UserRoleAdmin, req.Email, err)
	return sess, err
}

// UserLogin signs in a regular user
func (s *AuthService) UserLogin(ctx context.Context, email, password string) (*models.Session, error) {
	req, err := credentials(email, password, false)
	if err != nil {
		return nil, err
	}

	resp, err := s.api.Login(ctx, req)
	sess, err := sessionFromResponse(resp, err)
	if err == nil && sess.User.Role == "" {
		sess.User.Role = models.UserRoleUser
	}

	s.observe(models.UserRoleUser, req.Email, err)
	return sess, err
}

// PartnerLogin signs in a partner. The API answers with the partner record,
// which becomes the session user.
func (s *AuthService) PartnerLogin(ctx context.Context, email, password string) (*models.Session, error) {
	req, err := credentials(email, password, false)
	if err != nil {
		return nil, err
	}

	resp, err := s.api.PartnerLogin(ctx, req)
	if err == nil && resp != nil && resp.User == nil && resp.Partner != nil {
		resp.User = &models.User{
			ID:          resp.Partner.ID,
			Email:       resp.Partner.Email,
			FirstName:   resp.Partner.BusinessName,
			PhoneNumber: resp.Partner.PhoneNumber,
			ProfilePic:  resp.Partner.Logo,
			Role:        models.UserRolePartner,
		}
	}

	sess, err := sessionFromResponse(resp, err)
	if err == nil {
		sess.User.Role = models.UserRolePartner
	}

	s.observe(models.UserRolePartner, req.Email, err)
	return sess, err
}

// sessionFromResponse turns a login response into a session. A response
// without an access token or user record is a failed login.
func sessionFromResponse(resp *apiclient.LoginResponse, err error) (*models.Session, error) {
	if err != nil {
		return nil, err
	}
	if resp == nil || resp.AccessToken == "" || resp.User == nil {
		return nil, models.ErrMissingAccessToken
	}
	return &models.Session{Token: resp.AccessToken, User: resp.User}, nil
}

func (s *AuthService) observe(role models.UserRole, email string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	s.metrics.ObserveLogin(string(role), outcome)

	entry := s.logger.WithFields(logrus.Fields{
		"role":  role,
		"email": email,
	})
	if err != nil {
		entry.WithError(err).Info("login failed")
		return
	}
	entry.Info("login succeeded")
}

// LoginErrorMessage is the message shown on the login form for err
func LoginErrorMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		return "Please enter your email and password."
	case errors.Is(err, models.ErrUnauthorized):
		return "This account does not have admin access."
	case errors.Is(err, models.ErrMissingAccessToken):
		return DefaultLoginError
	default:
		return apiclient.MessageOf(err, DefaultLoginError)
	}
}

func credentials(email, password string, keepLoggedIn bool) (apiclient.LoginRequest, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return apiclient.LoginRequest{}, models.ErrInvalidInput
	}
	return apiclient.LoginRequest{
		Email:        email,
		Password:     password,
		KeepLoggedIn: keepLoggedIn,
	}, nil
}
