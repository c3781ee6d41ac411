package apiclient

import (
	"context"
	"net/http"

	"nikofree-web/internal/models"
)

// LoginRequest is the credential payload of the login endpoints
type LoginRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	KeepLoggedIn bool   `json:"keep_logged_in,omitempty"`
}

// LoginResponse is what the login endpoints answer. Partner logins carry
// the partner record instead of a user record.
type LoginResponse struct {
	Message      string          `json:"message,omitempty"`
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token,omitempty"`
	User         *models.User    `json:"user,omitempty"`
	Partner      *models.Partner `json:"partner,omitempty"`
}

// AdminLogin authenticates an administrator
func (c *Client) AdminLogin(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	return c.login(ctx, "auth.admin_login", "/api/auth/admin/login", req)
}

// Login authenticates a regular user
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	return c.login(ctx, "auth.login", "/api/auth/login", req)
}

// PartnerLogin authenticates a partner account
func (c *Client) PartnerLogin(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	return c.login(ctx, "auth.partner_login", "/api/auth/partner/login", req)
}

func (c *Client) login(ctx context.Context, endpoint, path string, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	err := c.do(ctx, request{
		endpoint: endpoint,
		method:   http.MethodPost,
		path:     path,
		body:     req,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
