package apiclient

import (
	"context"
	"encoding/json"
	"net/http"

	"nikofree-web/internal/models"
)

// AdminDashboard fetches the admin overview
func (c *Client) AdminDashboard(ctx context.Context, token string) (*models.AdminDashboard, error) {
	var dashboard models.AdminDashboard
	err := c.do(ctx, request{
		endpoint: "admin.dashboard",
		method:   http.MethodGet,
		path:     "/api/admin/dashboard",
		token:    token,
	}, &dashboard)
	if err != nil {
		return nil, err
	}
	return &dashboard, nil
}

// AdminPendingPartners fetches partner applications awaiting review
func (c *Client) AdminPendingPartners(ctx context.Context, token string) ([]models.Partner, error) {
	var raw json.RawMessage
	err := c.do(ctx, request{
		endpoint: "admin.partners",
		method:   http.MethodGet,
		path:     "/api/admin/partners?status=pending",
		token:    token,
	}, &raw)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Partner](raw, "partners")
}

// AdminPendingEvents fetches events awaiting moderation
func (c *Client) AdminPendingEvents(ctx context.Context, token string) ([]*models.Event, error) {
	var raw json.RawMessage
	err := c.do(ctx, request{
		endpoint: "admin.events",
		method:   http.MethodGet,
		path:     "/api/admin/events?status=pending",
		token:    token,
	}, &raw)
	if err != nil {
		return nil, err
	}
	return decodeList[*models.Event](raw, "events")
}
