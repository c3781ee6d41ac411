package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"nikofree-web/internal/models"
)

// UserBookings fetches the signed-in user's bookings
func (c *Client) UserBookings(ctx context.Context, token string) ([]models.Booking, error) {
	var raw json.RawMessage
	err := c.do(ctx, request{
		endpoint: "users.bookings",
		method:   http.MethodGet,
		path:     "/api/users/bookings",
		token:    token,
	}, &raw)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Booking](raw, "bookings")
}

// PartnerEvents fetches the signed-in partner's events, optionally by status
func (c *Client) PartnerEvents(ctx context.Context, token, status string) ([]*models.Event, error) {
	path := "/api/partners/events"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}

	var raw json.RawMessage
	err := c.do(ctx, request{
		endpoint: "partners.events",
		method:   http.MethodGet,
		path:     path,
		token:    token,
	}, &raw)
	if err != nil {
		return nil, err
	}
	return decodeList[*models.Event](raw, "events")
}
