package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"nikofree-web/internal/models"
)

// ListEventsParams are the optional query parameters of the event listing
type ListEventsParams struct {
	PerPage  int
	Page     int
	Category string
	Search   string
}

func (p ListEventsParams) query() string {
	q := url.Values{}
	if p.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(p.PerPage))
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// ListEvents fetches the public event listing. The API answers either
// {"events": [...]} or a bare array.
func (c *Client) ListEvents(ctx context.Context, params ListEventsParams) ([]*models.Event, error) {
	var raw json.RawMessage
	err := c.do(ctx, request{
		endpoint: "events.list",
		method:   http.MethodGet,
		path:     "/api/events" + params.query(),
	}, &raw)
	if err != nil {
		return nil, err
	}

	events, err := decodeList[*models.Event](raw, "events")
	if err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	return events, nil
}

// GetEvent fetches one event. A 404 maps to models.ErrEventNotFound.
func (c *Client) GetEvent(ctx context.Context, id int) (*models.Event, error) {
	var event models.Event
	err := c.do(ctx, request{
		endpoint: "events.detail",
		method:   http.MethodGet,
		path:     fmt.Sprintf("/api/events/%d", id),
	}, &event)
	if err != nil {
		if StatusOf(err) == http.StatusNotFound {
			return nil, models.ErrEventNotFound
		}
		return nil, err
	}

	if event.ID == 0 {
		return nil, models.ErrEventNotFound
	}
	return &event, nil
}

// GetCategories fetches the event categories
func (c *Client) GetCategories(ctx context.Context) ([]models.Category, error) {
	var raw json.RawMessage
	err := c.do(ctx, request{
		endpoint: "events.categories",
		method:   http.MethodGet,
		path:     "/api/events/categories",
	}, &raw)
	if err != nil {
		return nil, err
	}

	return decodeList[models.Category](raw, "categories")
}

// decodeList decodes either a bare JSON array or an object holding the
// array under key.
func decodeList[T any](raw json.RawMessage, key string) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []T{}, nil
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return nil, err
	}

	inner, ok := wrapper[key]
	if !ok {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(inner, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// IsNotFound reports whether err means the resource does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, models.ErrEventNotFound) || StatusOf(err) == http.StatusNotFound
}
