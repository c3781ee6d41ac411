package apiclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// TicketFile is a downloadable ticket. The caller closes Body.
type TicketFile struct {
	Body        io.ReadCloser
	ContentType string
	Filename    string
}

// DownloadTicket fetches the ticket document of a booking from the public
// download endpoint.
func (c *Client) DownloadTicket(ctx context.Context, bookingNumber string) (*TicketFile, error) {
	resp, err := c.send(ctx, request{
		endpoint: "tickets.download",
		method:   http.MethodGet,
		path:     "/api/tickets/download/" + url.PathEscape(bookingNumber),
	})
	if err != nil {
		return nil, err
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/pdf"
	}

	return &TicketFile{
		Body:        resp.Body,
		ContentType: contentType,
		Filename:    fmt.Sprintf("ticket-%s.pdf", bookingNumber),
	}, nil
}
