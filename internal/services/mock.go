package services

import (
	"context"
	"io"
	"strings"
	"time"

	"nikofree-web/internal/apiclient"
	"nikofree-web/internal/models"

	"github.com/shopspring/decimal"
)

// MockBackend serves fixture data in place of the backend API, for local
// demos without network access and for tests.
type MockBackend struct {
	now func() time.Time
}

// NewMockBackend creates a fixture backend whose events are scheduled
// relative to now.
func NewMockBackend(now func() time.Time) *MockBackend {
	if now == nil {
		now = time.Now
	}
	return &MockBackend{now: now}
}

var mockPartners = []*models.Partner{
	{ID: 1, BusinessName: "Nairobi Live", Email: "hello@nairobilive.co.ke", Location: "Nairobi", IsVerified: true, FollowersCount: 1240, Description: "Live music and culture nights across Nairobi."},
	{ID: 2, BusinessName: "Rift Valley Runners", Email: "team@rvrunners.co.ke", Location: "Naivasha", FollowersCount: 310, Description: "Trail runs and fitness meetups."},
	{ID: 3, BusinessName: "Tech Kenya", Email: "events@techkenya.org", Location: "Nairobi", IsVerified: true, FollowersCount: 5020, Description: "Developer conferences and workshops."},
}

func (m *MockBackend) events() []*models.Event {
	now := m.now()
	base := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	thursday := base.AddDate(0, 0, ThursdayOffset(base.Weekday()))
	at := func(day time.Time, hour int) *time.Time {
		t := day.Add(time.Duration(hour) * time.Hour)
		return &t
	}
	price := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
	attendees := 45

	return []*models.Event{
		{
			ID: 1, Title: "Sunset Jazz at the Arboretum", Description: "An evening of live jazz under the trees.",
			StartDate: at(thursday.AddDate(0, 0, 1), 18), VenueName: "Nairobi Arboretum",
			Category: &models.Category{ID: 1, Name: "Music"}, Partner: mockPartners[0], Status: models.StatusApproved,
			TicketTypes:   []models.TicketType{{ID: 1, Name: "Regular", Price: price(1500), QuantityAvailable: 200}, {ID: 2, Name: "VIP", Price: price(4000), QuantityAvailable: 40}},
			BookingsCount: 128,
		},
		{
			ID: 2, Title: "Hell's Gate Trail Run", Description: "A 15km trail run through the gorge.",
			StartDate: at(thursday.AddDate(0, 0, 2), 7), VenueName: "Hell's Gate National Park",
			Category: &models.Category{ID: 2, Name: "Fitness"}, Partner: mockPartners[1], Status: models.StatusApproved,
			IsFree: true, AttendeeCount: &attendees,
		},
		{
			ID: 3, Title: "Maasai Market Food Walk", Description: "Taste your way through the market.",
			StartDate: at(thursday.AddDate(0, 0, 3), 11), Location: &models.Location{ID: 1, Name: "Westlands"},
			Category: &models.Category{ID: 3, Name: "Food"}, Partner: mockPartners[0], Status: models.StatusApproved,
			TicketTypes: []models.TicketType{{ID: 3, Name: "Entry", Price: price(800), QuantityAvailable: 60}},
		},
		{
			ID: 4, Title: "Nairobi Dev Summit", Description: "Two days of talks on building for Africa.",
			StartDate: at(thursday.AddDate(0, 0, 6), 9), IsOnline: true,
			Category: &models.Category{ID: 4, Name: "Technology"}, Partner: mockPartners[2], Status: models.StatusApproved,
			TicketTypes:   []models.TicketType{{ID: 4, Name: "Early Bird", Price: price(2500), QuantityAvailable: 500}},
			BookingsCount: 1310,
		},
		{
			ID: 5, Title: "Gallery Night: New Voices", Description: "Contemporary art from emerging Kenyan artists.",
			StartDate: at(base.AddDate(0, 0, -10), 19), VenueName: "GoDown Arts Centre",
			Category: &models.Category{ID: 5, Name: "Culture"}, Partner: mockPartners[0], Status: models.StatusApproved,
			IsFree: true, BookingsCount: 64,
		},
		{
			ID: 6, Title: "Startup Pitch Night", Description: "Founders pitch to investors.",
			StartDate: at(thursday.AddDate(0, 0, 8), 17), VenueName: "iHub",
			Category: &models.Category{ID: 4, Name: "Technology"}, Partner: mockPartners[2], Status: models.StatusPending,
		},
	}
}

func (m *MockBackend) ListEvents(ctx context.Context, params apiclient.ListEventsParams) ([]*models.Event, error) {
	events := m.events()
	if params.PerPage > 0 && params.PerPage < len(events) {
		events = events[:params.PerPage]
	}
	return events, ctx.Err()
}

func (m *MockBackend) GetEvent(ctx context.Context, id int) (*models.Event, error) {
	for _, event := range m.events() {
		if event.ID == id {
			return event, nil
		}
	}
	return nil, models.ErrEventNotFound
}

func (m *MockBackend) GetCategories(ctx context.Context) ([]models.Category, error) {
	return []models.Category{
		{ID: 1, Name: "Music"},
		{ID: 2, Name: "Fitness"},
		{ID: 3, Name: "Food"},
		{ID: 4, Name: "Technology"},
		{ID: 5, Name: "Culture"},
	}, nil
}

func (m *MockBackend) AdminLogin(ctx context.Context, req apiclient.LoginRequest) (*apiclient.LoginResponse, error) {
	if req.Email != "admin@nikofree.com" || req.Password != "admin123" {
		return nil, &apiclient.APIError{StatusCode: 401, Message: "Invalid email or password"}
	}
	return &apiclient.LoginResponse{
		AccessToken: "demo-admin-token",
		User:        &models.User{ID: 1, Email: req.Email, FirstName: "Niko", LastName: "Admin", Role: models.UserRoleAdmin},
	}, nil
}

func (m *MockBackend) Login(ctx context.Context, req apiclient.LoginRequest) (*apiclient.LoginResponse, error) {
	if req.Password != "password" {
		return nil, &apiclient.APIError{StatusCode: 401, Message: "Invalid email or password"}
	}
	return &apiclient.LoginResponse{
		AccessToken: "demo-user-token",
		User:        &models.User{ID: 2, Email: req.Email, FirstName: strings.Split(req.Email, "@")[0], Role: models.UserRoleUser},
	}, nil
}

func (m *MockBackend) PartnerLogin(ctx context.Context, req apiclient.LoginRequest) (*apiclient.LoginResponse, error) {
	for _, partner := range mockPartners {
		if partner.Email == req.Email && req.Password == "password" {
			p := *partner
			return &apiclient.LoginResponse{AccessToken: "demo-partner-token", Partner: &p}, nil
		}
	}
	return nil, &apiclient.APIError{StatusCode: 401, Message: "Invalid email or password"}
}

func (m *MockBackend) AdminDashboard(ctx context.Context, token string) (*models.AdminDashboard, error) {
	return &models.AdminDashboard{
		Stats: models.DashboardStats{
			TotalUsers: 1840, TotalPartners: len(mockPartners), TotalEvents: len(m.events()),
			TotalBookings: 1502, PendingPartners: 1, PendingEvents: 1,
			TotalRevenue: 1250400, PlatformFees: 87528,
		},
		RecentActivity: []models.AdminActivity{
			{ID: 1, AdminEmail: "admin@nikofree.com", Action: "approve_event", ResourceType: "event", Description: "Approved Nairobi Dev Summit",
				CreatedAt: m.now().Add(-2 * time.Hour).Format(time.RFC3339)},
		},
	}, nil
}

func (m *MockBackend) AdminPendingPartners(ctx context.Context, token string) ([]models.Partner, error) {
	return []models.Partner{{ID: 9, BusinessName: "Mombasa Beach Fest", Email: "info@beachfest.co.ke", Status: "pending"}}, nil
}

func (m *MockBackend) AdminPendingEvents(ctx context.Context, token string) ([]*models.Event, error) {
	var pending []*models.Event
	for _, event := range m.events() {
		if event.Status == models.StatusPending {
			pending = append(pending, event)
		}
	}
	return pending, nil
}

func (m *MockBackend) UserBookings(ctx context.Context, token string) ([]models.Booking, error) {
	events := m.events()
	return []models.Booking{
		{ID: 1, BookingNumber: "NF-10021", Event: events[0], Quantity: 2, TotalAmount: decimal.NewFromInt(3000), Status: "confirmed"},
		{ID: 2, BookingNumber: "NF-09870", Event: events[4], Quantity: 1, TotalAmount: decimal.Zero, Status: "confirmed"},
	}, nil
}

func (m *MockBackend) PartnerEvents(ctx context.Context, token, status string) ([]*models.Event, error) {
	var events []*models.Event
	for _, event := range m.events() {
		if status == "" || string(event.Status) == status {
			events = append(events, event)
		}
	}
	return events, nil
}

func (m *MockBackend) DownloadTicket(ctx context.Context, bookingNumber string) (*apiclient.TicketFile, error) {
	return &apiclient.TicketFile{
		Body:        io.NopCloser(strings.NewReader("%PDF-1.4\n% demo ticket " + bookingNumber + "\n")),
		ContentType: "application/pdf",
		Filename:    "ticket-" + bookingNumber + ".pdf",
	}, nil
}
