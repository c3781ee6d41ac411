package services

import (
	"context"
	"time"

	"nikofree-web/internal/apiclient"
	"nikofree-web/internal/models"
)

// EventAPI is the part of the backend client the public pages use
type EventAPI interface {
	ListEvents(ctx context.Context, params apiclient.ListEventsParams) ([]*models.Event, error)
	GetEvent(ctx context.Context, id int) (*models.Event, error)
	GetCategories(ctx context.Context) ([]models.Category, error)
}

// AuthAPI is the part of the backend client that checks credentials
type AuthAPI interface {
	AdminLogin(ctx context.Context, req apiclient.LoginRequest) (*apiclient.LoginResponse, error)
	Login(ctx context.Context, req apiclient.LoginRequest) (*apiclient.LoginResponse, error)
	PartnerLogin(ctx context.Context, req apiclient.LoginRequest) (*apiclient.LoginResponse, error)
}

// AdminAPI is the part of the backend client behind the admin dashboard
type AdminAPI interface {
	AdminDashboard(ctx context.Context, token string) (*models.AdminDashboard, error)
	AdminPendingPartners(ctx context.Context, token string) ([]models.Partner, error)
	AdminPendingEvents(ctx context.Context, token string) ([]*models.Event, error)
}

// AccountAPI is the part of the backend client behind the user and partner dashboards
type AccountAPI interface {
	UserBookings(ctx context.Context, token string) ([]models.Booking, error)
	PartnerEvents(ctx context.Context, token, status string) ([]*models.Event, error)
	DownloadTicket(ctx context.Context, bookingNumber string) (*apiclient.TicketFile, error)
}

// BackendAPI is everything the web frontend asks of the backend
type BackendAPI interface {
	EventAPI
	AuthAPI
	AdminAPI
	AccountAPI
}

// EventServiceInterface defines the interface for event services
type EventServiceInterface interface {
	ListEvents(ctx context.Context) ([]*models.Event, error)
	GetEvent(ctx context.Context, id int) (*EventDetail, error)
	GetCategories(ctx context.Context) ([]models.Category, error)
	FeaturedEvents(ctx context.Context, now time.Time, limit int) ([]EventCard, error)
	ThisWeekend(ctx context.Context, now time.Time, day, category string) (*WeekendPage, error)
	Calendar(ctx context.Context, now, month, selected time.Time) (*CalendarPage, error)
}

// PartnerDirectory looks up public partner profiles
type PartnerDirectory interface {
	GetProfile(ctx context.Context, partnerID int, now time.Time) (*PartnerProfile, error)
}

// AuthServiceInterface defines the interface for authentication services
type AuthServiceInterface interface {
	AdminLogin(ctx context.Context, email, password string, keepLoggedIn bool) (*models.Session, error)
	UserLogin(ctx context.Context, email, password string) (*models.Session, error)
	PartnerLogin(ctx context.Context, email, password string) (*models.Session, error)
}

// AdminServiceInterface defines the interface for the admin overview
type AdminServiceInterface interface {
	Dashboard(ctx context.Context, token string, now time.Time) (*AdminOverview, error)
}

// AccountServiceInterface defines the interface for the signed-in dashboards
type AccountServiceInterface interface {
	UserDashboard(ctx context.Context, token string, now time.Time) (*UserDashboard, error)
	PartnerDashboard(ctx context.Context, token, status string) (*PartnerDashboard, error)
	DownloadTicket(ctx context.Context, bookingNumber string) (*apiclient.TicketFile, error)
}

var (
	_ BackendAPI = (*apiclient.Client)(nil)
	_ BackendAPI = (*MockBackend)(nil)
)
