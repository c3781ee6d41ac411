package services

import (
	"context"

	"nikofree-web/internal/apiclient"
	"nikofree-web/internal/models"

	"github.com/stretchr/testify/mock"
)

// mockAPI is a testify mock of the backend client
type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) ListEvents(ctx context.Context, params apiclient.ListEventsParams) ([]*models.Event, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Event), args.Error(1)
}

func (m *mockAPI) GetEvent(ctx context.Context, id int) (*models.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *mockAPI) GetCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *mockAPI) AdminLogin(ctx context.Context, req apiclient.LoginRequest) (*apiclient.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*apiclient.LoginResponse), args.Error(1)
}

func (m *mockAPI) Login(ctx context.Context, req apiclient.LoginRequest) (*apiclient.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*apiclient.LoginResponse), args.Error(1)
}

func (m *mockAPI) PartnerLogin(ctx context.Context, req apiclient.LoginRequest) (*apiclient.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*apiclient.LoginResponse), args.Error(1)
}

func (m *mockAPI) AdminDashboard(ctx context.Context, token string) (*models.AdminDashboard, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminDashboard), args.Error(1)
}

func (m *mockAPI) AdminPendingPartners(ctx context.Context, token string) ([]models.Partner, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Partner), args.Error(1)
}

func (m *mockAPI) AdminPendingEvents(ctx context.Context, token string) ([]*models.Event, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Event), args.Error(1)
}

func (m *mockAPI) UserBookings(ctx context.Context, token string) ([]models.Booking, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *mockAPI) PartnerEvents(ctx context.Context, token, status string) ([]*models.Event, error) {
	args := m.Called(ctx, token, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Event), args.Error(1)
}

func (m *mockAPI) DownloadTicket(ctx context.Context, bookingNumber string) (*apiclient.TicketFile, error) {
	args := m.Called(ctx, bookingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*apiclient.TicketFile), args.Error(1)
}

var _ BackendAPI = (*mockAPI)(nil)
