package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"nikofree-web/internal/apiclient"
	"nikofree-web/internal/metrics"
	"nikofree-web/internal/middleware"
	"nikofree-web/internal/models"
	"nikofree-web/internal/services"
	"nikofree-web/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

var nairobi = time.FixedZone("EAT", 3*3600)

// wednesday is the fixed clock of the handler tests. The weekend window
// runs Thu Nov 6 to Mon Nov 10.
var wednesday = time.Date(2025, time.November, 5, 10, 0, 0, 0, nairobi)

func fixedNow() time.Time { return wednesday }

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// failingBackend answers every list and dashboard call with err
type failingBackend struct {
	*services.MockBackend
	err error
}

func (f *failingBackend) ListEvents(ctx context.Context, params apiclient.ListEventsParams) ([]*models.Event, error) {
	return nil, f.err
}

func (f *failingBackend) GetEvent(ctx context.Context, id int) (*models.Event, error) {
	return nil, f.err
}

func (f *failingBackend) Login(ctx context.Context, req apiclient.LoginRequest) (*apiclient.LoginResponse, error) {
	return nil, f.err
}

func (f *failingBackend) UserBookings(ctx context.Context, token string) ([]models.Booking, error) {
	return nil, f.err
}

func (f *failingBackend) DownloadTicket(ctx context.Context, bookingNumber string) (*apiclient.TicketFile, error) {
	return nil, f.err
}

// tokenlessBackend accepts any login but never hands out a token
type tokenlessBackend struct {
	*services.MockBackend
}

func (t *tokenlessBackend) Login(ctx context.Context, req apiclient.LoginRequest) (*apiclient.LoginResponse, error) {
	return &apiclient.LoginResponse{User: &models.User{ID: 7, Email: req.Email}}, nil
}

type testApp struct {
	store     *session.Store
	metrics   *metrics.Metrics
	public    *PublicHandler
	auth      *AuthHandler
	dashboard *DashboardHandler
	router    http.Handler
}

func newTestApp(t *testing.T, backend services.BackendAPI) *testApp {
	t.Helper()

	logger := testLogger()
	m := metrics.NewNoop()
	store := session.NewStore(session.Options{Secret: "test-secret-key-32-bytes-long!!!", MaxAge: 3600})

	cards := services.NewCardBuilder(apiclient.NewImageResolver("https://img.test"), nairobi)
	events := services.NewEventService(backend, cards, 200, logger)

	app := &testApp{
		store:     store,
		metrics:   m,
		public:    NewPublicHandler(events, services.NewPartnerService(events), cards, store, services.NoopFollowNotifier{}, m, logger),
		auth:      NewAuthHandler(services.NewAuthService(backend, logger, m), store, m, logger),
		dashboard: NewDashboardHandler(services.NewAdminService(backend), services.NewAccountService(backend), store, m, logger),
	}
	app.public.SetClock(fixedNow)
	app.dashboard.SetClock(fixedNow)

	authMiddleware := middleware.NewAuthMiddleware(store, logger)

	r := chi.NewRouter()
	r.Use(authMiddleware.LoadSession)
	r.NotFound(app.public.NotFound)
	r.Get("/", app.public.HomePage)
	r.Get("/event-detail/{eventId}", app.public.EventDetailPage)
	r.Get("/this-weekend", app.public.WeekendPage)
	r.Get("/calendar", app.public.CalendarPage)
	r.Get("/partner/{partnerId}", app.public.PartnerProfilePage)
	r.Post("/partner/{partnerId}/follow", app.public.FollowPartner)
	r.Post("/partner/{partnerId}/unfollow", app.public.UnfollowPartner)
	r.Post("/partner/{partnerId}/follow-menu", app.public.ToggleFollowMenu)
	r.Get("/about", app.public.StaticPage("about"))
	r.Get("/login", app.auth.UserLoginPage)
	r.Post("/login", app.auth.UserLoginSubmit)
	r.Get("/partner-login", app.auth.PartnerLoginPage)
	r.Post("/partner-login", app.auth.PartnerLoginSubmit)
	r.Post("/admin-dashboard/login", app.auth.AdminLoginSubmit)
	r.Post("/logout", app.auth.Logout)
	r.With(authMiddleware.RequireAdmin(http.HandlerFunc(app.auth.AdminLoginPage))).
		Get("/admin-dashboard", app.dashboard.AdminDashboard)
	r.With(authMiddleware.RequireRole(models.UserRoleUser, "/login")).
		Get("/user-dashboard", app.dashboard.UserDashboard)
	r.With(authMiddleware.RequireRole(models.UserRolePartner, "/partner-login")).
		Get("/partner-dashboard", app.dashboard.PartnerDashboard)
	r.Get("/download-ticket/{bookingNumber}", app.dashboard.DownloadTicket)
	app.router = r

	return app
}

func (a *testApp) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) htmx(method, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := newFormRequest(method, path, form)
	req.Header.Set("HX-Request", "true")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) post(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := newFormRequest(http.MethodPost, path, form)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

// signIn stores sess in a cookie the way a successful login would
func (a *testApp) signIn(t *testing.T, sess *models.Session) []*http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, a.store.Save(rec, httptest.NewRequest(http.MethodPost, "/", nil), sess, false))
	return rec.Result().Cookies()
}

func newFormRequest(method, path string, form url.Values) *http.Request {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	return req
}

// mergeCookies keeps the latest value of every cookie name
func mergeCookies(current []*http.Cookie, updates ...*http.Cookie) []*http.Cookie {
	merged := map[string]*http.Cookie{}
	var order []string
	for _, c := range append(current, updates...) {
		if _, seen := merged[c.Name]; !seen {
			order = append(order, c.Name)
		}
		merged[c.Name] = c
	}
	out := make([]*http.Cookie, 0, len(order))
	for _, name := range order {
		out = append(out, merged[name])
	}
	return out
}
