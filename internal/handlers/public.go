package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"nikofree-web/internal/metrics"
	"nikofree-web/internal/middleware"
	"nikofree-web/internal/models"
	"nikofree-web/internal/services"
	"nikofree-web/internal/session"
	"nikofree-web/web/templates/components"
	"nikofree-web/web/templates/pages"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// featuredLimit is how many events the landing page shows
const featuredLimit = 6

// PublicHandler handles public pages
type PublicHandler struct {
	base
	eventService services.EventServiceInterface
	partners     services.PartnerDirectory
	cards        *services.CardBuilder
	store        *session.Store
	notifier     services.FollowNotifier
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(
	eventService services.EventServiceInterface,
	partners services.PartnerDirectory,
	cards *services.CardBuilder,
	store *session.Store,
	notifier services.FollowNotifier,
	m *metrics.Metrics,
	logger *logrus.Logger,
) *PublicHandler {
	return &PublicHandler{
		base:         newBase(m, logger),
		eventService: eventService,
		partners:     partners,
		cards:        cards,
		store:        store,
		notifier:     notifier,
	}
}

func (h *PublicHandler) localNow() time.Time {
	return h.now().In(h.cards.Location())
}

// HomePage renders the landing page with upcoming events
func (h *PublicHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	featured, err := h.eventService.FeaturedEvents(r.Context(), h.localNow(), featuredLimit)
	if h.stale(r, "home") {
		return
	}
	if err != nil {
		h.fetchFailed(w, r, "home", err, "Failed to load events")
		return
	}

	h.render(w, r, "home", http.StatusOK, pages.HomePage(featured))
}

// EventDetailPage renders the event details page
func (h *PublicHandler) EventDetailPage(w http.ResponseWriter, r *http.Request) {
	eventID, err := models.ParseID(chi.URLParam(r, "eventId"))
	if err != nil {
		h.renderError(w, r, "event", http.StatusBadRequest, "Invalid event ID", "/", "Back to Home")
		return
	}

	detail, err := h.eventService.GetEvent(r.Context(), eventID)
	if h.stale(r, "event") {
		return
	}
	if err != nil {
		if errors.Is(err, models.ErrEventNotFound) {
			h.renderError(w, r, "event", http.StatusNotFound, "Event not found", "/", "Back to Home")
			return
		}
		h.fetchFailed(w, r, "event", err, "Failed to load event")
		return
	}

	h.render(w, r, "event", http.StatusOK, pages.EventDetailPage(detail))
}

// PartnerProfilePage renders a partner's public profile
func (h *PublicHandler) PartnerProfilePage(w http.ResponseWriter, r *http.Request) {
	partnerID, err := models.ParseID(chi.URLParam(r, "partnerId"))
	if err != nil {
		h.renderError(w, r, "partner", http.StatusBadRequest, "Invalid partner ID", "/", "Back to Home")
		return
	}

	profile, err := h.partners.GetProfile(r.Context(), partnerID, h.now())
	if h.stale(r, "partner") {
		return
	}
	if err != nil {
		if errors.Is(err, models.ErrPartnerNotFound) {
			h.renderError(w, r, "partner", http.StatusNotFound, "Partner not found or has no events", "/", "Back to Home")
			return
		}
		h.fetchFailed(w, r, "partner", err, "Failed to load partner profile")
		return
	}

	state := services.NewFollowState(profile.Partner.FollowersCount)
	if f, ok := h.store.Followed(r, partnerID); ok {
		state = services.Remembered(f.Followers, false)
	}

	query := r.URL.Query()
	view := pages.PartnerProfileView{
		Profile:       profile,
		Logo:          h.cards.ImageURL(profile.Partner.Logo),
		CurrentEvents: h.cards.Cards(profile.CurrentEvents),
		PastEvents:    h.cards.Cards(profile.PastEvents),
		Follow:        state,
		Section:       oneOf(query.Get("section"), "about", "events"),
		Tab:           oneOf(query.Get("tab"), "current", "past"),
	}
	h.render(w, r, "partner", http.StatusOK, pages.PartnerProfilePage(view))
}

// FollowPartner, UnfollowPartner and ToggleFollowMenu drive the follow
// button. The state lives in a follow cookie kept apart from the session.
func (h *PublicHandler) FollowPartner(w http.ResponseWriter, r *http.Request) {
	h.follow(w, r, services.ActionFollow)
}

func (h *PublicHandler) UnfollowPartner(w http.ResponseWriter, r *http.Request) {
	h.follow(w, r, services.ActionUnfollow)
}

func (h *PublicHandler) ToggleFollowMenu(w http.ResponseWriter, r *http.Request) {
	h.follow(w, r, services.ActionToggleMenu)
}

func (h *PublicHandler) follow(w http.ResponseWriter, r *http.Request, action services.FollowAction) {
	partnerID, err := models.ParseID(chi.URLParam(r, "partnerId"))
	if err != nil {
		h.renderError(w, r, "follow", http.StatusBadRequest, "Invalid partner ID", "/", "Back to Home")
		return
	}

	followers, _ := strconv.Atoi(r.FormValue("followers"))
	state := services.NewFollowState(followers)
	if f, ok := h.store.Followed(r, partnerID); ok {
		state = services.Remembered(f.Followers, f.MenuOpen)
	}

	if state.Apply(action) {
		sess := middleware.GetSessionFromContext(r.Context())
		switch action {
		case services.ActionFollow:
			err = h.notifier.Followed(r.Context(), sess, partnerID)
		case services.ActionUnfollow:
			err = h.notifier.Unfollowed(r.Context(), sess, partnerID)
		}
		if err != nil {
			h.fetchFailed(w, r, "follow", err, "Could not update follow status")
			return
		}

		if state.Following {
			err = h.store.SetFollowed(w, r, session.Followed{PartnerID: partnerID, Followers: state.Followers, MenuOpen: state.MenuOpen})
		} else {
			err = h.store.RemoveFollowed(w, r, partnerID)
		}
		if err != nil {
			h.logger.WithError(err).WithField("partner_id", partnerID).Error("failed to save follow state")
			h.renderError(w, r, "follow", http.StatusInternalServerError, "Could not update follow status", "/partner/"+strconv.Itoa(partnerID), "Back to profile")
			return
		}
	}

	if !middleware.IsHTMXRequest(r) {
		http.Redirect(w, r, "/partner/"+strconv.Itoa(partnerID), http.StatusSeeOther)
		return
	}
	h.render(w, r, "follow", http.StatusOK, components.FollowButton(partnerID, state))
}

// WeekendPage renders this weekend's and next week's events. HTMX filter
// requests get only the results.
func (h *PublicHandler) WeekendPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, err := h.eventService.ThisWeekend(r.Context(), h.localNow(), query.Get("day"), query.Get("category"))
	if h.stale(r, "weekend") {
		return
	}
	if err != nil {
		h.fetchFailed(w, r, "weekend", err, "Failed to load weekend events")
		return
	}

	if middleware.IsHTMXRequest(r) {
		h.render(w, r, "weekend", http.StatusOK, components.WeekendResults(page))
		return
	}
	h.render(w, r, "weekend", http.StatusOK, pages.WeekendPage(page))
}

// CalendarPage renders a month of events (?month=YYYY-MM&day=YYYY-MM-DD)
func (h *PublicHandler) CalendarPage(w http.ResponseWriter, r *http.Request) {
	now := h.localNow()
	query := r.URL.Query()
	month := services.ParseMonth(query.Get("month"), now)
	selected, _ := services.ParseDay(query.Get("day"), now.Location())

	page, err := h.eventService.Calendar(r.Context(), now, month, selected)
	if h.stale(r, "calendar") {
		return
	}
	if err != nil {
		h.fetchFailed(w, r, "calendar", err, "Failed to load events")
		return
	}

	h.render(w, r, "calendar", http.StatusOK, pages.CalendarPage(page))
}

// StaticPage serves one of the informational pages
func (h *PublicHandler) StaticPage(slug string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		component, ok := pages.StaticPage(slug)
		if !ok {
			h.NotFound(w, r)
			return
		}
		h.render(w, r, slug, http.StatusOK, component)
	}
}

// NotFound renders the page for unknown paths
func (h *PublicHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "not_found", http.StatusNotFound, pages.NotFoundPage())
}

// oneOf returns value when it is one of options, otherwise the first option
func oneOf(value string, options ...string) string {
	for _, option := range options {
		if value == option {
			return value
		}
	}
	return options[0]
}
