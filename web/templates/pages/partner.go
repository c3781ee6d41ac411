package pages

import (
	"nikofree-web/internal/services"

	"github.com/a-h/templ"
)

// PartnerProfileView is a partner profile prepared for display
type PartnerProfileView struct {
	Profile       *services.PartnerProfile
	Logo          string
	CurrentEvents []services.EventCard
	PastEvents    []services.EventCard
	Follow        services.FollowState
	Section       string // about or events
	Tab           string // current or past
}

// PartnerProfilePage renders a partner's public profile
func PartnerProfilePage(view PartnerProfileView) templ.Component {
	return page(view.Profile.Partner.BusinessName, "partner-profile", view)
}
