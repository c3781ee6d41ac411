package components

import (
	"nikofree-web/internal/services"

	"github.com/a-h/templ"
)

type errorPanelData struct {
	Message   string
	BackURL   string
	BackLabel string
}

// ErrorPanel renders an inline error with a way back
func ErrorPanel(message, backURL, backLabel string) templ.Component {
	if backURL == "" {
		backURL, backLabel = "/", "Back to Home"
	}
	return component("error-panel", errorPanelData{Message: message, BackURL: backURL, BackLabel: backLabel})
}

type followButtonData struct {
	PartnerID int
	State     services.FollowState
}

// FollowButton renders the follow control of a partner profile
func FollowButton(partnerID int, state services.FollowState) templ.Component {
	return component("follow-button", followButtonData{PartnerID: partnerID, State: state})
}
