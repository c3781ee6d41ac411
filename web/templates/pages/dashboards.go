package pages

import (
	"nikofree-web/internal/models"
	"nikofree-web/internal/services"

	"github.com/a-h/templ"
)

// AdminDashboardPage renders the admin overview
func AdminDashboardPage(overview *services.AdminOverview) templ.Component {
	return page("Admin Dashboard", "admin-dashboard", overview)
}

// UserDashboardPage renders the signed-in user's bookings
func UserDashboardPage(user *models.User, dashboard *services.UserDashboard) templ.Component {
	return page("My Dashboard", "user-dashboard", struct {
		User      *models.User
		Dashboard *services.UserDashboard
	}{user, dashboard})
}

// StatusTab is one status filter of the partner dashboard
type StatusTab struct {
	Status string
	Label  string
	Count  int
	Active bool
}

// PartnerDashboardPage renders the signed-in partner's events
func PartnerDashboardPage(dashboard *services.PartnerDashboard) templ.Component {
	return page("Partner Dashboard", "partner-dashboard", struct {
		Tabs   []StatusTab
		Events []*models.Event
	}{statusTabs(dashboard), dashboard.Events})
}

func statusTabs(dashboard *services.PartnerDashboard) []StatusTab {
	total := 0
	for _, n := range dashboard.Counts {
		total += n
	}

	tabs := make([]StatusTab, 0, len(services.PartnerStatuses))
	for _, status := range services.PartnerStatuses {
		count := total
		if status != "all" {
			count = dashboard.Counts[models.EventStatus(status)]
		}
		tabs = append(tabs, StatusTab{
			Status: status,
			Label:  titleCase(status),
			Count:  count,
			Active: status == dashboard.Status,
		})
	}
	return tabs
}
