package components

import (
	"context"

	"nikofree-web/internal/middleware"
	"nikofree-web/internal/models"
)

// getCSRFToken gets the CSRF token from the request context
func getCSRFToken(ctx context.Context) string {
	return middleware.GetCSRFToken(ctx)
}

// currentUser gets the signed-in user from the request context
func currentUser(ctx context.Context) *models.User {
	return middleware.GetUserFromContext(ctx)
}

// dashboardPath is where the nav sends a signed-in user
func dashboardPath(user *models.User) string {
	if user == nil {
		return ""
	}
	switch user.Role {
	case models.UserRoleAdmin:
		return "/admin-dashboard"
	case models.UserRolePartner:
		return "/partner-dashboard"
	default:
		return "/user-dashboard"
	}
}
