package session

import "nikofree-web/internal/models"

// IsAdminAuthorized reports whether the admin area may be shown: a token is
// present, a user is present and that user is an admin.
func IsAdminAuthorized(token string, user *models.User) bool {
	return token != "" && user != nil && user.Role == models.UserRoleAdmin
}

// HasRole reports whether sess is signed in with role
func HasRole(sess *models.Session, role models.UserRole) bool {
	return sess != nil && sess.Token != "" && sess.Role() == role
}
