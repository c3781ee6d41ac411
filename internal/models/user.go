package models

import (
	"encoding/json"
	"strings"
)

// UserRole represents the role of an actor on the platform
type UserRole string

const (
	UserRoleUser    UserRole = "user"
	UserRolePartner UserRole = "partner"
	UserRoleAdmin   UserRole = "admin"
)

// IsValid reports whether the role is one the platform knows about
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRolePartner, UserRoleAdmin:
		return true
	default:
		return false
	}
}

// User is the user record returned by the API on login
type User struct {
	ID          int      `json:"id"`
	Email       string   `json:"email"`
	FirstName   string   `json:"first_name,omitempty"`
	LastName    string   `json:"last_name,omitempty"`
	PhoneNumber string   `json:"phone_number,omitempty"`
	ProfilePic  string   `json:"profile_picture,omitempty"`
	Role        UserRole `json:"role"`
	IsAdmin     bool     `json:"is_admin,omitempty"`
}

// UnmarshalJSON normalizes the role. Older admin accounts only carry is_admin.
func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	var raw alias
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*u = User(raw)
	u.Role = UserRole(strings.ToLower(strings.TrimSpace(string(u.Role))))
	if u.Role == "" && u.IsAdmin {
		u.Role = UserRoleAdmin
	}
	return nil
}

// DisplayName returns the name to greet the user with
func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name != "" {
		return name
	}
	return u.Email
}

// Session is the combination of an access token and the user record
// identifying the current actor.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Role returns the session's role, or an empty role when no user is attached
func (s *Session) Role() UserRole {
	if s == nil || s.User == nil {
		return ""
	}
	return s.User.Role
}
