package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// LoginForm is the state of a login form
type LoginForm struct {
	Title        string
	Action       string
	Email        string
	Error        string
	Redirect     string
	KeepLoggedIn bool
	ShowKeep     bool // admin form only
	CSRFToken    string
}

// AdminLoginForm is the empty admin login form
func AdminLoginForm() LoginForm {
	return LoginForm{Title: "Admin Login", Action: "/admin-dashboard/login", ShowKeep: true}
}

// UserLoginForm is the empty user login form
func UserLoginForm() LoginForm {
	return LoginForm{Title: "Log In", Action: "/login"}
}

// PartnerLoginForm is the empty partner login form
func PartnerLoginForm() LoginForm {
	return LoginForm{Title: "Partner Login", Action: "/partner-login"}
}

// LoginPage renders a login form
func LoginPage(form LoginForm) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		form.CSRFToken = getCSRFToken(ctx)
		return page(form.Title, "login", form).Render(ctx, w)
	})
}
