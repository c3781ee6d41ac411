package components

import (
	"context"
	"html/template"
	"io"
	"time"

	"nikofree-web/internal/models"

	"github.com/a-h/templ"
)

type layoutData struct {
	Title     string
	User      *models.User
	Dashboard string
	CSRFToken string
	Content   template.HTML
	Year      int
}

// Layout wraps body in the site shell: head, navigation and footer
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		content, err := templ.ToGoHTML(ctx, body)
		if err != nil {
			return err
		}

		user := currentUser(ctx)
		return component("layout", layoutData{
			Title:     title,
			User:      user,
			Dashboard: dashboardPath(user),
			CSRFToken: getCSRFToken(ctx),
			Content:   content,
			Year:      time.Now().Year(),
		}).Render(ctx, w)
	})
}
