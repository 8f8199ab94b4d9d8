package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/gophblog/internal/client/client"
	"github.com/dmitrijs2005/gophblog/internal/client/guard"
	"github.com/dmitrijs2005/gophblog/internal/common"
)

// Go navigates to path through the guard and renders the resulting page.
func (a *App) Go(ctx context.Context, path string) error {
	m, err := a.history.Navigate(path)
	if err != nil {
		a.println("Navigation failed:", err)
		return err
	}
	return a.render(ctx, m)
}

// redirect is Go that replaces the current history entry.
func (a *App) redirect(ctx context.Context, path string) error {
	m, err := a.history.Replace(path)
	if err != nil {
		a.println("Navigation failed:", err)
		return err
	}
	return a.render(ctx, m)
}

func (a *App) Back(ctx context.Context) error {
	m, ok, err := a.history.Back()
	if err != nil {
		a.println("Navigation failed:", err)
		return err
	}
	if !ok {
		a.println("Nothing to go back to.")
		return nil
	}
	return a.render(ctx, m)
}

// currentPage is the page on top of history, "" before the first navigation.
func (a *App) currentPage() guard.Match {
	m, _ := a.history.Current()
	return m
}

func (a *App) render(ctx context.Context, m guard.Match) error {
	a.logger.Debug(ctx, "render", "path", m.Path, "page", m.Route.Page)
	if m.Route.Page != guard.PagePostDetail {
		a.viewing = nil
	}

	switch m.Route.Page {
	case guard.PageLogin:
		return a.loginPage(ctx)
	case guard.PageRegister:
		return a.registerPage(ctx)
	case guard.PageHome:
		return a.homePage(ctx, m)
	case guard.PageDashboard:
		return a.dashboardPage(ctx)
	case guard.PageBlogList:
		return a.blogListPage(ctx)
	case guard.PageBlogCreate:
		return a.blogCreatePage(ctx)
	case guard.PageBlogEdit:
		return a.blogEditPage(ctx, m)
	case guard.PageBlogDetail:
		return a.blogDetailPage(ctx, m)
	case guard.PageBlogByAuthor:
		return a.blogsByAuthorPage(ctx, m)
	case guard.PagePostList:
		return a.postListPage(ctx, m)
	case guard.PagePostCreate:
		return a.postCreatePage(ctx)
	case guard.PagePostDetail:
		return a.postDetailPage(ctx, m)
	case guard.PagePostEdit:
		return a.postEditPage(ctx, m)
	case guard.PagePostByAuthor:
		return a.postsByAuthorPage(ctx, m)
	case guard.PageProfile:
		return a.profilePage(ctx, m)
	default:
		a.printf("Page not found: %s\n", m.Path)
		return nil
	}
}

// fail reports err to the user. A 401 means the stored token is no longer
// accepted: the session is ended and the user is sent to the login page.
func (a *App) fail(ctx context.Context, what string, err error) error {
	a.logger.Debug(ctx, what+" failed", "error", err)

	switch {
	case errors.Is(err, client.ErrUnauthorized):
		a.println("Your session has expired, please log in again.")
		if lerr := a.session.Logout(ctx); lerr != nil {
			a.logger.Error(ctx, "logout after 401 failed", "error", lerr)
		}
		_ = a.redirect(ctx, guard.LoginPath)
	case errors.Is(err, common.ErrValidation):
		a.printf("%s: %v\n", what, err)
	case errors.Is(err, client.ErrForbidden):
		a.printf("%s: you are not allowed to do that (%s)\n", what, client.Message(err))
	case errors.Is(err, client.ErrUnavailable):
		a.printf("%s: server unavailable, try again later\n", what)
	default:
		a.printf("%s: %s\n", what, client.Message(err))
	}
	return err
}

// intParam parses a positive numeric id from a path parameter or argument.
func intParam(s, name string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive number", common.ErrValidation, name)
	}
	return id, nil
}
