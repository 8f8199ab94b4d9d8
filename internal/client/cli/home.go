package cli

import (
	"context"

	"github.com/dmitrijs2005/gophblog/internal/client/guard"
	"github.com/dmitrijs2005/gophblog/internal/client/models"
	"github.com/dmitrijs2005/gophblog/internal/client/services"
)

func (a *App) homePage(ctx context.Context, m guard.Match) error {
	if u, ok := a.session.User(); ok {
		a.printf("== Home, hello %s ==\n", u.UserName)
	}
	return a.postList(ctx, m)
}

func (a *App) postListPage(ctx context.Context, m guard.Match) error {
	a.println("== Posts ==")
	return a.postList(ctx, m)
}

// postList prints every post under the current status filter. A ?status=
// query overrides the filter.
func (a *App) postList(ctx context.Context, m guard.Match) error {
	if s := m.Query.Get("status"); s != "" {
		if st, ok := models.ParsePostStatus(s); ok {
			a.filter = st
		}
	}

	posts, err := a.posts.All(ctx)
	if err != nil {
		return a.fail(ctx, "Could not load posts", err)
	}
	a.printf("Filter: %s\n", a.filter)
	printPosts(a.out, services.FilterByStatus(posts, a.filter))
	return nil
}

// Filter sets the publication filter and refreshes a post list on screen.
func (a *App) Filter(ctx context.Context, arg string) error {
	st, ok := models.ParsePostStatus(arg)
	if !ok {
		a.println("Usage: filter all|published|unpublished")
		return nil
	}
	a.filter = st
	a.printf("Filter set to %s.\n", st)

	switch m := a.currentPage(); m.Route.Page {
	case guard.PageHome, guard.PagePostList:
		return a.postList(ctx, guard.Match{Path: m.Path, Route: m.Route})
	}
	return nil
}

func (a *App) dashboardPage(ctx context.Context) error {
	me, ok := a.session.User()
	if !ok {
		return a.redirect(ctx, guard.LoginPath)
	}

	blogs, err := a.blogs.ByAuthor(ctx, me.ID)
	if err != nil {
		return a.fail(ctx, "Could not load your blogs", err)
	}
	posts, err := a.posts.ByAuthor(ctx, me.ID)
	if err != nil {
		return a.fail(ctx, "Could not load your posts", err)
	}

	published := len(services.FilterByStatus(posts, models.PostStatusPublished))
	a.printf("== Dashboard: %s ==\n", me.UserName)
	a.printf("%d blogs, %d posts (%d published, %d drafts)\n", len(blogs), len(posts), published, len(posts)-published)
	a.println("-- Your blogs --")
	printBlogs(a.out, blogs)
	a.println("-- Your posts --")
	printPosts(a.out, posts)
	return nil
}
