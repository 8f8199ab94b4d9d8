package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophblog/internal/client/guard"
	"github.com/dmitrijs2005/gophblog/internal/client/models"
	"github.com/dmitrijs2005/gophblog/internal/client/services"
)

func (a *App) viewer() *models.User {
	u, ok := a.session.User()
	if !ok {
		return nil
	}
	return &u
}

func (a *App) blogListPage(ctx context.Context) error {
	blogs, err := a.blogs.All(ctx)
	if err != nil {
		return a.fail(ctx, "Could not load blogs", err)
	}
	a.println("== Blogs ==")
	printBlogs(a.out, blogs)
	return nil
}

func (a *App) blogsByAuthorPage(ctx context.Context, m guard.Match) error {
	authorID, err := intParam(m.Param("authorId"), "author id")
	if err != nil {
		return a.fail(ctx, "Invalid address", err)
	}
	blogs, err := a.blogs.ByAuthor(ctx, authorID)
	if err != nil {
		return a.fail(ctx, "Could not load blogs", err)
	}
	a.printf("== Blogs by author %d ==\n", authorID)
	printBlogs(a.out, blogs)
	return nil
}

func (a *App) blogDetailPage(ctx context.Context, m guard.Match) error {
	id, err := intParam(m.Param("id"), "blog id")
	if err != nil {
		return a.fail(ctx, "Invalid address", err)
	}
	blog, err := a.blogs.ByID(ctx, id)
	if err != nil {
		return a.fail(ctx, "Could not load blog", err)
	}
	posts, err := a.posts.ByBlog(ctx, id)
	if err != nil {
		return a.fail(ctx, "Could not load posts", err)
	}

	a.printf("== %s ==\n", blog.Title)
	if blog.Description != "" {
		a.println(blog.Description)
	}
	if services.CanEdit(a.viewer(), blog.UserID) {
		a.printf("(edit: go /blogs/edit/%d, delete: rmblog %d)\n", blog.ID, blog.ID)
	}
	printPosts(a.out, posts)
	return nil
}

func (a *App) blogCreatePage(ctx context.Context) error {
	me := a.viewer()
	if me == nil {
		return a.redirect(ctx, guard.LoginPath)
	}

	a.println("== New blog ==")
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	desc, err := getSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}

	blog, err := a.blogs.Create(ctx, models.BlogCreate{Title: title, Description: desc, UserID: me.ID})
	if err != nil {
		return a.fail(ctx, "Could not create blog", err)
	}
	a.printf("Blog #%d created.\n", blog.ID)
	return a.redirect(ctx, fmt.Sprintf("/blogs/%d", blog.ID))
}

func (a *App) blogEditPage(ctx context.Context, m guard.Match) error {
	id, err := intParam(m.Param("id"), "blog id")
	if err != nil {
		return a.fail(ctx, "Invalid address", err)
	}
	blog, err := a.blogs.ByID(ctx, id)
	if err != nil {
		return a.fail(ctx, "Could not load blog", err)
	}
	if !services.CanEdit(a.viewer(), blog.UserID) {
		a.println("You can only edit your own blogs.")
		return nil
	}

	a.printf("== Edit blog #%d ==\n", blog.ID)
	title, err := getTextDefault(a.reader, "Title", blog.Title, a.out)
	if err != nil {
		return err
	}
	desc, err := getTextDefault(a.reader, "Description", blog.Description, a.out)
	if err != nil {
		return err
	}

	if _, err := a.blogs.Update(ctx, blog.ID, models.BlogUpdate{Title: title, Description: desc}); err != nil {
		return a.fail(ctx, "Could not update blog", err)
	}
	a.println("Blog updated.")
	return a.redirect(ctx, fmt.Sprintf("/blogs/%d", blog.ID))
}

// RemoveBlog deletes one of the viewer's blogs.
func (a *App) RemoveBlog(ctx context.Context, arg string) error {
	id, err := intParam(arg, "blog id")
	if err != nil {
		a.println("Usage: rmblog <id>")
		return nil
	}
	if !a.isLoggedIn() {
		a.println("Please log in first.")
		return nil
	}

	blog, err := a.blogs.ByID(ctx, id)
	if err != nil {
		return a.fail(ctx, "Could not load blog", err)
	}
	if !services.CanEdit(a.viewer(), blog.UserID) {
		a.println("You can only delete your own blogs.")
		return nil
	}
	if err := a.blogs.Delete(ctx, id); err != nil {
		return a.fail(ctx, "Could not delete blog", err)
	}
	a.printf("Blog #%d deleted.\n", id)

	if cur := a.currentPage(); cur.Route.Page == guard.PageBlogDetail && cur.Param("id") == arg {
		return a.redirect(ctx, "/blogs")
	}
	return nil
}
