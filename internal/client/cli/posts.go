package cli

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/gophblog/internal/client/guard"
	"github.com/dmitrijs2005/gophblog/internal/client/models"
	"github.com/dmitrijs2005/gophblog/internal/client/optimistic"
	"github.com/dmitrijs2005/gophblog/internal/client/services"
)

func postPath(slug string) string {
	return "/posts/" + url.PathEscape(slug)
}

func (a *App) postsByAuthorPage(ctx context.Context, m guard.Match) error {
	authorID, err := intParam(m.Param("authorId"), "author id")
	if err != nil {
		return a.fail(ctx, "Invalid address", err)
	}
	posts, err := a.posts.ByAuthor(ctx, authorID)
	if err != nil {
		return a.fail(ctx, "Could not load posts", err)
	}
	a.printf("== Posts by author %d ==\n", authorID)
	printPosts(a.out, posts)
	return nil
}

func (a *App) postDetailPage(ctx context.Context, m guard.Match) error {
	p, err := a.posts.BySlug(ctx, m.Param("slug"))
	if err != nil {
		return a.fail(ctx, "Could not load post", err)
	}
	a.viewing = optimistic.NewCell(*p)
	a.showPost(*p)
	return nil
}

func (a *App) showPost(p models.Post) {
	a.printf("== %s ==\n", p.Title)
	author := fmt.Sprintf("author %d", p.AuthorID)
	if p.Author != nil && p.Author.UserName != "" {
		author = p.Author.UserName
	}
	a.printf("#%d by %s, %s", p.ID, author, postStatus(p))
	if p.PublishedAt != nil {
		a.printf(" %s", p.PublishedAt.Format("2006-01-02"))
	}
	a.println()
	a.println()
	a.println(p.Content)
	a.println()

	me := a.viewer()
	liked := ""
	if me != nil {
		if _, ok := p.LikeBy(me.ID); ok {
			liked = " (you like this)"
		}
	}
	a.printf("%d likes%s\n", len(p.Likes), liked)

	a.printf("-- %d comments --\n", len(p.Comments))
	for _, c := range p.Comments {
		a.printf("[%d] %s: %s\n", c.ID, c.User.UserName, c.Content)
	}
	if services.CanEdit(me, p.AuthorID) {
		a.printf("(edit: go %s/edit, publish: publish %d, delete: rmpost %d)\n", postPath(p.Slug), p.ID, p.ID)
	}
}

func (a *App) postCreatePage(ctx context.Context) error {
	me := a.viewer()
	if me == nil {
		return a.redirect(ctx, guard.LoginPath)
	}

	blogs, err := a.blogs.ByAuthor(ctx, me.ID)
	if err != nil {
		return a.fail(ctx, "Could not load your blogs", err)
	}
	if len(blogs) == 0 {
		a.println("Create a blog first: go /blogs/create")
		return nil
	}

	a.println("== New post ==")
	printBlogs(a.out, blogs)
	blogArg, err := getTextDefault(a.reader, "Blog ID", fmt.Sprint(blogs[0].ID), a.out)
	if err != nil {
		return err
	}
	blogID, err := intParam(blogArg, "blogId")
	if err != nil {
		return a.fail(ctx, "Could not create post", err)
	}
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	slug, err := getTextDefault(a.reader, "Slug", slugify(title), a.out)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Content", a.out)
	if err != nil {
		return err
	}

	p, err := a.posts.Create(ctx, models.PostCreate{Title: title, Content: content, Slug: slug, AuthorID: me.ID, BlogID: blogID})
	if err != nil {
		return a.fail(ctx, "Could not create post", err)
	}
	a.printf("Post #%d created as a draft.\n", p.ID)
	return a.redirect(ctx, postPath(p.Slug))
}

func (a *App) postEditPage(ctx context.Context, m guard.Match) error {
	p, err := a.posts.BySlug(ctx, m.Param("slug"))
	if err != nil {
		return a.fail(ctx, "Could not load post", err)
	}
	if !services.CanEdit(a.viewer(), p.AuthorID) {
		a.println("You can only edit your own posts.")
		return nil
	}

	a.printf("== Edit post #%d ==\n", p.ID)
	title, err := getTextDefault(a.reader, "Title", p.Title, a.out)
	if err != nil {
		return err
	}
	slug, err := getTextDefault(a.reader, "Slug", p.Slug, a.out)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Content (empty keeps the current text)", a.out)
	if err != nil {
		return err
	}
	if content == "" {
		content = p.Content
	}

	updated, err := a.posts.Update(ctx, p.ID, models.PostUpdate{Title: title, Content: content, Slug: slug})
	if err != nil {
		return a.fail(ctx, "Could not update post", err)
	}
	a.println("Post updated.")
	return a.redirect(ctx, postPath(updated.Slug))
}

// postCell returns the optimistic cell of the post on screen when it is
// postID, and a fresh one otherwise.
func (a *App) postCell(ctx context.Context, postID int64) (*optimistic.Cell[models.Post], error) {
	if a.viewing != nil && a.viewing.Get().ID == postID {
		return a.viewing, nil
	}
	p, err := a.posts.ByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return optimistic.NewCell(*p), nil
}

func (a *App) Like(ctx context.Context, arg string) error {
	id, err := intParam(arg, "post id")
	if err != nil {
		a.println("Usage: like <postId>")
		return nil
	}
	me := a.viewer()
	if me == nil {
		a.println("Please log in first.")
		return nil
	}

	cell, err := a.postCell(ctx, id)
	if err != nil {
		return a.fail(ctx, "Could not load post", err)
	}
	p, err := a.likes.Toggle(ctx, cell, *me)
	if err != nil {
		return a.fail(ctx, "Could not update like", err)
	}

	if _, liked := p.LikeBy(me.ID); liked {
		a.printf("Liked post #%d (%d likes).\n", p.ID, len(p.Likes))
	} else {
		a.printf("Unliked post #%d (%d likes).\n", p.ID, len(p.Likes))
	}
	return nil
}

func (a *App) Publish(ctx context.Context, arg string) error {
	id, err := intParam(arg, "post id")
	if err != nil {
		a.println("Usage: publish <postId>")
		return nil
	}
	me := a.viewer()
	if me == nil {
		a.println("Please log in first.")
		return nil
	}

	cell, err := a.postCell(ctx, id)
	if err != nil {
		return a.fail(ctx, "Could not load post", err)
	}
	if !services.CanEdit(me, cell.Get().AuthorID) {
		a.println("You can only publish your own posts.")
		return nil
	}

	p, err := a.posts.TogglePublish(ctx, cell)
	if err != nil {
		return a.fail(ctx, "Could not change publication", err)
	}
	a.printf("Post #%d is now %s.\n", p.ID, postStatus(p))
	return nil
}

func (a *App) Comment(ctx context.Context, arg string) error {
	postID, err := intParam(arg, "post id")
	if err != nil {
		a.println("Usage: comment <postId>")
		return nil
	}
	me := a.viewer()
	if me == nil {
		a.println("Please log in first.")
		return nil
	}

	content, err := getMultiline(a.reader, "Comment", a.out)
	if err != nil {
		return err
	}
	c, err := a.comments.Create(ctx, models.CommentCreate{Content: content, PostID: postID, UserID: me.ID})
	if err != nil {
		return a.fail(ctx, "Could not add comment", err)
	}
	a.printf("Comment #%d added.\n", c.ID)
	return a.refreshViewing(ctx, postID)
}

func (a *App) Uncomment(ctx context.Context, arg string) error {
	id, err := intParam(arg, "comment id")
	if err != nil {
		a.println("Usage: uncomment <commentId>")
		return nil
	}
	if !a.isLoggedIn() {
		a.println("Please log in first.")
		return nil
	}

	if err := a.comments.Delete(ctx, id); err != nil {
		return a.fail(ctx, "Could not delete comment", err)
	}
	a.printf("Comment #%d deleted.\n", id)
	if a.viewing != nil {
		return a.refreshViewing(ctx, a.viewing.Get().ID)
	}
	return nil
}

// refreshViewing re-renders the post on screen after a comment change.
func (a *App) refreshViewing(ctx context.Context, postID int64) error {
	if a.viewing == nil || a.viewing.Get().ID != postID {
		return nil
	}
	cur := a.currentPage()
	return a.postDetailPage(ctx, cur)
}

func (a *App) RemovePost(ctx context.Context, arg string) error {
	id, err := intParam(arg, "post id")
	if err != nil {
		a.println("Usage: rmpost <id>")
		return nil
	}
	me := a.viewer()
	if me == nil {
		a.println("Please log in first.")
		return nil
	}

	p, err := a.posts.ByID(ctx, id)
	if err != nil {
		return a.fail(ctx, "Could not load post", err)
	}
	if !services.CanEdit(me, p.AuthorID) {
		a.println("You can only delete your own posts.")
		return nil
	}
	if err := a.posts.Delete(ctx, id); err != nil {
		return a.fail(ctx, "Could not delete post", err)
	}
	a.printf("Post #%d deleted.\n", id)

	if a.viewing != nil && a.viewing.Get().ID == id {
		a.viewing = nil
		return a.redirect(ctx, "/posts")
	}
	return nil
}

// slugify derives a URL slug from a title.
func slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
