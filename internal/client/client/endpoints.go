package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/gophblog/internal/client/models"
)

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	return fetchOne[models.AuthResponse](ctx, c, http.MethodPost, "/User/login", creds)
}

func (c *HTTPClient) Register(ctx context.Context, reg models.Registration) (*models.AuthResponse, error) {
	return fetchOne[models.AuthResponse](ctx, c, http.MethodPost, "/User/register", reg)
}

// UpdateProfile accepts either a bare user record or a {token, user}
// envelope in the response and returns the user either way.
func (c *HTTPClient) UpdateProfile(ctx context.Context, userID int64, upd models.ProfileUpdate) (*models.User, error) {
	path := fmt.Sprintf("/User/profile/%d", userID)

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPut, path, upd, &raw); err != nil {
		return nil, err
	}

	var envelope struct {
		User *models.User `json:"user"`
	}
	var u models.User
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.User != nil {
		u = *envelope.User
	} else if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("%w: PUT %s: %v", ErrInvalidResponse, path, err)
	}

	if err := checked(&u); err != nil {
		return nil, fmt.Errorf("PUT %s: %w", path, err)
	}
	return &u, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return fetchOne[models.User](ctx, c, http.MethodGet, fmt.Sprintf("/User/%d", id), nil)
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	return fetchMany[models.User](ctx, c, "/User/all")
}

func (c *HTTPClient) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	return fetchMany[models.Blog](ctx, c, "/Blog/all")
}

func (c *HTTPClient) GetBlog(ctx context.Context, id int64) (*models.Blog, error) {
	return fetchOne[models.Blog](ctx, c, http.MethodGet, fmt.Sprintf("/Blog/%d", id), nil)
}

func (c *HTTPClient) ListBlogsByAuthor(ctx context.Context, authorID int64) ([]models.Blog, error) {
	return fetchMany[models.Blog](ctx, c, fmt.Sprintf("/Blog/author/%d", authorID))
}

func (c *HTTPClient) CreateBlog(ctx context.Context, in models.BlogCreate) (*models.Blog, error) {
	return fetchOne[models.Blog](ctx, c, http.MethodPost, "/Blog", in)
}

func (c *HTTPClient) UpdateBlog(ctx context.Context, id int64, in models.BlogUpdate) (*models.Blog, error) {
	return fetchOne[models.Blog](ctx, c, http.MethodPut, fmt.Sprintf("/Blog/%d", id), in)
}

func (c *HTTPClient) DeleteBlog(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/Blog/%d", id), nil, nil)
}

func (c *HTTPClient) ListPosts(ctx context.Context) ([]models.Post, error) {
	return fetchMany[models.Post](ctx, c, "/Post/all")
}

func (c *HTTPClient) GetPostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	return fetchOne[models.Post](ctx, c, http.MethodGet, "/Post/slug/"+url.PathEscape(slug), nil)
}

func (c *HTTPClient) ListPostsByAuthor(ctx context.Context, authorID int64) ([]models.Post, error) {
	return fetchMany[models.Post](ctx, c, fmt.Sprintf("/Post/author/%d", authorID))
}

func (c *HTTPClient) CreatePost(ctx context.Context, in models.PostCreate) (*models.Post, error) {
	return fetchOne[models.Post](ctx, c, http.MethodPost, "/Post", in)
}

func (c *HTTPClient) UpdatePost(ctx context.Context, id int64, in models.PostUpdate) (*models.Post, error) {
	return fetchOne[models.Post](ctx, c, http.MethodPut, fmt.Sprintf("/Post/%d", id), in)
}

func (c *HTTPClient) DeletePost(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/Post/%d", id), nil, nil)
}

// PublishPost flips the publication state on the server. The same endpoint
// serves both directions.
func (c *HTTPClient) PublishPost(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/Post/%d/publish", id), struct{}{}, nil)
}

func (c *HTTPClient) CreateComment(ctx context.Context, in models.CommentCreate) (*models.Comment, error) {
	return fetchOne[models.Comment](ctx, c, http.MethodPost, "/Comment", in)
}

func (c *HTTPClient) DeleteComment(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/Comment/%d", id), nil, nil)
}

func (c *HTTPClient) CreateLike(ctx context.Context, in models.LikeCreate) (*models.Like, error) {
	return fetchOne[models.Like](ctx, c, http.MethodPost, "/Like", in)
}

func (c *HTTPClient) DeleteLike(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/Like/%d", id), nil, nil)
}
