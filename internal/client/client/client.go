package client

import (
	"context"

	"github.com/dmitrijs2005/gophblog/internal/client/models"
)

// Client is the full blogging API surface used by the CLI.
type Client interface {
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	Register(ctx context.Context, reg models.Registration) (*models.AuthResponse, error)
	UpdateProfile(ctx context.Context, userID int64, upd models.ProfileUpdate) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	ListBlogs(ctx context.Context) ([]models.Blog, error)
	GetBlog(ctx context.Context, id int64) (*models.Blog, error)
	ListBlogsByAuthor(ctx context.Context, authorID int64) ([]models.Blog, error)
	CreateBlog(ctx context.Context, in models.BlogCreate) (*models.Blog, error)
	UpdateBlog(ctx context.Context, id int64, in models.BlogUpdate) (*models.Blog, error)
	DeleteBlog(ctx context.Context, id int64) error

	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPostBySlug(ctx context.Context, slug string) (*models.Post, error)
	ListPostsByAuthor(ctx context.Context, authorID int64) ([]models.Post, error)
	CreatePost(ctx context.Context, in models.PostCreate) (*models.Post, error)
	UpdatePost(ctx context.Context, id int64, in models.PostUpdate) (*models.Post, error)
	DeletePost(ctx context.Context, id int64) error
	PublishPost(ctx context.Context, id int64) error

	CreateComment(ctx context.Context, in models.CommentCreate) (*models.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
	CreateLike(ctx context.Context, in models.LikeCreate) (*models.Like, error)
	DeleteLike(ctx context.Context, id int64) error
}

// TokenSource yields the persisted bearer token, "" when logged out.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

var _ Client = (*HTTPClient)(nil)
