package services

import (
	"context"

	"github.com/dmitrijs2005/gophblog/internal/client/client"
	"github.com/dmitrijs2005/gophblog/internal/client/models"
)

type BlogService interface {
	All(ctx context.Context) ([]models.Blog, error)
	ByID(ctx context.Context, id int64) (*models.Blog, error)
	ByAuthor(ctx context.Context, authorID int64) ([]models.Blog, error)
	Create(ctx context.Context, in models.BlogCreate) (*models.Blog, error)
	Update(ctx context.Context, id int64, in models.BlogUpdate) (*models.Blog, error)
	Delete(ctx context.Context, id int64) error
}

type blogService struct {
	client client.Client
}

func NewBlogService(client client.Client) BlogService {
	return &blogService{client: client}
}

func (s *blogService) All(ctx context.Context) ([]models.Blog, error) {
	return s.client.ListBlogs(ctx)
}

func (s *blogService) ByID(ctx context.Context, id int64) (*models.Blog, error) {
	return s.client.GetBlog(ctx, id)
}

func (s *blogService) ByAuthor(ctx context.Context, authorID int64) ([]models.Blog, error) {
	return s.client.ListBlogsByAuthor(ctx, authorID)
}

func (s *blogService) Create(ctx context.Context, in models.BlogCreate) (*models.Blog, error) {
	if err := models.Validate(in); err != nil {
		return nil, err
	}
	return s.client.CreateBlog(ctx, in)
}

func (s *blogService) Update(ctx context.Context, id int64, in models.BlogUpdate) (*models.Blog, error) {
	if err := models.Validate(in); err != nil {
		return nil, err
	}
	return s.client.UpdateBlog(ctx, id, in)
}

func (s *blogService) Delete(ctx context.Context, id int64) error {
	return s.client.DeleteBlog(ctx, id)
}
