package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophblog/internal/client/client"
	"github.com/dmitrijs2005/gophblog/internal/client/models"
	"github.com/dmitrijs2005/gophblog/internal/client/optimistic"
	"github.com/dmitrijs2005/gophblog/internal/common"
	"github.com/dmitrijs2005/gophblog/internal/logging"
)

type PostService interface {
	All(ctx context.Context) ([]models.Post, error)
	ByID(ctx context.Context, id int64) (*models.Post, error)
	BySlug(ctx context.Context, slug string) (*models.Post, error)
	ByAuthor(ctx context.Context, authorID int64) ([]models.Post, error)
	ByBlog(ctx context.Context, blogID int64) ([]models.Post, error)
	Create(ctx context.Context, in models.PostCreate) (*models.Post, error)
	Update(ctx context.Context, id int64, in models.PostUpdate) (*models.Post, error)
	Delete(ctx context.Context, id int64) error
	TogglePublish(ctx context.Context, cell *optimistic.Cell[models.Post]) (models.Post, error)
}

type postService struct {
	client client.Client
	logger logging.Logger
	now    func() time.Time
}

func NewPostService(client client.Client, logger logging.Logger) PostService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &postService{client: client, logger: logger, now: time.Now}
}

func (s *postService) All(ctx context.Context) ([]models.Post, error) {
	return s.client.ListPosts(ctx)
}

// ByID has no dedicated endpoint; it scans the full list.
func (s *postService) ByID(ctx context.Context, id int64) (*models.Post, error) {
	posts, err := s.client.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID == id {
			return &posts[i], nil
		}
	}
	return nil, fmt.Errorf("post %d: %w", id, common.ErrorNotFound)
}

func (s *postService) BySlug(ctx context.Context, slug string) (*models.Post, error) {
	return s.client.GetPostBySlug(ctx, slug)
}

func (s *postService) ByAuthor(ctx context.Context, authorID int64) ([]models.Post, error) {
	return s.client.ListPostsByAuthor(ctx, authorID)
}

// ByBlog filters the full list, there is no per-blog endpoint.
func (s *postService) ByBlog(ctx context.Context, blogID int64) ([]models.Post, error) {
	posts, err := s.client.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if p.BlogID == blogID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *postService) Create(ctx context.Context, in models.PostCreate) (*models.Post, error) {
	if err := models.Validate(in); err != nil {
		return nil, err
	}
	return s.client.CreatePost(ctx, in)
}

func (s *postService) Update(ctx context.Context, id int64, in models.PostUpdate) (*models.Post, error) {
	if err := models.Validate(in); err != nil {
		return nil, err
	}
	return s.client.UpdatePost(ctx, id, in)
}

func (s *postService) Delete(ctx context.Context, id int64) error {
	return s.client.DeletePost(ctx, id)
}

// TogglePublish flips the post's published flag locally, then asks the
// server. The API has one publish endpoint for both directions, so on
// success the post is re-read and the server's state wins over the local
// guess. On failure the local flip is undone.
func (s *postService) TogglePublish(ctx context.Context, cell *optimistic.Cell[models.Post]) (models.Post, error) {
	flip := func(p models.Post) models.Post {
		p.Published = !p.Published
		if p.Published {
			now := s.now().UTC()
			p.PublishedAt = &now
		} else {
			p.PublishedAt = nil
		}
		return p
	}
	commit := func(ctx context.Context, p models.Post) error {
		return s.client.PublishPost(ctx, p.ID)
	}

	p, err := cell.Apply(ctx, flip, commit)
	if err != nil {
		return p, err
	}

	fresh, err := s.client.GetPostBySlug(ctx, p.Slug)
	if err != nil {
		s.logger.Warn(ctx, "reload after publish failed", "post_id", p.ID, "error", err)
		return p, nil
	}
	if fresh.Published != p.Published {
		s.logger.Warn(ctx, "server disagrees with publish toggle", "post_id", p.ID, "published", fresh.Published)
	}
	cell.Set(*fresh)
	return *fresh, nil
}

// FilterByStatus keeps the posts matching status. PostStatusAll (or an
// empty status) keeps everything.
func FilterByStatus(posts []models.Post, status models.PostStatus) []models.Post {
	if status == "" || status == models.PostStatusAll {
		return posts
	}
	want := status == models.PostStatusPublished
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if p.Published == want {
			out = append(out, p)
		}
	}
	return out
}
