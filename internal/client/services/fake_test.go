package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophblog/internal/client/client"
	"github.com/dmitrijs2005/gophblog/internal/client/models"
)

// fakeClient implements client.Client for use-case tests. Methods a test
// does not configure panic through the nil embedded interface.
type fakeClient struct {
	client.Client

	mu    sync.Mutex
	calls []string

	posts      []models.Post
	postsErr   error
	bySlug     map[string]models.Post
	slugErr    error
	publishErr error

	blogs       []models.Blog
	createdBlog *models.Blog

	like       *models.Like
	likeErr    error
	unlikeErr  error
	lastLike   models.LikeCreate
	lastUnlike int64

	profile    *models.User
	profileErr error

	comment *models.Comment
}

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fakeClient) ListPosts(context.Context) ([]models.Post, error) {
	f.record("ListPosts")
	return f.posts, f.postsErr
}

func (f *fakeClient) GetPostBySlug(_ context.Context, slug string) (*models.Post, error) {
	f.record("GetPostBySlug")
	if f.slugErr != nil {
		return nil, f.slugErr
	}
	p, ok := f.bySlug[slug]
	if !ok {
		return nil, client.ErrNotFound
	}
	return &p, nil
}

func (f *fakeClient) PublishPost(context.Context, int64) error {
	f.record("PublishPost")
	return f.publishErr
}

func (f *fakeClient) CreatePost(_ context.Context, in models.PostCreate) (*models.Post, error) {
	f.record("CreatePost")
	return &models.Post{ID: 9, Title: in.Title, Slug: in.Slug}, nil
}

func (f *fakeClient) ListBlogs(context.Context) ([]models.Blog, error) {
	f.record("ListBlogs")
	return f.blogs, nil
}

func (f *fakeClient) CreateBlog(_ context.Context, in models.BlogCreate) (*models.Blog, error) {
	f.record("CreateBlog")
	return f.createdBlog, nil
}

func (f *fakeClient) UpdateBlog(_ context.Context, id int64, in models.BlogUpdate) (*models.Blog, error) {
	f.record("UpdateBlog")
	return &models.Blog{ID: id, Title: in.Title}, nil
}

func (f *fakeClient) CreateLike(_ context.Context, in models.LikeCreate) (*models.Like, error) {
	f.record("CreateLike")
	f.lastLike = in
	return f.like, f.likeErr
}

func (f *fakeClient) DeleteLike(_ context.Context, id int64) error {
	f.record("DeleteLike")
	f.lastUnlike = id
	return f.unlikeErr
}

func (f *fakeClient) UpdateProfile(context.Context, int64, models.ProfileUpdate) (*models.User, error) {
	f.record("UpdateProfile")
	return f.profile, f.profileErr
}

func (f *fakeClient) CreateComment(_ context.Context, in models.CommentCreate) (*models.Comment, error) {
	f.record("CreateComment")
	return f.comment, nil
}

func (f *fakeClient) DeleteComment(context.Context, int64) error {
	f.record("DeleteComment")
	return nil
}

type fakeSession struct {
	user    *models.User
	patches []models.UserPatch
	err     error
}

func (f *fakeSession) UpdateUser(_ context.Context, p models.UserPatch) error {
	if f.err != nil {
		return f.err
	}
	f.patches = append(f.patches, p)
	if f.user != nil {
		u := p.Apply(*f.user)
		f.user = &u
	}
	return nil
}

func (f *fakeSession) User() (models.User, bool) {
	if f.user == nil {
		return models.User{}, false
	}
	return *f.user, true
}
