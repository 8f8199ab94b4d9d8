package services

import (
	"context"

	"github.com/dmitrijs2005/gophblog/internal/client/client"
	"github.com/dmitrijs2005/gophblog/internal/client/models"
)

type CommentService interface {
	Create(ctx context.Context, in models.CommentCreate) (*models.Comment, error)
	Delete(ctx context.Context, id int64) error
}

type commentService struct {
	client client.Client
}

func NewCommentService(client client.Client) CommentService {
	return &commentService{client: client}
}

func (s *commentService) Create(ctx context.Context, in models.CommentCreate) (*models.Comment, error) {
	if err := models.Validate(in); err != nil {
		return nil, err
	}
	return s.client.CreateComment(ctx, in)
}

func (s *commentService) Delete(ctx context.Context, id int64) error {
	return s.client.DeleteComment(ctx, id)
}
