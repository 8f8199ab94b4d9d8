package services

import (
	"context"

	"github.com/dmitrijs2005/gophblog/internal/client/client"
	"github.com/dmitrijs2005/gophblog/internal/client/models"
	"github.com/dmitrijs2005/gophblog/internal/client/optimistic"
)

type LikeService interface {
	Toggle(ctx context.Context, cell *optimistic.Cell[models.Post], viewer models.User) (models.Post, error)
}

type likeService struct {
	client client.Client
}

func NewLikeService(client client.Client) LikeService {
	return &likeService{client: client}
}

// Toggle likes the post when viewer has not, and unlikes it otherwise. The
// change shows up in cell before the server answers and is rolled back if
// the server refuses.
func (s *likeService) Toggle(ctx context.Context, cell *optimistic.Cell[models.Post], viewer models.User) (models.Post, error) {
	if existing, liked := cell.Get().LikeBy(viewer.ID); liked {
		return cell.Apply(ctx,
			func(p models.Post) models.Post {
				p.Likes = withoutLike(p.Likes, viewer.ID)
				return p
			},
			func(ctx context.Context, _ models.Post) error {
				return s.client.DeleteLike(ctx, existing.ID)
			},
		)
	}

	in := models.LikeCreate{UserID: viewer.ID}
	var created *models.Like
	p, err := cell.Apply(ctx,
		func(p models.Post) models.Post {
			in.PostID = p.ID
			pending := models.Like{PostID: p.ID, User: models.UserShort{ID: viewer.ID, UserName: viewer.UserName}}
			p.Likes = append(append([]models.Like{}, p.Likes...), pending)
			return p
		},
		func(ctx context.Context, _ models.Post) error {
			if err := models.Validate(in); err != nil {
				return err
			}
			var err error
			created, err = s.client.CreateLike(ctx, in)
			return err
		},
	)
	if err != nil {
		return p, err
	}

	// swap the placeholder for the server record so a later unlike has an id
	p.Likes = append(withoutLike(p.Likes, viewer.ID), *created)
	cell.Set(p)
	return p, nil
}

func withoutLike(likes []models.Like, userID int64) []models.Like {
	out := make([]models.Like, 0, len(likes))
	for _, l := range likes {
		if l.User.ID != userID {
			out = append(out, l)
		}
	}
	return out
}
