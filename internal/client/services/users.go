package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophblog/internal/client/client"
	"github.com/dmitrijs2005/gophblog/internal/client/models"
)

// SessionUpdater is the slice of the session store profile edits need.
type SessionUpdater interface {
	UpdateUser(ctx context.Context, patch models.UserPatch) error
	User() (models.User, bool)
}

type UserService interface {
	All(ctx context.Context) ([]models.User, error)
	ByID(ctx context.Context, id int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, upd models.ProfileUpdate) (*models.User, error)
}

type userService struct {
	client  client.Client
	session SessionUpdater
}

func NewUserService(client client.Client, session SessionUpdater) UserService {
	return &userService{client: client, session: session}
}

func (s *userService) All(ctx context.Context) ([]models.User, error) {
	return s.client.ListUsers(ctx)
}

func (s *userService) ByID(ctx context.Context, id int64) (*models.User, error) {
	return s.client.GetUser(ctx, id)
}

// UpdateProfile saves the profile on the server and, when it is the
// logged-in user's own profile, merges the returned fields into the session.
func (s *userService) UpdateProfile(ctx context.Context, userID int64, upd models.ProfileUpdate) (*models.User, error) {
	if err := models.Validate(upd); err != nil {
		return nil, err
	}

	u, err := s.client.UpdateProfile(ctx, userID, upd)
	if err != nil {
		return nil, err
	}

	if me, ok := s.session.User(); ok && me.ID == u.ID {
		patch := models.UserPatch{
			Bio:             orEmpty(u.Bio),
			ProfileImageURL: orEmpty(u.ProfileImageURL),
		}
		if err := s.session.UpdateUser(ctx, patch); err != nil {
			return u, fmt.Errorf("profile saved but session not refreshed: %w", err)
		}
	}
	return u, nil
}

// orEmpty turns a cleared server field into an explicit empty value so the
// merge overwrites the stale local one.
func orEmpty(s *string) *string {
	if s == nil {
		return models.Ptr("")
	}
	return s
}
