package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophblog/internal/client/guard"
	"github.com/dmitrijs2005/gophblog/internal/client/models"
	"github.com/dmitrijs2005/gophblog/internal/client/services"
)

// profilePage shows a user. The owner can edit it via /profile/{id}?edit=1.
func (a *App) profilePage(ctx context.Context, m guard.Match) error {
	id, err := intParam(m.Param("id"), "user id")
	if err != nil {
		return a.fail(ctx, "Invalid address", err)
	}
	u, err := a.users.ByID(ctx, id)
	if err != nil {
		return a.fail(ctx, "Could not load profile", err)
	}

	a.printf("== %s ==\n", u.UserName)
	a.printf("Email: %s\n", u.Email)
	if u.Role != "" {
		a.printf("Role:  %s\n", u.Role)
	}
	if u.Bio != nil && *u.Bio != "" {
		a.printf("Bio:   %s\n", *u.Bio)
	}
	if u.ProfileImageURL != nil && *u.ProfileImageURL != "" {
		a.printf("Image: %s\n", *u.ProfileImageURL)
	}

	own := services.CanEdit(a.viewer(), u.ID)
	if !own {
		return nil
	}
	if !m.Query.Has("edit") {
		a.printf("(edit: go /profile/%d?edit=1)\n", u.ID)
		return nil
	}
	return a.editProfile(ctx, *u)
}

func (a *App) editProfile(ctx context.Context, u models.User) error {
	a.println("== Edit profile ==")
	bio, err := getTextDefault(a.reader, "Bio", deref(u.Bio), a.out)
	if err != nil {
		return err
	}
	img, err := getTextDefault(a.reader, "Profile image URL", deref(u.ProfileImageURL), a.out)
	if err != nil {
		return err
	}

	upd := models.ProfileUpdate{Bio: &bio}
	if img != "" {
		upd.ProfileImageURL = &img
	}
	if _, err := a.users.UpdateProfile(ctx, u.ID, upd); err != nil {
		return a.fail(ctx, "Could not update profile", err)
	}
	a.println("Profile updated.")
	return a.redirect(ctx, fmt.Sprintf("/profile/%d", u.ID))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
