package cli

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophblog/internal/client/client"
	"github.com/dmitrijs2005/gophblog/internal/client/guard"
	"github.com/dmitrijs2005/gophblog/internal/client/models"
	"github.com/dmitrijs2005/gophblog/internal/common"
)

// getSimpleText, getTextDefault, getPassword and getMultiline are
// indirections used to facilitate testing.
var (
	getSimpleText  = GetSimpleText
	getTextDefault = GetTextDefault
	getPassword    = GetPassword
	getMultiline   = GetMultiline
	confirm        = Confirm
)

func (a *App) Login(ctx context.Context) error {
	return a.Go(ctx, guard.LoginPath)
}

func (a *App) Register(ctx context.Context) error {
	return a.Go(ctx, "/register")
}

// loginPage is the login form. On failure the server's message is shown
// and the email is offered again on the next attempt.
func (a *App) loginPage(ctx context.Context) error {
	if u, ok := a.session.User(); ok {
		a.printf("Already logged in as %s.\n", u.UserName)
		return a.redirect(ctx, guard.HomePath)
	}

	a.println("== Log in ==")
	email, err := getTextDefault(a.reader, "Email", a.lastEmail, a.out)
	if err != nil {
		return err
	}
	a.lastEmail = email

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := a.session.Login(ctx, models.Credentials{Email: email, Password: string(password)})
	if err != nil {
		a.println("Login failed:", client.Message(err))
		return err
	}

	a.printf("Welcome back, %s!\n", sess.User.UserName)
	return a.redirect(ctx, guard.HomePath)
}

func (a *App) registerPage(ctx context.Context) error {
	if u, ok := a.session.User(); ok {
		a.printf("Already logged in as %s.\n", u.UserName)
		return a.redirect(ctx, guard.HomePath)
	}

	a.println("== Create an account ==")
	userName, err := getSimpleText(a.reader, "User name", a.out)
	if err != nil {
		return err
	}
	email, err := getTextDefault(a.reader, "Email", a.lastEmail, a.out)
	if err != nil {
		return err
	}
	a.lastEmail = email

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := a.session.Register(ctx, models.Registration{UserName: userName, Email: email, Password: string(password)})
	if err != nil {
		a.println("Registration failed:", client.Message(err))
		return err
	}

	a.printf("Welcome, %s!\n", sess.User.UserName)
	return a.redirect(ctx, guard.HomePath)
}

// Logout ends the session. Logging out twice is harmless.
func (a *App) Logout(ctx context.Context) error {
	wasIn := a.session.IsLoggedIn()
	if err := a.session.Logout(ctx); err != nil {
		a.println("Logout failed:", err)
		return err
	}
	a.viewing = nil
	if wasIn {
		a.println("Logged out.")
	} else {
		a.println("You are not logged in.")
	}
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	u, ok := a.session.User()
	if !ok {
		a.println("Not logged in.")
		return nil
	}
	a.printf("%s <%s> id=%d", u.UserName, u.Email, u.ID)
	if u.Role != "" {
		a.printf(" role=%s", u.Role)
	}
	a.println()
	if exp, ok := a.session.TokenExpiry(); ok {
		a.printf("Token expires %s\n", exp.Local().Format(time.RFC1123))
	}
	return nil
}
