package cli

import (
	"context"
	"errors"
	"os"

	"github.com/edukit/edukit/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a name, email and password and creates an account.
//
// On success the new user is logged in immediately and a greeting is
// printed. A duplicate email is reported to the user rather than
// returned, matching the REPL convention that handlers deal with
// expected failures themselves.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.auth.Signup(ctx, name, email, password)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			printlnFn("An account with this email already exists.")
			return nil
		}
		return err
	}

	printlnFn("Welcome,", user.Name+"!")
	return nil
}

// Login prompts for credentials and authenticates.
//
// Expected failures (unknown email, wrong password, blocked account) are
// reported to the user; unexpected ones are returned.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrAccountBlocked):
			printlnFn("This account is blocked.")
		case errors.Is(err, common.ErrUserNotFound), errors.Is(err, common.ErrInvalidCredentials):
			printlnFn(err.Error())
		default:
			return err
		}
		return nil
	}

	printlnFn("Welcome back,", user.Name+"!")
	return nil
}

// Logout drops the session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// Profile prints the current user's profile.
func (a *App) Profile(ctx context.Context) error {
	u := a.auth.CurrentUser(ctx)
	if u == nil {
		return nil
	}
	printlnFn("Name: ", u.Name)
	printlnFn("Email:", u.Email)
	if u.Bio != "" {
		printlnFn("Bio:  ", u.Bio)
	}
	printlnFn("Since:", u.CreatedAt.Format("2006-01-02"))
	return nil
}
