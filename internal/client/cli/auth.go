package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/carmarket/internal/common"
	"github.com/dmitrijs2005/carmarket/internal/logging"
)

// Register prompts for name, email and password and creates an account.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	if err := a.auth.Register(opCtx, name, email, password); err != nil {
		if errors.Is(err, common.ErrStorage) {
			a.log.Error(ctx, "register failed", logging.Err(err))
		}
		return withMessage(err, "Failed to create account. Try again.")
	}

	a.println("Account created! Please login now.")
	return nil
}

// Login prompts for credentials and starts a session on success.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	u, err := a.auth.Authenticate(opCtx, email, password)
	if err != nil {
		return withMessage(err, "Login failed. Please try again.")
	}

	a.user = &u
	a.printf("Welcome back, %s!\n", u.Name)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.log.Info(ctx, "user logged out", "email", a.user.Email)
	a.user = nil
	a.println("Logged out.")
	return nil
}
