package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/carmarket/internal/client/models"
	"github.com/dmitrijs2005/carmarket/internal/client/repositories/users"
	"github.com/dmitrijs2005/carmarket/internal/common"
	"github.com/dmitrijs2005/carmarket/internal/logging"
)

const (
	MsgRegisterRequired = "Please fill all fields."
	MsgLoginRequired    = "Please fill email and password."
)

// AuthService defines the operations of the local auth directory.
//
// Contract:
//   - Register: add a user unless the email is taken (common.ErrDuplicateEmail).
//   - Authenticate: return the stored user whose email and password match,
//     common.ErrInvalidCredentials otherwise.
//
// Emails are compared trimmed and lowercased. Passwords are compared as is.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) error
	Authenticate(ctx context.Context, email, password string) (models.RegisteredUser, error)
}

type authService struct {
	dir *users.Directory
	log logging.Logger
}

func NewAuthService(dir *users.Directory, log logging.Logger) AuthService {
	return &authService{dir: dir, log: log}
}

func (a *authService) Register(ctx context.Context, name, email, password string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return models.NewValidationError("", MsgRegisterRequired)
	}
	email = models.NormalizeEmail(email)

	list, err := a.dir.Load(ctx)
	if err != nil {
		return err
	}
	for _, u := range list {
		if models.NormalizeEmail(u.Email) == email {
			return fmt.Errorf("%s: %w", email, common.ErrDuplicateEmail)
		}
	}

	list = append(list, models.RegisteredUser{Name: strings.TrimSpace(name), Email: email, Password: password})
	if err := a.dir.Save(ctx, list); err != nil {
		return err
	}

	a.log.Info(ctx, "user registered", "email", email)
	return nil
}

func (a *authService) Authenticate(ctx context.Context, email, password string) (models.RegisteredUser, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return models.RegisteredUser{}, models.NewValidationError("", MsgLoginRequired)
	}
	email = models.NormalizeEmail(email)

	list, err := a.dir.Load(ctx)
	if err != nil {
		return models.RegisteredUser{}, err
	}
	for _, u := range list {
		if models.NormalizeEmail(u.Email) == email && u.Password == password {
			a.log.Info(ctx, "user authenticated", "email", email)
			return u, nil
		}
	}

	a.log.Warn(ctx, "authentication failed", "email", email)
	return models.RegisteredUser{}, common.ErrInvalidCredentials
}
