// Package services contains the application services over the domain
// repository: authentication, enrollment, catalog queries and admin
// management. Services
// hold no state of their own; every call re-reads from the store, so
// the store stays the single source of truth.
package services

import (
	"context"
	"time"

	"github.com/edukit/edukit/internal/common"
	"github.com/edukit/edukit/internal/cryptox"
	"github.com/edukit/edukit/internal/models"
	"github.com/edukit/edukit/internal/repository"
)

// AuthService covers signup, login, logout and session resolution.
//
// Contract:
//   - Signup: rejects an already-registered email (case-sensitive exact
//     match) with common.ErrDuplicateEmail; on success establishes a
//     session for the new user, replacing any prior one.
//   - Login: distinguishes common.ErrUserNotFound, common.ErrAccountBlocked
//     and common.ErrInvalidCredentials. The blocked check runs before the
//     password check, so a blocked account reports blocked even with a
//     wrong password.
//   - Logout: removes the session; calling it with no session is fine.
//   - CurrentUser: resolves the session pointer to a user, or nil when
//     there is no session or the referenced user no longer exists. It
//     never fails.
type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) *models.User
	IsAuthenticated(ctx context.Context) bool
	IsAdmin(ctx context.Context) bool
}

type authService struct {
	repo *repository.Repository
}

// NewAuthService constructs an AuthService over the given repository.
func NewAuthService(repo *repository.Repository) AuthService {
	return &authService{repo: repo}
}

func (s *authService) Signup(ctx context.Context, name, email, password string) (*models.User, error) {
	users := s.repo.Users(ctx)
	for _, u := range users {
		if u.Email == email {
			return nil, common.ErrDuplicateEmail
		}
	}

	user := models.User{
		ID:           models.NewUserID(),
		Name:         name,
		Email:        email,
		PasswordHash: cryptox.HashPassword(password),
		IsAdmin:      false,
		Blocked:      false,
		Avatar:       nil,
		Bio:          "",
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.SaveUsers(ctx, append(users, user)); err != nil {
		return nil, err
	}
	if err := s.repo.SaveSession(ctx, models.Session{CurrentUserID: user.ID}); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	var user *models.User
	for _, u := range s.repo.Users(ctx) {
		if u.Email == email {
			user = &u
			break
		}
	}
	if user == nil {
		return nil, common.ErrUserNotFound
	}
	if user.Blocked {
		return nil, common.ErrAccountBlocked
	}
	if cryptox.HashPassword(password) != user.PasswordHash {
		return nil, common.ErrInvalidCredentials
	}

	if err := s.repo.SaveSession(ctx, models.Session{CurrentUserID: user.ID}); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) Logout(ctx context.Context) error {
	return s.repo.ClearSession(ctx)
}

func (s *authService) CurrentUser(ctx context.Context) *models.User {
	session, ok := s.repo.Session(ctx)
	if !ok {
		return nil
	}
	for _, u := range s.repo.Users(ctx) {
		if u.ID == session.CurrentUserID {
			return &u
		}
	}
	return nil
}

func (s *authService) IsAuthenticated(ctx context.Context) bool {
	return s.CurrentUser(ctx) != nil
}

func (s *authService) IsAdmin(ctx context.Context) bool {
	u := s.CurrentUser(ctx)
	return u != nil && u.IsAdmin
}
