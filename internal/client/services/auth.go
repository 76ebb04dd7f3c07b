// Package services contains application services for the Co-Director client.
// This file defines the authentication service: login, registration, logout
// and profile refresh, with results committed into the state store.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/codirector/internal/client/api"
	"github.com/dmitrijs2005/codirector/internal/client/models"
	"github.com/dmitrijs2005/codirector/internal/client/store"
	"github.com/dmitrijs2005/codirector/internal/client/validate"
	"github.com/dmitrijs2005/codirector/internal/logging"
)

var (
	ErrNoBackend       = errors.New("no backend configured")
	ErrSessionMismatch = errors.New("backend returned a different user")
)

// Pinger checks that the remote backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: mark the request pending, authenticate, commit the session or
//     record the failure message.
//   - Register: create an account. It does not log in.
//   - Logout: tell the backend, then reset local auth state regardless.
//   - RefreshProfile: reload the current user; an unauthenticated answer or
//     a profile of a different user logs the session out locally.
//   - Ping: check backend liveness. The in-process mock is always live.
//
// The backend is picked per call from the MockAPIEnabled setting.
type AuthService interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, email, password, fullName string) (*models.UserProfile, error)
	Logout(ctx context.Context) error
	RefreshProfile(ctx context.Context) (*models.UserProfile, error)
	Ping(ctx context.Context) error
}

type authService struct {
	store  *store.Store
	mock   api.AuthAPI
	remote api.AuthAPI
	pinger Pinger
	logger logging.Logger
}

// NewAuthService wires the service. remote and pinger may be nil when only
// the mock backend is available.
func NewAuthService(st *store.Store, mock, remote api.AuthAPI, pinger Pinger, l logging.Logger) AuthService {
	if l == nil {
		l = logging.Nop{}
	}
	return &authService{
		store:  st,
		mock:   mock,
		remote: remote,
		pinger: pinger,
		logger: l.With("module", "auth_service"),
	}
}

func (a *authService) backend() (api.AuthAPI, bool, error) {
	mock := a.store.Settings().MockAPIEnabled
	b := a.remote
	if mock {
		b = a.mock
	}
	if b == nil {
		return nil, mock, ErrNoBackend
	}
	return b, mock, nil
}

func (a *authService) Login(ctx context.Context, email, password string) error {
	b, mock, err := a.backend()
	if err != nil {
		return err
	}
	_ = a.store.SetAuthStatus(models.AuthPending)

	sess, err := b.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		a.store.SetAuthError(api.Message(err))
		a.logger.Info(ctx, "login failed", "email", email, "mock", mock, "code", api.Code(err))
		return fmt.Errorf("login: %w", err)
	}

	a.store.LoginSuccess(sess.User, sess.AuthToken, sess.TokenExpiresAt)
	a.logger.Info(ctx, "login succeeded", "email", email, "mock", mock)
	return nil
}

func (a *authService) Register(ctx context.Context, email, password, fullName string) (*models.UserProfile, error) {
	if !validate.Email(email) {
		err := api.BadRequest("Please enter a valid email address.")
		a.store.SetAuthError(err.Message)
		return nil, err
	}

	b, mock, err := a.backend()
	if err != nil {
		return nil, err
	}
	_ = a.store.SetAuthStatus(models.AuthPending)

	u, err := b.Register(ctx, api.RegisterRequest{Email: email, Password: password, FullName: fullName})
	if err != nil {
		a.store.SetAuthError(api.Message(err))
		a.logger.Info(ctx, "registration failed", "email", email, "mock", mock, "code", api.Code(err))
		return nil, fmt.Errorf("register: %w", err)
	}

	a.store.SetAuthError("")
	_ = a.store.SetAuthStatus(models.AuthSucceeded)
	a.logger.Info(ctx, "registered", "email", email, "id", u.ID, "mock", mock)
	return u, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if b, _, err := a.backend(); err == nil {
		if err := b.Logout(ctx); err != nil {
			a.logger.Warn(ctx, "backend logout failed", "error", err)
		}
	}
	a.store.Logout()
	return nil
}

func (a *authService) RefreshProfile(ctx context.Context) (*models.UserProfile, error) {
	b, _, err := a.backend()
	if err != nil {
		return nil, err
	}

	u, err := b.FetchUserProfile(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthenticated) {
			a.logger.Info(ctx, "session no longer valid, logging out")
			a.store.Logout()
		}
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	// the backend slot can be replaced (e.g. by Register) while the token
	// stays; never merge another account into the session
	if cur := a.store.Auth().User; cur != nil && cur.ID != u.ID {
		a.logger.Warn(ctx, "profile belongs to another user, logging out",
			"session_id", cur.ID, "fetched_id", u.ID)
		a.store.Logout()
		return nil, fmt.Errorf("fetch profile: %w", ErrSessionMismatch)
	}

	a.store.UpdateUserProfile(models.UpdateFromProfile(u))
	return u, nil
}

func (a *authService) Ping(ctx context.Context) error {
	if a.store.Settings().MockAPIEnabled {
		return nil
	}
	if a.pinger == nil {
		return ErrNoBackend
	}
	return a.pinger.Ping(ctx)
}
