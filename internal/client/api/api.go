// Package api is the transport-agnostic contract between the client and an
// authentication backend.
//
// Domain failures are returned as *Error values carrying a code, a message
// and an HTTP-like status. They unwrap to the sentinels in this package:
//
//	if errors.Is(err, api.ErrInvalidCredentials) { ... }
//
// Two implementations exist: the in-process mock (package mockapi) and an
// HTTP JSON client (package httpapi).
package api

import (
	"context"
	"time"

	"github.com/dmitrijs2005/codirector/internal/client/models"
)

// AuthAPI is the authentication backend.
type AuthAPI interface {
	Login(ctx context.Context, req LoginRequest) (*AuthSession, error)
	Logout(ctx context.Context) error
	Register(ctx context.Context, req RegisterRequest) (*models.UserProfile, error)
	FetchUserProfile(ctx context.Context) (*models.UserProfile, error)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName,omitempty"`
}

// AuthSession is the payload of a successful login.
type AuthSession struct {
	IsAuthenticated bool                `json:"isAuthenticated"`
	User            *models.UserProfile `json:"user"`
	AuthToken       string              `json:"authToken"`
	TokenExpiresAt  time.Time           `json:"tokenExpiresAt"`
	AuthStatus      models.AuthStatus   `json:"authStatus"`
}
