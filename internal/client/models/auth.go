package models

import (
	"fmt"
	"time"
)

// AuthStatus tracks the progress of the last auth request.
type AuthStatus string

const (
	AuthIdle      AuthStatus = "idle"
	AuthPending   AuthStatus = "pending"
	AuthSucceeded AuthStatus = "succeeded"
	AuthFailed    AuthStatus = "failed"
)

func (s AuthStatus) Valid() bool {
	switch s {
	case AuthIdle, AuthPending, AuthSucceeded, AuthFailed:
		return true
	}
	return false
}

// AuthState is the auth slice.
//
// Invariants: IsAuthenticated holds exactly when both User and AuthToken are
// set, and Status == AuthFailed implies a non-empty Error.
type AuthState struct {
	IsAuthenticated bool
	User            *UserProfile
	AuthToken       string
	TokenExpiresAt  *time.Time
	Status          AuthStatus
	Error           string
}

// InitialAuthState is the idle, unauthenticated slice.
func InitialAuthState() AuthState {
	return AuthState{Status: AuthIdle}
}

func (a AuthState) Clone() AuthState {
	c := a
	c.User = a.User.Clone()
	if a.TokenExpiresAt != nil {
		t := *a.TokenExpiresAt
		c.TokenExpiresAt = &t
	}
	return c
}

// Check reports the first violated invariant, if any.
func (a AuthState) Check() error {
	if a.IsAuthenticated != (a.User != nil && a.AuthToken != "") {
		return fmt.Errorf("isAuthenticated=%t with user=%t token=%t",
			a.IsAuthenticated, a.User != nil, a.AuthToken != "")
	}
	if a.Status == AuthFailed && a.Error == "" {
		return fmt.Errorf("status %q without error", a.Status)
	}
	if !a.Status.Valid() {
		return fmt.Errorf("unknown status %q", a.Status)
	}
	return nil
}
