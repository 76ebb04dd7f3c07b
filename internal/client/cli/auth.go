package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/codirector/internal/client/api"
	"github.com/dmitrijs2005/codirector/internal/client/validate"
	"github.com/dmitrijs2005/codirector/internal/cryptox"
)

var ErrInvalidInput = errors.New("invalid input")

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for email, full name and password and creates an account.
// Registration does not log in.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", stdout)
	if err != nil {
		return err
	}
	if !validate.Email(email) {
		printlnFn("Please enter a valid email address.")
		return ErrInvalidInput
	}

	fullName, err := getSimpleText(a.reader, "Enter full name (optional)", stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(stdout)
	if err != nil {
		return err
	}
	defer cryptox.Wipe(password)

	if res := validate.Password(string(password), validate.DefaultPasswordPolicy); !res.Valid {
		printlnFn(res.Message)
		return ErrInvalidInput
	}

	u, err := a.authService.Register(ctx, email, string(password), fullName)
	if err != nil {
		printlnFn("Registration failed:", api.Message(err))
		return err
	}

	printlnFn("Registered", u.Email+". You can now log in.")
	return nil
}

// Login prompts for credentials and authenticates against the active
// backend. The failure message shown is the one recorded in the store.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(stdout)
	if err != nil {
		return err
	}
	defer cryptox.Wipe(password)

	if err := a.authService.Login(ctx, email, string(password)); err != nil {
		printlnFn("Login unsuccessful:", api.Message(err))
		return err
	}

	printlnFn("Login successful")
	return nil
}

// Logout ends the session. Local auth state is cleared even when the
// backend call fails.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in")
		return nil
	}
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out")
	return nil
}

// Refresh reloads the current user's profile from the backend.
func (a *App) Refresh(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in")
		return nil
	}
	if _, err := a.authService.RefreshProfile(ctx); err != nil {
		printlnFn("Refresh failed:", api.Message(err))
		return err
	}
	return a.Profile(ctx)
}
