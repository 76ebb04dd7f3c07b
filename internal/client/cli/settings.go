package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/codirector/internal/client/format"
	"github.com/dmitrijs2005/codirector/internal/client/models"
	"github.com/dmitrijs2005/codirector/internal/client/validate"
)

// now is a test seam for the status clock.
var now = time.Now

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Profile prints the signed-in user's profile.
func (a *App) Profile(_ context.Context) error {
	u := a.store.Auth().User
	if u == nil {
		printlnFn("Not logged in")
		return nil
	}

	printlnFn("ID:       ", u.ID)
	printlnFn("Email:    ", u.Email)
	printlnFn("Name:     ", u.FullName)
	if u.DisplayName != "" {
		printlnFn("Display:  ", u.DisplayName)
	}
	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, format.TitleCase(string(r)))
	}
	printlnFn("Roles:    ", strings.Join(roles, ", "))
	printlnFn("Verified: ", u.IsEmailVerified)
	printlnFn("Active:   ", u.IsActive)
	if !u.CreatedAt.IsZero() {
		printlnFn("Created:  ", format.Date(u.CreatedAt))
	}
	if !u.LastUpdatedAt.IsZero() {
		printlnFn("Updated:  ", format.Date(u.LastUpdatedAt))
	}
	return nil
}

// Theme sets the theme mode from args[0].
func (a *App) Theme(_ context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: theme <light|dark|system>")
		return ErrInvalidInput
	}
	mode, err := models.ParseThemeMode(args[0])
	if err != nil {
		printlnFn("Unknown theme:", args[0])
		return err
	}
	if err := a.store.SetThemeMode(mode); err != nil {
		return err
	}
	printlnFn("Theme:", mode)
	return nil
}

// Lang sets the interface language. The code is canonicalised first.
func (a *App) Lang(_ context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: lang <code>")
		return ErrInvalidInput
	}
	code, res := validate.Language(args[0])
	if !res.Valid {
		printlnFn(res.Message)
		return ErrInvalidInput
	}
	if err := a.store.SetLanguage(code); err != nil {
		return err
	}
	printlnFn("Language:", code)
	return nil
}

// Mock toggles between the in-process mock backend and the HTTP API.
func (a *App) Mock(_ context.Context) error {
	a.store.ToggleMockAPI()
	printlnFn("Mock API:", onOff(a.store.Settings().MockAPIEnabled))
	a.checkOnline()
	return nil
}

// Dev toggles development mode, or sets it with "on" / "off".
func (a *App) Dev(_ context.Context, args []string) error {
	if len(args) == 0 {
		a.store.ToggleDevelopmentMode()
	} else {
		switch strings.ToLower(args[0]) {
		case "on":
			a.store.SetDevelopmentMode(true)
		case "off":
			a.store.SetDevelopmentMode(false)
		default:
			printlnFn("Usage: dev [on|off]")
			return ErrInvalidInput
		}
	}
	printlnFn("Development mode:", onOff(a.store.Settings().DevelopmentMode))
	return nil
}

// Status prints the auth and settings slices.
func (a *App) Status(_ context.Context) error {
	snap := a.store.Snapshot()
	auth, set := snap.Auth, snap.Settings

	who := "-"
	if auth.User != nil {
		who = auth.User.Email
	}
	printlnFn("Authenticated:", auth.IsAuthenticated, "("+who+")")
	printlnFn("Auth status:  ", auth.Status)
	if auth.Error != "" {
		printlnFn("Auth error:   ", auth.Error)
	}
	if auth.TokenExpiresAt != nil {
		left := auth.TokenExpiresAt.Sub(now())
		if left > 0 {
			printlnFn("Token expires:", "in "+format.Duration(left))
		} else {
			printlnFn("Token expires:", "expired")
		}
	}
	printlnFn("Theme:        ", set.ThemeMode)
	printlnFn("Language:     ", set.Language)
	printlnFn("Mock API:     ", onOff(set.MockAPIEnabled))
	printlnFn("Development:  ", onOff(set.DevelopmentMode))
	printlnFn("Connectivity: ", fmt.Sprint(a.Mode()))
	return nil
}
