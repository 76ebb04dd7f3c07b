package models

import (
	"errors"
	"strings"
)

var ErrUnknownThemeMode = errors.New("unknown theme mode")

// ThemeMode selects the colour scheme.
type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"
)

func ParseThemeMode(s string) (ThemeMode, error) {
	switch m := ThemeMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ThemeLight, ThemeDark, ThemeSystem:
		return m, nil
	}
	return "", ErrUnknownThemeMode
}

// SettingsState is the settings slice. Fields are independent.
type SettingsState struct {
	ThemeMode       ThemeMode
	MockAPIEnabled  bool
	Language        string
	DevelopmentMode bool
}

// DefaultSettings returns the settings a fresh install starts with. Mock API
// and development mode follow the build's development flag.
func DefaultSettings(development bool) SettingsState {
	return SettingsState{
		ThemeMode:       ThemeSystem,
		MockAPIEnabled:  development,
		Language:        "en",
		DevelopmentMode: development,
	}
}
