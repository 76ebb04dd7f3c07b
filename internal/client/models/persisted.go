package models

// PersistedState is the subset of both slices mirrored into durable storage.
// Auth status, auth error and development mode are deliberately absent.
type PersistedState struct {
	IsAuthenticated bool         `json:"isAuthenticated"`
	User            *UserProfile `json:"user"`
	AuthToken       *string      `json:"authToken"`
	ThemeMode       ThemeMode    `json:"themeMode"`
	MockAPIEnabled  bool         `json:"mockApiEnabled"`
	Language        string       `json:"language"`
}

// Persist extracts the persisted subset.
func Persist(a AuthState, s SettingsState) PersistedState {
	p := PersistedState{
		IsAuthenticated: a.IsAuthenticated,
		User:            a.User.Clone(),
		ThemeMode:       s.ThemeMode,
		MockAPIEnabled:  s.MockAPIEnabled,
		Language:        s.Language,
	}
	if a.AuthToken != "" {
		token := a.AuthToken
		p.AuthToken = &token
	}
	return p
}

// Equal compares two persisted snapshots field by field.
func (p PersistedState) Equal(o PersistedState) bool {
	if p.IsAuthenticated != o.IsAuthenticated ||
		p.ThemeMode != o.ThemeMode ||
		p.MockAPIEnabled != o.MockAPIEnabled ||
		p.Language != o.Language {
		return false
	}
	if (p.AuthToken == nil) != (o.AuthToken == nil) ||
		(p.AuthToken != nil && *p.AuthToken != *o.AuthToken) {
		return false
	}
	return profilesEqual(p.User, o.User)
}
