package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleUser() *UserProfile {
	ts := time.Date(2025, 5, 23, 12, 0, 0, 0, time.UTC)
	return &UserProfile{
		ID:              "user-123",
		Email:           "user@example.com",
		FullName:        "Test User",
		Roles:           []Role{RoleEditor},
		IsEmailVerified: true,
		IsActive:        true,
		CreatedAt:       ts,
		LastUpdatedAt:   ts,
		Preferences:     map[string]string{"fontSize": "medium"},
	}
}

func TestUserProfile_CloneIsDeep(t *testing.T) {
	u := sampleUser()
	c := u.Clone()

	c.Roles[0] = RoleAdmin
	c.Preferences["fontSize"] = "large"

	assert.Equal(t, RoleEditor, u.Roles[0])
	assert.Equal(t, "medium", u.Preferences["fontSize"])

	var nilUser *UserProfile
	assert.Nil(t, nilUser.Clone())
}

func TestProfileUpdate_Apply(t *testing.T) {
	u := sampleUser()
	name := "Renamed"
	verified := false

	ProfileUpdate{
		FullName:        &name,
		IsEmailVerified: &verified,
		Preferences:     map[string]string{"language": "es"},
	}.Apply(u)

	assert.Equal(t, "Renamed", u.FullName)
	assert.False(t, u.IsEmailVerified)
	assert.Equal(t, "user@example.com", u.Email)
	assert.Equal(t, "user-123", u.ID)
	assert.Equal(t, map[string]string{"fontSize": "medium", "language": "es"}, u.Preferences)
}

func TestAuthState_Check(t *testing.T) {
	ok := InitialAuthState()
	require.NoError(t, ok.Check())

	authed := AuthState{IsAuthenticated: true, User: sampleUser(), AuthToken: "t", Status: AuthSucceeded}
	require.NoError(t, authed.Check())

	noToken := AuthState{IsAuthenticated: true, User: sampleUser(), Status: AuthSucceeded}
	assert.Error(t, noToken.Check())

	failedNoErr := AuthState{Status: AuthFailed}
	assert.Error(t, failedNoErr.Check())

	unknown := AuthState{Status: "checking"}
	assert.Error(t, unknown.Check())
}

func TestParseThemeMode(t *testing.T) {
	m, err := ParseThemeMode(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, m)

	_, err = ParseThemeMode("sepia")
	assert.ErrorIs(t, err, ErrUnknownThemeMode)
}

func TestPersistedState_JSONKeys(t *testing.T) {
	a := AuthState{IsAuthenticated: true, User: sampleUser(), AuthToken: "tok", Status: AuthSucceeded, Error: "ignored"}
	s := SettingsState{ThemeMode: ThemeDark, MockAPIEnabled: true, Language: "en", DevelopmentMode: true}

	b, err := json.Marshal(Persist(a, s))
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &raw))

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"isAuthenticated", "user", "authToken", "themeMode", "mockApiEnabled", "language"}, keys)
}

func TestPersistedState_RoundTripEqual(t *testing.T) {
	a := AuthState{IsAuthenticated: true, User: sampleUser(), AuthToken: "tok", Status: AuthSucceeded}
	s := SettingsState{ThemeMode: ThemeLight, Language: "fr"}
	p := Persist(a, s)

	b, err := json.Marshal(p)
	require.NoError(t, err)

	var back PersistedState
	require.NoError(t, json.Unmarshal(b, &back))

	assert.True(t, p.Equal(back))

	back.Language = "de"
	assert.False(t, p.Equal(back))
}
