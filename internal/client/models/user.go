// Package models defines the client-side data model: user profiles, the
// auth and settings slices, and the persisted subset of both.
package models

import (
	"maps"
	"slices"
	"time"
)

// Role is a permission group assigned to a user.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
	RoleGuest  Role = "guest"
)

// UserProfile is the account record returned by the backend.
type UserProfile struct {
	ID              string            `json:"id"`
	Email           string            `json:"email"`
	FullName        string            `json:"fullName,omitempty"`
	DisplayName     string            `json:"displayName,omitempty"`
	AvatarURL       string            `json:"avatarUrl,omitempty"`
	Roles           []Role            `json:"roles"`
	IsEmailVerified bool              `json:"isEmailVerified"`
	IsActive        bool              `json:"isActive"`
	CreatedAt       time.Time         `json:"createdAt"`
	LastUpdatedAt   time.Time         `json:"lastUpdatedAt"`
	Preferences     map[string]string `json:"preferences,omitempty"`
}

// Clone returns a deep copy. A nil receiver yields nil.
func (u *UserProfile) Clone() *UserProfile {
	if u == nil {
		return nil
	}
	c := *u
	c.Roles = slices.Clone(u.Roles)
	c.Preferences = maps.Clone(u.Preferences)
	return &c
}

func (u *UserProfile) HasRole(r Role) bool {
	return u != nil && slices.Contains(u.Roles, r)
}

// ProfileUpdate lists the profile fields to change. Nil fields are left
// alone; the ID is not updatable.
type ProfileUpdate struct {
	Email           *string
	FullName        *string
	DisplayName     *string
	AvatarURL       *string
	Roles           []Role
	IsEmailVerified *bool
	IsActive        *bool
	LastUpdatedAt   *time.Time
	// Preferences are merged key by key.
	Preferences map[string]string
}

// Apply merges the update into u in place.
func (p ProfileUpdate) Apply(u *UserProfile) {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.DisplayName != nil {
		u.DisplayName = *p.DisplayName
	}
	if p.AvatarURL != nil {
		u.AvatarURL = *p.AvatarURL
	}
	if p.Roles != nil {
		u.Roles = slices.Clone(p.Roles)
	}
	if p.IsEmailVerified != nil {
		u.IsEmailVerified = *p.IsEmailVerified
	}
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
	if p.LastUpdatedAt != nil {
		u.LastUpdatedAt = *p.LastUpdatedAt
	}
	if len(p.Preferences) > 0 {
		if u.Preferences == nil {
			u.Preferences = make(map[string]string, len(p.Preferences))
		}
		maps.Copy(u.Preferences, p.Preferences)
	}
}

// UpdateFromProfile builds an update that overwrites every mutable field
// with the values of u.
func UpdateFromProfile(u *UserProfile) ProfileUpdate {
	return ProfileUpdate{
		Email:           &u.Email,
		FullName:        &u.FullName,
		DisplayName:     &u.DisplayName,
		AvatarURL:       &u.AvatarURL,
		Roles:           slices.Clone(u.Roles),
		IsEmailVerified: &u.IsEmailVerified,
		IsActive:        &u.IsActive,
		LastUpdatedAt:   &u.LastUpdatedAt,
		Preferences:     maps.Clone(u.Preferences),
	}
}

func profilesEqual(a, b *UserProfile) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID &&
		a.Email == b.Email &&
		a.FullName == b.FullName &&
		a.DisplayName == b.DisplayName &&
		a.AvatarURL == b.AvatarURL &&
		slices.Equal(a.Roles, b.Roles) &&
		a.IsEmailVerified == b.IsEmailVerified &&
		a.IsActive == b.IsActive &&
		a.CreatedAt.Equal(b.CreatedAt) &&
		a.LastUpdatedAt.Equal(b.LastUpdatedAt) &&
		maps.Equal(a.Preferences, b.Preferences)
}
