// Package store is the single source of truth for the client's auth and
// settings state.
//
// Consumers read deep-copied snapshots and change state only through the
// named actions. Every action commits atomically under one lock; when the
// persisted subset of the state changed, it is written to local storage
// before the lock is released, and subscribers are notified afterwards.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/codirector/internal/client/models"
	"github.com/dmitrijs2005/codirector/internal/client/storage"
	"github.com/dmitrijs2005/codirector/internal/logging"
)

// DefaultStorageKey names the local storage entry holding the persisted state.
const DefaultStorageKey = "app-storage"

var (
	ErrInvalidStatus      = errors.New("invalid auth status")
	ErrFailedWithoutError = errors.New("failed status requires an auth error")
	ErrEmptyLanguage      = errors.New("language must not be empty")
)

// DevLogger is a logger whose output follows development mode.
// *logging.Gate implements it.
type DevLogger interface {
	logging.Logger
	SetDevMode(on bool)
	Enabled() bool
}

// Snapshot is a point-in-time copy of both slices.
type Snapshot struct {
	Auth     models.AuthState
	Settings models.SettingsState
}

func (s Snapshot) clone() Snapshot {
	return Snapshot{Auth: s.Auth.Clone(), Settings: s.Settings}
}

// Listener receives the committed state and the state before the commit.
type Listener func(next, prev Snapshot)

type Store struct {
	mu    sync.Mutex
	state Snapshot

	log        DevLogger
	local      *storage.Local
	storageKey string
	persisted  models.PersistedState

	listenersMu sync.Mutex
	listeners   map[int]Listener
	nextID      int
}

type Option func(*Store)

// WithLogger sets the development logger. Its switch is kept equal to the
// DevelopmentMode setting for the life of the store.
func WithLogger(l DevLogger) Option {
	return func(s *Store) { s.log = l }
}

// WithStorage enables persistence of the persisted subset under key.
func WithStorage(local *storage.Local, key string) Option {
	return func(s *Store) {
		s.local = local
		if key != "" {
			s.storageKey = key
		}
	}
}

// WithSettings overrides the initial settings.
func WithSettings(settings models.SettingsState) Option {
	return func(s *Store) { s.state.Settings = settings }
}

// New returns a store in the initial state: idle and unauthenticated, with
// settings from DefaultSettings(development) unless overridden.
func New(development bool, opts ...Option) *Store {
	s := &Store{
		state: Snapshot{
			Auth:     models.InitialAuthState(),
			Settings: models.DefaultSettings(development),
		},
		storageKey: DefaultStorageKey,
		listeners:  make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logging.NewGate(logging.Nop{}, false)
	}
	s.log.SetDevMode(s.state.Settings.DevelopmentMode)
	s.persisted = models.Persist(s.state.Auth, s.state.Settings)
	return s
}

func (s *Store) Auth() models.AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Auth.Clone()
}

func (s *Store) Settings() models.SettingsState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Settings
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers fn to run after every commit and returns a function
// that removes it. Listeners run synchronously, outside the state lock, in
// no particular order.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.listenersMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.listenersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.listenersMu.Lock()
			delete(s.listeners, id)
			s.listenersMu.Unlock()
		})
	}
}

// commit applies mutate to the state. If mutate returns an error nothing is
// committed.
func (s *Store) commit(action string, mutate func(st *Snapshot) error) error {
	ctx := context.Background()

	s.mu.Lock()
	prev := s.state.clone()
	next := s.state.clone()
	if err := mutate(&next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.state = next
	s.log.SetDevMode(next.Settings.DevelopmentMode)
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.log.Debug(ctx, "store changed", "action", action,
		"auth_status", next.Auth.Status,
		"authenticated", next.Auth.IsAuthenticated,
		"theme", next.Settings.ThemeMode,
		"mock_api", next.Settings.MockAPIEnabled,
		"language", next.Settings.Language,
	)
	s.notify(next.clone(), prev)
	return nil
}

func (s *Store) persistLocked(ctx context.Context) {
	p := models.Persist(s.state.Auth, s.state.Settings)
	if p.Equal(s.persisted) {
		return
	}
	s.persisted = p
	if s.local != nil {
		s.local.SetItem(ctx, s.storageKey, p)
	}
}

func (s *Store) notify(next, prev Snapshot) {
	s.listenersMu.Lock()
	fns := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.listenersMu.Unlock()

	for _, fn := range fns {
		fn(next.clone(), prev.clone())
	}
}

// LoginSuccess commits a successful login. IsAuthenticated is set only when
// both user and token are present. A zero expiresAt means no expiry is
// known.
func (s *Store) LoginSuccess(user *models.UserProfile, token string, expiresAt time.Time) {
	_ = s.commit("loginSuccess", func(st *Snapshot) error {
		a := models.AuthState{
			User:      user.Clone(),
			AuthToken: token,
			Status:    models.AuthSucceeded,
		}
		a.IsAuthenticated = a.User != nil && a.AuthToken != ""
		if token != "" && !expiresAt.IsZero() {
			t := expiresAt
			a.TokenExpiresAt = &t
		}
		st.Auth = a
		return nil
	})
}

// Logout resets the whole auth slice.
func (s *Store) Logout() {
	_ = s.commit("logout", func(st *Snapshot) error {
		st.Auth = models.InitialAuthState()
		return nil
	})
}

// SetAuthStatus sets the request status. AuthFailed is only accepted when an
// error is already recorded; use SetAuthError to fail with a message.
func (s *Store) SetAuthStatus(status models.AuthStatus) error {
	return s.commit("setAuthStatus", func(st *Snapshot) error {
		if !status.Valid() {
			return ErrInvalidStatus
		}
		if status == models.AuthFailed && st.Auth.Error == "" {
			return ErrFailedWithoutError
		}
		st.Auth.Status = status
		return nil
	})
}

// SetAuthError records msg and marks the status failed. An empty msg clears
// the error; a failed status then falls back to idle.
func (s *Store) SetAuthError(msg string) {
	_ = s.commit("setAuthError", func(st *Snapshot) error {
		st.Auth.Error = msg
		switch {
		case msg != "":
			st.Auth.Status = models.AuthFailed
		case st.Auth.Status == models.AuthFailed:
			st.Auth.Status = models.AuthIdle
		}
		return nil
	})
}

// UpdateUserProfile merges u into the current user. It is a no-op when no
// user is set.
func (s *Store) UpdateUserProfile(u models.ProfileUpdate) {
	_ = s.commit("updateUserProfile", func(st *Snapshot) error {
		if st.Auth.User != nil {
			u.Apply(st.Auth.User)
		}
		return nil
	})
}

func (s *Store) SetThemeMode(mode models.ThemeMode) error {
	return s.commit("setThemeMode", func(st *Snapshot) error {
		if _, err := models.ParseThemeMode(string(mode)); err != nil {
			return err
		}
		st.Settings.ThemeMode = mode
		return nil
	})
}

func (s *Store) ToggleMockAPI() {
	_ = s.commit("toggleMockApi", func(st *Snapshot) error {
		st.Settings.MockAPIEnabled = !st.Settings.MockAPIEnabled
		return nil
	})
}

func (s *Store) SetLanguage(lang string) error {
	return s.commit("setLanguage", func(st *Snapshot) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		st.Settings.Language = lang
		return nil
	})
}

func (s *Store) ToggleDevelopmentMode() {
	_ = s.commit("toggleDevelopmentMode", func(st *Snapshot) error {
		st.Settings.DevelopmentMode = !st.Settings.DevelopmentMode
		return nil
	})
}

func (s *Store) SetDevelopmentMode(on bool) {
	_ = s.commit("setDevelopmentMode", func(st *Snapshot) error {
		st.Settings.DevelopmentMode = on
		return nil
	})
}
