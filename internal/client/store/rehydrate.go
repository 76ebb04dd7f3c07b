package store

import (
	"context"

	"github.com/dmitrijs2005/codirector/internal/client/models"
)

// Rehydrate loads the persisted subset from local storage. A missing or
// unreadable entry leaves the current state as is. Auth data that does not
// satisfy the auth invariants is discarded.
func (s *Store) Rehydrate(ctx context.Context) bool {
	if s.local == nil {
		return false
	}

	var p models.PersistedState
	if !s.local.GetItem(ctx, s.storageKey, &p) {
		return false
	}

	err := s.commit("rehydrate", func(st *Snapshot) error {
		if mode, err := models.ParseThemeMode(string(p.ThemeMode)); err == nil {
			st.Settings.ThemeMode = mode
		}
		st.Settings.MockAPIEnabled = p.MockAPIEnabled
		if p.Language != "" {
			st.Settings.Language = p.Language
		}

		a := models.InitialAuthState()
		a.IsAuthenticated = p.IsAuthenticated
		a.User = p.User
		if p.AuthToken != nil {
			a.AuthToken = *p.AuthToken
		}
		if err := a.Check(); err != nil {
			s.log.Warn(ctx, "discarding persisted auth state", "error", err)
			a = models.InitialAuthState()
		}
		st.Auth = a
		return nil
	})
	return err == nil
}
