package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/codirector/internal/client/client"
	"github.com/dmitrijs2005/codirector/internal/client/config"
	"github.com/dmitrijs2005/codirector/internal/client/httpapi"
	"github.com/dmitrijs2005/codirector/internal/client/mockapi"
	"github.com/dmitrijs2005/codirector/internal/client/models"
	"github.com/dmitrijs2005/codirector/internal/client/services"
	"github.com/dmitrijs2005/codirector/internal/client/storage"
	"github.com/dmitrijs2005/codirector/internal/client/store"
	"github.com/dmitrijs2005/codirector/internal/logging"
)

// storageNamespace prefixes keys in shared backends such as Redis.
const storageNamespace = "codirector"

const pingTimeout = 3 * time.Second

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config      *config.Config
	store       *store.Store
	authService services.AuthService
	logger      logging.Logger
	reader      *bufio.Reader
	closers     []func() error

	modeMu sync.Mutex
	mode   Mode
}

// NewApp wires storage, the store, both backends and the auth service, then
// restores the persisted state.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	gate := logging.NewGate(logging.NewTextLogger(os.Stderr, true), c.DevelopmentMode)

	repo, closeRepo, err := storage.Open(ctx, storage.Options{
		Driver:        c.StorageDriver,
		DSN:           c.StorageDSN,
		RedisAddr:     c.RedisAddr,
		RedisPassword: c.RedisPassword,
		Namespace:     storageNamespace,
	})
	if err != nil {
		return nil, fmt.Errorf("error initializing storage: %w", err)
	}

	st := store.New(c.DevelopmentMode,
		store.WithLogger(gate),
		store.WithStorage(storage.NewLocal(repo, gate), c.StorageKey),
		store.WithSettings(models.SettingsState{
			ThemeMode:       models.ThemeSystem,
			MockAPIEnabled:  c.MockAPIEnabled,
			Language:        c.Language,
			DevelopmentMode: c.DevelopmentMode,
		}),
	)
	st.Rehydrate(ctx)

	mock, err := mockapi.New(mockapi.WithDelay(c.SimulatedDelay), mockapi.WithLogger(gate))
	if err != nil {
		_ = closeRepo()
		return nil, err
	}

	remote := httpapi.New(c.APIBaseURL, c.RequestTimeout,
		httpapi.WithTokenSource(func() string { return st.Auth().AuthToken }),
		httpapi.WithLogger(gate),
	)

	closers := []func() error{closeRepo}

	var pinger services.Pinger = remote
	if c.HealthAddr != "" {
		hc, err := client.NewHealthClient(c.HealthAddr)
		if err != nil {
			_ = closeRepo()
			return nil, err
		}
		pinger = hc
		closers = append(closers, hc.Close)
	}

	return &App{
		config:      c,
		store:       st,
		authService: services.NewAuthService(st, mock, remote, pinger, gate),
		logger:      gate,
		reader:      bufio.NewReader(os.Stdin),
		closers:     closers,
	}, nil
}

func (a *App) Mode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		a.logger.Info(context.Background(), "connectivity changed", "mode", mode)
	}
}

// Run starts the connectivity watcher and the REPL, and releases resources
// when the user exits.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.Close()

	printlnFn("Welcome to Co-Director CLI (type 'help' for commands)")

	a.checkOnline()
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) isLoggedIn() bool {
	return a.store.Auth().IsAuthenticated
}

func (a *App) checkOnline() {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := a.authService.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher pings the active backend every interval and
// updates the connectivity mode until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline()
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) getStatus() string {
	s := ""
	if u := a.store.Auth().User; u != nil {
		s = u.Email + " "
	}
	if a.store.Settings().MockAPIEnabled {
		s += "mock "
	}
	s += string(a.Mode())
	return fmt.Sprintf("(%s)", s)
}
