// Package mockapi is an in-process stand-in for the authentication service.
//
// A Backend holds a single "current user" slot and the token issued for it.
// Every call waits for a simulated network delay first, failures included.
// There is no package-level state: each Backend is an independent session,
// so tests can create one per case.
package mockapi

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/codirector/internal/auth"
	"github.com/dmitrijs2005/codirector/internal/client/api"
	"github.com/dmitrijs2005/codirector/internal/client/models"
	"github.com/dmitrijs2005/codirector/internal/cryptox"
	"github.com/dmitrijs2005/codirector/internal/logging"
)

const (
	// AcceptedEmail and acceptedPassword form the only valid login.
	AcceptedEmail    = "user@example.com"
	acceptedPassword = "password"

	// ReservedEmail is treated as already registered.
	ReservedEmail = "existing@example.com"

	DefaultDelay = 500 * time.Millisecond

	defaultFullName = "New User"
)

type Option func(*Backend)

func WithDelay(d time.Duration) Option {
	return func(b *Backend) { b.delay = d }
}

func WithIssuer(i auth.Issuer) Option {
	return func(b *Backend) { b.issuer = i }
}

func WithClock(now func() time.Time) Option {
	return func(b *Backend) { b.now = now }
}

func WithIDGenerator(gen func() string) Option {
	return func(b *Backend) { b.newID = gen }
}

func WithLogger(l logging.Logger) Option {
	return func(b *Backend) { b.log = l }
}

// Backend implements api.AuthAPI. It is safe for concurrent use; concurrent
// logins race for the single slot and the last one to resolve wins.
type Backend struct {
	delay  time.Duration
	issuer auth.Issuer
	now    func() time.Time
	newID  func() string
	log    logging.Logger

	salt     []byte
	verifier []byte

	mu    sync.Mutex
	user  *models.UserProfile
	token string
}

var _ api.AuthAPI = (*Backend)(nil)

func New(opts ...Option) (*Backend, error) {
	b := &Backend{
		delay:  DefaultDelay,
		issuer: auth.NewStaticIssuer(),
		now:    time.Now,
		newID:  newUserID,
		log:    logging.Nop{},
	}
	for _, o := range opts {
		o(b)
	}

	salt, err := cryptox.NewSalt()
	if err != nil {
		return nil, err
	}
	b.salt = salt
	b.verifier = cryptox.MakeVerifier(cryptox.DeriveKey([]byte(acceptedPassword), salt))

	return b, nil
}

func newUserID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "user-" + uuid.NewString()
	}
	return "user-" + id.String()
}

// wait simulates latency. It returns early only if ctx is cancelled.
func (b *Backend) wait(ctx context.Context) error {
	if b.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(b.delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (b *Backend) Login(ctx context.Context, req api.LoginRequest) (*api.AuthSession, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}

	if req.Email != AcceptedEmail || !cryptox.Verify([]byte(req.Password), b.salt, b.verifier) {
		b.log.Info(ctx, "mock login rejected", "email", req.Email)
		return nil, api.InvalidCredentials()
	}

	now := b.now()
	user := &models.UserProfile{
		ID:              "user-123",
		Email:           AcceptedEmail,
		FullName:        "Test User",
		DisplayName:     "TestUser",
		AvatarURL:       "https://via.placeholder.com/150",
		Roles:           []models.Role{models.RoleEditor},
		IsEmailVerified: true,
		IsActive:        true,
		CreatedAt:       now,
		LastUpdatedAt:   now,
	}

	token, err := b.issuer.Issue(user.ID, now)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	b.user = user
	b.token = token.Value
	b.mu.Unlock()

	b.log.Info(ctx, "mock login accepted", "user_id", user.ID)

	return &api.AuthSession{
		IsAuthenticated: true,
		User:            user.Clone(),
		AuthToken:       token.Value,
		TokenExpiresAt:  token.ExpiresAt,
		AuthStatus:      models.AuthSucceeded,
	}, nil
}

// Logout clears the slot and the token, then waits out the delay. It always
// succeeds; a cancelled ctx only cuts the delay short.
func (b *Backend) Logout(ctx context.Context) error {
	b.mu.Lock()
	b.user = nil
	b.token = ""
	b.mu.Unlock()

	_ = b.wait(ctx)
	return nil
}

// Register stores a new unverified viewer profile in the slot. It does not
// issue a token.
func (b *Backend) Register(ctx context.Context, req api.RegisterRequest) (*models.UserProfile, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}

	if req.Email == ReservedEmail {
		return nil, api.EmailExists()
	}

	fullName := req.FullName
	if fullName == "" {
		fullName = defaultFullName
	}

	now := b.now()
	user := &models.UserProfile{
		ID:              b.newID(),
		Email:           req.Email,
		FullName:        fullName,
		Roles:           []models.Role{models.RoleViewer},
		IsEmailVerified: false,
		IsActive:        true,
		CreatedAt:       now,
		LastUpdatedAt:   now,
	}

	b.mu.Lock()
	b.user = user
	b.mu.Unlock()

	b.log.Info(ctx, "mock user registered", "user_id", user.ID)

	return user.Clone(), nil
}

func (b *Backend) FetchUserProfile(ctx context.Context) (*models.UserProfile, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.user == nil || b.token == "" {
		return nil, api.Unauthenticated()
	}
	return b.user.Clone(), nil
}

// ValidateToken checks a bearer token presented over a transport against the
// currently issued one. It does not wait.
func (b *Backend) ValidateToken(token string) error {
	b.mu.Lock()
	current := b.token
	b.mu.Unlock()

	if current == "" || token != current {
		return api.Unauthenticated()
	}
	if _, err := b.issuer.Validate(token); err != nil {
		return api.Unauthenticated()
	}
	return nil
}

// Reset returns the backend to its freshly constructed state.
func (b *Backend) Reset() {
	b.mu.Lock()
	b.user = nil
	b.token = ""
	b.mu.Unlock()
}
