package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/codirector/internal/client/api"
	"github.com/dmitrijs2005/codirector/internal/client/mockapi"
	"github.com/dmitrijs2005/codirector/internal/client/models"
	"github.com/dmitrijs2005/codirector/internal/client/store"
)

// ---- fake backend ----

type fakeAPI struct {
	loginSess *api.AuthSession
	loginErr  error
	logoutErr error
	regUser   *models.UserProfile
	regErr    error
	fetchUser *models.UserProfile
	fetchErr  error

	// observed store status at call time
	statusDuringCall models.AuthStatus
	st               *store.Store

	loginCalls, logoutCalls, registerCalls, fetchCalls int
}

func (f *fakeAPI) observe() {
	if f.st != nil {
		f.statusDuringCall = f.st.Auth().Status
	}
}

func (f *fakeAPI) Login(ctx context.Context, req api.LoginRequest) (*api.AuthSession, error) {
	f.loginCalls++
	f.observe()
	return f.loginSess, f.loginErr
}

func (f *fakeAPI) Logout(ctx context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

func (f *fakeAPI) Register(ctx context.Context, req api.RegisterRequest) (*models.UserProfile, error) {
	f.registerCalls++
	f.observe()
	return f.regUser, f.regErr
}

func (f *fakeAPI) FetchUserProfile(ctx context.Context) (*models.UserProfile, error) {
	f.fetchCalls++
	return f.fetchUser, f.fetchErr
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

func newMock(t *testing.T) *mockapi.Backend {
	t.Helper()
	b, err := mockapi.New(mockapi.WithDelay(0))
	require.NoError(t, err)
	return b
}

func TestLogin_Scenario(t *testing.T) {
	st := store.New(true)
	svc := NewAuthService(st, newMock(t), nil, nil, nil)
	ctx := context.Background()

	require.NoError(t, svc.Login(ctx, "user@example.com", "password"))
	a := st.Auth()
	assert.True(t, a.IsAuthenticated)
	assert.NotEmpty(t, a.AuthToken)
	assert.Equal(t, "user@example.com", a.User.Email)
	require.NotNil(t, a.TokenExpiresAt)

	err := svc.Login(ctx, "x@x.com", "bad")
	assert.ErrorIs(t, err, api.ErrInvalidCredentials)
	a = st.Auth()
	assert.Equal(t, models.AuthFailed, a.Status)
	assert.Equal(t, "Invalid email or password.", a.Error)
	assert.NoError(t, a.Check())

	_, err = svc.Register(ctx, "existing@example.com", "Secret1!", "")
	assert.ErrorIs(t, err, api.ErrEmailExists)
	_, err = svc.Register(ctx, "existing@example.com", "Secret1!", "")
	assert.ErrorIs(t, err, api.ErrEmailExists)

	require.NoError(t, svc.Logout(ctx))
	assert.Equal(t, models.InitialAuthState(), st.Auth())

	_, err = svc.RefreshProfile(ctx)
	assert.ErrorIs(t, err, api.ErrUnauthenticated)
}

func TestLogin_SetsPendingDuringCall(t *testing.T) {
	st := store.New(true)
	f := &fakeAPI{st: st, loginSess: &api.AuthSession{
		User:           &models.UserProfile{ID: "u1", Email: "a@b.co"},
		AuthToken:      "tok",
		TokenExpiresAt: time.Now().Add(time.Hour),
	}}
	svc := NewAuthService(st, f, nil, nil, nil)

	require.NoError(t, svc.Login(context.Background(), "a@b.co", "pw"))
	assert.Equal(t, models.AuthPending, f.statusDuringCall)
	assert.Equal(t, models.AuthSucceeded, st.Auth().Status)
}

func TestBackendSelection(t *testing.T) {
	mock := &fakeAPI{loginErr: api.InvalidCredentials()}
	remote := &fakeAPI{loginErr: api.InvalidCredentials()}
	ctx := context.Background()

	st := store.New(true)
	svc := NewAuthService(st, mock, remote, nil, nil)

	_ = svc.Login(ctx, "a@b.co", "x")
	assert.Equal(t, 1, mock.loginCalls)
	assert.Equal(t, 0, remote.loginCalls)

	st.ToggleMockAPI()
	_ = svc.Login(ctx, "a@b.co", "x")
	assert.Equal(t, 1, mock.loginCalls)
	assert.Equal(t, 1, remote.loginCalls)
}

func TestNoRemoteConfigured(t *testing.T) {
	st := store.New(false)
	svc := NewAuthService(st, &fakeAPI{}, nil, nil, nil)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Login(ctx, "a@b.co", "x"), ErrNoBackend)
	assert.Equal(t, models.AuthIdle, st.Auth().Status)

	_, err := svc.RefreshProfile(ctx)
	assert.ErrorIs(t, err, ErrNoBackend)
	assert.ErrorIs(t, svc.Ping(ctx), ErrNoBackend)

	// logout still clears local state
	st.LoginSuccess(&models.UserProfile{ID: "u"}, "tok", time.Time{})
	require.NoError(t, svc.Logout(ctx))
	assert.False(t, st.Auth().IsAuthenticated)
}

func TestRegister(t *testing.T) {
	st := store.New(true)
	svc := NewAuthService(st, newMock(t), nil, nil, nil)
	ctx := context.Background()

	u, err := svc.Register(ctx, "new@example.com", "Secret1!", "Ada")
	require.NoError(t, err)
	assert.Equal(t, "Ada", u.FullName)
	assert.False(t, u.IsEmailVerified)

	a := st.Auth()
	assert.False(t, a.IsAuthenticated, "registration does not log in")
	assert.Equal(t, models.AuthSucceeded, a.Status)
	assert.Empty(t, a.Error)
}

func TestRegister_InvalidEmail(t *testing.T) {
	st := store.New(true)
	f := &fakeAPI{}
	svc := NewAuthService(st, f, nil, nil, nil)

	_, err := svc.Register(context.Background(), "not-an-email", "x", "")
	assert.ErrorIs(t, err, api.ErrBadRequest)
	assert.Zero(t, f.registerCalls)
	assert.Equal(t, models.AuthFailed, st.Auth().Status)
}

func TestLogout_BackendErrorIgnored(t *testing.T) {
	st := store.New(true)
	f := &fakeAPI{logoutErr: errors.New("boom")}
	svc := NewAuthService(st, f, nil, nil, nil)
	st.LoginSuccess(&models.UserProfile{ID: "u"}, "tok", time.Time{})

	require.NoError(t, svc.Logout(context.Background()))
	assert.Equal(t, 1, f.logoutCalls)
	assert.Equal(t, models.InitialAuthState(), st.Auth())
}

func TestRefreshProfile(t *testing.T) {
	st := store.New(true)
	f := &fakeAPI{fetchUser: &models.UserProfile{ID: "u", Email: "new@b.co", FullName: "Renamed"}}
	svc := NewAuthService(st, f, nil, nil, nil)
	st.LoginSuccess(&models.UserProfile{ID: "u", Email: "a@b.co"}, "tok", time.Time{})

	u, err := svc.RefreshProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Renamed", u.FullName)
	assert.Equal(t, "Renamed", st.Auth().User.FullName)
	assert.Equal(t, "new@b.co", st.Auth().User.Email)
	assert.True(t, st.Auth().IsAuthenticated)
}

func TestRefreshProfile_UnauthenticatedLogsOut(t *testing.T) {
	st := store.New(true)
	f := &fakeAPI{fetchErr: api.Unauthenticated()}
	svc := NewAuthService(st, f, nil, nil, nil)
	st.LoginSuccess(&models.UserProfile{ID: "u"}, "tok", time.Time{})

	_, err := svc.RefreshProfile(context.Background())
	assert.ErrorIs(t, err, api.ErrUnauthenticated)
	assert.False(t, st.Auth().IsAuthenticated)
}

func TestRefreshProfile_RegisterAfterLoginDoesNotMixAccounts(t *testing.T) {
	st := store.New(true)
	svc := NewAuthService(st, newMock(t), nil, nil, nil)
	ctx := context.Background()

	require.NoError(t, svc.Login(ctx, "user@example.com", "password"))
	loggedIn := st.Auth().User.Clone()

	_, err := svc.Register(ctx, "other@example.com", "Secret1!", "Other")
	require.NoError(t, err)

	u, err := svc.RefreshProfile(ctx)
	assert.Nil(t, u)
	assert.ErrorIs(t, err, ErrSessionMismatch)

	a := st.Auth()
	assert.False(t, a.IsAuthenticated)
	assert.Nil(t, a.User)
	assert.NoError(t, a.Check())
	assert.Equal(t, "user@example.com", loggedIn.Email)
}

func TestRefreshProfile_DifferentIDLogsOut(t *testing.T) {
	st := store.New(true)
	f := &fakeAPI{fetchUser: &models.UserProfile{ID: "someone-else", Email: "x@b.co"}}
	svc := NewAuthService(st, f, nil, nil, nil)
	st.LoginSuccess(&models.UserProfile{ID: "u", Email: "a@b.co"}, "tok", time.Time{})

	_, err := svc.RefreshProfile(context.Background())
	assert.ErrorIs(t, err, ErrSessionMismatch)
	assert.Equal(t, models.InitialAuthState(), st.Auth())
}

func TestRefreshProfile_OtherErrorsKeepSession(t *testing.T) {
	st := store.New(true)
	f := &fakeAPI{fetchErr: api.ErrUnavailable}
	svc := NewAuthService(st, f, nil, nil, nil)
	st.LoginSuccess(&models.UserProfile{ID: "u"}, "tok", time.Time{})

	_, err := svc.RefreshProfile(context.Background())
	assert.ErrorIs(t, err, api.ErrUnavailable)
	assert.True(t, st.Auth().IsAuthenticated)
}

func TestPing(t *testing.T) {
	st := store.New(true)
	down := errors.New("down")
	svc := NewAuthService(st, &fakeAPI{}, &fakeAPI{}, fakePinger{err: down}, nil)
	ctx := context.Background()

	assert.NoError(t, svc.Ping(ctx), "mock backend is always reachable")

	st.ToggleMockAPI()
	assert.ErrorIs(t, svc.Ping(ctx), down)
}
