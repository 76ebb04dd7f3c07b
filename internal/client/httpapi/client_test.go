package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/codirector/internal/auth"
	"github.com/dmitrijs2005/codirector/internal/client/api"
	"github.com/dmitrijs2005/codirector/internal/client/mockapi"
	"github.com/dmitrijs2005/codirector/internal/logging"
	"github.com/dmitrijs2005/codirector/internal/server/rest"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	b, err := mockapi.New(mockapi.WithDelay(0))
	require.NoError(t, err)
	srv := httptest.NewServer(rest.NewRouter(b, logging.Nop{}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Scenario(t *testing.T) {
	srv := newTestServer(t)
	var token string
	c := New(srv.URL+"/api/", time.Second, WithTokenSource(func() string { return token }))
	ctx := context.Background()

	require.NoError(t, c.Ping(ctx))

	sess, err := c.Login(ctx, api.LoginRequest{Email: "user@example.com", Password: "password"})
	require.NoError(t, err)
	assert.True(t, sess.IsAuthenticated)
	assert.Equal(t, auth.DefaultToken, sess.AuthToken)
	assert.Equal(t, "user@example.com", sess.User.Email)
	token = sess.AuthToken

	u, err := c.FetchUserProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-123", u.ID)

	_, err = c.Login(ctx, api.LoginRequest{Email: "x@x.com", Password: "bad"})
	assert.ErrorIs(t, err, api.ErrInvalidCredentials)
	assert.Equal(t, "Invalid email or password.", api.Message(err))

	for i := 0; i < 2; i++ {
		_, err = c.Register(ctx, api.RegisterRequest{Email: "existing@example.com", Password: "x"})
		assert.ErrorIs(t, err, api.ErrEmailExists)
	}

	require.NoError(t, c.Logout(ctx))
	_, err = c.FetchUserProfile(ctx)
	assert.ErrorIs(t, err, api.ErrUnauthenticated)
}

func TestClient_RegisterNewUser(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL+"/api", time.Second)

	u, err := c.Register(context.Background(), api.RegisterRequest{Email: "new@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", u.Email)
	assert.False(t, u.IsEmailVerified)
	assert.Equal(t, "New User", u.FullName)
}

func TestClient_FetchWithoutTokenIsUnauthenticated(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL+"/api", time.Second)

	_, err := c.FetchUserProfile(context.Background())
	var e *api.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, http.StatusUnauthorized, e.StatusCode)
}

func TestClient_UnreachableIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(url, 200*time.Millisecond)
	_, err := c.Login(context.Background(), api.LoginRequest{Email: "a", Password: "b"})
	assert.ErrorIs(t, err, api.ErrUnavailable)
	assert.Equal(t, "Server unavailable.", api.Message(err))
}

func TestClient_NonEnvelopeIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, time.Second)
	err := c.Logout(context.Background())
	assert.ErrorIs(t, err, api.ErrUnavailable)
	assert.Contains(t, err.Error(), "502")
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, 50*time.Millisecond)
	err := c.Ping(context.Background())
	assert.ErrorIs(t, err, api.ErrUnavailable)
}

func TestClient_SendsBearerAndJSON(t *testing.T) {
	var gotAuth, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{"success":true,"data":null,"statusCode":200}`))
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, time.Second, WithTokenSource(func() string { return "abc" }))
	_, err := c.Login(context.Background(), api.LoginRequest{Email: "a", Password: "b"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", gotAuth)
	assert.Equal(t, "application/json", gotType)
}

func TestNew_Defaults(t *testing.T) {
	c := New("", 0)
	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, DefaultTimeout, c.http.Timeout)
}
