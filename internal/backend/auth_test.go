package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"testing"

	"volunteerHub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginFromCookie(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)

		var body loginRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, loginRequest{Email: "a@b.c", Password: "secret"}, body)

		http.SetCookie(w, &http.Cookie{Name: "refresh_token", Value: "r"})
		http.SetCookie(w, &http.Cookie{Name: AccessTokenCookie, Value: "jwt-token"})
		_, _ = io.WriteString(w, `{"message": "Login successful"}`)
	}))

	creds, err := c.Login(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", creds.Token)
}

func TestLoginFromBody(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"token": "body-token"}`)
	}))

	creds, err := c.Login(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)
	assert.Equal(t, "body-token", creds.Token)
}

func TestLoginWithoutToken(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"message": "Login successful"}`)
	}))

	_, err := c.Login(context.Background(), "a@b.c", "secret")
	require.Error(t, err)
	assert.Equal(t, "login response carried no session token", Message(err, ""))
}

func TestLoginRejected(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error": "Invalid email or password"}`)
	}))

	_, err := c.Login(context.Background(), "a@b.c", "wrong")
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, "Invalid email or password", Message(err, "Sign in failed"))
}

func TestRegisterAndLogout(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var paths []string

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.Method+" "+r.URL.Path)
		mu.Unlock()

		if r.URL.Path == "/api/v1/auth/register" {
			var body models.RegisterRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Dung", body.FullName)
			assert.Equal(t, "0900000000", body.PhoneNumber)
		}

		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, c.Register(context.Background(), models.RegisterRequest{
		Email:       "d@e.f",
		Password:    "secret1",
		FullName:    "Dung",
		PhoneNumber: "0900000000",
	}))
	require.NoError(t, c.Logout(authed("tok")))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"POST /api/v1/auth/register", "POST /api/v1/auth/logout"}, paths)
}
