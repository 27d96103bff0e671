package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"volunteerHub/internal/lib/logger/handlers/slogdiscard"
)

func TestAllowBurstThenRefill(t *testing.T) {
	t.Parallel()

	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	l := New(slogdiscard.NewDiscardLogger(), 1, 2)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"), "other clients keep their own budget")

	now = now.Add(time.Second)
	assert.True(t, l.Allow("10.0.0.1"))
}

func TestSweep(t *testing.T) {
	t.Parallel()

	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	l := New(slogdiscard.NewDiscardLogger(), 1, 1)
	l.now = func() time.Time { return now }

	l.Allow("10.0.0.1")
	now = now.Add(20 * time.Minute)
	l.Allow("10.0.0.2")
	now = now.Add(15 * time.Minute)

	assert.Equal(t, 1, l.Sweep(30*time.Minute))
	assert.Len(t, l.visitors, 1)
	_, kept := l.visitors["10.0.0.2"]
	assert.True(t, kept)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	l := New(slogdiscard.NewDiscardLogger(), 0.001, 1)

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("Default answer", func(t *testing.T) {
		h := l.Middleware(nil)(ok)

		req := httptest.NewRequest(http.MethodPost, "/auth/sign-in", nil)
		req.RemoteAddr = "192.0.2.10:5555"

		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNoContent, rr.Code)

		rr = httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	})

	t.Run("Custom handler", func(t *testing.T) {
		h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/auth", http.StatusSeeOther)
		}))(ok)

		req := httptest.NewRequest(http.MethodPost, "/auth/sign-in", nil)
		req.RemoteAddr = "192.0.2.10:6666"

		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusSeeOther, rr.Code)
	})
}
