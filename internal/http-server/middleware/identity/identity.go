// Package identity resolves who is behind each request before any page runs.
package identity

import (
	"context"
	"log/slog"
	"net/http"

	"volunteerHub/internal/backend"
	"volunteerHub/internal/session"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Prober
type Prober interface {
	Probe(ctx context.Context, creds backend.Credentials) session.State
}

type TokenStore interface {
	Load(r *http.Request) backend.Credentials
	Clear(w http.ResponseWriter)
}

func New(log *slog.Logger, prober Prober, store TokenStore) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/identity"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			creds := store.Load(r)

			st := prober.Probe(r.Context(), creds)

			if !creds.IsZero() && st.Revoked {
				log.Debug("dropping stale session cookie", slog.String("path", r.URL.Path))
				store.Clear(w)
			}

			ctx := session.NewContext(r.Context(), st)
			if st.SignedIn() {
				ctx = backend.WithCredentials(ctx, st.Credentials)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}
