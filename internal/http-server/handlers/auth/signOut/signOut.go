package signOut

import (
	"context"
	"log/slog"
	"net/http"

	"volunteerHub/internal/backend"
	"volunteerHub/internal/http-server/flash"
	"volunteerHub/internal/lib/api/request"
	"volunteerHub/internal/lib/logger/sl"
	"volunteerHub/internal/session"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionEnder
type SessionEnder interface {
	SignOut(ctx context.Context, current session.State) (session.State, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenClearer
type TokenClearer interface {
	Clear(w http.ResponseWriter)
}

// New ends the session. When the backend refuses, the cookie is kept and the
// visitor stays signed in.
func New(log *slog.Logger, ender SessionEnder, store TokenClearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.signOut.New"

		log := log.With(slog.String("op", op))

		current := session.FromContext(r.Context())

		if _, err := ender.SignOut(r.Context(), current); err != nil {
			log.Error("failed to sign out", sl.Err(err))
			flash.Redirect(w, r, request.Back(r, "/"),
				flash.Error(backend.Message(err, "Sign out failed. Please try again.")))
			return
		}

		store.Clear(w)

		log.Info("signed out")

		flash.Redirect(w, r, "/", flash.Success("You have been signed out."))
	}
}
