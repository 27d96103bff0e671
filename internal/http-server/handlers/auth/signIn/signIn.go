package signIn

import (
	"context"
	"log/slog"
	"net/http"

	"volunteerHub/internal/backend"
	"volunteerHub/internal/forms"
	"volunteerHub/internal/http-server/flash"
	"volunteerHub/internal/http-server/view"
	"volunteerHub/internal/lib/logger/sl"
	"volunteerHub/internal/session"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionStarter
type SessionStarter interface {
	SignIn(ctx context.Context, email, password string) (session.State, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenSaver
type TokenSaver interface {
	Save(w http.ResponseWriter, creds backend.Credentials)
}

// Form serves GET /auth. Signed-in visitors are sent home.
func Form(log *slog.Logger, rnd view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.signIn.Form"

		log := log.With(slog.String("op", op))

		if session.FromContext(r.Context()).SignedIn() {
			log.Debug("already signed in")
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		mode := view.AuthModeSignIn
		if r.URL.Query().Get("mode") == view.AuthModeSignUp {
			mode = view.AuthModeSignUp
		}

		rnd.Render(w, r, http.StatusOK, view.PageAuth, view.AuthData{Mode: mode})
	}
}

func New(log *slog.Logger, starter SessionStarter, store TokenSaver, rnd view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.signIn.New"

		log := log.With(slog.String("op", op))

		if err := r.ParseForm(); err != nil {
			log.Error("failed to parse form", sl.Err(err))
			rnd.RenderToast(w, r, http.StatusBadRequest, view.PageAuth,
				view.AuthData{Mode: view.AuthModeSignIn}, flash.Error("Could not read the form"))
			return
		}

		form := forms.SignInFromValues(r.PostForm)

		if errs := form.Validate(); !errs.Valid() {
			log.Info("invalid sign in form", slog.Int("errors", len(errs)))
			rnd.Render(w, r, http.StatusUnprocessableEntity, view.PageAuth, view.AuthData{
				Mode:   view.AuthModeSignIn,
				SignIn: forms.SignIn{Email: form.Email},
				Errors: errs,
			})
			return
		}

		st, err := starter.SignIn(r.Context(), form.Email, form.Password)
		if err != nil {
			log.Info("sign in failed", sl.Err(err))

			status := http.StatusUnauthorized
			if backend.StatusCode(err) == 0 || backend.StatusCode(err) >= http.StatusInternalServerError {
				status = http.StatusBadGateway
			}

			rnd.RenderToast(w, r, status, view.PageAuth, view.AuthData{
				Mode:   view.AuthModeSignIn,
				SignIn: forms.SignIn{Email: form.Email},
			}, flash.Error(backend.Message(err, "Sign in failed. Please check your email and password.")))
			return
		}

		store.Save(w, st.Credentials)

		log.Info("signed in", slog.Int64("user_id", st.User.ID))

		flash.Redirect(w, r, "/", flash.Success("Welcome back, "+st.User.FullName+"!"))
	}
}

// Limited answers sign-in and sign-up attempts over the rate limit.
func Limited(log *slog.Logger, rnd view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.signIn.Limited"

		log.With(slog.String("op", op)).Warn("too many attempts")

		rnd.RenderToast(w, r, http.StatusTooManyRequests, view.PageAuth,
			view.AuthData{Mode: view.AuthModeSignIn},
			flash.Error("Too many attempts. Please wait a moment and try again."))
	}
}
