package signUp

import (
	"context"
	"log/slog"
	"net/http"

	"volunteerHub/internal/backend"
	"volunteerHub/internal/forms"
	"volunteerHub/internal/http-server/flash"
	"volunteerHub/internal/http-server/view"
	"volunteerHub/internal/lib/logger/sl"
	"volunteerHub/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Registrar
type Registrar interface {
	SignUp(ctx context.Context, req models.RegisterRequest) error
}

// New creates the account and sends the visitor to the sign-in form; it does
// not sign them in.
func New(log *slog.Logger, registrar Registrar, rnd view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.signUp.New"

		log := log.With(slog.String("op", op))

		if err := r.ParseForm(); err != nil {
			log.Error("failed to parse form", sl.Err(err))
			rnd.RenderToast(w, r, http.StatusBadRequest, view.PageAuth,
				view.AuthData{Mode: view.AuthModeSignUp}, flash.Error("Could not read the form"))
			return
		}

		form := forms.SignUpFromValues(r.PostForm)
		retry := form
		retry.Password = ""

		if errs := form.Validate(); !errs.Valid() {
			log.Info("invalid sign up form", slog.Int("errors", len(errs)))
			rnd.Render(w, r, http.StatusUnprocessableEntity, view.PageAuth, view.AuthData{
				Mode:   view.AuthModeSignUp,
				SignUp: retry,
				Errors: errs,
			})
			return
		}

		if err := registrar.SignUp(r.Context(), form.Request()); err != nil {
			log.Info("sign up failed", sl.Err(err))

			rnd.RenderToast(w, r, backend.PageStatus(err), view.PageAuth, view.AuthData{
				Mode:   view.AuthModeSignUp,
				SignUp: retry,
			}, flash.Error(backend.Message(err, "Sign up failed. Please try again.")))
			return
		}

		log.Info("account created")

		flash.Redirect(w, r, "/auth", flash.Success("Account created. Please sign in."))
	}
}
