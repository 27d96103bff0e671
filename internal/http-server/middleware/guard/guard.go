// Package guard gates routes on the visitor's session and role.
package guard

import (
	"log/slog"
	"net/http"

	"volunteerHub/internal/http-server/flash"
	"volunteerHub/internal/http-server/live"
	"volunteerHub/internal/role"
	"volunteerHub/internal/session"
)

// Rule decides whether a signed-in visitor may see a route.
type Rule func(c role.Capabilities) bool

// Exact admits only r itself.
func Exact(r role.Role) Rule {
	return func(c role.Capabilities) bool { return c.Accepts(r) }
}

// AtLeast admits r and every role above it.
func AtLeast(r role.Role) Rule {
	return func(c role.Capabilities) bool { return c.AtLeast(r) }
}

// Authenticated admits any signed-in visitor.
func Authenticated(role.Capabilities) bool {
	return true
}

type Options struct {
	SignInPath string
	HomePath   string
	// Loading is served while the session is still unresolved.
	Loading http.Handler
}

func (o Options) withDefaults() Options {
	if o.SignInPath == "" {
		o.SignInPath = "/auth"
	}

	if o.HomePath == "" {
		o.HomePath = "/"
	}

	if o.Loading == nil {
		o.Loading = http.HandlerFunc(loading)
	}

	return o
}

func loading(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Refresh", "2")
	http.Error(w, "loading", http.StatusServiceUnavailable)
}

func New(log *slog.Logger, rule Rule, opts Options) func(next http.Handler) http.Handler {
	opts = opts.withDefaults()

	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/guard"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			st := session.FromContext(r.Context())

			switch st.Status {
			case session.StatusUnknown:
				opts.Loading.ServeHTTP(w, r)
				return
			case session.StatusAnonymous:
				deny(w, r, opts.SignInPath, "Please sign in to continue")
				return
			}

			caps := role.Resolve(st.User)
			if !rule(caps) {
				log.Info("access denied",
					slog.String("path", r.URL.Path),
					slog.String("role", caps.Role.String()),
				)
				deny(w, r, opts.HomePath, "You do not have access to that page")
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

// deny redirects page requests. Datastar requests cannot follow a redirect
// into a page, so they get an error toast instead.
func deny(w http.ResponseWriter, r *http.Request, target, msg string) {
	if live.IsRequest(r) {
		_ = live.Toast(w, r, flash.Error(msg))
		return
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}
