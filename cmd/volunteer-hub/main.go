package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"

	"volunteerHub/internal/backend"
	"volunteerHub/internal/catalog"
	"volunteerHub/internal/config"
	"volunteerHub/internal/http-server/handlers/admin/exportEvents"
	"volunteerHub/internal/http-server/handlers/admin/exportUsers"
	adminEvents "volunteerHub/internal/http-server/handlers/admin/listEvents"
	"volunteerHub/internal/http-server/handlers/admin/listUsers"
	"volunteerHub/internal/http-server/handlers/admin/reviewEvent"
	"volunteerHub/internal/http-server/handlers/auth/signIn"
	"volunteerHub/internal/http-server/handlers/auth/signOut"
	"volunteerHub/internal/http-server/handlers/auth/signUp"
	"volunteerHub/internal/http-server/handlers/event/cancelRegistration"
	"volunteerHub/internal/http-server/handlers/event/getEvent"
	"volunteerHub/internal/http-server/handlers/event/listEvents"
	"volunteerHub/internal/http-server/handlers/event/myRegistrations"
	"volunteerHub/internal/http-server/handlers/event/registerEvent"
	"volunteerHub/internal/http-server/handlers/manager/closeEvent"
	"volunteerHub/internal/http-server/handlers/manager/createEvent"
	"volunteerHub/internal/http-server/handlers/manager/dashboard"
	"volunteerHub/internal/http-server/handlers/manager/deleteEvent"
	"volunteerHub/internal/http-server/handlers/manager/eventRegistrations"
	"volunteerHub/internal/http-server/handlers/manager/reviewRegistration"
	"volunteerHub/internal/http-server/handlers/manager/updateEvent"
	"volunteerHub/internal/http-server/handlers/page/home"
	"volunteerHub/internal/http-server/handlers/page/static"
	"volunteerHub/internal/http-server/middleware/guard"
	"volunteerHub/internal/http-server/middleware/identity"
	"volunteerHub/internal/http-server/middleware/mwlogger"
	"volunteerHub/internal/http-server/middleware/ratelimit"
	"volunteerHub/internal/http-server/view"
	"volunteerHub/internal/lib/logger/handlers/slogpretty"
	"volunteerHub/internal/lib/logger/sl"
	"volunteerHub/internal/models"
	"volunteerHub/internal/role"
	"volunteerHub/internal/session"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const (
	sweepEvery    = 5 * time.Minute
	visitorIdle   = 30 * time.Minute
	startupFetch  = 5 * time.Second
	shutdownGrace = 10 * time.Second
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting volunteer hub", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	client, err := backend.New(cfg.Backend.BaseURL, log, backend.WithAuthMode(backend.AuthMode(cfg.Backend.AuthMode)))
	if err != nil {
		log.Error("failed to init backend client", sl.Err(err))
		os.Exit(1)
	}

	provider := session.NewProvider(log, client)
	store := session.CookieStore{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.Secure,
		MaxAge: cfg.Session.MaxAge,
	}

	cats := catalog.New(log, client, seedCategories(cfg.Categories))

	ctx, cancel := context.WithTimeout(context.Background(), startupFetch)
	if err = cats.Refresh(ctx); err != nil {
		log.Warn("using configured categories", sl.Err(err))
	}
	cancel()

	rnd, err := view.New(log, cats)
	if err != nil {
		log.Error("failed to parse templates", sl.Err(err))
		os.Exit(1)
	}

	limiter := ratelimit.New(log, cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)

	if !cfg.CSRF.Secure {
		router.Use(plaintext)
	}
	router.Use(csrf.Protect([]byte(cfg.CSRF.Key),
		csrf.Secure(cfg.CSRF.Secure),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
	))

	fs := http.FileServer(http.Dir(cfg.HTTPServer.StaticDir))
	router.Handle("/static/*", http.StripPrefix("/static/", fs))

	loading := static.Loading(rnd)
	guarded := func(rule guard.Rule) func(http.Handler) http.Handler {
		return guard.New(log, rule, guard.Options{Loading: loading})
	}

	router.Group(func(r chi.Router) {
		r.Use(identity.New(log, provider, store))

		r.Get("/", home.New(log, client, rnd))
		r.Get("/about", static.About(rnd))

		r.Get("/auth", signIn.Form(log, rnd))
		r.With(limiter.Middleware(signIn.Limited(log, rnd))).Post("/auth/sign-in", signIn.New(log, provider, store, rnd))
		r.With(limiter.Middleware(signIn.Limited(log, rnd))).Post("/auth/sign-up", signUp.New(log, provider, rnd))
		r.Post("/auth/sign-out", signOut.New(log, provider, store))

		r.Get("/events", listEvents.New(log, client, rnd))
		r.Get("/events/{id}", getEvent.New(log, client, rnd))

		r.Group(func(r chi.Router) {
			r.Use(guarded(guard.Authenticated))

			r.Post("/events/{id}/register", registerEvent.New(log, client))
			r.Post("/events/{id}/cancel", cancelRegistration.New(log, client))
			r.Get("/me/registrations", myRegistrations.New(log, client, rnd))
		})

		r.Route("/manager", func(r chi.Router) {
			r.Use(guarded(guard.AtLeast(role.Manager)))

			r.Get("/", dashboard.New(log, client, rnd))
			r.Get("/events/new", createEvent.Form(rnd))
			r.Post("/events/new", createEvent.New(log, client, rnd))
			r.Get("/events/{id}/edit", updateEvent.Form(log, client, cats, rnd))
			r.Post("/events/{id}/edit", updateEvent.New(log, client, rnd))
			r.Post("/events/{id}/close", closeEvent.New(log, client))
			r.Post("/events/{id}/delete", deleteEvent.New(log, client, "/manager"))
			r.Get("/events/{id}/registrations", eventRegistrations.New(log, client, rnd))
			r.Post("/registrations/{id}", reviewRegistration.New(log, client))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(guarded(guard.Exact(role.Admin)))

			r.Get("/events", adminEvents.New(log, client, rnd))
			r.Get("/events/export", exportEvents.New(log, client))
			r.Post("/events/{id}/review", reviewEvent.New(log, client))
			r.Post("/events/{id}/delete", deleteEvent.New(log, client, "/admin/events"))
			r.Get("/users", listUsers.New(log, client, rnd))
			r.Get("/users/export", exportUsers.New(log, client))
		})

		r.NotFound(static.NotFound(log, rnd))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(sweepEvery)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if n := limiter.Sweep(visitorIdle); n > 0 {
					log.Debug("dropped idle rate limit entries", slog.Int("count", n))
				}
			case <-done:
				return
			}
		}
	}()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	close(done)

	ctx, cancel = context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")
}

// plaintext marks requests as plain HTTP so csrf skips its TLS-only referer
// checks in local setups.
func plaintext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
	})
}

func seedCategories(in []config.Category) []models.Category {
	out := make([]models.Category, 0, len(in))

	for _, c := range in {
		out = append(out, models.Category{ID: c.ID, Name: c.Name})
	}

	return out
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
