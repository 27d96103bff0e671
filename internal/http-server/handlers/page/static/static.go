// Package static serves pages that need no backend data.
package static

import (
	"log/slog"
	"net/http"

	"volunteerHub/internal/http-server/view"
)

func About(rnd view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rnd.Render(w, r, http.StatusOK, view.PageAbout, nil)
	}
}

func NotFound(log *slog.Logger, rnd view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.page.static.NotFound"

		log.With(slog.String("op", op)).Debug("no route", slog.String("path", r.URL.Path))

		rnd.Render(w, r, http.StatusNotFound, view.PageNotFound, nil)
	}
}

// Loading is shown while the visitor's session is still being resolved.
func Loading(rnd view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Refresh", "2")
		rnd.Render(w, r, http.StatusServiceUnavailable, view.PageLoading, nil)
	}
}
