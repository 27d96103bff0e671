package home

import (
	"context"
	"log/slog"
	"net/http"

	"volunteerHub/internal/http-server/view"
	"volunteerHub/internal/lib/logger/sl"
	"volunteerHub/internal/models"
	"volunteerHub/internal/session"
)

const featuredSize = 3

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=HomeSource
type HomeSource interface {
	ListEvents(ctx context.Context, filter models.EventFilter) (*models.Page[models.Event], error)
	Dashboard(ctx context.Context) (*models.Dashboard, error)
}

// New renders the landing page. Backend failures degrade to empty sections.
func New(log *slog.Logger, src HomeSource, rnd view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.page.home.New"

		log := log.With(slog.String("op", op))

		var data view.HomeData

		page, err := src.ListEvents(r.Context(), models.EventFilter{Size: featuredSize})
		if err != nil {
			log.Error("failed to load featured events", sl.Err(err))
		} else {
			data.Featured = page.Content
		}

		if session.FromContext(r.Context()).SignedIn() {
			dash, err := src.Dashboard(r.Context())
			if err != nil {
				log.Error("failed to load dashboard", sl.Err(err))
			} else {
				data.Dashboard = dash
			}
		}

		rnd.Render(w, r, http.StatusOK, view.PageHome, data)
	}
}
