package dashboard

import (
	"context"
	"log/slog"
	"net/http"

	"volunteerHub/internal/backend"
	"volunteerHub/internal/http-server/flash"
	"volunteerHub/internal/http-server/view"
	"volunteerHub/internal/lib/logger/sl"
	"volunteerHub/internal/models"
)

// pageSize covers a manager's whole list on one page.
const pageSize = 100

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsLister
type EventsLister interface {
	ListEvents(ctx context.Context, filter models.EventFilter) (*models.Page[models.Event], error)
}

func New(log *slog.Logger, lister EventsLister, rnd view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.manager.dashboard.New"

		log := log.With(slog.String("op", op))

		page, err := lister.ListEvents(r.Context(), models.EventFilter{Size: pageSize})
		if err != nil {
			log.Error("failed to list events", sl.Err(err))
			rnd.RenderToast(w, r, http.StatusBadGateway, view.PageManager, view.ManagerData{},
				flash.Error(backend.Message(err, "Could not load events. Please try again.")))
			return
		}

		rnd.Render(w, r, http.StatusOK, view.PageManager, view.ManagerData{Events: page.Content})
	}
}
