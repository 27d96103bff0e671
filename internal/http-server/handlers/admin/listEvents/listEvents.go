package listEvents

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"volunteerHub/internal/backend"
	"volunteerHub/internal/http-server/flash"
	"volunteerHub/internal/http-server/view"
	"volunteerHub/internal/lib/logger/sl"
	"volunteerHub/internal/models"
)

const pageSize = 100

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsLister
type EventsLister interface {
	ListEvents(ctx context.Context, filter models.EventFilter) (*models.Page[models.Event], error)
}

// New lists every event for review, optionally narrowed to one status.
func New(log *slog.Logger, lister EventsLister, rnd view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.listEvents.New"

		log := log.With(slog.String("op", op))

		filter := models.EventFilter{
			Status: strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("status"))),
			Size:   pageSize,
		}

		if err := validator.New().Struct(filter); err != nil {
			log.Info("invalid status filter", sl.Err(err))
			rnd.RenderToast(w, r, http.StatusBadRequest, view.PageAdminEvents, view.AdminEventsData{},
				flash.Error("Unknown event status"))
			return
		}

		page, err := lister.ListEvents(r.Context(), filter)
		if err != nil {
			log.Error("failed to list events", sl.Err(err))
			rnd.RenderToast(w, r, http.StatusBadGateway, view.PageAdminEvents, view.AdminEventsData{Status: filter.Status},
				flash.Error(backend.Message(err, "Could not load events. Please try again.")))
			return
		}

		rnd.Render(w, r, http.StatusOK, view.PageAdminEvents, view.AdminEventsData{
			Events: page.Content,
			Status: filter.Status,
		})
	}
}
