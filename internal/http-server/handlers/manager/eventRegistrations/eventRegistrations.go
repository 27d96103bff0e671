package eventRegistrations

import (
	"context"
	"log/slog"
	"net/http"

	"volunteerHub/internal/backend"
	"volunteerHub/internal/http-server/flash"
	"volunteerHub/internal/http-server/view"
	"volunteerHub/internal/lib/api/request"
	"volunteerHub/internal/lib/logger/sl"
	"volunteerHub/internal/models"
	"volunteerHub/internal/report"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationsSource
type RegistrationsSource interface {
	GetEvent(ctx context.Context, id int64) (*models.Event, error)
	EventRegistrations(ctx context.Context, id int64) ([]models.Registration, error)
}

// New lists an event's registrations together with the per-status report.
func New(log *slog.Logger, src RegistrationsSource, rnd view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.manager.eventRegistrations.New"

		log := log.With(slog.String("op", op))

		id, err := request.ID(r, "id")
		if err != nil {
			log.Info("bad event id", sl.Err(err))
			rnd.Render(w, r, http.StatusNotFound, view.PageNotFound, nil)
			return
		}

		log = log.With(slog.Int64("event_id", id))

		event, err := src.GetEvent(r.Context(), id)
		if err != nil {
			log.Info("event not resolved", sl.Err(err))
			rnd.Render(w, r, http.StatusNotFound, view.PageNotFound, nil)
			return
		}

		regs, err := src.EventRegistrations(r.Context(), id)
		if err != nil {
			log.Error("failed to load registrations", sl.Err(err))
			rnd.RenderToast(w, r, backend.PageStatus(err), view.PageRegistrations, view.RegistrationsData{Event: *event},
				flash.Error(backend.Message(err, "Could not load registrations. Please try again.")))
			return
		}

		rnd.Render(w, r, http.StatusOK, view.PageRegistrations, view.RegistrationsData{
			Event:         *event,
			Registrations: regs,
			Report:        report.Summarize(regs),
		})
	}
}
