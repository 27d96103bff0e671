package myRegistrations

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationsGetter
type RegistrationsGetter interface {
	MyRegistrations(ctx context.Context) ([]models.Event, error)
}

func New(log *slog.Logger, getter RegistrationsGetter, rnd view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.myRegistrations.New"

		log := log.With(slog.String("op", op))

		events, err := getter.MyRegistrations(r.Context())
		if err != nil {
			log.Error("failed to get registrations", sl.Err(err))
			rnd.RenderToast(w, r, http.StatusBadGateway, view.PageMyRegistrations, view.MyRegistrationsData{},
				flash.Error(backend.Message(err, "Could not load your registrations. Please try again.")))
			return
		}

		log.Debug("registrations loaded", slog.Int("count", len(events)))

		rnd.Render(w, r, http.StatusOK, view.PageMyRegistrations, view.MyRegistrationsData{Events: events})
	}
}
