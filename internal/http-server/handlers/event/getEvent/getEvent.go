package getEvent

import (
	"context"
	"log/slog"
	"net/http"

	"volunteerHub/internal/backend"
	"volunteerHub/internal/http-server/view"
	"volunteerHub/internal/lib/api/request"
	"volunteerHub/internal/lib/logger/sl"
	"volunteerHub/internal/models"
	"volunteerHub/internal/reducer"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	GetEvent(ctx context.Context, id int64) (*models.Event, error)
}

// New renders the event detail. Any id the backend cannot resolve renders the
// not-found page.
func New(log *slog.Logger, getter EventGetter, rnd view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEvent.New"

		log := log.With(slog.String("op", op))

		id, err := request.ID(r, "id")
		if err != nil {
			log.Info("bad event id", sl.Err(err))
			rnd.Render(w, r, http.StatusNotFound, view.PageNotFound, nil)
			return
		}

		log = log.With(slog.Int64("event_id", id))

		event, err := getter.GetEvent(r.Context(), id)
		if err != nil {
			if backend.IsNotFound(err) {
				log.Info("event not found")
			} else {
				log.Error("failed to get event", sl.Err(err))
			}
			rnd.Render(w, r, http.StatusNotFound, view.PageNotFound, nil)
			return
		}

		rnd.Render(w, r, http.StatusOK, view.PageEventDetail, view.EventDetailData{
			Event: *event,
			View:  reducer.ViewOf(*event),
		})
	}
}
