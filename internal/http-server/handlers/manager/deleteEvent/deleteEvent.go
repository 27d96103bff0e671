package deleteEvent

import (
	"context"
	"log/slog"
	"net/http"

	"volunteerHub/internal/backend"
	"volunteerHub/internal/http-server/flash"
	"volunteerHub/internal/lib/api/request"
	"volunteerHub/internal/lib/logger/sl"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventDeleter
type EventDeleter interface {
	DeleteEvent(ctx context.Context, id int64) error
}

// New deletes an event and redirects to list, which is the manager or the
// admin event list depending on where it is mounted.
func New(log *slog.Logger, deleter EventDeleter, list string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.manager.deleteEvent.New"

		log := log.With(slog.String("op", op))

		id, err := request.ID(r, "id")
		if err != nil {
			log.Info("bad event id", sl.Err(err))
			flash.Redirect(w, r, list, flash.Error("Event not found"))
			return
		}

		log = log.With(slog.Int64("event_id", id))

		if err := deleter.DeleteEvent(r.Context(), id); err != nil {
			log.Error("failed to delete event", sl.Err(err))
			flash.Redirect(w, r, list,
				flash.Error(backend.Message(err, "Could not delete the event. Please try again.")))
			return
		}

		log.Info("event deleted")

		flash.Redirect(w, r, list, flash.Success("Event deleted."))
	}
}
