package closeEvent

import (
	"context"
	"log/slog"
	"net/http"

	"volunteerHub/internal/backend"
	"volunteerHub/internal/http-server/flash"
	"volunteerHub/internal/lib/api/request"
	"volunteerHub/internal/lib/logger/sl"
	"volunteerHub/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCloser
type EventCloser interface {
	CloseEvent(ctx context.Context, id int64, action models.CloseAction) error
}

var closed = map[models.CloseAction]string{
	models.CloseComplete: "Event marked as completed.",
	models.CloseCancel:   "Event cancelled.",
}

// New completes or cancels an event and sends the manager back to the list.
func New(log *slog.Logger, closer EventCloser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.manager.closeEvent.New"

		log := log.With(slog.String("op", op))

		id, err := request.ID(r, "id")
		if err != nil {
			log.Info("bad event id", sl.Err(err))
			flash.Redirect(w, r, "/manager", flash.Error("Event not found"))
			return
		}

		action, ok := models.ParseCloseAction(r.PostFormValue("action"))
		if !ok {
			log.Info("unknown close action", slog.String("action", r.PostFormValue("action")))
			flash.Redirect(w, r, "/manager", flash.Error("Unknown action"))
			return
		}

		log = log.With(slog.Int64("event_id", id), slog.String("action", string(action)))

		if err := closer.CloseEvent(r.Context(), id, action); err != nil {
			log.Error("failed to close event", sl.Err(err))
			flash.Redirect(w, r, "/manager",
				flash.Error(backend.Message(err, "Could not update the event. Please try again.")))
			return
		}

		log.Info("event closed")

		flash.Redirect(w, r, "/manager", flash.Success(closed[action]))
	}
}
