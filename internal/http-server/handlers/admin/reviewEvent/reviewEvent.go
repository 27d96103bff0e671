package reviewEvent

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

const list = "/admin/events"

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventReviewer
type EventReviewer interface {
	ReviewEvent(ctx context.Context, id int64, action models.EventReviewAction) error
}

var reviewed = map[models.EventReviewAction]string{
	models.EventApprove: "Event approved.",
	models.EventReject:  "Event rejected.",
}

func New(log *slog.Logger, reviewer EventReviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.reviewEvent.New"

		log := log.With(slog.String("op", op))

		back := request.Back(r, list)

		id, err := request.ID(r, "id")
		if err != nil {
			log.Info("bad event id", sl.Err(err))
			flash.Redirect(w, r, back, flash.Error("Event not found"))
			return
		}

		action, ok := models.ParseEventReviewAction(r.PostFormValue("action"))
		if !ok {
			log.Info("unknown review action", slog.String("action", r.PostFormValue("action")))
			flash.Redirect(w, r, back, flash.Error("Unknown action"))
			return
		}

		log = log.With(slog.Int64("event_id", id), slog.String("action", string(action)))

		if err := reviewer.ReviewEvent(r.Context(), id, action); err != nil {
			log.Error("failed to review event", sl.Err(err))
			flash.Redirect(w, r, back,
				flash.Error(backend.Message(err, "Could not review the event. Please try again.")))
			return
		}

		log.Info("event reviewed")

		flash.Redirect(w, r, back, flash.Success(reviewed[action]))
	}
}
