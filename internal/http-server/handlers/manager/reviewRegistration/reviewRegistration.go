package reviewRegistration

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"volunteerHub/internal/backend"
	"volunteerHub/internal/http-server/flash"
	"volunteerHub/internal/lib/api/request"
	"volunteerHub/internal/lib/logger/sl"
	"volunteerHub/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationReviewer
type RegistrationReviewer interface {
	ReviewRegistration(ctx context.Context, id int64, action models.RegistrationAction) error
}

var reviewed = map[models.RegistrationAction]string{
	models.RegistrationApprove:  "Registration approved.",
	models.RegistrationReject:   "Registration rejected.",
	models.RegistrationComplete: "Volunteer marked as completed.",
}

// New approves, rejects or completes a registration. The form carries the
// event id so the manager lands back on that event's registrations.
func New(log *slog.Logger, reviewer RegistrationReviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.manager.reviewRegistration.New"

		log := log.With(slog.String("op", op))

		back := "/manager"
		if eventID, err := strconv.ParseInt(r.PostFormValue("eventId"), 10, 64); err == nil && eventID > 0 {
			back = fmt.Sprintf("/manager/events/%d/registrations", eventID)
		}

		id, err := request.ID(r, "id")
		if err != nil {
			log.Info("bad registration id", sl.Err(err))
			flash.Redirect(w, r, back, flash.Error("Registration not found"))
			return
		}

		action, ok := models.ParseRegistrationAction(r.PostFormValue("action"))
		if !ok {
			log.Info("unknown review action", slog.String("action", r.PostFormValue("action")))
			flash.Redirect(w, r, back, flash.Error("Unknown action"))
			return
		}

		log = log.With(slog.Int64("registration_id", id), slog.String("action", string(action)))

		if err := reviewer.ReviewRegistration(r.Context(), id, action); err != nil {
			log.Error("failed to review registration", sl.Err(err))
			flash.Redirect(w, r, back,
				flash.Error(backend.Message(err, "Could not update the registration. Please try again.")))
			return
		}

		log.Info("registration reviewed")

		flash.Redirect(w, r, back, flash.Success(reviewed[action]))
	}
}
