package cancelRegistration

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"volunteerHub/internal/backend"
	"volunteerHub/internal/http-server/flash"
	"volunteerHub/internal/http-server/live"
	"volunteerHub/internal/lib/api/request"
	"volunteerHub/internal/lib/logger/sl"
	"volunteerHub/internal/models"
	"volunteerHub/internal/reducer"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationCanceller
type RegistrationCanceller interface {
	CancelRegistration(ctx context.Context, id int64) error
	GetEvent(ctx context.Context, id int64) (*models.Event, error)
}

func New(log *slog.Logger, canceller RegistrationCanceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.cancelRegistration.New"

		log := log.With(slog.String("op", op))

		id, err := request.ID(r, "id")
		if err != nil {
			log.Info("bad event id", sl.Err(err))
			respondError(w, r, "/events", "Event not found")
			return
		}

		log = log.With(slog.Int64("event_id", id))
		back := request.Back(r, fmt.Sprintf("/events/%d", id))

		isLive := live.IsRequest(r)

		var (
			current reducer.EventView
			readErr error
		)
		if isLive {
			current, readErr = live.ReadView(r)
		}

		if err := canceller.CancelRegistration(r.Context(), id); err != nil {
			log.Info("cancellation failed", sl.Err(err))
			respondError(w, r, back, backend.Message(err, "Could not cancel your registration. Please try again."))
			return
		}

		log.Info("registration cancelled")

		toast := flash.Success("Your registration has been cancelled.")

		if !isLive {
			flash.Redirect(w, r, back, toast)
			return
		}

		next, err := nextView(r.Context(), canceller, id, current, readErr)
		if err != nil {
			log.Error("failed to refresh event", sl.Err(err))
			_ = live.Toast(w, r, toast)
			return
		}

		if err := live.Patch(w, r, next, toast); err != nil {
			log.Error("failed to patch signals", sl.Err(err))
		}
	}
}

// nextView patches the page's own view when it arrived intact and reloads the
// event otherwise.
func nextView(ctx context.Context, getter RegistrationCanceller, id int64, current reducer.EventView, readErr error) (reducer.EventView, error) {
	if reducer.StrategyFor(reducer.Cancelled) == reducer.Patch && readErr == nil {
		return reducer.Event(current, reducer.Cancelled), nil
	}

	event, err := getter.GetEvent(ctx, id)
	if err != nil {
		return reducer.EventView{}, err
	}

	return reducer.ViewOf(*event), nil
}

func respondError(w http.ResponseWriter, r *http.Request, back, msg string) {
	if live.IsRequest(r) {
		_ = live.Toast(w, r, flash.Error(msg))
		return
	}

	flash.Redirect(w, r, back, flash.Error(msg))
}
