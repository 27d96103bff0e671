package createEvent

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"volunteerHub/internal/backend"
	"volunteerHub/internal/forms"
	"volunteerHub/internal/http-server/flash"
	"volunteerHub/internal/http-server/view"
	"volunteerHub/internal/lib/api/request"
	"volunteerHub/internal/lib/api/response"
	"volunteerHub/internal/lib/logger/sl"
	"volunteerHub/internal/models"
)

type EventResponse struct {
	response.Response
	EventID int64        `json:"event_id,omitempty"`
	Fields  forms.Errors `json:"fields,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(ctx context.Context, in models.EventInput) (*models.Event, error)
}

// Form shows an empty event form.
func Form(rnd view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rnd.Render(w, r, http.StatusOK, view.PageEventForm, view.EventFormData{})
	}
}

// New creates an event from the posted form. Invalid input is answered
// without calling the backend.
func New(log *slog.Logger, creator EventCreator, rnd view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.manager.createEvent.New"

		log := log.With(slog.String("op", op))
		asJSON := request.WantsJSON(r)

		if err := r.ParseForm(); err != nil {
			log.Info("failed to parse form", sl.Err(err))
			fail(w, r, rnd, asJSON, http.StatusBadRequest, forms.Event{}, "failed to decode request")
			return
		}

		form := forms.EventFromValues(r.PostForm)

		input, errs := form.Input()
		if !errs.Valid() {
			log.Info("invalid event form", slog.Any("fields", errs))

			if asJSON {
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, EventResponse{Response: response.Error("invalid event"), Fields: errs})
				return
			}

			rnd.Render(w, r, http.StatusUnprocessableEntity, view.PageEventForm, view.EventFormData{Form: form, Errors: errs})
			return
		}

		event, err := creator.CreateEvent(r.Context(), input)
		if err != nil {
			log.Error("failed to create event", sl.Err(err))
			fail(w, r, rnd, asJSON, backend.PageStatus(err), form,
				backend.Message(err, "Could not create the event. Please try again."))
			return
		}

		log.Info("event created", slog.Int64("id", event.ID))

		if asJSON {
			render.Status(r, http.StatusCreated)
			render.JSON(w, r, EventResponse{Response: response.OK(), EventID: event.ID})
			return
		}

		flash.Redirect(w, r, "/manager", flash.Success("Event created. It will be listed once an admin approves it."))
	}
}

func fail(w http.ResponseWriter, r *http.Request, rnd view.Renderer, asJSON bool, status int, form forms.Event, msg string) {
	if asJSON {
		render.Status(r, status)
		render.JSON(w, r, response.Error(msg))
		return
	}

	rnd.RenderToast(w, r, status, view.PageEventForm, view.EventFormData{Form: form}, flash.Error(msg))
}
