package updateEvent

import (
	"context"
	"log/slog"
	"net/http"

	"volunteerHub/internal/backend"
	"volunteerHub/internal/forms"
	"volunteerHub/internal/http-server/flash"
	"volunteerHub/internal/http-server/view"
	"volunteerHub/internal/lib/api/request"
	"volunteerHub/internal/lib/logger/sl"
	"volunteerHub/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventEditor
type EventEditor interface {
	GetEvent(ctx context.Context, id int64) (*models.Event, error)
	UpdateEvent(ctx context.Context, id int64, in models.EventInput) (*models.Event, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CategoryFinder
type CategoryFinder interface {
	ByName(name string) (models.Category, bool)
}

// Form shows the edit form prefilled from the current event. The backend
// reports the category by name, so its id comes from the catalog.
func Form(log *slog.Logger, editor EventEditor, cats CategoryFinder, rnd view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.manager.updateEvent.Form"

		log := log.With(slog.String("op", op))

		id, err := request.ID(r, "id")
		if err != nil {
			log.Info("bad event id", sl.Err(err))
			rnd.Render(w, r, http.StatusNotFound, view.PageNotFound, nil)
			return
		}

		event, err := editor.GetEvent(r.Context(), id)
		if err != nil {
			log.Info("event not resolved", slog.Int64("event_id", id), sl.Err(err))
			rnd.Render(w, r, http.StatusNotFound, view.PageNotFound, nil)
			return
		}

		var categoryID int64
		if cat, ok := cats.ByName(event.CategoryName); ok {
			categoryID = cat.ID
		} else {
			log.Warn("unknown category", slog.String("category", event.CategoryName))
		}

		rnd.Render(w, r, http.StatusOK, view.PageEventForm, view.EventFormData{
			EventID: id,
			Form:    forms.EventFromModel(*event, categoryID),
		})
	}
}

func New(log *slog.Logger, editor EventEditor, rnd view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.manager.updateEvent.New"

		log := log.With(slog.String("op", op))

		id, err := request.ID(r, "id")
		if err != nil {
			log.Info("bad event id", sl.Err(err))
			rnd.Render(w, r, http.StatusNotFound, view.PageNotFound, nil)
			return
		}

		log = log.With(slog.Int64("event_id", id))

		if err := r.ParseForm(); err != nil {
			log.Info("failed to parse form", sl.Err(err))
			rnd.RenderToast(w, r, http.StatusBadRequest, view.PageEventForm, view.EventFormData{EventID: id},
				flash.Error("failed to decode request"))
			return
		}

		form := forms.EventFromValues(r.PostForm)
		data := view.EventFormData{EventID: id, Form: form}

		input, errs := form.Input()
		if !errs.Valid() {
			log.Info("invalid event form", slog.Any("fields", errs))
			data.Errors = errs
			rnd.Render(w, r, http.StatusUnprocessableEntity, view.PageEventForm, data)
			return
		}

		if _, err := editor.UpdateEvent(r.Context(), id, input); err != nil {
			log.Error("failed to update event", sl.Err(err))
			rnd.RenderToast(w, r, backend.PageStatus(err), view.PageEventForm, data,
				flash.Error(backend.Message(err, "Could not save the event. Please try again.")))
			return
		}

		log.Info("event updated")

		flash.Redirect(w, r, "/manager", flash.Success("Event updated."))
	}
}
