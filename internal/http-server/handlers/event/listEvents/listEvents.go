package listEvents

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"volunteerHub/internal/backend"
	"volunteerHub/internal/http-server/flash"
	"volunteerHub/internal/http-server/view"
	"volunteerHub/internal/lib/api/request"
	"volunteerHub/internal/lib/api/response"
	"volunteerHub/internal/lib/logger/sl"
	"volunteerHub/internal/models"
)

const defaultPageSize = 9

type EventsResponse struct {
	response.Response
	Page *models.Page[models.Event] `json:"page,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsLister
type EventsLister interface {
	ListEvents(ctx context.Context, filter models.EventFilter) (*models.Page[models.Event], error)
}

// New serves the public event list. Pages in the URL are one-based; the
// backend's are zero-based. Clients sending Accept: application/json get the
// page envelope instead of HTML.
func New(log *slog.Logger, lister EventsLister, rnd view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.listEvents.New"

		log := log.With(slog.String("op", op))

		q := r.URL.Query()
		filter := filterFrom(q)
		asJSON := request.WantsJSON(r)

		if err := validator.New().Struct(filter); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Info("invalid filter", sl.Err(err))

				if asJSON {
					render.Status(r, http.StatusBadRequest)
					render.JSON(w, r, response.ValidationError(validateErr))
					return
				}

				rnd.RenderToast(w, r, http.StatusBadRequest, view.PageEvents, view.EventsData{
					Page:    &models.Page[models.Event]{},
					Filter:  filter,
					Current: 1,
				}, flash.Error("Some filters are not valid"))
				return
			}
		}

		page, err := lister.ListEvents(r.Context(), filter)
		if err != nil {
			log.Error("failed to list events", sl.Err(err))

			msg := backend.Message(err, "Could not load events. Please try again.")

			if asJSON {
				render.Status(r, http.StatusBadGateway)
				render.JSON(w, r, response.Error(msg))
				return
			}

			rnd.RenderToast(w, r, http.StatusBadGateway, view.PageEvents, view.EventsData{
				Page:    &models.Page[models.Event]{},
				Filter:  filter,
				Current: 1,
			}, flash.Error(msg))
			return
		}

		log.Debug("events listed", slog.Int("count", len(page.Content)), slog.Int("page", page.Number))

		if asJSON {
			render.JSON(w, r, EventsResponse{Response: response.OK(), Page: page})
			return
		}

		data := view.EventsData{
			Page:    page,
			Filter:  filter,
			Current: page.Number + 1,
		}

		if page.HasPrev() {
			data.Prev = pageLink(r.URL, page.Number)
		}

		if page.HasNext() {
			data.Next = pageLink(r.URL, page.Number+2)
		}

		rnd.Render(w, r, http.StatusOK, view.PageEvents, data)
	}
}

func filterFrom(q url.Values) models.EventFilter {
	f := models.EventFilter{
		Category: strings.TrimSpace(q.Get("category")),
		City:     strings.TrimSpace(q.Get("city")),
		District: strings.TrimSpace(q.Get("district")),
		Ward:     strings.TrimSpace(q.Get("ward")),
		Status:   strings.ToUpper(strings.TrimSpace(q.Get("status"))),
		Sort:     strings.TrimSpace(q.Get("sort")),
		Size:     defaultPageSize,
	}

	if p, err := strconv.Atoi(q.Get("page")); err == nil && p > 1 {
		f.Page = p - 1
	}

	if s, err := strconv.Atoi(q.Get("size")); err == nil {
		f.Size = s
	}

	return f
}

// pageLink points at the one-based page n, keeping the other filters.
func pageLink(u *url.URL, n int) string {
	q := u.Query()
	q.Set("page", strconv.Itoa(n))

	return u.Path + "?" + q.Encode()
}
