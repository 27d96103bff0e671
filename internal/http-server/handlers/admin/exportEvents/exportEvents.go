package exportEvents

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"volunteerHub/internal/backend"
	"volunteerHub/internal/http-server/flash"
	"volunteerHub/internal/lib/logger/sl"
)

var contentTypes = map[string]string{
	"csv":  "text/csv; charset=utf-8",
	"json": "application/json",
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsExporter
type EventsExporter interface {
	ExportEvents(ctx context.Context, format string) (*backend.Export, error)
}

// New streams the backend's event export as a download. Format defaults to
// csv.
func New(log *slog.Logger, exporter EventsExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.exportEvents.New"

		log := log.With(slog.String("op", op))

		format := r.URL.Query().Get("format")
		if format == "" {
			format = "csv"
		}

		contentType, ok := contentTypes[format]
		if !ok {
			log.Info("unsupported export format", slog.String("format", format))
			flash.Redirect(w, r, "/admin/events", flash.Error("Unsupported export format"))
			return
		}

		export, err := exporter.ExportEvents(r.Context(), format)
		if err != nil {
			log.Error("failed to export events", sl.Err(err))
			flash.Redirect(w, r, "/admin/events",
				flash.Error(backend.Message(err, "Could not export events. Please try again.")))
			return
		}

		if export.ContentType != "" {
			contentType = export.ContentType
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "events."+format))
		w.Header().Set("Content-Length", strconv.Itoa(len(export.Data)))
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(export.Data); err != nil {
			log.Error("failed to write export", sl.Err(err))
			return
		}

		log.Info("events exported", slog.String("format", format), slog.Int("bytes", len(export.Data)))
	}
}
