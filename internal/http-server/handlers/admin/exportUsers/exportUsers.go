package exportUsers

import (
	"context"
	"encoding/csv"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"volunteerHub/internal/backend"
	"volunteerHub/internal/http-server/flash"
	"volunteerHub/internal/lib/logger/sl"
	"volunteerHub/internal/models"
	"volunteerHub/internal/role"
)

var header = []string{"ID", "Full name", "Email", "Phone", "Role", "Status", "Created at"}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UsersLister
type UsersLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// New writes the user list as a CSV download.
func New(log *slog.Logger, lister UsersLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.exportUsers.New"

		log := log.With(slog.String("op", op))

		users, err := lister.ListUsers(r.Context())
		if err != nil {
			log.Error("failed to list users", sl.Err(err))
			flash.Redirect(w, r, "/admin/users",
				flash.Error(backend.Message(err, "Could not export users. Please try again.")))
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="users.csv"`)

		cw := csv.NewWriter(w)

		if err := cw.Write(header); err != nil {
			log.Error("failed to write csv header", sl.Err(err))
			return
		}

		for _, u := range users {
			if err := cw.Write(record(u)); err != nil {
				log.Error("failed to write csv record", slog.Int64("user_id", u.ID), sl.Err(err))
				return
			}
		}

		cw.Flush()

		if err := cw.Error(); err != nil {
			log.Error("failed to flush csv", sl.Err(err))
			return
		}

		log.Info("users exported", slog.Int("count", len(users)))
	}
}

func record(u models.User) []string {
	status := "Active"
	if !u.Active() {
		status = "Locked"
	}

	created := ""
	if !u.CreatedAt.IsZero() {
		created = u.CreatedAt.Format(time.RFC3339)
	}

	return []string{
		strconv.FormatInt(u.ID, 10),
		cell(u.FullName),
		cell(u.Email),
		cell(u.PhoneNumber),
		role.Of(&u).String(),
		status,
		created,
	}
}

// cell stops spreadsheets from reading user-supplied text as a formula.
func cell(s string) string {
	if s != "" && strings.ContainsRune("=+-@\t\r", rune(s[0])) {
		return "'" + s
	}

	return s
}
