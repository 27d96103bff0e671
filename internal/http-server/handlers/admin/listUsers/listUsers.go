package listUsers

import (
	"context"
	"log/slog"
	"net/http"

	"volunteerHub/internal/backend"
	"volunteerHub/internal/http-server/flash"
	"volunteerHub/internal/http-server/view"
	"volunteerHub/internal/lib/logger/sl"
	"volunteerHub/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UsersLister
type UsersLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

func New(log *slog.Logger, lister UsersLister, rnd view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.listUsers.New"

		log := log.With(slog.String("op", op))

		users, err := lister.ListUsers(r.Context())
		if err != nil {
			log.Error("failed to list users", sl.Err(err))
			rnd.RenderToast(w, r, backend.PageStatus(err), view.PageAdminUsers, view.AdminUsersData{},
				flash.Error(backend.Message(err, "Could not load users. Please try again.")))
			return
		}

		rnd.Render(w, r, http.StatusOK, view.PageAdminUsers, view.AdminUsersData{Users: users})
	}
}
