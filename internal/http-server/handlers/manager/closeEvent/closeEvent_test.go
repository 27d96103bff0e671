package closeEvent

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"volunteerHub/internal/backend"
	"volunteerHub/internal/http-server/flash"
	"volunteerHub/internal/http-server/handlers/manager/closeEvent/mocks"
	"volunteerHub/internal/lib/logger/handlers/slogdiscard"
	"volunteerHub/internal/models"
)

func TestCloseEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name      string
		eventID   string
		action    string
		mockSetup func(m *mocks.EventCloser)
		toast     flash.Toast
	}{
		{
			name:    "Complete",
			eventID: "4",
			action:  "COMPLETE",
			mockSetup: func(m *mocks.EventCloser) {
				m.On("CloseEvent", mock.Anything, int64(4), models.CloseComplete).Return(nil)
			},
			toast: flash.Success("Event marked as completed."),
		},
		{
			name:    "Cancel",
			eventID: "4",
			action:  "CANCEL",
			mockSetup: func(m *mocks.EventCloser) {
				m.On("CloseEvent", mock.Anything, int64(4), models.CloseCancel).Return(nil)
			},
			toast: flash.Success("Event cancelled."),
		},
		{
			name:      "Unknown action",
			eventID:   "4",
			action:    "ARCHIVE",
			mockSetup: func(m *mocks.EventCloser) {},
			toast:     flash.Error("Unknown action"),
		},
		{
			name:    "Server refuses",
			eventID: "4",
			action:  "COMPLETE",
			mockSetup: func(m *mocks.EventCloser) {
				m.On("CloseEvent", mock.Anything, int64(4), models.CloseComplete).
					Return(&backend.Error{StatusCode: http.StatusBadRequest, Msg: "Event has not started yet"})
			},
			toast: flash.Error("Event has not started yet"),
		},
		{
			name:      "Bad id",
			eventID:   "-1",
			action:    "CANCEL",
			mockSetup: func(m *mocks.EventCloser) {},
			toast:     flash.Error("Event not found"),
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			closer := mocks.NewEventCloser(t)
			tc.mockSetup(closer)

			router := chi.NewRouter()
			router.Post("/manager/events/{id}/close", New(logger, closer))

			body := url.Values{"action": {tc.action}}.Encode()
			req := httptest.NewRequest(http.MethodPost, "/manager/events/"+tc.eventID+"/close", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusSeeOther, rr.Code)
			assert.Equal(t, "/manager", rr.Header().Get("Location"))

			next := httptest.NewRequest(http.MethodGet, "/manager", nil)
			for _, c := range rr.Result().Cookies() {
				next.AddCookie(c)
			}
			assert.Equal(t, tc.toast, flash.Pop(httptest.NewRecorder(), next))
		})
	}
}
