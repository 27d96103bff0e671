package getEvent

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"volunteerHub/internal/backend"
	"volunteerHub/internal/http-server/handlers/event/getEvent/mocks"
	"volunteerHub/internal/http-server/view"
	"volunteerHub/internal/lib/logger/handlers/slogdiscard"
	"volunteerHub/internal/models"
	"volunteerHub/internal/session"
)

func TestGetEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		eventID        string
		mockSetup      func(m *mocks.EventGetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success",
			eventID: "7",
			mockSetup: func(m *mocks.EventGetter) {
				m.On("GetEvent", mock.Anything, int64(7)).Return(&models.Event{
					ID:              7,
					Title:           "Soup kitchen",
					Description:     "Serve *hot* meals",
					RegisteredCount: 12,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "<em>hot</em>",
		},
		{
			name:    "Unknown id",
			eventID: "999",
			mockSetup: func(m *mocks.EventGetter) {
				m.On("GetEvent", mock.Anything, int64(999)).
					Return(nil, &backend.Error{StatusCode: http.StatusNotFound, Msg: "Event not found"})
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "404",
		},
		{
			name:    "Backend failure",
			eventID: "7",
			mockSetup: func(m *mocks.EventGetter) {
				m.On("GetEvent", mock.Anything, int64(7)).Return(nil, errors.New("connection refused"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "404",
		},
		{
			name:           "Invalid id format",
			eventID:        "abc",
			mockSetup:      func(m *mocks.EventGetter) {},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "404",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewEventGetter(t)
			tc.mockSetup(getter)

			rnd, err := view.New(logger, nil)
			require.NoError(t, err)

			router := chi.NewRouter()
			router.Get("/events/{id}", New(logger, getter, rnd))

			req := httptest.NewRequest(http.MethodGet, "/events/"+tc.eventID, nil)
			req = req.WithContext(session.NewContext(req.Context(), session.Anonymous()))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.expectedBody)
		})
	}
}

func TestHandlerWithoutChiContext(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	getter := mocks.NewEventGetter(t)

	rnd, err := view.New(logger, nil)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(session.NewContext(context.Background(), session.Anonymous()))

	rr := httptest.NewRecorder()
	New(logger, getter, rnd).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
