package dashboard

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"volunteerHub/internal/backend"
	"volunteerHub/internal/http-server/handlers/manager/dashboard/mocks"
	"volunteerHub/internal/http-server/view"
	"volunteerHub/internal/lib/logger/handlers/slogdiscard"
	"volunteerHub/internal/models"
	"volunteerHub/internal/session"
)

func TestDashboardHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	manager := session.Authenticated(&models.User{ID: 2, FullName: "Minh", Role: models.Role{ID: 2}}, backend.Credentials{Token: "t"})

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.EventsLister)
		expectedStatus int
		contains       []string
		excludes       []string
	}{
		{
			name: "Lists managed events",
			mockSetup: func(m *mocks.EventsLister) {
				m.On("ListEvents", mock.Anything, models.EventFilter{Size: pageSize}).Return(&models.Page[models.Event]{
					Content: []models.Event{
						{ID: 4, Title: "Tree planting", Status: models.EventStatusApproved, RegisteredCount: 3},
						{ID: 5, Title: "Old fair", Status: models.EventStatusCompleted},
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			contains:       []string{"Tree planting", "/manager/events/4/edit", "/manager/events/4/registrations", "Old fair"},
			excludes:       []string{"/manager/events/5/edit"},
		},
		{
			name: "Empty list",
			mockSetup: func(m *mocks.EventsLister) {
				m.On("ListEvents", mock.Anything, mock.Anything).Return(&models.Page[models.Event]{}, nil)
			},
			expectedStatus: http.StatusOK,
			contains:       []string{"No events found", "/manager/events/new"},
		},
		{
			name: "Backend failure",
			mockSetup: func(m *mocks.EventsLister) {
				m.On("ListEvents", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))
			},
			expectedStatus: http.StatusBadGateway,
			contains:       []string{"Could not load events. Please try again."},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lister := mocks.NewEventsLister(t)
			tc.mockSetup(lister)

			rnd, err := view.New(logger, nil)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/manager", nil)
			req = req.WithContext(session.NewContext(req.Context(), manager))

			rr := httptest.NewRecorder()
			New(logger, lister, rnd).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			for _, s := range tc.contains {
				assert.Contains(t, rr.Body.String(), s)
			}
			for _, s := range tc.excludes {
				assert.NotContains(t, rr.Body.String(), s)
			}
		})
	}
}
