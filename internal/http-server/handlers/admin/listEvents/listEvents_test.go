package listEvents

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"volunteerHub/internal/backend"
	"volunteerHub/internal/http-server/handlers/admin/listEvents/mocks"
	"volunteerHub/internal/http-server/view"
	"volunteerHub/internal/lib/logger/handlers/slogdiscard"
	"volunteerHub/internal/models"
	"volunteerHub/internal/session"
)

func TestAdminListEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	admin := session.Authenticated(&models.User{ID: 1, FullName: "Root", Role: models.Role{ID: 3}}, backend.Credentials{Token: "t"})

	testCases := []struct {
		name           string
		query          string
		mockSetup      func(m *mocks.EventsLister)
		expectedStatus int
		contains       []string
		excludes       []string
	}{
		{
			name:  "Pending events can be reviewed",
			query: "?status=pending",
			mockSetup: func(m *mocks.EventsLister) {
				m.On("ListEvents", mock.Anything, models.EventFilter{Status: "PENDING", Size: pageSize}).
					Return(&models.Page[models.Event]{Content: []models.Event{
						{ID: 6, Title: "Blood drive", CreatedBy: "Minh", Status: models.EventStatusPending},
					}}, nil)
			},
			expectedStatus: http.StatusOK,
			contains:       []string{"Blood drive", "Minh", `action="/admin/events/6/review"`, `value="APPROVE"`, `value="PENDING" selected`},
		},
		{
			name:  "Approved events are only deletable",
			query: "",
			mockSetup: func(m *mocks.EventsLister) {
				m.On("ListEvents", mock.Anything, models.EventFilter{Size: pageSize}).
					Return(&models.Page[models.Event]{Content: []models.Event{
						{ID: 7, Title: "Run", Status: models.EventStatusApproved},
					}}, nil)
			},
			expectedStatus: http.StatusOK,
			contains:       []string{"/admin/events/7/delete"},
			excludes:       []string{"/admin/events/7/review"},
		},
		{
			name:           "Unknown status",
			query:          "?status=archived",
			mockSetup:      func(m *mocks.EventsLister) {},
			expectedStatus: http.StatusBadRequest,
			contains:       []string{"Unknown event status"},
		},
		{
			name:  "Backend failure",
			query: "",
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

			req := httptest.NewRequest(http.MethodGet, "/admin/events"+tc.query, nil)
			req = req.WithContext(session.NewContext(req.Context(), admin))

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
