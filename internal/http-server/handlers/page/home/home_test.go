package home

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"volunteerHub/internal/backend"
	"volunteerHub/internal/http-server/handlers/page/home/mocks"
	"volunteerHub/internal/http-server/view"
	"volunteerHub/internal/lib/logger/handlers/slogdiscard"
	"volunteerHub/internal/models"
	"volunteerHub/internal/session"
)

func TestHomeHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	featured := &models.Page[models.Event]{Content: []models.Event{{ID: 1, Title: "Beach clean-up"}}}

	testCases := []struct {
		name      string
		state     session.State
		mockSetup func(src *mocks.HomeSource)
		contains  []string
	}{
		{
			name:  "Anonymous sees featured events only",
			state: session.Anonymous(),
			mockSetup: func(src *mocks.HomeSource) {
				src.On("ListEvents", mock.Anything, models.EventFilter{Size: 3}).Return(featured, nil)
			},
			contains: []string{"Beach clean-up"},
		},
		{
			name:  "Signed in sees the dashboard",
			state: session.Authenticated(&models.User{ID: 1, FullName: "Vy"}, backend.Credentials{Token: "t"}),
			mockSetup: func(src *mocks.HomeSource) {
				src.On("ListEvents", mock.Anything, models.EventFilter{Size: 3}).Return(featured, nil)
				src.On("Dashboard", mock.Anything).Return(&models.Dashboard{
					HotEvents: []models.EventSummary{{ID: 2, Title: "Food drive", RegisteredCount: 40}},
				}, nil)
			},
			contains: []string{"Beach clean-up", "Food drive", "40 registered"},
		},
		{
			name:  "Backend down still renders",
			state: session.Authenticated(&models.User{ID: 1, FullName: "Vy"}, backend.Credentials{Token: "t"}),
			mockSetup: func(src *mocks.HomeSource) {
				src.On("ListEvents", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))
				src.On("Dashboard", mock.Anything).Return(nil, errors.New("connection refused"))
			},
			contains: []string{"No events found"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			src := mocks.NewHomeSource(t)
			tc.mockSetup(src)

			rnd, err := view.New(logger, nil)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(session.NewContext(req.Context(), tc.state))

			rr := httptest.NewRecorder()
			New(logger, src, rnd).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			for _, s := range tc.contains {
				assert.Contains(t, rr.Body.String(), s)
			}
		})
	}
}
