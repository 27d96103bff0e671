package exportEvents

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"volunteerHub/internal/backend"
	"volunteerHub/internal/http-server/handlers/admin/exportEvents/mocks"
	"volunteerHub/internal/lib/logger/handlers/slogdiscard"
)

func TestExportEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		query          string
		mockSetup      func(m *mocks.EventsExporter)
		expectedStatus int
		contentType    string
		disposition    string
		body           string
		location       string
	}{
		{
			name:  "Default csv",
			query: "",
			mockSetup: func(m *mocks.EventsExporter) {
				m.On("ExportEvents", mock.Anything, "csv").
					Return(&backend.Export{ContentType: "text/csv", Data: []byte("id,title\n1,Run\n")}, nil)
			},
			expectedStatus: http.StatusOK,
			contentType:    "text/csv",
			disposition:    `attachment; filename="events.csv"`,
			body:           "id,title\n1,Run\n",
		},
		{
			name:  "Json without content type",
			query: "?format=json",
			mockSetup: func(m *mocks.EventsExporter) {
				m.On("ExportEvents", mock.Anything, "json").
					Return(&backend.Export{Data: []byte(`[{"eventId":1}]`)}, nil)
			},
			expectedStatus: http.StatusOK,
			contentType:    "application/json",
			disposition:    `attachment; filename="events.json"`,
			body:           `[{"eventId":1}]`,
		},
		{
			name:           "Unsupported format",
			query:          "?format=xml",
			mockSetup:      func(m *mocks.EventsExporter) {},
			expectedStatus: http.StatusSeeOther,
			location:       "/admin/events",
		},
		{
			name:  "Backend failure",
			query: "?format=csv",
			mockSetup: func(m *mocks.EventsExporter) {
				m.On("ExportEvents", mock.Anything, "csv").Return(nil, errors.New("connection refused"))
			},
			expectedStatus: http.StatusSeeOther,
			location:       "/admin/events",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			exporter := mocks.NewEventsExporter(t)
			tc.mockSetup(exporter)

			req := httptest.NewRequest(http.MethodGet, "/admin/events/export"+tc.query, nil)

			rr := httptest.NewRecorder()
			New(logger, exporter).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.location != "" {
				assert.Equal(t, tc.location, rr.Header().Get("Location"))
				return
			}

			assert.Equal(t, tc.contentType, rr.Header().Get("Content-Type"))
			assert.Equal(t, tc.disposition, rr.Header().Get("Content-Disposition"))
			assert.Equal(t, tc.body, rr.Body.String())
		})
	}
}
