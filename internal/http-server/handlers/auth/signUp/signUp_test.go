package signUp

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"volunteerHub/internal/backend"
	"volunteerHub/internal/http-server/handlers/auth/signUp/mocks"
	"volunteerHub/internal/http-server/view"
	"volunteerHub/internal/lib/logger/handlers/slogdiscard"
	"volunteerHub/internal/models"
	"volunteerHub/internal/session"
)

func TestSignUpHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	valid := url.Values{
		"email":       {"new@example.com"},
		"password":    {"secret1"},
		"fullName":    {"New Volunteer"},
		"phoneNumber": {"0900000000"},
	}

	expectedReq := models.RegisterRequest{
		Email:       "new@example.com",
		Password:    "secret1",
		FullName:    "New Volunteer",
		PhoneNumber: "0900000000",
	}

	testCases := []struct {
		name           string
		form           url.Values
		mockSetup      func(reg *mocks.Registrar)
		expectedStatus int
		expectedBody   string
		location       string
	}{
		{
			name: "Success goes to sign in",
			form: valid,
			mockSetup: func(reg *mocks.Registrar) {
				reg.On("SignUp", mock.Anything, expectedReq).Return(nil)
			},
			expectedStatus: http.StatusSeeOther,
			location:       "/auth",
		},
		{
			name: "Short password",
			form: url.Values{
				"email":       {"new@example.com"},
				"password":    {"123"},
				"fullName":    {"New Volunteer"},
				"phoneNumber": {"0900000000"},
			},
			mockSetup:      func(reg *mocks.Registrar) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "Password must be at least 6 characters",
		},
		{
			name: "Email taken",
			form: valid,
			mockSetup: func(reg *mocks.Registrar) {
				reg.On("SignUp", mock.Anything, expectedReq).
					Return(&backend.Error{StatusCode: http.StatusConflict, Code: "EMAIL_EXISTS", Msg: "Email already in use"})
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   "Email already in use",
		},
		{
			name: "Server error without message",
			form: valid,
			mockSetup: func(reg *mocks.Registrar) {
				reg.On("SignUp", mock.Anything, expectedReq).
					Return(&backend.Error{StatusCode: http.StatusInternalServerError})
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   "Sign up failed. Please try again.",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			reg := mocks.NewRegistrar(t)
			tc.mockSetup(reg)

			rnd, err := view.New(logger, nil)
			require.NoError(t, err)

			handler := New(logger, reg, rnd)

			req := httptest.NewRequest(http.MethodPost, "/auth/sign-up", strings.NewReader(tc.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			req = req.WithContext(session.NewContext(req.Context(), session.Anonymous()))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.location != "" {
				assert.Equal(t, tc.location, rr.Header().Get("Location"))
			}

			if tc.expectedBody != "" {
				body := rr.Body.String()
				assert.Contains(t, body, tc.expectedBody)
				assert.Contains(t, body, "New Volunteer")
				assert.NotContains(t, body, "secret1")
			}
		})
	}
}
