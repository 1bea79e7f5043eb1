//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/tests/common/authtest"
	"salon-booking/tests/common/dbtest"
	"salon-booking/tests/common/httptest"
	"salon-booking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	meURL       = "/api/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "asha@example.com", "customer")
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", "customer")

	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestRegister() {
	tests := []struct {
		name           string
		req            request.RegisterRequest
		expectedStatus int
	}{
		{
			name:           "new customer",
			req:            request.RegisterRequest{Name: "Ravi Kumar", Email: "ravi@example.com", Phone: "9123456780", Password: "password123"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "email already registered",
			req:            request.RegisterRequest{Name: "Asha Again", Email: "ASHA@example.com", Phone: "9123456780", Password: "password123"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "phone too short",
			req:            request.RegisterRequest{Name: "Ravi Kumar", Email: "ravi@example.com", Phone: "12345", Password: "password123"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "password too short",
			req:            request.RegisterRequest{Name: "Ravi Kumar", Email: "ravi@example.com", Phone: "9123456780", Password: "short"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, tt.req, "")
			require.Equal(s.T(), tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusCreated {
				var role string
				err := s.DB.QueryRow(s.T().Context(), "SELECT role FROM users WHERE email = $1", tt.req.Email).Scan(&role)
				require.NoError(s.T(), err)
				s.Equal("customer", role)
			}
		})
	}
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", email: "asha@example.com", password: dbtest.DefaultPassword, expectedStatus: http.StatusOK},
		{name: "unknown user", email: "nobody@example.com", password: dbtest.DefaultPassword, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", email: "asha@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "inactive account", email: "inactive@example.com", password: dbtest.DefaultPassword, expectedStatus: http.StatusForbidden},
		{name: "empty email", email: "", password: dbtest.DefaultPassword, expectedStatus: http.StatusBadRequest},
		{name: "empty password", email: "asha@example.com", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var res resdto.LoginResponse
				httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
				require.NotEmpty(t, res.AccessToken)
				require.NotNil(t, httptest.ExtractCookie(w, "access_token"))

				var lastLogin any
				err := s.DB.QueryRow(t.Context(), "SELECT last_login_at FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_login_at not updated")
			}
		})
	}
}

func (s *authSuite) TestMeAndLogout() {
	s.Run("token from login authenticates /me", func() {
		token := authtest.LoginUser(s.T(), s.Router, "asha@example.com", dbtest.DefaultPassword)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		var me resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &me)
		s.Equal("asha@example.com", me.Email)
		s.Equal("customer", me.Role)
	})

	s.Run("missing, forged or expired token is 401", func() {
		id := dbtest.CreateTestUser(s.T(), s.DB, "ravi@example.com", "customer")
		expired := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(s.T(), id, user.RoleCustomer)
		for _, token := range []string{"", "invalid-token", expired} {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
			s.Equal(http.StatusUnauthorized, w.Code)
		}
	})

	s.Run("logout clears the cookie", func() {
		token := authtest.LoginUser(s.T(), s.Router, "asha@example.com", dbtest.DefaultPassword)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, token)
		s.Equal(http.StatusNoContent, w.Code)
		cookie := httptest.ExtractCookie(w, "access_token")
		s.Require().NotNil(cookie)
		s.Empty(cookie.Value)
	})
}
