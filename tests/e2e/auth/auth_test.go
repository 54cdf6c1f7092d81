//go:build e2e

package auth_test

import (
	"net/http"
	"testing"
	"time"

	"campus-reservation/internal/handler/dto/request"
	"campus-reservation/internal/handler/dto/response"
	"campus-reservation/tests/common/authtest"
	"campus-reservation/tests/common/httptest"
	"campus-reservation/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	myURL     = "/api/reservations/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT, s.Clock)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		studentID      string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なログイン",
			studentID:      "202300001",
			expectedStatus: http.StatusOK,
			description:    "9桁の学籍番号でログインできること",
		},
		{
			name:           "ブロック対象の学籍番号",
			studentID:      "202099999",
			expectedStatus: http.StatusBadRequest,
			description:    "ブロックリストの学籍番号は拒否されること",
		},
		{
			name:           "桁数不足",
			studentID:      "20230001",
			expectedStatus: http.StatusBadRequest,
			description:    "8桁の学籍番号は拒否されること",
		},
		{
			name:           "数字以外を含む",
			studentID:      "2023ab001",
			expectedStatus: http.StatusBadRequest,
			description:    "数字以外を含む学籍番号は拒否されること",
		},
		{
			name:           "空の学籍番号",
			studentID:      "",
			expectedStatus: http.StatusBadRequest,
			description:    "空の学籍番号は拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{StudentID: tt.studentID}, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus != http.StatusOK {
				var count int
				err := s.DB.QueryRow(t.Context(), "SELECT count(*) FROM users").Scan(&count)
				require.NoError(t, err)
				require.Zero(t, count, "拒否されたログインで利用者が登録された")
				return
			}

			var loginRes response.LoginResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &loginRes))
			require.Equal(t, int64(202300001), loginRes.StudentID)
			require.NotEmpty(t, loginRes.AccessToken, "アクセストークンが空")
			require.Equal(t, "Bearer", loginRes.TokenType)
			require.Positive(t, loginRes.ExpiresIn, "有効期限が無効")

			cookie := httptest.ExtractCookie(w, "access_token")
			require.NotNil(t, cookie)
			require.Equal(t, loginRes.AccessToken, cookie.Value)

			// 初回ログインで利用者が登録されること
			var lastActive time.Time
			err := s.DB.QueryRow(t.Context(), "SELECT last_active_at FROM users WHERE student_id = $1", 202300001).Scan(&lastActive)
			require.NoError(t, err)
			require.True(t, lastActive.Equal(s.Clock.Now()), "last_active_atが固定時刻で記録されていない")
		})
	}
}

func (s *authSuite) TestRepeatedLogin() {
	s.Run("再ログインは利用者を重複登録しない", func() {
		t := s.T()

		authtest.LoginStudent(t, s.Router, 202300001)
		s.Clock.Add(time.Minute)
		authtest.LoginStudent(t, s.Router, 202300001)

		var count int
		err := s.DB.QueryRow(t.Context(), "SELECT count(*) FROM users WHERE student_id = $1", 202300001).Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("ログアウトでCookieが消去される", func() {
		t := s.T()

		token := authtest.LoginStudent(t, s.Router, 202300001)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		cookie := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, cookie)
		require.Empty(t, cookie.Value)
	})
}

func (s *authSuite) TestAuthenticationRequired() {
	tests := []struct {
		name           string
		token          func() string
		expectedStatus int
	}{
		{"有効なトークン", func() string { return authtest.LoginStudent(s.T(), s.Router, 202300001) }, http.StatusOK},
		{"署名済みトークン", func() string { return s.jwtHelper.GenerateToken(s.T(), 202300002) }, http.StatusOK},
		{"トークンなし", func() string { return "" }, http.StatusUnauthorized},
		{"不正なトークン", func() string { return "invalid-token" }, http.StatusUnauthorized},
		{"期限切れトークン", func() string { return s.jwtHelper.CreateExpiredToken(s.T(), 202300001) }, http.StatusUnauthorized},
		{"別の鍵で署名", func() string { return s.jwtHelper.CreateForeignToken(s.T(), 202300001) }, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodGet, myURL, nil, tt.token())
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func (s *authSuite) TestCookieAuthentication() {
	s.Run("Cookieのトークンで認証できる", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{StudentID: "202300001"}, "")
		require.Equal(t, http.StatusOK, w.Code)

		me := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, myURL, nil, httptest.ExtractCookies(w), "")
		require.Equal(t, http.StatusOK, me.Code, me.Body.String())

		authtest.LogoutStudent(t, s.Router, httptest.ExtractCookies(w))
	})
}
