//go:build unit || e2e

package authtest

import (
	"net/http"
	"strconv"
	"testing"

	"campus-reservation/internal/handler/dto/request"
	"campus-reservation/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginStudent logs in through the API, which also registers the student on
// first use, and returns the access token from the cookie.
func LoginStudent(t *testing.T, router *gin.Engine, studentID int64) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{StudentID: strconv.FormatInt(studentID, 10)}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

func LogoutStudent(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
