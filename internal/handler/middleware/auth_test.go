//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campus-reservation/internal/domain/user"
	"campus-reservation/internal/handler/middleware"
	"campus-reservation/internal/pkg/clock"
	"campus-reservation/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(svc *jwt.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", middleware.NewAuthMiddleware(svc).RequireAuth(), func(c *gin.Context) {
		id, ok := middleware.GetStudentID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, id.String())
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC))
	svc := jwt.NewService("test-secret", time.Hour, clk)
	router := newRouter(svc)

	token, err := svc.GenerateToken(202300001)
	require.NoError(t, err)

	do := func(mutate func(*http.Request)) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		mutate(req)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("Bearer ヘッダ", func(t *testing.T) {
		w := do(func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) })
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, user.StudentID(202300001).String(), w.Body.String())
	})

	t.Run("Cookie", func(t *testing.T) {
		w := do(func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "access_token", Value: token}) })
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("トークンなし", func(t *testing.T) {
		w := do(func(*http.Request) {})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("改ざんされたトークン", func(t *testing.T) {
		w := do(func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token+"x") })
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("期限切れ", func(t *testing.T) {
		clk.Add(2 * time.Hour)
		defer clk.Add(-2 * time.Hour)
		w := do(func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) })
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
