//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"campus-reservation/internal/handler/httperr"
	"campus-reservation/internal/handler/middleware"
	"campus-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandling(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	r.GET("/panic", func(c *gin.Context) {
		middleware.SetStudentID(c, 202300001)
		panic("boom")
	})
	r.GET("/conflict", func(c *gin.Context) {
		httperr.AbortWithKind(c, errs.Conflict("seat 3 is already reserved for an overlapping time"))
	})
	r.GET("/recorded", func(c *gin.Context) {
		resp := httperr.Response{Status: http.StatusForbidden}
		resp.Error.Code = "FORBIDDEN"
		resp.Error.Message = "only the owner can cancel"
		_ = c.Error(&gin.Error{Err: errors.New("forbidden"), Type: gin.ErrorTypePublic, Meta: resp})
	})
	r.GET("/silent", func(c *gin.Context) {})

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"panic becomes an internal error", "/panic", http.StatusInternalServerError,
			`{"error":{"code":"INTERNAL_ERROR","message":"Internal server error"}}`},
		{"kind errors keep their code", "/conflict", http.StatusConflict,
			`{"error":{"code":"CONFLICT","message":"seat 3 is already reserved for an overlapping time"}}`},
		{"recorded public error is rendered", "/recorded", http.StatusForbidden,
			`{"error":{"code":"FORBIDDEN","message":"only the owner can cancel"}}`},
		{"handler that writes nothing", "/silent", http.StatusInternalServerError,
			`{"error":{"code":"INTERNAL_ERROR","message":"Internal server error"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
