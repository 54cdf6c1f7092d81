package api

import (
	"net/http"

	reqdto "campus-reservation/internal/handler/dto/request"
	resdto "campus-reservation/internal/handler/dto/response"
	"campus-reservation/internal/handler/httperr"
	"campus-reservation/internal/pkg/config"
	"campus-reservation/internal/pkg/cookie"
	"campus-reservation/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	cookieCfg config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		cookieCfg: cfg.Cookie,
	}
}

// @Summary Student login
// @Description Identify by 9-digit student id and receive an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.StudentID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, result.AccessToken, result.ExpiresIn)
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Logout
// @Description Clear the access token cookie
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}
