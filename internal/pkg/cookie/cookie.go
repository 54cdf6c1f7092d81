package cookie

import (
	"net/http"
	"time"

	"campus-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const AccessTokenCookieName = "access_token"

// Only the API reads the token, so the cookie is scoped to it.
const cookiePath = "/api"

// SetAccessToken stores the student's token for the lifetime of the token.
func SetAccessToken(c *gin.Context, cfg config.CookieConfig, accessToken string, expiry time.Duration) {
	write(c, cfg, accessToken, int(expiry.Seconds()))
}

// ClearAccessToken expires the cookie immediately.
func ClearAccessToken(c *gin.Context, cfg config.CookieConfig) {
	write(c, cfg, "", -1)
}

func GetAccessToken(c *gin.Context) string {
	token, err := c.Cookie(AccessTokenCookieName)
	if err != nil {
		return ""
	}
	return token
}

func write(c *gin.Context, cfg config.CookieConfig, value string, maxAge int) {
	c.SetSameSite(sameSiteOf(cfg.SameSite))
	c.SetCookie(AccessTokenCookieName, value, maxAge, cookiePath, cfg.Domain, cfg.Secure, true)
}

func sameSiteOf(v string) http.SameSite {
	switch v {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
