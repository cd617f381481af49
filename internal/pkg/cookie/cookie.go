package cookie

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const accessTokenCookie = "access_token"

func SetAccessToken(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(accessTokenCookie, token, maxAge, "/", "", false, true)
}

func GetAccessToken(c *gin.Context) string {
	token, err := c.Cookie(accessTokenCookie)
	if err != nil {
		return ""
	}
	return token
}

func ClearAccessToken(c *gin.Context) {
	c.SetCookie(accessTokenCookie, "", -1, "/", "", false, true)
}
