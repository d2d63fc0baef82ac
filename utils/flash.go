package utils

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

const flashCookie = "flash"

// SetFlash stores a one-shot message shown on the next page render.
func SetFlash(c *gin.Context, message string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, url.QueryEscape(message), 60, "/", "", false, true)
}

// PopFlash returns and clears the pending flash message.
func PopFlash(c *gin.Context) string {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	message, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return message
}
